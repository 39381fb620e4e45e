package core

import (
	"fmt"
	"slices"
	"time"
)

const (
	logMsgBookAddedToStacks = "book added to the stacks"
	logMsgBookCopyAdded     = "book copy added to the stacks"
	logMsgBookShelved       = "book placed on shelf"
	logMsgNoShelfForSubject = "no shelf for subject"
	logMsgShelfAdded        = "shelf added"
	logMsgShelfRejected     = "shelf rejected"
	logMsgBookCheckedOut    = "book checked out"
	logMsgCheckoutRejected  = "checkout rejected"
	logMsgBookReturned      = "book returned"
	logMsgReturnRejected    = "return rejected"
	logMsgReaderAdded       = "reader added"
	logMsgReaderRejected    = "reader rejected"
	logMsgReaderRemoved     = "reader removed"
	logMsgBookNotFound      = "book not found"
	logMsgShelfNotFound     = "shelf not found"
	logMsgReaderNotFound    = "reader not found"
	logMsgInventoryLine     = "inventory"
	logAttrLibrary          = "library"
	logAttrBook             = "book"
	logAttrISBN             = "isbn"
	logAttrSubject          = "subject"
	logAttrShelfNumber      = "shelf_number"
	logAttrCopies           = "copies"
	logAttrReconciledCopies = "reconciled_copies"
	logAttrReader           = "reader"
	logAttrCardNumber       = "card_number"
	logAttrError            = "error"
)

// Library owns the inventory, the shelves and the registered readers and keeps them consistent.
//
// Inventory counts are never decremented by any operation. Shelf counts go down on checkout
// and up on return, so inventory >= shelved + lent holds as long as books only enter through AddBook.
type Library struct {
	name         string
	inventory    map[BookKey]int
	books        map[BookKey]*Book
	bookOrder    []BookKey
	shelves      map[SubjectString]*Shelf
	readers      []*Reader
	cards        CardSequence
	lendingLimit int
	logger       Logger
	recorder     Recorder
	now          func() time.Time
}

func NewLibrary(name string, options ...Option) *Library {
	l := &Library{
		name:         name,
		inventory:    make(map[BookKey]int),
		books:        make(map[BookKey]*Book),
		shelves:      make(map[SubjectString]*Shelf),
		lendingLimit: LendingLimit,
		now:          time.Now,
	}

	for _, option := range options {
		option(l)
	}

	return l
}

func (l *Library) Name() string {
	return l.name
}

func (l *Library) LendingLimit() int {
	return l.lendingLimit
}

// NextCardNumber advances the card sequence and returns the new number.
func (l *Library) NextCardNumber() CardNumberInt {
	return l.cards.Next()
}

func (l *Library) String() string {
	return fmt.Sprintf("%s: %d books, %d shelves, %d readers", l.name, len(l.inventory), len(l.shelves), len(l.readers))
}

// BookByISBN returns the inventory's instance of the first book added with the isbn.
func (l *Library) BookByISBN(isbn ISBNString) (*Book, bool) {
	for _, key := range l.bookOrder {
		if key.ISBN == isbn {
			return l.books[key], true
		}
	}

	l.logInfo(logMsgBookNotFound, logAttrISBN, isbn)

	return nil, false
}

// CopiesOf returns the inventory count of book, 0 if the library never had it.
func (l *Library) CopiesOf(book *Book) int {
	if book == nil {
		return 0
	}

	return l.inventory[book.Key()]
}

// Books returns every title of the inventory in the order it was first added.
func (l *Library) Books() []*Book {
	books := make([]*Book, 0, len(l.bookOrder))
	for _, key := range l.bookOrder {
		books = append(books, l.books[key])
	}

	return books
}

// ListBooks logs every title with its inventory count and returns the total number of copies.
func (l *Library) ListBooks() int {
	total := 0
	for _, key := range l.bookOrder {
		count := l.inventory[key]
		total += count
		l.logInfo(logMsgInventoryLine, logAttrBook, l.books[key].String(), logAttrCopies, count)
	}

	return total
}

func (l *Library) ShelfByNumber(shelfNumber int) (*Shelf, bool) {
	for _, shelf := range l.shelves {
		if shelf.ShelfNumber() == shelfNumber {
			return shelf, true
		}
	}

	l.logInfo(logMsgShelfNotFound, logAttrShelfNumber, shelfNumber)

	return nil, false
}

func (l *Library) ShelfBySubject(subject SubjectString) (*Shelf, bool) {
	shelf, ok := l.shelves[subject]
	if !ok {
		l.logInfo(logMsgShelfNotFound, logAttrSubject, subject)
	}

	return shelf, ok
}

// Shelves returns all shelves ordered by shelf number.
func (l *Library) Shelves() []*Shelf {
	shelves := make([]*Shelf, 0, len(l.shelves))
	for _, shelf := range l.shelves {
		shelves = append(shelves, shelf)
	}

	slices.SortFunc(shelves, func(a, b *Shelf) int { return a.ShelfNumber() - b.ShelfNumber() })

	return shelves
}

// ListShelves renders one line per shelf, or the full shelf content when showBooks is set.
func (l *Library) ListShelves(showBooks bool) []string {
	lines := make([]string, 0, len(l.shelves))
	for _, shelf := range l.Shelves() {
		if showBooks {
			lines = append(lines, shelf.ListBooks())
			continue
		}

		lines = append(lines, shelf.String())
	}

	return lines
}

func (l *Library) ReaderByCard(cardNumber CardNumberInt) (*Reader, bool) {
	for _, reader := range l.readers {
		if reader.CardNumber() == cardNumber {
			return reader, true
		}
	}

	l.logInfo(logMsgReaderNotFound, logAttrCardNumber, cardNumber)

	return nil, false
}

// Readers returns the registered readers in registration order.
func (l *Library) Readers() []*Reader {
	return slices.Clone(l.readers)
}

// ListReaders renders one line per reader. Without showBooks only name and card number are shown.
func (l *Library) ListReaders(showBooks bool) []string {
	lines := make([]string, 0, len(l.readers))
	for _, reader := range l.readers {
		if showBooks {
			lines = append(lines, reader.String())
			continue
		}

		lines = append(lines, fmt.Sprintf("%s (#%d)", reader.Name(), reader.CardNumber()))
	}

	return lines
}

func (l *Library) isRegistered(reader *Reader) bool {
	return slices.ContainsFunc(l.readers, reader.Equal)
}

// stored returns the inventory's instance for book, or book itself if the library does not know it.
func (l *Library) stored(book *Book) *Book {
	if known, ok := l.books[book.Key()]; ok {
		return known
	}

	return book
}

func (l *Library) record(event DomainEvent) {
	if l.recorder != nil {
		l.recorder.Record(event)
	}
}

func (l *Library) logInfo(msg string, args ...any) {
	if l.logger != nil {
		l.logger.Info(msg, append(args, logAttrLibrary, l.name)...)
	}
}

func (l *Library) logWarn(msg string, args ...any) {
	if l.logger != nil {
		l.logger.Warn(msg, append(args, logAttrLibrary, l.name)...)
	}
}
