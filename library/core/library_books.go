package core

import (
	"fmt"
)

// AddBook adds one copy of book to the inventory and places it on the shelf of its subject.
//
// The inventory change is kept even if no shelf exists for the subject, in that case
// ErrShelfNotFound is returned.
func (l *Library) AddBook(book *Book) error {
	if book == nil {
		return failure(ErrUnknown, "no book given")
	}

	key := book.Key()

	if count, ok := l.inventory[key]; ok {
		l.inventory[key] = count + 1
		l.logInfo(logMsgBookCopyAdded, logAttrBook, book.String(), logAttrCopies, count+1)
	} else {
		l.inventory[key] = 1
		l.books[key] = book
		l.bookOrder = append(l.bookOrder, key)
		l.logInfo(logMsgBookAddedToStacks, logAttrBook, book.String())
	}

	stored := l.books[key]
	l.record(BuildBookCopyAddedToInventory(stored, l.inventory[key], l.now()))

	shelf, err := l.placeOnShelf(stored)
	if err != nil {
		return err
	}

	l.record(BuildBookCopyShelved(stored, shelf, l.now()))

	return nil
}

// ReturnBookToShelf puts one copy of book back on the shelf of its subject without any reader
// being involved. It is the step AddBook and ReturnBook share and does not check the inventory.
func (l *Library) ReturnBookToShelf(book *Book) error {
	if book == nil {
		return failure(ErrUnknown, "no book given")
	}

	stored := l.stored(book)

	shelf, err := l.placeOnShelf(stored)
	if err != nil {
		return err
	}

	l.record(BuildBookCopyShelved(stored, shelf, l.now()))

	return nil
}

// CheckOutBook lends one shelved copy of book to reader.
//
// The checks run in this order, the first failing one decides the error:
// reader registered, reader below the lending limit, book in inventory, shelf exists, copy on shelf.
// If taking the copy off the shelf fails after the reader got it, the reader gives it back.
func (l *Library) CheckOutBook(reader *Reader, book *Book) error {
	if reader == nil || book == nil {
		return failure(ErrUnknown, "reader and book are required")
	}

	err := l.checkOut(reader, book)
	if err != nil {
		l.logWarn(logMsgCheckoutRejected, logAttrCardNumber, reader.CardNumber(), logAttrBook, book.String(), logAttrError, err.Error())
		l.record(BuildCheckingOutBookFailed(book, reader, err, l.now()))

		return err
	}

	return nil
}

func (l *Library) checkOut(reader *Reader, book *Book) error {
	if !l.isRegistered(reader) {
		return failure(ErrReaderNotInLibrary, reader.String())
	}

	if reader.BookCount() >= l.lendingLimit {
		return failure(ErrBookLimitReached, fmt.Sprintf("%s has %d books", reader.Name(), reader.BookCount()))
	}

	if _, ok := l.inventory[book.Key()]; !ok {
		return failure(ErrBookNotInInventory, book.String())
	}

	shelf, ok := l.shelves[book.Subject()]
	if !ok {
		return failure(ErrShelfNotFound, book.Subject())
	}

	if shelf.BookCount(book) < 1 {
		return failure(ErrBookNotInInventory, fmt.Sprintf("no copy of %s on shelf %s", book, shelf))
	}

	stored := l.stored(book)

	if err := reader.AddBook(stored); err != nil {
		return err
	}

	if err := shelf.RemoveBook(stored); err != nil {
		_ = reader.RemoveBook(stored)

		return err
	}

	l.logInfo(logMsgBookCheckedOut, logAttrCardNumber, reader.CardNumber(), logAttrBook, stored.String())
	l.record(BuildBookCopyLentToReader(stored, reader, l.now()))

	return nil
}

// ReturnBook takes book back from reader and puts it on its shelf.
//
// The reader must hold the book and the book must be in the inventory. If the book cannot be
// shelved, the reader keeps it.
func (l *Library) ReturnBook(reader *Reader, book *Book) error {
	if reader == nil || book == nil {
		return failure(ErrUnknown, "reader and book are required")
	}

	err := l.returnFrom(reader, book)
	if err != nil {
		l.logWarn(logMsgReturnRejected, logAttrCardNumber, reader.CardNumber(), logAttrBook, book.String(), logAttrError, err.Error())
		l.record(BuildReturningBookFailed(book, reader, err, l.now()))

		return err
	}

	return nil
}

func (l *Library) returnFrom(reader *Reader, book *Book) error {
	held := reader.heldCopy(book)
	if held == nil {
		return failure(ErrReaderDoesNotHaveBook, fmt.Sprintf("%s does not have %s", reader.Name(), book))
	}

	if _, ok := l.inventory[book.Key()]; !ok {
		return failure(ErrBookNotInInventory, book.String())
	}

	if err := reader.RemoveBook(held); err != nil {
		return err
	}

	if _, err := l.placeOnShelf(l.stored(held)); err != nil {
		_ = reader.AddBook(held)

		return err
	}

	l.logInfo(logMsgBookReturned, logAttrCardNumber, reader.CardNumber(), logAttrBook, held.String())
	l.record(BuildBookCopyReturnedByReader(held, reader, l.now()))

	return nil
}

func (l *Library) placeOnShelf(book *Book) (*Shelf, error) {
	shelf, ok := l.shelves[book.Subject()]
	if !ok {
		l.logWarn(logMsgNoShelfForSubject, logAttrSubject, book.Subject(), logAttrBook, book.String())

		return nil, failure(ErrShelfNotFound, book.Subject())
	}

	if err := shelf.AddBook(book); err != nil {
		return nil, err
	}

	l.logInfo(logMsgBookShelved, logAttrBook, book.String(), logAttrShelfNumber, shelf.ShelfNumber())

	return shelf, nil
}
