package core

import (
	"fmt"
	"strings"
)

// Shelf holds copies of books of exactly one subject.
// The shelf number is assigned by the Library when the shelf is added, 0 means unassigned.
type Shelf struct {
	shelfNumber int
	subject     SubjectString
	copies      map[BookKey]int
	books       map[BookKey]*Book
	order       []BookKey
}

func NewShelf(subject SubjectString) *Shelf {
	return &Shelf{
		subject: subject,
		copies:  make(map[BookKey]int),
		books:   make(map[BookKey]*Book),
	}
}

func (s *Shelf) ShelfNumber() int {
	return s.shelfNumber
}

func (s *Shelf) Subject() SubjectString {
	return s.subject
}

// AddBook adds one copy. A book seen before only increments its count.
func (s *Shelf) AddBook(book *Book) error {
	key := book.Key()

	if _, ok := s.copies[key]; ok {
		s.copies[key]++
		return nil
	}

	if book.Subject() != s.subject {
		return failure(ErrShelfSubjectMismatch, fmt.Sprintf("%s is not a %s book", book, s.subject))
	}

	s.copies[key] = 1
	s.books[key] = book
	s.order = append(s.order, key)

	return nil
}

// RemoveBook takes one copy off the shelf. The entry stays known with a count of 0.
func (s *Shelf) RemoveBook(book *Book) error {
	count, ok := s.copies[book.Key()]
	if !ok {
		return failure(ErrBookNotInInventory, fmt.Sprintf("%s is not on shelf %s", book, s))
	}

	if count < 1 {
		return failure(ErrBookNotInInventory, fmt.Sprintf("no copy of %s left on shelf %s", book, s))
	}

	s.copies[book.Key()] = count - 1

	return nil
}

// BookCount returns the copies on the shelf, or -1 if the book was never placed here.
func (s *Shelf) BookCount(book *Book) int {
	count, ok := s.copies[book.Key()]
	if !ok {
		return -1
	}

	return count
}

func (s *Shelf) Copies(book *Book) (int, bool) {
	count, ok := s.copies[book.Key()]
	return count, ok
}

func (s *Shelf) TotalCopies() int {
	total := 0
	for _, count := range s.copies {
		total += count
	}

	return total
}

// Books returns every book ever placed here, in placement order.
func (s *Shelf) Books() []*Book {
	books := make([]*Book, 0, len(s.order))
	for _, key := range s.order {
		books = append(books, s.books[key])
	}

	return books
}

// ListBooks renders the shelf content, one "<book> <count>" line per title.
func (s *Shelf) ListBooks() string {
	total := s.TotalCopies()

	noun := "books"
	if total == 1 {
		noun = "book"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d %s on shelf: %s\n", total, noun, s)

	for _, key := range s.order {
		fmt.Fprintf(&sb, "%s %d\n", s.books[key], s.copies[key])
	}

	return sb.String()
}

func (s *Shelf) Equal(other *Shelf) bool {
	if s == nil || other == nil {
		return s == other
	}

	return s.shelfNumber == other.shelfNumber && s.subject == other.subject
}

func (s *Shelf) String() string {
	return fmt.Sprintf("%d : %s", s.shelfNumber, s.subject)
}
