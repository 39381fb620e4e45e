package core

import (
	"fmt"
	"slices"
	"strings"
)

// Reader is a library patron holding a list of borrowed books.
// Identity is (cardNumber, name, phone), the holdings are not part of it.
type Reader struct {
	cardNumber CardNumberInt
	name       string
	phone      string
	books      []*Book
}

func NewReader(cardNumber CardNumberInt, name string, phone string) *Reader {
	return &Reader{
		cardNumber: cardNumber,
		name:       name,
		phone:      phone,
	}
}

func (r *Reader) CardNumber() CardNumberInt {
	return r.cardNumber
}

func (r *Reader) Name() string {
	return r.name
}

func (r *Reader) Phone() string {
	return r.phone
}

// AddBook has no limit, the lending limit is a Library policy.
func (r *Reader) AddBook(book *Book) error {
	if r.HasBook(book) {
		return failure(ErrBookAlreadyCheckedOut, book.String())
	}

	r.books = append(r.books, book)

	return nil
}

// RemoveBook removes exactly one entry equal to book.
func (r *Reader) RemoveBook(book *Book) error {
	idx := r.indexOf(book)
	if idx < 0 {
		return failure(ErrReaderDoesNotHaveBook, book.String())
	}

	r.books = slices.Delete(r.books, idx, idx+1)

	return nil
}

func (r *Reader) HasBook(book *Book) bool {
	return r.indexOf(book) >= 0
}

func (r *Reader) BookCount() int {
	return len(r.books)
}

// Books returns a copy of the holdings in borrowing order.
func (r *Reader) Books() []*Book {
	return slices.Clone(r.books)
}

func (r *Reader) Equal(other *Reader) bool {
	if r == nil || other == nil {
		return r == other
	}

	return r.cardNumber == other.cardNumber && r.name == other.name && r.phone == other.phone
}

func (r *Reader) String() string {
	titles := make([]string, 0, len(r.books))
	for _, book := range r.books {
		titles = append(titles, book.String())
	}

	return fmt.Sprintf("%s (#%d) has checked out [%s]", r.name, r.cardNumber, strings.Join(titles, ", "))
}

// heldCopy returns the entry the reader holds for book, which may be another pointer than book.
func (r *Reader) heldCopy(book *Book) *Book {
	idx := r.indexOf(book)
	if idx < 0 {
		return nil
	}

	return r.books[idx]
}

func (r *Reader) indexOf(book *Book) int {
	if book == nil {
		return -1
	}

	return slices.IndexFunc(r.books, func(held *Book) bool { return held.Equal(book) })
}
