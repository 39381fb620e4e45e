package core

import (
	"fmt"
	"time"
)

// BookKey is the identity of a Book. Two books with equal keys are copies of the same title.
type BookKey struct {
	ISBN      ISBNString
	Title     string
	Subject   SubjectString
	PageCount int
	Author    string
}

// Book is one title. Only the due date can change after construction.
type Book struct {
	key     BookKey
	dueDate time.Time
}

func NewBook(
	isbn ISBNString,
	title string,
	subject SubjectString,
	pageCount int,
	author string,
	dueDate time.Time,
) *Book {

	return &Book{
		key: BookKey{
			ISBN:      isbn,
			Title:     title,
			Subject:   subject,
			PageCount: pageCount,
			Author:    author,
		},
		dueDate: dueDate,
	}
}

func (b *Book) Key() BookKey {
	return b.key
}

func (b *Book) ISBN() ISBNString {
	return b.key.ISBN
}

func (b *Book) Title() string {
	return b.key.Title
}

func (b *Book) Subject() SubjectString {
	return b.key.Subject
}

func (b *Book) PageCount() int {
	return b.key.PageCount
}

func (b *Book) Author() string {
	return b.key.Author
}

func (b *Book) DueDate() time.Time {
	return b.dueDate
}

func (b *Book) SetDueDate(dueDate time.Time) {
	b.dueDate = dueDate
}

// Equal compares the identity fields, the due date is not part of it.
func (b *Book) Equal(other *Book) bool {
	if b == nil || other == nil {
		return b == other
	}

	return b.key == other.key
}

func (b *Book) String() string {
	return fmt.Sprintf("%s by %s ISBN: %s", b.key.Title, b.key.Author, b.key.ISBN)
}
