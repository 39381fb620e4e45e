package core

import (
	"time"
)

// Instead of implementing full value objects, I'm using some alias types and helper methods here ...

// ISBNString represents an ISBN identifier
type ISBNString = string

// SubjectString represents the topical category of a book and the label of a shelf
type SubjectString = string

// CardNumberInt represents a reader's library card number
type CardNumberInt = int

// OccurredAtTS represents when an event occurred
type OccurredAtTS = time.Time

// DueDateString is a due date rendered as YYYY-MM-DD
type DueDateString = string

const dueDateLayout = time.DateOnly

// LendingLimit is the maximum number of books a reader may hold through CheckOutBook.
const LendingLimit = 5

// DefaultDueDate is used whenever a due date is unknown or could not be parsed.
var DefaultDueDate = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)

// ToOccurredAt converts a time to OccurredAtTS with UTC normalization and microsecond precision
func ToOccurredAt(t time.Time) OccurredAtTS {
	return t.UTC().Truncate(time.Microsecond)
}

// ToDueDateString renders a due date the way it appears in the input file.
func ToDueDateString(t time.Time) DueDateString {
	return t.Format(dueDateLayout)
}

// Logger is the logging contract of the domain. *slog.Logger satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Recorder receives a DomainEvent for every change applied to a Library.
type Recorder interface {
	Record(event DomainEvent)
}
