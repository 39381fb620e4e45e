package core

import (
	"errors"
	"fmt"
)

var (
	// ErrFileNotFound is returned when the input file cannot be opened.
	ErrFileNotFound = errors.New("file not found")

	// ErrBookCount is returned when the number of books to load is not a non-negative integer.
	ErrBookCount = errors.New("could not read number of books")

	// ErrPageCount is returned when a book record carries an invalid page count.
	ErrPageCount = errors.New("could not parse page count")

	// ErrDateConversion is returned when a date component is invalid.
	ErrDateConversion = errors.New("could not parse date component")

	// ErrShelfCount is returned when the number of shelves to load is not a non-negative integer.
	ErrShelfCount = errors.New("could not read number of shelves")

	// ErrShelfNumberParse is returned when the number of registered shelves differs from the declared count.
	ErrShelfNumberParse = errors.New("number of shelves does not match expected")

	// ErrReaderCount is returned when the number of readers to load is not a non-negative integer.
	ErrReaderCount = errors.New("could not read number of readers")

	// ErrReaderCardNumber is returned for an unparsable card number or a card number held by another reader.
	ErrReaderCardNumber = errors.New("reader card number error")

	// ErrShelf is the class of ErrShelfExists and ErrShelfNotFound.
	ErrShelf = errors.New("shelf error")

	// ErrShelfExists is returned when a shelf for the subject is already in the library.
	ErrShelfExists = fmt.Errorf("%w: shelf already exists", ErrShelf)

	// ErrShelfNotFound is returned when no shelf exists for a book's subject.
	ErrShelfNotFound = fmt.Errorf("%w: no shelf for subject", ErrShelf)

	// ErrShelfSubjectMismatch is returned when a book is placed on a shelf of another subject.
	ErrShelfSubjectMismatch = errors.New("shelf subject does not match book subject")

	// ErrBookNotInInventory is returned when a book is unknown, or no copy is left where one is needed.
	ErrBookNotInInventory = errors.New("book is not in inventory")

	// ErrBookAlreadyCheckedOut is returned when a reader already holds the book.
	ErrBookAlreadyCheckedOut = errors.New("book is already checked out")

	// ErrReaderDoesNotHaveBook is returned when a reader does not hold the book.
	ErrReaderDoesNotHaveBook = errors.New("reader does not have book")

	// ErrReaderNotInLibrary is returned when a reader is not registered.
	ErrReaderNotInLibrary = errors.New("reader is not in library")

	// ErrReaderAlreadyExists is returned when an equal reader is already registered.
	ErrReaderAlreadyExists = errors.New("reader already exists")

	// ErrReaderStillHasBooks is returned when removing a reader who still holds books.
	ErrReaderStillHasBooks = errors.New("reader still has books")

	// ErrBookLimitReached is returned when a reader already holds LendingLimit books.
	ErrBookLimitReached = errors.New("book limit reached")

	// ErrInvariantViolated is returned by CheckInvariants.
	ErrInvariantViolated = errors.New("library invariant violated")

	// ErrUnknown is returned for failures that fit no other category, e.g. malformed records.
	ErrUnknown = errors.New("unknown error")
)

// Code is the stable name of an error, e.g. for exit messages and reports.
type Code string

const (
	CodeSuccess               Code = "SUCCESS"
	CodeFileNotFound          Code = "FILE_NOT_FOUND_ERROR"
	CodeBookCount             Code = "BOOK_COUNT_ERROR"
	CodePageCount             Code = "PAGE_COUNT_ERROR"
	CodeDateConversion        Code = "DATE_CONVERSION_ERROR"
	CodeShelfCount            Code = "SHELF_COUNT_ERROR"
	CodeShelfNumberParse      Code = "SHELF_NUMBER_PARSE_ERROR"
	CodeReaderCount           Code = "READER_COUNT_ERROR"
	CodeReaderCardNumber      Code = "READER_CARD_NUMBER_ERROR"
	CodeShelfExists           Code = "SHELF_EXISTS_ERROR"
	CodeShelfNotFound         Code = "SHELF_NOT_FOUND_ERROR"
	CodeShelfSubjectMismatch  Code = "SHELF_SUBJECT_MISMATCH_ERROR"
	CodeBookNotInInventory    Code = "BOOK_NOT_IN_INVENTORY_ERROR"
	CodeBookAlreadyCheckedOut Code = "BOOK_ALREADY_CHECKED_OUT_ERROR"
	CodeReaderDoesNotHaveBook Code = "READER_DOESNT_HAVE_BOOK_ERROR"
	CodeReaderNotInLibrary    Code = "READER_NOT_IN_LIBRARY_ERROR"
	CodeReaderAlreadyExists   Code = "READER_ALREADY_EXISTS_ERROR"
	CodeReaderStillHasBooks   Code = "READER_STILL_HAS_BOOKS_ERROR"
	CodeBookLimitReached      Code = "BOOK_LIMIT_REACHED_ERROR"
	CodeInvariantViolated     Code = "INVARIANT_VIOLATED_ERROR"
	CodeUnknown               Code = "UNKNOWN_ERROR"
)

// codeTable is ordered: concrete errors before their class.
var codeTable = []struct {
	err  error
	code Code
}{
	{ErrFileNotFound, CodeFileNotFound},
	{ErrBookCount, CodeBookCount},
	{ErrPageCount, CodePageCount},
	{ErrDateConversion, CodeDateConversion},
	{ErrShelfCount, CodeShelfCount},
	{ErrShelfNumberParse, CodeShelfNumberParse},
	{ErrReaderCount, CodeReaderCount},
	{ErrReaderCardNumber, CodeReaderCardNumber},
	{ErrShelfExists, CodeShelfExists},
	{ErrShelfNotFound, CodeShelfNotFound},
	{ErrShelfSubjectMismatch, CodeShelfSubjectMismatch},
	{ErrBookNotInInventory, CodeBookNotInInventory},
	{ErrBookAlreadyCheckedOut, CodeBookAlreadyCheckedOut},
	{ErrReaderDoesNotHaveBook, CodeReaderDoesNotHaveBook},
	{ErrReaderNotInLibrary, CodeReaderNotInLibrary},
	{ErrReaderAlreadyExists, CodeReaderAlreadyExists},
	{ErrReaderStillHasBooks, CodeReaderStillHasBooks},
	{ErrBookLimitReached, CodeBookLimitReached},
	{ErrInvariantViolated, CodeInvariantViolated},
}

// CodeOf maps an error returned by this package (possibly wrapped) to its Code.
// A nil error is CodeSuccess, anything unrecognized is CodeUnknown.
func CodeOf(err error) Code {
	if err == nil {
		return CodeSuccess
	}

	for _, entry := range codeTable {
		if errors.Is(err, entry.err) {
			return entry.code
		}
	}

	return CodeUnknown
}

func failure(err error, detail string) error {
	return fmt.Errorf("%w: %s", err, detail)
}
