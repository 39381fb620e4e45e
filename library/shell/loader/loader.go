package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/AntonStoeckl/library-ledger/library/core"
)

const (
	logMsgParsingSection     = "parsing section"
	logMsgSectionEnded       = "section ended early"
	logMsgSectionMissing     = "section missing"
	logMsgBookNotShelved     = "book not shelved yet"
	logMsgShelfSkipped       = "shelf record skipped"
	logMsgShelfCountMismatch = "number of shelves does not match expected"
	logMsgReaderSkipped      = "reader record skipped"
	logMsgBookCountMismatch  = "reader book count does not match holdings"
	logMsgUnknownHolding     = "reader holds unknown book"
	logMsgDueDateDefaulted   = "due date defaulted"
	logMsgCheckoutRejected   = "checkout of holding rejected"
	logAttrSection           = "section"
	logAttrCount             = "count"
	logAttrLine              = "line"
	logAttrISBN              = "isbn"
	logAttrCardNumber        = "card_number"
	logAttrExpected          = "expected"
	logAttrActual            = "actual"
	logAttrError             = "error"
)

const (
	sectionBooks   = "books"
	sectionShelves = "shelves"
	sectionReaders = "readers"
)

const (
	bookFields        = 6
	shelfFields       = 2
	readerFields      = 3
	readerBookCount   = 3
	readerHoldingsPos = 4
)

// Option defines a functional option for configuring a Load.
type Option func(*loader)

// WithLogger sets the logger which narrates the load.
func WithLogger(logger core.Logger) Option {
	return func(l *loader) {
		l.logger = logger
	}
}

// LoadFile opens path and loads it into lib, see Load.
func LoadFile(lib *core.Library, path string, options ...Option) (Report, error) {
	file, err := os.Open(path)
	if err != nil {
		return Report{}, errors.Join(core.ErrFileNotFound, err)
	}
	defer file.Close()

	return Load(lib, file, options...)
}

// Load reads books, shelves, and readers from input and applies them to lib.
//
// A count line which is not a non-negative integer stops the load with that section's error.
// A broken record ends its section, the rest of the section is skipped and the next section is loaded.
// Everything else is recorded in the Report or logged.
func Load(lib *core.Library, input io.Reader, options ...Option) (Report, error) {
	l := &loader{
		lib:     lib,
		scanner: bufio.NewScanner(input),
	}

	for _, option := range options {
		option(l)
	}

	sections := []struct {
		name      string
		countCode error
		report    *PhaseReport
		record    func(fields []string) error
	}{
		{sectionBooks, core.ErrBookCount, &l.report.Books, l.loadBook},
		{sectionShelves, core.ErrShelfCount, &l.report.Shelves, l.loadShelf},
		{sectionReaders, core.ErrReaderCount, &l.report.Readers, l.loadReader},
	}

	for _, section := range sections {
		if err := l.loadSection(section.name, section.countCode, section.report, section.record); err != nil {
			return l.report, err
		}

		if section.name == sectionShelves {
			l.verifyShelfCount()
		}
	}

	if err := l.scanner.Err(); err != nil {
		return l.report, errors.Join(core.ErrUnknown, err)
	}

	return l.report, nil
}

type loader struct {
	lib     *core.Library
	scanner *bufio.Scanner
	line    int
	logger  core.Logger
	report  Report
}

func (l *loader) nextLine() (string, bool) {
	if !l.scanner.Scan() {
		return "", false
	}

	l.line++

	return l.scanner.Text(), true
}

func (l *loader) loadSection(
	name string,
	countCode error,
	report *PhaseReport,
	record func(fields []string) error,
) error {

	countLine, ok := l.nextLine()
	if !ok {
		l.logDebug(logMsgSectionMissing, logAttrSection, name)
		return nil
	}

	report.Present = true

	count, err := ParseCount(countLine, countCode)
	if err != nil {
		report.Err = err
		return err
	}

	report.Declared = count

	if count == 0 {
		report.Err = fmt.Errorf("%w: nothing to parse", countCode)
		return nil
	}

	l.logInfo(logMsgParsingSection, logAttrSection, name, logAttrCount, count)

	for i := range count {
		line, ok := l.nextLine()
		if !ok {
			report.Err = fmt.Errorf("%w: input ended after %d of %d %s", core.ErrUnknown, i, count, name)
			l.logWarn(logMsgSectionEnded, logAttrSection, name, logAttrError, report.Err.Error())

			return nil
		}

		if err := record(splitRecord(line)); err != nil {
			report.Err = err
			l.logWarn(logMsgSectionEnded, logAttrSection, name, logAttrLine, l.line, logAttrError, err.Error())
			l.skip(count - i - 1)

			return nil
		}

		report.Loaded++
	}

	return nil
}

func (l *loader) skip(lines int) {
	for range lines {
		if _, ok := l.nextLine(); !ok {
			return
		}
	}
}

func (l *loader) loadBook(fields []string) error {
	if len(fields) < bookFields {
		return fmt.Errorf("%w: book record has %d of %d fields", core.ErrUnknown, len(fields), bookFields)
	}

	pageCount, err := ParseCount(fields[3], core.ErrPageCount)
	if err != nil {
		return err
	}

	book := core.NewBook(fields[0], fields[1], fields[2], pageCount, fields[4], l.parseDate(fields[5]))

	// shelves come after books in the input, AddShelf places these later
	if err := l.lib.AddBook(book); err != nil {
		l.logDebug(logMsgBookNotShelved, logAttrISBN, book.ISBN(), logAttrError, err.Error())
	}

	return nil
}

func (l *loader) loadShelf(fields []string) error {
	if len(fields) < shelfFields || fields[1] == "" {
		l.logWarn(logMsgShelfSkipped, logAttrLine, l.line)
		return nil
	}

	if err := l.lib.AddShelf(fields[1]); err != nil {
		l.logWarn(logMsgShelfSkipped, logAttrLine, l.line, logAttrError, err.Error())
	}

	return nil
}

func (l *loader) verifyShelfCount() {
	report := &l.report.Shelves
	if !report.Present || report.Declared == 0 || report.Err != nil {
		return
	}

	if actual := len(l.lib.Shelves()); actual != report.Declared {
		report.Err = fmt.Errorf("%w: expected %d, have %d", core.ErrShelfNumberParse, report.Declared, actual)
		l.logWarn(logMsgShelfCountMismatch, logAttrExpected, report.Declared, logAttrActual, actual)
	}
}

func (l *loader) loadReader(fields []string) error {
	cardNumber, err := ParseCount(fields[0], core.ErrReaderCardNumber)
	if err != nil {
		return err
	}

	if len(fields) < readerFields {
		return fmt.Errorf("%w: reader record has %d of %d fields", core.ErrUnknown, len(fields), readerFields)
	}

	reader := core.NewReader(cardNumber, fields[1], fields[2])

	if err := l.lib.AddReader(reader); err != nil {
		l.logWarn(logMsgReaderSkipped, logAttrLine, l.line, logAttrError, err.Error())
		return nil
	}

	l.loadHoldings(reader, fields)

	return nil
}

// loadHoldings checks out every (isbn, dueDate) pair of the record. The due date of the
// library's book is overwritten first, so the last record naming an ISBN decides its due date.
func (l *loader) loadHoldings(reader *core.Reader, fields []string) {
	holdings := 0

	for i := readerHoldingsPos; i < len(fields); i += 2 {
		holdings++

		book, ok := l.lib.BookByISBN(fields[i])
		if !ok {
			l.report.UnknownHoldings++
			l.logWarn(logMsgUnknownHolding, logAttrCardNumber, reader.CardNumber(), logAttrISBN, fields[i])

			continue
		}

		dueDate := ""
		if i+1 < len(fields) {
			dueDate = fields[i+1]
		}

		book.SetDueDate(l.parseDate(dueDate))

		if err := l.lib.CheckOutBook(reader, book); err != nil {
			l.report.RejectedCheckouts++
			l.logWarn(logMsgCheckoutRejected, logAttrCardNumber, reader.CardNumber(), logAttrISBN, book.ISBN(), logAttrError, err.Error())
		}
	}

	if len(fields) > readerBookCount {
		declared, err := ParseCount(fields[readerBookCount], core.ErrBookCount)
		if err != nil || declared != holdings {
			l.logWarn(logMsgBookCountMismatch, logAttrCardNumber, reader.CardNumber(), logAttrExpected, fields[readerBookCount], logAttrActual, holdings)
		}
	}
}

func (l *loader) parseDate(field string) time.Time {
	date, err := ParseDateStrict(field)
	if err != nil {
		l.logWarn(logMsgDueDateDefaulted, logAttrLine, l.line, logAttrError, err.Error())
	}

	return date
}

func (l *loader) logDebug(msg string, args ...any) {
	if l.logger != nil {
		l.logger.Debug(msg, args...)
	}
}

func (l *loader) logInfo(msg string, args ...any) {
	if l.logger != nil {
		l.logger.Info(msg, args...)
	}
}

func (l *loader) logWarn(msg string, args ...any) {
	if l.logger != nil {
		l.logger.Warn(msg, args...)
	}
}
