package loader_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-ledger/library/core"
	"github.com/AntonStoeckl/library-ledger/library/shell/loader"
	"github.com/AntonStoeckl/library-ledger/testutil/logspy"
)

func Test_Load_AppliesAllSections(t *testing.T) {
	// arrange
	library := core.NewLibrary("CSUMB")
	input := givenInput(
		"5",
		"42-w-87,Hitchhikers Guide To the Galaxy,sci-fi,42,Douglas Adams,0000",
		"42-w-87,Hitchhikers Guide To the Galaxy,sci-fi,42,Douglas Adams,0000",
		"42-w-87,Hitchhikers Guide To the Galaxy,sci-fi,42,Douglas Adams,0000",
		"42-w-87,Hitchhikers Guide To the Galaxy,sci-fi,42,Douglas Adams,0000",
		"42-w-87,Hitchhikers Guide To the Galaxy,sci-fi,42,Douglas Adams,0000",
		"1",
		"1,sci-fi",
		"1",
		"1,Drew Clinkenbeard,831-582-4007,2,42-w-87,2020-10-12",
	)

	// act
	report, err := loader.Load(library, input)

	// assert
	require.NoError(t, err)
	require.NoError(t, report.Err())

	book, ok := library.BookByISBN("42-w-87")
	require.True(t, ok)
	assert.Equal(t, time.Date(2020, time.October, 12, 0, 0, 0, 0, time.UTC), book.DueDate())
	assert.Equal(t, 5, library.CopiesOf(book))

	shelf, ok := library.ShelfBySubject("sci-fi")
	require.True(t, ok)
	assert.Equal(t, 4, shelf.BookCount(book))

	reader, ok := library.ReaderByCard(1)
	require.True(t, ok)
	assert.True(t, reader.HasBook(book))
	assert.NoError(t, library.CheckInvariants())

	assert.Equal(t, loader.PhaseReport{Declared: 5, Present: true, Loaded: 5}, report.Books)
	assert.Equal(t, loader.PhaseReport{Declared: 1, Present: true, Loaded: 1}, report.Shelves)
	assert.Equal(t, loader.PhaseReport{Declared: 1, Present: true, Loaded: 1}, report.Readers)
}

func Test_LoadFile_LoadsSampleLibrary(t *testing.T) {
	// arrange
	library := core.NewLibrary("CSUMB")

	// act
	report, err := loader.LoadFile(library, filepath.Join("testdata", "library00.csv"))

	// assert
	require.NoError(t, err)
	assert.NoError(t, report.Err())
	assert.Len(t, library.Books(), 3)
	assert.Len(t, library.Shelves(), 2)
	assert.Len(t, library.Readers(), 2)

	drew, ok := library.ReaderByCard(1)
	require.True(t, ok)
	assert.Equal(t, 2, drew.BookCount())
	assert.Equal(t, 3, library.NextCardNumber())
}

func Test_LoadFile_Fails_WhenFileIsMissing(t *testing.T) {
	_, err := loader.LoadFile(core.NewLibrary("CSUMB"), filepath.Join(t.TempDir(), "missing.csv"))

	assert.ErrorIs(t, err, core.ErrFileNotFound)
	assert.Equal(t, core.CodeFileNotFound, core.CodeOf(err))
}

func Test_Load_Stops_OnBadCount(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		expected error
	}{
		{name: "book_count", lines: []string{"many"}, expected: core.ErrBookCount},
		{name: "negative_book_count", lines: []string{"-3"}, expected: core.ErrBookCount},
		{name: "shelf_count", lines: []string{"0", "x"}, expected: core.ErrShelfCount},
		{name: "reader_count", lines: []string{"0", "0", "-1"}, expected: core.ErrReaderCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loader.Load(core.NewLibrary("CSUMB"), givenInput(tt.lines...))

			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func Test_Load_ReportsEmptySections(t *testing.T) {
	// act
	report, err := loader.Load(core.NewLibrary("CSUMB"), givenInput("0", "0", "0"))

	// assert
	require.NoError(t, err)
	assert.ErrorIs(t, report.Books.Err, core.ErrBookCount)
	assert.ErrorIs(t, report.Shelves.Err, core.ErrShelfCount)
	assert.ErrorIs(t, report.Readers.Err, core.ErrReaderCount)
}

func Test_Load_Succeeds_WhenInputEndsBeforeASection(t *testing.T) {
	// arrange
	library := core.NewLibrary("CSUMB")

	// act
	report, err := loader.Load(library, givenInput("1", "42-w-87,Hitchhikers Guide To the Galaxy,sci-fi,42,Douglas Adams,0000"))

	// assert
	require.NoError(t, err)
	assert.NoError(t, report.Err())
	assert.False(t, report.Shelves.Present)
	assert.False(t, report.Readers.Present)
	assert.Len(t, library.Books(), 1)
}

func Test_Load_EndsBookSection_OnBadPageCount_AndKeepsLaterSectionsAligned(t *testing.T) {
	// arrange
	library := core.NewLibrary("CSUMB")
	input := givenInput(
		"3",
		"42-w-87,Hitchhikers Guide To the Galaxy,sci-fi,42,Douglas Adams,0000",
		"1337,Headfirst Java,education,lots,Grady Booch,0000",
		"5297,Computer Science Pro,education,888,Dr. Ruby,0000",
		"1",
		"1,sci-fi",
		"1",
		"1,Drew Clinkenbeard,831-582-4007,0",
	)

	// act
	report, err := loader.Load(library, input)

	// assert
	require.NoError(t, err)
	assert.ErrorIs(t, report.Books.Err, core.ErrPageCount)
	assert.Equal(t, 1, report.Books.Loaded)
	assert.Len(t, library.Books(), 1)
	assert.NoError(t, report.Shelves.Err)
	assert.NoError(t, report.Readers.Err)
	assert.Len(t, library.Readers(), 1)
}

func Test_Load_EndsBookSection_OnShortRecord(t *testing.T) {
	report, err := loader.Load(core.NewLibrary("CSUMB"), givenInput("1", "42-w-87,Hitchhikers"))

	require.NoError(t, err)
	assert.ErrorIs(t, report.Books.Err, core.ErrUnknown)
}

func Test_Load_ReportsShelfCountMismatch_WithoutStopping(t *testing.T) {
	// arrange
	library := core.NewLibrary("CSUMB")
	input := givenInput(
		"0",
		"2",
		"1,sci-fi",
		"2,sci-fi",
		"1",
		"1,Drew Clinkenbeard,831-582-4007,0",
	)

	// act
	report, err := loader.Load(library, input)

	// assert
	require.NoError(t, err)
	assert.ErrorIs(t, report.Shelves.Err, core.ErrShelfNumberParse)
	assert.Len(t, library.Shelves(), 1)
	assert.Len(t, library.Readers(), 1)
}

func Test_Load_EndsReaderSection_OnBadCardNumber(t *testing.T) {
	// arrange
	library := core.NewLibrary("CSUMB")
	input := givenInput(
		"0",
		"0",
		"3",
		"1,Drew Clinkenbeard,831-582-4007,0",
		"abc,Jennifer Clinkenbeard,831-555-6284,0",
		"3,Sam Clinkenbeard,831-555-0000,0",
	)

	// act
	report, err := loader.Load(library, input)

	// assert
	require.NoError(t, err)
	assert.ErrorIs(t, report.Readers.Err, core.ErrReaderCardNumber)
	assert.Len(t, library.Readers(), 1)
}

func Test_Load_SkipsUnknownHoldings(t *testing.T) {
	// arrange
	spy := logspy.NewHandler()
	library := core.NewLibrary("CSUMB")
	input := givenInput(
		"1",
		"42-w-87,Hitchhikers Guide To the Galaxy,sci-fi,42,Douglas Adams,0000",
		"1",
		"1,sci-fi",
		"1",
		"1,Drew Clinkenbeard,831-582-4007,2,9999,2020-01-01,42-w-87,2020-10-12",
	)

	// act
	report, err := loader.Load(library, input, loader.WithLogger(spy.Logger()))

	// assert
	require.NoError(t, err)
	assert.Equal(t, 1, report.UnknownHoldings)
	assert.True(t, spy.HasMessageWithAttr("reader holds unknown book", "isbn", "9999"))

	reader, ok := library.ReaderByCard(1)
	require.True(t, ok)
	assert.Equal(t, 1, reader.BookCount())
}

func Test_Load_LastHoldingDecidesTheDueDate(t *testing.T) {
	// arrange
	library := core.NewLibrary("CSUMB")
	input := givenInput(
		"2",
		"42-w-87,Hitchhikers Guide To the Galaxy,sci-fi,42,Douglas Adams,2019-01-01",
		"42-w-87,Hitchhikers Guide To the Galaxy,sci-fi,42,Douglas Adams,2019-01-01",
		"1",
		"1,sci-fi",
		"2",
		"1,Drew Clinkenbeard,831-582-4007,1,42-w-87,2020-10-12",
		"2,Jennifer Clinkenbeard,831-555-6284,1,42-w-87,not-a-date",
	)

	// act
	_, err := loader.Load(library, input)

	// assert
	require.NoError(t, err)
	book, ok := library.BookByISBN("42-w-87")
	require.True(t, ok)
	assert.Equal(t, core.DefaultDueDate, book.DueDate())
}

func Test_Load_CountsRejectedCheckouts(t *testing.T) {
	// arrange
	library := core.NewLibrary("CSUMB")
	input := givenInput(
		"1",
		"42-w-87,Hitchhikers Guide To the Galaxy,sci-fi,42,Douglas Adams,0000",
		"1",
		"1,sci-fi",
		"2",
		"1,Drew Clinkenbeard,831-582-4007,1,42-w-87,2020-10-12",
		"2,Jennifer Clinkenbeard,831-555-6284,1,42-w-87,2020-10-12",
	)

	// act
	report, err := loader.Load(library, input)

	// assert
	require.NoError(t, err)
	assert.Equal(t, 1, report.RejectedCheckouts)
	assert.NoError(t, library.CheckInvariants())
}

func Test_Load_NormalizesFields(t *testing.T) {
	// arrange
	library := core.NewLibrary("CSUMB")
	decomposed := "Cafe\u0301"
	composed := "Caf\u00e9"
	input := givenInput(
		"1",
		" 42-w-87 , Hitchhikers , "+decomposed+" , 42 , Douglas Adams , 0000 ",
		"1",
		"1,"+composed,
	)

	// act
	_, err := loader.Load(library, input)

	// assert
	require.NoError(t, err)
	shelf, ok := library.ShelfBySubject(composed)
	require.True(t, ok)
	assert.Equal(t, 1, shelf.TotalCopies())
}

func Test_Load_NarratesDefaultedDueDates(t *testing.T) {
	// arrange
	spy := logspy.NewHandler()
	input := givenInput("1", "42-w-87,Hitchhikers Guide To the Galaxy,sci-fi,42,Douglas Adams,2020-02-31")

	// act
	_, err := loader.Load(core.NewLibrary("CSUMB"), input, loader.WithLogger(spy.Logger()))

	// assert
	require.NoError(t, err)
	assert.True(t, spy.HasLevelMessage(slog.LevelWarn, "due date defaulted"))
}

func Test_LoadFile_ReadsFromTempDir(t *testing.T) {
	// arrange
	path := filepath.Join(t.TempDir(), "library.csv")
	content := strings.Join([]string{"0", "1", "1,sci-fi", "0"}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	library := core.NewLibrary("CSUMB")

	// act
	report, err := loader.LoadFile(library, path)

	// assert
	require.NoError(t, err)
	assert.Equal(t, 1, report.Shelves.Loaded)
	assert.Len(t, library.Shelves(), 1)
}

func givenInput(lines ...string) *strings.Reader {
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}
