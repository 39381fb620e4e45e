package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/AntonStoeckl/library-ledger/eventstore"
	"github.com/AntonStoeckl/library-ledger/eventstore/memengine"
	"github.com/AntonStoeckl/library-ledger/library/core"
	"github.com/AntonStoeckl/library-ledger/library/shell"
	"github.com/AntonStoeckl/library-ledger/library/shell/config"
	"github.com/AntonStoeckl/library-ledger/library/shell/loader"
)

// session is the state of one libraryctl run.
type session struct {
	cfg     config.Config
	logger  *slog.Logger
	journal *shell.Journal
	library *core.Library
	report  loader.Report
}

func openSession(cfg config.Config, logOutput io.Writer) (*session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := shell.NewLogger(cfg, logOutput)

	store := memengine.NewEventStore(memengine.WithLogger(logger.With("component", "journal_store")))
	journal := shell.NewJournal(store, shell.WithJournalLogger(logger.With("component", "journal")))
	library := core.NewLibrary(
		cfg.LibraryName,
		core.WithLogger(logger.With("component", "library")),
		core.WithRecorder(journal),
	)

	report, err := loader.LoadFile(library, cfg.DataFile, loader.WithLogger(logger.With("component", "loader")))
	if err != nil {
		return nil, err
	}

	logger.Info("library loaded", "file", cfg.DataFile, "report", report.String())

	return &session{
		cfg:     cfg,
		logger:  logger,
		journal: journal,
		library: library,
		report:  report,
	}, nil
}

func (s *session) readerByCard(cardNumber core.CardNumberInt) (*core.Reader, error) {
	reader, ok := s.library.ReaderByCard(cardNumber)
	if !ok {
		return nil, fmt.Errorf("%w: no reader with card %d", core.ErrReaderNotInLibrary, cardNumber)
	}

	return reader, nil
}

func (s *session) bookByISBN(isbn core.ISBNString) (*core.Book, error) {
	book, ok := s.library.BookByISBN(isbn)
	if !ok {
		return nil, fmt.Errorf("%w: no book with isbn %s", core.ErrBookNotInInventory, isbn)
	}

	return book, nil
}

func (s *session) printHistory(ctx context.Context, out io.Writer, filter eventstore.Filter, onlyFailures bool) error {
	history, err := s.journal.History(ctx, filter)
	if err != nil {
		return err
	}

	if onlyFailures {
		history = shell.Failures(history)
	}

	for _, envelope := range history {
		_, _ = fmt.Fprintln(out, envelope)
	}

	return s.journal.Err()
}
