package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AntonStoeckl/library-ledger/eventstore"
	"github.com/AntonStoeckl/library-ledger/library/core"
	"github.com/AntonStoeckl/library-ledger/library/shell"
	"github.com/AntonStoeckl/library-ledger/library/shell/config"
)

func newRootCmd() *cobra.Command {
	cfg := config.FromEnv()
	var s *session

	rootCmd := &cobra.Command{
		Use:           "libraryctl",
		Short:         "Load a library from its input file and work with its books, shelves and readers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			opened, err := openSession(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			s = opened

			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if !cfg.ShowJournal || cmd.Name() == "history" {
				return nil
			}

			return s.printHistory(cmd.Context(), cmd.OutOrStdout(), eventstore.BuildEventFilter().MatchingAnyEvent(), false)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfg.DataFile, "file", "f", cfg.DataFile, "input file to load the library from (env "+config.EnvDataFile+")")
	flags.StringVar(&cfg.LibraryName, "name", cfg.LibraryName, "name of the library (env "+config.EnvLibraryName+")")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error (env "+config.EnvLogLevel+")")
	flags.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "text or json (env "+config.EnvLogFormat+")")
	flags.BoolVar(&cfg.ShowJournal, "journal", cfg.ShowJournal, "print the journal of the session after the command")

	current := func() *session { return s }

	rootCmd.AddCommand(
		newBooksCmd(current),
		newShelvesCmd(current),
		newReadersCmd(current),
		newCheckoutCmd(current),
		newReturnCmd(current),
		newAddShelfCmd(current),
		newAddReaderCmd(current),
		newRemoveReaderCmd(current),
		newHistoryCmd(current),
		newCheckCmd(current),
	)

	return rootCmd
}

func newBooksCmd(current func() *session) *cobra.Command {
	return &cobra.Command{
		Use:   "books",
		Short: "List every title with its number of copies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lib := current().library
			out := cmd.OutOrStdout()

			total := 0
			for _, book := range lib.Books() {
				copies := lib.CopiesOf(book)
				total += copies
				_, _ = fmt.Fprintf(out, "%s %d\n", book, copies)
			}

			_, _ = fmt.Fprintf(out, "%d books in %s\n", total, lib.Name())

			return nil
		},
	}
}

func newShelvesCmd(current func() *session) *cobra.Command {
	var showBooks bool

	cmd := &cobra.Command{
		Use:   "shelves",
		Short: "List the shelves",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, line := range current().library.ListShelves(showBooks) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), line)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&showBooks, "books", false, "include the books on each shelf")

	return cmd
}

func newReadersCmd(current func() *session) *cobra.Command {
	var showBooks bool

	cmd := &cobra.Command{
		Use:   "readers",
		Short: "List the registered readers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, line := range current().library.ListReaders(showBooks) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), line)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&showBooks, "books", false, "include the books each reader holds")

	return cmd
}

func newCheckoutCmd(current func() *session) *cobra.Command {
	var cardNumber int
	var isbn string

	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Lend a book to a reader",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := current()

			reader, err := s.readerByCard(cardNumber)
			if err != nil {
				return err
			}

			book, err := s.bookByISBN(isbn)
			if err != nil {
				return err
			}

			if err := s.library.CheckOutBook(reader, book); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), reader)

			return nil
		},
	}

	cmd.Flags().IntVar(&cardNumber, "card", 0, "card number of the reader")
	cmd.Flags().StringVar(&isbn, "isbn", "", "isbn of the book")
	_ = cmd.MarkFlagRequired("card")
	_ = cmd.MarkFlagRequired("isbn")

	return cmd
}

func newReturnCmd(current func() *session) *cobra.Command {
	var cardNumber int
	var isbn string

	cmd := &cobra.Command{
		Use:   "return",
		Short: "Take a book back from a reader",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := current()

			reader, err := s.readerByCard(cardNumber)
			if err != nil {
				return err
			}

			book, err := s.bookByISBN(isbn)
			if err != nil {
				return err
			}

			if err := s.library.ReturnBook(reader, book); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), reader)

			return nil
		},
	}

	cmd.Flags().IntVar(&cardNumber, "card", 0, "card number of the reader")
	cmd.Flags().StringVar(&isbn, "isbn", "", "isbn of the book")
	_ = cmd.MarkFlagRequired("card")
	_ = cmd.MarkFlagRequired("isbn")

	return cmd
}

func newAddShelfCmd(current func() *session) *cobra.Command {
	return &cobra.Command{
		Use:   "add-shelf SUBJECT",
		Short: "Add a shelf and place every copy of its subject on it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib := current().library

			if err := lib.AddShelf(args[0]); err != nil {
				return err
			}

			shelf, _ := lib.ShelfBySubject(args[0])
			_, _ = fmt.Fprint(cmd.OutOrStdout(), shelf.ListBooks())

			return nil
		},
	}
}

func newAddReaderCmd(current func() *session) *cobra.Command {
	var cardNumber int
	var name, phone string

	cmd := &cobra.Command{
		Use:   "add-reader",
		Short: "Register a reader, with the next free card number unless --card is given",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lib := current().library

			if cardNumber == 0 {
				cardNumber = lib.NextCardNumber()
			}

			reader := core.NewReader(cardNumber, name, phone)
			if err := lib.AddReader(reader); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), reader)

			return nil
		},
	}

	cmd.Flags().IntVar(&cardNumber, "card", 0, "card number, 0 takes the next free one")
	cmd.Flags().StringVar(&name, "name", "", "name of the reader")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number of the reader")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("phone")

	return cmd
}

func newRemoveReaderCmd(current func() *session) *cobra.Command {
	var cardNumber int

	cmd := &cobra.Command{
		Use:   "remove-reader",
		Short: "Unregister a reader who holds no books",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := current()

			reader, err := s.readerByCard(cardNumber)
			if err != nil {
				return err
			}

			if err := s.library.RemoveReader(reader); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "removed %s (#%d)\n", reader.Name(), reader.CardNumber())

			return nil
		},
	}

	cmd.Flags().IntVar(&cardNumber, "card", 0, "card number of the reader")
	_ = cmd.MarkFlagRequired("card")

	return cmd
}

func newHistoryCmd(current func() *session) *cobra.Command {
	var cardNumber int
	var isbn, subject string
	var onlyFailures bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Print the journal of the load, optionally for one book, reader or subject",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter := eventstore.BuildEventFilter().MatchingAnyEvent()

			switch {
			case isbn != "":
				filter = shell.FilterForISBN(isbn)
			case cmd.Flags().Changed("card"):
				filter = shell.FilterForCard(cardNumber)
			case subject != "":
				filter = shell.FilterForSubject(subject)
			}

			return current().printHistory(cmd.Context(), cmd.OutOrStdout(), filter, onlyFailures)
		},
	}

	cmd.Flags().StringVar(&isbn, "isbn", "", "only events about this book")
	cmd.Flags().IntVar(&cardNumber, "card", 0, "only events about this reader")
	cmd.Flags().StringVar(&subject, "subject", "", "only events about this subject")
	cmd.Flags().BoolVar(&onlyFailures, "failures", false, "only rejected checkouts and returns")
	cmd.MarkFlagsMutuallyExclusive("isbn", "card", "subject")

	return cmd
}

func newCheckCmd(current func() *session) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Print the load report and verify the library's bookkeeping",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := current()
			out := cmd.OutOrStdout()

			_, _ = fmt.Fprintln(out, s.report)

			if err := s.library.CheckInvariants(); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(out, s.library)

			return s.report.Err()
		},
	}
}
