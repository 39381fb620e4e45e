package loader

import (
	"errors"
	"fmt"
)

// PhaseReport describes how one of the three sections of the input went.
type PhaseReport struct {
	// Declared is the count line of the section, Present is false if the input ended before it.
	Declared int
	Present  bool

	// Loaded is the number of records that were parsed and handed to the library.
	Loaded int

	// Err is the error which ended the section early, or a mismatch found after it.
	Err error
}

// Report is the outcome of a Load. Failures of single library operations are logged, not reported.
type Report struct {
	Books   PhaseReport
	Shelves PhaseReport
	Readers PhaseReport

	// UnknownHoldings counts reader holdings naming an ISBN the library does not have.
	UnknownHoldings int

	// RejectedCheckouts counts reader holdings the library refused to check out.
	RejectedCheckouts int
}

// Err joins the errors of all sections.
func (r Report) Err() error {
	return errors.Join(r.Books.Err, r.Shelves.Err, r.Readers.Err)
}

func (r Report) String() string {
	return fmt.Sprintf(
		"books %s, shelves %s, readers %s, %d unknown holdings, %d rejected checkouts",
		r.Books, r.Shelves, r.Readers, r.UnknownHoldings, r.RejectedCheckouts,
	)
}

func (p PhaseReport) String() string {
	if !p.Present {
		return "missing"
	}

	if p.Err != nil {
		return fmt.Sprintf("%d/%d (%v)", p.Loaded, p.Declared, p.Err)
	}

	return fmt.Sprintf("%d/%d", p.Loaded, p.Declared)
}
