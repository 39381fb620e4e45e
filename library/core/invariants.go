package core

import (
	"errors"
	"fmt"
)

// CheckInvariants verifies the structural rules every operation of the Library maintains:
// each shelf is registered under its own subject, every shelved title matches its shelf's subject,
// and no title has more copies on shelves and with readers than in the inventory.
//
// ReturnBookToShelf and Reader.AddBook bypass the inventory, so callers using them can
// produce a Library that fails the last rule.
func (l *Library) CheckInvariants() error {
	var violations []error

	lent := make(map[BookKey]int)
	for _, reader := range l.readers {
		for _, book := range reader.books {
			lent[book.Key()]++
		}
	}

	shelved := make(map[BookKey]int)
	for subject, shelf := range l.shelves {
		if shelf.Subject() != subject {
			violations = append(violations, fmt.Errorf("%w: shelf %s registered under %q", ErrInvariantViolated, shelf, subject))
		}

		for key, count := range shelf.copies {
			if key.Subject != shelf.Subject() {
				violations = append(violations, fmt.Errorf("%w: %s on shelf %s", ErrInvariantViolated, shelf.books[key], shelf))
			}
			shelved[key] += count
		}
	}

	for key := range l.keysOf(shelved, lent) {
		if held := shelved[key] + lent[key]; held > l.inventory[key] {
			violations = append(
				violations,
				fmt.Errorf("%w: %s has %d copies out of %d in inventory", ErrInvariantViolated, key.ISBN, held, l.inventory[key]),
			)
		}
	}

	return errors.Join(violations...)
}

func (l *Library) keysOf(counts ...map[BookKey]int) map[BookKey]struct{} {
	keys := make(map[BookKey]struct{})
	for _, m := range counts {
		for key := range m {
			keys[key] = struct{}{}
		}
	}

	return keys
}
