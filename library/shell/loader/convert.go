package loader

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/AntonStoeckl/library-ledger/library/core"
)

const undatedToken = "0000"

// ParseCount parses a non-negative integer. Anything else fails with code.
func ParseCount(s string, code error) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", code, s)
	}

	if n < 0 {
		return 0, fmt.Errorf("%w: %d is negative", code, n)
	}

	return n, nil
}

// ParseDate parses a YYYY-MM-DD due date and falls back to core.DefaultDueDate for anything it cannot parse.
func ParseDate(s string) time.Time {
	date, err := ParseDateStrict(s)
	if err != nil {
		return core.DefaultDueDate
	}

	return date
}

// ParseDateStrict is ParseDate reporting why a value falls back to core.DefaultDueDate.
// "0000" is the explicit spelling of the default and is not an error.
func ParseDateStrict(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == undatedToken {
		return core.DefaultDueDate, nil
	}

	components := strings.Split(s, "-")
	if len(components) != 3 {
		return core.DefaultDueDate, fmt.Errorf("%w: %q is not YYYY-MM-DD", core.ErrDateConversion, s)
	}

	for _, component := range components {
		n, err := strconv.Atoi(component)
		if err != nil {
			return core.DefaultDueDate, fmt.Errorf("%w: %q in %q is not a number", core.ErrDateConversion, component, s)
		}

		if n < 0 {
			return core.DefaultDueDate, fmt.Errorf("%w: %q in %q is negative", core.ErrDateConversion, component, s)
		}
	}

	date, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return core.DefaultDueDate, fmt.Errorf("%w: %q is not a calendar date", core.ErrDateConversion, s)
	}

	return date, nil
}

// splitRecord splits a line into trimmed, NFC normalized fields.
func splitRecord(line string) []string {
	fields := strings.Split(line, ",")
	for i, field := range fields {
		fields[i] = norm.NFC.String(strings.TrimSpace(field))
	}

	return fields
}
