package loader_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-ledger/library/core"
	"github.com/AntonStoeckl/library-ledger/library/shell/loader"
)

func Test_ParseCount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
		wantErr  bool
	}{
		{name: "number", input: "42", expected: 42},
		{name: "zero", input: "0", expected: 0},
		{name: "surrounding_whitespace", input: " 7 ", expected: 7},
		{name: "negative", input: "-1", wantErr: true},
		{name: "not_a_number", input: "forty-two", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := loader.ParseCount(tt.input, core.ErrPageCount)

			if tt.wantErr {
				assert.ErrorIs(t, err, core.ErrPageCount)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, n)
		})
	}
}

func Test_ParseDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{name: "calendar_date", input: "2020-10-12", expected: time.Date(2020, time.October, 12, 0, 0, 0, 0, time.UTC)},
		{name: "undated_token", input: "0000", expected: core.DefaultDueDate},
		{name: "two_components", input: "2020-10", expected: core.DefaultDueDate},
		{name: "negative_component", input: "2020--10-12", expected: core.DefaultDueDate},
		{name: "non_numeric_component", input: "2020-Oct-12", expected: core.DefaultDueDate},
		{name: "impossible_day", input: "2020-02-31", expected: core.DefaultDueDate},
		{name: "single_digit_month", input: "2020-1-12", expected: core.DefaultDueDate},
		{name: "empty", input: "", expected: core.DefaultDueDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, loader.ParseDate(tt.input))
		})
	}
}

func Test_ParseDateStrict_ReportsDateConversionErrors(t *testing.T) {
	_, err := loader.ParseDateStrict("2020-13-01")
	assert.ErrorIs(t, err, core.ErrDateConversion)

	date, err := loader.ParseDateStrict("0000")
	require.NoError(t, err)
	assert.Equal(t, core.DefaultDueDate, date)
}
