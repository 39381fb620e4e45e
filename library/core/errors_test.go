package core_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/library-ledger/library/core"
)

func Test_CodeOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected core.Code
	}{
		{name: "nil", err: nil, expected: core.CodeSuccess},
		{name: "sentinel", err: core.ErrBookLimitReached, expected: core.CodeBookLimitReached},
		{name: "wrapped", err: fmt.Errorf("%w: sci-fi", core.ErrShelfExists), expected: core.CodeShelfExists},
		{name: "joined", err: errors.Join(core.ErrPageCount, errors.New("forty-two")), expected: core.CodePageCount},
		{name: "shelf_not_found_is_not_shelf_exists", err: core.ErrShelfNotFound, expected: core.CodeShelfNotFound},
		{name: "foreign", err: errors.New("boom"), expected: core.CodeUnknown},
		{name: "unknown", err: core.ErrUnknown, expected: core.CodeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, core.CodeOf(tt.err))
		})
	}
}

func Test_ShelfErrors_ShareTheirClass(t *testing.T) {
	assert.ErrorIs(t, core.ErrShelfExists, core.ErrShelf)
	assert.ErrorIs(t, core.ErrShelfNotFound, core.ErrShelf)
	assert.NotErrorIs(t, core.ErrShelfNotFound, core.ErrShelfExists)
	assert.NotErrorIs(t, core.ErrShelfSubjectMismatch, core.ErrShelf)
}
