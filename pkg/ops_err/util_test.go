// pkg/ops_err/util_test.go

package ops_err

import (
	"errors"
	"testing"

	cerr "github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestExpectedUserError(t *testing.T) {
	base := errors.New("primary config missing")

	t.Run("marking and detection", func(t *testing.T) {
		wrapped := NewExpectedError(base)
		assert.True(t, IsExpectedUserError(wrapped))
		assert.False(t, IsExpectedUserError(base))
	})

	t.Run("survives further wrapping", func(t *testing.T) {
		wrapped := cerr.Wrap(NewExpectedError(base), "remediation")
		assert.True(t, IsExpectedUserError(wrapped))
	})

	t.Run("nil stays nil", func(t *testing.T) {
		assert.Nil(t, NewExpectedError(nil))
	})
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, 0, GetExitCode(nil))
	assert.Equal(t, 1, GetExitCode(errors.New("boom")))
	assert.Equal(t, 1, GetExitCode(NewExpectedError(errors.New("still running"))))
}

func TestExtractSummary(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   string
	}{
		{"empty", "", "No output provided."},
		{"error line picked", "starting\nError: unit not found\ndone", "Error: unit not found"},
		{"first line fallback", "all fine\nnothing wrong", "all fine"},
		{
			"candidates capped",
			"failed: a\nfailed: b\nfailed: c",
			"failed: a - failed: b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractSummary(tt.output, 2))
		})
	}
}
