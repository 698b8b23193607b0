package main

import (
	stderrors "errors"
	"fmt"
	"testing"

	berrors "benchrun/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "mismatch maps to 2",
			err:  &berrors.MismatchError{Strategy: "dispatch", Got: 127, Want: 128},
			want: 2,
		},
		{
			name: "wrapped mismatch maps to 2",
			err:  fmt.Errorf("cross-check failed: %w", &berrors.MismatchError{Strategy: "nested", Got: 0, Want: 128}),
			want: 2,
		},
		{
			name: "invalid input maps to 1",
			err:  &berrors.InvalidInputError{Length: 127, Want: 128},
			want: 1,
		},
		{
			name: "invalid configuration maps to 1",
			err:  &berrors.InvalidConfigurationError{Field: "iterations", Value: 0},
			want: 1,
		},
		{
			name: "generic error maps to 1",
			err:  stderrors.New("boom"),
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}
