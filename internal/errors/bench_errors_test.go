package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvalidInputError(t *testing.T) {
	err := &InvalidInputError{Length: 127, Want: 128}
	assert.Equal(t, "invalid operand vector: got length 127, want 128", err.Error())

	var target *InvalidInputError
	wrapped := fmt.Errorf("run failed: %w", err)
	assert.True(t, stderrors.As(wrapped, &target))
	assert.Equal(t, 127, target.Length)
}

func TestInvalidConfigurationError(t *testing.T) {
	err := &InvalidConfigurationError{Field: "iterations", Value: 0}
	assert.Equal(t, "invalid configuration: bad iterations: 0", err.Error())

	var target *InvalidConfigurationError
	assert.True(t, stderrors.As(fmt.Errorf("%w", err), &target))
	assert.Equal(t, "iterations", target.Field)
}

func TestMismatchError(t *testing.T) {
	err := &MismatchError{Strategy: "dispatch", Got: 100, Want: 128}
	assert.Equal(t, "sum mismatch: strategy dispatch computed 100, want 128", err.Error())

	var target *MismatchError
	assert.True(t, stderrors.As(fmt.Errorf("%w", err), &target))
	assert.Equal(t, int64(128), target.Want)
}
