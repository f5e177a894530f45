package internal_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/dnd-item-catalog/internal"
)

func TestNewMissingParamError(t *testing.T) {
	err := internal.NewMissingParamError("cfg.HttpClient")
	assert.EqualError(t, err, "missing parameter: cfg.HttpClient")
	assert.True(t, errors.Is(err, internal.ErrMissingParam))
}
