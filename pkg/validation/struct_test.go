package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Rate     float64 `json:"rate" validate:"min=0,max=100"`
	Count    int     `json:"count" validate:"min=0"`
	Currency string  `json:"currency" validate:"omitempty,iso4217"`
	Internal string  `json:"-" validate:"omitempty,len=2"`
}

func TestStructValid(t *testing.T) {
	assert.NoError(t, Struct(sample{Rate: 55, Count: 3, Currency: "EUR"}))
	assert.NoError(t, Struct(sample{}))
}

func TestStructReportsJSONFieldNames(t *testing.T) {
	err := Struct(sample{Rate: 101, Count: -1, Currency: "XXY", Internal: "abc"})
	require.Error(t, err)

	var structErr *StructError
	require.True(t, errors.As(err, &structErr))
	require.Len(t, structErr.Fields, 4)

	assert.Equal(t, FieldError{Field: "rate", Tag: "max", Param: "100"}, structErr.Fields[0])
	assert.Equal(t, FieldError{Field: "count", Tag: "min", Param: "0"}, structErr.Fields[1])
	assert.Equal(t, "currency", structErr.Fields[2].Field)
	assert.Equal(t, "Internal", structErr.Fields[3].Field)
	assert.Contains(t, err.Error(), "rate must satisfy max=100")
}

func TestValidatorIsShared(t *testing.T) {
	assert.Same(t, Validator(), Validator())
}
