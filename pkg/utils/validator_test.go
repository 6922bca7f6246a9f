package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleItem struct {
	Kind  string `validate:"required,oneof=A B"`
	Count int    `validate:"gte=0,lte=10"`
}

type sampleRequest struct {
	Name  string       `validate:"required"`
	Items []sampleItem `validate:"required,min=1,dive"`
}

func TestValidateStruct_Valid(t *testing.T) {
	req := sampleRequest{Name: "ok", Items: []sampleItem{{Kind: "A", Count: 0}}}
	assert.Nil(t, ValidateStruct(req))
}

func TestValidateStruct_Invalid(t *testing.T) {
	req := sampleRequest{Items: []sampleItem{{Kind: "A"}, {Kind: "C", Count: -1}, {Kind: "B", Count: 11}}}

	errs := ValidateStruct(req)
	assert.Equal(t, map[string]string{
		"Name":           "This field is required",
		"Items[1].Kind":  "Must be one of: A, B",
		"Items[1].Count": "Must be at least 0",
		"Items[2].Count": "Must be at most 10",
	}, errs)
}

func TestFormatValidationErrors(t *testing.T) {
	msg := FormatValidationErrors(map[string]string{
		"b": "second",
		"a": "first",
	})
	assert.Equal(t, "a: first; b: second", msg)
}
