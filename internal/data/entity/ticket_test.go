package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTicketCategory(t *testing.T) {
	tests := []struct {
		input   string
		want    TicketCategory
		wantErr bool
	}{
		{input: "ADULT", want: TicketCategoryAdult},
		{input: "child", want: TicketCategoryChild},
		{input: " Infant ", want: TicketCategoryInfant},
		{input: "SENIOR", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTicketCategory(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownTicketCategory)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTicketCategory_OccupiesSeat(t *testing.T) {
	assert.False(t, TicketCategoryInfant.OccupiesSeat())
	assert.True(t, TicketCategoryChild.OccupiesSeat())
	assert.True(t, TicketCategoryAdult.OccupiesSeat())
}

func TestNewTicketTypeRequest(t *testing.T) {
	req, err := NewTicketTypeRequest(TicketCategoryChild, 2)
	require.NoError(t, err)
	assert.Equal(t, TicketCategoryChild, req.Type())
	assert.Equal(t, 2, req.NoOfTickets())

	zero, err := NewTicketTypeRequest(TicketCategoryAdult, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, zero.NoOfTickets())

	lower, err := NewTicketTypeRequest("adult", 1)
	require.NoError(t, err)
	assert.Equal(t, TicketCategoryAdult, lower.Type())
}

func TestNewTicketTypeRequest_Invalid(t *testing.T) {
	_, err := NewTicketTypeRequest(TicketCategoryAdult, -1)
	assert.ErrorIs(t, err, ErrNegativeTicketCount)

	_, err = NewTicketTypeRequest("STUDENT", 1)
	assert.ErrorIs(t, err, ErrUnknownTicketCategory)
}
