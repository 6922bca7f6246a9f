package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTransactionRef(t *testing.T) {
	id := uuid.MustParse("7c9e6679-7425-40de-944b-e07fc1f90ae7")
	now := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)

	ref := GenerateTransactionRef(id, now)
	assert.Equal(t, "PAY-20260102-150405-E07FC1F90AE7", ref)
	// ticket_payments.transaction_ref is VARCHAR(32)
	assert.Len(t, ref, 32)
}

func TestGenerateTransactionRef_UniqueWithinSameSecond(t *testing.T) {
	now := time.Now()
	seen := make(map[string]struct{})

	for i := 0; i < 10000; i++ {
		ref := GenerateTransactionRef(uuid.New(), now)
		require.Regexp(t, `^PAY-\d{8}-\d{6}-[0-9A-F]{12}$`, ref)

		_, dup := seen[ref]
		require.False(t, dup, "duplicate transaction ref %s", ref)
		seen[ref] = struct{}{}
	}
}
