package utils

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateTransactionRef returns a payment reference shaped like
// PAY-YYYYMMDD-HHMMSS-XXXXXXXXXXXX. The suffix is the last six bytes of the
// payment ID, which are random in a v4 UUID, so references made in the same
// second do not collide.
func GenerateTransactionRef(paymentID uuid.UUID, now time.Time) string {
	datePart := now.Format("20060102")
	timePart := now.Format("150405")
	idPart := strings.ToUpper(hex.EncodeToString(paymentID[10:]))

	return fmt.Sprintf("PAY-%s-%s-%s", datePart, timePart, idPart)
}
