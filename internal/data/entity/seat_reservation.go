package entity

type SeatReservation struct {
	BaseSimple
	AccountID  int64 `db:"account_id"`
	TotalSeats int64 `db:"total_seats"`
}
