package entity

type Payment struct {
	BaseSimple
	AccountID      int64  `db:"account_id"`
	Amount         int64  `db:"amount"`
	TransactionRef string `db:"transaction_ref"`
}
