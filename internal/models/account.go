package models

import "github.com/shopspring/decimal"

// Account is a bank account as exchanged with the upstream API.
//
// Balance is never persisted upstream. It is derived client-side from the
// account's completed transactions, see the aggregate package.
type Account struct {
	ID          uint64 `json:"id,omitempty"`
	Bank        string `json:"banco" validate:"required,max=255"`
	BranchNo    string `json:"numeroAgencia" validate:"required,max=255"`
	AccountNo   string `json:"numeroConta" validate:"required,max=255"`
	AccountType string `json:"tipoConta" validate:"required,max=255"`
	Owner       string `json:"responsavel" validate:"required,max=255"`

	Balance decimal.Decimal `json:"saldo,omitempty"`
}
