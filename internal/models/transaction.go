package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the type of a financial transaction as the upstream
// API knows it.
type TransactionType string

const (
	TypeIncome     TransactionType = "RECEITA"
	TypeExpense    TransactionType = "DESPESA"
	TypeTransfer   TransactionType = "TRANSFERENCIA"
	TypeInvestment TransactionType = "INVESTIMENTO"
)

// TransactionTypes lists all valid transaction types in display order.
var TransactionTypes = []TransactionType{TypeIncome, TypeExpense, TypeTransfer, TypeInvestment}

// SignFactor returns the multiplier a transaction of this type applies to an
// account balance. Income increases the balance, everything else decreases
// it. Unknown types do not contribute at all.
func (t TransactionType) SignFactor() int {
	switch t {
	case TypeIncome:
		return 1
	case TypeExpense, TypeTransfer, TypeInvestment:
		return -1
	}

	return 0
}

// Valid reports whether the type is one the upstream API accepts.
func (t TransactionType) Valid() bool {
	return t.SignFactor() != 0
}

// TransactionStatus is the lifecycle status of a transaction.
type TransactionStatus string

const (
	StatusPending   TransactionStatus = "PENDENTE"
	StatusCompleted TransactionStatus = "CONCLUIDA"
	StatusCancelled TransactionStatus = "CANCELADA"
	StatusReversed  TransactionStatus = "ESTORNADA"
)

// TransactionStatuses lists all valid transaction statuses.
var TransactionStatuses = []TransactionStatus{StatusPending, StatusCompleted, StatusCancelled, StatusReversed}

// TransactionSource describes how a transaction entered the system.
type TransactionSource string

const (
	SourceManual       TransactionSource = "MANUAL"
	SourceFileImport   TransactionSource = "IMPORTACAO_ARQUIVO"
	SourceBankAPI      TransactionSource = "API_BANCARIA"
	SourceAutoTransfer TransactionSource = "TRANSFERENCIA_AUTOMATICA"
)

// TransactionSources lists all valid transaction sources.
var TransactionSources = []TransactionSource{SourceManual, SourceFileImport, SourceBankAPI, SourceAutoTransfer}

// Transaction is a financial transaction as exchanged with the upstream API.
//
// Dates are kept as strings since the upstream accepts both date-only and
// RFC 3339 values, see ParseDate.
type Transaction struct {
	ID               uint64            `json:"id,omitempty"`
	Type             TransactionType   `json:"tipoMovimentacao" validate:"required,oneof=RECEITA DESPESA TRANSFERENCIA INVESTIMENTO"`
	Amount           decimal.Decimal   `json:"valor" validate:"required"`
	Description      string            `json:"descricao" validate:"required,max=500"`
	Category         Category          `json:"categoria" validate:"required"`
	Date             string            `json:"dataMovimentacao" validate:"required"`
	Status           TransactionStatus `json:"status,omitempty" validate:"omitempty,oneof=PENDENTE CONCLUIDA CANCELADA ESTORNADA"`
	Source           TransactionSource `json:"fonteMovimentacao" validate:"required,oneof=MANUAL IMPORTACAO_ARQUIVO API_BANCARIA TRANSFERENCIA_AUTOMATICA"`
	Note             string            `json:"observacoes,omitempty" validate:"max=1000"`
	AccountID        uint64            `json:"contaId" validate:"required"`
	SourceFile       string            `json:"arquivoOrigem,omitempty" validate:"max=100"`
	ExternalID       string            `json:"identificadorExterno,omitempty" validate:"max=50"`
	PreviousBalance  *decimal.Decimal  `json:"saldoAnterior,omitempty"`
	ResultingBalance *decimal.Decimal  `json:"saldoAtual,omitempty"`
}

// Completed reports whether the transaction counts toward balances and
// summaries. Only completed transactions ever do.
func (t Transaction) Completed() bool {
	return t.Status == StatusCompleted
}

// dateLayouts are the formats the upstream emits for dates.
var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

// ParseDate parses a date as sent by the upstream API. The zero time is
// returned for values that match no known layout.
func ParseDate(s string) time.Time {
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed
		}
	}

	return time.Time{}
}
