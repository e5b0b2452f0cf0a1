package models

import "github.com/shopspring/decimal"

// ReportRequest are the parameters for the upstream report endpoints.
type ReportRequest struct {
	AccountID uint64          `json:"contaId" validate:"required"`
	StartDate string          `json:"dataInicio,omitempty"`
	EndDate   string          `json:"dataFim,omitempty"`
	Type      TransactionType `json:"tipoMovimentacao,omitempty" validate:"omitempty,oneof=RECEITA DESPESA TRANSFERENCIA INVESTIMENTO"`
	Title     string          `json:"tituloRelatorio,omitempty"`
	Summary   bool            `json:"incluirResumo,omitempty"`
}

// AccountSummary is the condensed account header used in reports.
type AccountSummary struct {
	Bank      string `json:"banco"`
	BranchNo  string `json:"numeroAgencia"`
	AccountNo string `json:"numeroConta"`
	Owner     string `json:"responsavel"`
}

// ReportData is the fully aggregated report object returned by the upstream.
// It is handed to the PDF renderer as-is; this service never recomputes it.
type ReportData struct {
	Title        string          `json:"tituloRelatorio"`
	Account      AccountSummary  `json:"conta"`
	GeneratedAt  string          `json:"dataGeracao"`
	Transactions []Transaction   `json:"movimentacoes"`
	TotalIncome  decimal.Decimal `json:"totalReceitas"`
	TotalExpense decimal.Decimal `json:"totalDespesas"`
	NetBalance   decimal.Decimal `json:"saldoLiquido"`
	Balance      decimal.Decimal `json:"saldoAtual"`
	StartDate    string          `json:"dataInicio,omitempty"`
	EndDate      string          `json:"dataFim,omitempty"`
	Type         TransactionType `json:"tipoMovimentacao,omitempty"`
}
