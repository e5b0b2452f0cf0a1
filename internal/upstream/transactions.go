package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/assistente-financeiro/painel/internal/models"
)

const transactionsPath = "/api/v1/movimentacoes"

// Transactions lists all transactions of the signed-in user.
func (c *Client) Transactions(ctx context.Context) ([]models.Transaction, error) {
	return getList[models.Transaction](ctx, c, transactionsPath, nil)
}

// Transaction fetches one transaction by ID.
func (c *Client) Transaction(ctx context.Context, id uint64) (models.Transaction, error) {
	return exchangeOne[models.Transaction](ctx, c, http.MethodGet, fmt.Sprintf("%s/%d", transactionsPath, id), nil, nil)
}

// CreateTransaction creates a transaction.
func (c *Client) CreateTransaction(ctx context.Context, transaction models.Transaction) (models.Transaction, error) {
	return exchangeOne[models.Transaction](ctx, c, http.MethodPost, transactionsPath, nil, transaction)
}

// UpdateTransaction replaces a transaction.
func (c *Client) UpdateTransaction(ctx context.Context, id uint64, transaction models.Transaction) (models.Transaction, error) {
	return exchangeOne[models.Transaction](ctx, c, http.MethodPut, fmt.Sprintf("%s/%d", transactionsPath, id), nil, transaction)
}

// DeleteTransaction deletes a transaction.
func (c *Client) DeleteTransaction(ctx context.Context, id uint64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", transactionsPath, id), nil, nil)
	return err
}

// TransactionsByAccount lists the transactions of one account.
func (c *Client) TransactionsByAccount(ctx context.Context, accountID uint64) ([]models.Transaction, error) {
	return getList[models.Transaction](ctx, c, fmt.Sprintf("%s/conta/%d", transactionsPath, accountID), nil)
}

// TransactionsByAccountAndType lists the transactions of one account
// filtered by type.
func (c *Client) TransactionsByAccountAndType(ctx context.Context, accountID uint64, transactionType models.TransactionType) ([]models.Transaction, error) {
	return getList[models.Transaction](ctx, c, fmt.Sprintf("%s/conta/%d/tipo/%s", transactionsPath, accountID, transactionType), nil)
}

// TransactionsByPeriod lists the transactions of one account within a date
// range.
func (c *Client) TransactionsByPeriod(ctx context.Context, accountID uint64, startDate, endDate string) ([]models.Transaction, error) {
	query := url.Values{
		"dataInicio": {startDate},
		"dataFim":    {endDate},
	}

	return getList[models.Transaction](ctx, c, fmt.Sprintf("%s/conta/%d/periodo", transactionsPath, accountID), query)
}

// ReverseTransaction reverses (estorna) a completed transaction and returns
// the reversal.
func (c *Client) ReverseTransaction(ctx context.Context, id uint64) (models.Transaction, error) {
	return exchangeOne[models.Transaction](ctx, c, http.MethodPost, fmt.Sprintf("%s/%d/estornar", transactionsPath, id), nil, nil)
}

// ReportData fetches the pre-aggregated report object for the given
// parameters. Nothing in it is recomputed locally.
func (c *Client) ReportData(ctx context.Context, request models.ReportRequest) (models.ReportData, error) {
	return exchangeOne[models.ReportData](ctx, c, http.MethodPost, transactionsPath+"/relatorio/dados", nil, request)
}

// ReportPDF fetches the rendered report as an opaque PDF blob. The rendering
// happens upstream; the bytes are passed through untouched.
func (c *Client) ReportPDF(ctx context.Context, request models.ReportRequest) ([]byte, error) {
	return c.do(ctx, http.MethodPost, transactionsPath+"/relatorio/pdf", nil, request)
}
