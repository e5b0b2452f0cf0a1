package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/assistente-financeiro/painel/internal/models"
)

const accountsPath = "/api/v1/contas"

// Accounts lists all accounts of the signed-in user.
func (c *Client) Accounts(ctx context.Context) ([]models.Account, error) {
	return getList[models.Account](ctx, c, accountsPath, nil)
}

// Account fetches one account by ID.
func (c *Client) Account(ctx context.Context, id uint64) (models.Account, error) {
	return exchangeOne[models.Account](ctx, c, http.MethodGet, fmt.Sprintf("%s/%d", accountsPath, id), nil, nil)
}

// CreateAccount creates an account.
func (c *Client) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	return exchangeOne[models.Account](ctx, c, http.MethodPost, accountsPath, nil, account)
}

// UpdateAccount replaces an account.
func (c *Client) UpdateAccount(ctx context.Context, id uint64, account models.Account) (models.Account, error) {
	return exchangeOne[models.Account](ctx, c, http.MethodPut, fmt.Sprintf("%s/%d", accountsPath, id), nil, account)
}

// DeleteAccount deletes an account.
func (c *Client) DeleteAccount(ctx context.Context, id uint64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", accountsPath, id), nil, nil)
	return err
}
