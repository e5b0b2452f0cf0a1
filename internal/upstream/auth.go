package upstream

import (
	"context"
	"net/http"

	"github.com/assistente-financeiro/painel/internal/models"
	"github.com/assistente-financeiro/painel/internal/session"
)

const authPath = "/api/v1/auth"

// Register creates a new user upstream and signs them in, persisting the
// returned token and profile in the session store.
func (c *Client) Register(ctx context.Context, registration models.Registration) (models.LoginResponse, error) {
	response, err := exchangeOne[models.LoginResponse](ctx, c, http.MethodPost, authPath+"/registrarUsuario", nil, registration)
	if err != nil {
		return models.LoginResponse{}, err
	}

	return response, c.saveSession(response)
}

// Login authenticates against the upstream and persists the returned token
// and profile in the session store.
func (c *Client) Login(ctx context.Context, credentials models.Credentials) (models.LoginResponse, error) {
	response, err := exchangeOne[models.LoginResponse](ctx, c, http.MethodPost, authPath+"/login", nil, credentials)
	if err != nil {
		return models.LoginResponse{}, err
	}

	return response, c.saveSession(response)
}

func (c *Client) saveSession(response models.LoginResponse) error {
	return c.sessions.Save(session.Session{
		Token: response.Token,
		User:  response.User,
	})
}

// UpdateUser updates the signed-in user's profile upstream and in the
// session store.
func (c *Client) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	updated, err := exchangeOne[models.User](ctx, c, http.MethodPut, authPath+"/atualizarUsuario", nil, user)
	if err != nil {
		return models.User{}, err
	}

	return updated, c.sessions.UpdateUser(updated)
}

// Logout tears the local session down. The upstream keeps no server-side
// session to terminate.
func (c *Client) Logout() error {
	return c.sessions.Invalidate()
}
