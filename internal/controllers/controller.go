// Package controllers implements the HTTP surface of the dashboard service.
// Every handler fetches from the upstream API through the injected client,
// runs the data through the aggregation engine or validation schemas and
// renders the result; no finance data is persisted here.
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/assistente-financeiro/painel/internal/forms"
	"github.com/assistente-financeiro/painel/internal/httputil"
	"github.com/assistente-financeiro/painel/internal/session"
	"github.com/assistente-financeiro/painel/internal/upstream"
)

// Controller bundles the dependencies of all handlers.
type Controller struct {
	upstream *upstream.Client
	sessions *session.Store
	chats    *chatLog
}

// New creates a controller backed by the given upstream client and session
// store.
func New(client *upstream.Client, sessions *session.Store) *Controller {
	return &Controller{
		upstream: client,
		sessions: sessions,
		chats:    newChatLog(),
	}
}

// ValidationResponse is the body answered for input that fails a form
// schema. Fields maps each offending field to its message.
type ValidationResponse struct {
	Error  string       `json:"error" example:"dados inválidos"`
	Fields forms.Errors `json:"fields"`
}

// abortValidation writes the response for a failed form validation.
func abortValidation(c *gin.Context, errs forms.Errors) {
	c.JSON(http.StatusBadRequest, ValidationResponse{
		Error:  "dados inválidos",
		Fields: errs,
	})
}

// requireSession rejects the request if nobody is signed in. The upstream
// would answer 401 anyway; failing early avoids a pointless round trip.
func (ctrl *Controller) requireSession(c *gin.Context) bool {
	if !ctrl.sessions.Current().Authenticated() {
		httputil.ErrorHandler(c, upstream.ErrSignedOut)
		return false
	}

	return true
}
