package httputil

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/assistente-financeiro/painel/internal/upstream"
)

// HTTPError is used for error responses that contain a body.
type HTTPError struct {
	Error string `json:"error" example:"valor deve ser maior que zero"`
}

// NewError writes an error response with the given status.
func NewError(c *gin.Context, status int, err error) {
	c.JSON(status, HTTPError{
		Error: err.Error(),
	})
}

// ErrorHandler writes the response for a failed upstream call.
//
// Upstream statuses pass through together with the server-supplied message,
// so the caller sees what the backend said. A 401 has already torn the
// session down in the client; it surfaces unchanged so the frontend can
// redirect to the login view. Timeouts become 504.
func ErrorHandler(c *gin.Context, err error) {
	var upstreamErr *upstream.Error
	if errors.As(err, &upstreamErr) {
		msg := upstreamErr.Message
		if msg == "" {
			msg = "a operação não pôde ser concluída"
		}

		c.JSON(upstreamErr.Status, HTTPError{Error: msg})
		return
	}

	var netErr net.Error
	if (errors.As(err, &netErr) && netErr.Timeout()) || errors.Is(err, context.DeadlineExceeded) {
		NewError(c, http.StatusGatewayTimeout, errors.New("o servidor demorou demais para responder"))
		return
	}

	if errors.Is(err, upstream.ErrSignedOut) {
		NewError(c, http.StatusUnauthorized, errors.New("sessão expirada, faça login novamente"))
		return
	}

	log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
	NewError(c, http.StatusBadGateway, errors.New("não foi possível falar com o servidor de dados"))
}
