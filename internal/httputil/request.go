package httputil

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

var (
	// ErrRequestBodyEmpty is returned when a request without a body hits
	// an endpoint that needs one.
	ErrRequestBodyEmpty = errors.New("o corpo da requisição não pode estar vazio")

	// ErrInvalidBody is returned for unparseable request bodies.
	ErrInvalidBody = errors.New("o corpo da requisição contém dados inválidos")
)

// RequestHost reconstructs the externally visible base URL of the request.
// The scheme defaults to http and is upgraded when the x-forwarded-proto
// header says https.
func RequestHost(c *gin.Context) string {
	scheme := "http"
	if c.Request.Header.Get("x-forwarded-proto") == "https" {
		scheme = "https"
	}

	// A reverse proxy sets x-forwarded-host as a de-facto standard. When it
	// is present, the x-forwarded-prefix header names the mount point and
	// falls back to "/api". Without a proxy the request host is used as-is.
	host := c.Request.Host
	var forwardedPrefix string

	xForwardedHost := c.Request.Header.Get("x-forwarded-host")
	if xForwardedHost != "" {
		host = xForwardedHost

		forwardedPrefix = c.Request.Header.Get("x-forwarded-prefix")
		if forwardedPrefix == "" {
			forwardedPrefix = "/api"
		}
	}

	return scheme + "://" + host + forwardedPrefix
}

// RequestPathV1 returns the URL with the prefix for API v1.
func RequestPathV1(c *gin.Context) string {
	return RequestHost(c) + "/v1"
}

// BindData binds the JSON request body to the struct passed in.
func BindData(c *gin.Context, data any) error {
	if err := c.ShouldBindJSON(data); err != nil {
		if errors.Is(err, io.EOF) {
			NewError(c, http.StatusBadRequest, ErrRequestBodyEmpty)
			return ErrRequestBodyEmpty
		}

		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		NewError(c, http.StatusBadRequest, ErrInvalidBody)
		return ErrInvalidBody
	}

	return nil
}

// ParseID parses the named path parameter as a uint64 ID, writing the error
// response itself when the value is invalid.
func ParseID(c *gin.Context, param string) (uint64, error) {
	parsed, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil {
		err = errors.New("o ID informado não é um número válido")
		NewError(c, http.StatusBadRequest, err)
		return 0, err
	}

	return parsed, nil
}

// OptionsGet handles the OPTIONS request for endpoints supporting GET.
func OptionsGet(c *gin.Context) {
	c.Header("allow", "OPTIONS, GET")
	c.Status(http.StatusNoContent)
}

// OptionsGetPost handles the OPTIONS request for collection endpoints.
func OptionsGetPost(c *gin.Context) {
	c.Header("allow", "OPTIONS, GET, POST")
	c.Status(http.StatusNoContent)
}

// OptionsGetPutDelete handles the OPTIONS request for detail endpoints.
func OptionsGetPutDelete(c *gin.Context) {
	c.Header("allow", "OPTIONS, GET, PUT, DELETE")
	c.Status(http.StatusNoContent)
}
