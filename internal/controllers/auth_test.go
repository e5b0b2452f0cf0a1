package controllers_test

import (
	"net/http"

	"github.com/stretchr/testify/assert"

	"github.com/assistente-financeiro/painel/internal/controllers"
)

func (suite *TestSuiteStandard) TestLogin() {
	suite.upstream.respond(http.MethodPost, "/api/v1/auth/login", http.StatusOK,
		`{"token":"jwt-token","tipo":"Bearer","usuario":{"id":1,"nome":"Maria","email":"maria@example.com","role":"USER"}}`)

	recorder := suite.request(http.MethodPost, "/v1/auth/login",
		`{"email":"maria@example.com","senha":"secret"}`)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code, recorder.Body.String())

	var response controllers.SessionResponse
	suite.decode(recorder, &response)
	assert.Equal(suite.T(), "jwt-token", response.Data.Token)
	assert.Equal(suite.T(), "Maria", response.Data.User.Name)

	// The session must be in place for subsequent calls
	assert.True(suite.T(), suite.sessions.Current().Authenticated())
}

func (suite *TestSuiteStandard) TestLoginValidation() {
	recorder := suite.request(http.MethodPost, "/v1/auth/login", `{"email":"not-an-email"}`)
	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)

	var response controllers.ValidationResponse
	suite.decode(recorder, &response)
	assert.Contains(suite.T(), response.Fields, "email")
	assert.Contains(suite.T(), response.Fields, "senha")
}

func (suite *TestSuiteStandard) TestLoginBadCredentials() {
	suite.upstream.respond(http.MethodPost, "/api/v1/auth/login", http.StatusUnauthorized,
		`{"sucesso":false,"mensagem":"Credenciais inválidas"}`)

	recorder := suite.request(http.MethodPost, "/v1/auth/login",
		`{"email":"maria@example.com","senha":"wrong"}`)

	assert.Equal(suite.T(), http.StatusUnauthorized, recorder.Code)
	assert.False(suite.T(), suite.sessions.Current().Authenticated())
}

func (suite *TestSuiteStandard) TestRegister() {
	suite.upstream.respond(http.MethodPost, "/api/v1/auth/registrarUsuario", http.StatusCreated,
		`{"token":"jwt-token","tipo":"Bearer","usuario":{"id":2,"nome":"João","email":"joao@example.com","role":"USER"}}`)

	recorder := suite.request(http.MethodPost, "/v1/auth/registrarUsuario",
		`{"nome":"João","email":"joao@example.com","senha":"secret"}`)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code, recorder.Body.String())
	assert.True(suite.T(), suite.sessions.Current().Authenticated())
	assert.Equal(suite.T(), "João", suite.sessions.Current().User.Name)
}

func (suite *TestSuiteStandard) TestUpdateUser() {
	suite.signIn()

	suite.upstream.respond(http.MethodPut, "/api/v1/auth/atualizarUsuario", http.StatusOK,
		`{"sucesso":true,"dados":{"id":1,"nome":"Maria Silva","email":"maria@example.com","role":"USER"}}`)

	recorder := suite.request(http.MethodPut, "/v1/auth/atualizarUsuario",
		`{"id":1,"nome":"Maria Silva","email":"maria@example.com"}`)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code, recorder.Body.String())

	// The profile in the session follows the update, the token stays
	assert.Equal(suite.T(), "Maria Silva", suite.sessions.Current().User.Name)
	assert.Equal(suite.T(), "test-token", suite.sessions.Current().Token)
}

func (suite *TestSuiteStandard) TestLogout() {
	suite.signIn()

	recorder := suite.request(http.MethodPost, "/v1/auth/logout", "")

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
	assert.False(suite.T(), suite.sessions.Current().Authenticated())
}

func (suite *TestSuiteStandard) TestCurrentUser() {
	suite.signIn()

	recorder := suite.request(http.MethodGet, "/v1/auth/usuario", "")
	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response controllers.UserResponse
	suite.decode(recorder, &response)
	assert.Equal(suite.T(), "Maria", response.Data.Name)
}

func (suite *TestSuiteStandard) TestCurrentUserSignedOut() {
	recorder := suite.request(http.MethodGet, "/v1/auth/usuario", "")
	assert.Equal(suite.T(), http.StatusUnauthorized, recorder.Code)
}
