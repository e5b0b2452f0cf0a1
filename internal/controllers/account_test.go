package controllers_test

import (
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/assistente-financeiro/painel/internal/controllers"
)

func (suite *TestSuiteStandard) TestAccountsListDerivesBalances() {
	suite.signIn()

	suite.upstream.respond(http.MethodGet, "/api/v1/contas", http.StatusOK,
		`{"sucesso":true,"dados":[{"id":1,"banco":"Itaú"},{"id":2,"banco":"Nubank"}]}`)
	suite.upstream.respond(http.MethodGet, "/api/v1/movimentacoes", http.StatusOK,
		`[
			{"id":1,"contaId":1,"tipoMovimentacao":"RECEITA","valor":1000,"status":"CONCLUIDA"},
			{"id":2,"contaId":1,"tipoMovimentacao":"DESPESA","valor":250,"status":"CONCLUIDA"},
			{"id":3,"contaId":2,"tipoMovimentacao":"RECEITA","valor":300,"status":"PENDENTE"}
		]`)

	recorder := suite.request(http.MethodGet, "/v1/contas", "")
	assert.Equal(suite.T(), http.StatusOK, recorder.Code, recorder.Body.String())

	var response controllers.AccountListResponse
	suite.decode(recorder, &response)

	assert.Len(suite.T(), response.Data, 2)
	assert.True(suite.T(), response.Data[0].Balance.Equal(decimal.NewFromInt(750)), "balance is %s", response.Data[0].Balance)
	assert.True(suite.T(), response.Data[1].Balance.IsZero(), "pending transactions must not count")
}

func (suite *TestSuiteStandard) TestAccountGet() {
	suite.signIn()

	suite.upstream.respond(http.MethodGet, "/api/v1/contas/1", http.StatusOK,
		`{"sucesso":true,"dados":{"id":1,"banco":"Itaú","responsavel":"Maria"}}`)
	suite.upstream.respond(http.MethodGet, "/api/v1/movimentacoes/conta/1", http.StatusOK,
		`[{"id":1,"contaId":1,"tipoMovimentacao":"RECEITA","valor":100,"status":"CONCLUIDA"}]`)

	recorder := suite.request(http.MethodGet, "/v1/contas/1", "")
	assert.Equal(suite.T(), http.StatusOK, recorder.Code, recorder.Body.String())

	var response controllers.AccountResponse
	suite.decode(recorder, &response)

	assert.Equal(suite.T(), "Itaú", response.Data.Bank)
	assert.True(suite.T(), response.Data.Balance.Equal(decimal.NewFromInt(100)))
}

func (suite *TestSuiteStandard) TestAccountCreate() {
	suite.signIn()

	suite.upstream.respond(http.MethodPost, "/api/v1/contas", http.StatusCreated,
		`{"sucesso":true,"mensagem":"Conta criada","dados":{"id":7,"banco":"Itaú"}}`)

	recorder := suite.request(http.MethodPost, "/v1/contas",
		`{"banco":"Itaú","numeroAgencia":"0001","numeroConta":"12345-6","tipoConta":"CORRENTE","responsavel":"Maria"}`)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code, recorder.Body.String())

	var response controllers.AccountResponse
	suite.decode(recorder, &response)
	assert.Equal(suite.T(), uint64(7), response.Data.ID)
}

func (suite *TestSuiteStandard) TestAccountCreateValidation() {
	suite.signIn()

	recorder := suite.request(http.MethodPost, "/v1/contas", `{"banco":"Itaú"}`)
	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)

	var response controllers.ValidationResponse
	suite.decode(recorder, &response)

	assert.Contains(suite.T(), response.Fields, "numeroAgencia")
	assert.Contains(suite.T(), response.Fields, "responsavel")
	assert.NotContains(suite.T(), response.Fields, "banco")

	// Nothing may reach the upstream on invalid input
	assert.Empty(suite.T(), suite.upstream.lastRequest(http.MethodPost, "/api/v1/contas"))
}

func (suite *TestSuiteStandard) TestAccountCreateEmptyBody() {
	suite.signIn()

	recorder := suite.request(http.MethodPost, "/v1/contas", "")
	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

func (suite *TestSuiteStandard) TestAccountDelete() {
	suite.signIn()

	suite.upstream.respond(http.MethodDelete, "/api/v1/contas/3", http.StatusOK,
		`{"sucesso":true,"mensagem":"Conta excluída"}`)

	recorder := suite.request(http.MethodDelete, "/v1/contas/3", "")
	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

func (suite *TestSuiteStandard) TestAccountInvalidID() {
	suite.signIn()

	recorder := suite.request(http.MethodGet, "/v1/contas/definitely-not-a-number", "")
	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

func (suite *TestSuiteStandard) TestAccountOptions() {
	recorder := suite.request(http.MethodOptions, "/v1/contas", "")

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
	assert.Equal(suite.T(), "OPTIONS, GET, POST", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestAccountOptimizationSuggestions() {
	suite.signIn()

	suite.upstream.respond(http.MethodGet, "/api/ai/assistente-financeiro/sugestoes-otimizacao/1", http.StatusOK,
		`{"sucesso":true,"dados":{"sucesso":true,"dados":"Reduza gastos com lazer."}}`)

	recorder := suite.request(http.MethodGet, "/v1/contas/1/sugestoes", "")
	assert.Equal(suite.T(), http.StatusOK, recorder.Code, recorder.Body.String())

	var response controllers.AnswerResponse
	suite.decode(recorder, &response)
	assert.Equal(suite.T(), "Reduza gastos com lazer.", response.Data)
}
