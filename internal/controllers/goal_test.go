package controllers_test

import (
	"net/http"

	"github.com/stretchr/testify/assert"

	"github.com/assistente-financeiro/painel/internal/controllers"
	"github.com/assistente-financeiro/painel/internal/models"
)

func (suite *TestSuiteStandard) TestGoalsListFillsCompletion() {
	suite.signIn()

	suite.upstream.respond(http.MethodGet, "/api/v1/metas", http.StatusOK,
		`{"sucesso":true,"dados":[
			{"id":1,"nome":"Reserva","valorMeta":1000,"valorAtual":250,"status":"ATIVA"},
			{"id":2,"nome":"Viagem","valorMeta":2000,"valorAtual":1000,"status":"ATIVA","percentualConcluido":50}
		]}`)

	recorder := suite.request(http.MethodGet, "/v1/metas", "")
	assert.Equal(suite.T(), http.StatusOK, recorder.Code, recorder.Body.String())

	var response controllers.GoalListResponse
	suite.decode(recorder, &response)

	assert.Len(suite.T(), response.Data, 2)

	// The first goal has no upstream percentage, it must be derived
	if assert.NotNil(suite.T(), response.Data[0].Completion) {
		assert.Equal(suite.T(), 25.0, *response.Data[0].Completion)
	}

	// The second keeps the reported value
	if assert.NotNil(suite.T(), response.Data[1].Completion) {
		assert.Equal(suite.T(), 50.0, *response.Data[1].Completion)
	}
}

func (suite *TestSuiteStandard) TestGoalCreate() {
	suite.signIn()

	suite.upstream.respond(http.MethodPost, "/api/v1/metas", http.StatusCreated,
		`{"sucesso":true,"mensagem":"Meta criada","dados":{"id":5,"nome":"Reserva"}}`)

	recorder := suite.request(http.MethodPost, "/v1/metas",
		`{"nome":"Reserva","tipoMeta":"RESERVA_EMERGENCIA","valorMeta":10000,"dataInicio":"2024-01-01","dataFim":"2024-12-31","contaId":1}`)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code, recorder.Body.String())

	var response controllers.GoalResponse
	suite.decode(recorder, &response)
	assert.Equal(suite.T(), uint64(5), response.Data.ID)
}

func (suite *TestSuiteStandard) TestGoalCreateDatePairRule() {
	suite.signIn()

	recorder := suite.request(http.MethodPost, "/v1/metas",
		`{"nome":"Reserva","tipoMeta":"RESERVA_EMERGENCIA","valorMeta":10000,"dataInicio":"2024-12-31","dataFim":"2024-01-01","contaId":1}`)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)

	var response controllers.ValidationResponse
	suite.decode(recorder, &response)
	assert.Equal(suite.T(), "data de fim deve ser posterior à data de início", response.Fields["dataFim"])
	assert.Empty(suite.T(), suite.upstream.lastRequest(http.MethodPost, "/api/v1/metas"))
}

func (suite *TestSuiteStandard) TestGoalProgress() {
	suite.signIn()

	suite.upstream.respond(http.MethodPut, "/api/v1/metas/4/progresso", http.StatusOK,
		`{"sucesso":true,"dados":{"id":4,"valorAtual":300}}`)

	recorder := suite.request(http.MethodPut, "/v1/metas/4/progresso?valorAdicionado=50", "")
	assert.Equal(suite.T(), http.StatusOK, recorder.Code, recorder.Body.String())
}

func (suite *TestSuiteStandard) TestGoalProgressRejectsNonPositive() {
	suite.signIn()

	recorder := suite.request(http.MethodPut, "/v1/metas/4/progresso?valorAdicionado=-1", "")
	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)

	var response controllers.ValidationResponse
	suite.decode(recorder, &response)
	assert.Contains(suite.T(), response.Fields, "valorAdicionado")
}

func (suite *TestSuiteStandard) TestGoalPauseAndReactivate() {
	suite.signIn()

	suite.upstream.respond(http.MethodPost, "/api/v1/metas/2/pausar", http.StatusOK,
		`{"sucesso":true,"dados":{"id":2,"status":"PAUSADA"}}`)
	suite.upstream.respond(http.MethodPost, "/api/v1/metas/2/reativar", http.StatusOK,
		`{"sucesso":true,"dados":{"id":2,"status":"ATIVA"}}`)

	recorder := suite.request(http.MethodPost, "/v1/metas/2/pausar", "")
	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var paused controllers.GoalResponse
	suite.decode(recorder, &paused)
	assert.Equal(suite.T(), models.GoalPaused, paused.Data.Status)

	recorder = suite.request(http.MethodPost, "/v1/metas/2/reativar", "")
	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var reactivated controllers.GoalResponse
	suite.decode(recorder, &reactivated)
	assert.Equal(suite.T(), models.GoalActive, reactivated.Data.Status)
}

func (suite *TestSuiteStandard) TestGoalActionPlan() {
	suite.signIn()

	suite.upstream.respond(http.MethodGet, "/api/ai/assistente-financeiro/plano-acao/3", http.StatusOK,
		`{"sucesso":true,"dados":{"sucesso":true,"dados":"Guarde R$ 500 por mês."}}`)

	recorder := suite.request(http.MethodGet, "/v1/metas/3/plano-acao", "")
	assert.Equal(suite.T(), http.StatusOK, recorder.Code, recorder.Body.String())

	var response controllers.AnswerResponse
	suite.decode(recorder, &response)
	assert.Equal(suite.T(), "Guarde R$ 500 por mês.", response.Data)
}

func (suite *TestSuiteStandard) TestGoalCheckOverdue() {
	suite.signIn()

	suite.upstream.respond(http.MethodPost, "/api/v1/metas/verificar-vencidas", http.StatusOK,
		`{"sucesso":true,"mensagem":"Metas verificadas"}`)

	recorder := suite.request(http.MethodPost, "/v1/metas/verificar-vencidas", "")
	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

func (suite *TestSuiteStandard) TestGoalsByAccountOverdue() {
	suite.signIn()

	suite.upstream.respond(http.MethodGet, "/api/v1/metas/conta/1/vencidas", http.StatusOK,
		`{"metas":[{"id":9,"status":"VENCIDA","valorMeta":100,"valorAtual":10}]}`)

	recorder := suite.request(http.MethodGet, "/v1/metas/conta/1/vencidas", "")
	assert.Equal(suite.T(), http.StatusOK, recorder.Code, recorder.Body.String())

	var response controllers.GoalListResponse
	suite.decode(recorder, &response)

	assert.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), models.GoalOverdue, response.Data[0].Status)
}
