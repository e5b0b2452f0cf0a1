package controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/stretchr/testify/assert"

	"github.com/assistente-financeiro/painel/internal/controllers"
	"github.com/assistente-financeiro/painel/internal/models"
)

func (suite *TestSuiteStandard) TestChatConverse() {
	suite.signIn()

	suite.upstream.respond(http.MethodPost, "/api/ai/dinamica/conversacao", http.StatusOK,
		`{"sucesso":true,"dados":"Sua situação está estável."}`)

	recorder := suite.request(http.MethodPost, "/v1/chat/conversar",
		`{"pergunta":"Como estão minhas finanças?"}`)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code, recorder.Body.String())

	var first controllers.ChatResponse
	suite.decode(recorder, &first)
	assert.Equal(suite.T(), "Sua situação está estável.", first.Answer)
	assert.NotEmpty(suite.T(), first.ConversationID)

	// The second message must carry the first exchange as history
	recorder = suite.request(http.MethodPost, "/v1/chat/conversar",
		fmt.Sprintf(`{"pergunta":"E o que devo melhorar?","conversaId":%q}`, first.ConversationID))
	assert.Equal(suite.T(), http.StatusOK, recorder.Code, recorder.Body.String())

	var second controllers.ChatResponse
	suite.decode(recorder, &second)
	assert.Equal(suite.T(), first.ConversationID, second.ConversationID)

	var prompt models.Prompt
	err := json.Unmarshal([]byte(suite.upstream.lastRequest(http.MethodPost, "/api/ai/dinamica/conversacao")), &prompt)
	assert.Nil(suite.T(), err)

	assert.Equal(suite.T(), "E o que devo melhorar?", prompt.Prompt)
	if assert.Len(suite.T(), prompt.History, 2) {
		assert.Equal(suite.T(), "Usuário: Como estão minhas finanças?", prompt.History[0])
		assert.Equal(suite.T(), "IA: Sua situação está estável.", prompt.History[1])
	}
}

func (suite *TestSuiteStandard) TestChatHistoryIsBounded() {
	suite.signIn()

	suite.upstream.respond(http.MethodPost, "/api/ai/dinamica/conversacao", http.StatusOK,
		`{"sucesso":true,"dados":"ok"}`)

	recorder := suite.request(http.MethodPost, "/v1/chat/conversar", `{"pergunta":"primeira"}`)
	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response controllers.ChatResponse
	suite.decode(recorder, &response)

	for i := 0; i < 10; i++ {
		recorder = suite.request(http.MethodPost, "/v1/chat/conversar",
			fmt.Sprintf(`{"pergunta":"pergunta %d","conversaId":%q}`, i, response.ConversationID))
		assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	}

	var prompt models.Prompt
	err := json.Unmarshal([]byte(suite.upstream.lastRequest(http.MethodPost, "/api/ai/dinamica/conversacao")), &prompt)
	assert.Nil(suite.T(), err)

	// Only the newest entries survive; the first exchange has rolled off
	assert.Len(suite.T(), prompt.History, 10)
	assert.NotContains(suite.T(), prompt.History, "Usuário: primeira")
}

func (suite *TestSuiteStandard) TestChatEmptyQuestion() {
	suite.signIn()

	recorder := suite.request(http.MethodPost, "/v1/chat/conversar", `{"pergunta":"   "}`)
	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)

	var response controllers.ValidationResponse
	suite.decode(recorder, &response)
	assert.Contains(suite.T(), response.Fields, "pergunta")
}

func (suite *TestSuiteStandard) TestChatRequiresSession() {
	recorder := suite.request(http.MethodPost, "/v1/chat/conversar", `{"pergunta":"oi"}`)
	assert.Equal(suite.T(), http.StatusUnauthorized, recorder.Code)
}

func (suite *TestSuiteStandard) TestChatAnswerSimple() {
	suite.signIn()

	suite.upstream.respond(http.MethodPost, "/api/ai/dinamica/responder-simples", http.StatusOK,
		`{"sucesso":true,"dados":"Poupe 10% do salário."}`)

	recorder := suite.request(http.MethodPost, "/v1/chat/responder-simples", `{"pergunta":"Dica rápida?"}`)
	assert.Equal(suite.T(), http.StatusOK, recorder.Code, recorder.Body.String())

	var response controllers.ChatResponse
	suite.decode(recorder, &response)
	assert.Equal(suite.T(), "Poupe 10% do salário.", response.Answer)
	assert.Empty(suite.T(), response.ConversationID)
}

func (suite *TestSuiteStandard) TestChatQuickQuestions() {
	recorder := suite.request(http.MethodGet, "/v1/chat/perguntas-rapidas", "")
	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response controllers.QuickQuestionsResponse
	suite.decode(recorder, &response)
	assert.Equal(suite.T(), models.QuickQuestions, response.Data)
}

func (suite *TestSuiteStandard) TestChatStatus() {
	suite.upstream.respond(http.MethodGet, "/api/ai/assistente-financeiro/status", http.StatusOK,
		`{"sucesso":true,"mensagem":"disponível"}`)
	suite.upstream.respond(http.MethodGet, "/api/ai/dinamica/status", http.StatusServiceUnavailable,
		`{"sucesso":false}`)

	recorder := suite.request(http.MethodGet, "/v1/chat/status", "")
	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var status controllers.AssistantStatus
	suite.decode(recorder, &status)
	assert.True(suite.T(), status.Assistant)
	assert.False(suite.T(), status.Dynamic)
}

func (suite *TestSuiteStandard) TestChatLastMessage() {
	suite.signIn()

	suite.upstream.respond(http.MethodGet, "/api/v1/metas", http.StatusOK,
		`{"sucesso":true,"mensagem":"Metas carregadas","dados":[]}`)

	recorder := suite.request(http.MethodGet, "/v1/metas", "")
	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	recorder = suite.request(http.MethodGet, "/v1/chat/ultima-mensagem", "")
	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var message controllers.MessageResponse
	suite.decode(recorder, &message)
	assert.Equal(suite.T(), "Metas carregadas", message.Data)

	recorder = suite.request(http.MethodDelete, "/v1/chat/ultima-mensagem", "")
	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}
