package controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/assistente-financeiro/painel/internal/controllers"
	"github.com/assistente-financeiro/painel/internal/models"
)

func (suite *TestSuiteStandard) stubTransactionList(count int) {
	entries := make([]string, 0, count)
	for i := 1; i <= count; i++ {
		entries = append(entries, fmt.Sprintf(
			`{"id":%d,"contaId":1,"tipoMovimentacao":"DESPESA","valor":10,"status":"CONCLUIDA","dataMovimentacao":"2024-03-%02d"}`,
			i, i%28+1))
	}

	suite.upstream.respond(http.MethodGet, "/api/v1/movimentacoes", http.StatusOK,
		`{"sucesso":true,"dados":[`+strings.Join(entries, ",")+`]}`)
}

func (suite *TestSuiteStandard) TestTransactionsPagination() {
	suite.signIn()
	suite.stubTransactionList(25)

	tests := []struct {
		name        string
		query       string
		currentPage int
		totalPages  int
		count       int
	}{
		{"defaults", "", 1, 3, 10},
		{"second page", "?pagina=2", 2, 3, 10},
		{"last page is partial", "?pagina=3", 3, 3, 5},
		{"page clamped", "?pagina=999", 3, 3, 5},
		{"custom page size", "?pagina=1&tamanhoPagina=25", 1, 1, 25},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := suite.request(http.MethodGet, "/v1/movimentacoes"+tt.query, "")
			assert.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

			var response controllers.TransactionListResponse
			suite.decode(recorder, &response)

			assert.Equal(t, tt.currentPage, response.Pagination.CurrentPage)
			assert.Equal(t, tt.totalPages, response.Pagination.TotalPages)
			assert.Equal(t, 25, response.Pagination.Total)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionCreate() {
	suite.signIn()

	suite.upstream.respond(http.MethodPost, "/api/v1/movimentacoes", http.StatusCreated,
		`{"sucesso":true,"mensagem":"Movimentação registrada","dados":{"id":11,"tipoMovimentacao":"DESPESA","valor":42.5}}`)

	recorder := suite.request(http.MethodPost, "/v1/movimentacoes",
		`{"tipoMovimentacao":"DESPESA","valor":42.5,"descricao":"Supermercado","categoria":"ALIMENTACAO","dataMovimentacao":"2024-03-10","fonteMovimentacao":"MANUAL","contaId":1}`)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code, recorder.Body.String())

	var response controllers.TransactionResponse
	suite.decode(recorder, &response)
	assert.Equal(suite.T(), uint64(11), response.Data.ID)
}

func (suite *TestSuiteStandard) TestTransactionCreateCategoryMismatch() {
	suite.signIn()

	// An income category on an expense must be rejected locally
	recorder := suite.request(http.MethodPost, "/v1/movimentacoes",
		`{"tipoMovimentacao":"DESPESA","valor":42.5,"descricao":"Teste","categoria":"SALARIO","dataMovimentacao":"2024-03-10","fonteMovimentacao":"MANUAL","contaId":1}`)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)

	var response controllers.ValidationResponse
	suite.decode(recorder, &response)
	assert.Equal(suite.T(), "categoria inválida para o tipo de movimentação", response.Fields["categoria"])
	assert.Empty(suite.T(), suite.upstream.lastRequest(http.MethodPost, "/api/v1/movimentacoes"))
}

func (suite *TestSuiteStandard) TestTransactionReverse() {
	suite.signIn()

	suite.upstream.respond(http.MethodPost, "/api/v1/movimentacoes/5/estornar", http.StatusOK,
		`{"sucesso":true,"mensagem":"Movimentação estornada","dados":{"id":12,"tipoMovimentacao":"DESPESA","status":"CONCLUIDA"}}`)

	recorder := suite.request(http.MethodPost, "/v1/movimentacoes/5/estornar", "")
	assert.Equal(suite.T(), http.StatusOK, recorder.Code, recorder.Body.String())

	var response controllers.TransactionResponse
	suite.decode(recorder, &response)
	assert.Equal(suite.T(), uint64(12), response.Data.ID)
}

func (suite *TestSuiteStandard) TestTransactionFilterByAccountAndType() {
	suite.signIn()

	suite.upstream.respond(http.MethodGet, "/api/v1/movimentacoes/conta/1/tipo/RECEITA", http.StatusOK,
		`[{"id":1,"contaId":1,"tipoMovimentacao":"RECEITA","valor":100,"status":"CONCLUIDA"}]`)

	recorder := suite.request(http.MethodGet, "/v1/movimentacoes?contaId=1&tipo=RECEITA", "")
	assert.Equal(suite.T(), http.StatusOK, recorder.Code, recorder.Body.String())

	var response controllers.TransactionListResponse
	suite.decode(recorder, &response)
	assert.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), models.TypeIncome, response.Data[0].Type)
}

func (suite *TestSuiteStandard) TestTransactionSuggestCategory() {
	recorder := suite.request(http.MethodGet, "/v1/movimentacoes/categoria-sugerida?descricao=Uber+Trip", "")
	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response controllers.SuggestionResponse
	suite.decode(recorder, &response)
	assert.True(suite.T(), response.Matched)
	assert.Equal(suite.T(), models.CategoryTransport, response.Category)
}

func (suite *TestSuiteStandard) TestTransactionReportPDF() {
	suite.signIn()

	suite.upstream.respond(http.MethodPost, "/api/v1/movimentacoes/relatorio/pdf", http.StatusOK, "%PDF-1.7 fake")

	recorder := suite.request(http.MethodPost, "/v1/movimentacoes/relatorio/pdf", `{"contaId":1}`)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.Equal(suite.T(), "application/pdf", recorder.Header().Get("Content-Type"))
	assert.Contains(suite.T(), recorder.Header().Get("Content-Disposition"), "relatorio.pdf")
	assert.Equal(suite.T(), "%PDF-1.7 fake", recorder.Body.String())
}

func (suite *TestSuiteStandard) TestTransactionErrorPassthrough() {
	suite.signIn()

	suite.upstream.respond(http.MethodDelete, "/api/v1/movimentacoes/9", http.StatusConflict,
		`{"sucesso":false,"mensagem":"Movimentação já estornada"}`)

	recorder := suite.request(http.MethodDelete, "/v1/movimentacoes/9", "")
	assert.Equal(suite.T(), http.StatusConflict, recorder.Code)

	var response struct {
		Error string `json:"error"`
	}
	err := json.Unmarshal(recorder.Body.Bytes(), &response)
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), "Movimentação já estornada", response.Error)
}
