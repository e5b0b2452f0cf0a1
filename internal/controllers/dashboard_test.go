package controllers_test

import (
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/assistente-financeiro/painel/internal/aggregate"
	"github.com/assistente-financeiro/painel/internal/controllers"
	"github.com/assistente-financeiro/painel/internal/models"
)

func (suite *TestSuiteStandard) stubDashboardData() {
	suite.upstream.respond(http.MethodGet, "/api/v1/contas", http.StatusOK,
		`{"sucesso":true,"dados":[{"id":1,"banco":"Itaú"},{"id":2,"banco":"Nubank"}]}`)

	suite.upstream.respond(http.MethodGet, "/api/v1/movimentacoes", http.StatusOK,
		`{"sucesso":true,"dados":[
			{"id":1,"contaId":1,"tipoMovimentacao":"RECEITA","valor":2000,"categoria":"SALARIO","status":"CONCLUIDA","dataMovimentacao":"2024-03-01"},
			{"id":2,"contaId":1,"tipoMovimentacao":"DESPESA","valor":500,"categoria":"ALIMENTACAO","status":"CONCLUIDA","dataMovimentacao":"2024-03-05"},
			{"id":3,"contaId":2,"tipoMovimentacao":"RECEITA","valor":1000,"categoria":"VENDAS","status":"CONCLUIDA","dataMovimentacao":"2024-03-10"},
			{"id":4,"contaId":2,"tipoMovimentacao":"DESPESA","valor":9999,"categoria":"LAZER","status":"PENDENTE","dataMovimentacao":"2024-03-11"}
		]}`)

	suite.upstream.respond(http.MethodGet, "/api/v1/metas", http.StatusOK,
		`{"sucesso":true,"dados":[{"id":1,"status":"ATIVA"},{"id":2,"status":"VENCIDA"},{"id":3,"status":"CONCLUIDA"}]}`)
}

func (suite *TestSuiteStandard) TestDashboard() {
	suite.signIn()
	suite.stubDashboardData()

	recorder := suite.request(http.MethodGet, "/v1/dashboard", "")
	assert.Equal(suite.T(), http.StatusOK, recorder.Code, recorder.Body.String())

	var response controllers.DashboardResponse
	suite.decode(recorder, &response)

	data := response.Data
	assert.True(suite.T(), data.Summary.TotalIncome.Equal(decimal.NewFromInt(3000)))
	assert.True(suite.T(), data.Summary.TotalExpense.Equal(decimal.NewFromInt(500)))
	assert.True(suite.T(), data.Summary.TotalBalance.Equal(decimal.NewFromInt(2500)))

	assert.Equal(suite.T(), "R$ 2.500,00", data.SummaryFormatted.TotalBalance)
	assert.Equal(suite.T(), "R$ 3.000,00", data.SummaryFormatted.TotalIncome)
	assert.Equal(suite.T(), "R$ 500,00", data.SummaryFormatted.TotalExpense)

	assert.Equal(suite.T(), 1, data.Goals.Active)
	assert.Equal(suite.T(), 1, data.Goals.Overdue)

	// Recent transactions come newest first and skip nothing by status
	assert.Len(suite.T(), data.Recent, 4)
	assert.Equal(suite.T(), uint64(4), data.Recent[0].ID)
	assert.Equal(suite.T(), uint64(1), data.Recent[3].ID)

	// The category rows cover the full catalog; inactive categories keep a
	// true zero but get the minimal chart magnitude
	assert.Len(suite.T(), data.Categories, len(models.AllCategories()))
	for _, row := range data.Categories {
		switch row.Category {
		case models.CategorySalary:
			assert.True(suite.T(), row.Total.Equal(decimal.NewFromInt(2000)))
		case models.CategoryLeisure:
			// The pending transaction must not count
			assert.True(suite.T(), row.Total.IsZero())
			assert.True(suite.T(), row.ChartValue.Equal(aggregate.Epsilon))
		}
	}

	// Consistent data carries no warnings
	assert.Empty(suite.T(), response.Warnings)
	assert.Empty(suite.T(), response.Discrepancies)
}

func (suite *TestSuiteStandard) TestDashboardRequiresSession() {
	recorder := suite.request(http.MethodGet, "/v1/dashboard", "")
	assert.Equal(suite.T(), http.StatusUnauthorized, recorder.Code)
}

func (suite *TestSuiteStandard) TestDashboardUpstreamFailure() {
	suite.signIn()
	suite.stubDashboardData()

	// One failing fetch fails the whole join, no partial dashboards
	suite.upstream.respond(http.MethodGet, "/api/v1/metas", http.StatusInternalServerError,
		`{"sucesso":false,"mensagem":"Erro interno"}`)

	recorder := suite.request(http.MethodGet, "/v1/dashboard", "")
	assert.Equal(suite.T(), http.StatusInternalServerError, recorder.Code)

	var response struct {
		Error string `json:"error"`
	}
	suite.decode(recorder, &response)
	assert.Equal(suite.T(), "Erro interno", response.Error)
}
