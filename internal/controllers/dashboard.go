package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/assistente-financeiro/painel/internal/aggregate"
	"github.com/assistente-financeiro/painel/internal/format"
	"github.com/assistente-financeiro/painel/internal/httputil"
	"github.com/assistente-financeiro/painel/internal/models"
)

// RegisterDashboardRoutes registers the dashboard endpoint.
func (ctrl *Controller) RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGet)
	r.GET("", ctrl.GetDashboard)
}

// recentCount is how many transactions the dashboard table shows.
const recentCount = 10

// ChartEntry is one bar of the income-vs-expense chart.
type ChartEntry struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"valor"`
}

// SummaryFormatted carries the headline numbers pre-rendered as pt-BR
// currency strings.
type SummaryFormatted struct {
	TotalBalance string `json:"saldoTotal" example:"R$ 1.234,56"`
	TotalIncome  string `json:"totalReceitas" example:"R$ 2.000,00"`
	TotalExpense string `json:"totalDespesas" example:"R$ 765,44"`
}

// DashboardData is everything one dashboard render needs.
type DashboardData struct {
	Summary          aggregate.Summary         `json:"resumo"`
	SummaryFormatted SummaryFormatted          `json:"resumoFormatado"`
	Goals            aggregate.GoalCounts      `json:"metas"`
	IncomeVsExpense  []ChartEntry              `json:"entradaSaida"`
	Categories       []aggregate.CategoryTotal `json:"categorias"`
	Recent           []models.Transaction      `json:"movimentacoesRecentes"`
}

// DashboardResponse wraps the dashboard data with non-fatal diagnostics.
type DashboardResponse struct {
	Data          DashboardData           `json:"data"`
	Warnings      []string                `json:"warnings,omitempty"`
	Discrepancies []aggregate.Discrepancy `json:"inconsistencias,omitempty"`
}

// @Summary		Dashboard
// @Description	Returns the aggregated dashboard: balances, income vs expense, category totals and recent transactions
// @Tags			Dashboard
// @Produce		json
// @Success		200	{object}	DashboardResponse
// @Failure		401	{object}	httputil.HTTPError
// @Failure		502	{object}	httputil.HTTPError
// @Router			/v1/dashboard [get]
func (ctrl *Controller) GetDashboard(c *gin.Context) {
	if !ctrl.requireSession(c) {
		return
	}

	accounts, transactions, goals, err := ctrl.fetchAll(c)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	summary := aggregate.Summarize(accounts, transactions)
	categories := aggregate.CategoryTotals(transactions, models.AllCategories())

	response := DashboardResponse{
		Data: DashboardData{
			Summary: summary,
			SummaryFormatted: SummaryFormatted{
				TotalBalance: format.Currency(summary.TotalBalance),
				TotalIncome:  format.Currency(summary.TotalIncome),
				TotalExpense: format.Currency(summary.TotalExpense),
			},
			Goals: aggregate.CountGoals(goals),
			IncomeVsExpense: []ChartEntry{
				{Name: "Entrada", Value: summary.TotalIncome},
				{Name: "Saída", Value: summary.TotalExpense},
			},
			Categories: categories,
			Recent:     aggregate.Recent(transactions, recentCount),
		},
	}

	// Consistency self-check: the chart rows must match an independent
	// per-category reduction of the same transactions. A mismatch is a
	// display-logic defect and is surfaced as a warning, never as a
	// failure.
	if discrepancies := reconcileCategories(transactions, categories); len(discrepancies) > 0 {
		log.Warn().
			Int("categories", len(discrepancies)).
			Msg("category totals diverge from chart data")

		response.Warnings = append(response.Warnings, "algumas categorias do gráfico diferem dos dados")
		response.Discrepancies = discrepancies
	}

	c.JSON(http.StatusOK, response)
}

// fetchAll loads accounts, transactions and goals concurrently. If any
// fetch fails the whole join fails and no partial data is returned.
func (ctrl *Controller) fetchAll(c *gin.Context) ([]models.Account, []models.Transaction, []models.Goal, error) {
	var (
		accounts     []models.Account
		transactions []models.Transaction
		goals        []models.Goal
	)

	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() (err error) {
		accounts, err = ctrl.upstream.Accounts(ctx)
		return err
	})
	g.Go(func() (err error) {
		transactions, err = ctrl.upstream.Transactions(ctx)
		return err
	})
	g.Go(func() (err error) {
		goals, err = ctrl.upstream.Goals(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, nil, err
	}

	return accounts, transactions, goals, nil
}

// reconcileCategories checks the chart rows against a per-category sum
// computed directly from the transactions. Only the displayed value channel
// is compared; the epsilon substituted into the chart-magnitude channel must
// never leak into it.
func reconcileCategories(transactions []models.Transaction, rows []aggregate.CategoryTotal) []aggregate.Discrepancy {
	expected := make(map[models.Category]decimal.Decimal)
	for _, t := range transactions {
		if t.Completed() {
			expected[t.Category] = expected[t.Category].Add(t.Amount)
		}
	}

	displayed := make(map[models.Category]decimal.Decimal, len(rows))
	for _, row := range rows {
		displayed[row.Category] = row.Total
	}

	return aggregate.Reconcile(expected, displayed)
}
