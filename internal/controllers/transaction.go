package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/assistente-financeiro/painel/internal/aggregate"
	"github.com/assistente-financeiro/painel/internal/forms"
	"github.com/assistente-financeiro/painel/internal/httputil"
	"github.com/assistente-financeiro/painel/internal/models"
)

// RegisterTransactionRoutes registers the transaction endpoints.
func (ctrl *Controller) RegisterTransactionRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", ctrl.GetTransactions)
		r.POST("", ctrl.CreateTransaction)
	}
	{
		r.OPTIONS("/:id", httputil.OptionsGetPutDelete)
		r.GET("/:id", ctrl.GetTransaction)
		r.PUT("/:id", ctrl.UpdateTransaction)
		r.DELETE("/:id", ctrl.DeleteTransaction)
	}

	r.POST("/:id/estornar", ctrl.ReverseTransaction)
	r.GET("/categoria-sugerida", ctrl.SuggestCategory)
	r.POST("/relatorio/dados", ctrl.GetReportData)
	r.POST("/relatorio/pdf", ctrl.GetReportPDF)
}

// defaultPageSize is used when the query does not specify one.
const defaultPageSize = 10

// TransactionQuery filters and paginates the transaction list.
type TransactionQuery struct {
	AccountID uint64                 `form:"contaId"`
	Type      models.TransactionType `form:"tipo"`
	StartDate string                 `form:"dataInicio"`
	EndDate   string                 `form:"dataFim"`
	Page      int                    `form:"pagina"`
	PageSize  int                    `form:"tamanhoPagina"`
}

// Pagination describes the slice of the list that was returned.
type Pagination struct {
	CurrentPage int `json:"paginaAtual" example:"1"`
	TotalPages  int `json:"totalPaginas" example:"4"`
	PageSize    int `json:"tamanhoPagina" example:"10"`
	Total       int `json:"total" example:"37"`
}

// TransactionListResponse is the body of the transaction list endpoint.
type TransactionListResponse struct {
	Data       []models.Transaction `json:"data"`
	Pagination Pagination           `json:"pagination"`
}

// TransactionResponse is the body of the single-transaction endpoints.
type TransactionResponse struct {
	Data models.Transaction `json:"data"`
}

// @Summary		List transactions
// @Description	Returns transactions, optionally filtered by account, type or period, paginated
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionListResponse
// @Failure		401	{object}	httputil.HTTPError
// @Failure		502	{object}	httputil.HTTPError
// @Param			contaId			query	uint64	false	"Filter by account"
// @Param			tipo			query	string	false	"Filter by type, requires contaId"
// @Param			dataInicio		query	string	false	"Period start, requires contaId"
// @Param			dataFim			query	string	false	"Period end, requires contaId"
// @Param			pagina			query	int		false	"Page to return, clamped to the available pages. Defaults to 1."
// @Param			tamanhoPagina	query	int		false	"Page size. Defaults to 10."
// @Router			/v1/movimentacoes [get]
func (ctrl *Controller) GetTransactions(c *gin.Context) {
	if !ctrl.requireSession(c) {
		return
	}

	var query TransactionQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httputil.NewError(c, http.StatusBadRequest, httputil.ErrInvalidBody)
		return
	}

	ctx := c.Request.Context()

	var transactions []models.Transaction
	var err error
	switch {
	case query.AccountID != 0 && query.Type != "":
		transactions, err = ctrl.upstream.TransactionsByAccountAndType(ctx, query.AccountID, query.Type)
	case query.AccountID != 0 && query.StartDate != "" && query.EndDate != "":
		transactions, err = ctrl.upstream.TransactionsByPeriod(ctx, query.AccountID, query.StartDate, query.EndDate)
	case query.AccountID != 0:
		transactions, err = ctrl.upstream.TransactionsByAccount(ctx, query.AccountID)
	default:
		transactions, err = ctrl.upstream.Transactions(ctx)
	}
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	pageSize := query.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	page := aggregate.Paginate(transactions, pageSize, query.Page)

	c.JSON(http.StatusOK, TransactionListResponse{
		Data: page.Items,
		Pagination: Pagination{
			CurrentPage: page.CurrentPage,
			TotalPages:  page.TotalPages,
			PageSize:    pageSize,
			Total:       len(transactions),
		},
	})
}

// @Summary		Get transaction
// @Description	Returns one transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		404	{object}	httputil.HTTPError
// @Param			id	path	uint64	true	"ID of the transaction"
// @Router			/v1/movimentacoes/{id} [get]
func (ctrl *Controller) GetTransaction(c *gin.Context) {
	if !ctrl.requireSession(c) {
		return
	}

	id, err := httputil.ParseID(c, "id")
	if err != nil {
		return
	}

	transaction, err := ctrl.upstream.Transaction(c.Request.Context(), id)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusOK, TransactionResponse{Data: transaction})
}

// @Summary		Create transaction
// @Description	Validates and creates a new transaction
// @Tags			Transactions
// @Produce		json
// @Success		201			{object}	TransactionResponse
// @Failure		400			{object}	ValidationResponse
// @Param			transaction	body		models.Transaction	true	"Transaction"
// @Router			/v1/movimentacoes [post]
func (ctrl *Controller) CreateTransaction(c *gin.Context) {
	if !ctrl.requireSession(c) {
		return
	}

	var transaction models.Transaction
	if err := httputil.BindData(c, &transaction); err != nil {
		return
	}

	if errs := forms.Transaction(transaction); errs.Any() {
		abortValidation(c, errs)
		return
	}

	created, err := ctrl.upstream.CreateTransaction(c.Request.Context(), transaction)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusCreated, TransactionResponse{Data: created})
}

// @Summary		Update transaction
// @Description	Validates and replaces a transaction
// @Tags			Transactions
// @Produce		json
// @Success		200			{object}	TransactionResponse
// @Failure		400			{object}	ValidationResponse
// @Param			id			path		uint64				true	"ID of the transaction"
// @Param			transaction	body		models.Transaction	true	"Transaction"
// @Router			/v1/movimentacoes/{id} [put]
func (ctrl *Controller) UpdateTransaction(c *gin.Context) {
	if !ctrl.requireSession(c) {
		return
	}

	id, err := httputil.ParseID(c, "id")
	if err != nil {
		return
	}

	var transaction models.Transaction
	if err := httputil.BindData(c, &transaction); err != nil {
		return
	}

	if errs := forms.Transaction(transaction); errs.Any() {
		abortValidation(c, errs)
		return
	}

	updated, err := ctrl.upstream.UpdateTransaction(c.Request.Context(), id, transaction)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusOK, TransactionResponse{Data: updated})
}

// @Summary		Delete transaction
// @Description	Deletes a transaction
// @Tags			Transactions
// @Success		204
// @Failure		404	{object}	httputil.HTTPError
// @Param			id	path	uint64	true	"ID of the transaction"
// @Router			/v1/movimentacoes/{id} [delete]
func (ctrl *Controller) DeleteTransaction(c *gin.Context) {
	if !ctrl.requireSession(c) {
		return
	}

	id, err := httputil.ParseID(c, "id")
	if err != nil {
		return
	}

	if err := ctrl.upstream.DeleteTransaction(c.Request.Context(), id); err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Reverse transaction
// @Description	Reverses (estorna) a completed transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		400	{object}	httputil.HTTPError
// @Param			id	path	uint64	true	"ID of the transaction"
// @Router			/v1/movimentacoes/{id}/estornar [post]
func (ctrl *Controller) ReverseTransaction(c *gin.Context) {
	if !ctrl.requireSession(c) {
		return
	}

	id, err := httputil.ParseID(c, "id")
	if err != nil {
		return
	}

	reversed, err := ctrl.upstream.ReverseTransaction(c.Request.Context(), id)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusOK, TransactionResponse{Data: reversed})
}

// SuggestionResponse is the body of the category suggestion endpoint.
type SuggestionResponse struct {
	Category models.Category `json:"categoria"`
	Matched  bool            `json:"encontrada"`
}

// @Summary		Suggest category
// @Description	Suggests a category for a transaction description, for file imports
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	SuggestionResponse
// @Param			descricao	query	string	true	"Transaction description"
// @Router			/v1/movimentacoes/categoria-sugerida [get]
func (ctrl *Controller) SuggestCategory(c *gin.Context) {
	category, matched := aggregate.SuggestCategory(c.Query("descricao"), aggregate.DefaultMatchRules)

	c.JSON(http.StatusOK, SuggestionResponse{
		Category: category,
		Matched:  matched,
	})
}

// ReportDataResponse is the body of the report data endpoint.
type ReportDataResponse struct {
	Data models.ReportData `json:"data"`
}

// @Summary		Report data
// @Description	Returns the pre-aggregated report object for the given parameters
// @Tags			Transactions
// @Produce		json
// @Success		200		{object}	ReportDataResponse
// @Failure		400		{object}	ValidationResponse
// @Param			request	body		models.ReportRequest	true	"Report parameters"
// @Router			/v1/movimentacoes/relatorio/dados [post]
func (ctrl *Controller) GetReportData(c *gin.Context) {
	if !ctrl.requireSession(c) {
		return
	}

	var request models.ReportRequest
	if err := httputil.BindData(c, &request); err != nil {
		return
	}

	data, err := ctrl.upstream.ReportData(c.Request.Context(), request)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusOK, ReportDataResponse{Data: data})
}

// @Summary		Report PDF
// @Description	Streams the rendered report PDF. The document is rendered upstream and passed through untouched.
// @Tags			Transactions
// @Produce		application/pdf
// @Success		200
// @Failure		400	{object}	ValidationResponse
// @Param			request	body	models.ReportRequest	true	"Report parameters"
// @Router			/v1/movimentacoes/relatorio/pdf [post]
func (ctrl *Controller) GetReportPDF(c *gin.Context) {
	if !ctrl.requireSession(c) {
		return
	}

	var request models.ReportRequest
	if err := httputil.BindData(c, &request); err != nil {
		return
	}

	blob, err := ctrl.upstream.ReportPDF(c.Request.Context(), request)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="relatorio.pdf"`)
	c.Data(http.StatusOK, "application/pdf", blob)
}
