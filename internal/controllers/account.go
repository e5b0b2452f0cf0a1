package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/assistente-financeiro/painel/internal/aggregate"
	"github.com/assistente-financeiro/painel/internal/forms"
	"github.com/assistente-financeiro/painel/internal/httputil"
	"github.com/assistente-financeiro/painel/internal/models"
)

// RegisterAccountRoutes registers the account endpoints.
func (ctrl *Controller) RegisterAccountRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", ctrl.GetAccounts)
		r.POST("", ctrl.CreateAccount)
	}
	{
		r.OPTIONS("/:id", httputil.OptionsGetPutDelete)
		r.GET("/:id", ctrl.GetAccount)
		r.PUT("/:id", ctrl.UpdateAccount)
		r.DELETE("/:id", ctrl.DeleteAccount)
	}

	r.GET("/:id/sugestoes", ctrl.GetOptimizationSuggestions)
}

// AccountListResponse is the body of the account list endpoint.
type AccountListResponse struct {
	Data []models.Account `json:"data"`
}

// AccountResponse is the body of the single-account endpoints.
type AccountResponse struct {
	Data models.Account `json:"data"`
}

// @Summary		List accounts
// @Description	Returns all accounts with their balances derived from completed transactions
// @Tags			Accounts
// @Produce		json
// @Success		200	{object}	AccountListResponse
// @Failure		401	{object}	httputil.HTTPError
// @Failure		502	{object}	httputil.HTTPError
// @Router			/v1/contas [get]
func (ctrl *Controller) GetAccounts(c *gin.Context) {
	if !ctrl.requireSession(c) {
		return
	}

	var (
		accounts     []models.Account
		transactions []models.Transaction
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

	if err := g.Wait(); err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	for i := range accounts {
		accounts[i].Balance = aggregate.AccountBalance(transactions, accounts[i].ID)
	}

	c.JSON(http.StatusOK, AccountListResponse{Data: accounts})
}

// @Summary		Get account
// @Description	Returns one account with its derived balance
// @Tags			Accounts
// @Produce		json
// @Success		200	{object}	AccountResponse
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Param			id	path	uint64	true	"ID of the account"
// @Router			/v1/contas/{id} [get]
func (ctrl *Controller) GetAccount(c *gin.Context) {
	if !ctrl.requireSession(c) {
		return
	}

	id, err := httputil.ParseID(c, "id")
	if err != nil {
		return
	}

	var (
		account      models.Account
		transactions []models.Transaction
	)

	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() (err error) {
		account, err = ctrl.upstream.Account(ctx, id)
		return err
	})
	g.Go(func() (err error) {
		transactions, err = ctrl.upstream.TransactionsByAccount(ctx, id)
		return err
	})

	if err := g.Wait(); err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	account.Balance = aggregate.AccountBalance(transactions, account.ID)

	c.JSON(http.StatusOK, AccountResponse{Data: account})
}

// @Summary		Create account
// @Description	Validates and creates a new account
// @Tags			Accounts
// @Produce		json
// @Success		201		{object}	AccountResponse
// @Failure		400		{object}	ValidationResponse
// @Param			account	body		models.Account	true	"Account"
// @Router			/v1/contas [post]
func (ctrl *Controller) CreateAccount(c *gin.Context) {
	if !ctrl.requireSession(c) {
		return
	}

	var account models.Account
	if err := httputil.BindData(c, &account); err != nil {
		return
	}

	if errs := forms.Account(account); errs.Any() {
		abortValidation(c, errs)
		return
	}

	created, err := ctrl.upstream.CreateAccount(c.Request.Context(), account)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusCreated, AccountResponse{Data: created})
}

// @Summary		Update account
// @Description	Validates and replaces an account
// @Tags			Accounts
// @Produce		json
// @Success		200		{object}	AccountResponse
// @Failure		400		{object}	ValidationResponse
// @Param			id		path		uint64			true	"ID of the account"
// @Param			account	body		models.Account	true	"Account"
// @Router			/v1/contas/{id} [put]
func (ctrl *Controller) UpdateAccount(c *gin.Context) {
	if !ctrl.requireSession(c) {
		return
	}

	id, err := httputil.ParseID(c, "id")
	if err != nil {
		return
	}

	var account models.Account
	if err := httputil.BindData(c, &account); err != nil {
		return
	}

	if errs := forms.Account(account); errs.Any() {
		abortValidation(c, errs)
		return
	}

	updated, err := ctrl.upstream.UpdateAccount(c.Request.Context(), id, account)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusOK, AccountResponse{Data: updated})
}

// @Summary		Delete account
// @Description	Deletes an account
// @Tags			Accounts
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Param			id	path	uint64	true	"ID of the account"
// @Router			/v1/contas/{id} [delete]
func (ctrl *Controller) DeleteAccount(c *gin.Context) {
	if !ctrl.requireSession(c) {
		return
	}

	id, err := httputil.ParseID(c, "id")
	if err != nil {
		return
	}

	if err := ctrl.upstream.DeleteAccount(c.Request.Context(), id); err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AnswerResponse carries a text answer from the AI assistant.
type AnswerResponse struct {
	Data string `json:"data"`
}

// @Summary		Optimization suggestions
// @Description	Asks the AI assistant for savings suggestions for one account
// @Tags			Accounts
// @Produce		json
// @Success		200	{object}	AnswerResponse
// @Failure		502	{object}	httputil.HTTPError
// @Param			id	path	uint64	true	"ID of the account"
// @Router			/v1/contas/{id}/sugestoes [get]
func (ctrl *Controller) GetOptimizationSuggestions(c *gin.Context) {
	if !ctrl.requireSession(c) {
		return
	}

	id, err := httputil.ParseID(c, "id")
	if err != nil {
		return
	}

	suggestions, err := ctrl.upstream.OptimizationSuggestions(c.Request.Context(), id)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusOK, AnswerResponse{Data: suggestions})
}
