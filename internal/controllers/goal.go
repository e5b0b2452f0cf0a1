package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/assistente-financeiro/painel/internal/forms"
	"github.com/assistente-financeiro/painel/internal/httputil"
	"github.com/assistente-financeiro/painel/internal/models"
)

// RegisterGoalRoutes registers the savings goal endpoints.
func (ctrl *Controller) RegisterGoalRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", ctrl.GetGoals)
		r.POST("", ctrl.CreateGoal)
	}
	{
		r.OPTIONS("/:id", httputil.OptionsGetPutDelete)
		r.GET("/:id", ctrl.GetGoal)
		r.PUT("/:id", ctrl.UpdateGoal)
		r.DELETE("/:id", ctrl.DeleteGoal)
	}

	r.POST("/com-analise-ia", ctrl.CreateGoalWithAnalysis)
	r.PUT("/:id/progresso", ctrl.UpdateGoalProgress)
	r.POST("/:id/pausar", ctrl.PauseGoal)
	r.POST("/:id/reativar", ctrl.ReactivateGoal)
	r.GET("/:id/plano-acao", ctrl.GetActionPlan)
	r.POST("/analisar-viabilidade", ctrl.AnalyzeFeasibility)
	r.POST("/verificar-vencidas", ctrl.CheckOverdueGoals)
	r.GET("/conta/:contaId", ctrl.GetGoalsByAccount)
	r.GET("/conta/:contaId/vencidas", ctrl.GetOverdueGoalsByAccount)
}

// GoalListResponse is the body of the goal list endpoints.
type GoalListResponse struct {
	Data []models.Goal `json:"data"`
}

// GoalResponse is the body of the single-goal endpoints.
type GoalResponse struct {
	Data models.Goal `json:"data"`
}

// fillCompletion ensures every goal reports its completion percentage, even
// when the upstream omitted it.
func fillCompletion(goals []models.Goal) {
	for i := range goals {
		if goals[i].Completion == nil {
			percent := goals[i].CompletionPercent()
			goals[i].Completion = &percent
		}
	}
}

// @Summary		List goals
// @Description	Returns all savings goals
// @Tags			Goals
// @Produce		json
// @Success		200	{object}	GoalListResponse
// @Failure		401	{object}	httputil.HTTPError
// @Router			/v1/metas [get]
func (ctrl *Controller) GetGoals(c *gin.Context) {
	if !ctrl.requireSession(c) {
		return
	}

	goals, err := ctrl.upstream.Goals(c.Request.Context())
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	fillCompletion(goals)
	c.JSON(http.StatusOK, GoalListResponse{Data: goals})
}

// @Summary		Get goal
// @Description	Returns one savings goal
// @Tags			Goals
// @Produce		json
// @Success		200	{object}	GoalResponse
// @Failure		404	{object}	httputil.HTTPError
// @Param			id	path	uint64	true	"ID of the goal"
// @Router			/v1/metas/{id} [get]
func (ctrl *Controller) GetGoal(c *gin.Context) {
	if !ctrl.requireSession(c) {
		return
	}

	id, err := httputil.ParseID(c, "id")
	if err != nil {
		return
	}

	goal, err := ctrl.upstream.Goal(c.Request.Context(), id)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusOK, GoalResponse{Data: goal})
}

// createGoal handles both goal creation endpoints.
func (ctrl *Controller) createGoal(c *gin.Context, create func(models.Goal) (models.Goal, error)) {
	var goal models.Goal
	if err := httputil.BindData(c, &goal); err != nil {
		return
	}

	if errs := forms.Goal(goal); errs.Any() {
		abortValidation(c, errs)
		return
	}

	created, err := create(goal)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusCreated, GoalResponse{Data: created})
}

// @Summary		Create goal
// @Description	Validates and creates a new savings goal
// @Tags			Goals
// @Produce		json
// @Success		201		{object}	GoalResponse
// @Failure		400		{object}	ValidationResponse
// @Param			goal	body		models.Goal	true	"Goal"
// @Router			/v1/metas [post]
func (ctrl *Controller) CreateGoal(c *gin.Context) {
	if !ctrl.requireSession(c) {
		return
	}

	ctrl.createGoal(c, func(goal models.Goal) (models.Goal, error) {
		return ctrl.upstream.CreateGoal(c.Request.Context(), goal)
	})
}

// @Summary		Create goal with AI analysis
// @Description	Validates and creates a goal, then has the AI assistant analyze its feasibility upstream
// @Tags			Goals
// @Produce		json
// @Success		201		{object}	GoalResponse
// @Failure		400		{object}	ValidationResponse
// @Param			goal	body		models.Goal	true	"Goal"
// @Router			/v1/metas/com-analise-ia [post]
func (ctrl *Controller) CreateGoalWithAnalysis(c *gin.Context) {
	if !ctrl.requireSession(c) {
		return
	}

	ctrl.createGoal(c, func(goal models.Goal) (models.Goal, error) {
		return ctrl.upstream.CreateGoalWithAnalysis(c.Request.Context(), goal)
	})
}

// @Summary		Update goal
// @Description	Validates and replaces a savings goal
// @Tags			Goals
// @Produce		json
// @Success		200		{object}	GoalResponse
// @Failure		400		{object}	ValidationResponse
// @Param			id		path		uint64		true	"ID of the goal"
// @Param			goal	body		models.Goal	true	"Goal"
// @Router			/v1/metas/{id} [put]
func (ctrl *Controller) UpdateGoal(c *gin.Context) {
	if !ctrl.requireSession(c) {
		return
	}

	id, err := httputil.ParseID(c, "id")
	if err != nil {
		return
	}

	var goal models.Goal
	if err := httputil.BindData(c, &goal); err != nil {
		return
	}

	if errs := forms.Goal(goal); errs.Any() {
		abortValidation(c, errs)
		return
	}

	updated, err := ctrl.upstream.UpdateGoal(c.Request.Context(), id, goal)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusOK, GoalResponse{Data: updated})
}

// @Summary		Delete goal
// @Description	Deletes a savings goal
// @Tags			Goals
// @Success		204
// @Failure		404	{object}	httputil.HTTPError
// @Param			id	path	uint64	true	"ID of the goal"
// @Router			/v1/metas/{id} [delete]
func (ctrl *Controller) DeleteGoal(c *gin.Context) {
	if !ctrl.requireSession(c) {
		return
	}

	id, err := httputil.ParseID(c, "id")
	if err != nil {
		return
	}

	if err := ctrl.upstream.DeleteGoal(c.Request.Context(), id); err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Update goal progress
// @Description	Adds money to a goal's progress
// @Tags			Goals
// @Produce		json
// @Success		200	{object}	GoalResponse
// @Failure		400	{object}	ValidationResponse
// @Param			id				path	uint64	true	"ID of the goal"
// @Param			valorAdicionado	query	number	true	"Amount to add"
// @Router			/v1/metas/{id}/progresso [put]
func (ctrl *Controller) UpdateGoalProgress(c *gin.Context) {
	if !ctrl.requireSession(c) {
		return
	}

	id, err := httputil.ParseID(c, "id")
	if err != nil {
		return
	}

	var update models.ProgressUpdate
	if err := c.ShouldBindQuery(&update); err != nil {
		httputil.NewError(c, http.StatusBadRequest, httputil.ErrInvalidBody)
		return
	}

	if errs := forms.Progress(update); errs.Any() {
		abortValidation(c, errs)
		return
	}

	updated, err := ctrl.upstream.UpdateGoalProgress(c.Request.Context(), id, update)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusOK, GoalResponse{Data: updated})
}

// @Summary		Pause goal
// @Description	Pauses an active goal
// @Tags			Goals
// @Produce		json
// @Success		200	{object}	GoalResponse
// @Failure		400	{object}	httputil.HTTPError
// @Param			id	path	uint64	true	"ID of the goal"
// @Router			/v1/metas/{id}/pausar [post]
func (ctrl *Controller) PauseGoal(c *gin.Context) {
	ctrl.goalTransition(c, ctrl.upstream.PauseGoal)
}

// @Summary		Reactivate goal
// @Description	Reactivates a paused goal
// @Tags			Goals
// @Produce		json
// @Success		200	{object}	GoalResponse
// @Failure		400	{object}	httputil.HTTPError
// @Param			id	path	uint64	true	"ID of the goal"
// @Router			/v1/metas/{id}/reativar [post]
func (ctrl *Controller) ReactivateGoal(c *gin.Context) {
	ctrl.goalTransition(c, ctrl.upstream.ReactivateGoal)
}

func (ctrl *Controller) goalTransition(c *gin.Context, transition func(ctx context.Context, id uint64) (models.Goal, error)) {
	if !ctrl.requireSession(c) {
		return
	}

	id, err := httputil.ParseID(c, "id")
	if err != nil {
		return
	}

	goal, err := transition(c.Request.Context(), id)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusOK, GoalResponse{Data: goal})
}

// @Summary		Action plan
// @Description	Asks the AI assistant for an action plan to reach the goal
// @Tags			Goals
// @Produce		json
// @Success		200	{object}	AnswerResponse
// @Failure		502	{object}	httputil.HTTPError
// @Param			id	path	uint64	true	"ID of the goal"
// @Router			/v1/metas/{id}/plano-acao [get]
func (ctrl *Controller) GetActionPlan(c *gin.Context) {
	if !ctrl.requireSession(c) {
		return
	}

	id, err := httputil.ParseID(c, "id")
	if err != nil {
		return
	}

	plan, err := ctrl.upstream.ActionPlan(c.Request.Context(), id)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusOK, AnswerResponse{Data: plan})
}

// @Summary		Analyze feasibility
// @Description	Asks the AI assistant whether a goal is achievable, without creating it
// @Tags			Goals
// @Produce		json
// @Success		200		{object}	AnswerResponse
// @Failure		400		{object}	ValidationResponse
// @Param			goal	body		models.Goal	true	"Goal"
// @Router			/v1/metas/analisar-viabilidade [post]
func (ctrl *Controller) AnalyzeFeasibility(c *gin.Context) {
	if !ctrl.requireSession(c) {
		return
	}

	var goal models.Goal
	if err := httputil.BindData(c, &goal); err != nil {
		return
	}

	if errs := forms.Goal(goal); errs.Any() {
		abortValidation(c, errs)
		return
	}

	analysis, err := ctrl.upstream.AnalyzeFeasibility(c.Request.Context(), goal)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusOK, AnswerResponse{Data: analysis})
}

// @Summary		Check overdue goals
// @Description	Has the upstream re-evaluate goal deadlines and mark overdue goals
// @Tags			Goals
// @Success		204
// @Failure		502	{object}	httputil.HTTPError
// @Router			/v1/metas/verificar-vencidas [post]
func (ctrl *Controller) CheckOverdueGoals(c *gin.Context) {
	if !ctrl.requireSession(c) {
		return
	}

	if err := ctrl.upstream.CheckOverdueGoals(c.Request.Context()); err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Goals by account
// @Description	Returns the goals of one account
// @Tags			Goals
// @Produce		json
// @Success		200	{object}	GoalListResponse
// @Param			contaId	path	uint64	true	"ID of the account"
// @Router			/v1/metas/conta/{contaId} [get]
func (ctrl *Controller) GetGoalsByAccount(c *gin.Context) {
	ctrl.goalsByAccount(c, ctrl.upstream.GoalsByAccount)
}

// @Summary		Overdue goals by account
// @Description	Returns the overdue goals of one account
// @Tags			Goals
// @Produce		json
// @Success		200	{object}	GoalListResponse
// @Param			contaId	path	uint64	true	"ID of the account"
// @Router			/v1/metas/conta/{contaId}/vencidas [get]
func (ctrl *Controller) GetOverdueGoalsByAccount(c *gin.Context) {
	ctrl.goalsByAccount(c, ctrl.upstream.OverdueGoalsByAccount)
}

func (ctrl *Controller) goalsByAccount(c *gin.Context, list func(ctx context.Context, accountID uint64) ([]models.Goal, error)) {
	if !ctrl.requireSession(c) {
		return
	}

	accountID, err := httputil.ParseID(c, "contaId")
	if err != nil {
		return
	}

	goals, err := list(c.Request.Context(), accountID)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	fillCompletion(goals)
	c.JSON(http.StatusOK, GoalListResponse{Data: goals})
}
