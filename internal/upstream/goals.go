package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/assistente-financeiro/painel/internal/models"
)

const goalsPath = "/api/v1/metas"

// Goals lists all savings goals of the signed-in user.
func (c *Client) Goals(ctx context.Context) ([]models.Goal, error) {
	return getList[models.Goal](ctx, c, goalsPath, nil)
}

// Goal fetches one goal by ID.
func (c *Client) Goal(ctx context.Context, id uint64) (models.Goal, error) {
	return exchangeOne[models.Goal](ctx, c, http.MethodGet, fmt.Sprintf("%s/%d", goalsPath, id), nil, nil)
}

// CreateGoal creates a goal.
func (c *Client) CreateGoal(ctx context.Context, goal models.Goal) (models.Goal, error) {
	return exchangeOne[models.Goal](ctx, c, http.MethodPost, goalsPath, nil, goal)
}

// CreateGoalWithAnalysis creates a goal and has the upstream run an AI
// feasibility analysis on it.
func (c *Client) CreateGoalWithAnalysis(ctx context.Context, goal models.Goal) (models.Goal, error) {
	return exchangeOne[models.Goal](ctx, c, http.MethodPost, goalsPath+"/com-analise-ia", nil, goal)
}

// UpdateGoal replaces a goal.
func (c *Client) UpdateGoal(ctx context.Context, id uint64, goal models.Goal) (models.Goal, error) {
	return exchangeOne[models.Goal](ctx, c, http.MethodPut, fmt.Sprintf("%s/%d", goalsPath, id), nil, goal)
}

// DeleteGoal deletes a goal.
func (c *Client) DeleteGoal(ctx context.Context, id uint64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", goalsPath, id), nil, nil)
	return err
}

// GoalsByAccount lists the goals of one account.
func (c *Client) GoalsByAccount(ctx context.Context, accountID uint64) ([]models.Goal, error) {
	return getList[models.Goal](ctx, c, fmt.Sprintf("%s/conta/%d", goalsPath, accountID), nil)
}

// UpdateGoalProgress adds money to a goal's progress.
func (c *Client) UpdateGoalProgress(ctx context.Context, id uint64, update models.ProgressUpdate) (models.Goal, error) {
	query := url.Values{"valorAdicionado": {update.Added.String()}}
	return exchangeOne[models.Goal](ctx, c, http.MethodPut, fmt.Sprintf("%s/%d/progresso", goalsPath, id), query, nil)
}

// PauseGoal pauses an active goal.
func (c *Client) PauseGoal(ctx context.Context, id uint64) (models.Goal, error) {
	return exchangeOne[models.Goal](ctx, c, http.MethodPost, fmt.Sprintf("%s/%d/pausar", goalsPath, id), nil, nil)
}

// ReactivateGoal reactivates a paused goal.
func (c *Client) ReactivateGoal(ctx context.Context, id uint64) (models.Goal, error) {
	return exchangeOne[models.Goal](ctx, c, http.MethodPost, fmt.Sprintf("%s/%d/reativar", goalsPath, id), nil, nil)
}

// CheckOverdueGoals asks the upstream to re-evaluate goal deadlines and mark
// overdue goals.
func (c *Client) CheckOverdueGoals(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, goalsPath+"/verificar-vencidas", nil, nil)
	return err
}

// OverdueGoalsByAccount lists the overdue goals of one account. This
// endpoint is known to answer in three shapes: an object with a `metas` key,
// a bare array, or the regular envelope. All three are normalized.
func (c *Client) OverdueGoalsByAccount(ctx context.Context, accountID uint64) ([]models.Goal, error) {
	raw, err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s/conta/%d/vencidas", goalsPath, accountID), nil, nil)
	if err != nil {
		return nil, err
	}

	var keyed struct {
		Goals []models.Goal `json:"metas"`
	}
	if err := json.Unmarshal(raw, &keyed); err == nil && keyed.Goals != nil {
		return keyed.Goals, nil
	}

	goals, _, err := decodeList[models.Goal](raw)
	return goals, err
}
