package upstream

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/assistente-financeiro/painel/internal/models"
)

const (
	assistantPath = "/api/ai/assistente-financeiro"
	dynamicPath   = "/api/ai/dinamica"

	// Assistant answers take much longer than regular calls.
	assistantTimeout = 60 * time.Second
	statusTimeout    = 5 * time.Second
)

// withRetry runs an assistant call with the default backoff policy and a
// generous per-attempt timeout. Assistant calls are the only upstream calls
// that are retried.
func withRetry[T any](ctx context.Context, op func(context.Context) (T, error)) (T, error) {
	return RetryWithBackoff(ctx, func(ctx context.Context) (T, error) {
		attemptCtx, cancel := context.WithTimeout(ctx, assistantTimeout)
		defer cancel()

		return op(attemptCtx)
	}, DefaultMaxAttempts, DefaultInitialDelay)
}

// assistantAnswer is the inner body of the financial assistant endpoints.
// Those wrap their text answer in a second envelope inside `dados`.
type assistantAnswer struct {
	Succeeded bool   `json:"sucesso"`
	Message   string `json:"mensagem"`
	Text      string `json:"dados"`
}

// ActionPlan asks the assistant for an action plan to reach a goal.
func (c *Client) ActionPlan(ctx context.Context, goalID uint64) (string, error) {
	answer, err := withRetry(ctx, func(ctx context.Context) (assistantAnswer, error) {
		return exchangeOne[assistantAnswer](ctx, c, http.MethodGet, fmt.Sprintf("%s/plano-acao/%d", assistantPath, goalID), nil, nil)
	})

	return answer.Text, err
}

// AnalyzeFeasibility asks the assistant whether a goal is achievable.
func (c *Client) AnalyzeFeasibility(ctx context.Context, goal models.Goal) (string, error) {
	answer, err := withRetry(ctx, func(ctx context.Context) (assistantAnswer, error) {
		return exchangeOne[assistantAnswer](ctx, c, http.MethodPost, assistantPath+"/analisar-viabilidade", nil, goal)
	})

	return answer.Text, err
}

// OptimizationSuggestions asks the assistant for savings suggestions for one
// account.
func (c *Client) OptimizationSuggestions(ctx context.Context, accountID uint64) (string, error) {
	answer, err := withRetry(ctx, func(ctx context.Context) (assistantAnswer, error) {
		return exchangeOne[assistantAnswer](ctx, c, http.MethodGet, fmt.Sprintf("%s/sugestoes-otimizacao/%d", assistantPath, accountID), nil, nil)
	})

	return answer.Text, err
}

// Converse sends a prompt with the rolling conversation history and optional
// account context.
func (c *Client) Converse(ctx context.Context, prompt models.Prompt) (string, error) {
	return withRetry(ctx, func(ctx context.Context) (string, error) {
		return exchangeOne[string](ctx, c, http.MethodPost, dynamicPath+"/conversacao", nil, prompt)
	})
}

// Answer sends a single prompt with optional account context.
func (c *Client) Answer(ctx context.Context, prompt models.Prompt) (string, error) {
	return withRetry(ctx, func(ctx context.Context) (string, error) {
		return exchangeOne[string](ctx, c, http.MethodPost, dynamicPath+"/responder", nil, prompt)
	})
}

// AnswerSimple sends a single prompt without any context.
func (c *Client) AnswerSimple(ctx context.Context, prompt string) (string, error) {
	return withRetry(ctx, func(ctx context.Context) (string, error) {
		return exchangeOne[string](ctx, c, http.MethodPost, dynamicPath+"/responder-simples", nil, models.Prompt{Prompt: prompt})
	})
}

// status probes one of the assistant status endpoints. Probes never error:
// an unreachable assistant reports as unavailable.
func (c *Client) status(ctx context.Context, path string) bool {
	ctx, cancel := context.WithTimeout(ctx, statusTimeout)
	defer cancel()

	type statusBody struct {
		Succeeded bool `json:"sucesso"`
	}

	body, err := exchangeOne[statusBody](ctx, c, http.MethodGet, path, nil, nil)
	if err != nil {
		return false
	}

	return body.Succeeded
}

// AssistantAvailable probes the financial assistant endpoints.
func (c *Client) AssistantAvailable(ctx context.Context) bool {
	return c.status(ctx, assistantPath+"/status")
}

// DynamicAvailable probes the dynamic conversation endpoints.
func (c *Client) DynamicAvailable(ctx context.Context) bool {
	return c.status(ctx, dynamicPath+"/status")
}
