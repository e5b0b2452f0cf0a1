package models

import "github.com/shopspring/decimal"

// GoalType is the type of a savings goal.
type GoalType string

const (
	GoalMonthlySavings     GoalType = "ECONOMIA_MENSAL"
	GoalYearlySavings      GoalType = "ECONOMIA_ANUAL"
	GoalEmergencyFund      GoalType = "RESERVA_EMERGENCIA"
	GoalSpecificInvestment GoalType = "INVESTIMENTO_ESPECIFICO"
	GoalPurchase           GoalType = "COMPRA_OBJETO"
	GoalTravel             GoalType = "VIAGEM"
	GoalEducation          GoalType = "EDUCACAO"
	GoalHealth             GoalType = "SAUDE"
	GoalOther              GoalType = "OUTROS"
)

// GoalTypes lists all valid goal types in display order.
var GoalTypes = []GoalType{
	GoalMonthlySavings, GoalYearlySavings, GoalEmergencyFund, GoalSpecificInvestment,
	GoalPurchase, GoalTravel, GoalEducation, GoalHealth, GoalOther,
}

// GoalStatus is the lifecycle status of a goal.
type GoalStatus string

const (
	GoalActive    GoalStatus = "ATIVA"
	GoalCompleted GoalStatus = "CONCLUIDA"
	GoalPaused    GoalStatus = "PAUSADA"
	GoalCancelled GoalStatus = "CANCELADA"
	GoalOverdue   GoalStatus = "VENCIDA"
)

// GoalStatuses lists all valid goal statuses.
var GoalStatuses = []GoalStatus{GoalActive, GoalCompleted, GoalPaused, GoalCancelled, GoalOverdue}

// Goal is a savings goal as exchanged with the upstream API.
type Goal struct {
	ID          uint64          `json:"id,omitempty"`
	Name        string          `json:"nome" validate:"required,max=200"`
	Description string          `json:"descricao,omitempty" validate:"max=1000"`
	Type        GoalType        `json:"tipoMeta" validate:"required"`
	Target      decimal.Decimal `json:"valorMeta" validate:"required"`
	Current     decimal.Decimal `json:"valorAtual,omitempty"`
	StartDate   string          `json:"dataInicio" validate:"required"`
	EndDate     string          `json:"dataFim" validate:"required"`
	Status      GoalStatus      `json:"status,omitempty" validate:"omitempty,oneof=ATIVA CONCLUIDA PAUSADA CANCELADA VENCIDA"`
	Note        string          `json:"observacoes,omitempty" validate:"max=1000"`
	AccountID   uint64          `json:"contaId" validate:"required"`
	Completion  *float64        `json:"percentualConcluido,omitempty"`
}

// CompletionPercent returns the goal's completion percentage. It prefers the
// value reported by the upstream and falls back to deriving it from the
// target and current amounts.
func (g Goal) CompletionPercent() float64 {
	if g.Completion != nil {
		return *g.Completion
	}

	if g.Target.IsZero() {
		return 0
	}

	percent, _ := g.Current.Div(g.Target).Mul(decimal.NewFromInt(100)).Float64()
	return percent
}

// ProgressUpdate is the payload for adding money to a goal.
type ProgressUpdate struct {
	Added decimal.Decimal `json:"valorAdicionado" form:"valorAdicionado" validate:"required"`
}
