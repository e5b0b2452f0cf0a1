package models

// Prompt is the payload for the dynamic AI endpoints.
type Prompt struct {
	Prompt    string   `json:"prompt" validate:"required"`
	AccountID uint64   `json:"contaId,omitempty"`
	History   []string `json:"historico,omitempty"`
}

// QuickQuestions are suggested prompts shown to users of the chat assistant.
var QuickQuestions = []string{
	"Analisar minha situação financeira",
	"Sugestões de economia",
	"Planejamento para aposentadoria",
	"Como aumentar minha reserva de emergência?",
	"Melhores investimentos para meu perfil",
}
