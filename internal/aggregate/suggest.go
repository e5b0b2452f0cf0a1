package aggregate

import (
	"strings"

	"github.com/ryanuber/go-glob"

	"github.com/assistente-financeiro/painel/internal/models"
)

// MatchRule maps transaction descriptions to a category by glob pattern.
// Rules are evaluated in order; the first match wins.
type MatchRule struct {
	Match    string          `json:"match"`
	Category models.Category `json:"categoria"`
}

// DefaultMatchRules cover common descriptions of imported bank statements.
var DefaultMatchRules = []MatchRule{
	{"*salario*", models.CategorySalary},
	{"*supermercado*", models.CategoryFood},
	{"*restaurante*", models.CategoryFood},
	{"*ifood*", models.CategoryFood},
	{"*uber*", models.CategoryTransport},
	{"*combustivel*", models.CategoryTransport},
	{"*aluguel*", models.CategoryHousing},
	{"*condominio*", models.CategoryHousing},
	{"*farmacia*", models.CategoryHealth},
	{"*energia*", models.CategoryUtilities},
	{"*agua*", models.CategoryUtilities},
	{"*internet*", models.CategoryUtilities},
	{"*transferencia*", models.CategoryAccountTransfer},
	{"*cdb*", models.CategoryCDB},
	{"*poupanca*", models.CategorySavings},
}

// SuggestCategory returns the category of the first rule whose pattern
// matches the description, case-insensitively. The boolean reports whether
// any rule matched.
func SuggestCategory(description string, rules []MatchRule) (models.Category, bool) {
	normalized := strings.ToLower(strings.TrimSpace(description))

	for _, rule := range rules {
		if glob.Glob(strings.ToLower(rule.Match), normalized) {
			return rule.Category, true
		}
	}

	return "", false
}
