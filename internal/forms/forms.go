// Package forms validates user input before it is submitted to the upstream
// API, surfacing errors per field the way the web forms do.
package forms

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/assistente-financeiro/painel/internal/models"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Errors maps JSON field names to a human-readable message. An empty map
// means the input is valid.
type Errors map[string]string

// Any reports whether at least one field failed validation.
func (e Errors) Any() bool {
	return len(e) > 0
}

// fieldMessage translates a validator failure into the message the form
// shows next to the field.
func fieldMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "campo obrigatório"
	case "email":
		return "email inválido"
	case "max":
		return fmt.Sprintf("deve ter no máximo %s caracteres", e.Param())
	case "min":
		return fmt.Sprintf("deve ter no mínimo %s caracteres", e.Param())
	case "oneof":
		return "valor inválido"
	}

	return "valor inválido"
}

// run validates a struct and collects per-field messages keyed by the JSON
// name taken from the struct tags.
func run(value any, jsonNames map[string]string) Errors {
	errs := Errors{}

	err := validate.Struct(value)
	if err == nil {
		return errs
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errs["_"] = err.Error()
		return errs
	}

	for _, fieldError := range validationErrors {
		name := jsonNames[fieldError.Field()]
		if name == "" {
			name = fieldError.Field()
		}
		errs[name] = fieldMessage(fieldError)
	}

	return errs
}

// Registration validates a user registration.
func Registration(r models.Registration) Errors {
	return run(r, map[string]string{
		"Name":     "nome",
		"Email":    "email",
		"Password": "senha",
		"Role":     "role",
	})
}

// Credentials validates a login request.
func Credentials(c models.Credentials) Errors {
	return run(c, map[string]string{
		"Email":    "email",
		"Password": "senha",
	})
}

// Account validates an account before creation or update.
func Account(a models.Account) Errors {
	return run(a, map[string]string{
		"Bank":        "banco",
		"BranchNo":    "numeroAgencia",
		"AccountNo":   "numeroConta",
		"AccountType": "tipoConta",
		"Owner":       "responsavel",
	})
}

// Transaction validates a transaction before creation or update. Beyond the
// field rules, the amount must be strictly positive and the category must
// belong to the transaction's type.
func Transaction(t models.Transaction) Errors {
	errs := run(t, map[string]string{
		"Type":        "tipoMovimentacao",
		"Amount":      "valor",
		"Description": "descricao",
		"Category":    "categoria",
		"Date":        "dataMovimentacao",
		"Status":      "status",
		"Source":      "fonteMovimentacao",
		"Note":        "observacoes",
		"AccountID":   "contaId",
		"SourceFile":  "arquivoOrigem",
		"ExternalID":  "identificadorExterno",
	})

	if _, ok := errs["valor"]; !ok && !t.Amount.IsPositive() {
		errs["valor"] = "valor deve ser maior que zero"
	}

	if _, ok := errs["categoria"]; !ok && t.Type.Valid() {
		if !categoryAllowed(t.Category, t.Type) {
			errs["categoria"] = "categoria inválida para o tipo de movimentação"
		}
	}

	return errs
}

func categoryAllowed(category models.Category, transactionType models.TransactionType) bool {
	for _, info := range models.CategoriesFor(transactionType) {
		if info.Value == category {
			return true
		}
	}

	return false
}

// Goal validates a savings goal before creation or update. The end date must
// be strictly after the start date and the target amount strictly positive.
func Goal(g models.Goal) Errors {
	errs := run(g, map[string]string{
		"Name":        "nome",
		"Description": "descricao",
		"Type":        "tipoMeta",
		"Target":      "valorMeta",
		"StartDate":   "dataInicio",
		"EndDate":     "dataFim",
		"Status":      "status",
		"Note":        "observacoes",
		"AccountID":   "contaId",
	})

	if _, ok := errs["valorMeta"]; !ok && !g.Target.IsPositive() {
		errs["valorMeta"] = "valor da meta deve ser maior que zero"
	}

	if _, ok := errs["dataFim"]; !ok {
		start := models.ParseDate(g.StartDate)
		end := models.ParseDate(g.EndDate)

		switch {
		case start.IsZero():
			errs["dataInicio"] = "data inválida"
		case end.IsZero():
			errs["dataFim"] = "data inválida"
		case !end.After(start):
			errs["dataFim"] = "data de fim deve ser posterior à data de início"
		}
	}

	return errs
}

// Progress validates a goal progress update.
func Progress(p models.ProgressUpdate) Errors {
	errs := Errors{}

	if !p.Added.IsPositive() {
		errs["valorAdicionado"] = "valor deve ser maior que zero"
	}

	return errs
}
