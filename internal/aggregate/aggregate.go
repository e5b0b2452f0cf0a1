// Package aggregate derives read-only financial summaries from raw
// transaction lists fetched from the upstream API. It never mutates its
// inputs and never returns errors: empty or malformed input degrades to
// zero or empty results.
package aggregate

import (
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"

	"github.com/assistente-financeiro/painel/internal/models"
)

// Epsilon is the tolerance used both for reconciliation and as the minimal
// positive chart magnitude substituted for a true zero, so that proportional
// chart renderers do not produce degenerate invisible slices.
var Epsilon = decimal.NewFromFloat(0.0001)

// AccountBalance folds the completed transactions of one account with their
// type sign factors. The sum is order-independent.
func AccountBalance(transactions []models.Transaction, accountID uint64) decimal.Decimal {
	balance := decimal.Zero

	for _, t := range transactions {
		if t.AccountID != accountID || !t.Completed() {
			continue
		}

		factor := decimal.NewFromInt(int64(t.Type.SignFactor()))
		balance = balance.Add(t.Amount.Mul(factor))
	}

	return balance
}

// Summary are the headline numbers of the dashboard.
type Summary struct {
	TotalBalance decimal.Decimal `json:"saldoTotal"`
	TotalIncome  decimal.Decimal `json:"totalReceitas"`
	TotalExpense decimal.Decimal `json:"totalDespesas"`
}

// Summarize computes the dashboard summary over all accounts.
//
// TotalIncome and TotalExpense are independent passes over the completed
// transactions rather than being derived from TotalBalance, so that
// TotalBalance == TotalIncome - TotalExpense can be asserted as a
// consistency property.
func Summarize(accounts []models.Account, transactions []models.Transaction) Summary {
	s := Summary{
		TotalBalance: decimal.Zero,
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
	}

	for _, account := range accounts {
		s.TotalBalance = s.TotalBalance.Add(AccountBalance(transactions, account.ID))
	}

	for _, t := range transactions {
		if !t.Completed() {
			continue
		}

		switch t.Type.SignFactor() {
		case 1:
			s.TotalIncome = s.TotalIncome.Add(t.Amount)
		case -1:
			s.TotalExpense = s.TotalExpense.Add(t.Amount)
		}
	}

	return s
}

// CategoryTotal is one row of the per-category aggregation.
//
// Total carries the true amount and is what gets displayed. ChartValue is
// the magnitude handed to proportional chart renderers: it equals Total
// except that a true zero is replaced with Epsilon.
type CategoryTotal struct {
	Category   models.Category `json:"categoria"`
	Label      string          `json:"label"`
	Total      decimal.Decimal `json:"valor"`
	ChartValue decimal.Decimal `json:"valorGrafico"`
}

// CategoryTotals sums the completed transaction amounts per category, in the
// order of the supplied catalog. Categories without activity are kept with a
// zero total so chart legends stay stable.
func CategoryTotals(transactions []models.Transaction, catalog []models.CategoryInfo) []CategoryTotal {
	byCategory := make(map[models.Category]decimal.Decimal, len(catalog))
	for _, t := range transactions {
		if !t.Completed() {
			continue
		}

		byCategory[t.Category] = byCategory[t.Category].Add(t.Amount)
	}

	totals := make([]CategoryTotal, 0, len(catalog))
	for _, info := range catalog {
		total := byCategory[info.Value]

		chartValue := total
		if !total.IsPositive() {
			chartValue = Epsilon
		}

		totals = append(totals, CategoryTotal{
			Category:   info.Value,
			Label:      info.Label,
			Total:      total,
			ChartValue: chartValue,
		})
	}

	return totals
}

// Discrepancy records one category where two independently derived views
// disagree.
type Discrepancy struct {
	Category  models.Category `json:"categoria"`
	Expected  decimal.Decimal `json:"esperado"`
	Displayed decimal.Decimal `json:"exibido"`
}

// Reconcile compares two independently computed per-category aggregates that
// must be equal. Any discrepancy beyond Epsilon indicates a display-logic
// defect and is reported, never swallowed. Categories present in either map
// are checked.
func Reconcile(expected, displayed map[models.Category]decimal.Decimal) []Discrepancy {
	categories := make([]models.Category, 0, len(expected))
	for category := range expected {
		categories = append(categories, category)
	}
	for category := range displayed {
		if _, ok := expected[category]; !ok {
			categories = append(categories, category)
		}
	}
	slices.Sort(categories)

	var discrepancies []Discrepancy
	for _, category := range categories {
		e := expected[category]
		d := displayed[category]

		if e.Sub(d).Abs().GreaterThan(Epsilon) {
			discrepancies = append(discrepancies, Discrepancy{
				Category:  category,
				Expected:  e,
				Displayed: d,
			})
		}
	}

	return discrepancies
}

// Page is one page of a sliced result set.
type Page[T any] struct {
	Items       []T `json:"items"`
	CurrentPage int `json:"paginaAtual"`
	TotalPages  int `json:"totalPaginas"`
}

// Paginate slices items into pages of pageSize and returns the requested
// page. The page number is clamped to [1, totalPages]; an empty input still
// reports one (empty) page. A non-positive page size falls back to the whole
// list as a single page.
func Paginate[T any](items []T, pageSize, requestedPage int) Page[T] {
	if pageSize <= 0 {
		pageSize = max(len(items), 1)
	}

	totalPages := max(1, (len(items)+pageSize-1)/pageSize)
	currentPage := min(max(requestedPage, 1), totalPages)

	start := (currentPage - 1) * pageSize
	end := min(start+pageSize, len(items))
	if start > len(items) {
		start = len(items)
	}

	return Page[T]{
		Items:       items[start:end],
		CurrentPage: currentPage,
		TotalPages:  totalPages,
	}
}

// Recent returns the n most recent transactions by date, newest first. The
// input is not modified.
func Recent(transactions []models.Transaction, n int) []models.Transaction {
	recent := slices.Clone(transactions)
	slices.SortStableFunc(recent, func(a, b models.Transaction) int {
		return models.ParseDate(b.Date).Compare(models.ParseDate(a.Date))
	})

	if n < len(recent) {
		recent = recent[:n]
	}

	return recent
}

// GoalCounts are the goal tallies shown on the dashboard.
type GoalCounts struct {
	Active  int `json:"metasAtivas"`
	Overdue int `json:"metasVencidas"`
}

// CountGoals tallies goals by the statuses the dashboard cares about.
func CountGoals(goals []models.Goal) GoalCounts {
	var counts GoalCounts

	for _, goal := range goals {
		switch goal.Status {
		case models.GoalActive:
			counts.Active++
		case models.GoalOverdue:
			counts.Overdue++
		}
	}

	return counts
}
