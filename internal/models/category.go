package models

// Category is a financial category as the upstream API knows it. Which
// categories are valid depends on the transaction type.
type Category string

const (
	// Income
	CategorySalary           Category = "SALARIO"
	CategorySales            Category = "VENDAS"
	CategoryInvestmentIncome Category = "INVESTIMENTOS_RENDIMENTOS"
	CategoryLoansReceived    Category = "EMPRESTIMOS_RECEBIDOS"
	CategoryOtherIncome      Category = "OUTRAS_RECEITAS"

	// Expenses
	CategoryFood            Category = "ALIMENTACAO"
	CategoryTransport       Category = "TRANSPORTE"
	CategoryHousing         Category = "MORADIA"
	CategoryHealth          Category = "SAUDE"
	CategoryEducation       Category = "EDUCACAO"
	CategoryLeisure         Category = "LAZER"
	CategoryUtilities       Category = "UTILIDADES"
	CategoryShopping        Category = "COMPRAS"
	CategoryServices        Category = "SERVICOS"
	CategoryInvestmentsMade Category = "INVESTIMENTOS_APLICADOS"
	CategoryLoansPaid       Category = "EMPRESTIMOS_PAGOS"
	CategoryOtherExpenses   Category = "OUTRAS_DESPESAS"

	// Transfers
	CategoryAccountTransfer Category = "TRANSFERENCIA_ENTRE_CONTAS"

	// Investments
	CategorySavings Category = "POUPANCA"
	CategoryCDB     Category = "CDB"
	CategoryFunds   Category = "FUNDOS"
	CategoryStocks  Category = "ACOES"
	CategoryCrypto  Category = "CRIPTOMOEDAS"
)

// CategoryInfo pairs a category with its display label.
type CategoryInfo struct {
	Value Category `json:"value"`
	Label string   `json:"label"`
}

// Per-type category catalogs. The order is fixed so that chart legends stay
// stable across page loads.
var (
	IncomeCategories = []CategoryInfo{
		{CategorySalary, "Salário"},
		{CategorySales, "Vendas"},
		{CategoryInvestmentIncome, "Investimentos/Rendimentos"},
		{CategoryLoansReceived, "Empréstimos Recebidos"},
		{CategoryOtherIncome, "Outras Receitas"},
	}

	ExpenseCategories = []CategoryInfo{
		{CategoryFood, "Alimentação"},
		{CategoryTransport, "Transporte"},
		{CategoryHousing, "Moradia"},
		{CategoryHealth, "Saúde"},
		{CategoryEducation, "Educação"},
		{CategoryLeisure, "Lazer"},
		{CategoryUtilities, "Utilidades"},
		{CategoryShopping, "Compras"},
		{CategoryServices, "Serviços"},
		{CategoryInvestmentsMade, "Investimentos Aplicados"},
		{CategoryLoansPaid, "Empréstimos Pagos"},
		{CategoryOtherExpenses, "Outras Despesas"},
	}

	TransferCategories = []CategoryInfo{
		{CategoryAccountTransfer, "Transferência entre Contas"},
	}

	InvestmentCategories = []CategoryInfo{
		{CategorySavings, "Poupança"},
		{CategoryCDB, "CDB"},
		{CategoryFunds, "Fundos"},
		{CategoryStocks, "Ações"},
		{CategoryCrypto, "Criptomoedas"},
	}
)

// AllCategories returns the full ordered catalog: income, expense, transfer,
// investment.
func AllCategories() []CategoryInfo {
	all := make([]CategoryInfo, 0, len(IncomeCategories)+len(ExpenseCategories)+len(TransferCategories)+len(InvestmentCategories))
	all = append(all, IncomeCategories...)
	all = append(all, ExpenseCategories...)
	all = append(all, TransferCategories...)
	all = append(all, InvestmentCategories...)
	return all
}

// CategoriesFor returns the catalog for a transaction type. An unknown type
// returns an empty catalog.
func CategoriesFor(t TransactionType) []CategoryInfo {
	switch t {
	case TypeIncome:
		return IncomeCategories
	case TypeExpense:
		return ExpenseCategories
	case TypeTransfer:
		return TransferCategories
	case TypeInvestment:
		return InvestmentCategories
	}

	return nil
}
