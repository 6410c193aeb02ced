package db

import (
	"context"
	"errors"

	"saldogo-server/src/models"
	"saldogo-server/src/report"
)

// ErrNotFound is returned by lookups and id-scoped writes when no row
// matches. Handlers map it to 404.
var ErrNotFound = errors.New("record not found")

// TransactionFilter narrows transaction listings. Zero values mean "no
// filter"; Limit 0 means unpaged.
type TransactionFilter struct {
	Type       string
	AccountID  string
	CategoryID string
	StartDate  models.Date
	EndDate    models.Date
	Limit      int
	Offset     int
}

// Store is the data-access handle the server constructs once and threads
// into every handler. The SQL implementation lives in src/db/sql; tests use
// the in-memory one in src/db/memory.
type Store interface {
	// Transactions
	ListTransactions(ctx context.Context, f TransactionFilter) ([]models.Transaction, int, error)
	GetTransaction(ctx context.Context, id string) (*models.Transaction, error)
	CreateTransaction(ctx context.Context, req models.CreateTransactionRequest) (*models.Transaction, error)
	UpdateTransaction(ctx context.Context, id string, req models.UpdateTransactionRequest) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error

	// Accounts
	ListAccounts(ctx context.Context, isActive *bool) ([]models.Account, error)
	GetAccount(ctx context.Context, id string) (*models.Account, error)
	CreateAccount(ctx context.Context, req models.CreateAccountRequest) (*models.Account, error)
	UpdateAccount(ctx context.Context, id string, req models.UpdateAccountRequest) (*models.Account, error)
	SoftDeleteAccount(ctx context.Context, id string) error
	DeleteAccount(ctx context.Context, id string) error

	// Categories
	ListCategories(ctx context.Context, categoryType string) ([]models.Category, error)
	GetCategory(ctx context.Context, id string) (*models.Category, error)
	CreateCategory(ctx context.Context, req models.CreateCategoryRequest) (*models.Category, error)
	UpdateCategory(ctx context.Context, id string, req models.UpdateCategoryRequest) (*models.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	// Budgets
	ListBudgets(ctx context.Context) ([]models.Budget, error)
	GetBudget(ctx context.Context, id string) (*models.Budget, error)
	CreateBudget(ctx context.Context, req models.CreateBudgetRequest) (*models.Budget, error)
	UpdateBudget(ctx context.Context, id string, req models.UpdateBudgetRequest) (*models.Budget, error)
	DeleteBudget(ctx context.Context, id string) error

	// Narrow reads feeding the aggregation engine.
	DashboardRows(ctx context.Context, start, end models.Date) ([]report.TransactionRow, error)
	CategoryRows(ctx context.Context, transactionType string, start, end models.Date) ([]report.CategoryRow, error)
	MonthRows(ctx context.Context, transactionType string) ([]report.TransactionRow, error)
	AccountBalanceRows(ctx context.Context) ([]report.AccountRow, error)
	AccountTransactionRows(ctx context.Context, accountID string) ([]report.TransactionRow, error)
	BudgetExpenseRows(ctx context.Context, categoryID string, start, end models.Date) ([]report.ExpenseRow, error)
}
