// Package memory implements db.Store on plain maps. It exists for tests:
// the handlers and client exercise the real router against it without a
// database. Semantics (defaults, ordering, not-found) mirror the SQL store.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"saldogo-server/src/db"
	"saldogo-server/src/models"
	"saldogo-server/src/report"
)

type Store struct {
	mu           sync.RWMutex
	transactions map[string]models.Transaction
	accounts     map[string]models.Account
	categories   map[string]models.Category
	budgets      map[string]models.Budget
	seq          int64
}

var _ db.Store = (*Store)(nil)

func NewStore() *Store {
	return &Store{
		transactions: make(map[string]models.Transaction),
		accounts:     make(map[string]models.Account),
		categories:   make(map[string]models.Category),
		budgets:      make(map[string]models.Budget),
	}
}

// nextCreatedAt hands out strictly increasing timestamps so created_at
// ordering is deterministic even when inserts land in the same nanosecond.
func (s *Store) nextCreatedAt() time.Time {
	s.seq++
	return time.Now().UTC().Add(time.Duration(s.seq) * time.Microsecond)
}

// Transactions

func (s *Store) matchFilter(t models.Transaction, f db.TransactionFilter) bool {
	if f.Type != "" && t.Type != f.Type {
		return false
	}
	if f.AccountID != "" && t.AccountID != f.AccountID {
		return false
	}
	if f.CategoryID != "" && (t.CategoryID == nil || *t.CategoryID != f.CategoryID) {
		return false
	}
	if !f.StartDate.IsZero() && t.TransactionDate.Before(f.StartDate.Time) {
		return false
	}
	if !f.EndDate.IsZero() && t.TransactionDate.After(f.EndDate.Time) {
		return false
	}
	return true
}

// withJoins attaches the account/category/to_account refs the way the SQL
// select does.
func (s *Store) withJoins(t models.Transaction) models.Transaction {
	if a, ok := s.accounts[t.AccountID]; ok {
		t.Account = &models.AccountRef{ID: a.ID, Name: a.Name, Type: a.Type, Icon: a.Icon, Color: a.Color}
	}
	if t.CategoryID != nil {
		if c, ok := s.categories[*t.CategoryID]; ok {
			t.Category = &models.CategoryRef{ID: c.ID, Name: c.Name, Type: c.Type, Icon: c.Icon, Color: c.Color}
		}
	}
	if t.ToAccountID != nil {
		if a, ok := s.accounts[*t.ToAccountID]; ok {
			t.ToAccount = &models.AccountRef{ID: a.ID, Name: a.Name}
		}
	}
	if t.Tags == nil {
		t.Tags = []string{}
	}
	return t
}

func (s *Store) ListTransactions(ctx context.Context, f db.TransactionFilter) ([]models.Transaction, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]models.Transaction, 0)
	for _, t := range s.transactions {
		if s.matchFilter(t, f) {
			matched = append(matched, s.withJoins(t))
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].TransactionDate.Equal(matched[j].TransactionDate.Time) {
			return matched[i].TransactionDate.After(matched[j].TransactionDate.Time)
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	count := len(matched)
	if f.Offset > 0 {
		if f.Offset >= len(matched) {
			matched = matched[:0]
		} else {
			matched = matched[f.Offset:]
		}
	}
	if f.Limit > 0 && len(matched) > f.Limit {
		matched = matched[:f.Limit]
	}
	return matched, count, nil
}

func (s *Store) GetTransaction(ctx context.Context, id string) (*models.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.transactions[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	joined := s.withJoins(t)
	return &joined, nil
}

func (s *Store) CreateTransaction(ctx context.Context, req models.CreateTransactionRequest) (*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	date := req.TransactionDate
	if date.IsZero() {
		date = models.Today()
	}
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}
	t := models.Transaction{
		ID:              uuid.NewString(),
		Type:            req.Type,
		Amount:          req.Amount,
		AccountID:       req.AccountID,
		ToAccountID:     req.ToAccountID,
		CategoryID:      req.CategoryID,
		TransactionDate: date,
		Description:     req.Description,
		Notes:           req.Notes,
		Tags:            tags,
		CreatedAt:       s.nextCreatedAt(),
	}
	s.transactions[t.ID] = t
	joined := s.withJoins(t)
	return &joined, nil
}

func (s *Store) UpdateTransaction(ctx context.Context, id string, req models.UpdateTransactionRequest) (*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.transactions[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	if req.Type != nil {
		t.Type = *req.Type
	}
	if req.Amount != nil {
		t.Amount = *req.Amount
	}
	if req.AccountID != nil {
		t.AccountID = *req.AccountID
	}
	if req.ToAccountID != nil {
		t.ToAccountID = req.ToAccountID
	}
	if req.CategoryID != nil {
		t.CategoryID = req.CategoryID
	}
	if req.TransactionDate != nil {
		t.TransactionDate = *req.TransactionDate
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.Notes != nil {
		t.Notes = req.Notes
	}
	if req.Tags != nil {
		t.Tags = *req.Tags
	}
	s.transactions[id] = t
	joined := s.withJoins(t)
	return &joined, nil
}

func (s *Store) DeleteTransaction(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.transactions[id]; !ok {
		return db.ErrNotFound
	}
	delete(s.transactions, id)
	return nil
}

// Accounts

func (s *Store) ListAccounts(ctx context.Context, isActive *bool) ([]models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	accounts := make([]models.Account, 0)
	for _, a := range s.accounts {
		if isActive != nil && a.IsActive != *isActive {
			continue
		}
		accounts = append(accounts, a)
	}
	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].CreatedAt.After(accounts[j].CreatedAt)
	})
	return accounts, nil
}

func (s *Store) GetAccount(ctx context.Context, id string) (*models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.accounts[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	return &a, nil
}

func (s *Store) CreateAccount(ctx context.Context, req models.CreateAccountRequest) (*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if req.Type == "" {
		req.Type = "checking"
	}
	if req.Balance == "" {
		req.Balance = "0"
	}
	if req.Currency == "" {
		req.Currency = "IDR"
	}
	if req.Icon == "" {
		req.Icon = "💳"
	}
	if req.Color == "" {
		req.Color = "#3B82F6"
	}
	a := models.Account{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Type:      req.Type,
		Balance:   req.Balance,
		Currency:  req.Currency,
		Icon:      req.Icon,
		Color:     req.Color,
		IsActive:  true,
		CreatedAt: s.nextCreatedAt(),
	}
	s.accounts[a.ID] = a
	return &a, nil
}

func (s *Store) UpdateAccount(ctx context.Context, id string, req models.UpdateAccountRequest) (*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.accounts[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	if req.Name != nil {
		a.Name = *req.Name
	}
	if req.Type != nil {
		a.Type = *req.Type
	}
	if req.Balance != nil {
		a.Balance = *req.Balance
	}
	if req.Currency != nil {
		a.Currency = *req.Currency
	}
	if req.Icon != nil {
		a.Icon = *req.Icon
	}
	if req.Color != nil {
		a.Color = *req.Color
	}
	if req.IsActive != nil {
		a.IsActive = *req.IsActive
	}
	s.accounts[id] = a
	return &a, nil
}

func (s *Store) SoftDeleteAccount(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[id]
	if !ok {
		return db.ErrNotFound
	}
	a.IsActive = false
	s.accounts[id] = a
	return nil
}

func (s *Store) DeleteAccount(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[id]; !ok {
		return db.ErrNotFound
	}
	delete(s.accounts, id)
	return nil
}

// Categories

func (s *Store) ListCategories(ctx context.Context, categoryType string) ([]models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	categories := make([]models.Category, 0)
	for _, c := range s.categories {
		if categoryType != "" && c.Type != categoryType {
			continue
		}
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Name < categories[j].Name
	})
	return categories, nil
}

func (s *Store) GetCategory(ctx context.Context, id string) (*models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.categories[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	return &c, nil
}

func (s *Store) CreateCategory(ctx context.Context, req models.CreateCategoryRequest) (*models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if req.Icon == "" {
		req.Icon = "📝"
	}
	if req.Color == "" {
		req.Color = "#6B7280"
	}
	c := models.Category{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Type:      req.Type,
		Icon:      req.Icon,
		Color:     req.Color,
		CreatedAt: s.nextCreatedAt(),
	}
	s.categories[c.ID] = c
	return &c, nil
}

func (s *Store) UpdateCategory(ctx context.Context, id string, req models.UpdateCategoryRequest) (*models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.categories[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Type != nil {
		c.Type = *req.Type
	}
	if req.Icon != nil {
		c.Icon = *req.Icon
	}
	if req.Color != nil {
		c.Color = *req.Color
	}
	s.categories[id] = c
	return &c, nil
}

func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.categories[id]; !ok {
		return db.ErrNotFound
	}
	delete(s.categories, id)
	return nil
}

// Budgets

func (s *Store) budgetWithCategory(b models.Budget) models.Budget {
	if c, ok := s.categories[b.CategoryID]; ok {
		b.Category = &models.CategoryRef{ID: c.ID, Name: c.Name, Icon: c.Icon, Color: c.Color}
	}
	return b
}

func (s *Store) ListBudgets(ctx context.Context) ([]models.Budget, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	budgets := make([]models.Budget, 0)
	for _, b := range s.budgets {
		budgets = append(budgets, s.budgetWithCategory(b))
	}
	sort.Slice(budgets, func(i, j int) bool {
		return budgets[i].CreatedAt.After(budgets[j].CreatedAt)
	})
	return budgets, nil
}

func (s *Store) GetBudget(ctx context.Context, id string) (*models.Budget, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.budgets[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	joined := s.budgetWithCategory(b)
	return &joined, nil
}

func (s *Store) CreateBudget(ctx context.Context, req models.CreateBudgetRequest) (*models.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := models.Budget{
		ID:         uuid.NewString(),
		CategoryID: req.CategoryID,
		Amount:     req.Amount,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		CreatedAt:  s.nextCreatedAt(),
	}
	s.budgets[b.ID] = b
	joined := s.budgetWithCategory(b)
	return &joined, nil
}

func (s *Store) UpdateBudget(ctx context.Context, id string, req models.UpdateBudgetRequest) (*models.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.budgets[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	if req.CategoryID != nil {
		b.CategoryID = *req.CategoryID
	}
	if req.Amount != nil {
		b.Amount = *req.Amount
	}
	if req.StartDate != nil {
		b.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		b.EndDate = req.EndDate
	}
	s.budgets[id] = b
	joined := s.budgetWithCategory(b)
	return &joined, nil
}

func (s *Store) DeleteBudget(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.budgets[id]; !ok {
		return db.ErrNotFound
	}
	delete(s.budgets, id)
	return nil
}

// Report projections

func (s *Store) DashboardRows(ctx context.Context, start, end models.Date) ([]report.TransactionRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := make([]report.TransactionRow, 0)
	for _, t := range s.transactions {
		if !start.IsZero() && t.TransactionDate.Before(start.Time) {
			continue
		}
		if !end.IsZero() && t.TransactionDate.After(end.Time) {
			continue
		}
		rows = append(rows, report.TransactionRow{Type: t.Type, Amount: t.Amount, Date: t.TransactionDate})
	}
	return rows, nil
}

func (s *Store) CategoryRows(ctx context.Context, transactionType string, start, end models.Date) ([]report.CategoryRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := make([]report.CategoryRow, 0)
	for _, t := range s.transactions {
		if transactionType != "" && t.Type != transactionType {
			continue
		}
		if !start.IsZero() && t.TransactionDate.Before(start.Time) {
			continue
		}
		if !end.IsZero() && t.TransactionDate.After(end.Time) {
			continue
		}
		row := report.CategoryRow{Amount: t.Amount}
		if t.CategoryID != nil {
			if c, ok := s.categories[*t.CategoryID]; ok {
				row.Category = &models.CategoryRef{ID: c.ID, Name: c.Name, Icon: c.Icon, Color: c.Color}
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *Store) MonthRows(ctx context.Context, transactionType string) ([]report.TransactionRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := make([]report.TransactionRow, 0)
	for _, t := range s.transactions {
		if transactionType != "" && t.Type != transactionType {
			continue
		}
		rows = append(rows, report.TransactionRow{Type: t.Type, Amount: t.Amount, Date: t.TransactionDate})
	}
	return rows, nil
}

func (s *Store) AccountBalanceRows(ctx context.Context) ([]report.AccountRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := make([]report.AccountRow, 0)
	for _, a := range s.accounts {
		rows = append(rows, report.AccountRow{Balance: a.Balance, IsActive: a.IsActive})
	}
	return rows, nil
}

func (s *Store) AccountTransactionRows(ctx context.Context, accountID string) ([]report.TransactionRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := make([]report.TransactionRow, 0)
	for _, t := range s.transactions {
		if t.AccountID != accountID {
			continue
		}
		rows = append(rows, report.TransactionRow{Type: t.Type, Amount: t.Amount, Date: t.TransactionDate})
	}
	return rows, nil
}

func (s *Store) BudgetExpenseRows(ctx context.Context, categoryID string, start, end models.Date) ([]report.ExpenseRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := make([]report.ExpenseRow, 0)
	for _, t := range s.transactions {
		if t.Type != models.TransactionTypeExpense {
			continue
		}
		if t.CategoryID == nil || *t.CategoryID != categoryID {
			continue
		}
		if t.TransactionDate.Before(start.Time) || t.TransactionDate.After(end.Time) {
			continue
		}
		rows = append(rows, report.ExpenseRow{Amount: t.Amount})
	}
	return rows, nil
}
