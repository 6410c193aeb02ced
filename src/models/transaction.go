package models

import "time"

// Transaction amounts are carried as decimal strings end to end; they are
// only parsed (with shopspring/decimal) at the point arithmetic happens.
type Transaction struct {
	ID              string       `json:"id"`
	Type            string       `json:"type"`
	Amount          string       `json:"amount"`
	AccountID       string       `json:"account_id"`
	ToAccountID     *string      `json:"to_account_id"`
	CategoryID      *string      `json:"category_id"`
	TransactionDate Date         `json:"transaction_date"`
	Description     string       `json:"description"`
	Notes           *string      `json:"notes"`
	Tags            []string     `json:"tags"`
	CreatedAt       time.Time    `json:"created_at"`
	Account         *AccountRef  `json:"account,omitempty"`
	Category        *CategoryRef `json:"category,omitempty"`
	ToAccount       *AccountRef  `json:"to_account,omitempty"`
}

// AccountRef is the joined account shape attached to transactions.
type AccountRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type,omitempty"`
	Icon  string `json:"icon,omitempty"`
	Color string `json:"color,omitempty"`
}

// CategoryRef is the joined category shape attached to transactions and budgets.
type CategoryRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type,omitempty"`
	Icon  string `json:"icon,omitempty"`
	Color string `json:"color,omitempty"`
}

const (
	TransactionTypeIncome   = "income"
	TransactionTypeExpense  = "expense"
	TransactionTypeTransfer = "transfer"
)
