package models

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Request payloads are typed per entity and validated before anything is
// persisted. Unknown fields are rejected at decode time by the handlers.

var (
	ErrInvalidTransactionType = errors.New("Invalid type. Must be: income, expense, or transfer")
	ErrInvalidCategoryType    = errors.New("Invalid type. Must be: income or expense")
	ErrInvalidAmount          = errors.New("amount must be a non-negative decimal")
)

func validTransactionType(t string) bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense || t == TransactionTypeTransfer
}

func validCategoryType(t string) bool {
	return t == CategoryTypeIncome || t == CategoryTypeExpense
}

// validAmount accepts any non-negative decimal string.
func validAmount(s string) bool {
	d, err := decimal.NewFromString(s)
	return err == nil && !d.IsNegative()
}

type CreateTransactionRequest struct {
	Type            string   `json:"type"`
	Amount          string   `json:"amount"`
	AccountID       string   `json:"account_id"`
	ToAccountID     *string  `json:"to_account_id"`
	CategoryID      *string  `json:"category_id"`
	TransactionDate Date     `json:"transaction_date"`
	Description     string   `json:"description"`
	Notes           *string  `json:"notes"`
	Tags            []string `json:"tags"`
}

func (r CreateTransactionRequest) Validate() error {
	if r.Type == "" || r.Amount == "" || r.AccountID == "" {
		return errors.New("Missing required fields: type, amount, account_id")
	}
	if !validTransactionType(r.Type) {
		return ErrInvalidTransactionType
	}
	if !validAmount(r.Amount) {
		return ErrInvalidAmount
	}
	if r.Type == TransactionTypeTransfer && (r.ToAccountID == nil || *r.ToAccountID == "") {
		return errors.New("to_account_id is required for transfer transactions")
	}
	return nil
}

// UpdateTransactionRequest carries partial updates; nil means "leave as is".
// It has no id or created_at fields, so those can never be overwritten.
type UpdateTransactionRequest struct {
	Type            *string   `json:"type"`
	Amount          *string   `json:"amount"`
	AccountID       *string   `json:"account_id"`
	ToAccountID     *string   `json:"to_account_id"`
	CategoryID      *string   `json:"category_id"`
	TransactionDate *Date     `json:"transaction_date"`
	Description     *string   `json:"description"`
	Notes           *string   `json:"notes"`
	Tags            *[]string `json:"tags"`
}

func (r UpdateTransactionRequest) Validate() error {
	if r.Type != nil && !validTransactionType(*r.Type) {
		return ErrInvalidTransactionType
	}
	if r.Amount != nil && !validAmount(*r.Amount) {
		return ErrInvalidAmount
	}
	return nil
}

func (r UpdateTransactionRequest) Empty() bool {
	return r.Type == nil && r.Amount == nil && r.AccountID == nil && r.ToAccountID == nil &&
		r.CategoryID == nil && r.TransactionDate == nil && r.Description == nil &&
		r.Notes == nil && r.Tags == nil
}

type CreateAccountRequest struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Balance  string `json:"balance"`
	Currency string `json:"currency"`
	Icon     string `json:"icon"`
	Color    string `json:"color"`
}

func (r CreateAccountRequest) Validate() error {
	if r.Name == "" {
		return errors.New("Account name is required")
	}
	if r.Balance != "" && !validAmount(r.Balance) {
		return errors.New("balance must be a non-negative decimal")
	}
	return nil
}

type UpdateAccountRequest struct {
	Name     *string `json:"name"`
	Type     *string `json:"type"`
	Balance  *string `json:"balance"`
	Currency *string `json:"currency"`
	Icon     *string `json:"icon"`
	Color    *string `json:"color"`
	IsActive *bool   `json:"is_active"`
}

func (r UpdateAccountRequest) Validate() error {
	if r.Balance != nil && !validAmount(*r.Balance) {
		return errors.New("balance must be a non-negative decimal")
	}
	return nil
}

func (r UpdateAccountRequest) Empty() bool {
	return r.Name == nil && r.Type == nil && r.Balance == nil && r.Currency == nil &&
		r.Icon == nil && r.Color == nil && r.IsActive == nil
}

type CreateCategoryRequest struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

func (r CreateCategoryRequest) Validate() error {
	if r.Name == "" || r.Type == "" {
		return errors.New("Missing required fields: name, type")
	}
	if !validCategoryType(r.Type) {
		return ErrInvalidCategoryType
	}
	return nil
}

type UpdateCategoryRequest struct {
	Name  *string `json:"name"`
	Type  *string `json:"type"`
	Icon  *string `json:"icon"`
	Color *string `json:"color"`
}

func (r UpdateCategoryRequest) Validate() error {
	if r.Type != nil && !validCategoryType(*r.Type) {
		return ErrInvalidCategoryType
	}
	return nil
}

func (r UpdateCategoryRequest) Empty() bool {
	return r.Name == nil && r.Type == nil && r.Icon == nil && r.Color == nil
}

type CreateBudgetRequest struct {
	CategoryID string `json:"category_id"`
	Amount     string `json:"amount"`
	StartDate  Date   `json:"start_date"`
	EndDate    *Date  `json:"end_date"`
}

func (r CreateBudgetRequest) Validate() error {
	if r.CategoryID == "" || r.Amount == "" || r.StartDate.IsZero() {
		return errors.New("Missing required fields: category_id, amount, start_date")
	}
	if !validAmount(r.Amount) {
		return ErrInvalidAmount
	}
	if r.EndDate != nil && r.EndDate.Before(r.StartDate.Time) {
		return errors.New("end_date must not be before start_date")
	}
	return nil
}

type UpdateBudgetRequest struct {
	CategoryID *string `json:"category_id"`
	Amount     *string `json:"amount"`
	StartDate  *Date   `json:"start_date"`
	EndDate    *Date   `json:"end_date"`
}

func (r UpdateBudgetRequest) Validate() error {
	if r.Amount != nil && !validAmount(*r.Amount) {
		return ErrInvalidAmount
	}
	return nil
}

func (r UpdateBudgetRequest) Empty() bool {
	return r.CategoryID == nil && r.Amount == nil && r.StartDate == nil && r.EndDate == nil
}
