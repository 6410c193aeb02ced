// Package client is a typed Go SDK for the SaldoGo API. It mirrors the
// route table one method per endpoint and decodes the server's error
// envelope into plain errors.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"saldogo-server/src/models"
)

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// New builds a client for the given base URL, e.g. "http://localhost:4000".
// The key is sent as a bearer credential on every data route.
func New(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: http.DefaultClient,
	}
}

// WithHTTPClient swaps the underlying http.Client, mainly for tests.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

// APIError is a non-2xx response decoded from the server's error envelope.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var envelope models.ErrorResponse
		msg := resp.Status
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Error != "" {
			msg = envelope.Error
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Transactions

// TransactionQuery mirrors the GET /api/transactions query parameters.
type TransactionQuery struct {
	Type       string
	AccountID  string
	CategoryID string
	StartDate  string
	EndDate    string
	Limit      *int
	Offset     *int
}

func (q TransactionQuery) values() url.Values {
	v := url.Values{}
	if q.Type != "" {
		v.Set("type", q.Type)
	}
	if q.AccountID != "" {
		v.Set("account_id", q.AccountID)
	}
	if q.CategoryID != "" {
		v.Set("category_id", q.CategoryID)
	}
	if q.StartDate != "" {
		v.Set("start_date", q.StartDate)
	}
	if q.EndDate != "" {
		v.Set("end_date", q.EndDate)
	}
	if q.Limit != nil {
		v.Set("limit", strconv.Itoa(*q.Limit))
	}
	if q.Offset != nil {
		v.Set("offset", strconv.Itoa(*q.Offset))
	}
	return v
}

func (c *Client) ListTransactions(ctx context.Context, q TransactionQuery) (*models.TransactionList, error) {
	var out models.TransactionList
	if err := c.do(ctx, http.MethodGet, "/api/transactions", q.values(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetTransaction(ctx context.Context, id string) (*models.Transaction, error) {
	var out models.Transaction
	if err := c.do(ctx, http.MethodGet, "/api/transactions/"+id, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateTransaction(ctx context.Context, req models.CreateTransactionRequest) (*models.Transaction, error) {
	var out models.Transaction
	if err := c.do(ctx, http.MethodPost, "/api/transactions", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateTransaction(ctx context.Context, id string, req models.UpdateTransactionRequest) (*models.Transaction, error) {
	var out models.Transaction
	if err := c.do(ctx, http.MethodPut, "/api/transactions/"+id, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteTransaction(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/transactions/"+id, nil, nil, nil)
}

// Accounts

func (c *Client) ListAccounts(ctx context.Context, isActive *bool) ([]models.Account, error) {
	v := url.Values{}
	if isActive != nil {
		v.Set("is_active", strconv.FormatBool(*isActive))
	}
	var out []models.Account
	if err := c.do(ctx, http.MethodGet, "/api/accounts", v, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetAccount(ctx context.Context, id string) (*models.AccountDetail, error) {
	var out models.AccountDetail
	if err := c.do(ctx, http.MethodGet, "/api/accounts/"+id, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateAccount(ctx context.Context, req models.CreateAccountRequest) (*models.Account, error) {
	var out models.Account
	if err := c.do(ctx, http.MethodPost, "/api/accounts", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateAccount(ctx context.Context, id string, req models.UpdateAccountRequest) (*models.Account, error) {
	var out models.Account
	if err := c.do(ctx, http.MethodPut, "/api/accounts/"+id, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteAccount deactivates the account. With hard=true the row is removed
// for good instead.
func (c *Client) DeleteAccount(ctx context.Context, id string, hard bool) error {
	v := url.Values{}
	if hard {
		v.Set("hard_delete", "true")
	}
	return c.do(ctx, http.MethodDelete, "/api/accounts/"+id, v, nil, nil)
}

// Categories

func (c *Client) ListCategories(ctx context.Context, categoryType string) ([]models.Category, error) {
	v := url.Values{}
	if categoryType != "" {
		v.Set("type", categoryType)
	}
	var out []models.Category
	if err := c.do(ctx, http.MethodGet, "/api/categories", v, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetCategory(ctx context.Context, id string) (*models.Category, error) {
	var out models.Category
	if err := c.do(ctx, http.MethodGet, "/api/categories/"+id, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateCategory(ctx context.Context, req models.CreateCategoryRequest) (*models.Category, error) {
	var out models.Category
	if err := c.do(ctx, http.MethodPost, "/api/categories", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateCategory(ctx context.Context, id string, req models.UpdateCategoryRequest) (*models.Category, error) {
	var out models.Category
	if err := c.do(ctx, http.MethodPut, "/api/categories/"+id, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/categories/"+id, nil, nil, nil)
}

// Budgets

func (c *Client) ListBudgets(ctx context.Context) ([]models.Budget, error) {
	var out []models.Budget
	if err := c.do(ctx, http.MethodGet, "/api/budgets", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetBudget(ctx context.Context, id string) (*models.BudgetDetail, error) {
	var out models.BudgetDetail
	if err := c.do(ctx, http.MethodGet, "/api/budgets/"+id, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateBudget(ctx context.Context, req models.CreateBudgetRequest) (*models.Budget, error) {
	var out models.Budget
	if err := c.do(ctx, http.MethodPost, "/api/budgets", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateBudget(ctx context.Context, id string, req models.UpdateBudgetRequest) (*models.Budget, error) {
	var out models.Budget
	if err := c.do(ctx, http.MethodPut, "/api/budgets/"+id, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteBudget(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/budgets/"+id, nil, nil, nil)
}

// Reports

func (c *Client) Dashboard(ctx context.Context, startDate, endDate string) (*models.DashboardResponse, error) {
	v := url.Values{}
	if startDate != "" {
		v.Set("start_date", startDate)
	}
	if endDate != "" {
		v.Set("end_date", endDate)
	}
	var out models.DashboardResponse
	if err := c.do(ctx, http.MethodGet, "/api/dashboard", v, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ReportByCategory(ctx context.Context, transactionType, startDate, endDate string) ([]models.CategoryGroup, error) {
	v := url.Values{}
	if transactionType != "" {
		v.Set("type", transactionType)
	}
	if startDate != "" {
		v.Set("start_date", startDate)
	}
	if endDate != "" {
		v.Set("end_date", endDate)
	}
	var out []models.CategoryGroup
	if err := c.do(ctx, http.MethodGet, "/api/reports/by-category", v, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ReportByMonth(ctx context.Context, transactionType string, months int) ([]models.MonthGroup, error) {
	v := url.Values{}
	if transactionType != "" {
		v.Set("type", transactionType)
	}
	if months > 0 {
		v.Set("months", strconv.Itoa(months))
	}
	var out []models.MonthGroup
	if err := c.do(ctx, http.MethodGet, "/api/reports/by-month", v, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Health hits the open health probe.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/health", nil, nil, nil)
}

// Profile fetches the static application metadata.
func (c *Client) Profile(ctx context.Context) (*models.Profile, error) {
	var out models.Profile
	if err := c.do(ctx, http.MethodGet, "/api/profile", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
