package api

import (
	"time"

	"github.com/go-chi/chi/v5"

	"saldogo-server/src/db"
	"saldogo-server/src/handlers"
	"saldogo-server/src/middleware"
)

// NewRouter wires the full route table. The store is constructed once by
// the caller and threaded into every handler; no handler reaches for a
// global client.
func NewRouter(store db.Store, serviceKey string, allowedOrigins []string) *chi.Mux {
	startTime := time.Now()

	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware(allowedOrigins))

	r.Get("/", handlers.Root())

	r.Route("/api", func(r chi.Router) {
		// Open probes
		r.Get("/health", handlers.Health(startTime))
		r.Get("/profile", handlers.Profile())

		// Data routes behind the service credential
		r.With(middleware.ServiceKeyMiddleware(serviceKey)).Group(func(r chi.Router) {
			// Transactions
			r.Get("/transactions", handlers.ListTransactions(store))
			r.Post("/transactions", handlers.CreateTransaction(store))
			r.Get("/transactions/{id}", handlers.GetTransaction(store))
			r.Put("/transactions/{id}", handlers.UpdateTransaction(store))
			r.Delete("/transactions/{id}", handlers.DeleteTransaction(store))

			// Accounts
			r.Get("/accounts", handlers.ListAccounts(store))
			r.Post("/accounts", handlers.CreateAccount(store))
			r.Get("/accounts/{id}", handlers.GetAccount(store))
			r.Put("/accounts/{id}", handlers.UpdateAccount(store))
			r.Delete("/accounts/{id}", handlers.DeleteAccount(store))

			// Categories
			r.Get("/categories", handlers.ListCategories(store))
			r.Post("/categories", handlers.CreateCategory(store))
			r.Get("/categories/{id}", handlers.GetCategory(store))
			r.Put("/categories/{id}", handlers.UpdateCategory(store))
			r.Delete("/categories/{id}", handlers.DeleteCategory(store))

			// Budgets
			r.Get("/budgets", handlers.ListBudgets(store))
			r.Post("/budgets", handlers.CreateBudget(store))
			r.Get("/budgets/{id}", handlers.GetBudget(store))
			r.Put("/budgets/{id}", handlers.UpdateBudget(store))
			r.Delete("/budgets/{id}", handlers.DeleteBudget(store))

			// Analytics
			r.Get("/dashboard", handlers.Dashboard(store))
			r.Get("/reports/by-category", handlers.ReportByCategory(store))
			r.Get("/reports/by-month", handlers.ReportByMonth(store))
		})
	})

	return r
}
