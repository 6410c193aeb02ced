package handlers

import (
	"net/http"
	"time"

	"saldogo-server/src/models"
)

func Root() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"message": "🚀 SaldoGo API is running!",
			"version": "1.0.0",
			"endpoints": map[string]string{
				"profile":      "/api/profile",
				"transactions": "/api/transactions",
				"accounts":     "/api/accounts",
			},
		})
	}
}

func Profile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.Profile{
			AppName:     "SaldoGo",
			Version:     "1.0.0",
			Description: "Aplikasi PWA sederhana untuk melacak pemasukan dan pengeluaran.",
			Author:      "SaldoGo Team",
			Features: []string{
				"Multi-account management",
				"Income & expense tracking",
				"Budget monitoring",
				"Category management",
				"Financial reports",
				"Transfer between accounts",
			},
			Endpoints: map[string]string{
				"transactions": "/api/transactions",
				"accounts":     "/api/accounts",
				"categories":   "/api/categories",
				"budgets":      "/api/budgets",
				"dashboard":    "/api/dashboard",
				"reports":      "/api/reports/*",
			},
		})
	}
}

func Health(startTime time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"status":    "OK",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"uptime":    time.Since(startTime).Seconds(),
		})
	}
}
