package handlers

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"saldogo-server/src/db"
	"saldogo-server/src/models"
	"saldogo-server/src/report"
)

func ListBudgets(store db.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		budgets, err := store.ListBudgets(r.Context())
		if err != nil {
			log.Printf("ERROR: Failed to list budgets: %v", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, budgets)
	}
}

// GetBudget attaches the computed spend for the budget's window. An absent
// end_date means the window runs to today.
func GetBudget(store db.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if !validID(id) {
			writeError(w, http.StatusBadRequest, "invalid budget id")
			return
		}
		budget, err := store.GetBudget(r.Context(), id)
		if err != nil {
			writeError(w, http.StatusNotFound, "Budget not found")
			return
		}

		end := models.Today()
		if budget.EndDate != nil {
			end = *budget.EndDate
		}
		rows, err := store.BudgetExpenseRows(r.Context(), budget.CategoryID, budget.StartDate, end)
		if err != nil {
			log.Printf("ERROR: Failed to load spend for budget %s: %v", id, err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		spend, err := report.BudgetSpend(budget.Amount, rows)
		if err != nil {
			log.Printf("ERROR: Bad stored amount for budget %s: %v", id, err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, models.BudgetDetail{Budget: *budget, BudgetSpend: spend})
	}
}

func CreateBudget(store db.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CreateBudgetRequest
		if err := decodeJSON(r, &req); err != nil {
			log.Printf("ERROR: Failed to decode create budget request: %v", err)
			writeError(w, http.StatusBadRequest, "invalid request: "+err.Error())
			return
		}
		if err := req.Validate(); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if !validID(req.CategoryID) {
			writeError(w, http.StatusBadRequest, "invalid category_id")
			return
		}
		created, err := store.CreateBudget(r.Context(), req)
		if err != nil {
			log.Printf("ERROR: Failed to create budget: %v", err)
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("INFO: Created budget %s for category %s", created.ID, created.CategoryID)
		writeJSON(w, http.StatusCreated, created)
	}
}

func UpdateBudget(store db.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if !validID(id) {
			writeError(w, http.StatusBadRequest, "invalid budget id")
			return
		}
		var req models.UpdateBudgetRequest
		if err := decodeJSON(r, &req); err != nil {
			log.Printf("ERROR: Failed to decode update budget request: %v", err)
			writeError(w, http.StatusBadRequest, "invalid request: "+err.Error())
			return
		}
		if req.Empty() {
			writeError(w, http.StatusBadRequest, "no fields to update")
			return
		}
		if err := req.Validate(); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		updated, err := store.UpdateBudget(r.Context(), id, req)
		if err != nil {
			log.Printf("ERROR: Failed to update budget %s: %v", id, err)
			writeStoreError(w, err, "Budget not found")
			return
		}
		log.Printf("INFO: Updated budget %s", updated.ID)
		writeJSON(w, http.StatusOK, updated)
	}
}

func DeleteBudget(store db.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if !validID(id) {
			writeError(w, http.StatusBadRequest, "invalid budget id")
			return
		}
		if err := store.DeleteBudget(r.Context(), id); err != nil {
			log.Printf("ERROR: Failed to delete budget %s: %v", id, err)
			writeStoreError(w, err, "Budget not found")
			return
		}
		log.Printf("INFO: Deleted budget %s", id)
		writeJSON(w, http.StatusOK, models.DeleteResponse{Success: true, Message: "Budget deleted successfully"})
	}
}
