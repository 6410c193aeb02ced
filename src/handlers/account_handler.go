package handlers

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"saldogo-server/src/db"
	"saldogo-server/src/models"
	"saldogo-server/src/report"
	"saldogo-server/src/util"
)

func ListAccounts(store db.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		isActive := util.ParseBoolParam(r.URL.Query().Get("is_active"))
		accounts, err := store.ListAccounts(r.Context(), isActive)
		if err != nil {
			log.Printf("ERROR: Failed to list accounts: %v", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, accounts)
	}
}

// GetAccount returns the account plus a rollup of its transactions.
func GetAccount(store db.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if !validID(id) {
			writeError(w, http.StatusBadRequest, "invalid account id")
			return
		}
		account, err := store.GetAccount(r.Context(), id)
		if err != nil {
			writeError(w, http.StatusNotFound, "Account not found")
			return
		}
		rows, err := store.AccountTransactionRows(r.Context(), id)
		if err != nil {
			log.Printf("ERROR: Failed to load transactions for account %s: %v", id, err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		summary, err := report.AccountSummary(rows)
		if err != nil {
			log.Printf("ERROR: Bad stored amount for account %s: %v", id, err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, models.AccountDetail{Account: *account, Summary: summary})
	}
}

func CreateAccount(store db.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CreateAccountRequest
		if err := decodeJSON(r, &req); err != nil {
			log.Printf("ERROR: Failed to decode create account request: %v", err)
			writeError(w, http.StatusBadRequest, "invalid request: "+err.Error())
			return
		}
		if err := req.Validate(); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		created, err := store.CreateAccount(r.Context(), req)
		if err != nil {
			log.Printf("ERROR: Failed to create account: %v", err)
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		db.ClearAllReportCaches()
		log.Printf("INFO: Created account %s (%s)", created.ID, created.Name)
		writeJSON(w, http.StatusCreated, created)
	}
}

func UpdateAccount(store db.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if !validID(id) {
			writeError(w, http.StatusBadRequest, "invalid account id")
			return
		}
		var req models.UpdateAccountRequest
		if err := decodeJSON(r, &req); err != nil {
			log.Printf("ERROR: Failed to decode update account request: %v", err)
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
		updated, err := store.UpdateAccount(r.Context(), id, req)
		if err != nil {
			log.Printf("ERROR: Failed to update account %s: %v", id, err)
			writeStoreError(w, err, "Account not found")
			return
		}
		db.ClearAllReportCaches()
		log.Printf("INFO: Updated account %s", updated.ID)
		writeJSON(w, http.StatusOK, updated)
	}
}

// DeleteAccount soft-deletes by default; ?hard_delete=true removes the row.
func DeleteAccount(store db.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if !validID(id) {
			writeError(w, http.StatusBadRequest, "invalid account id")
			return
		}
		var err error
		if r.URL.Query().Get("hard_delete") == "true" {
			err = store.DeleteAccount(r.Context(), id)
		} else {
			err = store.SoftDeleteAccount(r.Context(), id)
		}
		if err != nil {
			log.Printf("ERROR: Failed to delete account %s: %v", id, err)
			writeStoreError(w, err, "Account not found")
			return
		}
		db.ClearAllReportCaches()
		log.Printf("INFO: Deleted account %s", id)
		writeJSON(w, http.StatusOK, models.DeleteResponse{Success: true, Message: "Account deleted successfully"})
	}
}
