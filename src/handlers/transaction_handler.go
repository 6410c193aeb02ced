package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"saldogo-server/src/db"
	"saldogo-server/src/models"
)

func ListTransactions(store db.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		f := db.TransactionFilter{
			Type:       q.Get("type"),
			AccountID:  q.Get("account_id"),
			CategoryID: q.Get("category_id"),
		}
		if f.AccountID != "" && !validID(f.AccountID) {
			writeError(w, http.StatusBadRequest, "invalid account_id")
			return
		}
		if f.CategoryID != "" && !validID(f.CategoryID) {
			writeError(w, http.StatusBadRequest, "invalid category_id")
			return
		}
		if v := q.Get("start_date"); v != "" {
			d, err := models.ParseDate(v)
			if err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			f.StartDate = d
		}
		if v := q.Get("end_date"); v != "" {
			d, err := models.ParseDate(v)
			if err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			f.EndDate = d
		}

		var limit, offset *int
		if v := q.Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				writeError(w, http.StatusBadRequest, "invalid limit")
				return
			}
			limit = &n
			f.Limit = n
		}
		if v := q.Get("offset"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				writeError(w, http.StatusBadRequest, "invalid offset")
				return
			}
			offset = &n
			f.Offset = n
			// Paging without an explicit limit uses the default page size.
			if f.Limit == 0 {
				f.Limit = 10
			}
		}

		transactions, count, err := store.ListTransactions(r.Context(), f)
		if err != nil {
			log.Printf("ERROR: Failed to list transactions: %v", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, models.TransactionList{
			Data:   transactions,
			Count:  count,
			Limit:  limit,
			Offset: offset,
		})
	}
}

func GetTransaction(store db.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if !validID(id) {
			writeError(w, http.StatusBadRequest, "invalid transaction id")
			return
		}
		t, err := store.GetTransaction(r.Context(), id)
		if err != nil {
			writeError(w, http.StatusNotFound, "Transaction not found")
			return
		}
		writeJSON(w, http.StatusOK, t)
	}
}

func CreateTransaction(store db.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CreateTransactionRequest
		if err := decodeJSON(r, &req); err != nil {
			log.Printf("ERROR: Failed to decode create transaction request: %v", err)
			writeError(w, http.StatusBadRequest, "invalid request: "+err.Error())
			return
		}
		if err := req.Validate(); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if !validID(req.AccountID) {
			writeError(w, http.StatusBadRequest, "invalid account_id")
			return
		}

		created, err := store.CreateTransaction(r.Context(), req)
		if err != nil {
			log.Printf("ERROR: Failed to create transaction: %v", err)
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		db.ClearAllReportCaches()
		log.Printf("INFO: Created transaction %s (%s %s)", created.ID, created.Type, created.Amount)
		writeJSON(w, http.StatusCreated, created)
	}
}

func UpdateTransaction(store db.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if !validID(id) {
			writeError(w, http.StatusBadRequest, "invalid transaction id")
			return
		}
		var req models.UpdateTransactionRequest
		if err := decodeJSON(r, &req); err != nil {
			log.Printf("ERROR: Failed to decode update transaction request: %v", err)
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

		updated, err := store.UpdateTransaction(r.Context(), id, req)
		if err != nil {
			log.Printf("ERROR: Failed to update transaction %s: %v", id, err)
			writeStoreError(w, err, "Transaction not found")
			return
		}
		db.ClearAllReportCaches()
		log.Printf("INFO: Updated transaction %s", updated.ID)
		writeJSON(w, http.StatusOK, updated)
	}
}

func DeleteTransaction(store db.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if !validID(id) {
			writeError(w, http.StatusBadRequest, "invalid transaction id")
			return
		}
		if err := store.DeleteTransaction(r.Context(), id); err != nil {
			log.Printf("ERROR: Failed to delete transaction %s: %v", id, err)
			writeStoreError(w, err, "Transaction not found")
			return
		}
		db.ClearAllReportCaches()
		log.Printf("INFO: Deleted transaction %s", id)
		writeJSON(w, http.StatusOK, models.DeleteResponse{Success: true, Message: "Transaction deleted successfully"})
	}
}
