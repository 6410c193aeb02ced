package handlers

import (
	"log"
	"net/http"
	"strconv"

	"saldogo-server/src/db"
	"saldogo-server/src/models"
	"saldogo-server/src/report"
)

// The report routes are the only reads expensive enough to cache. Results
// are keyed by the normalized query and dropped wholesale on any write.

func Dashboard(store db.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		var start, end models.Date
		if v := q.Get("start_date"); v != "" {
			d, err := models.ParseDate(v)
			if err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			start = d
		}
		if v := q.Get("end_date"); v != "" {
			d, err := models.ParseDate(v)
			if err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			end = d
		}

		cacheKey := "dashboard:" + q.Get("start_date") + ":" + q.Get("end_date")
		if cached, ok := db.GetReportCache(cacheKey); ok {
			writeJSON(w, http.StatusOK, cached)
			return
		}

		txns, err := store.DashboardRows(r.Context(), start, end)
		if err != nil {
			log.Printf("ERROR: Failed to load dashboard transactions: %v", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		accounts, err := store.AccountBalanceRows(r.Context())
		if err != nil {
			log.Printf("ERROR: Failed to load account balances: %v", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		summary, err := report.Dashboard(txns, accounts)
		if err != nil {
			log.Printf("ERROR: Dashboard aggregation failed: %v", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		resp := models.DashboardResponse{
			DashboardSummary: summary,
			Period: models.Period{
				StartDate: optString(q.Get("start_date")),
				EndDate:   optString(q.Get("end_date")),
			},
		}
		db.SetReportCache(cacheKey, resp)
		writeJSON(w, http.StatusOK, resp)
	}
}

func ReportByCategory(store db.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		var start, end models.Date
		if v := q.Get("start_date"); v != "" {
			d, err := models.ParseDate(v)
			if err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			start = d
		}
		if v := q.Get("end_date"); v != "" {
			d, err := models.ParseDate(v)
			if err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			end = d
		}

		cacheKey := "by-category:" + q.Get("type") + ":" + q.Get("start_date") + ":" + q.Get("end_date")
		if cached, ok := db.GetReportCache(cacheKey); ok {
			writeJSON(w, http.StatusOK, cached)
			return
		}

		rows, err := store.CategoryRows(r.Context(), q.Get("type"), start, end)
		if err != nil {
			log.Printf("ERROR: Failed to load category report rows: %v", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		groups, err := report.ByCategory(rows)
		if err != nil {
			log.Printf("ERROR: Category aggregation failed: %v", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		db.SetReportCache(cacheKey, groups)
		writeJSON(w, http.StatusOK, groups)
	}
}

func ReportByMonth(store db.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		months := report.DefaultTrendMonths
		if v := q.Get("months"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 {
				writeError(w, http.StatusBadRequest, "invalid months")
				return
			}
			months = n
		}

		cacheKey := "by-month:" + q.Get("type") + ":" + strconv.Itoa(months)
		if cached, ok := db.GetReportCache(cacheKey); ok {
			writeJSON(w, http.StatusOK, cached)
			return
		}

		rows, err := store.MonthRows(r.Context(), q.Get("type"))
		if err != nil {
			log.Printf("ERROR: Failed to load monthly report rows: %v", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		groups, err := report.ByMonth(rows, months)
		if err != nil {
			log.Printf("ERROR: Monthly aggregation failed: %v", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		db.SetReportCache(cacheKey, groups)
		writeJSON(w, http.StatusOK, groups)
	}
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
