package handlers

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"saldogo-server/src/db"
	"saldogo-server/src/models"
)

func ListCategories(store db.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := store.ListCategories(r.Context(), r.URL.Query().Get("type"))
		if err != nil {
			log.Printf("ERROR: Failed to list categories: %v", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, categories)
	}
}

func GetCategory(store db.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if !validID(id) {
			writeError(w, http.StatusBadRequest, "invalid category id")
			return
		}
		c, err := store.GetCategory(r.Context(), id)
		if err != nil {
			writeError(w, http.StatusNotFound, "Category not found")
			return
		}
		writeJSON(w, http.StatusOK, c)
	}
}

func CreateCategory(store db.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CreateCategoryRequest
		if err := decodeJSON(r, &req); err != nil {
			log.Printf("ERROR: Failed to decode create category request: %v", err)
			writeError(w, http.StatusBadRequest, "invalid request: "+err.Error())
			return
		}
		if err := req.Validate(); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		created, err := store.CreateCategory(r.Context(), req)
		if err != nil {
			log.Printf("ERROR: Failed to create category: %v", err)
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		db.ClearAllReportCaches()
		log.Printf("INFO: Created category %s (%s)", created.ID, created.Name)
		writeJSON(w, http.StatusCreated, created)
	}
}

func UpdateCategory(store db.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if !validID(id) {
			writeError(w, http.StatusBadRequest, "invalid category id")
			return
		}
		var req models.UpdateCategoryRequest
		if err := decodeJSON(r, &req); err != nil {
			log.Printf("ERROR: Failed to decode update category request: %v", err)
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
		updated, err := store.UpdateCategory(r.Context(), id, req)
		if err != nil {
			log.Printf("ERROR: Failed to update category %s: %v", id, err)
			writeStoreError(w, err, "Category not found")
			return
		}
		db.ClearAllReportCaches()
		log.Printf("INFO: Updated category %s", updated.ID)
		writeJSON(w, http.StatusOK, updated)
	}
}

func DeleteCategory(store db.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if !validID(id) {
			writeError(w, http.StatusBadRequest, "invalid category id")
			return
		}
		if err := store.DeleteCategory(r.Context(), id); err != nil {
			log.Printf("ERROR: Failed to delete category %s: %v", id, err)
			writeStoreError(w, err, "Category not found")
			return
		}
		db.ClearAllReportCaches()
		log.Printf("INFO: Deleted category %s", id)
		writeJSON(w, http.StatusOK, models.DeleteResponse{Success: true, Message: "Category deleted successfully"})
	}
}
