// Copyright (c) 2026 Yu-Chieh Teng.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/ycteng/tabiplan/checklist"
	"github.com/ycteng/tabiplan/middleware"
	"github.com/ycteng/tabiplan/models"
)

type ChecklistHandler struct {
	store *checklist.Store
}

func NewChecklistHandler(store *checklist.Store) *ChecklistHandler {
	return &ChecklistHandler{store: store}
}

// GetChecklist handles GET /checklist
func (h *ChecklistHandler) GetChecklist(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.response())
}

// Toggle handles POST /checklist/{id}/toggle
func (h *ChecklistHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r)
	if !ok {
		return
	}

	found, err := h.store.Toggle(id)
	if err != nil {
		slog.Error("failed to toggle checklist item", "id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save checklist")
		return
	}
	if !found {
		middleware.ErrorResponse(w, http.StatusNotFound, "Item not found")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, h.response())
}

// AddItem handles POST /checklist
// Blank labels are rejected silently: the list is returned unchanged.
func (h *ChecklistHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req models.AddChecklistItemRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	item, added, err := h.store.Add(req.Category, req.Item)
	if err != nil {
		slog.Error("failed to add checklist item", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save checklist")
		return
	}
	if !added {
		middleware.JSONResponse(w, http.StatusOK, h.response())
		return
	}

	slog.Info("checklist item added", "id", item.ID, "category", item.Category)
	middleware.JSONResponse(w, http.StatusCreated, h.response())
}

// DeleteItem handles DELETE /checklist/{id}
// Only custom items are deletable through the API.
func (h *ChecklistHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r)
	if !ok {
		return
	}

	custom, found := h.store.IsCustom(id)
	if !found {
		middleware.ErrorResponse(w, http.StatusNotFound, "Item not found")
		return
	}
	if !custom {
		middleware.ErrorResponse(w, http.StatusForbidden, "Only custom items can be deleted")
		return
	}

	if _, err := h.store.Delete(id); err != nil {
		slog.Error("failed to delete checklist item", "id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save checklist")
		return
	}

	slog.Info("checklist item deleted", "id", id)
	middleware.JSONResponse(w, http.StatusOK, h.response())
}

// ResetChecks handles POST /checklist/reset-checks
// Clears every checked flag, keeping custom items.
func (h *ChecklistHandler) ResetChecks(w http.ResponseWriter, r *http.Request) {
	if err := h.store.ResetChecks(); err != nil {
		slog.Error("failed to reset checklist checks", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save checklist")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, h.response())
}

// FullReset handles POST /checklist/reset
// Destructive: requires an explicit confirm flag in the body.
func (h *ChecklistHandler) FullReset(w http.ResponseWriter, r *http.Request) {
	var req models.FullResetRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if !req.Confirm {
		middleware.ErrorResponse(w, http.StatusBadRequest, "confirm is required for a full reset")
		return
	}

	if err := h.store.FullReset(); err != nil {
		slog.Error("failed to reset checklist", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to reset checklist")
		return
	}

	slog.Info("checklist fully reset")
	middleware.JSONResponse(w, http.StatusOK, h.response())
}

func (h *ChecklistHandler) response() models.ChecklistResponse {
	items := h.store.Items()

	categories := []string{}
	seen := map[string]bool{}
	completed := 0
	for _, item := range items {
		if !seen[item.Category] {
			seen[item.Category] = true
			categories = append(categories, item.Category)
		}
		if item.Checked {
			completed++
		}
	}

	percent := 0
	if len(items) > 0 {
		percent = int(math.Round(float64(completed) / float64(len(items)) * 100))
	}

	return models.ChecklistResponse{
		Items:      items,
		Categories: categories,
		Progress: models.ChecklistProgress{
			Completed: completed,
			Total:     len(items),
			Percent:   percent,
		},
	}
}

func (h *ChecklistHandler) idParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid item id")
		return 0, false
	}
	return id, true
}
