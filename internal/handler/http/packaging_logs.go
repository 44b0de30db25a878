package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-waste-tracker/internal/logger"
	"github.com/MKhiriev/go-waste-tracker/internal/utils"
	"github.com/MKhiriev/go-waste-tracker/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listLogs(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, "*Handler.listLogs", err)
		return
	}

	logs, err := h.services.PackagingLogService.List(r.Context(), userID)
	if err != nil {
		writeError(w, r, "*Handler.listLogs", err)
		return
	}

	h.writeJSON(w, r, logs, http.StatusOK)
}

func (h *Handler) listLogsByDay(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, "*Handler.listLogsByDay", err)
		return
	}

	groups, err := h.services.PackagingLogService.ListByDay(r.Context(), userID)
	if err != nil {
		writeError(w, r, "*Handler.listLogsByDay", err)
		return
	}

	h.writeJSON(w, r, groups, http.StatusOK)
}

func (h *Handler) createLog(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, "*Handler.createLog", err)
		return
	}

	var input models.PackagingLogInput
	if err = decodeBody(r, &input); err != nil {
		writeError(w, r, "*Handler.createLog", err)
		return
	}

	result, err := h.services.PackagingLogService.Create(r.Context(), userID, input)
	if err != nil {
		writeError(w, r, "*Handler.createLog", err)
		return
	}

	h.writeJSON(w, r, result, http.StatusCreated)
}

func (h *Handler) updateLog(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, "*Handler.updateLog", err)
		return
	}

	var input models.PackagingLogInput
	if err = decodeBody(r, &input); err != nil {
		writeError(w, r, "*Handler.updateLog", err)
		return
	}

	result, err := h.services.PackagingLogService.Update(r.Context(), userID, chi.URLParam(r, "id"), input)
	if err != nil {
		writeError(w, r, "*Handler.updateLog", err)
		return
	}

	h.writeJSON(w, r, result, http.StatusOK)
}

func (h *Handler) deleteLog(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, "*Handler.deleteLog", err)
		return
	}

	if err = h.services.PackagingLogService.Delete(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, "*Handler.deleteLog", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listPackagingTypes(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, h.taxonomy.Types(), http.StatusOK)
}

func decodeBody(r *http.Request, dst any) error {
	if err := utils.DecodeJSON(r.Body, dst, maxRequestBodyBytes); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any, statusCode int) {
	if _, err := utils.WriteJSON(w, data, statusCode); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.writeJSON").Msg("error writing response")
	}
}
