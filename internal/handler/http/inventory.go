package http

import (
	"net/http"

	"github.com/MKhiriev/go-waste-tracker/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listFoodItems(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, "*Handler.listFoodItems", err)
		return
	}

	today, err := h.today(r)
	if err != nil {
		writeError(w, r, "*Handler.listFoodItems", err)
		return
	}

	items, err := h.services.FoodItemService.List(r.Context(), userID, today, r.URL.Query().Get("expires_on"))
	if err != nil {
		writeError(w, r, "*Handler.listFoodItems", err)
		return
	}

	h.writeJSON(w, r, items, http.StatusOK)
}

func (h *Handler) createFoodItem(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, "*Handler.createFoodItem", err)
		return
	}

	var input models.FoodItemInput
	if err = decodeBody(r, &input); err != nil {
		writeError(w, r, "*Handler.createFoodItem", err)
		return
	}

	today, err := h.today(r)
	if err != nil {
		writeError(w, r, "*Handler.createFoodItem", err)
		return
	}

	item, err := h.services.FoodItemService.Create(r.Context(), userID, input, today)
	if err != nil {
		writeError(w, r, "*Handler.createFoodItem", err)
		return
	}

	h.writeJSON(w, r, item, http.StatusCreated)
}

func (h *Handler) deleteFoodItem(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, "*Handler.deleteFoodItem", err)
		return
	}

	if err = h.services.FoodItemService.Delete(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, "*Handler.deleteFoodItem", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getExpiryAlerts(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, "*Handler.getExpiryAlerts", err)
		return
	}

	today, err := h.today(r)
	if err != nil {
		writeError(w, r, "*Handler.getExpiryAlerts", err)
		return
	}

	alerts, err := h.services.FoodItemService.Alerts(r.Context(), userID, today)
	if err != nil {
		writeError(w, r, "*Handler.getExpiryAlerts", err)
		return
	}

	h.writeJSON(w, r, alerts, http.StatusOK)
}
