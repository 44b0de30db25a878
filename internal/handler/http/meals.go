package http

import (
	"net/http"

	"github.com/MKhiriev/go-waste-tracker/internal/mealwaste"
	"github.com/MKhiriev/go-waste-tracker/internal/packaging"
	"github.com/MKhiriev/go-waste-tracker/models"
	"github.com/go-chi/chi/v5"
)

// mealChoices lists the values offered by the meal and waste forms.
type mealChoices struct {
	MealTypes       []string `json:"meal_types"`
	WasteReasons    []string `json:"waste_reasons"`
	DisposalActions []string `json:"disposal_actions"`
}

func (h *Handler) listMealChoices(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, mealChoices{
		MealTypes:       mealwaste.MealTypes,
		WasteReasons:    mealwaste.WasteReasons,
		DisposalActions: mealwaste.DisposalActions,
	}, http.StatusOK)
}

func (h *Handler) listMeals(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, "*Handler.listMeals", err)
		return
	}

	meals, err := h.services.MealWasteService.ListMeals(r.Context(), userID)
	if err != nil {
		writeError(w, r, "*Handler.listMeals", err)
		return
	}

	h.writeJSON(w, r, meals, http.StatusOK)
}

func (h *Handler) addMeal(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, "*Handler.addMeal", err)
		return
	}

	var input models.MealInput
	if err = decodeBody(r, &input); err != nil {
		writeError(w, r, "*Handler.addMeal", err)
		return
	}

	meal, err := h.services.MealWasteService.AddMeal(r.Context(), userID, input)
	if err != nil {
		writeError(w, r, "*Handler.addMeal", err)
		return
	}

	h.writeJSON(w, r, meal, http.StatusCreated)
}

func (h *Handler) recordWaste(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, "*Handler.recordWaste", err)
		return
	}

	var input models.WasteInput
	if err = decodeBody(r, &input); err != nil {
		writeError(w, r, "*Handler.recordWaste", err)
		return
	}

	meal, err := h.services.MealWasteService.RecordWaste(r.Context(), userID, chi.URLParam(r, "id"), input)
	if err != nil {
		writeError(w, r, "*Handler.recordWaste", err)
		return
	}

	h.writeJSON(w, r, meal, http.StatusOK)
}

func (h *Handler) deleteMeal(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, "*Handler.deleteMeal", err)
		return
	}

	if err = h.services.MealWasteService.DeleteMeal(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, "*Handler.deleteMeal", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getWasteSummaries(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, "*Handler.getWasteSummaries", err)
		return
	}

	timeRange, err := packaging.ParseTimeRange(r.URL.Query().Get("range"))
	if err != nil {
		writeError(w, r, "*Handler.getWasteSummaries", err)
		return
	}

	today, err := h.today(r)
	if err != nil {
		writeError(w, r, "*Handler.getWasteSummaries", err)
		return
	}

	summaries, err := h.services.MealWasteService.Summaries(r.Context(), userID, timeRange, today)
	if err != nil {
		writeError(w, r, "*Handler.getWasteSummaries", err)
		return
	}

	h.writeJSON(w, r, summaries, http.StatusOK)
}

func (h *Handler) getWasteInsights(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, "*Handler.getWasteInsights", err)
		return
	}

	today, err := h.today(r)
	if err != nil {
		writeError(w, r, "*Handler.getWasteInsights", err)
		return
	}

	insights, err := h.services.MealWasteService.Insights(r.Context(), userID, today)
	if err != nil {
		writeError(w, r, "*Handler.getWasteInsights", err)
		return
	}

	h.writeJSON(w, r, insights, http.StatusOK)
}
