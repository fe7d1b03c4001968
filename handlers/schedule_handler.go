package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/justplay-app/league-manager/services"
)

type ScheduleHandler struct {
	scheduleService  services.ScheduleService
	standingsService services.StandingsService
}

func NewScheduleHandler(ss services.ScheduleService, st services.StandingsService) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleService:  ss,
		standingsService: st,
	}
}

// GenerateHandler handles POST /api/leagues/{leagueID}/schedule
func (h *ScheduleHandler) GenerateHandler(w http.ResponseWriter, r *http.Request) {
	leagueID := chi.URLParam(r, "leagueID")

	var input services.GenerateScheduleInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	matches, err := h.scheduleService.GenerateSchedule(r.Context(), leagueID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"matches": matches}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetHandler handles GET /api/leagues/{leagueID}/schedule
func (h *ScheduleHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	leagueID := chi.URLParam(r, "leagueID")

	matches, err := h.scheduleService.GetSchedule(r.Context(), leagueID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"matches": matches}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// RecordResultHandler handles POST /api/leagues/{leagueID}/results
func (h *ScheduleHandler) RecordResultHandler(w http.ResponseWriter, r *http.Request) {
	leagueID := chi.URLParam(r, "leagueID")

	var input services.RecordResultInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	matches, err := h.scheduleService.RecordResult(r.Context(), leagueID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"matches": matches}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// StandingsHandler handles GET /api/leagues/{leagueID}/standings
func (h *ScheduleHandler) StandingsHandler(w http.ResponseWriter, r *http.Request) {
	leagueID := chi.URLParam(r, "leagueID")

	standings, err := h.standingsService.GetStandings(r.Context(), leagueID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"standings": standings}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
