package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/arenahq/arena/internal/api/middleware"
	"github.com/arenahq/arena/internal/api/request"
	"github.com/arenahq/arena/internal/api/response"
	"github.com/arenahq/arena/internal/api/sse"
	"github.com/arenahq/arena/internal/model"
	"github.com/arenahq/arena/internal/services/tournament"
)

// TournamentHandler handles tournament and match endpoints
type TournamentHandler struct {
	tournamentService *tournament.Service
	hubManager        *sse.HubManager
}

// NewTournamentHandler creates a new tournament handler
func NewTournamentHandler(tournamentService *tournament.Service, hubManager *sse.HubManager) *TournamentHandler {
	return &TournamentHandler{
		tournamentService: tournamentService,
		hubManager:        hubManager,
	}
}

// List handles GET /api/v1/tournaments
func (h *TournamentHandler) List(w http.ResponseWriter, r *http.Request) {
	status := model.TournamentStatus(r.URL.Query().Get("status"))
	tournaments, err := h.tournamentService.List(r.Context(), status)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.NewTournaments(tournaments))
}

// Get handles GET /api/v1/tournaments/{tournamentId}
func (h *TournamentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.TournamentID(mux.Vars(r)["tournamentId"])
	t, err := h.tournamentService.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.NewTournament(t))
}

// Create handles POST /api/v1/tournaments. The signed-in organizer or
// administrator becomes the tournament's organizer.
func (h *TournamentHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		WriteError(w, NewUnauthorizedError())
		return
	}

	var req request.CreateTournament
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Name == "" {
		WriteError(w, NewValidationError("name is required"))
		return
	}
	if req.GameID == "" {
		WriteError(w, NewValidationError("gameId is required"))
		return
	}
	if req.MaxTeams <= 0 {
		WriteError(w, NewValidationError("maxTeams must be positive"))
		return
	}

	t, err := h.tournamentService.Create(r.Context(), tournament.CreateParams{
		Name:        req.Name,
		GameID:      model.GameID(req.GameID),
		Format:      req.Format,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		PrizePool:   req.PrizePool,
		MaxTeams:    req.MaxTeams,
		Region:      req.Region,
		Description: req.Description,
		OrganizerID: user.ID,
	})
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, response.NewTournament(t))
}

// Update handles PATCH /api/v1/tournaments/{tournamentId}
func (h *TournamentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := model.TournamentID(mux.Vars(r)["tournamentId"])

	var req request.UpdateTournament
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	params := tournament.UpdateParams{
		Name:        req.Name,
		Format:      req.Format,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		PrizePool:   req.PrizePool,
		MaxTeams:    req.MaxTeams,
		Region:      req.Region,
		Description: req.Description,
	}
	if req.Status != nil {
		status := model.TournamentStatus(*req.Status)
		switch status {
		case model.TournamentUpcoming, model.TournamentActive, model.TournamentCompleted:
			params.Status = &status
		default:
			WriteError(w, NewValidationError("status must be upcoming, active or completed"))
			return
		}
	}

	t, err := h.tournamentService.Update(r.Context(), id, params)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.NewTournament(t))
}

// Delete handles DELETE /api/v1/tournaments/{tournamentId}
func (h *TournamentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.TournamentID(mux.Vars(r)["tournamentId"])
	if err := h.tournamentService.Delete(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}
	h.hubManager.RemoveHub(id)
	response.NoContent(w)
}

// RegisterTeam handles POST /api/v1/tournaments/{tournamentId}/register
func (h *TournamentHandler) RegisterTeam(w http.ResponseWriter, r *http.Request) {
	id := model.TournamentID(mux.Vars(r)["tournamentId"])
	t, err := h.tournamentService.RegisterTeam(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.NewTournament(t))
}

// Matches handles GET /api/v1/tournaments/{tournamentId}/matches
func (h *TournamentHandler) Matches(w http.ResponseWriter, r *http.Request) {
	id := model.TournamentID(mux.Vars(r)["tournamentId"])
	if _, err := h.tournamentService.Get(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}
	matches, err := h.tournamentService.Matches(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.NewMatches(matches))
}

// ScheduleMatch handles POST /api/v1/tournaments/{tournamentId}/matches
func (h *TournamentHandler) ScheduleMatch(w http.ResponseWriter, r *http.Request) {
	id := model.TournamentID(mux.Vars(r)["tournamentId"])

	var req request.ScheduleMatch
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.TeamA == "" || req.TeamB == "" {
		WriteError(w, NewValidationError("teamA and teamB are required"))
		return
	}

	m, err := h.tournamentService.ScheduleMatch(r.Context(), id, req.TeamA, req.TeamB, req.ScheduledAt)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, response.NewMatch(m))
}

// ReportScore handles PUT /api/v1/matches/{matchId}/score. Updated
// scores are pushed to any live viewers of the match's tournament.
func (h *TournamentHandler) ReportScore(w http.ResponseWriter, r *http.Request) {
	id := model.MatchID(mux.Vars(r)["matchId"])

	var req request.ReportScore
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	status := model.MatchStatus(req.Status)
	switch status {
	case model.MatchScheduled, model.MatchLive, model.MatchCompleted:
	default:
		WriteError(w, NewValidationError("status must be scheduled, live or completed"))
		return
	}

	m, err := h.tournamentService.ReportScore(r.Context(), id, req.ScoreA, req.ScoreB, status)
	if err != nil {
		WriteError(w, err)
		return
	}

	if hub := h.hubManager.GetHub(m.TournamentID); hub != nil {
		if payload, err := json.Marshal(response.NewMatch(m)); err == nil {
			hub.BroadcastEvent("score", string(payload))
		}
	}

	response.JSON(w, http.StatusOK, response.NewMatch(m))
}

// Events handles GET /api/v1/tournaments/{tournamentId}/events, a
// server-sent event stream of live score updates.
func (h *TournamentHandler) Events(w http.ResponseWriter, r *http.Request) {
	id := model.TournamentID(mux.Vars(r)["tournamentId"])
	if _, err := h.tournamentService.Get(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}
	hub := h.hubManager.GetOrCreateHub(id)
	sse.Serve(w, r, hub)
}
