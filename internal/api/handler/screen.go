package handler

import (
	"net/http"

	"github.com/arenahq/arena/internal/api/middleware"
	"github.com/arenahq/arena/internal/api/response"
	"github.com/arenahq/arena/internal/model"
	"github.com/arenahq/arena/internal/services/directory"
	"github.com/arenahq/arena/internal/services/game"
	"github.com/arenahq/arena/internal/services/tournament"
)

// ScreenHandler serves screen payloads: the data each view renders,
// plus the viewer and any pending notice. Which screens a request may
// reach is decided by the route guards, not here.
type ScreenHandler struct {
	gameService       *game.Service
	tournamentService *tournament.Service
	directoryService  *directory.Service
}

// NewScreenHandler creates a new screen handler
func NewScreenHandler(gameService *game.Service, tournamentService *tournament.Service, directoryService *directory.Service) *ScreenHandler {
	return &ScreenHandler{
		gameService:       gameService,
		tournamentService: tournamentService,
		directoryService:  directoryService,
	}
}

func (h *ScreenHandler) screen(r *http.Request, name string, data map[string]any) response.Screen {
	s := response.Screen{
		Screen: name,
		Data:   data,
	}
	if user := middleware.UserFromContext(r.Context()); user != nil {
		u := response.NewUser(user)
		s.Viewer = &u
	}
	if notice := middleware.GetFlash(r.Context()); notice != nil {
		if s.Data == nil {
			s.Data = map[string]any{}
		}
		s.Data["notice"] = notice
	}
	return s
}

// Home handles GET /
func (h *ScreenHandler) Home(w http.ResponseWriter, r *http.Request) {
	tournaments, err := h.tournamentService.List(r.Context(), model.TournamentUpcoming)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, h.screen(r, "home", map[string]any{
		"upcomingTournaments": response.NewTournaments(tournaments),
	}))
}

// Login handles GET /login
func (h *ScreenHandler) Login(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.screen(r, "login", nil))
}

// Signup handles GET /signup
func (h *ScreenHandler) Signup(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.screen(r, "signup", nil))
}

// Unauthorized handles GET /unauthorized, naming the viewer's current
// role so the page can explain what access they do have.
func (h *ScreenHandler) Unauthorized(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{}
	if user := middleware.UserFromContext(r.Context()); user != nil {
		data["currentRole"] = string(user.Role)
	}
	response.JSON(w, http.StatusOK, h.screen(r, "unauthorized", data))
}

// Tournaments handles GET /tournaments
func (h *ScreenHandler) Tournaments(w http.ResponseWriter, r *http.Request) {
	tournaments, err := h.tournamentService.List(r.Context(), "")
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, h.screen(r, "tournaments", map[string]any{
		"tournaments": response.NewTournaments(tournaments),
	}))
}

// Matches handles GET /matches
func (h *ScreenHandler) Matches(w http.ResponseWriter, r *http.Request) {
	matches, err := h.tournamentService.AllMatches(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, h.screen(r, "matches", map[string]any{
		"matches": response.NewMatches(matches),
	}))
}

// Leaderboard handles GET /leaderboard
func (h *ScreenHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	tournaments, err := h.tournamentService.List(r.Context(), model.TournamentCompleted)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, h.screen(r, "leaderboard", map[string]any{
		"completedTournaments": response.NewTournaments(tournaments),
	}))
}

// PlayerDashboard handles GET /player/dashboard
func (h *ScreenHandler) PlayerDashboard(w http.ResponseWriter, r *http.Request) {
	tournaments, err := h.tournamentService.List(r.Context(), model.TournamentActive)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, h.screen(r, "player-dashboard", map[string]any{
		"activeTournaments": response.NewTournaments(tournaments),
	}))
}

// PlayerTeams handles GET /player/teams
func (h *ScreenHandler) PlayerTeams(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.screen(r, "player-teams", nil))
}

// PlayerMatches handles GET /player/matches
func (h *ScreenHandler) PlayerMatches(w http.ResponseWriter, r *http.Request) {
	matches, err := h.tournamentService.AllMatches(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, h.screen(r, "player-matches", map[string]any{
		"matches": response.NewMatches(matches),
	}))
}

// OrganizerTournaments handles GET /organizer/tournaments
func (h *ScreenHandler) OrganizerTournaments(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	tournaments, err := h.tournamentService.List(r.Context(), "")
	if err != nil {
		WriteError(w, err)
		return
	}
	mine := make([]*model.Tournament, 0, len(tournaments))
	for _, t := range tournaments {
		if t.OrganizerID == user.ID {
			mine = append(mine, t)
		}
	}
	response.JSON(w, http.StatusOK, h.screen(r, "organizer-tournaments", map[string]any{
		"tournaments": response.NewTournaments(mine),
	}))
}

// AdminDashboard handles GET /admin/dashboard
func (h *ScreenHandler) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	games, err := h.gameService.List(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	tournaments, err := h.tournamentService.List(r.Context(), "")
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, h.screen(r, "admin-dashboard", map[string]any{
		"gameCount":       len(games),
		"tournamentCount": len(tournaments),
	}))
}

// AdminGames handles GET /admin/games
func (h *ScreenHandler) AdminGames(w http.ResponseWriter, r *http.Request) {
	games, err := h.gameService.List(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, h.screen(r, "admin-games", map[string]any{
		"games": response.NewGames(games),
	}))
}

// AdminUsers handles GET /admin/users
func (h *ScreenHandler) AdminUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.directoryService.Users(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, h.screen(r, "admin-users", map[string]any{
		"users": response.NewUsers(users),
	}))
}

// AdminTournaments handles GET /admin/tournaments
func (h *ScreenHandler) AdminTournaments(w http.ResponseWriter, r *http.Request) {
	tournaments, err := h.tournamentService.List(r.Context(), "")
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, h.screen(r, "admin-tournaments", map[string]any{
		"tournaments": response.NewTournaments(tournaments),
	}))
}
