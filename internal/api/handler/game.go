package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/arenahq/arena/internal/api/request"
	"github.com/arenahq/arena/internal/api/response"
	"github.com/arenahq/arena/internal/model"
	"github.com/arenahq/arena/internal/services/game"
)

// GameHandler handles the admin game catalog endpoints
type GameHandler struct {
	gameService *game.Service
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameService *game.Service) *GameHandler {
	return &GameHandler{
		gameService: gameService,
	}
}

// List handles GET /api/v1/games
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	games, err := h.gameService.List(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.NewGames(games))
}

// Get handles GET /api/v1/games/{gameId}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["gameId"])
	g, err := h.gameService.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.NewGame(g))
}

// Create handles POST /api/v1/games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGame
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Name == "" {
		WriteError(w, NewValidationError("name is required"))
		return
	}

	g, err := h.gameService.Create(r.Context(), game.CreateParams{
		Name:      req.Name,
		Genre:     req.Genre,
		Platforms: req.Platforms,
	})
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, response.NewGame(g))
}

// Update handles PATCH /api/v1/games/{gameId}
func (h *GameHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["gameId"])

	var req request.UpdateGame
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	params := game.UpdateParams{
		Name:      req.Name,
		Genre:     req.Genre,
		Platforms: req.Platforms,
	}
	if req.Status != nil {
		status := model.GameStatus(*req.Status)
		if status != model.GameActive && status != model.GameInactive {
			WriteError(w, NewValidationError("status must be active or inactive"))
			return
		}
		params.Status = &status
	}

	g, err := h.gameService.Update(r.Context(), id, params)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.NewGame(g))
}

// Delete handles DELETE /api/v1/games/{gameId}
func (h *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["gameId"])
	if err := h.gameService.Delete(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}
