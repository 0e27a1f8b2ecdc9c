package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/arenahq/arena/internal/api/request"
	"github.com/arenahq/arena/internal/api/response"
	"github.com/arenahq/arena/internal/model"
	"github.com/arenahq/arena/internal/services/directory"
)

// UserHandler handles admin user-management endpoints
type UserHandler struct {
	directoryService *directory.Service
}

// NewUserHandler creates a new user handler
func NewUserHandler(directoryService *directory.Service) *UserHandler {
	return &UserHandler{
		directoryService: directoryService,
	}
}

// List handles GET /api/v1/users
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.directoryService.Users(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.NewUsers(users))
}

// Get handles GET /api/v1/users/{userId}
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.UserID(mux.Vars(r)["userId"])
	user, err := h.directoryService.User(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.NewUser(user))
}

// Update handles PATCH /api/v1/users/{userId}
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := model.UserID(mux.Vars(r)["userId"])

	var req request.UpdateUser
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	patch := directory.UserPatch{
		Username: req.Username,
		Email:    req.Email,
	}
	if req.Role != nil {
		role, err := model.ParseRole(*req.Role)
		if err != nil {
			WriteError(w, err)
			return
		}
		patch.Role = &role
	}

	user, err := h.directoryService.UpdateUser(r.Context(), id, patch)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.NewUser(user))
}
