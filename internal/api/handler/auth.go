package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/arenahq/arena/internal/api/middleware"
	"github.com/arenahq/arena/internal/api/request"
	"github.com/arenahq/arena/internal/api/response"
	"github.com/arenahq/arena/internal/guard"
	"github.com/arenahq/arena/internal/model"
	"github.com/arenahq/arena/internal/services/auth"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *auth.Service
	logger      *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *auth.Service, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// AuthResponse is returned from login and signup: the session plus the
// home destination for the signed-in role.
type AuthResponse struct {
	Session    response.Session `json:"session"`
	RedirectTo string           `json:"redirectTo"`
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.Login
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" {
		WriteError(w, NewValidationError("email is required"))
		return
	}
	if req.Password == "" {
		WriteError(w, NewValidationError("password is required"))
		return
	}
	role, err := model.ParseRole(req.Role)
	if err != nil {
		WriteError(w, err)
		return
	}

	session, err := h.authService.Login(r.Context(), req.Email, req.Password, role)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.setSessionCookie(w, session)
	response.JSON(w, http.StatusOK, AuthResponse{
		Session:    response.NewSession(session),
		RedirectTo: guard.HomeFor(session.User.Role),
	})
}

// Signup handles POST /api/v1/auth/signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req request.Signup
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if req.Username == "" {
		WriteError(w, NewValidationError("username is required"))
		return
	}
	if req.Email == "" {
		WriteError(w, NewValidationError("email is required"))
		return
	}
	if len(req.Password) < 6 {
		WriteError(w, NewValidationError("password must be at least 6 characters"))
		return
	}
	if req.Password != req.ConfirmPassword {
		WriteError(w, NewValidationError("passwords do not match"))
		return
	}
	role, err := model.ParseRole(req.Role)
	if err != nil {
		WriteError(w, err)
		return
	}

	session, err := h.authService.Signup(r.Context(), req.Username, req.Email, req.Password, role)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.setSessionCookie(w, session)
	response.JSON(w, http.StatusCreated, AuthResponse{
		Session:    response.NewSession(session),
		RedirectTo: guard.HomeFor(session.User.Role),
	})
}

// Logout handles POST /api/v1/auth/logout. Logout always succeeds,
// whether or not a session was present.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if session := middleware.SessionFromContext(r.Context()); session != nil {
		// The response stays a success either way, but a session the
		// store failed to delete is still live and worth knowing about
		if err := h.authService.Logout(r.Context(), session.Token); err != nil {
			h.logger.Error("logout failed to delete session", slog.Any("error", err))
		}
	}
	h.clearSessionCookie(w)
	response.JSON(w, http.StatusOK, map[string]string{"redirectTo": guard.LoginPath})
}

// Me handles GET /api/v1/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	session := middleware.SessionFromContext(r.Context())
	if session == nil {
		WriteError(w, NewUnauthorizedError())
		return
	}
	response.JSON(w, http.StatusOK, response.NewSession(session))
}

// UpdateProfile handles PATCH /api/v1/auth/profile. Edits land on the
// session's embedded user only; the credential directory is untouched.
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	session := middleware.SessionFromContext(r.Context())
	if session == nil {
		WriteError(w, NewUnauthorizedError())
		return
	}

	var req request.UpdateProfile
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	updated, err := h.authService.UpdateProfile(r.Context(), session.Token, auth.ProfilePatch{
		Username:  req.Username,
		Email:     req.Email,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.NewSession(updated))
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, session *model.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
