package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/arenahq/arena/internal/api/handler"
	apimiddleware "github.com/arenahq/arena/internal/api/middleware"
	"github.com/arenahq/arena/internal/api/sse"
	"github.com/arenahq/arena/internal/guard"
	"github.com/arenahq/arena/internal/middleware"
	"github.com/arenahq/arena/internal/model"
	"github.com/arenahq/arena/internal/services/auth"
	"github.com/arenahq/arena/internal/services/directory"
	"github.com/arenahq/arena/internal/services/game"
	"github.com/arenahq/arena/internal/services/tournament"
)

// RouterConfig holds configuration for the router
type RouterConfig struct {
	Logger            *slog.Logger
	AuthService       *auth.Service
	DirectoryService  *directory.Service
	GameService       *game.Service
	TournamentService *tournament.Service
	HubManager        *sse.HubManager
}

// NewRouter creates the router with all screen and API routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	authHandler := handler.NewAuthHandler(cfg.AuthService, cfg.Logger)
	screenHandler := handler.NewScreenHandler(cfg.GameService, cfg.TournamentService, cfg.DirectoryService)
	gameHandler := handler.NewGameHandler(cfg.GameService)
	tournamentHandler := handler.NewTournamentHandler(cfg.TournamentService, cfg.HubManager)
	userHandler := handler.NewUserHandler(cfg.DirectoryService)

	// Common middleware: every request resolves its session before any
	// guard looks at it
	r.Use(middleware.Recovery(cfg.Logger, middleware.DefaultPanicHandler))
	r.Use(middleware.Logging(cfg.Logger))
	r.Use(apimiddleware.ResolveSession(cfg.AuthService))
	r.Use(apimiddleware.Flash())

	// Guards. The organizer screens belong to organizers alone; the
	// tournament write endpoints also admit administrators.
	adminOnly := apimiddleware.Guard(guard.RequireRole(model.RoleAdministrator))
	organizerOnly := apimiddleware.Guard(guard.RequireRole(model.RoleOrganizer))
	organizerOrAdmin := apimiddleware.Guard(guard.RequireRole(model.RoleAdministrator, model.RoleOrganizer))
	playerOnly := apimiddleware.Guard(guard.RequireRole(model.RolePlayer))
	authenticated := apimiddleware.Guard(guard.RequireAuthenticated())
	anonymousOnly := apimiddleware.Guard(guard.RedirectIfAuthenticated())

	// Public screens
	r.HandleFunc("/", screenHandler.Home).Methods(http.MethodGet)
	r.HandleFunc("/tournaments", screenHandler.Tournaments).Methods(http.MethodGet)
	r.HandleFunc("/matches", screenHandler.Matches).Methods(http.MethodGet)
	r.HandleFunc("/leaderboard", screenHandler.Leaderboard).Methods(http.MethodGet)
	r.HandleFunc("/unauthorized", screenHandler.Unauthorized).Methods(http.MethodGet)

	// Auth screens redirect home when already signed in
	r.Handle("/login", anonymousOnly(http.HandlerFunc(screenHandler.Login))).Methods(http.MethodGet)
	r.Handle("/signup", anonymousOnly(http.HandlerFunc(screenHandler.Signup))).Methods(http.MethodGet)

	// Admin screens
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(adminOnly)
	admin.HandleFunc("/dashboard", screenHandler.AdminDashboard).Methods(http.MethodGet)
	admin.HandleFunc("/games", screenHandler.AdminGames).Methods(http.MethodGet)
	admin.HandleFunc("/users", screenHandler.AdminUsers).Methods(http.MethodGet)
	admin.HandleFunc("/tournaments", screenHandler.AdminTournaments).Methods(http.MethodGet)

	// Organizer screens
	organizer := r.PathPrefix("/organizer").Subrouter()
	organizer.Use(organizerOnly)
	organizer.HandleFunc("/tournaments", screenHandler.OrganizerTournaments).Methods(http.MethodGet)

	// Player screens
	player := r.PathPrefix("/player").Subrouter()
	player.Use(playerOnly)
	player.HandleFunc("/dashboard", screenHandler.PlayerDashboard).Methods(http.MethodGet)
	player.HandleFunc("/teams", screenHandler.PlayerTeams).Methods(http.MethodGet)
	player.HandleFunc("/matches", screenHandler.PlayerMatches).Methods(http.MethodGet)

	// API routes
	api := r.PathPrefix("/api/v1").Subrouter()

	// Auth endpoints (no guard; logout succeeds with or without a session)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/signup", authHandler.Signup).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", authHandler.Logout).Methods(http.MethodPost)
	api.Handle("/auth/me", authenticated(http.HandlerFunc(authHandler.Me))).Methods(http.MethodGet)
	api.Handle("/auth/profile", authenticated(http.HandlerFunc(authHandler.UpdateProfile))).Methods(http.MethodPatch)

	// Game catalog: reads are public, writes are admin-only
	api.HandleFunc("/games", gameHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/games/{gameId}", gameHandler.Get).Methods(http.MethodGet)
	api.Handle("/games", adminOnly(http.HandlerFunc(gameHandler.Create))).Methods(http.MethodPost)
	api.Handle("/games/{gameId}", adminOnly(http.HandlerFunc(gameHandler.Update))).Methods(http.MethodPatch)
	api.Handle("/games/{gameId}", adminOnly(http.HandlerFunc(gameHandler.Delete))).Methods(http.MethodDelete)

	// Tournaments: reads and the live event stream are public
	api.HandleFunc("/tournaments", tournamentHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/tournaments/{tournamentId}", tournamentHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/tournaments/{tournamentId}/matches", tournamentHandler.Matches).Methods(http.MethodGet)
	api.HandleFunc("/tournaments/{tournamentId}/events", tournamentHandler.Events).Methods(http.MethodGet)

	// Tournament writes are organizer-or-admin, registration is for players
	api.Handle("/tournaments", organizerOrAdmin(http.HandlerFunc(tournamentHandler.Create))).Methods(http.MethodPost)
	api.Handle("/tournaments/{tournamentId}", organizerOrAdmin(http.HandlerFunc(tournamentHandler.Update))).Methods(http.MethodPatch)
	api.Handle("/tournaments/{tournamentId}", organizerOrAdmin(http.HandlerFunc(tournamentHandler.Delete))).Methods(http.MethodDelete)
	api.Handle("/tournaments/{tournamentId}/matches", organizerOrAdmin(http.HandlerFunc(tournamentHandler.ScheduleMatch))).Methods(http.MethodPost)
	api.Handle("/tournaments/{tournamentId}/register", playerOnly(http.HandlerFunc(tournamentHandler.RegisterTeam))).Methods(http.MethodPost)
	api.Handle("/matches/{matchId}/score", organizerOrAdmin(http.HandlerFunc(tournamentHandler.ReportScore))).Methods(http.MethodPut)

	// User administration
	api.Handle("/users", adminOnly(http.HandlerFunc(userHandler.List))).Methods(http.MethodGet)
	api.Handle("/users/{userId}", adminOnly(http.HandlerFunc(userHandler.Get))).Methods(http.MethodGet)
	api.Handle("/users/{userId}", adminOnly(http.HandlerFunc(userHandler.Update))).Methods(http.MethodPatch)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
