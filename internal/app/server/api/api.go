// The server exposes two HTTP surfaces:
//
//	POST   /api/v1/session             open a device session (public)
//	GET    /api/v1/documents           list the device's documents (auth)
//	POST   /api/v1/documents           create a document (auth)
//	PUT    /api/v1/documents/{id}      overwrite a document (auth)
//	DELETE /api/v1/documents/{id}      purge a document (auth)
//
// plus a thin CRUD note API over an in-memory store, independent from the
// sync path:
//
//	GET/POST   /api/v1/notes            list / create
//	GET/PATCH/DELETE /api/v1/notes/{id} get / update / trash
//	GET /api/v1/notes/search/{query}    search
//	GET /api/v1/notes/{favorites,archived,trash}
//	GET /api/v1/tags/{tag}/notes        notes by tag
package api

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	healthAPI "notemaster/internal/app/server/api/http/health"
	"notemaster/internal/app/server/api/http/middleware"
	"notemaster/internal/app/server/api/http/middleware/auth"
	"notemaster/internal/app/server/api/http/middleware/logger"
	notesAPI "notemaster/internal/app/server/api/http/notes"
	replicaAPI "notemaster/internal/app/server/api/http/replica"
	sessionAPI "notemaster/internal/app/server/api/http/session"
	"notemaster/internal/app/server/notestore"
	"notemaster/internal/domain/replica"
	"notemaster/internal/domain/session"
	"notemaster/internal/infrastructure/storage/postgres"
)

type Handlers struct {
	Health  *healthAPI.Handler
	Session *sessionAPI.Handler
	Replica *replicaAPI.Handler
	Notes   *notesAPI.Handler
}

// New builds the chi mux with every operation registered through huma.
func New(storage *postgres.Storage, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	config := huma.DefaultConfig("NoteMaster API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}

	API := humachi.New(mux, config)

	h := handlers(storage, log)
	h.Health.SetupRoutes(API)
	h.Session.SetupRoutes(API)
	h.Replica.SetupRoutes(API)
	h.Notes.SetupRoutes(API)

	return mux
}

func handlers(storage *postgres.Storage, log *slog.Logger) *Handlers {
	sessionRepo := postgres.NewSessionRepository(storage, log)
	sessionService := session.NewService(sessionRepo, log)
	authMW := auth.New(sessionService, log)
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	sessionHandler := sessionAPI.NewHandler(sessionService, log, middlewares.GetAllAndClear())

	replicaRepo := postgres.NewReplicaRepository(storage, log)
	replicaService := replica.NewService(replicaRepo, log)
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	replicaHandler := replicaAPI.NewHandler(replicaService, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	notesHandler := notesAPI.NewHandler(notestore.New(), log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:  healthHandler,
		Session: sessionHandler,
		Replica: replicaHandler,
		Notes:   notesHandler,
	}
}
