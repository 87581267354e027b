package main

import (
	"context"
	"encoding/gob"
	"fmt"
	"net/http"
	"os"

	"github.com/alexedwards/scs"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	zero "github.com/rs/zerolog/log"

	"github.com/iamanderson-dev/thoughts-app/internal/auth"
	"github.com/iamanderson-dev/thoughts-app/internal/config"
	db "github.com/iamanderson-dev/thoughts-app/internal/db/impl"
	"github.com/iamanderson-dev/thoughts-app/internal/initialization"
	"github.com/iamanderson-dev/thoughts-app/internal/queue"
	service "github.com/iamanderson-dev/thoughts-app/internal/service/impl"
	"github.com/iamanderson-dev/thoughts-app/internal/state"
	"github.com/iamanderson-dev/thoughts-app/internal/storage/filestore"
	"github.com/iamanderson-dev/thoughts-app/internal/web"

	_ "github.com/mattn/go-sqlite3"
)

func main() {
	zero.Logger = zero.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	cfg, err := config.ReadConfig()
	if err != nil {
		zero.Fatal().Err(err).Msg("failed to read configuration")
	}
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	d, err := initialization.OpenDB(cfg.DbUrl)
	if err != nil {
		zero.Fatal().Err(err).Msg("failed to open database")
	}
	zero.Info().Msg("database connection established")

	if os.Getenv("SETUP") != "" {
		if err = initialization.SetupDB(d, cfg.MigrationsFolder, cfg.DbUrl); err != nil {
			zero.Fatal().Err(err).Msg("migrations failed")
		}
	}

	q, err := initialization.InitQueue(&cfg)
	if err != nil {
		zero.Fatal().Err(err).Msg("unable to set up the task queue database")
	}

	gob.Register(web.Session{})
	manager := scs.NewCookieManager(cfg.SessionKey)

	dd := db.New(cfg, d)
	notifier := queue.New(context.Background(), dd, q)

	blobs, err := filestore.New(cfg.FsRoot)
	if err != nil {
		zero.Fatal().Err(err).Msg("failed to set up avatar storage")
	}

	st := state.State{
		DB:     dd,
		Config: cfg,
	}
	svc := service.New(&st, notifier, blobs)

	verifier, err := auth.NewVerifier(cfg.Jwt)
	if err != nil {
		zero.Fatal().Err(err).Msg("bad jwt configuration")
	}
	provider := auth.NewProvider(cfg.OAuth)

	handler := web.New(&cfg, svc, manager, verifier, provider)
	router := chi.NewRouter()
	if cfg.Debug {
		router.Use(requestLogger)
	}
	handler.Mount(router)

	s := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: router,
	}

	zero.Info().Uint16("port", cfg.Port).Msg("started server")
	if err = s.ListenAndServe(); err != nil {
		zero.Fatal().Err(err).Msg("server stopped")
	}
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		zero.Debug().Str("method", r.Method).Str("url", r.URL.String()).Send()
		next.ServeHTTP(w, r)
	})
}
