package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/aliskhannn/quiz-pro-nobis/internal/config"
	"github.com/aliskhannn/quiz-pro-nobis/internal/delivery/httpapi"
	"github.com/aliskhannn/quiz-pro-nobis/internal/delivery/telegram"
	"github.com/aliskhannn/quiz-pro-nobis/internal/infra/hasher"
	"github.com/aliskhannn/quiz-pro-nobis/internal/infra/postgres"
	pgrepository "github.com/aliskhannn/quiz-pro-nobis/internal/infra/postgres/repository"
	"github.com/aliskhannn/quiz-pro-nobis/internal/infra/sqlite"
	"github.com/aliskhannn/quiz-pro-nobis/internal/logger"
	"github.com/aliskhannn/quiz-pro-nobis/internal/repository"
	"github.com/aliskhannn/quiz-pro-nobis/internal/service"
	"github.com/aliskhannn/quiz-pro-nobis/internal/storage"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API (and the Telegram bot when a token is set)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			log, err := logger.New(cfg)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer func() { _ = log.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg, log)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	// Initialize repositories and services.
	passwords := hasher.NewBcrypt(cfg.Auth.BcryptCost)
	credentials, err := repository.LoadCredentials(cfg.Auth.UsersFile, passwords)
	if err != nil {
		return fmt.Errorf("load credentials: %w", err)
	}
	log.Info("credentials loaded",
		zap.Int("accounts", credentials.Len()),
		zap.String("users_file", cfg.Auth.UsersFile),
	)

	sessions, closeSessions, err := newSessionStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init session store: %w", err)
	}
	defer closeSessions()
	log.Info("session store ready", zap.String("store", cfg.Session.Store))

	questionService := service.NewQuestionService(repository.NewQuestionRepository(cfg.QuestionsPath))
	authService := service.NewAuthService(credentials, passwords, sessions, uuid.NewString)

	handler := httpapi.NewHandler(log, questionService, authService, httpapi.CookieConfig{
		Name:   cfg.Session.CookieName,
		Secure: cfg.Session.CookieSecure,
	})

	bot, err := newTelegramBot(cfg, log)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      handler.Routes(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("http server started", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		log.Info("shutting down http server")
		return srv.Shutdown(shutdownCtx)
	})

	if bot != nil {
		tg := telegram.NewHandler(bot, log, questionService)
		g.Go(func() error {
			defer bot.StopReceivingUpdates()
			return tg.Run(gctx)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	log.Info("shutdown complete")
	return nil
}

// newTelegramBot connects to Telegram when a token is configured and returns nil otherwise.
func newTelegramBot(cfg *config.Config, log *zap.Logger) (*tgbotapi.BotAPI, error) {
	if cfg.TelegramAPIToken == "" {
		return nil, nil
	}

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		return nil, fmt.Errorf("init telegram bot: %w", err)
	}
	bot.Debug = cfg.Env != "production"

	if _, err := bot.Request(tgbotapi.NewSetMyCommands(telegram.Commands...)); err != nil {
		log.Warn("failed to set bot commands", zap.Error(err))
	}
	log.Info("authorized on telegram", zap.String("account", bot.Self.UserName))

	return bot, nil
}

// newSessionStore builds the configured session backend and a function releasing it.
func newSessionStore(ctx context.Context, cfg *config.Config) (service.SessionStore, func(), error) {
	switch cfg.Session.Store {
	case config.SessionStorePostgres:
		dsn, err := cfg.DB.DSN()
		if err != nil {
			return nil, nil, err
		}

		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		pool, err := postgres.NewPool(connectCtx, dsn, postgres.PoolConfig{
			MaxConns:        cfg.DB.MaxConnections,
			MaxConnLifetime: cfg.DB.MaxConnLifetime,
		})
		if err != nil {
			return nil, nil, err
		}
		if err := postgres.Migrate(connectCtx, postgres.NewTransactor(pool)); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return pgrepository.NewSessionRepository(pool), pool.Close, nil

	case config.SessionStoreSQLite:
		store, err := sqlite.Open(cfg.Session.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil

	default:
		return storage.NewSessionStorage(), func() {}, nil
	}
}
