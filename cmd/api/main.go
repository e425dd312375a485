package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/yatrika/travel-assistant/backend/internal/config"
	"github.com/yatrika/travel-assistant/backend/internal/handler"
	"github.com/yatrika/travel-assistant/backend/internal/service/ai"
	"github.com/yatrika/travel-assistant/backend/internal/service/chatbot"
	"github.com/yatrika/travel-assistant/backend/internal/service/geo"
	"github.com/yatrika/travel-assistant/backend/internal/service/guide"
	"github.com/yatrika/travel-assistant/backend/internal/service/planner"
	"github.com/yatrika/travel-assistant/backend/internal/service/search"
	"github.com/yatrika/travel-assistant/backend/internal/service/session"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	store := session.NewStore()
	resolver := geo.NewResolver(cfg.Geo)
	aggregator := search.NewAggregator(cfg.Search)

	// The generation backend is optional: without credentials every AI
	// surface degrades to fixed sentinels instead of failing startup.
	aiService := ai.Disabled()
	if cfg.AI.Enabled() {
		svc, err := ai.NewService(ctx, cfg.AI)
		if err != nil {
			log.Printf("warning: failed to initialize AI service: %v", err)
			log.Println("continuing without AI functionality")
		} else {
			aiService = svc
			log.Println("AI service initialized successfully")
		}
	} else {
		log.Println("generation backend credentials not configured, AI summaries disabled")
	}

	searchService := search.NewService(aggregator, aiService, resolver)
	plannerService := planner.New(resolver, aiService)
	guideService := guide.New(aggregator, aiService)
	bot := chatbot.New(aggregator, aiService)

	router := handler.NewRouter(store, bot, searchService, plannerService, guideService)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	srv := &http.Server{
		Addr:              serverCfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("Travel Assistant backend listening on %s", serverCfg.Addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
