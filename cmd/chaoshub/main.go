package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"chaoshub/auth"
	"chaoshub/call"
	"chaoshub/gateway"
	"chaoshub/internal"
	"chaoshub/presence"
	"chaoshub/registry"
	"chaoshub/repositories"
	"chaoshub/rooms"
	"chaoshub/router"
	"chaoshub/runtime"
	"chaoshub/runtime/workers"
	"chaoshub/typing"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components and manages the server lifecycle.
// Centralizing the error return keeps the defers (database close)
// running on every exit path.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Core components
	connRegistry := registry.NewConnectionRegistry(log)
	roomManager := rooms.NewManager(log)
	messageStore := repositories.NewMessageRepository(db, log)
	oracle := repositories.NewBlocklistOracle()
	interests := presence.NewInterestTable()
	presenceBroadcaster := presence.NewBroadcaster(log, connRegistry, interests)
	typingTracker := typing.NewTracker(log, connRegistry, roomManager, config.TypingTTL)
	messageRouter := router.NewRouter(log, connRegistry, roomManager, messageStore, oracle, typingTracker)
	callRelay := call.NewRelay(log, connRegistry)
	gate := auth.NewGate(log, auth.NewJWTVerifier([]byte(config.JWTSecret)))

	// 4. Supervision & engine
	sup := workers.NewSupervisor(log, config.RestartInterval)
	engine := runtime.NewEngine(
		log, gate, connRegistry, roomManager,
		messageRouter, presenceBroadcaster, typingTracker, callRelay,
		sup,
		typing.NewSweeper(log, typingTracker, config.TypingSweepInterval),
		workers.NewTelemetryWorker(log, config.TelemetryInterval),
	)

	// 5. Context & signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go engine.Start(ctx)

	// 6. HTTP server with the websocket endpoint
	ws := gateway.NewServer(log, engine, config.ConnectionBufferSize, config.DeliveryTimeout)
	mux := http.NewServeMux()
	mux.Handle("/ws", ws.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = fmt.Fprint(w, "ok")
	})

	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	server := &http.Server{Addr: address, Handler: mux}

	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting websocket server", "address", address, "at", time.Now().UTC())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("server error: %w", err)
		}
	}()

	// 7. Wait for stop or error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	// 8. Final cleanup
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = server.Shutdown(shutdownCtx)
	engine.Stop()
	log.Info("Program stopped cleanly")

	return nil
}
