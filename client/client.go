package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/gorilla/websocket"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes for the client application.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

// Config defines the client-side environment variables.
type Config struct {
	ServerAddress string `env:"HUB_SERVER_ADDR,default=localhost:8080"`
	Token         string `env:"HUB_TOKEN,required=true"`
	DefaultRoomID string `env:"HUB_ROOM_ID,default=lobby"`
	LogLevel      string `env:"LOG_LEVEL,required=true"`
}

// frame mirrors the wire envelope; the payload stays raw so the client
// can print any event the hub emits.
type frame struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

func main() {
	// The main function manages the OS exit code based on run()'s return.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Client error: %v", err)
	}
	os.Exit(code)
}

// run handles the websocket client lifecycle, configuration loading, and
// event streaming. This pattern ensures clean resource management and
// error propagation.
func run() (int, error) {
	// 1. Load configuration from environment variables.
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Setup context to handle termination signals (Ctrl+C).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Establish the websocket connection, authenticating via the
	// token query parameter.
	endpoint := url.URL{
		Scheme:   "ws",
		Host:     config.ServerAddress,
		Path:     "/ws",
		RawQuery: url.Values{"token": {config.Token}}.Encode(),
	}
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, endpoint.String(), nil)
	if err != nil {
		return exitRuntime, fmt.Errorf("could not connect to hub at %s: %w", config.ServerAddress, err)
	}
	// Defer ensures the connection is closed even if the read loop fails later.
	defer func() {
		log.Info("Closing connection...")
		_ = conn.Close()
	}()

	// 4. Join the default room before listening.
	join := frame{
		Type:    "joinRoom",
		Payload: json.RawMessage(fmt.Sprintf(`{"roomId":%q}`, config.DefaultRoomID)),
	}
	if err := conn.WriteJSON(join); err != nil {
		return exitRuntime, fmt.Errorf("failed to join room: %w", err)
	}

	log.Info(fmt.Sprintf(">>> Connected to %s! Listening room %s (Ctrl+C to quit)...",
		config.ServerAddress, config.DefaultRoomID))

	// Unblock the read loop when a shutdown is requested.
	go func() {
		<-ctx.Done()
		_ = conn.SetReadDeadline(time.Now())
	}()

	// 5. Event reception loop.
	// This loop runs until the context is canceled or the hub closes the
	// connection.
	for {
		var incoming frame
		if err := conn.ReadJSON(&incoming); err != nil {
			// Normal exit if the user triggered a shutdown.
			if ctx.Err() != nil {
				log.Info("Stopping client...")
				return exitOK, nil
			}
			return exitRuntime, fmt.Errorf("read error: %w", err)
		}

		// Display the received event.
		log.Info(fmt.Sprintf("[%s] %s: %s",
			time.Now().Format(time.TimeOnly),
			incoming.Type,
			string(incoming.Payload),
		))
	}
}
