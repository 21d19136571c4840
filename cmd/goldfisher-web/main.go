package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/premodern/goldfisher/internal/config"
	"github.com/premodern/goldfisher/internal/game"
	"github.com/premodern/goldfisher/internal/sim"
	"github.com/premodern/goldfisher/internal/strategy"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // the simulator carries no credentials
	},
}

// Command is a message from the browser.
type Command struct {
	Type     string `json:"type"`
	Strategy string `json:"strategy,omitempty"`
	Decklist string `json:"decklist,omitempty"`
	Games    int    `json:"games,omitempty"`
	Seed     int64  `json:"seed,omitempty"`
}

// Message is a message to the browser.
type Message struct {
	Type       string       `json:"type"`
	Strategies []string     `json:"strategies,omitempty"`
	Current    int          `json:"current,omitempty"`
	Total      int          `json:"total,omitempty"`
	Report     *sim.Report  `json:"report,omitempty"`
	Events     []game.Event `json:"events,omitempty"`
	Error      string       `json:"error,omitempty"`
}

// Client is one browser connection. Each connection runs at most one
// simulation batch at a time.
type Client struct {
	conn *websocket.Conn
	send chan Message
	log  *zap.Logger

	mu     sync.Mutex
	cancel context.CancelFunc

	// sendMu guards send against the close on disconnect: cancelled
	// simulations keep reporting results until their in-flight games
	// finish.
	sendMu sync.Mutex
	closed bool
}

func newClient(conn *websocket.Conn, log *zap.Logger) *Client {
	return &Client{
		conn: conn,
		send: make(chan Message, 64),
		log:  log,
	}
}

func (c *Client) readPump() {
	defer func() {
		c.cancelRunning()
		c.closeSend()
		c.conn.Close()
	}()

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			return
		}

		var cmd Command
		if err := json.Unmarshal(raw, &cmd); err != nil {
			c.trySend(Message{Type: "error", Error: fmt.Sprintf("bad command: %v", err)})
			continue
		}
		c.handle(cmd)
	}
}

func (c *Client) writePump() {
	for msg := range c.send {
		if err := c.conn.WriteJSON(msg); err != nil {
			return
		}
	}
}

// trySend drops messages rather than blocking the simulation on a slow
// browser. Sends after the connection closed are dropped too.
func (c *Client) trySend(msg Message) {
	c.sendMu.Lock()
	defer c.sendMu.Unlock()
	if c.closed {
		return
	}
	select {
	case c.send <- msg:
	default:
	}
}

func (c *Client) closeSend() {
	c.sendMu.Lock()
	defer c.sendMu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.send)
}

func (c *Client) handle(cmd Command) {
	switch cmd.Type {
	case "begin":
		c.begin(cmd)
	case "cancel":
		c.cancelRunning()
	default:
		c.trySend(Message{Type: "error", Error: fmt.Sprintf("unknown command %q", cmd.Type)})
	}
}

func (c *Client) begin(cmd Command) {
	c.mu.Lock()
	if c.cancel != nil {
		c.mu.Unlock()
		c.trySend(Message{Type: "error", Error: "a simulation is already running"})
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.mu.Unlock()

	go func() {
		defer c.cancelRunning()
		if err := c.simulate(ctx, cmd); err != nil {
			c.trySend(Message{Type: "error", Error: err.Error()})
		}
	}()
}

func (c *Client) cancelRunning() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

func (c *Client) simulate(ctx context.Context, cmd Command) error {
	build, err := strategy.ConstructorFor(cmd.Strategy)
	if err != nil {
		return err
	}

	decklist := build().DefaultDecklist()
	if cmd.Decklist != "" {
		decklist, err = game.ParseDecklist(cmd.Decklist)
		if err != nil {
			return err
		}
	}

	games := cmd.Games
	if games <= 0 {
		games = 100
	}

	// Roughly one progress update per percent keeps slow browsers alive.
	every := games / 100
	if every < 1 {
		every = 1
	}

	// The first winning game's action log is streamed as a sample;
	// result callbacks are serialized so a plain flag is enough.
	sampleSent := false

	runner, err := sim.NewRunner(sim.Options{
		Games:       games,
		Seed:        cmd.Seed,
		Decklist:    decklist,
		NewStrategy: func() game.Strategy { return build() },
		OnResult: func(done, total int, result game.Result) {
			if !sampleSent && result.Outcome == game.OutcomeWin {
				sampleSent = true
				c.trySend(Message{Type: "game_log", Events: result.Events})
			}
			if done%every == 0 || done == total {
				c.trySend(Message{Type: "progress", Current: done, Total: total})
			}
		},
	}, c.log)
	if err != nil {
		return err
	}

	report, err := runner.Run(ctx)
	if err != nil {
		return err
	}

	c.trySend(Message{Type: "results", Current: report.Games, Total: games, Report: report})
	return nil
}

func serveWS(log *zap.Logger, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	client := newClient(conn, log)
	go client.writePump()

	client.trySend(Message{Type: "strategies", Strategies: strategy.Names()})
	client.readPump()
}

var configPath = flag.String("config", "", "path to configuration file")

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := initLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		serveWS(logger, w, r)
	})
	http.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	logger.Info("websocket server starting", zap.String("address", cfg.Web.Address))
	if err := http.ListenAndServe(cfg.Web.Address, nil); err != nil {
		logger.Fatal("ListenAndServe", zap.Error(err))
	}
}

func initLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	switch cfg.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
