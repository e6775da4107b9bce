package app

import (
	"context"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"bj-oracle/internal/audit"
	"bj-oracle/internal/config"
	"bj-oracle/internal/db"
	"bj-oracle/internal/event"
	"bj-oracle/internal/game"
	"bj-oracle/internal/jobs"
	"bj-oracle/internal/logger"
	"bj-oracle/internal/monitoring"
	"bj-oracle/internal/security"
	"bj-oracle/internal/signer"
	"bj-oracle/internal/ws"
)

type Server struct {
	app  *fiber.App
	jobs *jobs.Manager
	port string
}

func NewServer() *Server {
	cfg := config.Load()
	database := db.Init(cfg.DBPath)
	monitoring.Init()

	oracle := newSigner(cfg)
	logger.Log.Info("oracle address", zap.String("address", oracle.Address().Hex()))

	store := game.NewStore()
	bus := event.NewBus()
	service := game.NewService(store, oracle, bus)

	hub := ws.NewHub()
	game.RegisterConsumers(bus, audit.New(database), hub)

	app := fiber.New()

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Get("/oracle", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"oracle": oracle.Address().Hex()})
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws", websocket.New(hub.Handler))

	var r fiber.Router = app
	if cfg.APIKey != "" {
		r = app.Group("/", security.APIKeyGuard(cfg.APIKey))
	}
	game.RegisterRoutes(r, service)

	manager := jobs.New()
	manager.Register(game.NewReaper(store, cfg.SessionTTL))

	return &Server{app: app, jobs: manager, port: cfg.Port}
}

func (s *Server) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go s.jobs.Start(ctx)

	return s.app.Listen(":" + s.port)
}

func newSigner(cfg *config.Config) *signer.Signer {
	var (
		s   *signer.Signer
		err error
	)
	if cfg.PrivateKey != "" {
		s, err = signer.New(cfg.PrivateKey)
	} else {
		s, err = signer.FromMnemonic(cfg.Mnemonic, cfg.KeyIndex)
	}
	if err != nil {
		logger.Log.Fatal("oracle key", zap.Error(err))
	}
	return s
}
