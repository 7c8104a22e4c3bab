package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/possess/internal/clock"
	"github.com/KirkDiggler/possess/internal/config"
	"github.com/KirkDiggler/possess/internal/domain/world"
	apperr "github.com/KirkDiggler/possess/internal/errors"
	"github.com/KirkDiggler/possess/internal/events"
	"github.com/KirkDiggler/possess/internal/logger"
	"github.com/KirkDiggler/possess/internal/loop"
	"github.com/KirkDiggler/possess/internal/physics"
	"github.com/KirkDiggler/possess/internal/registry"
	"github.com/KirkDiggler/possess/internal/relay"
	"github.com/KirkDiggler/possess/internal/scenes"
	"github.com/KirkDiggler/possess/internal/services/level"
	"github.com/KirkDiggler/possess/internal/services/menu"
	"github.com/KirkDiggler/possess/internal/services/player"
	"github.com/KirkDiggler/possess/internal/uuid"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	if err := run(cfg, zl); err != nil {
		zl.Fatal("simulation failed", zap.Error(err))
	}
}

func run(cfg *config.Config, zl *zap.Logger) error {
	manifest, err := config.LoadManifest(cfg.ScenesFile)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, quit := context.WithCancel(ctx)
	defer quit()

	bus := events.NewBus(&events.BusConfig{
		UUIDGenerator: uuid.NewGoogleUUIDGenerator(),
		Logger:        logger.Component(zl, "bus"),
	})
	reg := registry.New()
	clk := clock.New()
	body := world.NewBody("player", world.Vector3{})

	manager := scenes.NewManager(&scenes.ManagerConfig{
		Bus:      bus,
		Registry: reg,
		Manifest: manifest,
		Player:   body,
		Logger:   logger.Component(zl, "scenes"),
	})
	selector := physics.NewTopDownSelector(physics.Camera{Height: 20, UnitsPerPixel: 1}, manager)
	controller := player.NewController(&player.ControllerConfig{
		Bus:                  bus,
		Registry:             reg,
		Body:                 body,
		Selector:             selector,
		SelectionMaxDistance: cfg.Possession.SelectionMaxDistance,
		PossessionRange:      cfg.Possession.Range,
		Logger:               logger.Component(zl, "player"),
	})
	machine := level.NewStateMachine(&level.StateMachineConfig{
		Bus:              bus,
		Clock:            clk,
		LoopLevels:       cfg.Level.LoopLevels,
		StartingDuration: cfg.Level.StartingDuration,
		Logger:           logger.Component(zl, "level"),
	})
	mainMenu := menu.New(&menu.Config{
		Bus:            bus,
		FirstLevelName: cfg.Level.FirstLevelName,
		Logger:         logger.Component(zl, "menu"),
	})

	// The manager answers scene queries, so it comes up before the state machine
	manager.Enable()
	defer manager.Disable()
	controller.Enable()
	defer controller.Disable()
	machine.Enable()
	defer machine.Disable()
	mainMenu.Enable()
	defer mainMenu.Disable()

	events.On(bus, func(events.RequestQuitEvent) {
		zl.Info("quit requested")
		quit()
	})

	commands := make(chan command, 16)
	sim := loop.New(&loop.Config{
		Scaler:     clk,
		FixedStep:  cfg.Loop.FixedStep,
		MaxCatchup: cfg.Loop.MaxCatchup,
		Logger:     logger.Component(zl, "loop"),
	})
	sim.AddFixed(
		manager,
		loop.FixedFunc(func(time.Duration) { controller.FixedUpdate() }),
		machine,
	)
	sim.AddUpdate(
		&console{
			bus:        bus,
			menu:       mainMenu,
			controller: controller,
			machine:    machine,
			manager:    manager,
			body:       body,
			log:        zl,
			commands:   commands,
		},
		manager,
	)

	if err := manager.LoadByIndex(manifest.Indices.MainMenu); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)

	if cfg.Redis.Enabled() {
		client, err := connectRedis(ctx, cfg.Redis.URL)
		if err != nil {
			zl.Warn("event relay disabled", zap.Error(err))
		} else {
			defer func() { _ = client.Close() }()

			r := relay.New(&relay.Config{
				Client:  client,
				Bus:     bus,
				Channel: cfg.Redis.Channel,
				Logger:  logger.Component(zl, "relay"),
			})
			r.Enable()
			defer r.Disable()

			g.Go(func() error {
				return r.Run(ctx, cfg.Redis.FlushInterval)
			})
		}
	}

	g.Go(func() error {
		return sim.Run(ctx, cfg.Loop.FrameInterval)
	})

	g.Go(func() error {
		<-ctx.Done()
		zl.Info("shutting down")
		return nil
	})

	// Reads from stdin cannot be interrupted, so the reader stays outside the group
	go readCommands(os.Stdin, commands, zl)

	zl.Info("simulation running, type commands (start, w/a/s/d, e, click x y, p, complete, caught, status, quit)")

	return g.Wait()
}

func connectRedis(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeInvalidArgument, "invalid redis url")
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, apperr.Unavailable(err, "failed to reach redis")
	}

	return client, nil
}
