package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/GridTactics/internal/config"
	"github.com/mitchelldurbincs/GridTactics/internal/tactics/battle"
	"github.com/mitchelldurbincs/GridTactics/internal/tactics/events"
	"github.com/mitchelldurbincs/GridTactics/internal/tactics/events/subscribers"
	"github.com/mitchelldurbincs/GridTactics/internal/tactics/mapgen"
	"github.com/mitchelldurbincs/GridTactics/internal/telemetry"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	mapFile := flag.String("map", "", "YAML battle map (empty to use config default or generate one)")
	seed := flag.Int64("seed", 0, "RNG seed for map generation and the demo (0 for time-based)")
	noColor := flag.Bool("no-color", false, "Disable ANSI colors in board output")
	flag.Parse()

	// Not fatal - env vars might be set directly
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Note: .env file not loaded: %v\n", err)
	}

	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	if err := config.LoadEnvironmentConfig(os.Getenv("APP_ENV")); err != nil {
		log.Fatal().Err(err).Msg("Failed to load environment config")
	}
	cfg := config.Get()

	if *logLevel == "" {
		*logLevel = cfg.Logging.Level
	}
	if *mapFile == "" {
		*mapFile = cfg.Map.File
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	setupLogging(*logLevel, cfg.Logging.Format)

	if path := config.ConfigFilePath(); path != "" {
		config.WatchConfig(func(c *config.Config) {
			zerolog.SetGlobalLevel(parseLevel(c.Logging.Level))
			log.Info().Str("file", path).Msg("Config reloaded")
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tracer := telemetry.NoopTracer()
	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Setup(ctx, cfg.Telemetry.ServiceName)
		if err != nil {
			log.Warn().Err(err).Msg("Telemetry setup failed, continuing without tracing")
		} else {
			tracer = telemetry.Tracer("battle")
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					log.Error().Err(err).Msg("Error shutting down telemetry")
				}
			}()
		}
	}

	rng := rand.New(rand.NewSource(*seed))
	log.Info().Int64("seed", *seed).Msg("Starting tactics demo")

	m, err := loadBattleMap(*mapFile, cfg, rng)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to prepare battle map")
	}

	bus := events.NewEventBus(log.Logger)
	bus.Subscribe(subscribers.NewLoggerSubscriber("event-logger", log.Logger, zerolog.DebugLevel))
	stats := &battleStats{}
	stats.watch(bus)

	session, err := battle.NewSession(m,
		battle.Settings{
			DefaultMovement:    cfg.Tactics.DefaultMovement,
			DefaultWeaponRange: cfg.Tactics.DefaultWeaponRange,
			IncludeOrigin:      cfg.Tactics.IncludeOrigin,
		},
		battle.WithLogger(log.Logger),
		battle.WithEventBus(bus),
		battle.WithTracer(tracer),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to start battle")
	}

	demo := &demoRunner{
		session:    session,
		rng:        rng,
		out:        os.Stdout,
		color:      !*noColor,
		maxActions: cfg.Demo.MaxActions,
		stats:      stats,
	}
	if err := demo.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("Demo failed")
	}
}

func loadBattleMap(path string, cfg *config.Config, rng *rand.Rand) (*mapgen.BattleMap, error) {
	if path != "" {
		log.Info().Str("map", path).Msg("Loading battle map")
		return mapgen.LoadFile(path)
	}

	mapCfg := mapgen.DefaultMapConfig(cfg.Map.Width, cfg.Map.Height)
	mapCfg.WallRatio = cfg.Map.WallRatio
	mapCfg.MinSpawnSpacing = cfg.Map.MinSpawnSpacing
	mapCfg.UnitsPerTeam = cfg.Demo.UnitsPerTeam

	log.Info().
		Int("width", mapCfg.Width).
		Int("height", mapCfg.Height).
		Int("units_per_team", mapCfg.UnitsPerTeam).
		Msg("Generating battle map")
	return mapgen.NewGenerator(mapCfg, rng).GenerateMap()
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

func setupLogging(level, format string) {
	zerolog.SetGlobalLevel(parseLevel(level))

	if os.Getenv("APP_ENV") == "production" || strings.ToLower(format) == "json" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	}
}
