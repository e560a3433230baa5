// cmd/drifter/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/infiniti1985/space-drifter/pkg/audio"
	"github.com/infiniti1985/space-drifter/pkg/config"
	"github.com/infiniti1985/space-drifter/pkg/engine"
	"github.com/infiniti1985/space-drifter/pkg/logging"
	engorender "github.com/infiniti1985/space-drifter/pkg/render/engo"
	"github.com/infiniti1985/space-drifter/pkg/render/terminal"
)

func main() {
	configPath := flag.String("config", "drifter.yaml", "Path to configuration file")
	createDefault := flag.Bool("default", false, "Write the default configuration file and exit")
	renderer := flag.String("renderer", "", "Renderer type: 'engo' or 'terminal' (overrides config)")
	logPath := flag.String("log", "", "Write logs to this file instead of stderr")
	mute := flag.Bool("mute", false, "Disable sound")
	flag.Parse()

	logger, closeLog := openLogger(*logPath, *renderer)
	defer closeLog()
	ctx := context.Background()

	if *createDefault {
		if err := config.SaveConfig(config.DefaultConfig(), *configPath); err != nil {
			logger.Error(ctx, "Failed to create default configuration", err,
				"config_path", *configPath,
			)
			os.Exit(1)
		}
		logger.Info(ctx, "Created default configuration file",
			"config_path", *configPath,
		)
		return
	}

	gameConfig, err := loadConfig(ctx, logger, *configPath)
	if err != nil {
		os.Exit(1)
	}
	if *renderer != "" {
		gameConfig.Display.Renderer = *renderer
	}
	if *mute {
		gameConfig.Audio.Mute = true
	}
	if err := gameConfig.Validate(); err != nil {
		logger.Error(ctx, "Invalid configuration", err, "config_path", *configPath)
		os.Exit(1)
	}

	game, err := engine.NewGame(gameConfig, engine.WithLogger(logger))
	if err != nil {
		logger.Error(ctx, "Failed to create game", err)
		os.Exit(1)
	}

	player := audio.NewPlayer(gameConfig.Audio, logger)
	player.Attach(game.EventBus)
	if !gameConfig.Audio.Mute {
		if err := player.Open(); err != nil {
			logger.Warn(ctx, "Audio unavailable, continuing without sound", "error", err.Error())
		}
	}
	defer player.Close()

	logger.Info(ctx, "Starting Space Drifter",
		"renderer", gameConfig.Display.Renderer,
		"start_system", gameConfig.StartSystem,
	)

	switch gameConfig.Display.Renderer {
	case config.RendererTerminal:
		if err := runTerminal(ctx, game, logger); err != nil {
			logger.Error(ctx, "Terminal client failed", err)
			os.Exit(1)
		}
	default:
		engorender.Run(game, logger)
	}
}

// openLogger picks the log destination. The terminal client draws on the
// tty, so without -log its logs are dropped rather than written over the
// screen.
func openLogger(path, renderer string) (*logging.Logger, func()) {
	if renderer == "" {
		renderer = os.Getenv("DRIFTER_RENDERER")
	}
	if path == "" {
		if renderer == config.RendererTerminal {
			return logging.Discard(), func() {}
		}
		return logging.NewLogger(), func() {}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		logger := logging.NewLogger()
		logger.Error(context.Background(), "Failed to open log file, using stderr", err, "log_path", path)
		return logger, func() {}
	}
	level := slog.LevelInfo
	if os.Getenv("DRIFTER_LOG_LEVEL") == "DEBUG" {
		level = slog.LevelDebug
	}
	return logging.NewLoggerWithWriter(f, level), func() { f.Close() }
}

// loadConfig reads the configuration file if present and applies
// environment overrides
func loadConfig(ctx context.Context, logger *logging.Logger, path string) (*config.GameConfig, error) {
	var gameConfig *config.GameConfig

	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.Info(ctx, "Configuration file not found, using default configuration",
			"config_path", path,
		)
		gameConfig = config.DefaultConfig()
	} else {
		gameConfig, err = config.LoadConfig(path)
		if err != nil {
			logger.Error(ctx, "Failed to load configuration", err,
				"config_path", path,
			)
			return nil, err
		}
	}

	if err := config.ApplyEnvironment(gameConfig); err != nil {
		logger.Error(ctx, "Failed to apply environment configuration", err)
		return nil, err
	}
	return gameConfig, nil
}

// runTerminal runs the tcell client until the player quits or a signal
// arrives
func runTerminal(ctx context.Context, game *engine.Game, logger *logging.Logger) error {
	screen, err := terminal.OpenScreen()
	if err != nil {
		return err
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = terminal.NewClient(game, screen, logger).Run(ctx)
	if errors.Is(err, context.Canceled) {
		logger.Info(context.Background(), "Shutting down")
		return nil
	}
	return err
}
