// Command parakeet-gateway serves a speech-to-text HTTP API in front of a
// pretrained transcription model.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/skillsenselab/parakeet-gateway/api"
	"github.com/skillsenselab/parakeet-gateway/auth"
	"github.com/skillsenselab/parakeet-gateway/component"
	"github.com/skillsenselab/parakeet-gateway/config"
	"github.com/skillsenselab/parakeet-gateway/logger"
	"github.com/skillsenselab/parakeet-gateway/observability"
	"github.com/skillsenselab/parakeet-gateway/preflight"
	"github.com/skillsenselab/parakeet-gateway/server"
	"github.com/skillsenselab/parakeet-gateway/server/middleware"
	"github.com/skillsenselab/parakeet-gateway/transcription"
	"github.com/skillsenselab/parakeet-gateway/transcription/openai"
	"github.com/skillsenselab/parakeet-gateway/transcription/parakeet"
	"github.com/skillsenselab/parakeet-gateway/transcription/whisper"
	"github.com/skillsenselab/parakeet-gateway/util"
	"github.com/skillsenselab/parakeet-gateway/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath  = pflag.String("config", "", "path to the YAML config file")
		model       = pflag.String("model", "", "transcription model identifier (overrides config)")
		port        = pflag.Int("port", 0, "listen port (overrides config)")
		backend     = pflag.String("backend", "", "transcription backend (overrides config)")
		showVersion = pflag.Bool("version", false, "print version and exit")
	)
	pflag.Parse()

	if *showVersion {
		info := version.Get()
		fmt.Printf("parakeet-gateway %s (%s, built %s)\n", info.Version, info.Commit, info.BuildDate)
		return nil
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	cfg.Transcription.Model = util.Coalesce(*model, cfg.Transcription.Model)
	cfg.Transcription.Backend = util.Coalesce(*backend, cfg.Transcription.Backend)
	if *port != 0 {
		cfg.Server.Port = *port
	}

	logger.Init(cfg.Logging)
	log := logger.New(&cfg.Logging, cfg.Name)

	log.Info("Starting", map[string]interface{}{
		"version":     version.Get().Version,
		"environment": cfg.Environment,
		"backend":     cfg.Transcription.Backend,
		"model":       cfg.Transcription.Model,
	})

	registry := transcription.NewRegistry()
	registry.RegisterFactory("parakeet", parakeet.Factory)
	registry.RegisterFactory("whisper", whisper.Factory)
	registry.RegisterFactory("openai", openai.Factory)

	checks := preflight.NewRunner(
		preflight.ScratchDirWritable(cfg.ScratchDir),
		preflight.PortFree(cfg.Server.Host, cfg.Server.Port),
		preflight.BackendRegistered(registry, cfg.Transcription.Backend),
		preflight.DiskSpace(cfg.ScratchDir, 512<<20),
	)
	if err := checks.Run(context.Background()); err != nil {
		return err
	}

	svc := transcription.NewService(cfg.Transcription, registry)

	srv := server.New(cfg.Server, log)
	srv.ApplyMiddleware()

	if cfg.Auth.Enabled {
		validator, err := auth.NewJWTValidator(cfg.Auth.Secret)
		if err != nil {
			return err
		}
		skip := cfg.Auth.SkipPaths
		if len(skip) == 0 {
			skip = []string{"/", "/health", "/info", "/metrics"}
		}
		srv.GinEngine().Use(middleware.Auth(validator, skip))
	}

	components := component.NewRegistry()
	if err := components.Register(observability.NewComponent(cfg.Observability)); err != nil {
		return err
	}
	if err := components.Register(svc); err != nil {
		return err
	}
	if err := components.Register(server.NewComponent(srv)); err != nil {
		return err
	}

	var metrics *observability.GatewayMetrics
	if cfg.Observability.Enabled {
		m, err := observability.NewGatewayMetrics()
		if err != nil {
			return fmt.Errorf("create gateway metrics: %w", err)
		}
		metrics = m
	}

	srv.RegisterDefaultEndpoints(cfg.Name, components)
	api.NewHandler(svc, cfg.ScratchDir, cfg.StaticDir, metrics).Register(srv.GinEngine())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := components.StartAll(ctx); err != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		_ = components.StopAll(shutdownCtx)
		return err
	}

	log.Info("Ready", map[string]interface{}{
		"addr": srv.Addr(),
	})

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return components.StopAll(shutdownCtx)
}
