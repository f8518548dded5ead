package main

import (
	"context"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/vongst/web-audio-api/internal/api"
	"github.com/vongst/web-audio-api/internal/audio"
	"github.com/vongst/web-audio-api/internal/config"
	"github.com/vongst/web-audio-api/internal/feed"
	"github.com/vongst/web-audio-api/internal/render"
	http "github.com/vongst/web-audio-api/internal/server"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	// post pipeline
	collector := feed.NewHTTPCollector(cfg.SourceURL, cfg.HTTPTimeout())
	renderer := render.NewTableRenderer(os.Stdout)
	ctrl := feed.NewController(collector, renderer, logger)

	// audio control panel: decoded sequentially, failures omitted
	engine := audio.NewWAVEngine(audio.DiscardSink{}, logger)
	loader := audio.NewLoader(engine, cfg.HTTPTimeout())
	panel := audio.NewPanel(ctx, loader, engine, cfg.AudioSources, logger)
	logger.Info("audio panel ready",
		zap.Int("sources", len(cfg.AudioSources)),
		zap.Int("entries", len(panel.Entries())),
	)

	// initial page load: fetch and render once
	ctrl.FetchAndRender(ctx)

	// http server uses the api facade
	app := api.New(ctrl, panel)
	s := http.New(app)
	logger.Info("listening", zap.String("addr", cfg.ListenAddr))
	if err := s.ListenAndServe(ctx, cfg.ListenAddr); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
