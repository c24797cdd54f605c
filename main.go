package main

import (
	"flag"
	"io/fs"
	"log"
	"os"

	"ColoringBoard/assets"
	"ColoringBoard/internal/config"
	"ColoringBoard/internal/engine"
	"ColoringBoard/internal/gallery"
	"ColoringBoard/internal/logger"
	"ColoringBoard/internal/state"
	"ColoringBoard/internal/ui"

	"fyne.io/fyne/v2"
	"go.uber.org/zap"
)

func main() {
	defaultPath, err := config.DefaultPath()
	if err != nil {
		defaultPath = "config.toml"
	}
	configPath := flag.String("config", defaultPath, "path to the TOML config file")
	assetsDir := flag.String("assets", "", "directory with catalog and images (default: embedded)")
	debug := flag.Bool("debug", false, "verbose logging")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("Using default config: %v", err)
	}
	if *assetsDir != "" {
		cfg.AssetsDir = *assetsDir
	}
	if *debug {
		cfg.Debug = true
		cfg.LogLevel = "debug"
	}

	lg, err := logger.New(cfg.LogLevel, cfg.Debug)
	if err != nil {
		log.Fatalf("Logger: %v", err)
	}
	defer lg.Sync()

	var (
		fsys    fs.FS
		catalog *gallery.Catalog
	)
	if cfg.AssetsDir == "" {
		fsys = assets.Images()
		catalog, err = assets.DefaultCatalog()
	} else {
		fsys = os.DirFS(cfg.AssetsDir)
		catalog, err = gallery.LoadCatalog(fsys, cfg.Catalog)
	}
	if err != nil {
		lg.Fatal("catalog", zap.String("assets", cfg.AssetsDir), zap.Error(err))
	}
	loader, err := gallery.NewLoader(fsys, cfg.ImageCacheSize, fyne.Do, lg.Named("loader"))
	if err != nil {
		lg.Fatal("loader", zap.Error(err))
	}
	lg.Info("starting", zap.Int("image_sets", catalog.Len()), zap.String("config", *configPath))

	ui.RunApp(ui.Options{
		Width:         cfg.WindowWidth,
		Height:        cfg.WindowHeight,
		Sets:          catalog.Sets(),
		Thumbnails:    loader,
		ThumbnailSize: cfg.ThumbnailSize,
		Logger:        lg.Named("ui"),
	}, func(view engine.View) ui.Controller {
		return engine.New(engine.Options{
			Loader:           loader,
			View:             view,
			Clock:            state.NewSystemClock(fyne.Do),
			Logger:           lg.Named("engine"),
			ViewportFraction: cfg.ViewportFraction,
			BrushRadius:      cfg.BrushRadius,
			ResizeDelay:      cfg.ResizeDelay(),
			OrientationDelay: cfg.OrientationDelay(),
		})
	})
}
