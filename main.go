package main

import (
	"embed"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/wailsapp/wails/v3/pkg/application"

	"github.com/rebots-online/kg3dnav-cr/config"
	"github.com/rebots-online/kg3dnav-cr/internal/app"
	"github.com/rebots-online/kg3dnav-cr/internal/buildinfo"
	"github.com/rebots-online/kg3dnav-cr/internal/menu"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		cfg = config.Default()
	}

	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level: cfg.SlogLevel(),
	})))

	info := buildinfo.Get()
	slog.Info("starting kg3dnav",
		"semver", info.Semver,
		"build", info.BuildNumber,
		"commit", info.GitSHA,
		"install", cfg.InstallID,
	)

	appService := app.New(cfg)

	wapp := application.New(application.Options{
		Name:        "KG3D Navigator",
		Description: "3D knowledge graph navigator",
		Services: []application.Service{
			application.NewService(appService),
		},
		Assets: application.AssetOptions{
			Handler: application.BundledAssetFileServer(assets),
		},
		Mac: application.MacOptions{
			ApplicationShouldTerminateAfterLastWindowClosed: true,
		},
	})

	mainWindow := wapp.Window.NewWithOptions(application.WebviewWindowOptions{
		Title:           "KG3D Navigator",
		Width:           cfg.Window.Width,
		Height:          cfg.Window.Height,
		URL:             "/",
		DevToolsEnabled: cfg.DevTools,
	})

	appService.Init(wapp, mainWindow)

	menu.NewRouter(wapp.Event).Attach(wapp)

	if err := wapp.Run(); err != nil {
		slog.Error("run app", "error", err)
	}
}
