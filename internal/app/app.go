// Package app provides the core application service for Wails bindings.
package app

import (
	"log/slog"

	"github.com/wailsapp/wails/v3/pkg/application"

	"github.com/rebots-online/kg3dnav-cr/config"
	"github.com/rebots-online/kg3dnav-cr/internal/buildinfo"
)

// Service provides application functionality bound to Wails. It is
// stateless after construction: every query reads immutable state only.
type Service struct {
	cfg *config.Config

	// UI references - set via Init
	app    *application.App
	window application.Window
}

// New creates a new Service. Call Init() after the Wails app is created.
func New(cfg *config.Config) *Service {
	return &Service{cfg: cfg}
}

// Init initializes the service with app and window references.
// Must be called after the Wails application is created.
func (s *Service) Init(app *application.App, window application.Window) {
	s.app = app
	s.window = window

	info := buildinfo.Get()
	slog.Info("build identity resolved",
		"buildNumber", info.BuildNumber,
		"semver", info.Semver,
		"gitSha", info.GitSHA,
	)
}

// GetBuildInfo returns the build identity record. The values are baked
// at build time; every call returns the same record.
func (s *Service) GetBuildInfo() buildinfo.Info {
	return buildinfo.Get()
}

// GetVersion returns the application version.
func (s *Service) GetVersion() string {
	return buildinfo.Get().Semver
}
