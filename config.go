package frontend

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"sync"

	"github.com/labstack/echo/v4"

	"github.com/alarkhabil/frontend/views"
)

//go:embed config-default.json
var defaultConfigJSON []byte

var defaultConfig = sync.OnceValue(func() views.SiteConfig {
	var cfg views.SiteConfig
	if err := json.Unmarshal(defaultConfigJSON, &cfg); err != nil {
		panic(fmt.Sprintf("frontend: embedded config-default.json: %v", err))
	}
	return cfg
})

// DefaultConfig returns a copy of the compiled-in site config.
func DefaultConfig() views.SiteConfig {
	cfg := defaultConfig()
	cfg.HeaderNavigation = slices.Clone(cfg.HeaderNavigation)
	cfg.FooterNavigation = slices.Clone(cfg.FooterNavigation)
	return cfg
}

// LoadConfig reads the site config at path. Keys missing from the file keep
// their default values. A missing file yields the default config and no
// error; an unreadable or malformed file yields the default config and the
// error, which callers only log.
func LoadConfig(path string) (views.SiteConfig, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return DefaultConfig(), fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

const configKey = "frontend.config"

// siteConfig loads the config once per request.
func (a *App) siteConfig(c echo.Context) views.SiteConfig {
	if cfg, ok := c.Get(configKey).(views.SiteConfig); ok {
		return cfg
	}
	cfg, err := LoadConfig(a.configFile)
	if err != nil {
		c.Logger().Warnf("%v; using default config", err)
	}
	c.Set(configKey, cfg)
	return cfg
}
