// Command alarkhabil-frontend serves the public pages of an alarkhabil site.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/alarkhabil/frontend"
)

// version is set at build time via ldflags.
var version = "dev"

var cli struct {
	Listen   string           `help:"Address to listen on." env:"LISTEN_ADDR" default:"127.0.0.1:7780"`
	Config   string           `help:"Site config file, read on every request." env:"CONFIG_FILE" default:"config.json"`
	Assets   string           `help:"Directory served under /assets." env:"ASSETS_DIR" default:"assets"`
	Branding string           `help:"Directory served under /branding (default: branding, else branding-default)." env:"BRANDING_DIR"`
	Debug    bool             `help:"Enable debug logging." env:"DEBUG"`
	Version  kong.VersionFlag `help:"Print version and exit."`
}

func main() {
	// A missing .env file is fine.
	_ = godotenv.Load()

	kong.Parse(&cli,
		kong.Name("alarkhabil-frontend"),
		kong.Description("Server-rendered frontend for the alarkhabil publishing platform."),
		kong.Vars{"version": version},
	)

	app := frontend.New(
		frontend.WithConfigFile(cli.Config),
		frontend.WithAssetsDir(cli.Assets),
		frontend.WithBrandingDir(cli.Branding),
		frontend.WithDebug(cli.Debug),
	)
	app.Echo.HideBanner = true

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := app.Start(cli.Listen); err != nil {
			app.Echo.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()
	app.Echo.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.Shutdown(shutdownCtx); err != nil {
		app.Echo.Logger.Fatal(err)
	}
}
