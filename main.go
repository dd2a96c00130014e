package main

import (
	"fmt"
	"os"
	"time"

	"parkour_scoreboard/config"
	"parkour_scoreboard/frontend"
	"parkour_scoreboard/logging"
	"parkour_scoreboard/render"
	"parkour_scoreboard/scoreboard"
	"parkour_scoreboard/share"
	"parkour_scoreboard/store"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

const usage = `usage: scoreboard [build|serve]`

func main() {
	cmd := "build"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}
	if cmd != "build" && cmd != "serve" {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
	logging.BootstrapLogger(cfg.Debug)

	err = share.InitSentry(cfg.SentryDSN)
	if err != nil {
		logging.Log.Warnf("sentry disabled: %v", err)
	}
	defer sentry.Flush(2 * time.Second)

	err = run(cmd, cfg)
	if err != nil {
		logging.Log.Errorf("%+v", errors.WithStack(err))
		sentry.Flush(2 * time.Second)
		os.Exit(1)
	}
}

func run(cmd string, cfg *config.Config) error {
	kind, err := store.ParseLinkKind(cfg.Data.Links)
	if err != nil {
		return err
	}

	ds, err := store.Open(store.DataConfig{
		Dir:  cfg.Data.Dir,
		Kind: kind,
	})
	if err != nil {
		return err
	}

	site := render.NewSite(ds, scoreboard.Options{
		FallbackToCode: cfg.Board.FallbackToCode,
		UnknownImage:   cfg.Board.UnknownImage,
	})

	switch cmd {
	case "serve":
		if !cfg.Debug {
			gin.SetMode(gin.ReleaseMode)
		}

		g := gin.New()
		frontend.Route(g, site, cfg.Build.Assets)

		logging.Log.Infof("previewing %s on http://%s/", cfg.Data.Dir, cfg.Serve.Listen)
		return errors.WithStack(g.Run(cfg.Serve.Listen))

	default:
		_, err = site.Build(render.BuildOptions{
			Output: cfg.Build.Output,
			Assets: cfg.Build.Assets,
			Base:   cfg.Build.Base,
		})
		return err
	}
}
