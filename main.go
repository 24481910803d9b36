/*
Renders the testbed animation, either offline into numbered PNG frames or in
real time until interrupted.
*/
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/schollz/progressbar/v3"

	"github.com/spaghettifunk/motion/engine"
	"github.com/spaghettifunk/motion/engine/assets"
	"github.com/spaghettifunk/motion/engine/core"
	"github.com/spaghettifunk/motion/testbed"
)

var (
	configPath = flag.String("config", "", "path to a TOML or YAML config file")
	realtime   = flag.Bool("realtime", false, "step with the wall clock instead of rendering a fixed number of frames")
	watch      = flag.Bool("watch", false, "reload the config file when it changes")
	scenePath  = flag.String("scene", "", "path to a TOML or YAML scene file to render instead of the demo")
)

func main() {
	flag.Parse()

	config := core.DefaultConfig()
	if *configPath != "" {
		c, err := core.LoadConfig(*configPath)
		if err != nil {
			core.LogFatal("failed to load config: %s", err)
		}
		config = c
	}
	config.ApplyLogging()

	tb := testbed.NewTestGame()
	if *scenePath != "" {
		s, err := loadScene(*scenePath)
		if err != nil {
			core.LogFatal("failed to load scene: %s", err)
		}
		tb = testbed.NewTestGameWithScene(s)
	}
	engineConfig := *config
	e, err := engine.New(tb.Game, &engineConfig)
	if err != nil {
		core.LogFatal(err.Error())
	}

	if *watch && *configPath != "" {
		watcher, err := core.NewConfigWatcher(*configPath, config)
		if err != nil {
			core.LogFatal("failed to watch config: %s", err)
		}
		defer watcher.Close()
		watcher.Reloaded.Connect(func() {
			e.Reconfigure(watcher.Current())
		})
	}

	if err := e.Initialize(); err != nil {
		core.LogFatal(err.Error())
	}

	// signal channel to capture system calls
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if err := run(ctx, e, *realtime); err != nil {
		core.LogError(err.Error())
		_ = e.Shutdown()
		os.Exit(1)
	}
	if err := e.Shutdown(); err != nil {
		core.LogFatal(err.Error())
	}
}

func loadScene(path string) (*assets.DescribedScene, error) {
	am, err := assets.NewAssetManager()
	if err != nil {
		return nil, err
	}
	defer am.Close()
	desc, err := am.LoadSceneFile(path)
	if err != nil {
		return nil, err
	}
	return desc.Build()
}

func run(ctx context.Context, e *engine.Engine, realtime bool) error {
	if realtime {
		return e.Run(ctx)
	}

	frames := e.FrameCount()
	pb := progressbar.Default(int64(frames), "rendering")
	defer pb.Close()

	for range frames {
		if ctx.Err() != nil {
			return nil
		}
		if err := e.RenderFrames(1, nil); err != nil {
			return err
		}
		pb.Add(1)
	}
	return nil
}
