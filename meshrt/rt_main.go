package main

import (
	"flag"
	"os"
	"runtime"

	"github.com/gekko3d/bubbles"
	"github.com/gekko3d/bubbles/platform"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "bubbles.yaml", "Optional YAML config file")
	meshPath := flag.String("mesh", "", "Mesh file to load (overrides config)")
	debug := flag.Bool("debug", false, "Enable debug logging")
	seed := flag.Uint64("seed", 0, "Phase seed, 0 for time based")
	flag.Parse()

	log := bubbles.NewDefaultLogger(bubbles.LogPrefix, *debug)

	cfg, err := bubbles.LoadConfig(*configPath)
	if err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mesh":
			cfg.Mesh.Path = *meshPath
		case "debug":
			cfg.Debug = *debug
		case "seed":
			cfg.Seed = *seed
		}
	})

	if err := run(cfg, log); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(cfg bubbles.Config, log *bubbles.DefaultLogger) error {
	if err := platform.Init(); err != nil {
		return err
	}
	defer platform.Terminate()

	window, err := platform.NewWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title)
	if err != nil {
		return err
	}
	defer window.Destroy()

	app := bubbles.NewAppBuilder().
		UseModule(bubbles.PlatformWindowModule{Window: window}).
		UseModule(cfg.SimulationModules(log, window, cfg.Rand())...).
		UseModule(bubbles.MeshRendererModule{}).
		Build()
	defer app.Close()

	return window.Run(app)
}
