package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"hkminimap/pkg/engine/event"
	"hkminimap/pkg/engine/input"
	"hkminimap/pkg/engine/terminal"
	"hkminimap/pkg/game/config"
	"hkminimap/pkg/game/gameplay"
	"hkminimap/pkg/game/minimap"
	"hkminimap/pkg/game/renderer"
	"hkminimap/pkg/game/renderer/ebiten"
	"hkminimap/pkg/game/renderer/tui"
	"hkminimap/pkg/game/sim"
)

func initGettext(cfg config.Config) {
	gotext.Configure(cfg.LocaleDir, cfg.Language, "default")
}

// applyKeyBindings installs the config's code -> action overrides
func applyKeyBindings(bindings map[string]string) {
	codes := make([]string, 0, len(bindings))
	for code := range bindings {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		action, ok := input.ActionByName(bindings[code])
		if !ok {
			log.Printf("config: unknown action %q for key %q", bindings[code], code)
			continue
		}
		input.SetSingleBinding(action, code)
	}
}

// loadConfig reads the config file and applies command line overrides
func loadConfig(path, rendererName string, debug bool, seed int64) (config.Config, error) {
	cfg, err := config.Load(config.ResolvePath(path))
	if err != nil {
		return cfg, err
	}
	if rendererName != "" {
		cfg.Renderer = rendererName
	}
	if debug {
		cfg.Debug = true
	}
	if seed != 0 {
		cfg.Sim.Seed = seed
	}
	return cfg, cfg.Validate()
}

// redirectLog sends log output to path. The terminal renderer owns the
// screen, so it logs nowhere unless a file is given.
func redirectLog(path string, tuiActive bool) (func(), error) {
	if path == "" {
		if tuiActive {
			log.SetOutput(io.Discard)
		}
		return func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	return func() { f.Close() }, nil
}

func main() {
	configPath := flag.String("config", "", "path to a JSON config file (default $"+config.EnvPath+")")
	rendererName := flag.String("renderer", "", "overlay backend: ebiten or tui")
	debug := flag.Bool("debug", false, "start with the debug HUD and logging enabled")
	seed := flag.Int64("seed", 0, "world seed for the simulated game")
	logPath := flag.String("log", "", "append log output to this file")
	flag.Parse()

	color.Enable = terminal.IsInteractive()
	renderer.InitColors()

	cfg, err := loadConfig(*configPath, *rendererName, *debug, *seed)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	config.Set(cfg)

	closeLog, err := redirectLog(*logPath, cfg.Renderer == "tui")
	if err != nil {
		log.Fatal(err)
	}
	defer closeLog()

	initGettext(cfg)
	applyKeyBindings(cfg.KeyBindings)

	bus := event.NewBus()
	host := sim.New(cfg.Sim, bus)
	ctrl := minimap.NewController(host, cfg)
	ctrl.Attach(bus)
	session := gameplay.NewSession(host, ctrl, cfg.DumpDir)

	var r renderer.Renderer
	switch cfg.Renderer {
	case "tui":
		if !terminal.StdoutIsTerminal() {
			log.Fatal("the tui renderer needs a terminal on stdout")
		}
		r = tui.New(session, cfg, nil)
	default:
		r = ebiten.New(session, cfg)
	}
	renderer.SetRenderer(r)

	if err := r.Init(); err != nil {
		log.Fatalf("init %s renderer: %v", cfg.Renderer, err)
	}
	if cfg.Renderer != "tui" && terminal.StdoutIsTerminal() {
		fmt.Print(renderer.Banner(cfg, host.GeneratorName()))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := r.Run(ctx); err != nil {
		log.Fatalf("renderer: %v", err)
	}
}
