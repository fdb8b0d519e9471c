package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orrery/audio"
	"github.com/lixenwraith/orrery/catalog"
	"github.com/lixenwraith/orrery/config"
	"github.com/lixenwraith/orrery/constants"
	"github.com/lixenwraith/orrery/core"
	"github.com/lixenwraith/orrery/engine"
	"github.com/lixenwraith/orrery/input"
	"github.com/lixenwraith/orrery/render"
	"github.com/lixenwraith/orrery/texture"
	"github.com/lixenwraith/orrery/view"
)

var (
	configFlag    = flag.String("config", "", "Config file path (default "+config.DefaultPath+")")
	assetsFlag    = flag.String("assets", "", "Texture directory, overrides [assets] dir")
	colorModeFlag = flag.String("color", "", "Color mode: auto, truecolor, 256 (overrides [display] color)")
	debugFlag     = flag.Bool("debug", false, "Write debug log to "+logDir+"/"+logFileName)
	noAudioFlag   = flag.Bool("no-audio", false, "Disable audio cues")
	helpKeysFlag  = flag.Bool("help-keys", false, "Print key bindings and exit")
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, configWarning(err))
	}
	if err := applyFlags(cfg, *assetsFlag, *colorModeFlag, *noAudioFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Flags: %v\n", err)
	}

	keys, err := buildKeymap(cfg.Keys)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Keymap: %v (using defaults)\n", err)
		keys = view.DefaultKeymap()
	}

	if *helpKeysFlag {
		for _, line := range input.DescribeKeymap(keys) {
			fmt.Println(line)
		}
		return
	}

	// Textures load before the terminal takes over so failures stay visible
	cat, reg := loadCatalog(cfg.Assets.Dir, os.Stderr)

	if err := run(cfg, keys, cat, reg); err != nil {
		fmt.Fprintf(os.Stderr, "orrery: %v\n", err)
		os.Exit(1)
	}
}

// applyFlags overlays non-empty command-line values on the loaded config
func applyFlags(cfg *config.Config, assets, color string, noAudio bool) error {
	if assets != "" {
		cfg.Assets.Dir = assets
	}
	if color != "" {
		cfg.Display.Color = color
	}
	if noAudio {
		cfg.Audio.Enabled = false
	}
	return cfg.Validate()
}

// buildKeymap merges [keys] overrides onto the default bindings
func buildKeymap(raw map[string]string) (view.Keymap, error) {
	base := view.DefaultKeymap()
	if len(raw) == 0 {
		return base, nil
	}
	override, err := input.LoadKeymap(raw)
	if err != nil {
		return nil, err
	}
	return input.MergeKeymap(base, override), nil
}

// applyColorMode steers tcell's color detection through its environment switches
func applyColorMode(mode string, setenv func(key, value string) error) {
	switch mode {
	case config.ColorTrueColor:
		_ = setenv("COLORTERM", "truecolor")
	case config.Color256:
		_ = setenv("TCELL_TRUECOLOR", "disable")
	}
}

// configWarning describes a config.Load error by what the returned config holds
func configWarning(err error) string {
	if errors.Is(err, config.ErrInvalid) {
		return fmt.Sprintf("Config: %v (invalid values reset, other settings kept)", err)
	}
	return fmt.Sprintf("Config: %v (using defaults)", err)
}

// loadCatalog decodes and uploads every body texture, missing files fall back to tints
// Each failure is written to warn as well as the debug log
func loadCatalog(dir string, warn io.Writer) (catalog.Catalog, *texture.Registry) {
	reg := texture.NewRegistry()
	loader := texture.NewLoader(dir, reg)
	loader.Warnings = warn
	cat := catalog.Default().Resolve(loader.Load)
	log.Printf("Loaded %d textures from %s", reg.Len(), dir)
	return cat, reg
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

// run owns the terminal for the lifetime of the visualizer
// Errors are returned after the terminal is restored
func run(cfg *config.Config, keys view.Keymap, cat catalog.Catalog, reg *texture.Registry) error {
	applyColorMode(cfg.Display.Color, os.Setenv)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialize terminal: %w", err)
	}
	core.SetRestore(screen.Fini)
	// Normal exit terminal cleanup
	defer func() {
		core.SetRestore(nil)
		screen.Fini()
	}()
	// Panic Recovery: Ensure terminal is reset even if the loop crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	player := audio.NewPlayer(cfg.Audio.Volume)
	if cfg.Audio.Enabled {
		if err := player.Initialize(); err != nil {
			log.Printf("Audio initialization failed: %v (continuing without audio)", err)
		}
	}
	defer player.Close()

	renderer := render.NewTerminalRenderer(screen, reg, cfg.Display.HUD)
	session := engine.NewSession(cat, keys)
	translator := input.NewTranslator(cfg.Input.CellWidth, cfg.Input.CellHeight, renderer.HUDRows())

	// Size the viewport before the first paint
	w, h := screen.Size()
	for _, ev := range translator.Translate(tcell.NewEventResize(w, h)) {
		session.HandleEvent(ev)
	}

	events := make(chan view.Event, constants.EventQueueSize)
	// Input polling goroutine only translates; the loop owns all state
	core.Go(func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			for _, ve := range translator.Translate(ev) {
				events <- ve
			}
		}
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loop := engine.NewLoop(session, renderer, player, engine.LoopConfig{
		TickInterval:  ms(cfg.Display.TickMs),
		FrameInterval: ms(cfg.Display.FrameMs),
	})
	err = loop.Run(ctx, events)
	log.Printf("Exit after %d frames, %d ticks", session.Stats.Frames, session.Clock.Ticks)
	if err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
