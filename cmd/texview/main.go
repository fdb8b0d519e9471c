// Command texview previews a body texture and its mipmap chain in the terminal
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orrery/core"
	"github.com/lixenwraith/orrery/render"
	"github.com/lixenwraith/orrery/texture"
)

func main() {
	var (
		level    int
		actual   bool
		noStatus bool
	)

	flag.IntVar(&level, "l", 0, "Initial mip level")
	flag.BoolVar(&actual, "actual", false, "Start at one texel per pixel instead of fit-to-screen")
	flag.BoolVar(&noStatus, "no-status", false, "Hide status bar")
	flag.Parse()

	if flag.NArg() < 1 {
		printUsage()
		os.Exit(1)
	}

	path := flag.Arg(0)
	viewer, err := loadViewer(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading texture: %v\n", err)
		os.Exit(1)
	}

	viewer.AdjustLevel(level)
	if actual {
		viewer.ViewMode = ViewActual
	}
	viewer.ShowStatus = !noStatus

	if err := runViewer(viewer); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: texview [options] <texture>")
	fmt.Fprintln(os.Stderr, "\nSupported formats: JPEG, PNG, GIF, WebP, BMP, TIFF")
	fmt.Fprintln(os.Stderr, "\nOptions:")
	flag.PrintDefaults()
	fmt.Fprintln(os.Stderr, "\nControls:")
	fmt.Fprintln(os.Stderr, "  q, Esc, Ctrl+C    Quit")
	fmt.Fprintln(os.Stderr, "  f                 Toggle fit/actual size")
	fmt.Fprintln(os.Stderr, "  +, =, ]           Next (smaller) mip level")
	fmt.Fprintln(os.Stderr, "  -, _, [           Previous (larger) mip level")
	fmt.Fprintln(os.Stderr, "  0                 Level 0")
	fmt.Fprintln(os.Stderr, "  s                 Toggle status bar")
}

// loadViewer decodes and uploads the texture through the same path the orrery uses
func loadViewer(path string) (*Viewer, error) {
	img, err := texture.Decode(path)
	if err != nil {
		return nil, err
	}
	reg := texture.NewRegistry()
	h, err := reg.Upload(img)
	if err != nil {
		return nil, err
	}
	tex, _ := reg.Get(h)
	return NewViewer(filepath.Base(path), tex), nil
}

func runViewer(viewer *Viewer) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal create: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	core.SetRestore(screen.Fini)
	defer screen.Fini()
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	screen.HideCursor()

	canvas := render.NewCanvas(0, 0)
	renderFrame(screen, viewer, canvas)

	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventKey:
			if handleKey(ev, viewer) == actionQuit {
				return nil
			}
		case *tcell.EventResize:
			screen.Sync()
		}
		renderFrame(screen, viewer, canvas)
	}
}

type keyAction int

const (
	actionNone keyAction = iota
	actionQuit
)

func handleKey(ev *tcell.EventKey, viewer *Viewer) keyAction {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return actionQuit
		case 'f', 'F':
			viewer.ToggleViewMode()
		case '+', '=', ']':
			viewer.AdjustLevel(1)
		case '-', '_', '[':
			viewer.AdjustLevel(-1)
		case '0':
			viewer.Level = 0
		case 's', 'S':
			viewer.ShowStatus = !viewer.ShowStatus
		}
	}
	return actionNone
}

// renderFrame paints the viewer at the current screen size, reserving the last row for status
func renderFrame(screen tcell.Screen, viewer *Viewer, canvas *render.Canvas) {
	width, height := screen.Size()
	rows := height
	if viewer.ShowStatus && rows > 0 {
		rows--
	}

	canvas.Resize(width, rows*2)
	viewer.Paint(canvas)

	screen.Clear()
	render.Flush(screen, canvas, 0)
	if viewer.ShowStatus && height > 0 {
		style := tcell.StyleDefault.Foreground(render.RgbStatusBar).Background(render.RgbStatusBg)
		render.DrawText(screen, 0, height-1, width, viewer.Status(), style)
	}
	screen.Show()
}
