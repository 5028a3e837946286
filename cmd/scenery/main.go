package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/scenery/config"
	"github.com/lixenwraith/scenery/object"
	"github.com/lixenwraith/scenery/render"
	"github.com/lixenwraith/scenery/scene"
)

var (
	sceneFlag = flag.String("scene", "", "Scene file to load (overrides SCENERY_SCENE)")
	findFlag  = flag.String("find", "", "Print the first object with this name and exit")
	listFlag  = flag.Bool("list", false, "Print objects in draw order instead of opening the viewer")
	debugFlag = flag.Bool("debug", false, "Write debug log to the log directory")
	colorFlag = flag.String("color", "", "Color mode: auto, truecolor, 256 (overrides SCENERY_COLOR)")
)

func main() {
	flag.Parse()
	os.Exit(run(os.Stdout, os.Stderr))
}

// run executes the CLI against the parsed flags and returns the exit code
// 0 success, 1 runtime failure, 2 configuration error
func run(stdout, stderr io.Writer) int {
	cfg, err := config.LoadEnv()
	if err != nil {
		fmt.Fprintf(stderr, "Configuration error: %v\n", err)
		return 2
	}
	if *sceneFlag != "" {
		cfg.Scene = *sceneFlag
	}
	if *colorFlag != "" {
		cfg.Color = *colorFlag
	}
	cfg.Debug = cfg.Debug || *debugFlag
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Configuration error: %v\n", err)
		return 2
	}

	if logFile := setupLogging(cfg.Debug, cfg.LogDir); logFile != nil {
		defer logFile.Close()
	}

	if cfg.Scene == "" {
		fmt.Fprintln(stderr, "No scene file: use -scene or SCENERY_SCENE")
		return 2
	}

	sf, err := config.LoadScene(cfg.Scene)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load scene: %v\n", err)
		return 1
	}

	s := scene.New()
	defer s.Close()
	sf.Populate(s)
	log.Printf("loaded %q: %d objects", sf.Title, s.Len())

	if *findFlag != "" {
		h, err := s.Find(*findFlag)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return 1
		}
		defer h.Release()
		fmt.Fprintln(stdout, formatObject(h))
		return 0
	}

	if *listFlag || !isTerminal(stdout) {
		l := s.DrawOrder()
		defer l.Release()
		if err := writeList(stdout, l); err != nil {
			fmt.Fprintf(stderr, "Write failed: %v\n", err)
			return 1
		}
		return 0
	}

	if err := view(s, cfg.Color); err != nil {
		fmt.Fprintf(stderr, "Viewer failed: %v\n", err)
		return 1
	}
	return 0
}

// isTerminal reports whether w is a file attached to a terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// formatObject renders one line of list output: z name (x,y) glyph
func formatObject(h *object.Handle) string {
	o, ok := h.Object()
	if !ok {
		return "<released>"
	}
	x, y := o.Position()
	return fmt.Sprintf("%6d %s (%d,%d) %c", o.ZOrder(), o.Name(), x, y, o.Glyph())
}

func writeList(w io.Writer, l object.List) error {
	for _, h := range l {
		if _, err := fmt.Fprintln(w, formatObject(h)); err != nil {
			return err
		}
	}
	return nil
}

// applyColorMode steers tcell's terminfo color detection
func applyColorMode(mode string) {
	var key, value string
	switch mode {
	case "256":
		key, value = "TCELL_TRUECOLOR", "disable"
	case "truecolor":
		key, value = "COLORTERM", "truecolor"
	default:
		return
	}
	if err := os.Setenv(key, value); err != nil {
		log.Printf("color mode %s: set %s: %v", mode, key, err)
	}
}

// view renders the scene until q, Esc or Ctrl-C
func view(s *scene.Scene, colorMode string) error {
	applyColorMode(colorMode)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	// Panic recovery: restore the terminal before printing the stack
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mSCENERY CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	r := render.New(screen)
	draw := func() error {
		l := s.DrawOrder()
		defer l.Release()
		return r.Draw(l)
	}

	if err := draw(); err != nil {
		return err
	}

	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			screen.Sync()
			if err := draw(); err != nil {
				return err
			}
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				return nil
			}
		}
	}
}
