package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/texel-architect/texel_architect/pkg/config"
	"github.com/texel-architect/texel_architect/pkg/debuglog"
	"github.com/texel-architect/texel_architect/pkg/density"
	"github.com/texel-architect/texel_architect/pkg/export"
	"github.com/texel-architect/texel_architect/pkg/model"
	"github.com/texel-architect/texel_architect/pkg/ui"
	"github.com/texel-architect/texel_architect/pkg/version"
	"github.com/texel-architect/texel_architect/pkg/watcher"
)

func main() {
	os.Exit(run())
}

// run holds the whole program so deferred cleanup runs before the exit code
// reaches os.Exit.
func run() int {
	help := flag.Bool("help", false, "Show help")
	showVersion := flag.Bool("version", false, "Show version")
	configPath := flag.String("config", "", "Config file (default: $XDG_CONFIG_HOME/texel_architect/config.yaml)")
	modeFlag := flag.String("mode", "", "Start mode: density or size")
	objectSize := flag.Float64("object-size", 0, "Object size in cm")
	textureSize := flag.Float64("texture-size", 0, "Texture resolution in px (512, 1024, 2048, 4096, 8192)")
	targetDensity := flag.Float64("target-density", 0, "Target density in px/cm")
	presetName := flag.String("preset", "", "Apply the best fuzzy match among presets as the target density")
	robotCalc := flag.Bool("robot-calc", false, "Print the calculation as JSON and exit")
	exportPath := flag.String("export", "", "Write the grid or report to a file (.png, .svg, .json, .yaml, .md) and exit")
	exportDir := flag.String("export-dir", "", "Directory for Ctrl+E exports in the TUI")
	serve := flag.Bool("serve", false, "Export into --export-dir and serve a browser preview until interrupted")
	form := flag.Bool("form", false, "Answer a short form instead of starting the full TUI")
	debugLog := flag.String("debug-log", "", "Append debug logs to this file")
	flag.Parse()

	if *help {
		fmt.Println("Usage: ta [options]")
		fmt.Println("\nTexel Architect: calculate and visualize texel density.")
		flag.PrintDefaults()
		return 0
	}

	if *showVersion {
		fmt.Printf("ta version %s\n", version.Version)
		return 0
	}

	if *debugLog != "" {
		closer, err := debuglog.Open(*debugLog)
		if err != nil {
			return fail(err)
		}
		defer closer.Close()
	}
	log := debuglog.Logger()

	path := *configPath
	if path == "" {
		if p, err := config.DefaultPath(); err == nil {
			path = p
		}
	}
	cfg := config.DefaultConfig()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			return 1
		}
		cfg = loaded
	}
	log.Debug("config loaded", "path", path, "mode", string(cfg.Mode), "presets", len(cfg.Presets))

	// Flags override config values only when given explicitly.
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["mode"] {
		m, err := model.ParseMode(*modeFlag)
		if err != nil {
			return fail(err)
		}
		cfg.Mode = m
	}
	if set["object-size"] {
		cfg.ObjectSizeCm = *objectSize
	}
	if set["texture-size"] {
		if err := config.CheckResolution(*textureSize); err != nil {
			return fail(err)
		}
		cfg.TextureSizePx = *textureSize
	}
	if set["target-density"] {
		cfg.TargetDensity = *targetDensity
	}
	if *exportDir != "" {
		cfg.ExportDir = *exportDir
	}

	calc := model.NewCalculator(cfg.Mode, cfg.Inputs())
	presets := cfg.AllPresets()

	if *presetName != "" {
		matches := density.FindPresets(*presetName, presets)
		if len(matches) == 0 {
			return fail(fmt.Errorf("no preset matches %q", *presetName))
		}
		calc.ApplyPreset(matches[0])
		log.Debug("preset applied", "name", matches[0].Name, "density", matches[0].Density)
	}

	switch {
	case *robotCalc:
		if err := export.NewReport(calc.Snapshot(), cfg.PreviewPx).WriteJSON(os.Stdout); err != nil {
			return fail(err)
		}
	case *exportPath != "":
		opts := export.SnapshotOptions{Path: *exportPath, Snapshot: calc.Snapshot(), PreviewPx: cfg.PreviewPx}
		if err := export.SaveSnapshot(opts); err != nil {
			return fail(err)
		}
		fmt.Printf("Wrote %s\n", *exportPath)
	case *serve:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		snap := calc.Snapshot()
		if _, err := export.ExportAll(ctx, cfg.ExportDir, snap, cfg.PreviewPx); err != nil {
			return fail(err)
		}
		if err := export.StartPreview(ctx, cfg.ExportDir, snap, cfg.PreviewPx, os.Stdout); err != nil {
			return fail(err)
		}
	case *form:
		if err := ui.RunQuickForm(calc, presets); err != nil {
			return fail(err)
		}
		printResult(os.Stdout, calc.Snapshot())
	case !term.IsTerminal(int(os.Stdout.Fd())):
		printResult(os.Stdout, calc.Snapshot())
	default:
		if err := runTUI(calc, cfg, path); err != nil {
			fmt.Fprintf(os.Stderr, "Error running texel architect: %v\n", err)
			return 1
		}
	}
	return 0
}

func runTUI(calc *model.Calculator, cfg *config.Config, path string) error {
	m := ui.NewModel(calc, ui.Options{
		Presets:   cfg.AllPresets(),
		PreviewPx: cfg.PreviewPx,
		ExportDir: cfg.ExportDir,
	})
	p := tea.NewProgram(m, tea.WithAltScreen())

	if path != "" {
		w, err := watcher.New(path, func() {
			reloaded, err := config.Load(path)
			p.Send(ui.ConfigReloadedMsg{
				Presets:   reloaded.AllPresets(),
				PreviewPx: reloaded.PreviewPx,
				ExportDir: reloaded.ExportDir,
				Err:       err,
			})
		})
		if err != nil {
			// The config directory usually does not exist until a user
			// creates a config; live reload is then simply unavailable.
			debuglog.Logger().Debug("config watch disabled", "err", err)
		} else {
			defer w.Close()
		}
	}

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

func printResult(w io.Writer, snap model.Snapshot) {
	fmt.Fprintln(w, snap.ResultLine())
}

func fail(err error) int {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return 1
}
