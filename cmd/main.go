package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"hexgrid/internal/clipboard"
	"hexgrid/internal/config"
	"hexgrid/internal/editor"
	"hexgrid/internal/palette"
	"hexgrid/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// options are the command-line flags. Zero values mean "use the config file".
type options struct {
	configPath  string
	cols        int
	rows        int
	noClipboard bool
	writeConfig bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("hexgrid", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "config file (default "+config.Path()+")")
	fs.IntVar(&opts.cols, "cols", 0, "grid columns, overrides config")
	fs.IntVar(&opts.rows, "rows", 0, "grid rows, overrides config")
	fs.BoolVar(&opts.noClipboard, "no-clipboard", false, "disable the system clipboard")
	fs.BoolVar(&opts.writeConfig, "write-config", false, "write the effective config and exit")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	return opts, nil
}

// loadConfig reads the config file and applies flag overrides on top.
func loadConfig(opts options) (*config.Config, string, error) {
	path := opts.configPath
	if path == "" {
		path = config.Path()
	}
	cfg := config.DefaultConfig()
	if path != "" {
		var err error
		if cfg, err = config.LoadFrom(path); err != nil {
			return nil, path, err
		}
	}
	if opts.cols > 0 {
		cfg.Grid.Cols = opts.cols
	}
	if opts.rows > 0 {
		cfg.Grid.Rows = opts.rows
	}
	if opts.noClipboard {
		cfg.Clipboard.Enabled = false
	}
	if err := cfg.Validate(); err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

// newClipboard picks the clipboard provider for cfg. OSC 52 output goes to
// the terminal through term.
func newClipboard(cfg *config.Config, term io.Writer) clipboard.Provider {
	if !cfg.Clipboard.Enabled {
		return clipboard.Disabled{}
	}
	if !cfg.Clipboard.OSC52 {
		term = nil
	}
	return clipboard.NewSystem(term)
}

func initialModel(cfg *config.Config, clip clipboard.Provider) ui.EditorModel {
	grid := palette.New(cfg.Grid.Cols, cfg.Grid.Rows)
	return ui.NewEditorModel(editor.New(grid, clip), cfg.Cell)
}

// logPath returns the path for the debug log file.
// An explicit log_file in the config wins. When running from the project
// directory (go run / ./bin/hexgrid), logs go to .logs/debug.log. When
// installed, logs go to ~/.local/state/hexgrid/debug.log following XDG
// conventions.
func logPath(cfg *config.Config) string {
	if cfg.LogFile != "" {
		_ = os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755)
		return cfg.LogFile
	}
	exe, err := os.Executable()
	if err == nil {
		exeDir := filepath.Dir(exe)
		cwd, _ := os.Getwd()
		if strings.HasPrefix(exeDir, cwd) || strings.Contains(exeDir, "go-build") {
			dir := filepath.Join(cwd, ".logs")
			_ = os.MkdirAll(dir, 0o755)
			return filepath.Join(dir, "debug.log")
		}
	}
	dir := config.StateDir()
	if dir == "" {
		dir = os.TempDir()
	}
	_ = os.MkdirAll(dir, 0o755)
	return filepath.Join(dir, "debug.log")
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(2)
	}

	cfg, cfgPath, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	if opts.writeConfig {
		if cfgPath == "" {
			fmt.Fprintln(os.Stderr, "Error: cannot determine config directory")
			os.Exit(1)
		}
		if err := config.SaveTo(cfg, cfgPath); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		fmt.Println("wrote", cfgPath)
		return
	}

	lp := logPath(cfg)
	f, err := tea.LogToFile(lp, "debug")
	if err != nil {
		fmt.Fprintln(os.Stderr, "Could not open debug log:", err)
		os.Exit(1)
	}
	defer func() { _ = f.Close() }()
	config.FixOwnership(lp)
	log.Printf("=== hexgrid starting (log: %s, grid %dx%d, clipboard %v) ===",
		lp, cfg.Grid.Cols, cfg.Grid.Rows, cfg.Clipboard.Enabled)

	model := initialModel(cfg, newClipboard(cfg, os.Stderr))
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
