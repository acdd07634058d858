package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/duotone/duotone/internal/config"
	"github.com/duotone/duotone/internal/controller"
	"github.com/duotone/duotone/internal/logging"
	"github.com/duotone/duotone/internal/picker"
	"github.com/duotone/duotone/internal/store"
	"github.com/duotone/duotone/internal/system"
	"github.com/duotone/duotone/internal/theme"
	"github.com/duotone/duotone/internal/theme/themes"
)

var version = "0.1.0"

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `duotone - light/dark theme switcher

Usage: duotone [options]

Options:
  -config string
        Path to config file (default: ~/.config/duotone/config.toml)
  -version
        Print version and exit

Actions (without any, the interactive picker starts):
  -list
        List theme families
  -show
        Print the resolved theme
  -mode string
        Set the mode: system, light or dark
  -theme string
        Pin a theme by id (e.g. nord_dark)
  -reset
        Clear the pinned theme and follow the mode

Examples:
  duotone                          # Open the picker
  duotone -mode dark               # Switch to dark mode
  duotone -theme gruvbox_light     # Pin a theme
  duotone -reset -show             # Unpin and print the result

`)
	}

	os.Exit(run())
}

func run() int {
	cfgPath := flag.String("config", "", "")
	showVersion := flag.Bool("version", false, "")
	list := flag.Bool("list", false, "")
	show := flag.Bool("show", false, "")
	mode := flag.String("mode", "", "")
	themeID := flag.String("theme", "", "")
	reset := flag.Bool("reset", false, "")
	flag.Parse()

	if *showVersion {
		fmt.Println("duotone", version)
		return 0
	}

	cfg, resolvedPath, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		return 1
	}
	level, err := config.ParseLevel(cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "log level: %v\n", err)
		return 1
	}
	stateDir, err := config.StateDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "resolve state dir: %v\n", err)
		return 1
	}
	logger, logFile, err := logging.Setup(stateDir, level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "setup logging: %v\n", err)
		return 1
	}
	defer logFile.Close()
	logger.Info("starting duotone", slog.String("config", resolvedPath))

	registry, err := themes.Registry(cfg.ThemeFamilies()...)
	if err != nil {
		logger.Error("register themes", slog.Any("err", err))
		fmt.Fprintf(os.Stderr, "register themes: %v\n", err)
		return 1
	}

	st, closer, err := store.Open(cfg.Store)
	if err != nil {
		logger.Error("open store", slog.Any("err", err))
		fmt.Fprintf(os.Stderr, "open store: %v\n", err)
		return 1
	}
	defer closer.Close()

	ctrl, err := controller.New(controller.Options{
		Registry:       registry,
		Store:          st,
		System:         system.Terminal{Override: cfg.System.Mode},
		DefaultThemeID: cfg.DefaultThemeID(),
		Logger:         logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "init controller: %v\n", err)
		return 1
	}
	defer ctrl.Close()
	<-ctrl.Loaded()

	noColor := os.Getenv("NO_COLOR") != "" || cfg.Theme.NoColor

	acted, err := apply(ctrl, actions{
		Mode:  *mode,
		Theme: *themeID,
		Reset: *reset,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	if *list {
		listFamilies(os.Stdout, ctrl)
		acted = true
	}
	if *show {
		printState(os.Stdout, ctrl.State(), noColor)
		acted = true
	}
	if acted {
		return 0
	}

	if _, err := tea.NewProgram(picker.New(ctrl, noColor), tea.WithAltScreen()).Run(); err != nil {
		logger.Error("run picker", slog.Any("err", err))
		fmt.Fprintf(os.Stderr, "picker: %v\n", err)
		return 1
	}
	return 0
}

type actions struct {
	Mode  string
	Theme string
	Reset bool
}

// apply runs the selection-changing actions and reports whether any ran.
// Every action is validated before the first one is applied.
func apply(ctrl *controller.Controller, a actions) (bool, error) {
	var m theme.Mode
	if a.Mode != "" {
		var err error
		if m, err = theme.ParseMode(a.Mode); err != nil {
			return false, err
		}
	}
	id := theme.ThemeID(a.Theme)
	if id != "" && !known(ctrl, id) {
		return false, fmt.Errorf("unknown theme %q (see -list)", a.Theme)
	}

	acted := false
	if a.Mode != "" {
		ctrl.SetMode(m)
		acted = true
	}
	if a.Reset {
		ctrl.SetExplicitTheme("")
		acted = true
	}
	if id != "" {
		ctrl.SetExplicitTheme(id)
		acted = true
	}
	return acted, nil
}

func known(ctrl *controller.Controller, id theme.ThemeID) bool {
	for _, d := range ctrl.AvailableThemes() {
		if d.ID == id {
			return true
		}
	}
	return false
}

func listFamilies(w io.Writer, ctrl *controller.Controller) {
	current := ctrl.State().Theme.ID
	for _, f := range ctrl.AvailableThemeFamilies() {
		marker := " "
		if f.Contains(current) {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %-12s %-14s %-16s %s\n", marker, f.ID, f.Name, f.Light.ID, f.Dark.ID)
	}
}

func printState(w io.Writer, st theme.State, noColor bool) {
	styles := st.Theme.Styles(noColor)
	appearance := "light"
	if st.IsDark() {
		appearance = "dark"
	}
	explicit := "-"
	if st.Selection.HasExplicit() {
		explicit = string(st.Selection.Explicit)
	}
	fmt.Fprintf(w, "mode:     %s\n", st.Selection.Mode)
	fmt.Fprintf(w, "pinned:   %s\n", explicit)
	fmt.Fprintf(w, "theme:    %s\n", styles.Accent.Render(fmt.Sprintf("%s (%s)", st.Theme.Name, st.Theme.ID)))
	fmt.Fprintf(w, "appears:  %s\n", appearance)
}
