package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/gdamore/tcell/v2/terminfo"
	"github.com/spf13/cobra"

	"github.com/johnconnor-sec/autocomplete-go/internal/config"
	"github.com/johnconnor-sec/autocomplete-go/internal/errors"
	"github.com/johnconnor-sec/autocomplete-go/internal/output"
	"github.com/johnconnor-sec/autocomplete-go/internal/tui"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check configuration, suggestions and terminal",
	Args:  cobra.NoArgs,
	RunE:  runDoctor,
}

// environment is what the checks read from the process.
type environment struct {
	getenv    func(string) string
	stdinTTY  bool
	stdoutTTY bool
}

func processEnvironment() environment {
	return environment{
		getenv:    os.Getenv,
		stdinTTY:  output.IsTerminal(os.Stdin),
		stdoutTTY: output.IsTerminal(os.Stdout),
	}
}

func runDoctor(cmd *cobra.Command, args []string) error {
	checks := collectChecks(processEnvironment())

	formatter := newFormatter(cmd.OutOrStdout())
	formatter.RenderChecks("Autocomplete Doctor", checks)
	fmt.Fprintln(cmd.OutOrStdout())

	if output.Failed(checks) {
		return errors.New(errors.ValidationFailed, "Some checks failed").
			WithSuggestion("Fix the issues listed above and run 'autocomplete doctor' again")
	}
	formatter.ScreenReaderText("success", "Ready to run")
	return nil
}

func collectChecks(env environment) []output.Check {
	checks := []output.Check{{
		Component: "Runtime",
		Status:    output.CheckReady,
		Details:   map[string]any{"go": runtime.Version(), "version": version},
	}}

	cfg, cfgCheck := checkConfig()
	checks = append(checks, cfgCheck)
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	checks = append(checks, checkItems(cfg), checkTheme(cfg), checkTerminal(env))
	if cfg.Log.File != "" {
		checks = append(checks, checkLogFile(cfg))
	}
	return checks
}

func checkConfig() (*config.Config, output.Check) {
	path, err := resolveConfigPath()
	if err == nil {
		if _, statErr := os.Stat(path); statErr != nil && configPath == "" {
			return nil, output.Check{
				Component:   "Configuration",
				Status:      output.CheckWarning,
				Details:     map[string]any{"path": path, "using": "defaults"},
				Suggestions: []string{"Run 'autocomplete config init' to create configuration"},
			}
		}
	}

	cfg, err := loadConfig()
	if err != nil {
		return nil, output.Check{
			Component:   "Configuration",
			Status:      output.CheckFailed,
			Details:     map[string]any{"path": path, "error": errors.GetType(err)},
			Suggestions: []string{"Run 'autocomplete config validate' for the full report"},
		}
	}
	return cfg, output.Check{
		Component: "Configuration",
		Status:    output.CheckReady,
		Details:   map[string]any{"path": cfg.ConfigPath},
	}
}

func checkItems(cfg *config.Config) output.Check {
	source, err := loadItems(cfg, "")
	if err != nil {
		return output.Check{
			Component:   "Suggestions",
			Status:      output.CheckFailed,
			Details:     map[string]any{"file": cfg.ItemsPath(), "error": errors.GetType(err)},
			Suggestions: []string{"Check items.file in the configuration", "Each entry needs a value"},
		}
	}
	details := map[string]any{"source": source.Name, "count": len(source.Items)}
	if cfg.Items.Watch && source.Path != "" {
		details["watch"] = true
	}
	if len(source.Items) == 0 {
		return output.Check{
			Component:   "Suggestions",
			Status:      output.CheckWarning,
			Details:     details,
			Suggestions: []string{"The menu will always be empty"},
		}
	}
	return output.Check{Component: "Suggestions", Status: output.CheckReady, Details: details}
}

func checkTheme(cfg *config.Config) output.Check {
	if _, err := tui.NewTheme(cfg.Theme); err != nil {
		return output.Check{
			Component:   "Theme",
			Status:      output.CheckFailed,
			Details:     map[string]any{"error": err.Error()},
			Suggestions: []string{"Use #rrggbb colours in the theme section"},
		}
	}
	return output.Check{Component: "Theme", Status: output.CheckReady, Details: map[string]any{"highlight": cfg.Theme.Highlight}}
}

func checkTerminal(env environment) output.Check {
	term := env.getenv("TERM")
	details := map[string]any{"TERM": term}
	if ct := env.getenv("COLORTERM"); ct != "" {
		details["COLORTERM"] = ct
	}

	switch {
	case term == "":
		return output.Check{
			Component:   "Terminal",
			Status:      output.CheckFailed,
			Details:     details,
			Suggestions: []string{"Set TERM, for example TERM=xterm-256color"},
		}
	case !knownTerminal(term):
		return output.Check{
			Component:   "Terminal",
			Status:      output.CheckWarning,
			Details:     details,
			Suggestions: []string{fmt.Sprintf("No built-in description for %q; the dynamic terminfo lookup will be tried", term)},
		}
	case !env.stdinTTY || !env.stdoutTTY:
		return output.Check{
			Component:   "Terminal",
			Status:      output.CheckWarning,
			Details:     details,
			Suggestions: []string{"stdin or stdout is not a terminal; 'autocomplete run' needs both", "Use 'autocomplete filter' in pipes"},
		}
	}
	return output.Check{Component: "Terminal", Status: output.CheckReady, Details: details}
}

func knownTerminal(term string) bool {
	_, err := terminfo.LookupTerminfo(term)
	return err == nil
}

func checkLogFile(cfg *config.Config) output.Check {
	details := map[string]any{"file": cfg.Log.File, "level": cfg.Log.Level}
	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return output.Check{
			Component:   "Log file",
			Status:      output.CheckFailed,
			Details:     details,
			Suggestions: []string{"Check that the log directory exists and is writable"},
		}
	}
	f.Close()
	return output.Check{Component: "Log file", Status: output.CheckReady, Details: details}
}
