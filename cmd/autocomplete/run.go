package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/johnconnor-sec/autocomplete-go/internal/autocomplete"
	"github.com/johnconnor-sec/autocomplete-go/internal/config"
	"github.com/johnconnor-sec/autocomplete-go/internal/errors"
	"github.com/johnconnor-sec/autocomplete-go/internal/output"
	"github.com/johnconnor-sec/autocomplete-go/internal/search"
	"github.com/johnconnor-sec/autocomplete-go/internal/tui"
)

type runFlags struct {
	items        string
	open         string
	match        string
	sort         string
	delay        time.Duration
	grouped      bool
	watch        bool
	debug        bool
	selectOnBlur bool
	required     bool
	maxLength    int
	title        string
	logFile      string
	logLevel     string
	asJSON       bool
}

var runOpts runFlags

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the interactive autocomplete field",
	Long: `Open a full-screen page with the autocomplete field, a submit button and
a status panel. Type to filter, use the arrows to highlight, Enter to choose.

Examples:
  autocomplete run                          # US states, filtered by prefix
  autocomplete run --match fuzzy --sort score
  autocomplete run --delay 500ms --grouped  # simulate a slow, grouped source
  autocomplete run --open closed            # menu visibility managed by the page (F2 toggles)
  autocomplete run --items cities.yml --watch`,
	Args: cobra.NoArgs,
	RunE: runInteractive,
}

func init() {
	f := runCmd.Flags()
	f.StringVarP(&runOpts.items, "items", "i", "", "suggestions file (.yml, .yaml, .toml or .json)")
	f.StringVar(&runOpts.open, "open", "", "menu visibility: auto, open or closed")
	f.StringVar(&runOpts.match, "match", "", "filter mode: prefix, substring, fuzzy, words or none")
	f.StringVar(&runOpts.sort, "sort", "", "sort order: none, alpha, position, score or distance")
	f.DurationVar(&runOpts.delay, "delay", 0, "answer each query after this long, like a remote source")
	f.BoolVar(&runOpts.grouped, "grouped", false, "group suggestions under headers")
	f.BoolVar(&runOpts.watch, "watch", false, "reload the suggestions file when it changes")
	f.BoolVar(&runOpts.debug, "debug", false, "show the widget state history")
	f.BoolVar(&runOpts.selectOnBlur, "select-on-blur", false, "choose the highlighted suggestion when the field loses focus")
	f.BoolVar(&runOpts.required, "required", false, "refuse to submit an empty field")
	f.IntVar(&runOpts.maxLength, "max-length", 0, "refuse to submit longer values")
	f.StringVar(&runOpts.title, "title", "", "page title")
	f.StringVar(&runOpts.logFile, "log-file", "", "write logs to this rotating file")
	f.StringVar(&runOpts.logLevel, "log-level", "", "log level: trace, debug, info, warn or error")
	f.BoolVar(&runOpts.asJSON, "json", false, "print the result as JSON")
}

// applyRunFlags overrides configuration with the flags that were given.
func applyRunFlags(cmd *cobra.Command, cfg *config.Config, opts runFlags) error {
	flags := cmd.Flags()
	if flags.Changed("open") {
		cfg.Widget.Open = opts.open
	}
	if flags.Changed("match") {
		cfg.Match.Mode = search.Mode(opts.match)
	}
	if flags.Changed("sort") {
		cfg.Sort.Mode = search.Order(opts.sort)
	}
	if flags.Changed("grouped") {
		cfg.Items.Grouped = opts.grouped
	}
	if flags.Changed("watch") {
		cfg.Items.Watch = opts.watch
	}
	if flags.Changed("debug") {
		cfg.Widget.Debug = opts.debug
	}
	if flags.Changed("select-on-blur") {
		cfg.Widget.SelectOnBlur = opts.selectOnBlur
	}
	if flags.Changed("log-file") {
		cfg.Log.File = opts.logFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if opts.delay < 0 {
		return errors.ValidationError("delay", opts.delay.String(), "cannot be negative")
	}
	if opts.maxLength < 0 {
		return errors.ValidationError("max-length", strconv.Itoa(opts.maxLength), "cannot be negative")
	}

	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, errors.ConfigInvalid, "Invalid settings").
			WithDetails(err.Error())
	}
	return nil
}

// inputAttrs turns the validity flags into input attributes.
func inputAttrs(opts runFlags) autocomplete.Attrs {
	attrs := autocomplete.Attrs{}
	if opts.required {
		attrs["required"] = ""
	}
	if opts.maxLength > 0 {
		attrs["maxlength"] = strconv.Itoa(opts.maxLength)
	}
	return attrs
}

func intro(cfg *config.Config, opts runFlags, source itemSource) string {
	text := fmt.Sprintf("%d suggestions from %s, matched by %s and sorted by %s.",
		len(source.Items), source.Name, cfg.Match.Mode, cfg.Sort.Mode)
	switch {
	case opts.delay > 0:
		text += fmt.Sprintf(" Each query is answered after %s.", opts.delay)
	case cfg.Items.Grouped:
		text += " Suggestions are grouped under headers."
	}
	return text
}

// openLogger returns the configured file logger, or a logger that
// discards everything: the screen belongs to the page while it runs.
func openLogger(cfg *config.Config) (*output.Logger, io.Closer, error) {
	if cfg.Log.File == "" {
		return output.NewNopLogger(), io.NopCloser(nil), nil
	}
	level, err := output.ParseLogLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}
	format, err := output.ParseLogFormat(cfg.Log.Format)
	if err != nil {
		return nil, nil, err
	}
	logger, closer, err := output.CreateFileLogger(cfg.Log.File, level, format, cfg.RotateOptions())
	if err != nil {
		return nil, nil, errors.Wrap(err, errors.PermissionDenied, "Cannot open log file").
			WithDetails(fmt.Sprintf("Path: %s", cfg.Log.File))
	}
	return logger, closer, nil
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := applyRunFlags(cmd, cfg, runOpts); err != nil {
		return err
	}

	source, err := loadItems(cfg, runOpts.items)
	if err != nil {
		return err
	}
	watchPath := ""
	if cfg.Items.Watch && source.Path != "" {
		watchPath = source.Path
	}

	if !output.IsTerminal(os.Stdin) || !output.IsTerminal(os.Stdout) {
		return errors.New(errors.TerminalUnavailable, "The interactive field needs a terminal").
			WithSuggestion("Use 'autocomplete filter <value>' in scripts and pipes")
	}

	logger, closer, err := openLogger(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()
	output.SetGlobalLogger(logger)

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.TerminalInitError(err)
	}

	app, err := tui.New(screen, cfg, tui.Options{
		Title:        runOpts.title,
		Intro:        intro(cfg, runOpts, source),
		Items:        source.Items,
		WatchPath:    watchPath,
		Delay:        runOpts.delay,
		Input:        inputAttrs(runOpts),
		AutoFocus:    true,
		ExitOnSubmit: true,
		Logger:       logger,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting", map[string]any{"items": len(source.Items), "source": source.Name})
	if err := app.Run(ctx); err != nil {
		return err
	}

	return printResult(cmd.OutOrStdout(), app.Result(), runOpts.asJSON)
}

func printResult(w io.Writer, res tui.Result, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	formatter := newFormatter(w)
	if !res.Submitted {
		formatter.Info("Closed without submitting")
		if res.Value != "" {
			formatter.Hint("The field held %q", res.Value)
		}
		return nil
	}

	formatter.Success("Submitted %q", res.Value)
	if res.Item != nil {
		table := formatter.Table().Headers("Field", "Value")
		table.Row("Value", res.Item.Value)
		if res.Item.Abbr != "" {
			table.Row("Abbreviation", res.Item.Abbr)
		}
		if res.Item.Group != "" {
			table.Row("Group", res.Item.Group)
		}
		table.Print()
	}
	return nil
}
