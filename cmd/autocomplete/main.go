// Autocomplete - an interactive terminal autocomplete field with a filtered suggestion menu
package main

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/johnconnor-sec/autocomplete-go/internal/config"
	"github.com/johnconnor-sec/autocomplete-go/internal/errors"
	"github.com/johnconnor-sec/autocomplete-go/internal/output"
	"github.com/johnconnor-sec/autocomplete-go/internal/types"
)

// Build information - set by linker flags
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Flags shared by every command
var (
	configPath string
	accessible string
	quiet      bool
)

var rootCmd = &cobra.Command{
	Use:   "autocomplete",
	Short: "Terminal autocomplete field with a filtered suggestion menu",
	Long: `Autocomplete shows a text field with a suggestion menu that filters as you type.

Commands:
  run      - Open the interactive field
  filter   - Print the suggestions that match a value
  config   - Create, validate and inspect configuration
  doctor   - Check configuration, suggestions and terminal
  version  - Show version information`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if _, err := output.ParseAccessibilityMode(accessible); err != nil {
			return errors.Wrap(err, errors.ValidationFailed, "Invalid --accessible value")
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printVersion(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default $AUTOCOMPLETE_CONFIG or ~/.config/autocomplete/config.yml)")
	rootCmd.PersistentFlags().StringVar(&accessible, "accessible", os.Getenv("AUTOCOMPLETE_ACCESSIBILITY"), "output mode: normal, high-contrast, screen-reader or minimal")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only print errors and results")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(filterCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		handleError(err)
		os.Exit(1)
	}
}

// newFormatter returns a formatter honouring --accessible and --quiet
func newFormatter(w io.Writer) *output.Formatter {
	f := output.NewFormatter(w)
	if mode, err := output.ParseAccessibilityMode(accessible); err == nil {
		f.SetAccessibilityMode(mode)
	}
	if quiet {
		f.SetLevel(output.LevelQuiet)
	}
	return f
}

func printVersion(w io.Writer) {
	formatter := newFormatter(w)

	formatter.Header(fmt.Sprintf("Autocomplete %s", version))

	table := formatter.Table()
	table.Headers("Component", "Version")
	table.Row("Autocomplete", version)
	table.Row("Git commit", commit)
	table.Row("Build date", date)
	table.Row("Go version", runtime.Version())
	table.Row("Platform", fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH))
	table.Print()
}

// loadConfig reads --config, or the default location. A missing file at
// the default location means the defaults apply.
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.Load(configPath)
	}
	path, err := config.FindConfigPath()
	if err != nil {
		return nil, err
	}
	return config.LoadOrDefault(path)
}

// itemSource is where the suggestions came from.
type itemSource struct {
	Items []types.Suggestion
	Path  string // empty for inline and built-in items
	Name  string
}

// loadItems picks the suggestions: an explicit file, the configured file,
// the inline list, then the built-in US states.
func loadItems(cfg *config.Config, file string) (itemSource, error) {
	if file == "" {
		file = cfg.ItemsPath()
	}
	if file != "" {
		items, err := config.LoadItems(file)
		if err != nil {
			return itemSource{}, err
		}
		return itemSource{Items: items, Path: file, Name: file}, nil
	}
	if len(cfg.Items.Inline) > 0 {
		return itemSource{Items: cfg.Items.Inline, Name: "inline"}, nil
	}
	return itemSource{Items: usStates, Name: "built-in US states"}, nil
}

func handleError(err error) {
	formatter := newFormatter(os.Stderr)

	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		formatter.Error("%s", appErr.Error())
	} else {
		formatter.Error("Unexpected error: %v", err)
	}
}
