package main

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/johnconnor-sec/autocomplete-go/internal/config"
	"github.com/johnconnor-sec/autocomplete-go/internal/errors"
	"github.com/johnconnor-sec/autocomplete-go/internal/types"
)

var (
	initForce    bool
	initDefaults bool
	configFormat string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Create, validate and inspect configuration",
	Long: `Config commands:
  init     - Create configuration interactively
  validate - Validate configuration file
  example  - Show example configuration
  schema   - Generate JSON schema
  path     - Show which configuration file is used`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create configuration interactively",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate configuration file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigValidate,
}

var configExampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Show example configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigExample,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema [output]",
	Short: "Generate JSON schema (use - for stdout)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigSchema,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show which configuration file is used",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

func init() {
	configInitCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing configuration")
	configInitCmd.Flags().BoolVar(&initDefaults, "defaults", false, "write the defaults without asking")
	configInitCmd.Flags().StringVar(&configFormat, "format", "yaml", "file format: yaml or toml")
	configExampleCmd.Flags().StringVar(&configFormat, "format", "yaml", "file format: yaml or toml")

	configCmd.AddCommand(configInitCmd, configValidateCmd, configExampleCmd, configSchemaCmd, configPathCmd)
}

// resolveConfigPath returns --config or the default location.
func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.FindConfigPath()
}

func parseFormat(name string) (config.Format, error) {
	switch strings.ToLower(name) {
	case "yaml", "yml":
		return config.FormatYAML, nil
	case "toml":
		return config.FormatTOML, nil
	}
	return "", errors.ValidationError("format", name, "must be yaml or toml")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	format, err := parseFormat(configFormat)
	if err != nil {
		return err
	}
	path, err := resolveConfigPath()
	if err != nil {
		return err
	}
	if configPath == "" && format == config.FormatTOML {
		path = strings.TrimSuffix(path, filepath.Ext(path)) + ".toml"
	}

	if _, err := os.Stat(path); err == nil && !initForce {
		return errors.New(errors.ValidationFailed, "Configuration already exists").
			WithDetails(fmt.Sprintf("Path: %s", path)).
			WithSuggestion("Pass --force to overwrite it")
	}

	formatter := newFormatter(cmd.OutOrStdout())
	if initDefaults {
		if err := config.Save(config.DefaultConfig(), path); err != nil {
			return err
		}
	} else {
		prompter := config.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
		if _, err := config.GenerateInteractive(prompter, path); err != nil {
			return err
		}
	}

	formatter.Success("Configuration saved to %s", path)
	formatter.Hint("Run 'autocomplete config validate' after editing it")
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	path, err := resolveConfigPath()
	if err != nil {
		return err
	}
	if len(args) > 0 {
		path = args[0]
	}

	formatter := newFormatter(cmd.OutOrStdout())
	formatter.Info("Validating %s", path)

	cfg, err := config.Load(path)
	if err != nil {
		var verrs *types.ValidationErrors
		if stderrors.As(err, &verrs) {
			for _, e := range verrs.Errors {
				formatter.List("%s: %s (got %q)", e.Field, e.Message, e.Value)
			}
		}
		return err
	}

	source, err := loadItems(cfg, "")
	if err != nil {
		return err
	}

	formatter.Success("Configuration is valid")
	formatter.Hint("%d suggestions from %s", len(source.Items), source.Name)
	return nil
}

func runConfigExample(cmd *cobra.Command, args []string) error {
	format, err := parseFormat(configFormat)
	if err != nil {
		return err
	}
	if format == config.FormatYAML {
		fmt.Fprint(cmd.OutOrStdout(), config.ExampleYAML)
		return nil
	}

	data, err := config.Marshal(config.DefaultConfig(), format)
	if err != nil {
		return errors.Wrap(err, errors.InternalError, "Failed to serialize configuration")
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runConfigSchema(cmd *cobra.Command, args []string) error {
	outputPath := "autocomplete-schema.json"
	if len(args) > 0 {
		outputPath = args[0]
	}

	if outputPath == "-" {
		schema, err := config.GenerateJSONSchema()
		if err != nil {
			return errors.Wrap(err, errors.InternalError, "Failed to generate JSON schema")
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(schema))
		return err
	}

	if err := config.SaveJSONSchema(outputPath); err != nil {
		return errors.Wrap(err, errors.PermissionDenied, "Failed to save JSON schema").
			WithDetails(fmt.Sprintf("Path: %s", outputPath))
	}

	newFormatter(cmd.OutOrStdout()).Success("JSON schema saved to: %s", outputPath)
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	path, err := resolveConfigPath()
	if err != nil {
		return err
	}

	formatter := newFormatter(cmd.OutOrStdout())
	fmt.Fprintln(cmd.OutOrStdout(), path)
	if _, err := os.Stat(path); err != nil {
		formatter.Hint("The file does not exist; defaults apply")
	}
	return nil
}
