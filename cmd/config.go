package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ajxudir/qcfilter/pkg/config"
	"github.com/ajxudir/qcfilter/pkg/constants"
	"github.com/ajxudir/qcfilter/pkg/errors"
	"github.com/ajxudir/qcfilter/pkg/verbose"
	"github.com/ajxudir/qcfilter/pkg/warnings"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	configShowDefaultsFlag  bool
	configShowEffectiveFlag bool
	configInitFlag          bool
	configValidateFlag      bool
	configPathFlag          string
	configDirFlag           string
)

var (
	loadConfigFunc = config.LoadConfig
	writeFileFunc  = os.WriteFile
	readFileFunc   = os.ReadFile
)

// loadAndValidateConfig loads the configuration after a strict check for
// unknown fields, so a typo in a selector name is reported instead of
// silently falling back to the default.
//
// Parameters:
//   - configPath: Path to a config file, or empty to look in workDir
//   - workDir: Directory searched for .qcfilter.yml, normally the page's directory
//
// Returns:
//   - *config.Config: Loaded and validated configuration
//   - error: An ExitError with ExitConfigError on any config problem
func loadAndValidateConfig(configPath, workDir string) (*config.Config, error) {
	path := configPath
	if path == "" {
		path = filepath.Join(workDir, config.LocalConfigName)
	}

	data, err := readFileFunc(path)
	switch {
	case err == nil:
		result := config.ValidateConfigFile(data)
		if result.HasErrors() {
			var errBuilder strings.Builder
			errBuilder.WriteString(fmt.Sprintf("invalid configuration in %s:\n", path))
			for _, e := range result.Errors {
				errBuilder.WriteString(fmt.Sprintf("  - %s\n", e.Error()))
			}
			verbose.Infof("Exit code %d (config error): validation failed for %s", errors.ExitConfigError, path)
			return nil, errors.NewExitError(errors.ExitConfigError, fmt.Errorf("%s", strings.TrimRight(errBuilder.String(), "\n")))
		}
		for _, w := range result.Warnings {
			warnings.Warnf("%s: %s\n", path, w)
		}
	case configPath != "":
		return nil, errors.NewExitError(errors.ExitConfigError, fmt.Errorf("failed to read config file '%s': %w", configPath, err))
	}

	cfg, err := loadConfigFunc(configPath, workDir)
	if err != nil {
		return nil, errors.NewExitError(errors.ExitConfigError, fmt.Errorf("failed to load config: %w", err))
	}
	return cfg, nil
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show, validate or create configuration",
	Long:  `Show the built-in or effective configuration, validate a config file, or create a .qcfilter.yml template.`,
	RunE:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&configShowDefaultsFlag, "show-defaults", false, "Show default configuration")
	configCmd.Flags().BoolVar(&configShowEffectiveFlag, "show-effective", false, "Show the configuration used for pages in --directory")
	configCmd.Flags().BoolVar(&configInitFlag, "init", false, "Create .qcfilter.yml template in --directory")
	configCmd.Flags().BoolVar(&configValidateFlag, "validate", false, "Validate configuration file (rejects unknown fields)")
	configCmd.Flags().StringVarP(&configPathFlag, "config", "c", "", "Config file path to validate")
	configCmd.Flags().StringVarP(&configDirFlag, "directory", "d", ".", "Directory holding the listing pages")
}

// runConfig executes the config command with the specified flags.
//
// Behavior depends on flags:
//   - --init: Creates a .qcfilter.yml template file
//   - --validate: Validates the configuration file for schema errors
//   - --show-defaults: Displays the default configuration
//   - --show-effective: Displays the configuration a page in --directory gets
//
// Returns:
//   - error: Returns error on validation or file operation failure
func runConfig(cmd *cobra.Command, args []string) error {
	if configInitFlag {
		return createConfigTemplate()
	}

	if configValidateFlag {
		return validateConfigFile()
	}

	if configShowDefaultsFlag {
		fmt.Println("Default configuration:")
		fmt.Println()
		fmt.Println(config.GetDefaultConfig())
		return nil
	}

	if configShowEffectiveFlag {
		cfg, err := loadAndValidateConfig(configPathFlag, configDirFlag)
		if err != nil {
			return err
		}
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to render config: %w", err)
		}
		fmt.Println("Effective configuration:")
		fmt.Println()
		fmt.Printf("# working directory: %s\n", cfg.WorkingDir)
		fmt.Print(string(data))
		return nil
	}

	return cmd.Help()
}

// validateConfigFile validates --config, or .qcfilter.yml in --directory.
//
// Returns:
//   - error: Returns ExitError with ExitConfigError code on validation failure
func validateConfigFile() error {
	configPath := configPathFlag
	if configPath == "" {
		configPath = filepath.Join(configDirFlag, config.LocalConfigName)
	}

	data, err := readFileFunc(configPath)
	if err != nil {
		return errors.NewExitError(errors.ExitConfigError, fmt.Errorf("failed to read config file '%s': %w", configPath, err))
	}

	result := config.ValidateConfigFile(data)

	if result.HasErrors() {
		fmt.Printf("%s: %s\n\n", constants.ValidationInvalid, configPath)
		for _, e := range result.Errors {
			fmt.Printf("  ERROR: %s\n", e.Error())
		}
		if len(result.Warnings) > 0 {
			fmt.Println()
			for _, w := range result.Warnings {
				fmt.Printf("  WARNING: %s\n", w)
			}
		}
		fmt.Println()
		fmt.Printf("%s Run 'qcfilter config --show-defaults' for a valid example\n", constants.IconLightbulb)
		verbose.Infof("Exit code %d (config error): configuration validation failed for %s", errors.ExitConfigError, configPath)
		return errors.NewExitError(errors.ExitConfigError, fmt.Errorf("configuration validation failed"))
	}

	if len(result.Warnings) > 0 {
		fmt.Printf("%s Configuration valid with warnings: %s\n\n", constants.IconWarn, configPath)
		for _, w := range result.Warnings {
			fmt.Printf("  WARNING: %s\n", w)
		}
		fmt.Println()
	} else {
		fmt.Printf("%s: %s\n", constants.ValidationValid, configPath)
	}

	return nil
}

// createConfigTemplate writes the built-in configuration to
// .qcfilter.yml in --directory. Fails if the file already exists.
func createConfigTemplate() error {
	configPath := filepath.Join(configDirFlag, config.LocalConfigName)
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("config file already exists: %s", configPath)
	}

	if err := writeFileFunc(configPath, []byte(config.GetDefaultConfig()), 0o644); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	fmt.Printf("%s Created configuration template: %s\n", constants.IconCheckmarkBox, configPath)
	return nil
}
