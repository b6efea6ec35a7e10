package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"fjacquet/expense-tracker/internal/validation"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. EXPENSE_STORE_DIRECTORY.
const EnvPrefix = "EXPENSE"

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Store struct {
		Directory      string `mapstructure:"directory" yaml:"directory"`
		ExpensesFile   string `mapstructure:"expenses_file" yaml:"expenses_file"`
		CategoriesFile string `mapstructure:"categories_file" yaml:"categories_file"`
	} `mapstructure:"store" yaml:"store"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Report struct {
		Directory    string `mapstructure:"directory" yaml:"directory"`
		Format       string `mapstructure:"format" yaml:"format"`
		CategoryFile string `mapstructure:"category_file" yaml:"category_file"`
		MonthFile    string `mapstructure:"month_file" yaml:"month_file"`
	} `mapstructure:"report" yaml:"report"`

	Terminal struct {
		Style string `mapstructure:"style" yaml:"style"`
	} `mapstructure:"terminal" yaml:"terminal"`

	Shell struct {
		ClearScreen bool `mapstructure:"clear_screen" yaml:"clear_screen"`
	} `mapstructure:"shell" yaml:"shell"`
}

// InitializeConfig builds the configuration. configFile may be empty, in which
// case config.yaml is searched in $HOME/.expense-tracker, .expense-tracker and
// the working directory; a missing file is not an error.
func InitializeConfig(configFile string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.expense-tracker")
		v.AddConfigPath(".expense-tracker")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")

	v.SetDefault("store.directory", ".")
	v.SetDefault("store.expenses_file", "record.csv")
	v.SetDefault("store.categories_file", "categories.csv")

	v.SetDefault("csv.delimiter", ",")

	v.SetDefault("report.directory", ".")
	v.SetDefault("report.format", "table")
	v.SetDefault("report.category_file", "category_summary.txt")
	v.SetDefault("report.month_file", "monthly_summary.txt")

	v.SetDefault("terminal.style", "plain")

	v.SetDefault("shell.clear_screen", false)
}

func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if err := validation.IsOneOf("log format", config.Log.Format, "text", "json"); err != nil {
		return err
	}

	if err := validation.IsSingleRune("CSV delimiter", config.CSV.Delimiter, '"', '\n', '\r'); err != nil {
		return err
	}

	if config.Store.ExpensesFile == "" || config.Store.CategoriesFile == "" {
		return errors.New("store.expenses_file and store.categories_file must be set")
	}
	if config.Store.ExpensesFile == config.Store.CategoriesFile {
		return errors.New("store.expenses_file and store.categories_file must differ")
	}

	if err := validation.IsOneOf("report format", config.Report.Format, "table", "json", "yaml"); err != nil {
		return err
	}

	return validation.IsOneOf("terminal style", config.Terminal.Style, "plain", "pretty")
}

// Validate checks the configuration, e.g. after command line overrides.
func (c *Config) Validate() error {
	if err := validateConfig(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Delimiter returns the configured CSV delimiter as a rune.
func (c *Config) Delimiter() rune {
	return []rune(c.CSV.Delimiter)[0]
}

// ExpensesPath is the full path of the expense file.
func (c *Config) ExpensesPath() string {
	return resolve(c.Store.Directory, c.Store.ExpensesFile)
}

// CategoriesPath is the full path of the category file.
func (c *Config) CategoriesPath() string {
	return resolve(c.Store.Directory, c.Store.CategoriesFile)
}

func resolve(dir, file string) string {
	if filepath.IsAbs(file) || dir == "" {
		return file
	}
	return filepath.Join(dir, file)
}
