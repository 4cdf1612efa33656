package internal

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/starford/projlog/internal/models"
	"github.com/starford/projlog/internal/site"
)

// Log formats.
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

var (
	statusRe    = regexp.MustCompile(`^[^./\\][^/\\]*$`)
	extensionRe = regexp.MustCompile(`^\.[A-Za-z0-9]+$`)
)

// Config represents the application configuration.
type Config struct {
	App     ApplicationConfig `yaml:"app"`
	Source  SourceConfig      `yaml:"source"`
	Output  OutputConfig      `yaml:"output"`
	Render  RenderConfig      `yaml:"render"`
	History HistoryConfig     `yaml:"history"`
	Preview PreviewConfig     `yaml:"preview"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return fmt.Errorf("app: %w", err)
	}
	if err := c.Source.Validate(); err != nil {
		return fmt.Errorf("source: %w", err)
	}
	if err := c.Output.Validate(); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	if err := c.Render.Validate(); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := c.History.Validate(); err != nil {
		return fmt.Errorf("history: %w", err)
	}
	if err := c.Preview.Validate(); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	return nil
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel  slog.Level `yaml:"log_level"`
	LogFormat string     `yaml:"log_format"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	if c.LogFormat == "" {
		c.LogFormat = LogFormatJSON
	}
	return validation.ValidateStruct(c,
		validation.Field(&c.LogFormat, validation.In(LogFormatJSON, LogFormatText)),
	)
}

// SourceConfig describes where project files live.
//
// Each status names a directory directly under Root; files with Extension
// inside it belong to that status.
type SourceConfig struct {
	Root      string          `yaml:"root"`
	Statuses  []models.Status `yaml:"statuses"`
	Extension string          `yaml:"extension"`
}

// Validate validates the source configuration.
func (c *SourceConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Root, validation.Required),
		validation.Field(&c.Statuses, validation.Required, validation.Each(validation.Required, validation.Match(statusRe))),
		validation.Field(&c.Extension, validation.Required, validation.Match(extensionRe)),
	)
}

// OutputConfig holds the page template and where the result is written.
type OutputConfig struct {
	Template    string `yaml:"template"`
	Path        string `yaml:"path"`
	Placeholder string `yaml:"placeholder"`
}

// Validate validates the output configuration.
func (c *OutputConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Template, validation.Required),
		validation.Field(&c.Path, validation.Required),
		validation.Field(&c.Placeholder, validation.Required),
	)
}

// RenderConfig controls how fragments are produced.
type RenderConfig struct {
	Timezone    string `yaml:"timezone"`
	TrustMarkup bool   `yaml:"trust_markup"`
	HistoryURL  string `yaml:"history_url"`
}

// Validate validates the render configuration.
func (c *RenderConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Timezone, validation.Required, validation.By(validZone)),
		validation.Field(&c.HistoryURL, is.URL),
	)
}

// Location resolves the configured timezone.
func (c *RenderConfig) Location() (*time.Location, error) {
	return models.LoadZone(c.Timezone)
}

func validZone(value any) error {
	name, _ := value.(string)
	if _, err := models.LoadZone(name); err != nil {
		return errors.New("unknown timezone")
	}
	return nil
}

// HistoryConfig controls version-control enrichment.
type HistoryConfig struct {
	Enabled bool          `yaml:"enabled"`
	Timeout time.Duration `yaml:"timeout"`
}

// Validate validates the history configuration.
func (c *HistoryConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Timeout, validation.Min(time.Duration(0))),
	)
}

// PreviewConfig holds the preview server configuration.
type PreviewConfig struct {
	Port int `yaml:"port"`
}

// Address returns the preview server address.
func (c *PreviewConfig) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate validates the preview configuration.
func (c *PreviewConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
	)
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel:  slog.LevelInfo,
			LogFormat: LogFormatJSON,
		},
		Source: SourceConfig{
			Root:      ".",
			Statuses:  append([]models.Status(nil), models.DefaultStatuses...),
			Extension: ".toml",
		},
		Output: OutputConfig{
			Template:    "template.html",
			Path:        "out/index.html",
			Placeholder: site.DefaultPlaceholder,
		},
		Render: RenderConfig{
			Timezone: models.DefaultZone,
		},
		History: HistoryConfig{
			Enabled: true,
			Timeout: 10 * time.Second,
		},
		Preview: PreviewConfig{
			Port: 8080,
		},
	}
}
