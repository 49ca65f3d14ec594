package internal

import (
	"fmt"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config represents the application configuration.
type Config struct {
	App    ApplicationConfig `yaml:"app"`
	Site   SiteConfig        `yaml:"site"`
	Render RenderConfig      `yaml:"render"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	if err := c.Site.Validate(); err != nil {
		return err
	}
	return nil
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
	HTTP     HTTPConfig `yaml:"http"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	return c.HTTP.Validate()
}

// HTTPConfig holds the HTTP server configuration used by the serve
// command.
type HTTPConfig struct {
	Port int `yaml:"port"`
}

// Address returns the HTTP server address.
func (c *HTTPConfig) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate validates the HTTP configuration.
func (c *HTTPConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
	)
}

// SiteConfig holds the site identity and directory conventions.
type SiteConfig struct {
	Title      string `yaml:"title"`
	PostsDir   string `yaml:"posts_dir"`
	OutputDir  string `yaml:"output_dir"`
	LayoutsDir string `yaml:"layouts_dir"`
}

// Validate validates the site configuration. LayoutsDir may be empty;
// the embedded default layouts are used then.
func (c *SiteConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Title, validation.Required),
		validation.Field(&c.PostsDir, validation.Required),
		validation.Field(&c.OutputDir, validation.Required),
	)
}

// RenderConfig holds the Markdown rendering posture.
//
// Trusted enables raw HTML passthrough, arbitrary image sources and
// link protocols, and disables tag filtering. Post content is authored
// by the site owner, so this defaults to true; setting it to false
// restores the guards a public-input renderer would want.
type RenderConfig struct {
	Trusted bool `yaml:"trusted"`
}

// NewDefaultConfig returns a new Config with the conventional values.
// A config file is never required: the defaults reproduce the fixed
// posts/ and public/ conventions.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
			HTTP: HTTPConfig{
				Port: 8080,
			},
		},
		Site: SiteConfig{
			Title:     "Casper's Blog",
			PostsDir:  "posts",
			OutputDir: "public",
		},
		Render: RenderConfig{
			Trusted: true,
		},
	}
}
