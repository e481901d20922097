package config

import "time"

// Config is the decoded site configuration. Keys match config.yaml and the
// LEARNTREE_* environment variables.
type Config struct {
	SiteTitle     string        `mapstructure:"siteTitle"`
	OutputDir     string        `mapstructure:"outputDir"`
	BaseURL       string        `mapstructure:"baseURL"`
	Lang          string        `mapstructure:"lang"`
	Content       string        `mapstructure:"content"`
	LayoutsDir    string        `mapstructure:"layoutsDir"`
	StaticDir     string        `mapstructure:"staticDir"`
	HeroBookID    string        `mapstructure:"heroBookId"`
	ViewportWidth int           `mapstructure:"viewportWidth"`
	LogLevel      string        `mapstructure:"logLevel"`
	Watch         []string      `mapstructure:"watch"`
	SessionTTL    time.Duration `mapstructure:"sessionTTL"`
}

// Defaults mirrors the values registered with viper so packages can be used
// without going through the CLI (tests, embedding).
func Defaults() Config {
	return Config{
		SiteTitle:     "LearnTree",
		OutputDir:     "public",
		Lang:          "en",
		Content:       "content/content.json",
		LayoutsDir:    "layouts",
		StaticDir:     "static",
		HeroBookID:    "bst12-otq",
		ViewportWidth: 1280,
		LogLevel:      "info",
		Watch:         []string{"**/*.json", "**/*.yaml", "**/*.yml", "**/*.md", "**/*.html", "**/*.css", "**/*.js"},
		SessionTTL:    30 * time.Minute,
	}
}
