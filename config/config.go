// Package config resolves commentrender settings from defaults, an optional
// config file and COMMENTRENDER_* environment variables.
package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/heathj/commentrender/render"
)

type ConfigOption struct {
	Key     string
	Default any
	Comment string
}

// GetConfigOptions returns every configuration key with its default and meaning.
func GetConfigOptions() []ConfigOption {
	return []ConfigOption{
		{Key: "marker", Default: render.DefaultMarker, Comment: "Class name identifying comment elements"},
		{Key: "sanitize", Default: render.PolicyNone, Comment: "Markup policy applied to comment text before parsing: none, ugc or strict"},
		{Key: "keep_scripts", Default: false, Comment: "Keep <script> elements found in comment markup"},
		{Key: "scripting", Default: false, Comment: "Parse with the scripting flag set (affects <noscript>)"},
		{Key: "log_level", Default: "info", Comment: "Log level: trace, debug, info, warn, error"},
		{Key: "log_format", Default: "text", Comment: "Log format: text or json"},
		{Key: "http_addr", Default: ":8080", Comment: "Listen address for the serve command"},
		{Key: "pages_dir", Default: ".", Comment: "Directory of HTML pages served by the serve command"},
	}
}

func applyDefaults(v *viper.Viper) {
	for _, o := range GetConfigOptions() {
		v.SetDefault(o.Key, o.Default)
	}
}

// Load resolves configuration with precedence: defaults < file < env.
// A missing config file is not an error; an unreadable one is.
func Load(ctx context.Context, v *viper.Viper) error {
	explicit := v.ConfigFileUsed() != ""
	if !explicit {
		v.SetConfigName("commentrender")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "commentrender"))
		}
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "commentrender"))
		}
		v.AddConfigPath(".")
	}

	applyDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return errors.Wrap(err, "read config")
		}
	}

	v.SetEnvPrefix("commentrender")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return nil
}

// Config is the validated view of the settings.
type Config struct {
	Marker      string
	Sanitize    string
	KeepScripts bool
	Scripting   bool
	LogLevel    logrus.Level
	LogFormat   string
	HTTPAddr    string
	PagesDir    string
}

func FromViper(v *viper.Viper) (Config, error) {
	c := Config{
		Marker:      strings.TrimSpace(v.GetString("marker")),
		Sanitize:    strings.ToLower(strings.TrimSpace(v.GetString("sanitize"))),
		KeepScripts: v.GetBool("keep_scripts"),
		Scripting:   v.GetBool("scripting"),
		LogFormat:   strings.ToLower(strings.TrimSpace(v.GetString("log_format"))),
		HTTPAddr:    v.GetString("http_addr"),
		PagesDir:    v.GetString("pages_dir"),
	}
	if c.Marker == "" {
		c.Marker = render.DefaultMarker
	}
	if len(strings.Fields(c.Marker)) != 1 {
		return Config{}, errors.Errorf("marker must be a single class name, got %q", c.Marker)
	}
	if _, err := render.PolicyByName(c.Sanitize); err != nil {
		return Config{}, err
	}

	lvl, err := logrus.ParseLevel(v.GetString("log_level"))
	if err != nil {
		return Config{}, errors.Wrap(err, "log_level")
	}
	c.LogLevel = lvl

	switch c.LogFormat {
	case "", "text":
		c.LogFormat = "text"
	case "json":
	default:
		return Config{}, errors.Errorf("unknown log_format %q", c.LogFormat)
	}
	return c, nil
}

// Renderer builds the comment renderer the settings describe.
func (c Config) Renderer(log logrus.FieldLogger) (*render.Renderer, error) {
	s, err := render.PolicyByName(c.Sanitize)
	if err != nil {
		return nil, err
	}
	opts := []render.Option{
		render.WithLogger(log),
		render.WithParser(&render.HTMLFragmentParser{
			KeepScripts: c.KeepScripts,
			Scripting:   c.Scripting,
		}),
	}
	if s != nil {
		opts = append(opts, render.WithSanitizer(s))
	}
	return render.New(opts...), nil
}

// Logger configures a logrus logger from the settings.
func (c Config) Logger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(c.LogLevel)
	if c.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return log
}
