// Package site parses site command flags and runs the static build.
package site

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	entrypoint "github.com/najrandevs/najran.dev/internal/platform/cmd"
	"github.com/najrandevs/najran.dev/internal/platform/i18n"
	"github.com/najrandevs/najran.dev/internal/platform/logging"
	"github.com/najrandevs/najran.dev/internal/site/build"
	"github.com/najrandevs/najran.dev/internal/site/preview"
	"github.com/spf13/afero"
)

// Config holds site command configuration.
type Config struct {
	Root      string `env:"SITE_ROOT" envDefault:"."`
	OutDir    string `env:"SITE_OUT_DIR" envDefault:"out"`
	Locales   string `env:"SITE_LOCALES" envDefault:"en,ar"`
	Strict    bool   `env:"SITE_STRICT"`
	Clean     bool
	Serve     bool
	HTTPAddr  string `env:"SITE_HTTP_ADDR" envDefault:"localhost:8080"`
	LogLevel  string `env:"SITE_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"SITE_LOG_FORMAT" envDefault:"text"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Root, "root", cfg.Root, "Project directory holding translations/")
	fs.StringVar(&cfg.OutDir, "out", cfg.OutDir, "Output directory for the rendered site")
	fs.StringVar(&cfg.Locales, "locales", cfg.Locales, "Comma-separated locales to build")
	fs.BoolVar(&cfg.Strict, "strict", cfg.Strict, "Fail when a content bundle lacks template fields")
	fs.BoolVar(&cfg.Clean, "clean", cfg.Clean, "Remove the output directory before building")
	fs.BoolVar(&cfg.Serve, "serve", cfg.Serve, "Serve the output directory after building")
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "Preview HTTP listen address")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: text or json")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if _, err := cfg.ParsedLocales(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParsedLocales validates the comma-separated locale list.
func (c Config) ParsedLocales() ([]i18n.Locale, error) {
	var values []string
	for _, value := range strings.Split(c.Locales, ",") {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("at least one locale is required")
	}
	locales, ok := i18n.ParseList(values)
	if !ok {
		return nil, fmt.Errorf("unsupported locale in %q", c.Locales)
	}
	return locales, nil
}

// Run builds the site and optionally serves it until ctx is cancelled.
func Run(ctx context.Context, cfg Config) error {
	return run(ctx, cfg, afero.NewOsFs(), os.Stderr)
}

func run(ctx context.Context, cfg Config, output afero.Fs, logOut io.Writer) error {
	logger := logging.New(logOut, logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
	locales, err := cfg.ParsedLocales()
	if err != nil {
		return err
	}
	service := entrypoint.ServiceSite
	if cfg.Serve {
		service = entrypoint.ServicePreview
	}
	options := entrypoint.RunOptions{Logger: logger}
	return entrypoint.RunWithTelemetryAndOptions(ctx, service, options, func(ctx context.Context) error {
		builder, err := build.New(build.Config{
			Content:     os.DirFS(cfg.Root),
			ContentRoot: cfg.Root,
			Output:      output,
			OutDir:      cfg.OutDir,
			Locales:     locales,
			Strict:      cfg.Strict,
			Clean:       cfg.Clean,
			Logger:      logger,
		})
		if err != nil {
			return fmt.Errorf("init site builder: %w", err)
		}
		if _, err := builder.Build(ctx); err != nil {
			return fmt.Errorf("build site: %w", err)
		}
		if !cfg.Serve {
			return nil
		}
		return serve(ctx, cfg, output, logger)
	})
}

func serve(ctx context.Context, cfg Config, output afero.Fs, logger *slog.Logger) error {
	server, err := preview.NewServer(preview.Config{
		HTTPAddr: cfg.HTTPAddr,
		Output:   output,
		Dir:      cfg.OutDir,
		Logger:   logger,
	})
	if err != nil {
		return fmt.Errorf("init preview server: %w", err)
	}
	defer server.Close()

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve preview: %w", err)
	}
	return nil
}
