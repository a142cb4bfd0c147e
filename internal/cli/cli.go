// Package cli implements the roadforge command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jkreuzer/roadforge/pkg/buildinfo"
	"github.com/jkreuzer/roadforge/pkg/cache"
	"github.com/jkreuzer/roadforge/pkg/config"
	"github.com/jkreuzer/roadforge/pkg/extract"
	"github.com/jkreuzer/roadforge/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "roadforge"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// ConfigPath overrides the default config file location (--config).
	ConfigPath string

	cfg *config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "roadforge",
		Short:        "Roadforge turns road network descriptions into SUMO networks",
		Long:         `Roadforge converts natural-language descriptions of intersections and road networks into SUMO-compatible topologies. Simple layouts are synthesized in-process and compiled with netconvert; everything else is delegated to netgenerate.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.ConfigPath, "config", "", "config file (default ~/.config/roadforge/config.toml)")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		return nil
	}

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.synthCommand())
	root.AddCommand(c.interactiveCommand())
	root.AddCommand(c.visualizeCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// Config loads the configuration once and memoizes it.
func (c *CLI) Config() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	path := c.ConfigPath
	if path == "" {
		var err error
		path, err = config.Path()
		if err != nil {
			return nil, err
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	c.cfg = cfg
	return cfg, nil
}

// newRunner creates a pipeline runner wired to the configured extraction
// service and cache backend.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	cfg, err := c.Config()
	if err != nil {
		return nil, err
	}

	svc, err := extract.NewClient(extract.Options{
		APIURL: cfg.LLM.APIURL,
		APIKey: cfg.LLM.APIKey,
		Model:  cfg.LLM.Model,
	})
	if err != nil {
		return nil, err
	}

	store, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}

	r := pipeline.NewRunner(svc, store, nil, c.Logger)
	r.Provider = cfg.LLM.Provider
	r.Model = cfg.LLM.Model
	return r, nil
}

// newLocalRunner creates a runner without an extraction service, for commands
// that supply topology parameters directly and never call the model API.
func (c *CLI) newLocalRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	store, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(nil, store, nil, c.Logger), nil
}

// newCache builds the configured cache backend. Failures to open the file
// cache degrade to no caching rather than failing the run.
func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	cfg, err := c.Config()
	if err != nil {
		return nil, err
	}

	switch cfg.Cache.Backend {
	case config.BackendNone:
		return cache.NewNullCache(), nil
	case config.BackendRedis:
		return cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     cfg.Cache.RedisAddr,
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
		})
	default:
		dir := cfg.Cache.Dir
		if dir == "" {
			dir, err = cacheDir()
			if err != nil {
				return cache.NewNullCache(), nil
			}
		}
		fc, err := cache.NewFileCache(dir)
		if err != nil {
			return cache.NewNullCache(), nil
		}
		return fc, nil
	}
}

// cacheDir returns the cache directory using XDG standard (~/.cache/roadforge/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
