package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/lovewall/pkg/buildinfo"
	"github.com/matzehuels/lovewall/pkg/cache"
	"github.com/matzehuels/lovewall/pkg/config"
	"github.com/matzehuels/lovewall/pkg/errors"
	"github.com/matzehuels/lovewall/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "lovewall"

	// shareKeyType labels share image cache events.
	shareKeyType = "share"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Config is resolved in the root PersistentPreRunE, before any
	// subcommand runs. ConfigPath is empty when only defaults apply.
	Config     config.Config
	ConfigPath string

	configFlag string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Lovewall arranges your photos on a rotating 3D wall",
		Long: `Lovewall arranges a couple's photos on a rotating 3D wall, counts the days
you have been together, and renders a shareable keepsake image.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configFlag, "config", "", "config file (.toml, .yaml or .yml)")

	// Register all subcommands
	root.AddCommand(c.planCommand())
	root.AddCommand(c.orbitCommand())
	root.AddCommand(c.daysCommand())
	root.AddCommand(c.shareCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup resolves the config and installs logging hooks in verbose mode.
func (c *CLI) setup(cmd *cobra.Command) error {
	dir, err := configDir()
	if err != nil {
		dir = ""
	}
	cfg, path, err := config.Resolve(c.configFlag, dir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	c.Config, c.ConfigPath = cfg, path
	if path != "" {
		c.Logger.Debug("Loaded config", "path", path)
	}

	if c.Logger.GetLevel() <= log.DebugLevel {
		hooks := &logHooks{logger: c.Logger}
		observability.SetWallHooks(hooks)
		observability.SetRenderHooks(hooks)
		observability.SetCacheHooks(hooks)
	}

	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}

// =============================================================================
// Cache Factory
// =============================================================================

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return nil, err
	}
	return cache.Instrument(fc, shareKeyType), nil
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/lovewall/).
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

// configDir returns the config directory using XDG standard (~/.config/lovewall/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// =============================================================================
// Advisories
// =============================================================================

// advise prints err as a warning when it is a non-fatal advisory and
// reports whether it did. Other errors are left to the caller.
func advise(err error) bool {
	if err == nil || !errors.IsAdvisory(err) {
		return false
	}
	printWarning("%s", errors.UserMessage(err))
	return true
}
