// Package cli implements the cipherchat command-line interface.
//
// This package provides commands for the classroom ciphers (Caesar, XOR),
// the text codecs (base64, hex, binary), encoding detection, fingerprints
// and password strength, image steganography, toy QR rendering, the HTTP
// API server, and the interactive chat TUI. The CLI is built using cobra
// and supports verbose logging via the charmbracelet/log library.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/cipherchat/cipherchat/pkg/buildinfo"
	"github.com/cipherchat/cipherchat/pkg/chat"
	"github.com/cipherchat/cipherchat/pkg/chat/file"
	"github.com/cipherchat/cipherchat/pkg/chat/memory"
	mongorepo "github.com/cipherchat/cipherchat/pkg/chat/mongo"
	redisrepo "github.com/cipherchat/cipherchat/pkg/chat/redis"
	"github.com/cipherchat/cipherchat/pkg/config"
	"github.com/cipherchat/cipherchat/pkg/errors"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "cipherchat"

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
	Config config.Config

	configPath string
}

// New creates a new CLI instance with a default logger and default config.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "Cipherchat encodes, hides, and exchanges toy-encrypted messages",
		Long:         `Cipherchat is a playground for classic text transforms: Caesar and XOR ciphers, base64/hex/binary codecs, encoding detection, image steganography, and a small encrypted chat with pluggable storage.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				c.SetLogLevel(log.DebugLevel)
			}
			return c.loadConfig()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: XDG config dir)")

	// Register all subcommands
	root.AddCommand(c.caesarCommand())
	root.AddCommand(c.xorCommand())
	root.AddCommand(c.encodeCommand())
	root.AddCommand(c.decodeCommand())
	root.AddCommand(c.detectCommand())
	root.AddCommand(c.fingerprintCommand())
	root.AddCommand(c.strengthCommand())
	root.AddCommand(c.reverseCommand())
	root.AddCommand(c.stegoCommand())
	root.AddCommand(c.qrCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.chatCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig loads the config file, falling back to defaults when absent.
func (c *CLI) loadConfig() error {
	path := c.configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			c.Logger.Debug("config path unavailable, using defaults", "err", err)
			return nil
		}
		path = p
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	c.Config = cfg
	return nil
}

// =============================================================================
// Repository Factory
// =============================================================================

// newRepository opens the chat repository selected by the storage config.
func (c *CLI) newRepository(ctx context.Context) (chat.Repository, error) {
	st := c.Config.Storage
	switch st.Backend {
	case config.BackendMemory, "":
		return memory.NewRepository(), nil
	case config.BackendFile:
		return file.NewRepository(st.Dir)
	case config.BackendRedis:
		return redisrepo.NewRepository(ctx, redisrepo.Config{
			Addr:     st.Redis.Addr,
			Password: st.Redis.Password,
			DB:       st.Redis.DB,
		})
	case config.BackendMongo:
		return mongorepo.NewRepository(ctx, mongorepo.Config{
			URI:      st.Mongo.URI,
			Database: st.Mongo.Database,
		})
	}
	return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown storage backend %q", st.Backend)
}

// =============================================================================
// Input Helpers
// =============================================================================

// textArg returns the command's text input: the joined positional args, or
// stdin when no args are given (so transforms compose in pipes).
func textArg(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}

// username returns the identity for chat commands, preferring the flag over
// the config file.
func (c *CLI) username(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if c.Config.Username != "" {
		return c.Config.Username
	}
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "anonymous"
}
