package cli

import (
	"github.com/spf13/cobra"

	"github.com/cipherchat/cipherchat/internal/api"
	"github.com/cipherchat/cipherchat/pkg/chat"
)

// serveCommand creates the serve command that runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the cipherchat HTTP API",
		Long: `Run the HTTP API that backs the browser demo: chats, messages,
profiles, and a one-shot transform endpoint. Storage follows the
[storage] section of the config file.

The server shuts down gracefully on SIGINT/SIGTERM.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if listen == "" {
				listen = c.Config.Listen
			}

			repo, err := c.newRepository(ctx)
			if err != nil {
				return err
			}
			defer repo.Close()

			srv := api.NewServer(chat.NewService(repo), c.Logger)
			c.Logger.Info("listening", "addr", listen, "backend", c.Config.Storage.Backend)
			return srv.ListenAndServe(ctx, listen)
		},
	}

	cmd.Flags().StringVarP(&listen, "listen", "l", "", "listen address (default from config)")
	return cmd
}
