package cli

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/doeshing/calchub/internal/app"
	"github.com/doeshing/calchub/internal/infrastructure/api"
)

func newServeCommand(container *app.Container) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator catalog and history over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = container.Config.API.Addr
			}
			server := api.NewServer(container)
			container.Logger.Info("http server listening", map[string]interface{}{"addr": addr})
			fmt.Fprintf(cmd.OutOrStdout(), "Listening on %s\n", addr)
			return http.ListenAndServe(addr, server.Handler())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config)")
	return cmd
}
