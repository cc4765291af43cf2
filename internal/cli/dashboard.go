package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ayushs57139/jobportal-go/internal/dashboard"
)

func newDashboardCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Serve the admin and consultancy web dashboard",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.requireAuth(cmd); err != nil {
				return err
			}

			srv, err := dashboard.New(app.client, app.auth)
			if err != nil {
				return err
			}
			if err := srv.WaitForAPI(cmd.Context()); err != nil {
				return fmt.Errorf("backend not reachable: %w", err)
			}
			if addr == "" {
				addr = app.cfg.Dashboard.Addr
			}
			return srv.Run(addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (defaults to the configured dashboard address)")
	return cmd
}
