package cli

import (
	"github.com/spf13/cobra"
)

func newHealthCmd(d *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check backend liveness",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, err := d.API.HealthCheck(cmd.Context())
			if err != nil {
				return err
			}
			return renderResult(cmd, status)
		},
	}
}
