package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/azulboard/internal/api/response"
)

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the board server is up and can reach its storage",
		RunE: func(cmd *cobra.Command, args []string) error {
			var health response.Health

			// A server that cannot list boards answers 503 with the same body
			if err := client.Get("/api/v1/health", &health); err != nil {
				return fmt.Errorf("board server at %s is unhealthy: %w", cfg.ServerURL, err)
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(health)
			return nil
		},
	}
}
