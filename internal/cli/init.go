package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mtamigo/focus/internal/app"
)

// newInitCommand creates the init command.
func newInitCommand(c *app.Container) *cobra.Command {
	var seed bool

	cmd := &cobra.Command{
		Use:     "init",
		Short:   "Initialize the focus data store",
		GroupID: groupSetup,
		Long: `Create the data store under the user data directory. Running init
on an existing store is a no-op.

Examples:
  # Create an empty store
  focus init

  # Create the store and install the built-in weekly calendar
  focus init --seed`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.InitStoreUseCase().Execute(cmd.Context()); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Initialized store at %s\n", c.Paths.StorePath)

			if seed {
				out, err := c.SeedAnchorsUseCase().Execute(cmd.Context())
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d calendar anchors\n", out.Seeded)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&seed, "seed", false, "Install the built-in weekly calendar anchors")
	return cmd
}
