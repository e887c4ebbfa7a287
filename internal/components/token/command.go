package token

import (
	"fmt"

	"github.com/andrasnagy-data/accesstoken/internal/components/passwd"
	"github.com/andrasnagy-data/accesstoken/internal/shared/config"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

type (
	command struct {
		service servicer
		config  *config.Config
		logger  zerolog.Logger
	}

	params struct {
		fx.In

		Service servicer
		Config  *config.Config
		Logger  zerolog.Logger
	}
)

func NewCommand(p params) *cobra.Command {
	c := &command{
		service: p.Service,
		config:  p.Config,
		logger:  p.Logger,
	}
	return c.root()
}

// root builds the command tree: the root generates a token, verify checks one.
// The hash format is chosen by flags only, never by the environment.
func (c *command) root() *cobra.Command {
	var (
		password  string
		algorithm string
		resolved  passwd.Algorithm
	)

	root := &cobra.Command{
		Use:     "accesstoken",
		Short:   "Generate an access token",
		Long:    "Hash a password into a salted access token and print it as a line for the .env file.",
		Version: c.config.Version,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			resolved, err = passwd.ParseAlgorithm(algorithm)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Arguments are valid past this point
			cmd.SilenceUsage = true

			token, err := c.service.Generate(password, resolved)
			if err != nil {
				c.logger.Error().Err(err).Str("algorithm", resolved.String()).Msg("Failed to generate access token")
				return err
			}
			return c.service.Write(cmd.OutOrStdout(), token)
		},
	}

	root.Flags().StringVarP(&password, "password", "p", "", "The password you want to use for authentication.")
	root.Flags().StringVarP(&algorithm, "algorithm", "a", passwd.DefaultAlgorithm.String(), fmt.Sprintf("Hashing algorithm, one of %v", passwd.Algorithms()))
	_ = root.MarkFlagRequired("password")

	root.AddCommand(c.verify())
	return root
}

func (c *command) verify() *cobra.Command {
	var password, hashed string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check a password against an access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			if !c.service.Verify(password, hashed) {
				fmt.Fprintln(cmd.OutOrStdout(), "mismatch")
				return ErrMismatch
			}
			fmt.Fprintln(cmd.OutOrStdout(), "match")
			return nil
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "The password to check.")
	cmd.Flags().StringVar(&hashed, "hash", "", "The access token value, without the ACCESS_TOKEN= prefix or quotes.")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("hash")
	return cmd
}
