package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/andrasnagy-data/accesstoken/internal/components/passwd"
	"github.com/andrasnagy-data/accesstoken/internal/components/token"
	"github.com/andrasnagy-data/accesstoken/internal/shared/config"
	"github.com/andrasnagy-data/accesstoken/internal/shared/logging"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func options() fx.Option {
	return fx.Options(
		fx.Supply(passwd.DefaultArgon2Params),
		fx.Provide(
			config.NewConfig,
			logging.NewLogger,
			passwd.NewHasher,
			token.NewService,
			token.NewCommand,
		),
		fx.Invoke(logging.Register),
	)
}

func main() {
	var cmd *cobra.Command
	app := fx.New(options(), fx.NopLogger, fx.Populate(&cmd))
	if err := app.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(run(app, cmd))
}

// run executes the command between app start and stop and returns the exit code.
func run(app *fx.App, cmd *cobra.Command) int {
	startCtx, cancel := context.WithTimeout(context.Background(), fx.DefaultTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return 1
	}

	code := 0
	if err := cmd.Execute(); err != nil {
		code = 1
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return code
}
