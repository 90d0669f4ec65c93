package account

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nmorales/cuentas/internal/app"
)

type ShowCommandRunner struct {
	app *app.App
}

func NewShowCmd(application *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <account-number>",
		Short: "Show an account by its account number",
		Long: `Look an account up by its externally visible account number.

Example: cuentas account show 4810275396`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &ShowCommandRunner{app: application}
			return runner.Run(args[0])
		},
	}

	return cmd
}

func (r *ShowCommandRunner) Run(numberArg string) error {
	number, err := strconv.ParseInt(numberArg, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid account number '%s'", numberArg)
	}

	acc, err := r.app.Query.AccountByNumber(number)
	if err != nil {
		return err
	}

	displayAccount(acc)
	return nil
}
