package cmd

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/nmorales/cuentas/internal/app"
	"github.com/nmorales/cuentas/internal/money"
	"github.com/nmorales/cuentas/internal/validation"
)

type DepositCommandRunner struct {
	app *app.App
}

func NewDepositCmd(application *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deposit <account-id> <amount>",
		Short: "Deposit an amount into an account",
		Long: `Deposit a positive amount into an account. The balance change and
its log entry commit atomically.

Example: cuentas deposit 3 150.00`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &DepositCommandRunner{app: application}
			return runner.Run(args[0], args[1])
		},
	}

	return cmd
}

func (r *DepositCommandRunner) Run(idArg, amountArg string) error {
	accountID, err := strconv.ParseInt(idArg, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid account id '%s'", idArg)
	}

	if err := validation.ValidateAmount(amountArg); err != nil {
		return err
	}
	amount, err := money.Parse(amountArg)
	if err != nil {
		return err
	}

	balance, err := r.app.Engine.Deposit(accountID, amount)
	if err != nil {
		return err
	}

	pterm.Success.Printf("Deposited %s into account %d. New balance: %s\n", amount, accountID, balance)
	return nil
}
