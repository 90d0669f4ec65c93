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

type WithdrawCommandRunner struct {
	app *app.App
}

func NewWithdrawCmd(application *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw <account-id> <amount>",
		Short: "Withdraw an amount from an account",
		Long: `Withdraw a positive amount from an account. Fails when the account
does not hold enough funds; balances never go negative.

Example: cuentas withdraw 3 70.00`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &WithdrawCommandRunner{app: application}
			return runner.Run(args[0], args[1])
		},
	}

	return cmd
}

func (r *WithdrawCommandRunner) Run(idArg, amountArg string) error {
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

	balance, err := r.app.Engine.Withdraw(accountID, amount)
	if err != nil {
		return err
	}

	pterm.Success.Printf("Withdrew %s from account %d. New balance: %s\n", amount, accountID, balance)
	return nil
}
