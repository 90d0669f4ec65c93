package cmd

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/nmorales/cuentas/internal/app"
	"github.com/nmorales/cuentas/internal/errhandler"
	"github.com/nmorales/cuentas/internal/money"
	"github.com/nmorales/cuentas/internal/ui/prompts"
	"github.com/nmorales/cuentas/internal/validation"
)

type transferFlags struct {
	Yes bool
}

type TransferCommandRunner struct {
	app   *app.App
	flags *transferFlags
}

func NewTransferCmd(application *app.App) *cobra.Command {
	flags := &transferFlags{}

	cmd := &cobra.Command{
		Use:   "transfer <origin-id> <target-id> <amount>",
		Short: "Transfer an amount between two accounts",
		Long: `Move an amount from the origin account to the target account. Both
balance changes and the single log entry commit as one unit; there is
no partial success.

Example: cuentas transfer 3 7 40.00`,
		Args:         cobra.ExactArgs(3),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &TransferCommandRunner{app: application, flags: flags}
			return runner.Run(args[0], args[1], args[2])
		},
	}

	cmd.Flags().BoolVarP(&flags.Yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func (r *TransferCommandRunner) Run(originArg, targetArg, amountArg string) error {
	originID, err := strconv.ParseInt(originArg, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid origin account id '%s'", originArg)
	}
	targetID, err := strconv.ParseInt(targetArg, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid target account id '%s'", targetArg)
	}

	if err := validation.ValidateAmount(amountArg); err != nil {
		return err
	}
	amount, err := money.Parse(amountArg)
	if err != nil {
		return err
	}

	if !r.flags.Yes {
		message := fmt.Sprintf("Transfer %s from account %d to account %d?", amount, originID, targetID)
		ok, err := prompts.PromptConfirm(message, true)
		if err != nil {
			errhandler.HandleError(err)
			return nil
		}
		if !ok {
			pterm.Info.Println("Transfer aborted")
			return nil
		}
	}

	rec, err := r.app.Engine.Transfer(originID, targetID, amount)
	if err != nil {
		return err
	}

	pterm.Success.Printf("Transferred %s from account %d to account %d (transaction %s)\n",
		rec.Amount, rec.OriginAccountID, rec.TargetAccountID, rec.ID)
	return nil
}
