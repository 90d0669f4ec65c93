package account

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/nmorales/cuentas/internal/app"
	"github.com/nmorales/cuentas/internal/errhandler"
	"github.com/nmorales/cuentas/internal/model"
	"github.com/nmorales/cuentas/internal/money"
	"github.com/nmorales/cuentas/internal/ui"
	"github.com/nmorales/cuentas/internal/ui/prompts"
	"github.com/nmorales/cuentas/internal/validation"
)

type createFlags struct {
	Owner   int64
	Number  int64
	Balance string
}

type CreateCommandRunner struct {
	app   *app.App
	flags *createFlags
}

func NewCreateCmd(application *app.App) *cobra.Command {
	flags := &createFlags{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new account",
		Long: `Create an account for an owner with an optional opening balance.
When --number is omitted a free ten-digit account number is generated.

Example: cuentas account create --owner 12 --balance 100.00`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &CreateCommandRunner{app: application, flags: flags}
			return runner.Run(cmd.Flags().Changed("owner"))
		},
	}

	cmd.Flags().Int64VarP(&flags.Owner, "owner", "o", 0, "Owner id of the account")
	cmd.Flags().Int64VarP(&flags.Number, "number", "n", 0, "Explicit account number (generated when omitted)")
	cmd.Flags().StringVarP(&flags.Balance, "balance", "b", "0", "Opening balance")

	return cmd
}

func (r *CreateCommandRunner) Run(ownerFlagSet bool) error {
	ownerID := r.flags.Owner
	number := r.flags.Number
	balanceArg := r.flags.Balance

	// Without --owner the command runs as an interactive wizard.
	if !ownerFlagSet {
		var err error
		if ownerID, number, balanceArg, err = runCreateWizard(); err != nil {
			errhandler.HandleError(err)
			return nil
		}
	}

	if err := validation.ValidateInitialBalance(balanceArg); err != nil {
		return err
	}
	balance, err := money.Parse(balanceArg)
	if err != nil {
		return err
	}

	acc, err := r.app.Engine.OpenAccount(ownerID, number, balance)
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	displayAccount(acc)
	pterm.Success.Printf("Created account %d (number %d)\n", acc.ID, acc.Number)
	return nil
}

func runCreateWizard() (ownerID, number int64, balance string, err error) {
	if ownerID, err = prompts.PromptOwnerID(); err != nil {
		return 0, 0, "", err
	}
	if number, err = prompts.PromptAccountNumber(); err != nil {
		return 0, 0, "", err
	}
	if balance, err = prompts.PromptInitialBalance(); err != nil {
		return 0, 0, "", err
	}
	return ownerID, number, balance, nil
}

func displayAccount(acc *model.Account) {
	ui.PrintL2Title("Account")

	tableData := pterm.TableData{
		{pterm.Blue("ID"), strconv.FormatInt(acc.ID, 10)},
		{pterm.Blue("Owner"), strconv.FormatInt(acc.OwnerID, 10)},
		{pterm.Blue("Number"), strconv.FormatInt(acc.Number, 10)},
		{pterm.Blue("Balance"), acc.Balance.String()},
		{pterm.Blue("Created"), acc.CreatedAt.Format("2006-01-02 15:04:05")},
	}

	pterm.DefaultTable.WithData(tableData).Render()
}
