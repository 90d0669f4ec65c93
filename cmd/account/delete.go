package account

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/nmorales/cuentas/internal/app"
	"github.com/nmorales/cuentas/internal/errhandler"
	"github.com/nmorales/cuentas/internal/ui/prompts"
)

type deleteFlags struct {
	Yes bool
}

type DeleteCommandRunner struct {
	app   *app.App
	flags *deleteFlags
}

func NewDeleteCmd(application *app.App) *cobra.Command {
	flags := &deleteFlags{}

	cmd := &cobra.Command{
		Use:   "delete <account-id>",
		Short: "Delete an account without transaction history",
		Long: `Delete an account. Accounts referenced by any transaction log entry,
as origin or target, can not be deleted.

Example: cuentas account delete 3`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &DeleteCommandRunner{app: application, flags: flags}
			return runner.Run(args[0])
		},
	}

	cmd.Flags().BoolVarP(&flags.Yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func (r *DeleteCommandRunner) Run(idArg string) error {
	accountID, err := strconv.ParseInt(idArg, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid account id '%s'", idArg)
	}

	if !r.flags.Yes {
		message := fmt.Sprintf("Delete account %d?", accountID)
		ok, err := prompts.PromptConfirm(message, false)
		if err != nil {
			errhandler.HandleError(err)
			return nil
		}
		if !ok {
			pterm.Info.Println("Delete aborted")
			return nil
		}
	}

	if err := r.app.Engine.CloseAccount(accountID); err != nil {
		return err
	}

	pterm.Success.Printf("Deleted account %d\n", accountID)
	return nil
}
