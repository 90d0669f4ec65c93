package account

import (
	"github.com/spf13/cobra"

	"github.com/nmorales/cuentas/internal/app"
)

func NewAccountCmd(application *app.App) *cobra.Command {
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Create, inspect and delete accounts",
		Long:  `Create, inspect and delete accounts.`,
	}

	accountCmd.AddCommand(NewCreateCmd(application))
	accountCmd.AddCommand(NewListCmd(application))
	accountCmd.AddCommand(NewShowCmd(application))
	accountCmd.AddCommand(NewDeleteCmd(application))

	return accountCmd
}
