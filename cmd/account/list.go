package account

import (
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/nmorales/cuentas/internal/app"
	"github.com/nmorales/cuentas/internal/model"
)

type listFlags struct {
	Owner int64
}

type ListCommandRunner struct {
	app   *app.App
	flags *listFlags
}

func NewListCmd(application *app.App) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the accounts of an owner with their balances",
		Long: `List every account belonging to an owner with its current balance.

Example: cuentas account list --owner 12`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &ListCommandRunner{app: application, flags: flags}
			return runner.Run()
		},
	}

	cmd.Flags().Int64VarP(&flags.Owner, "owner", "o", 0, "Owner id to list accounts for")
	cmd.MarkFlagRequired("owner")

	return cmd
}

func (r *ListCommandRunner) Run() error {
	accounts, err := r.app.Query.AccountsByOwner(r.flags.Owner)
	if err != nil {
		return err
	}

	r.displayAccountsList(accounts)
	return nil
}

func (r *ListCommandRunner) displayAccountsList(accounts []*model.Account) {
	headers := []string{"ID", "Number", "Balance", "Created"}
	tableData := pterm.TableData{headers}

	for _, acc := range accounts {
		row := []string{
			strconv.FormatInt(acc.ID, 10),
			strconv.FormatInt(acc.Number, 10),
			pterm.Green(acc.Balance.String()),
			acc.CreatedAt.Format("2006-01-02"),
		}
		tableData = append(tableData, row)
	}

	pterm.DefaultSection.Printf("Accounts of owner %d", r.flags.Owner)
	pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
	pterm.Info.Printf("Total: %d accounts\n", len(accounts))
}
