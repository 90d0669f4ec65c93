package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/nmorales/cuentas/internal/app"
	"github.com/nmorales/cuentas/internal/constants"
	"github.com/nmorales/cuentas/internal/model"
)

type historyFlags struct {
	From string
	To   string
}

type HistoryCommandRunner struct {
	app   *app.App
	flags *historyFlags
}

func NewHistoryCmd(application *app.App) *cobra.Command {
	flags := &historyFlags{}

	cmd := &cobra.Command{
		Use:   "history <account-id>",
		Short: "Show the transaction history of an account",
		Long: `List every committed movement touching an account, oldest first,
optionally bounded by an inclusive date window.

Example: cuentas history 3 --from 2026-01-01 --to 2026-06-30`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &HistoryCommandRunner{app: application, flags: flags}
			return runner.Run(args[0])
		},
	}

	cmd.Flags().StringVar(&flags.From, "from", "", "Start date (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&flags.To, "to", "", "End date (YYYY-MM-DD, inclusive)")

	return cmd
}

func (r *HistoryCommandRunner) Run(idArg string) error {
	accountID, err := strconv.ParseInt(idArg, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid account id '%s'", idArg)
	}

	from, to, err := parseWindow(r.flags.From, r.flags.To)
	if err != nil {
		return err
	}

	transactions, err := r.app.Query.History(accountID, from, to)
	if err != nil {
		return err
	}

	r.displayHistory(accountID, transactions)
	return nil
}

func parseWindow(fromArg, toArg string) (*time.Time, *time.Time, error) {
	var from, to *time.Time

	if fromArg != "" {
		t, err := time.Parse(constants.DateFormat, fromArg)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid --from date '%s' (expected YYYY-MM-DD)", fromArg)
		}
		from = &t
	}
	if toArg != "" {
		t, err := time.Parse(constants.DateFormat, toArg)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid --to date '%s' (expected YYYY-MM-DD)", toArg)
		}
		// Inclusive end of day.
		t = t.Add(24*time.Hour - time.Second)
		to = &t
	}

	return from, to, nil
}

func (r *HistoryCommandRunner) displayHistory(accountID int64, transactions []*model.Transaction) {
	headers := []string{"Date", "Kind", "Origin", "Target", "Amount"}
	tableData := pterm.TableData{headers}

	for _, rec := range transactions {
		signed := rec.SignedAmountFor(accountID)

		var coloredAmount string
		if signed.IsNegative() {
			coloredAmount = pterm.Red(signed.String())
		} else {
			coloredAmount = pterm.Green("+" + signed.String())
		}

		row := []string{
			rec.OccurredAt.Format(constants.DateFormat),
			string(rec.Kind),
			strconv.FormatInt(rec.OriginAccountID, 10),
			strconv.FormatInt(rec.TargetAccountID, 10),
			coloredAmount,
		}
		tableData = append(tableData, row)
	}

	pterm.DefaultSection.Printf("History of account %d", accountID)
	pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
	pterm.Info.Printf("Total: %d transactions\n", len(transactions))
}
