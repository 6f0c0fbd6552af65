package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/finlens/finlens/internal/cli"
	"github.com/finlens/finlens/internal/format"
	"github.com/finlens/finlens/internal/model"
)

func incomeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "income",
		Short: "Manage incomes",
		Long:  `List, add, delete, and export income records.`,
	}

	cmd.AddCommand(listIncomesCmd())
	cmd.AddCommand(addIncomeCmd())
	cmd.AddCommand(deleteIncomeCmd())
	cmd.AddCommand(exportIncomesCmd())

	return cmd
}

func listIncomesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all incomes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, _, err := initClient()
			if err != nil {
				return err
			}

			incomes, err := client.ListIncomes(cmd.Context())
			if err != nil {
				return err
			}

			if len(incomes) == 0 {
				fmt.Println(cli.InfoStyle.Render("No incomes yet. Use 'finlens income add' to record one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() {
				_ = w.Flush()
			}()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("ID"),
				cli.HeaderStyle.Render("Date"),
				cli.HeaderStyle.Render("Source"),
				cli.HeaderStyle.Render("Amount"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 4),
				strings.Repeat("-", 8),
				strings.Repeat("-", 20),
				strings.Repeat("-", 14))

			for _, in := range incomes {
				label := in.Source
				if in.Icon != "" {
					label = in.Icon + " " + label
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
					in.ID,
					format.DayMonth(in.Date.Time),
					format.Truncate(label, 30),
					format.Currency(in.Amount))
			}

			return nil
		},
	}
}

func addIncomeCmd() *cobra.Command {
	var (
		source string
		amount float64
		date   string
		icon   string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new income",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(source) == "" {
				return fmt.Errorf("source is required")
			}
			if err := checkAmount(amount); err != nil {
				return err
			}

			when := model.Today()
			if date != "" {
				t, err := time.Parse("2006-01-02", date)
				if err != nil {
					return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
				}
				when = model.NewDate(t)
			}

			client, _, err := initClient()
			if err != nil {
				return err
			}

			created, err := client.AddIncome(cmd.Context(), model.Income{
				Source: source,
				Amount: amount,
				Date:   when,
				Icon:   icon,
			})
			if err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Income added: %s %s on %s",
				created.Source, format.Currency(created.Amount), format.DayMonth(created.Date.Time))))
			return nil
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "income source (required)")
	cmd.Flags().Float64Var(&amount, "amount", 0, "amount earned (required, > 0)")
	cmd.Flags().StringVar(&date, "date", "", "date as YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&icon, "icon", "", "emoji or icon URL")
	_ = cmd.MarkFlagRequired("source")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func deleteIncomeCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an income",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid income id %q", args[0])
			}

			if !force {
				ok, err := cli.Confirm(fmt.Sprintf("Delete income %d?", id))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Println(cli.SubtleStyle.Render("Canceled."))
					return nil
				}
			}

			client, _, err := initClient()
			if err != nil {
				return err
			}

			if err := client.DeleteIncome(cmd.Context(), id); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render("Income deleted."))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation")

	return cmd
}

func exportIncomesCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Download the income spreadsheet",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, _, err := initClient()
			if err != nil {
				return err
			}

			data, err := client.DownloadIncomes(cmd.Context())
			if err != nil {
				return err
			}

			if err := writeExport(output, data); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render("Saved " + output))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "income_details.xlsx", "output file")

	return cmd
}
