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

func expenseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expense",
		Short: "Manage expenses",
		Long:  `List, add, delete, and export expense records.`,
	}

	cmd.AddCommand(listExpensesCmd())
	cmd.AddCommand(addExpenseCmd())
	cmd.AddCommand(deleteExpenseCmd())
	cmd.AddCommand(exportExpensesCmd())

	return cmd
}

func listExpensesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all expenses",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, _, err := initClient()
			if err != nil {
				return err
			}

			expenses, err := client.ListExpenses(cmd.Context())
			if err != nil {
				return err
			}

			if len(expenses) == 0 {
				fmt.Println(cli.InfoStyle.Render("No expenses yet. Use 'finlens expense add' to record one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() {
				_ = w.Flush()
			}()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("ID"),
				cli.HeaderStyle.Render("Date"),
				cli.HeaderStyle.Render("Category"),
				cli.HeaderStyle.Render("Amount"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 4),
				strings.Repeat("-", 8),
				strings.Repeat("-", 20),
				strings.Repeat("-", 14))

			for _, e := range expenses {
				label := e.Category
				if e.Icon != "" {
					label = e.Icon + " " + label
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
					e.ID,
					format.DayMonth(e.Date.Time),
					format.Truncate(label, 30),
					format.Currency(e.Amount))
			}

			return nil
		},
	}
}

func addExpenseCmd() *cobra.Command {
	var (
		category string
		amount   float64
		date     string
		icon     string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new expense",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(category) == "" {
				return fmt.Errorf("category is required")
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

			created, err := client.AddExpense(cmd.Context(), model.Expense{
				Category: category,
				Amount:   amount,
				Date:     when,
				Icon:     icon,
			})
			if err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Expense added: %s %s on %s",
				created.Category, format.Currency(created.Amount), format.DayMonth(created.Date.Time))))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "expense category (required)")
	cmd.Flags().Float64Var(&amount, "amount", 0, "amount spent (required, > 0)")
	cmd.Flags().StringVar(&date, "date", "", "date as YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&icon, "icon", "", "emoji or icon URL")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func deleteExpenseCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid expense id %q", args[0])
			}

			if !force {
				ok, err := cli.Confirm(fmt.Sprintf("Delete expense %d?", id))
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

			if err := client.DeleteExpense(cmd.Context(), id); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render("Expense deleted."))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation")

	return cmd
}

func exportExpensesCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Download the expense spreadsheet",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, _, err := initClient()
			if err != nil {
				return err
			}

			data, err := client.DownloadExpenses(cmd.Context())
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

	cmd.Flags().StringVarP(&output, "output", "o", "expense_details.xlsx", "output file")

	return cmd
}
