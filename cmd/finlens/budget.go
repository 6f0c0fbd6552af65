package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/finlens/finlens/internal/cli"
	"github.com/finlens/finlens/internal/format"
	"github.com/finlens/finlens/internal/model"
)

func budgetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Manage category budgets",
		Long:  `Set monthly spending caps per category and review budget alerts.`,
	}

	cmd.AddCommand(listBudgetsCmd())
	cmd.AddCommand(setBudgetCmd())
	cmd.AddCommand(budgetAlertsCmd())

	return cmd
}

func listBudgetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all budgets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, _, err := initClient()
			if err != nil {
				return err
			}

			budgets, err := client.ListBudgets(cmd.Context())
			if err != nil {
				return err
			}

			if len(budgets) == 0 {
				fmt.Println(cli.InfoStyle.Render("No budgets set. Use 'finlens budget set' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() {
				_ = w.Flush()
			}()

			fmt.Fprintf(w, "%s\t%s\n",
				cli.HeaderStyle.Render("Category"),
				cli.HeaderStyle.Render("Monthly cap"))
			fmt.Fprintf(w, "%s\t%s\n", strings.Repeat("-", 20), strings.Repeat("-", 14))

			for _, b := range budgets {
				label := b.Category
				if b.Icon != "" {
					label = b.Icon + " " + label
				}
				fmt.Fprintf(w, "%s\t%s\n", label, format.Currency(b.Amount))
			}

			return nil
		},
	}
}

func setBudgetCmd() *cobra.Command {
	var (
		category string
		amount   float64
		icon     string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Create or replace a category budget",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(category) == "" {
				return fmt.Errorf("category is required")
			}
			if err := checkAmount(amount); err != nil {
				return err
			}

			client, _, err := initClient()
			if err != nil {
				return err
			}

			stored, err := client.SetBudget(cmd.Context(), model.Budget{
				Category: category,
				Amount:   amount,
				Icon:     icon,
			})
			if err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Budget set: %s capped at %s per month",
				stored.Category, format.Currency(stored.Amount))))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "expense category (required)")
	cmd.Flags().Float64Var(&amount, "amount", 0, "monthly cap (required, > 0)")
	cmd.Flags().StringVar(&icon, "icon", "", "emoji or icon URL")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func budgetAlertsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "alerts",
		Short: "Show categories near or past their budget",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, _, err := initClient()
			if err != nil {
				return err
			}

			alerts, err := client.BudgetAlerts(cmd.Context())
			if err != nil {
				return err
			}

			if len(alerts) == 0 {
				fmt.Println(cli.SuccessStyle.Render("All categories are within budget."))
				return nil
			}

			for _, alert := range alerts {
				printAlert(alert)
			}
			return nil
		},
	}
}

func printAlert(alert model.BudgetAlert) {
	label := alert.Category
	if alert.Icon != "" {
		label = alert.Icon + " " + label
	}

	line := fmt.Sprintf("%s: spent %s of %s",
		label, format.Currency(alert.Spent), format.Currency(alert.Budget))

	switch alert.Status {
	case model.AlertExceeded:
		fmt.Println(cli.ErrorStyle.Render("EXCEEDED  " + line))
	case model.AlertWarning:
		fmt.Println(cli.WarningStyle.Render("WARNING   " + line))
	default:
		fmt.Println(cli.SubtleStyle.Render(string(alert.Status) + "  " + line))
	}
}
