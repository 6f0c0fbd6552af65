package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/finlens/finlens/internal/cli"
	"github.com/finlens/finlens/internal/format"
	"github.com/finlens/finlens/internal/model"
)

const chartWidth = 30

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show totals, recent activity, and spending charts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, _, err := initClient()
			if err != nil {
				return err
			}

			summary, err := client.GetDashboard(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Println(cli.TitleStyle.Render("Overview"))
			fmt.Printf("  Balance: %s\n", format.Currency(summary.TotalBalance))
			fmt.Printf("  Income:  %s\n", cli.SuccessStyle.Render(format.Currency(summary.TotalIncome)))
			fmt.Printf("  Expense: %s\n", cli.ErrorStyle.Render(format.Currency(summary.TotalExpense)))

			if len(summary.RecentTransactions) > 0 {
				fmt.Println()
				fmt.Println(cli.TitleStyle.Render("Recent transactions"))
				for _, tx := range summary.RecentTransactions {
					printRecent(tx)
				}
			}

			if points := format.ExpenseLineSeries(windowExpenses(summary.Last30DaysExpenses)); len(points) > 0 {
				fmt.Println()
				fmt.Println(cli.TitleStyle.Render("Expenses, last 30 days"))
				max := 0.0
				for _, p := range points {
					if p.Amount > max {
						max = p.Amount
					}
				}
				for _, p := range points {
					fmt.Printf("  %-8s %s %s\n", p.Month, bar(p.Amount, max), format.Currency(p.Amount))
				}
			}

			if points := format.IncomeBarSeries(windowIncomes(summary.Last60DaysIncome)); len(points) > 0 {
				fmt.Println()
				fmt.Println(cli.TitleStyle.Render("Income, last 60 days"))
				max := 0.0
				for _, p := range points {
					if p.Amount > max {
						max = p.Amount
					}
				}
				for _, p := range points {
					fmt.Printf("  %-8s %s %s\n", p.Month, bar(p.Amount, max), format.Currency(p.Amount))
				}
			}

			return nil
		},
	}
}

func printRecent(tx model.RecentTransaction) {
	name := tx.Category
	sign := "-"
	style := cli.ErrorStyle
	if tx.Type == "income" {
		name = tx.Source
		sign = "+"
		style = cli.SuccessStyle
	}
	if tx.Icon != "" {
		name = tx.Icon + " " + name
	}

	fmt.Printf("  %-8s %-25s %s\n",
		format.DayMonth(tx.Date.Time),
		format.Truncate(name, 25),
		style.Render(sign+format.Currency(tx.Amount)))
}

// windowExpenses reshapes a dashboard expense window into expense records so
// the chart formatters can consume it.
func windowExpenses(w model.TransactionWindow) []model.Expense {
	expenses := make([]model.Expense, 0, len(w.Transactions))
	for _, tx := range w.Transactions {
		expenses = append(expenses, model.Expense{
			Category: tx.Category,
			Icon:     tx.Icon,
			Amount:   tx.Amount,
			Date:     tx.Date,
		})
	}
	return expenses
}

// windowIncomes reshapes a dashboard income window into income records.
func windowIncomes(w model.TransactionWindow) []model.Income {
	incomes := make([]model.Income, 0, len(w.Transactions))
	for _, tx := range w.Transactions {
		incomes = append(incomes, model.Income{
			Source: tx.Source,
			Icon:   tx.Icon,
			Amount: tx.Amount,
			Date:   tx.Date,
		})
	}
	return incomes
}

// bar renders a horizontal bar scaled against the series maximum.
func bar(amount, max float64) string {
	if max <= 0 {
		return strings.Repeat("░", chartWidth)
	}

	filled := int(amount / max * chartWidth)
	if filled > chartWidth {
		filled = chartWidth
	}

	return strings.Repeat("█", filled) + strings.Repeat("░", chartWidth-filled)
}
