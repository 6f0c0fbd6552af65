package main

import (
	"fmt"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/finlens/finlens/internal/cli"
	"github.com/finlens/finlens/internal/config"
	"github.com/finlens/finlens/internal/receipt"
)

func scanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan <image>",
		Short: "Scan a receipt and import its expenses",
		Long: `Upload a receipt image to the OCR service, then file one expense per
extracted line item, dated today. Items are submitted one at a time; if one
fails, the earlier ones stay recorded.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := initClient()
			if err != nil {
				return err
			}

			result, err := client.ScanReceipt(cmd.Context(), config.ExpandPath(args[0]))
			if err != nil {
				return fmt.Errorf("failed to scan receipt: %w", err)
			}

			if result.Merchant != "" {
				fmt.Println(cli.InfoStyle.Render("Merchant: " + result.Merchant))
			}

			importer := receipt.NewImporter(client)
			bar := progressbar.Default(int64(len(result.Categorized)), "importing")
			importer.Progress = func(category string, _ float64) {
				_ = bar.Add(1)
			}

			added, err := importer.Import(cmd.Context(), result)
			_ = bar.Finish()
			if err != nil {
				return fmt.Errorf("failed to add scanned expenses: %w", err)
			}

			if added == 0 {
				return fmt.Errorf("no expenses could be extracted from the receipt")
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("%d expenses added from receipt", added)))
			return nil
		},
	}
}
