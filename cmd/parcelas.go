package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"imobigest/internal/parcela"
)

var parcelasCmd = &cobra.Command{
	Use:   "parcelas",
	Short: "Inspect and manage the installments of a sale",
}

var parcelasListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the persisted installments of a sale",
	Example: `  imobigest parcelas list --venda 42
  imobigest parcelas list --venda 42 --json`,
	RunE: runParcelasList,
}

var parcelasPreviewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Generate an installment plan without persisting it",
	Long: `Split a sale amount into monthly installments the same way "vendas
create" does: equal amounts rounded to centavos, the last installment
absorbing the rounding residual so the plan sums to the total exactly.
Runs entirely offline.`,
	Example: `  imobigest parcelas preview --valor 1000 --parcelas 3 --data 2026-08-15`,
	RunE:    runParcelasPreview,
}

var parcelasSetStatusCmd = &cobra.Command{
	Use:   "set-status",
	Short: "Update the status of one installment",
	Example: `  imobigest parcelas set-status --venda 42 --numero 3 --status PAGO`,
	RunE:    runParcelasSetStatus,
}

func init() {
	rootCmd.AddCommand(parcelasCmd)
	parcelasCmd.AddCommand(parcelasListCmd)
	parcelasCmd.AddCommand(parcelasPreviewCmd)
	parcelasCmd.AddCommand(parcelasSetStatusCmd)

	parcelasListCmd.Flags().Int("venda", 0, "Sale id (required)")
	parcelasListCmd.Flags().Bool("json", false, "Output as JSON")
	parcelasListCmd.MarkFlagRequired("venda")

	parcelasPreviewCmd.Flags().String("valor", "", "Total sale amount (required)")
	parcelasPreviewCmd.Flags().Int("parcelas", 0, "Installment count (required)")
	parcelasPreviewCmd.Flags().String("data", "", "Sale date, YYYY-MM-DD (default today)")
	parcelasPreviewCmd.Flags().Bool("json", false, "Output as JSON")
	parcelasPreviewCmd.MarkFlagRequired("valor")
	parcelasPreviewCmd.MarkFlagRequired("parcelas")

	parcelasSetStatusCmd.Flags().Int("venda", 0, "Sale id (required)")
	parcelasSetStatusCmd.Flags().Int("numero", 0, "Installment number (required)")
	parcelasSetStatusCmd.Flags().String("status", "", "New status: PENDENTE, PAGO or ATRASADO (required)")
	parcelasSetStatusCmd.MarkFlagRequired("venda")
	parcelasSetStatusCmd.MarkFlagRequired("numero")
	parcelasSetStatusCmd.MarkFlagRequired("status")
}

func runParcelasList(cmd *cobra.Command, args []string) error {
	env, err := loadEnv()
	if err != nil {
		return err
	}
	vendaID, _ := cmd.Flags().GetInt("venda")
	jsonOut, _ := cmd.Flags().GetBool("json")

	ctx, cancel := commandContext(env.cfg.HTTPTimeout)
	defer cancel()

	parcelas, err := parcela.NewService(env.client).ListByVenda(ctx, vendaID)
	if err != nil {
		return err
	}
	if jsonOut {
		return printJSON(parcelas)
	}
	printParcelas(parcelas)
	return nil
}

func runParcelasPreview(cmd *cobra.Command, args []string) error {
	valor, err := decimalFlag(cmd, "valor")
	if err != nil {
		return err
	}
	qtd, _ := cmd.Flags().GetInt("parcelas")
	jsonOut, _ := cmd.Flags().GetBool("json")

	data := time.Now()
	if raw, _ := cmd.Flags().GetString("data"); raw != "" {
		if data, err = time.Parse("2006-01-02", raw); err != nil {
			return fmt.Errorf("invalid --data (want YYYY-MM-DD): %w", err)
		}
	}

	parcelas := parcela.Generate(parcela.GenerateInput{
		ValorTotal:  valor,
		QtdParcelas: qtd,
		DataVenda:   data,
		Parcelado:   true,
	})
	if len(parcelas) == 0 {
		return fmt.Errorf("nothing to generate: --valor and --parcelas must be positive")
	}

	if jsonOut {
		return printJSON(parcelas)
	}
	printParcelas(parcelas)
	return nil
}

func runParcelasSetStatus(cmd *cobra.Command, args []string) error {
	env, err := loadEnv()
	if err != nil {
		return err
	}
	vendaID, _ := cmd.Flags().GetInt("venda")
	numero, _ := cmd.Flags().GetInt("numero")
	status, _ := cmd.Flags().GetString("status")

	ctx, cancel := commandContext(env.cfg.HTTPTimeout * 2)
	defer cancel()

	updated, err := parcela.NewService(env.client).SetStatus(ctx, vendaID, numero,
		parcela.Status(strings.ToUpper(status)))
	if err != nil {
		return err
	}
	fmt.Printf("Parcela %d/%d is now %s.\n", updated.NumeroParcela, vendaID, updated.Status)
	return nil
}

func printParcelas(parcelas []parcela.Parcela) {
	w := newTable()
	row(w, "N", "VALOR", "VENCIMENTO", "STATUS")
	for _, p := range parcelas {
		row(w, p.NumeroParcela, p.ValorParcela.StringFixed(2),
			p.DataVencimento.Format("2006-01-02"), p.Status)
	}
	w.Flush()
}
