package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"imobigest/internal/api"
	"imobigest/internal/dashboard"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard <imobiliaria-id>",
	Short: "Show an agency's commission metrics for a period",
	Example: `  # Current month
  imobigest dashboard 3

  # A specific month, as JSON
  imobigest dashboard 3 --periodo 2026-08 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)

	dashboardCmd.Flags().String("periodo", "", "Period as YYYY-MM (default: current month)")
	dashboardCmd.Flags().Bool("json", false, "Output as JSON")
}

func runDashboard(cmd *cobra.Command, args []string) error {
	env, err := loadEnv()
	if err != nil {
		return err
	}
	periodo, _ := cmd.Flags().GetString("periodo")
	jsonOut, _ := cmd.Flags().GetBool("json")

	ctx, cancel := commandContext(env.cfg.HTTPTimeout)
	defer cancel()

	report, err := dashboard.NewService(env.client).Get(ctx, api.ID(args[0]), periodo)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(report)
	}

	fmt.Printf("Period %04d-%02d (%s to %s)\n\n",
		report.Periodo.Ano, report.Periodo.Mes, report.Periodo.DataInicio, report.Periodo.DataFim)
	fmt.Printf("Meta da imobiliária:  %s\n", report.Resumo.MetaImobiliaria.StringFixed(2))
	fmt.Printf("Falta para a meta:    %s\n", report.Resumo.FaltaParaMeta.StringFixed(2))
	fmt.Printf("Comissão geral total: %s\n", report.Resumo.ComissaoGeralTotal.StringFixed(2))
	fmt.Printf("Média mensal (ano):   %s\n", report.Medias.MensalAnoComissao.StringFixed(2))
	fmt.Printf("Média do período:     %s\n", report.Medias.PeriodoComissao.StringFixed(2))

	printComissoesPorCargo := func(title string, comissoes []dashboard.ComissaoPorCargo) {
		if len(comissoes) == 0 {
			return
		}
		fmt.Printf("\n%s:\n", title)
		w := newTable()
		for _, c := range comissoes {
			row(w, "  "+c.NomeCargo, c.ValorComissao.StringFixed(2))
		}
		w.Flush()
	}
	printComissoesPorCargo("Comissões por cargo", report.ComissoesPorCargo)
	printComissoesPorCargo("Comissões automáticas", report.ComissoesAutomaticasPorCargo)
	printComissoesPorCargo("Comissões manuais", report.ComissoesManuaisPorCargo)
	return nil
}
