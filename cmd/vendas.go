package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"imobigest/internal/api"
	"imobigest/internal/comissao"
	"imobigest/internal/parcela"
	"imobigest/internal/venda"
)

var vendasCmd = &cobra.Command{
	Use:   "vendas",
	Short: "List and manage sales",
}

var vendasListCmd = &cobra.Command{
	Use:   "list",
	Short: "Search sales with optional filters",
	Long: `Search the sale listing. Filters go to the API's paginated search
endpoint; on deployments without it the full listing is fetched and the
filters are applied locally (the --profissional and --status-parcela
filters only work server-side and are skipped in that case).`,
	Example: `  # Every sale, first page
  imobigest vendas list

  # Filter by description and amount range
  imobigest vendas list --descricao casa --valor-min 100000 --valor-max 500000

  # Parcelled sales of one agency in a date range, as JSON
  imobigest vendas list --forma-pagamento PARCELADO --imobiliaria 3 \
      --data-inicio 2026-01-01 --data-fim 2026-06-30 --json`,
	RunE: runVendasList,
}

var vendasCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Register a sale with its commission and installments",
	Long: `Create a sale. The commission is recorded for the given professional
and roles; a PARCELADO sale also gets its installments generated (equal
monthly amounts, the last one absorbing the rounding residual) and
persisted.`,
	Example: `  imobigest vendas create --descricao "Casa dos Ipês" --valor 450000 \
      --data 2026-08-15 --imobiliaria 3 --comprador "João Souza" \
      --contato "+55 11 99999-0000" --forma-pagamento PARCELADO --parcelas 12 \
      --profissional 7 --cargo 2 --cargo 5`,
	RunE: runVendasCreate,
}

var vendasUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Rewrite a sale, replacing commissions and installments",
	Args:  cobra.ExactArgs(1),
	RunE:  runVendasUpdate,
}

var vendasDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a sale",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnv()
		if err != nil {
			return err
		}
		ctx, cancel := commandContext(env.cfg.HTTPTimeout)
		defer cancel()

		if err := venda.NewService(env.client).Delete(ctx, api.ID(args[0])); err != nil {
			return err
		}
		fmt.Printf("Venda %s deleted.\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(vendasCmd)
	vendasCmd.AddCommand(vendasListCmd)
	vendasCmd.AddCommand(vendasCreateCmd)
	vendasCmd.AddCommand(vendasUpdateCmd)
	vendasCmd.AddCommand(vendasDeleteCmd)

	addVendaFilterFlags(vendasListCmd)
	vendasListCmd.Flags().Int("page", 1, "Page number (1-based)")
	vendasListCmd.Flags().Int("limit", 0, "Page size (default from configuration)")
	vendasListCmd.Flags().Bool("json", false, "Output as JSON")

	for _, c := range []*cobra.Command{vendasCreateCmd, vendasUpdateCmd} {
		addVendaFormFlags(c)
	}
}

func addVendaFilterFlags(c *cobra.Command) {
	c.Flags().String("descricao", "", "Substring of the property description (case-insensitive)")
	c.Flags().String("valor-min", "", "Minimum sale amount (inclusive)")
	c.Flags().String("valor-max", "", "Maximum sale amount (inclusive)")
	c.Flags().String("data-inicio", "", "Earliest sale date, YYYY-MM-DD (inclusive)")
	c.Flags().String("data-fim", "", "Latest sale date, YYYY-MM-DD (inclusive)")
	c.Flags().String("forma-pagamento", "", "Payment mode: A_VISTA or PARCELADO")
	c.Flags().Int("imobiliaria", 0, "Agency id")
	c.Flags().Int("profissional", 0, "Professional id (server-side search only)")
	c.Flags().String("status-parcela", "", "Installment status: PENDENTE, PAGA or ATRASADA (server-side search only)")
}

func addVendaFormFlags(c *cobra.Command) {
	c.Flags().String("descricao", "", "Property description")
	c.Flags().String("valor", "", "Total sale amount")
	c.Flags().String("data", "", "Sale date, YYYY-MM-DD or RFC 3339")
	c.Flags().String("forma-pagamento", "A_VISTA", "Payment mode: A_VISTA or PARCELADO")
	c.Flags().Int("parcelas", 0, "Installment count (PARCELADO only)")
	c.Flags().String("comprador", "", "Buyer name")
	c.Flags().String("contato", "", "Buyer contact")
	c.Flags().Int("imobiliaria", 0, "Agency id")
	c.Flags().Int("profissional", 0, "Professional earning the commission")
	c.Flags().IntSlice("cargo", nil, "Role id earning the commission (repeatable)")
}

func filtersFromFlags(cmd *cobra.Command) (venda.Filters, error) {
	var f venda.Filters
	var err error

	f.Descricao, _ = cmd.Flags().GetString("descricao")
	if f.ValorMin, err = decimalFlag(cmd, "valor-min"); err != nil {
		return f, err
	}
	if f.ValorMax, err = decimalFlag(cmd, "valor-max"); err != nil {
		return f, err
	}
	if f.DataInicio, err = dateFlag(cmd, "data-inicio"); err != nil {
		return f, err
	}
	if f.DataFim, err = dateFlag(cmd, "data-fim"); err != nil {
		return f, err
	}
	forma, _ := cmd.Flags().GetString("forma-pagamento")
	if forma != "" {
		f.FormaPagamento = venda.FormaPagamento(strings.ToUpper(forma))
	}
	f.IdImobiliaria, _ = cmd.Flags().GetInt("imobiliaria")
	f.IdProfissional, _ = cmd.Flags().GetInt("profissional")
	status, _ := cmd.Flags().GetString("status-parcela")
	f.StatusParcela = strings.ToUpper(status)
	return f, nil
}

func decimalFlag(cmd *cobra.Command, name string) (decimal.Decimal, error) {
	raw, _ := cmd.Flags().GetString(name)
	if raw == "" {
		return decimal.Decimal{}, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid --%s: %w", name, err)
	}
	return d, nil
}

func dateFlag(cmd *cobra.Command, name string) (time.Time, error) {
	raw, _ := cmd.Flags().GetString(name)
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s (want YYYY-MM-DD): %w", name, err)
	}
	return t, nil
}

func runVendasList(cmd *cobra.Command, args []string) error {
	env, err := loadEnv()
	if err != nil {
		return err
	}
	filters, err := filtersFromFlags(cmd)
	if err != nil {
		return err
	}
	page, _ := cmd.Flags().GetInt("page")
	limit, _ := cmd.Flags().GetInt("limit")
	if limit < 1 {
		limit = env.cfg.PageSize
	}
	jsonOut, _ := cmd.Flags().GetBool("json")

	ctx, cancel := commandContext(env.cfg.HTTPTimeout * 2)
	defer cancel()

	searcher := venda.NewSearcher(env.client, limit)
	result, err := searcher.ApplyFilters(ctx, filters)
	if err != nil {
		return err
	}
	if page > 1 {
		if result, err = searcher.SetPage(ctx, page); err != nil {
			return err
		}
	}

	if jsonOut {
		return printJSON(result)
	}

	w := newTable()
	row(w, "ID", "DESCRICAO", "VALOR", "DATA", "PAGAMENTO", "PARCELAS", "COMPRADOR")
	for _, v := range result.Vendas {
		row(w, v.ID, v.DescricaoImovel, v.ValorTotal.StringFixed(2),
			v.DataVenda.Format("2006-01-02"), v.FormaPagamento, v.QtdParcelas, v.CompradorNome)
	}
	w.Flush()
	fmt.Printf("\nPage %d of %d (%d sales)\n", result.CurrentPage, result.TotalPages(), result.TotalItems)
	return nil
}

func vendaDataFromFlags(cmd *cobra.Command) (venda.VendaData, []comissao.ProfissionalCargos, error) {
	var data venda.VendaData
	var err error

	data.DescricaoImovel, _ = cmd.Flags().GetString("descricao")
	if data.ValorTotal, err = decimalFlag(cmd, "valor"); err != nil {
		return data, nil, err
	}
	raw, _ := cmd.Flags().GetString("data")
	if raw != "" {
		if data.DataVenda, err = time.Parse("2006-01-02", raw); err != nil {
			if data.DataVenda, err = time.Parse(time.RFC3339, raw); err != nil {
				return data, nil, fmt.Errorf("invalid --data: %w", err)
			}
		}
	} else {
		data.DataVenda = time.Now()
	}
	forma, _ := cmd.Flags().GetString("forma-pagamento")
	data.FormaPagamento = venda.FormaPagamento(strings.ToUpper(forma))
	data.QtdParcelas, _ = cmd.Flags().GetInt("parcelas")
	data.CompradorNome, _ = cmd.Flags().GetString("comprador")
	data.CompradorContato, _ = cmd.Flags().GetString("contato")
	data.IdImobiliaria, _ = cmd.Flags().GetInt("imobiliaria")

	profissionalID, _ := cmd.Flags().GetInt("profissional")
	cargos, _ := cmd.Flags().GetIntSlice("cargo")
	var profissionais []comissao.ProfissionalCargos
	if profissionalID > 0 {
		profissionais = []comissao.ProfissionalCargos{{IdProfissional: profissionalID, IdsCargos: cargos}}
	}
	return data, profissionais, nil
}

func newSaver(env *appEnv) (*venda.Saver, *parcela.Service) {
	parcelas := parcela.NewService(env.client)
	return venda.NewSaver(venda.NewService(env.client), comissao.NewService(env.client), parcelas), parcelas
}

func runVendasCreate(cmd *cobra.Command, args []string) error {
	env, err := loadEnv()
	if err != nil {
		return err
	}
	data, profissionais, err := vendaDataFromFlags(cmd)
	if err != nil {
		return err
	}

	draft := parcela.NewDraft()
	draft.Regenerate(parcela.GenerateInput{
		ValorTotal:  data.ValorTotal,
		QtdParcelas: data.QtdParcelas,
		DataVenda:   data.DataVenda,
		Parcelado:   data.FormaPagamento == venda.Parcelado,
	})

	ctx, cancel := commandContext(env.cfg.HTTPTimeout * 4)
	defer cancel()

	saver, _ := newSaver(env)
	created, err := saver.Create(ctx, data, profissionais, draft)
	if err != nil {
		return err
	}

	fmt.Printf("Venda %s created", created.ID)
	if draft.Len() > 0 {
		fmt.Printf(" with %d parcelas (total %s)", draft.Len(), draft.Total().StringFixed(2))
	}
	fmt.Println(".")
	return nil
}

func runVendasUpdate(cmd *cobra.Command, args []string) error {
	env, err := loadEnv()
	if err != nil {
		return err
	}
	data, profissionais, err := vendaDataFromFlags(cmd)
	if err != nil {
		return err
	}
	id := api.ID(args[0])

	ctx, cancel := commandContext(env.cfg.HTTPTimeout * 4)
	defer cancel()

	saver, parcelas := newSaver(env)

	draft := parcela.NewDraft()
	if data.FormaPagamento == venda.Parcelado {
		vendaID, err := id.Int()
		if err != nil {
			return err
		}
		// Edit mode prefers the persisted installments; generation is the
		// fallback when the sale has none yet.
		loaded, err := parcelas.LoadOrGenerate(ctx, parcela.GenerateInput{
			VendaID:     vendaID,
			ValorTotal:  data.ValorTotal,
			QtdParcelas: data.QtdParcelas,
			DataVenda:   data.DataVenda,
			Parcelado:   true,
		})
		if err != nil {
			return err
		}
		draft.Load(loaded)
	}

	if _, err := saver.Update(ctx, id, data, profissionais, draft); err != nil {
		return err
	}
	fmt.Printf("Venda %s updated.\n", id)
	return nil
}
