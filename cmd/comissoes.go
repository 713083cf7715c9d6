package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"imobigest/internal/comissao"
)

var comissoesCmd = &cobra.Command{
	Use:   "comissoes",
	Short: "Inspect commissions and configure commission percentages",
}

var comissoesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the commissions of a sale",
	Example: `  imobigest comissoes list --venda 42`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnv()
		if err != nil {
			return err
		}
		vendaID, _ := cmd.Flags().GetInt("venda")
		jsonOut, _ := cmd.Flags().GetBool("json")

		ctx, cancel := commandContext(env.cfg.HTTPTimeout * 2)
		defer cancel()

		comissoes, err := comissao.NewService(env.client).ListByVenda(ctx, vendaID)
		if err != nil {
			return err
		}
		if jsonOut {
			return printJSON(comissoes)
		}
		w := newTable()
		row(w, "ID", "PROFISSIONAL", "CARGOS", "TIPO")
		for _, c := range comissoes {
			cargos := make([]string, 0, len(c.IdsCargos))
			for _, id := range c.IdsCargos {
				cargos = append(cargos, fmt.Sprint(id))
			}
			row(w, c.ID, c.IdProfissional, strings.Join(cargos, ","), c.TipoComissao)
		}
		w.Flush()
		return nil
	},
}

var comissoesConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage per-role commission percentages of an agency",
}

var comissoesConfigListCmd = &cobra.Command{
	Use:   "list",
	Short: "List an agency's commission-percentage rules",
	Example: `  imobigest comissoes config list --imobiliaria 3`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnv()
		if err != nil {
			return err
		}
		imobiliariaID, _ := cmd.Flags().GetInt("imobiliaria")
		jsonOut, _ := cmd.Flags().GetBool("json")

		ctx, cancel := commandContext(env.cfg.HTTPTimeout)
		defer cancel()

		configs, err := comissao.NewService(env.client).ListConfig(ctx, imobiliariaID)
		if err != nil {
			return err
		}
		if jsonOut {
			return printJSON(configs)
		}
		w := newTable()
		row(w, "ID", "CARGO", "PERCENTUAL")
		for _, c := range configs {
			row(w, c.ID, c.IdCargo, c.Percentual.String()+"%")
		}
		w.Flush()
		return nil
	},
}

var comissoesConfigSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Create or update a commission-percentage rule",
	Example: `  # New rule
  imobigest comissoes config set --imobiliaria 3 --cargo 2 --percentual 2.5

  # Rewrite an existing rule by id
  imobigest comissoes config set --id 11 --imobiliaria 3 --cargo 2 --percentual 3`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnv()
		if err != nil {
			return err
		}
		id, _ := cmd.Flags().GetInt("id")
		imobiliariaID, _ := cmd.Flags().GetInt("imobiliaria")
		cargoID, _ := cmd.Flags().GetInt("cargo")
		percentual, err := decimalFlag(cmd, "percentual")
		if err != nil {
			return err
		}

		ctx, cancel := commandContext(env.cfg.HTTPTimeout)
		defer cancel()

		svc := comissao.NewService(env.client)
		cfg := comissao.Config{ID: id, IdImobiliaria: imobiliariaID, IdCargo: cargoID, Percentual: percentual}
		if id > 0 {
			if _, err := svc.UpdateConfig(ctx, cfg); err != nil {
				return err
			}
			fmt.Printf("Config %d updated.\n", id)
			return nil
		}
		created, err := svc.CreateConfig(ctx, cfg)
		if err != nil {
			return err
		}
		fmt.Printf("Config %d created.\n", created.ID)
		return nil
	},
}

var comissoesConfigDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a commission-percentage rule",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnv()
		if err != nil {
			return err
		}
		var id int
		if _, err := fmt.Sscanf(args[0], "%d", &id); err != nil {
			return fmt.Errorf("invalid config id %q", args[0])
		}

		ctx, cancel := commandContext(env.cfg.HTTPTimeout)
		defer cancel()

		if err := comissao.NewService(env.client).DeleteConfig(ctx, id); err != nil {
			return err
		}
		fmt.Printf("Config %d deleted.\n", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(comissoesCmd)
	comissoesCmd.AddCommand(comissoesListCmd)
	comissoesCmd.AddCommand(comissoesConfigCmd)
	comissoesConfigCmd.AddCommand(comissoesConfigListCmd)
	comissoesConfigCmd.AddCommand(comissoesConfigSetCmd)
	comissoesConfigCmd.AddCommand(comissoesConfigDeleteCmd)

	comissoesListCmd.Flags().Int("venda", 0, "Sale id (required)")
	comissoesListCmd.Flags().Bool("json", false, "Output as JSON")
	comissoesListCmd.MarkFlagRequired("venda")

	comissoesConfigListCmd.Flags().Int("imobiliaria", 0, "Agency id (required)")
	comissoesConfigListCmd.Flags().Bool("json", false, "Output as JSON")
	comissoesConfigListCmd.MarkFlagRequired("imobiliaria")

	comissoesConfigSetCmd.Flags().Int("id", 0, "Existing rule id (omit to create)")
	comissoesConfigSetCmd.Flags().Int("imobiliaria", 0, "Agency id (required)")
	comissoesConfigSetCmd.Flags().Int("cargo", 0, "Role id (required)")
	comissoesConfigSetCmd.Flags().String("percentual", "", "Commission percentage (required)")
	comissoesConfigSetCmd.MarkFlagRequired("imobiliaria")
	comissoesConfigSetCmd.MarkFlagRequired("cargo")
	comissoesConfigSetCmd.MarkFlagRequired("percentual")
}
