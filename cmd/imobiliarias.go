package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"imobigest/internal/api"
	"imobigest/internal/imobiliaria"
)

var imobiliariasCmd = &cobra.Command{
	Use:   "imobiliarias",
	Short: "List and manage real-estate agencies",
}

var imobiliariasListCmd = &cobra.Command{
	Use:   "list",
	Short: "List agencies",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnv()
		if err != nil {
			return err
		}
		jsonOut, _ := cmd.Flags().GetBool("json")

		ctx, cancel := commandContext(env.cfg.HTTPTimeout)
		defer cancel()

		imobiliarias, err := imobiliaria.NewService(env.client).List(ctx)
		if err != nil {
			return err
		}
		if jsonOut {
			return printJSON(imobiliarias)
		}
		w := newTable()
		row(w, "ID", "NOME", "META")
		for _, i := range imobiliarias {
			row(w, i.ID, i.Nome, i.Meta.StringFixed(2))
		}
		w.Flush()
		return nil
	},
}

var imobiliariasCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Register an agency",
	Example: `  imobigest imobiliarias create --nome "Ipê Imóveis" --meta 1500000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnv()
		if err != nil {
			return err
		}
		data, err := imobiliariaDataFromFlags(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := commandContext(env.cfg.HTTPTimeout)
		defer cancel()

		created, err := imobiliaria.NewService(env.client).Create(ctx, data)
		if err != nil {
			return err
		}
		fmt.Printf("Imobiliaria %s created.\n", created.ID)
		return nil
	},
}

var imobiliariasUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Rewrite an agency",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnv()
		if err != nil {
			return err
		}
		data, err := imobiliariaDataFromFlags(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := commandContext(env.cfg.HTTPTimeout)
		defer cancel()

		if _, err := imobiliaria.NewService(env.client).Update(ctx, api.ID(args[0]), data); err != nil {
			return err
		}
		fmt.Printf("Imobiliaria %s updated.\n", args[0])
		return nil
	},
}

var imobiliariasDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an agency",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnv()
		if err != nil {
			return err
		}
		ctx, cancel := commandContext(env.cfg.HTTPTimeout)
		defer cancel()

		if err := imobiliaria.NewService(env.client).Delete(ctx, api.ID(args[0])); err != nil {
			return err
		}
		fmt.Printf("Imobiliaria %s deleted.\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(imobiliariasCmd)
	imobiliariasCmd.AddCommand(imobiliariasListCmd)
	imobiliariasCmd.AddCommand(imobiliariasCreateCmd)
	imobiliariasCmd.AddCommand(imobiliariasUpdateCmd)
	imobiliariasCmd.AddCommand(imobiliariasDeleteCmd)

	imobiliariasListCmd.Flags().Bool("json", false, "Output as JSON")
	for _, c := range []*cobra.Command{imobiliariasCreateCmd, imobiliariasUpdateCmd} {
		c.Flags().String("nome", "", "Agency name")
		c.Flags().String("meta", "0", "Monthly sales goal")
	}
}

func imobiliariaDataFromFlags(cmd *cobra.Command) (imobiliaria.ImobiliariaData, error) {
	var data imobiliaria.ImobiliariaData
	var err error
	data.Nome, _ = cmd.Flags().GetString("nome")
	if data.Meta, err = decimalFlag(cmd, "meta"); err != nil {
		return data, err
	}
	return data, nil
}
