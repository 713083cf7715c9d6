package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"imobigest/internal/cargo"
)

var cargosCmd = &cobra.Command{
	Use:   "cargos",
	Short: "List and manage roles",
}

var cargosListCmd = &cobra.Command{
	Use:   "list",
	Short: "List roles",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnv()
		if err != nil {
			return err
		}
		jsonOut, _ := cmd.Flags().GetBool("json")

		ctx, cancel := commandContext(env.cfg.HTTPTimeout)
		defer cancel()

		cargos, err := cargo.NewService(env.client).List(ctx)
		if err != nil {
			return err
		}
		if jsonOut {
			return printJSON(cargos)
		}
		w := newTable()
		row(w, "ID", "NOME", "COMISSAO AUTOMATICA")
		for _, c := range cargos {
			row(w, c.ID, c.Nome, c.ComissaoAutomatica)
		}
		w.Flush()
		return nil
	},
}

var cargosCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Register a role",
	Example: `  imobigest cargos create --nome Corretor --comissao-automatica`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnv()
		if err != nil {
			return err
		}
		data := cargoDataFromFlags(cmd)

		ctx, cancel := commandContext(env.cfg.HTTPTimeout)
		defer cancel()

		created, err := cargo.NewService(env.client).Create(ctx, data)
		if err != nil {
			return err
		}
		fmt.Printf("Cargo %d created.\n", created.ID)
		return nil
	},
}

var cargosUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Rewrite a role",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnv()
		if err != nil {
			return err
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid cargo id %q", args[0])
		}

		ctx, cancel := commandContext(env.cfg.HTTPTimeout)
		defer cancel()

		if _, err := cargo.NewService(env.client).Update(ctx, id, cargoDataFromFlags(cmd)); err != nil {
			return err
		}
		fmt.Printf("Cargo %d updated.\n", id)
		return nil
	},
}

var cargosDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a role",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnv()
		if err != nil {
			return err
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid cargo id %q", args[0])
		}

		ctx, cancel := commandContext(env.cfg.HTTPTimeout)
		defer cancel()

		if err := cargo.NewService(env.client).Delete(ctx, id); err != nil {
			return err
		}
		fmt.Printf("Cargo %d deleted.\n", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cargosCmd)
	cargosCmd.AddCommand(cargosListCmd)
	cargosCmd.AddCommand(cargosCreateCmd)
	cargosCmd.AddCommand(cargosUpdateCmd)
	cargosCmd.AddCommand(cargosDeleteCmd)

	cargosListCmd.Flags().Bool("json", false, "Output as JSON")
	for _, c := range []*cobra.Command{cargosCreateCmd, cargosUpdateCmd} {
		c.Flags().String("nome", "", "Role name")
		c.Flags().Bool("comissao-automatica", false, "Role earns commissions automatically")
	}
}

func cargoDataFromFlags(cmd *cobra.Command) cargo.CargoData {
	nome, _ := cmd.Flags().GetString("nome")
	automatica, _ := cmd.Flags().GetBool("comissao-automatica")
	return cargo.CargoData{Nome: nome, ComissaoAutomatica: automatica}
}
