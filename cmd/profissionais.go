package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"imobigest/internal/profissional"
)

var profissionaisCmd = &cobra.Command{
	Use:   "profissionais",
	Short: "List and manage professionals",
}

var profissionaisListCmd = &cobra.Command{
	Use:   "list",
	Short: "List professionals",
	Example: `  imobigest profissionais list
  imobigest profissionais list --completo`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnv()
		if err != nil {
			return err
		}
		completo, _ := cmd.Flags().GetBool("completo")
		jsonOut, _ := cmd.Flags().GetBool("json")

		ctx, cancel := commandContext(env.cfg.HTTPTimeout)
		defer cancel()

		svc := profissional.NewService(env.client)
		var profissionais []profissional.Profissional
		if completo {
			profissionais, err = svc.ListCompleto(ctx)
		} else {
			profissionais, err = svc.List(ctx)
		}
		if err != nil {
			return err
		}
		if jsonOut {
			return printJSON(profissionais)
		}
		w := newTable()
		row(w, "ID", "NOME", "IMOBILIARIA", "CARGOS")
		for _, p := range profissionais {
			nomes := make([]string, 0, len(p.Cargos))
			for _, c := range p.Cargos {
				nomes = append(nomes, c.Nome)
			}
			imob := strconv.Itoa(p.IdImobiliaria)
			if p.Imobiliaria != nil {
				imob = p.Imobiliaria.Nome
			}
			row(w, p.ID, p.Nome, imob, strings.Join(nomes, ", "))
		}
		w.Flush()
		return nil
	},
}

var profissionaisCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Register a professional",
	Example: `  imobigest profissionais create --nome "Maria Lima" --imobiliaria 3`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnv()
		if err != nil {
			return err
		}
		nome, _ := cmd.Flags().GetString("nome")
		idImobiliaria, _ := cmd.Flags().GetInt("imobiliaria")

		ctx, cancel := commandContext(env.cfg.HTTPTimeout)
		defer cancel()

		created, err := profissional.NewService(env.client).Create(ctx,
			profissional.ProfissionalData{Nome: nome, IdImobiliaria: idImobiliaria})
		if err != nil {
			return err
		}
		fmt.Printf("Profissional %d created.\n", created.ID)
		return nil
	},
}

var profissionaisUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Rewrite a professional",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnv()
		if err != nil {
			return err
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid profissional id %q", args[0])
		}
		nome, _ := cmd.Flags().GetString("nome")
		idImobiliaria, _ := cmd.Flags().GetInt("imobiliaria")

		ctx, cancel := commandContext(env.cfg.HTTPTimeout)
		defer cancel()

		_, err = profissional.NewService(env.client).Update(ctx, id,
			profissional.ProfissionalData{Nome: nome, IdImobiliaria: idImobiliaria})
		if err != nil {
			return err
		}
		fmt.Printf("Profissional %d updated.\n", id)
		return nil
	},
}

var profissionaisDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a professional",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnv()
		if err != nil {
			return err
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid profissional id %q", args[0])
		}

		ctx, cancel := commandContext(env.cfg.HTTPTimeout)
		defer cancel()

		if err := profissional.NewService(env.client).Delete(ctx, id); err != nil {
			return err
		}
		fmt.Printf("Profissional %d deleted.\n", id)
		return nil
	},
}

var profissionaisAddCargoCmd = &cobra.Command{
	Use:   "add-cargo",
	Short: "Assign a role to a professional",
	Example: `  imobigest profissionais add-cargo --profissional 7 --cargo 2`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnv()
		if err != nil {
			return err
		}
		profissionalID, _ := cmd.Flags().GetInt("profissional")
		cargoID, _ := cmd.Flags().GetInt("cargo")

		ctx, cancel := commandContext(env.cfg.HTTPTimeout)
		defer cancel()

		if err := profissional.NewService(env.client).AssignCargo(ctx, profissionalID, cargoID); err != nil {
			return err
		}
		fmt.Printf("Cargo %d assigned to profissional %d.\n", cargoID, profissionalID)
		return nil
	},
}

var profissionaisRemoveCargoCmd = &cobra.Command{
	Use:   "remove-cargo <vinculo-id>",
	Short: "Remove a role assignment",
	Long: `Remove a professional-to-role assignment by the assignment's own id.
List a professional's assignments with "profissionais cargos".`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnv()
		if err != nil {
			return err
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid vinculo id %q", args[0])
		}

		ctx, cancel := commandContext(env.cfg.HTTPTimeout)
		defer cancel()

		if err := profissional.NewService(env.client).RemoveCargo(ctx, id); err != nil {
			return err
		}
		fmt.Printf("Vinculo %d removed.\n", id)
		return nil
	},
}

var profissionaisCargosCmd = &cobra.Command{
	Use:   "cargos <profissional-id>",
	Short: "List a professional's role assignments",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnv()
		if err != nil {
			return err
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid profissional id %q", args[0])
		}

		ctx, cancel := commandContext(env.cfg.HTTPTimeout)
		defer cancel()

		vinculos, err := profissional.NewService(env.client).ListCargos(ctx, id)
		if err != nil {
			return err
		}
		w := newTable()
		row(w, "VINCULO", "CARGO")
		for _, v := range vinculos {
			row(w, v.ID, v.IdCargo)
		}
		w.Flush()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(profissionaisCmd)
	profissionaisCmd.AddCommand(profissionaisListCmd)
	profissionaisCmd.AddCommand(profissionaisCreateCmd)
	profissionaisCmd.AddCommand(profissionaisUpdateCmd)
	profissionaisCmd.AddCommand(profissionaisDeleteCmd)
	profissionaisCmd.AddCommand(profissionaisAddCargoCmd)
	profissionaisCmd.AddCommand(profissionaisRemoveCargoCmd)
	profissionaisCmd.AddCommand(profissionaisCargosCmd)

	profissionaisListCmd.Flags().Bool("completo", false, "Include each professional's roles")
	profissionaisListCmd.Flags().Bool("json", false, "Output as JSON")

	for _, c := range []*cobra.Command{profissionaisCreateCmd, profissionaisUpdateCmd} {
		c.Flags().String("nome", "", "Professional name")
		c.Flags().Int("imobiliaria", 0, "Agency id")
	}

	profissionaisAddCargoCmd.Flags().Int("profissional", 0, "Professional id (required)")
	profissionaisAddCargoCmd.Flags().Int("cargo", 0, "Role id (required)")
	profissionaisAddCargoCmd.MarkFlagRequired("profissional")
	profissionaisAddCargoCmd.MarkFlagRequired("cargo")
}
