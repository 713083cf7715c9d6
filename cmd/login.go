package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"imobigest/internal/auth"
	"imobigest/internal/logger"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate against the ImobiGest API",
	Long: `Exchange your email and password for a bearer token and store it in
the session file. Every other command reads the token from there.`,
	Example: `  # Prompt for the password
  imobigest login --email maria@example.com

  # Non-interactive (password from a flag or IMOBIGEST_SENHA)
  imobigest login --email maria@example.com --senha s3cret`,
	RunE: runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnv()
		if err != nil {
			return err
		}
		if err := env.session.Clear(); err != nil {
			return err
		}
		fmt.Println("Session cleared.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the stored session's subject and expiry",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnv()
		if err != nil {
			return err
		}
		info, err := env.session.Info()
		if err != nil {
			return err
		}
		if info.Subject != "" {
			fmt.Printf("Logged in as %s\n", info.Subject)
		} else {
			fmt.Println("Logged in (token carries no subject)")
		}
		if !info.ExpiresAt.IsZero() {
			fmt.Printf("Session expires at %s\n", info.ExpiresAt.Format("2006-01-02 15:04:05 MST"))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)

	loginCmd.Flags().String("email", "", "Account email (required)")
	loginCmd.Flags().String("senha", "", "Account password (prompted when omitted)")
	loginCmd.MarkFlagRequired("email")
}

func runLogin(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("login")

	env, err := loadEnv()
	if err != nil {
		return err
	}

	email, _ := cmd.Flags().GetString("email")
	senha, _ := cmd.Flags().GetString("senha")
	if senha == "" {
		senha = os.Getenv("IMOBIGEST_SENHA")
	}
	if senha == "" {
		fmt.Print("Password: ")
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("reading password: %w", err)
		}
		senha = strings.TrimSpace(line)
	}
	if senha == "" {
		return fmt.Errorf("a password is required")
	}

	ctx, cancel := commandContext(env.cfg.HTTPTimeout)
	defer cancel()

	token, err := auth.Login(ctx, env.cfg.APIBaseURL, auth.Credentials{Email: email, Senha: senha}, env.cfg.HTTPTimeout)
	if err != nil {
		return err
	}
	if err := env.session.Save(token); err != nil {
		return err
	}

	log.Info().Str("email", email).Msg("Session started")
	fmt.Println("Login successful.")
	return nil
}
