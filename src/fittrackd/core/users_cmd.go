package core

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/da-maltsev/fit-track/src/fittrackd/auth"
	"github.com/da-maltsev/fit-track/src/fittrackd/db"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// createUserCmd registers a user account directly against the persisted
// database, without going through the HTTP API. Useful for bootstrapping.
var createUserCmd = &cobra.Command{
	Use:   "create-user",
	Short: "Create a user account",
	Long: `Create a user account directly in the database.

Email, username, and password can be passed as flags; anything missing is
prompted for interactively. The password prompt does not echo.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCreateUser(cmd)
	},
}

func init() {
	createUserCmd.Flags().String("email", "", "Email address for the new account")
	createUserCmd.Flags().String("username", "", "Username for the new account")
	createUserCmd.Flags().String("password", "", "Password (prompted interactively if omitted)")

	rootCmd.AddCommand(createUserCmd)
}

func runCreateUser(cmd *cobra.Command) error {
	email, _ := cmd.Flags().GetString("email")
	username, _ := cmd.Flags().GetString("username")
	password, _ := cmd.Flags().GetString("password")

	reader := bufio.NewReader(os.Stdin)

	if email == "" {
		fmt.Print("Email: ")
		input, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read email: %w", err)
		}
		email = strings.TrimSpace(input)
	}

	if username == "" {
		fmt.Print("Username: ")
		input, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read username: %w", err)
		}
		username = strings.TrimSpace(input)
	}

	if password == "" {
		fmt.Print("Password: ")
		bytePassword, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		fmt.Println()
		password = string(bytePassword)
	}

	if email == "" || username == "" || password == "" {
		return fmt.Errorf("email, username, and password are all required")
	}

	database, err := db.New(db.Config{
		PersistPath: viper.GetString("database.path"),
		LoadOnStart: true,
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	user, err := auth.NewUserRepository(database).Create(email, username, password)
	if err != nil {
		return err
	}

	if err := database.Shutdown(); err != nil {
		return fmt.Errorf("failed to persist database: %w", err)
	}

	fmt.Printf("Created user %s (id %d)\n", user.Username, user.ID)
	return nil
}
