package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login [email]",
	Short: "Log in to the API and store the access token",
	Long: `Login exchanges an email and password for an access token and saves it to
the config file, so subsequent commands authenticate automatically.

Examples:
  gambit login alice@example.com --password hunter2-but-longer`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		email := args[0]
		password, _ := cmd.Flags().GetString("password")
		if password == "" {
			return fmt.Errorf("--password is required")
		}

		client, err := newClient(cmd)
		if err != nil {
			return err
		}

		var result struct {
			User struct {
				ID       string  `json:"id"`
				Email    string  `json:"email"`
				Username *string `json:"username"`
			} `json:"user"`
			Token struct {
				AccessToken  string `json:"access_token"`
				RefreshToken string `json:"refresh_token"`
				ExpiresIn    int    `json:"expires_in"`
			} `json:"token"`
		}

		body := map[string]string{"email": email, "password": password}
		if err := client.post("/v1/auth/login", body, &result); err != nil {
			return err
		}

		config, err := LoadConfig()
		if err != nil {
			return err
		}
		config.Token = result.Token.AccessToken
		if err := SaveConfig(config); err != nil {
			return err
		}

		fmt.Println(color.GreenString("✓") + " Logged in as " + color.HiWhiteString(result.User.Email))
		fmt.Println(color.CyanString("  User ID: ") + color.HiWhiteString(result.User.ID))
		fmt.Println(color.CyanString("  Token saved to ") + GetConfigFilePath())

		return nil
	},
}

func init() {
	RootCmd.AddCommand(loginCmd)

	loginCmd.Flags().StringP("password", "p", "", "Account password")
}
