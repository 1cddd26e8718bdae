package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/forgo/gambit/pkg/jwt"
)

// tokenCmd represents the token command
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Sign a service JWT with the server's private key",
	Long: `Token signs a JWT directly with the server's RS256 private key, bypassing
the login flow. Useful for seeding, smoke tests, and service-to-service calls
against a server that trusts the same key pair.

Examples:
  gambit token --user user:admin --email admin@gambit.dev
  gambit token --key /etc/gambit/keys/private.pem --exp 60 --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		keyPath, _ := cmd.Flags().GetString("key")
		userID, _ := cmd.Flags().GetString("user")
		email, _ := cmd.Flags().GetString("email")
		username, _ := cmd.Flags().GetString("username")
		issuer, _ := cmd.Flags().GetString("issuer")
		expMins, _ := cmd.Flags().GetInt("exp")
		outputJSON, _ := cmd.Flags().GetBool("json")
		save, _ := cmd.Flags().GetBool("save")

		jwtService, err := jwt.NewService(jwt.Config{
			PrivateKeyPath: keyPath,
			Issuer:         issuer,
			ExpirationMins: expMins,
		})
		if err != nil {
			return fmt.Errorf("error creating JWT service: %v (generate keys with: gambit keygen)", err)
		}

		token, err := jwtService.Sign(jwt.Claims{
			UserID:   userID,
			Email:    email,
			Username: username,
		})
		if err != nil {
			return fmt.Errorf("error signing token: %v", err)
		}

		if save {
			config, err := LoadConfig()
			if err != nil {
				return err
			}
			config.Token = token
			if err := SaveConfig(config); err != nil {
				return err
			}
		}

		if outputJSON {
			output := map[string]any{
				"access_token": token,
				"token_type":   "Bearer",
				"expires_in":   expMins * 60,
				"user_id":      userID,
				"email":        email,
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(output)
		}

		expTime := time.Now().Add(time.Duration(expMins) * time.Minute)
		fmt.Println(color.GreenString("✓") + " Signed service token")
		fmt.Println(color.CyanString("  User:    ") + color.HiWhiteString(userID))
		fmt.Println(color.CyanString("  Email:   ") + color.HiWhiteString(email))
		fmt.Println(color.CyanString("  Expires: ") + color.HiWhiteString(expTime.Format(time.RFC3339)))
		fmt.Println()
		fmt.Println(token)
		if save {
			fmt.Println()
			fmt.Println(color.GreenString("✓") + " Saved to " + GetConfigFilePath())
		}

		return nil
	},
}

func init() {
	RootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().StringP("key", "k", "./keys/private.pem", "Path to the JWT private key")
	tokenCmd.Flags().StringP("user", "u", "user:dev", "User ID claim for the token")
	tokenCmd.Flags().StringP("email", "e", "dev@gambit.dev", "Email claim for the token")
	tokenCmd.Flags().String("username", "dev", "Username claim for the token")
	tokenCmd.Flags().String("issuer", "gambit.forgo.software", "JWT issuer claim")
	tokenCmd.Flags().Int("exp", 60*24*7, "Token expiration in minutes (default: 7 days)")
	tokenCmd.Flags().Bool("json", false, "Output as JSON")
	tokenCmd.Flags().Bool("save", false, "Save the token to the config file")
}
