package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/forgo/gambit/pkg/jwt"
)

// keygenCmd represents the keygen command
var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generate an RSA key pair for the API server",
	Long: `Keygen generates the RS256 signing key pair the Gambit server uses for JWTs.
The private key is written with owner-only permissions; point the server at the
pair with JWT_PRIVATE_KEY_PATH and JWT_PUBLIC_KEY_PATH.

Examples:
  gambit keygen
  gambit keygen --dir /etc/gambit/keys`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("dir")
		force, _ := cmd.Flags().GetBool("force")

		privatePath := filepath.Join(dir, "private.pem")
		publicPath := filepath.Join(dir, "public.pem")

		if !force {
			if _, err := os.Stat(privatePath); err == nil {
				return fmt.Errorf("key already exists at %s (use --force to overwrite)", privatePath)
			}
		}

		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error creating key directory: %v", err)
		}

		if err := jwt.GenerateKeyPair(privatePath, publicPath); err != nil {
			return err
		}

		fmt.Println(color.GreenString("✓") + " Generated RSA key pair")
		fmt.Println(color.CyanString("  Private: ") + color.HiWhiteString(privatePath))
		fmt.Println(color.CyanString("  Public:  ") + color.HiWhiteString(publicPath))

		return nil
	},
}

func init() {
	RootCmd.AddCommand(keygenCmd)

	keygenCmd.Flags().StringP("dir", "d", "./keys", "Directory to write the key pair into")
	keygenCmd.Flags().BoolP("force", "f", false, "Overwrite existing keys")
}
