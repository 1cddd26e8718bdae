package cli

import (
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "gambit",
	Short: "Companion tool for the Gambit card registry API",
	Long: `Gambit is the command-line companion for the Gambit card registry service.
It provisions RSA signing keys for the server, mints service tokens, and drives
the REST API: creating registries, minting and transferring cards, and running duels.

The API base URL and bearer token are read from ~/.config/gambit/gambit.toml
(created on first run) and can be overridden per invocation with --api and --token.`,
}

func init() {
	RootCmd.PersistentFlags().String("api", "", "Base URL of the Gambit API (overrides config)")
	RootCmd.PersistentFlags().String("token", "", "Bearer token for authenticated requests (overrides config)")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
