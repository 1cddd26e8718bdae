package cli

import (
	"fmt"
	"net/url"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// registryJSON mirrors the API's registry resource
type registryJSON struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	OwnerID     string `json:"owner_id"`
	CardCount   int    `json:"card_count"`
	CreatedOn   string `json:"created_on"`
}

// registryCmd groups the registry subcommands
var registryCmd = &cobra.Command{
	Use:   "registry",
	Short: "Create and inspect card registries",
}

var registryCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new registry owned by the caller",
	Long: `Create constructs a new card registry. The authenticated caller becomes the
registry's owner and is the only identity allowed to mint cards into it.

Examples:
  gambit registry create "Dragon Vault"
  gambit registry create "Starter Set" --description "Cards for new players"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		description, _ := cmd.Flags().GetString("description")

		client, err := newClient(cmd)
		if err != nil {
			return err
		}

		body := map[string]string{"name": args[0]}
		if description != "" {
			body["description"] = description
		}

		var registry registryJSON
		if err := client.post("/v1/registries", body, &registry); err != nil {
			return err
		}

		fmt.Println(color.GreenString("✓") + " Created registry")
		printRegistry(&registry)

		return nil
	},
}

var registryGetCmd = &cobra.Command{
	Use:   "get [registry-id]",
	Short: "Fetch a registry by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd)
		if err != nil {
			return err
		}

		var registry registryJSON
		if err := client.get("/v1/registries/"+url.PathEscape(args[0]), &registry); err != nil {
			return err
		}

		printRegistry(&registry)

		return nil
	},
}

var registryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registries owned by the caller",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd)
		if err != nil {
			return err
		}

		var registries []registryJSON
		if err := client.get("/v1/registries", &registries); err != nil {
			return err
		}

		if len(registries) == 0 {
			fmt.Println("No registries yet. Create one with: gambit registry create <name>")
			return nil
		}

		for i := range registries {
			if i > 0 {
				fmt.Println()
			}
			printRegistry(&registries[i])
		}

		return nil
	},
}

func printRegistry(r *registryJSON) {
	fmt.Println(color.CyanString("Registry: ") + color.HiWhiteString(r.Name))
	fmt.Println(color.CyanString("ID:       ") + color.HiWhiteString(r.ID))
	fmt.Println(color.CyanString("Owner:    ") + color.HiWhiteString(r.OwnerID))
	fmt.Println(color.CyanString("Cards:    ") + color.HiWhiteString("%d", r.CardCount))
	if r.Description != "" {
		fmt.Println(color.CyanString("About:    ") + r.Description)
	}
}

func init() {
	RootCmd.AddCommand(registryCmd)
	registryCmd.AddCommand(registryCreateCmd)
	registryCmd.AddCommand(registryGetCmd)
	registryCmd.AddCommand(registryListCmd)

	registryCreateCmd.Flags().String("description", "", "Optional registry description")
}
