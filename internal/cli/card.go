package cli

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// cardJSON mirrors the API's card resource
type cardJSON struct {
	ID          string `json:"id"`
	RegistryID  string `json:"registry_id"`
	TokenID     int    `json:"token_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Attack      int    `json:"attack"`
	Defense     int    `json:"defense"`
	HolderID    string `json:"holder_id"`
}

// cardCmd groups the card subcommands
var cardCmd = &cobra.Command{
	Use:   "card",
	Short: "Mint, inspect, and transfer cards",
}

var cardMintCmd = &cobra.Command{
	Use:   "mint [registry-id] [name]",
	Short: "Mint a new card into a registry (owner only)",
	Long: `Mint appends a new card to a registry. Only the registry owner may mint;
the new card's token ID is its position in the mint sequence, starting at 1.

Examples:
  gambit card mint registry:abc123 "Storm Dragon" --attack 100 --defense 50`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		attack, _ := cmd.Flags().GetInt("attack")
		defense, _ := cmd.Flags().GetInt("defense")
		description, _ := cmd.Flags().GetString("description")

		client, err := newClient(cmd)
		if err != nil {
			return err
		}

		body := map[string]interface{}{
			"name":    args[1],
			"attack":  attack,
			"defense": defense,
		}
		if description != "" {
			body["description"] = description
		}

		var card cardJSON
		path := "/v1/registries/" + url.PathEscape(args[0]) + "/cards"
		if err := client.post(path, body, &card); err != nil {
			return err
		}

		fmt.Println(color.GreenString("✓") + " Minted card " + color.HiWhiteString("#%d", card.TokenID))
		printCard(&card)

		return nil
	},
}

var cardGetCmd = &cobra.Command{
	Use:   "get [registry-id] [token-id]",
	Short: "Fetch a card by its token ID",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		tokenID, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("token ID must be an integer: %s", args[1])
		}

		client, err := newClient(cmd)
		if err != nil {
			return err
		}

		var card cardJSON
		path := fmt.Sprintf("/v1/registries/%s/cards/%d", url.PathEscape(args[0]), tokenID)
		if err := client.get(path, &card); err != nil {
			return err
		}

		printCard(&card)

		return nil
	},
}

var cardListCmd = &cobra.Command{
	Use:   "list [registry-id]",
	Short: "List cards in a registry in token order",
	Long: `List pages through a registry's cards in mint order. Use --holder to filter
to a specific holder, or --mine for cards the authenticated caller holds.

Examples:
  gambit card list registry:abc123
  gambit card list registry:abc123 --mine
  gambit card list registry:abc123 --after 50 --limit 25`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		after, _ := cmd.Flags().GetInt("after")
		limit, _ := cmd.Flags().GetInt("limit")
		holder, _ := cmd.Flags().GetString("holder")
		mine, _ := cmd.Flags().GetBool("mine")

		if mine {
			holder = "me"
		}

		client, err := newClient(cmd)
		if err != nil {
			return err
		}

		query := url.Values{}
		if after > 0 {
			query.Set("after", strconv.Itoa(after))
		}
		if limit > 0 {
			query.Set("limit", strconv.Itoa(limit))
		}
		if holder != "" {
			query.Set("holder", holder)
		}

		path := "/v1/registries/" + url.PathEscape(args[0]) + "/cards"
		if len(query) > 0 {
			path += "?" + query.Encode()
		}

		var cards []cardJSON
		page, err := client.getPage(path, &cards)
		if err != nil {
			return err
		}

		if len(cards) == 0 {
			fmt.Println("No cards found.")
			return nil
		}

		for i := range cards {
			if i > 0 {
				fmt.Println()
			}
			printCard(&cards[i])
		}

		if page != nil && page.HasMore {
			fmt.Println()
			fmt.Println(color.YellowString("More cards remain; continue with --after %s", page.Cursor))
		}

		return nil
	},
}

var cardTransferCmd = &cobra.Command{
	Use:   "transfer [registry-id] [token-id]",
	Short: "Transfer a held card to another user",
	Long: `Transfer moves a card you hold to another user. Only the current holder may
transfer; the card itself (name, stats, token ID) never changes.

Examples:
  gambit card transfer registry:abc123 7 --to user:bob`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		to, _ := cmd.Flags().GetString("to")
		if to == "" {
			return fmt.Errorf("--to is required")
		}

		tokenID, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("token ID must be an integer: %s", args[1])
		}

		client, err := newClient(cmd)
		if err != nil {
			return err
		}

		var card cardJSON
		path := fmt.Sprintf("/v1/registries/%s/cards/%d/transfer", url.PathEscape(args[0]), tokenID)
		if err := client.post(path, map[string]string{"to_user_id": to}, &card); err != nil {
			return err
		}

		fmt.Println(color.GreenString("✓") + " Transferred card " + color.HiWhiteString("#%d", card.TokenID) +
			" to " + color.HiWhiteString(card.HolderID))

		return nil
	},
}

func printCard(c *cardJSON) {
	fmt.Println(color.CyanString("Card:    ") + color.HiWhiteString("#%d %s", c.TokenID, c.Name))
	fmt.Println(color.CyanString("Attack:  ") + color.HiWhiteString("%d", c.Attack))
	fmt.Println(color.CyanString("Defense: ") + color.HiWhiteString("%d", c.Defense))
	fmt.Println(color.CyanString("Holder:  ") + color.HiWhiteString(c.HolderID))
	if c.Description != "" {
		fmt.Println(color.CyanString("About:   ") + c.Description)
	}
}

func init() {
	RootCmd.AddCommand(cardCmd)
	cardCmd.AddCommand(cardMintCmd)
	cardCmd.AddCommand(cardGetCmd)
	cardCmd.AddCommand(cardListCmd)
	cardCmd.AddCommand(cardTransferCmd)

	cardMintCmd.Flags().Int("attack", 0, "Attack stat (0 to 1000000)")
	cardMintCmd.Flags().Int("defense", 0, "Defense stat (0 to 1000000)")
	cardMintCmd.Flags().String("description", "", "Optional card description")

	cardListCmd.Flags().Int("after", 0, "Return cards after this token ID")
	cardListCmd.Flags().Int("limit", 0, "Page size (default 50, max 200)")
	cardListCmd.Flags().String("holder", "", "Filter to cards held by this user ID")
	cardListCmd.Flags().Bool("mine", false, "Filter to cards the caller holds")

	cardTransferCmd.Flags().String("to", "", "User ID of the new holder")
}
