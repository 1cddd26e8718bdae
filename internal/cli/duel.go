package cli

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// duelResultJSON mirrors the API's duel result
type duelResultJSON struct {
	Outcome       string `json:"outcome"`
	WinnerTokenID *int   `json:"winner_token_id"`
	CardOne       struct {
		TokenID int    `json:"token_id"`
		Name    string `json:"name"`
		Power   int    `json:"power"`
	} `json:"card_one"`
	CardTwo struct {
		TokenID int    `json:"token_id"`
		Name    string `json:"name"`
		Power   int    `json:"power"`
	} `json:"card_two"`
}

// duelCmd represents the duel command
var duelCmd = &cobra.Command{
	Use:   "duel [registry-id] [token-one] [token-two]",
	Short: "Duel two cards from the same registry",
	Long: `Duel pits two cards against each other by total power (attack + defense).
The higher power wins; equal power is a tie. Nothing is persisted.

Examples:
  gambit duel registry:abc123 1 2`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		tokenOne, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("token ID must be an integer: %s", args[1])
		}
		tokenTwo, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("token ID must be an integer: %s", args[2])
		}

		client, err := newClient(cmd)
		if err != nil {
			return err
		}

		body := map[string]int{
			"card_one_token_id": tokenOne,
			"card_two_token_id": tokenTwo,
		}

		var result duelResultJSON
		path := "/v1/registries/" + url.PathEscape(args[0]) + "/duels"
		if err := client.post(path, body, &result); err != nil {
			return err
		}

		fmt.Printf("%s  #%d %s (power %d)\n",
			color.CyanString("Card one:"), result.CardOne.TokenID, result.CardOne.Name, result.CardOne.Power)
		fmt.Printf("%s  #%d %s (power %d)\n",
			color.CyanString("Card two:"), result.CardTwo.TokenID, result.CardTwo.Name, result.CardTwo.Power)
		fmt.Println()

		switch result.Outcome {
		case "tie":
			fmt.Println(color.YellowString("⚖ It's a tie"))
		case "card_one":
			fmt.Println(color.GreenString("★ Winner: ") + color.HiWhiteString("#%d %s", result.CardOne.TokenID, result.CardOne.Name))
		case "card_two":
			fmt.Println(color.GreenString("★ Winner: ") + color.HiWhiteString("#%d %s", result.CardTwo.TokenID, result.CardTwo.Name))
		default:
			return fmt.Errorf("unexpected duel outcome: %s", result.Outcome)
		}

		return nil
	},
}

func init() {
	RootCmd.AddCommand(duelCmd)
}
