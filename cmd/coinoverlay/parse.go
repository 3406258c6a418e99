package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"go-coin-overlay/chat"
	"go-coin-overlay/convert"
	"go-coin-overlay/format"
	"go-coin-overlay/settings"
)

// parseCmd extracts a money amount from a chat-style message argument.
var parseCmd = &cobra.Command{
	Use:   "parse <message>",
	Short: "Extract a money amount from a chat message",
	Long: `Extract a money amount from a chat message containing icon-tagged
coin tokens, and print its converted value.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		live := settings.FromFile(cfg)
		formatter := format.New(convert.NewService(live.Rate()), live.Currency())

		amount := chat.ParseMoney(args[0])
		gold, silver, copper := amount.Split()
		fmt.Printf("amount: %dg %ds %dc (%d copper)\n", gold, silver, copper, amount)
		if converted := formatter.Format(amount, false); converted != "" {
			fmt.Printf("converted:%s\n", converted)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
