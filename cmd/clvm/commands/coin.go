package commands

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/freddiecoleman/chia-wallet-sdk/codec"
	"github.com/freddiecoleman/chia-wallet-sdk/coin"
)

func coinIDCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "coinid <parent-coin-id> <puzzle-hash> <amount>",
		Short: "print the id of the coin with the given parent, puzzle hash and amount in mojos",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			parent, err := codec.HashFromHex(args[0])
			if err != nil {
				return fmt.Errorf("parent coin id: %w", err)
			}
			puzzleHash, err := codec.HashFromHex(args[1])
			if err != nil {
				return fmt.Errorf("puzzle hash: %w", err)
			}
			amount, ok := new(big.Int).SetString(args[2], 10)
			if !ok {
				return fmt.Errorf("%w: %q", coin.ErrInvalidAmount, args[2])
			}
			id, err := coin.ToCoinID(parent, puzzleHash, amount)
			if err != nil {
				return err
			}
			s.log.Debugf("coin id for amount %s", amount)
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}
}
