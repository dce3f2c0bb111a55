package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/freddiecoleman/chia-wallet-sdk/clvm"
	"github.com/freddiecoleman/chia-wallet-sdk/codec"
)

func decodeHexArg(s string) ([]byte, error) {
	return codec.FromHex(s)
}

func treeHashCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "treehash <hex>",
		Short: "print the tree hash of a serialized program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := s.program(clvm.NewArena(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), p.TreeHash())
			return nil
		},
	}
}

func curryHashCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "curryhash <mod-hash> [arg-hash...]",
		Short: "print the tree hash of a module curried with arguments, given only their tree hashes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hashes := make([]codec.Hash, len(args))
			for i, arg := range args {
				h, err := codec.HashFromHex(arg)
				if err != nil {
					return fmt.Errorf("argument %d: %w", i, err)
				}
				hashes[i] = h
			}
			fmt.Fprintln(cmd.OutOrStdout(), clvm.CurryTreeHash(hashes[0], hashes[1:]...))
			return nil
		},
	}
}

func validateCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <hex>",
		Short: "check a serialization is canonical and within the decoder limits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := decodeHexArg(args[0])
			if err != nil {
				return err
			}
			a := clvm.NewArena()
			if _, err := s.decoder.Deserialize(a, b); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "length %d nodes %d\n", len(b), a.Len())
			return nil
		},
	}
}
