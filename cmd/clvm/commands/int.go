package commands

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/freddiecoleman/chia-wallet-sdk/codec"
)

func intCommand(s *session) *cobra.Command {
	var decode bool
	cmd := &cobra.Command{
		Use:   "int <n>",
		Short: "print the canonical atom bytes of a decimal integer, or with --decode the integer held by hex atom bytes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if decode {
				b, err := decodeHexArg(args[0])
				if err != nil {
					return err
				}
				if !codec.IsCanonicalSignedBytes(b) {
					s.log.Infof("%s is not the minimal encoding of its value", args[0])
				}
				fmt.Fprintln(cmd.OutOrStdout(), codec.SignedBytesToInt(b))
				return nil
			}
			n, ok := new(big.Int).SetString(args[0], 10)
			if !ok {
				return fmt.Errorf("not a decimal integer: %q", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "0x%s\n", codec.ToHex(codec.IntToSignedBytes(n)))
			return nil
		},
	}
	cmd.Flags().BoolVar(&decode, "decode", false, "decode hex atom bytes instead")
	return cmd
}
