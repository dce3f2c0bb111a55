package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/freddiecoleman/chia-wallet-sdk/clvm"
)

var ErrNotCurried = errors.New("clvm: program is not a curried module")

func curryCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "curry <mod-hex> [arg-hex...]",
		Short: "curry serialized arguments into a serialized module",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := clvm.NewArena()
			progs := make([]clvm.Program, len(args))
			for i, arg := range args {
				p, err := s.program(a, arg)
				if err != nil {
					return fmt.Errorf("argument %d: %w", i, err)
				}
				progs[i] = p
			}
			curried, err := progs[0].Curry(progs[1:]...)
			if err != nil {
				return err
			}
			out, err := curried.Hex()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func uncurryCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "uncurry <hex>",
		Short: "print the module and then each curried argument, one per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := s.program(clvm.NewArena(), args[0])
			if err != nil {
				return err
			}
			mod, curried, ok := p.Uncurry()
			if !ok {
				return ErrNotCurried
			}
			for _, part := range append([]clvm.Program{mod}, curried...) {
				out, err := part.Hex()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			return nil
		},
	}
}
