package commands

import (
	"fmt"
	"os"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/spf13/cobra"

	"github.com/freddiecoleman/chia-wallet-sdk/clvm"
)

// session carries what every subcommand needs once the global flags are
// resolved.
type session struct {
	settings Settings
	log      logger.Logger
	decoder  *clvm.Decoder
}

// NewRootCommand builds the clvm command tree.
func NewRootCommand() *cobra.Command {
	s := &session{}
	rootCmd := &cobra.Command{
		Use:           "clvm",
		Short:         "clvm inspects canonical CLVM serializations, tree hashes and coin ids",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.setup(cmd)
		},
	}
	bindFlags(rootCmd.PersistentFlags(), &s.settings)

	rootCmd.AddCommand(
		treeHashCommand(s),
		curryHashCommand(s),
		curryCommand(s),
		uncurryCommand(s),
		coinIDCommand(s),
		validateCommand(s),
		intCommand(s),
	)
	return rootCmd
}

func (s *session) setup(cmd *cobra.Command) error {
	if s.settings.ConfigPath != "" {
		if err := applyConfigFile(cmd.Flags(), s.settings.ConfigPath); err != nil {
			return err
		}
	}
	logger.New(s.settings.LogLevel)
	s.log = logger.Sugar.WithServiceName("clvm")

	opts, err := s.settings.DecoderOptions()
	if err != nil {
		return err
	}
	s.decoder = clvm.NewDecoder(append(opts, clvm.WithLogger(s.log))...)
	s.log.Debugf("decoder limits: %+v", s.decoder.Options())
	return nil
}

// program decodes one hex argument into a.
func (s *session) program(a *clvm.Arena, hexArg string) (clvm.Program, error) {
	b, err := decodeHexArg(hexArg)
	if err != nil {
		return clvm.Program{}, err
	}
	return s.decoder.Program(a, b)
}

func Execute() {
	err := NewRootCommand().Execute()
	logger.OnExit()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
