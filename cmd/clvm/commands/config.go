package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/c2h5oh/datasize"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"

	"github.com/freddiecoleman/chia-wallet-sdk/clvm"
)

const (
	flagConfig        = "config"
	flagLogLevel      = "log-level"
	flagMaxAtomLength = "max-atom-length"
	flagMaxNodes      = "max-nodes"
	flagMaxDepth      = "max-depth"
)

var ErrConfigFormat = errors.New("clvm: config files must be .toml")

// Settings are the global flag values once any config file has been merged
// in.
type Settings struct {
	ConfigPath    string
	LogLevel      string
	MaxAtomLength string
	MaxNodes      uint64
	MaxDepth      uint64
}

func bindFlags(flags *pflag.FlagSet, s *Settings) {
	flags.StringVar(&s.ConfigPath, flagConfig, "", "toml file supplying defaults for any flag not set on the command line")
	flags.StringVar(&s.LogLevel, flagLogLevel, "INFO", "log level: DEBUG, INFO, WARN, ERROR or NOOP")
	flags.StringVar(&s.MaxAtomLength, flagMaxAtomLength, "4GB", "largest atom accepted when decoding, as a size such as 1MB")
	flags.Uint64Var(&s.MaxNodes, flagMaxNodes, clvm.DefaultMaxNodeCount, "largest number of nodes one decode may allocate, 0 for no limit")
	flags.Uint64Var(&s.MaxDepth, flagMaxDepth, 0, "largest pair nesting accepted when decoding, 0 for no limit")
}

// applyConfigFile sets every flag named in the file that was not given on
// the command line.
func applyConfigFile(flags *pflag.FlagSet, filePath string) error {
	if filepath.Ext(filePath) != ".toml" {
		return fmt.Errorf("%w: %s", ErrConfigFormat, filePath)
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	fileConfig := make(map[string]any)
	if err := toml.Unmarshal(data, &fileConfig); err != nil {
		return fmt.Errorf("%s: %w", filePath, err)
	}
	for key, value := range fileConfig {
		if key == flagConfig {
			continue
		}
		f := flags.Lookup(key)
		if f == nil {
			return fmt.Errorf("%s: unknown setting %q", filePath, key)
		}
		if f.Changed {
			continue
		}
		if err := flags.Set(key, configValue(value)); err != nil {
			return fmt.Errorf("failed setting %s flag with value=%v error=%w", key, value, err)
		}
	}
	return nil
}

func configValue(value any) string {
	if reflect.ValueOf(value).Kind() != reflect.Slice {
		return fmt.Sprintf("%v", value)
	}
	items := value.([]any)
	s := make([]string, len(items))
	for i, v := range items {
		s[i] = fmt.Sprintf("%v", v)
	}
	return strings.Join(s, ",")
}

// DecoderOptions converts the limits into decoder options. Sizes beyond the
// allocator ceiling are clamped to it.
func (s Settings) DecoderOptions() ([]clvm.DecoderOption, error) {
	size, err := datasize.ParseString(s.MaxAtomLength)
	if err != nil {
		return nil, fmt.Errorf("--%s %q: %w", flagMaxAtomLength, s.MaxAtomLength, err)
	}
	maxAtom := size.Bytes()
	if maxAtom > clvm.DefaultMaxAtomLength {
		maxAtom = clvm.DefaultMaxAtomLength
	}
	return []clvm.DecoderOption{
		clvm.WithMaxAtomLength(maxAtom),
		clvm.WithMaxNodeCount(s.MaxNodes),
		clvm.WithMaxDepth(s.MaxDepth),
	}, nil
}
