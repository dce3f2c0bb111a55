package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freddiecoleman/chia-wallet-sdk/clvm"
	"github.com/freddiecoleman/chia-wallet-sdk/codec"
	"github.com/freddiecoleman/chia-wallet-sdk/coin"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--log-level", "NOOP"}, args...))
	err := cmd.Execute()
	return strings.TrimSpace(out.String()), err
}

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestTreeHashCommand(t *testing.T) {
	out, err := run(t, "treehash", "80")
	require.NoError(t, err)
	assert.Equal(t, clvm.NilTreeHash.String(), out)

	_, err = run(t, "treehash", "8101")
	assert.ErrorIs(t, err, clvm.ErrNonCanonicalEncoding)

	_, err = run(t, "treehash", "zz")
	assert.ErrorIs(t, err, codec.ErrMalformedHex)
}

func TestCurryCommands(t *testing.T) {
	const curried = "ff02ffff0180ffff04ffff0105ff018080"
	const curriedHash = "7bffaad7d3b5ff407d8ff66da715ea636aa98494b9a06fca7ab28e32cc2bb8b6"

	out, err := run(t, "curry", "80", "05")
	require.NoError(t, err)
	assert.Equal(t, curried, out)

	out, err = run(t, "curryhash", clvm.NilTreeHash.String(), clvm.AtomTreeHash([]byte{5}).String())
	require.NoError(t, err)
	assert.Equal(t, curriedHash, out)

	out, err = run(t, "treehash", "0x"+curried)
	require.NoError(t, err)
	assert.Equal(t, curriedHash, out)

	out, err = run(t, "uncurry", curried)
	require.NoError(t, err)
	assert.Equal(t, "80\n05", out)

	_, err = run(t, "uncurry", "ff0101")
	assert.ErrorIs(t, err, ErrNotCurried)
}

func TestCoinIDCommand(t *testing.T) {
	parent := strings.Repeat("11", 32)
	puzzleHash := strings.Repeat("22", 32)

	out, err := run(t, "coinid", parent, puzzleHash, "1000000000000")
	require.NoError(t, err)
	assert.Equal(t, "29cfc3c36de392b3477a9bc833b2c52f049b54f328bc5db8dbea93c53e317b74", out)

	_, err = run(t, "coinid", "--", parent, puzzleHash, "-1")
	assert.ErrorIs(t, err, coin.ErrInvalidAmount)

	_, err = run(t, "coinid", parent[:62], puzzleHash, "1")
	assert.ErrorIs(t, err, codec.ErrBadHashSize)
}

func TestIntCommand(t *testing.T) {
	tests := []struct {
		n   string
		hex string
	}{
		{"0", "0x"},
		{"1", "0x01"},
		{"128", "0x0080"},
		{"-1", "0xff"},
		{"-129", "0xff7f"},
	}
	for _, tt := range tests {
		out, err := run(t, "int", "--", tt.n)
		require.NoError(t, err)
		assert.Equal(t, tt.hex, out, tt.n)

		if tt.n == "0" {
			continue
		}
		out, err = run(t, "int", "--decode", tt.hex)
		require.NoError(t, err)
		assert.Equal(t, tt.n, out)
	}
}

func TestValidateCommand(t *testing.T) {
	out, err := run(t, "validate", "ff0101")
	require.NoError(t, err)
	assert.Equal(t, "length 3 nodes 3", out)

	_, err = run(t, "validate", "ff01")
	assert.ErrorIs(t, err, clvm.ErrUnexpectedEndOfInput)

	_, err = run(t, "validate", "--max-nodes", "2", "ff0101")
	assert.ErrorIs(t, err, clvm.ErrResourceLimitExceeded)

	_, err = run(t, "validate", "--max-depth", "1", "ffff010101")
	assert.ErrorIs(t, err, clvm.ErrResourceLimitExceeded)

	_, err = run(t, "validate", "--max-atom-length", "1B", "820102")
	assert.ErrorIs(t, err, clvm.ErrResourceLimitExceeded)
}

func TestConfigFileSuppliesUnsetFlags(t *testing.T) {
	path := writeConfig(t, "clvm.toml", "max-nodes = 2\nlog-level = \"NOOP\"\n")

	_, err := run(t, "--config", path, "validate", "ff0101")
	assert.ErrorIs(t, err, clvm.ErrResourceLimitExceeded)

	// the command line wins over the file
	out, err := run(t, "--config", path, "--max-nodes", "3", "validate", "ff0101")
	require.NoError(t, err)
	assert.Equal(t, "length 3 nodes 3", out)
}

func TestConfigFileZeroLimitsMeanUnlimited(t *testing.T) {
	path := writeConfig(t, "clvm.toml", "max-nodes = 0\nmax-depth = 0\n")

	out, err := run(t, "--config", path, "validate", "ffff0101ff0101")
	require.NoError(t, err)
	assert.Equal(t, "length 7 nodes 7", out)
}

func TestConfigFileErrors(t *testing.T) {
	_, err := run(t, "--config", writeConfig(t, "clvm.yaml", "max-nodes: 2\n"), "validate", "80")
	assert.ErrorIs(t, err, ErrConfigFormat)

	_, err = run(t, "--config", writeConfig(t, "clvm.toml", "no-such-flag = 1\n"), "validate", "80")
	require.Error(t, err)

	_, err = run(t, "--config", writeConfig(t, "clvm.toml", "max-nodes = \"many\"\n"), "validate", "80")
	require.Error(t, err)
}

func TestSettingsDecoderOptions(t *testing.T) {
	s := Settings{MaxAtomLength: "1MB", MaxNodes: 10, MaxDepth: 4}
	opts, err := s.DecoderOptions()
	require.NoError(t, err)
	got := clvm.NewDecoder(opts...).Options()
	assert.Equal(t, uint64(1<<20), got.MaxAtomLength)
	assert.Equal(t, uint64(10), got.MaxNodeCount)
	assert.Equal(t, uint64(4), got.MaxDepth)

	s.MaxAtomLength = "64GB"
	opts, err = s.DecoderOptions()
	require.NoError(t, err)
	assert.Equal(t, uint64(clvm.DefaultMaxAtomLength), clvm.NewDecoder(opts...).Options().MaxAtomLength)

	s.MaxAtomLength = "lots"
	_, err = s.DecoderOptions()
	require.Error(t, err)
}
