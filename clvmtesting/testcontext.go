package clvmtesting

import (
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/google/uuid"

	"github.com/freddiecoleman/chia-wallet-sdk/clvm"
)

type TestContext struct {
	Log   logger.Logger
	Arena *clvm.Arena
	Label string
	T     *testing.T
}

type TestConfig struct {
	// We seed the generator RNG with Seed. It is normal to force it to some
	// fixed value so that the generated programs are the same from run to run.
	Seed            int64
	TestLabelPrefix string
	ArenaOptions    []clvm.ArenaOption
}

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	c := TestContext{
		T:     t,
		Arena: clvm.NewArena(cfg.ArenaOptions...),
	}
	// each context gets a distinct label so interleaved test logs can be
	// told apart
	c.Label = cfg.TestLabelPrefix + "-" + uuid.NewString()[:8]

	logger.New("INFO")
	c.Log = logger.Sugar.WithServiceName(c.Label)
	return c
}

// NewGenerator returns a program generator over the context arena.
func (c *TestContext) NewGenerator(cfg TestConfig) *TestGenerator {
	return NewTestGenerator(c.Arena, cfg.Seed)
}

// Decoder returns a decoder that logs rejections to the context log.
func (c *TestContext) Decoder(opts ...clvm.DecoderOption) *clvm.Decoder {
	return clvm.NewDecoder(append([]clvm.DecoderOption{clvm.WithLogger(c.Log)}, opts...)...)
}
