// Package cbmttesting provides deterministic test data generation for the
// cbmt and cbmthash packages.
package cbmttesting

import (
	"log/slog"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/neilotoole/slogt"

	"github.com/datatrails/go-datatrails-cbmt/cbmthash"
)

type TestConfig struct {
	// Seed seeds the generator RNG. It is normal to force it to some fixed
	// value so that the generated data is the same from run to run. Zero
	// selects the current time.
	Seed int64

	// LabelPrefix labels the generated leaf content so that colliding data
	// from unrelated tests is impossible.
	LabelPrefix string
}

type TestContext struct {
	T    *testing.T
	Log  *slog.Logger
	Rand *rand.Rand
	Cfg  TestConfig
}

func NewTestContext(t *testing.T, cfg TestConfig) *TestContext {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixMilli()
	}
	c := &TestContext{
		T:    t,
		Log:  slogt.New(t),
		Rand: rand.New(rand.NewSource(cfg.Seed)),
		Cfg:  cfg,
	}
	c.Log.Info("test context", "label", cfg.LabelPrefix, "seed", cfg.Seed)
	return c
}

// GenerateLeafContent returns one leaf's worth of raw content: the label
// prefix, a uuid drawn from the seeded RNG, and a random length tail. All of
// it is reproducible from the seed.
func (c *TestContext) GenerateLeafContent() []byte {
	id, err := uuid.NewRandomFromReader(c.Rand)
	if err != nil {
		c.T.Fatalf("uuid from seeded rng: %v", err)
	}

	content := append([]byte(c.Cfg.LabelPrefix), id[:]...)
	tail := make([]byte, c.Rand.Intn(65))
	c.Rand.Read(tail)
	return append(content, tail...)
}

// GenerateDigestLeaves returns n digest items, each the hash of generated
// leaf content, ready to build a tree over with cbmthash.SHA256Merger.
func (c *TestContext) GenerateDigestLeaves(n int) []cbmthash.Digest {
	leaves := make([]cbmthash.Digest, n)
	for i := range leaves {
		leaves[i] = cbmthash.SHA256Leaf(c.GenerateLeafContent())
	}
	return leaves
}

// GeneratePositions returns k distinct positions drawn from [0, n).
func (c *TestContext) GeneratePositions(n, k int) []uint64 {
	if k > n {
		c.T.Fatalf("cannot draw %d distinct positions from %d", k, n)
	}
	positions := c.Rand.Perm(n)[:k]
	out := make([]uint64, k)
	for i, p := range positions {
		out[i] = uint64(p)
	}
	return out
}
