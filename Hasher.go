package Go_BoundMap

import (
	"encoding/binary"
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// Hasher turns a string key into a hash code. The same key must hash to the same value for the lifetime of the process; nothing more is required.
type Hasher interface {
	HashString(string) uint
}

// Seed is the default Hasher, backed by xxhash. The zero Seed hashes with plain xxhash; any other value is mixed in before the key, so maps with different seeds spread keys differently.
type Seed uint

// HashString hashes v.
func (u Seed) HashString(v string) uint {
	if u == 0 {
		return uint(xxhash.Sum64String(v))
	}
	var d xxhash.Digest
	var s [8]byte
	d.Reset()
	binary.LittleEndian.PutUint64(s[:], uint64(u))
	_, _ = d.Write(s[:])
	_, _ = d.WriteString(v)
	return uint(d.Sum64())
}

// MapHash hashes with the runtime's string hash through maphash. Values differ between processes.
type MapHash struct {
	seed maphash.Seed
}

// NewMapHash creates a MapHash with a random seed.
func NewMapHash() MapHash {
	return MapHash{maphash.MakeSeed()}
}

func (u MapHash) HashString(v string) uint {
	return uint(maphash.String(u.seed, v))
}

// HasherFunc adapts an ordinary function to a Hasher.
type HasherFunc func(string) uint

func (f HasherFunc) HashString(v string) uint {
	return f(v)
}
