package dice

import (
	"crypto/hmac"
	crand "crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
)

// SeedFromString returns a 64-bit seed from an arbitrary string using SHA256.
func SeedFromString(s string) uint64 {
	h := sha256.Sum256([]byte(s))
	return binary.LittleEndian.Uint64(h[:8])
}

// Derive returns a deterministic child seed based on a base seed and a label using HMAC-SHA256.
// Labels should be stable strings such as "tray" or "roll:3".
func Derive(base uint64, label string) uint64 {
	key := make([]byte, 8)
	binary.LittleEndian.PutUint64(key, base)
	m := hmac.New(sha256.New, key)
	_, _ = m.Write([]byte(label))
	sum := m.Sum(nil)
	return binary.LittleEndian.Uint64(sum[:8])
}

// SessionSeed holds the canonical seed string for a session and exposes deterministic streams.
type SessionSeed struct {
	Text string
	root uint64
}

// NewSessionSeed creates a deterministic SessionSeed from a textual seed. Empty text is rejected.
func NewSessionSeed(seedText string) (SessionSeed, error) {
	if seedText == "" {
		return SessionSeed{}, fmt.Errorf("seed text must not be empty")
	}
	return SessionSeed{Text: seedText, root: SeedFromString(seedText)}, nil
}

// Stream returns a new deterministic stream derived from the session's root seed.
func (s SessionSeed) Stream(label string) *Stream {
	return NewStream(Derive(s.root, label))
}

// NewRandomSource returns a stream seeded from crypto/rand.
func NewRandomSource() (*Stream, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return nil, fmt.Errorf("read random seed: %w", err)
	}
	return NewStream(binary.LittleEndian.Uint64(b[:])), nil
}

// SplitMix64 PRNG implementation for deterministic streams.
type splitMix64 struct{ state uint64 }

func (s *splitMix64) next() uint64 {
	s.state += 0x9E3779B97F4A7C15
	z := s.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

func (s *splitMix64) intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(s.next() % uint64(n))
}

// Stream provides deterministic random numbers with support for labelled child streams.
// It satisfies Source.
type Stream struct {
	sm *splitMix64
}

// NewStream seeds a stream directly.
func NewStream(seed uint64) *Stream {
	return &Stream{sm: &splitMix64{state: seed}}
}

// Intn mirrors math/rand.Intn but is deterministic per stream.
func (s *Stream) Intn(n int) int { return s.sm.intn(n) }

// IntRange returns a value in [min, max]. When max < min it returns min.
func (s *Stream) IntRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.sm.intn(max-min+1)
}
