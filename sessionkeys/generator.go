package sessionkeys

import "crypto/sha256"

// SessionKeyGenerator stretches a seed into an arbitrary amount of key material.
//
// The seed is split in half and each half hashed (o1, o2). The output stream is produced
// 32 bytes at a time as o0 = SHA256(o1 || o0 || o2), starting from a zero o0.
type SessionKeyGenerator struct {
	o0, o1, o2 [sha256.Size]byte
	pos        int
}

func NewSessionKeyGenerator(seed []byte) *SessionKeyGenerator {
	half := len(seed) / 2

	generator := SessionKeyGenerator{
		o1: sha256.Sum256(seed[:half]),
		o2: sha256.Sum256(seed[half:]),
	}

	generator.next()
	return &generator
}

func (generator *SessionKeyGenerator) next() {
	digest := sha256.New()
	digest.Write(generator.o1[:])
	digest.Write(generator.o0[:])
	digest.Write(generator.o2[:])
	digest.Sum(generator.o0[:0])

	generator.pos = 0
}

// Read fills b with the next len(b) bytes of the stream. It never fails.
func (generator *SessionKeyGenerator) Read(b []byte) (int, error) {
	for i := range b {
		if generator.pos == len(generator.o0) {
			generator.next()
		}

		b[i] = generator.o0[generator.pos]
		generator.pos++
	}

	return len(b), nil
}
