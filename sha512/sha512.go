// Package sha512 implements the SHA-512 hash algorithm and its SHA-512/t
// truncated variants as defined in FIPS 180-4.
//
// Hashing state is carried in a Context value rather than behind hash.Hash:
// Update returns a new Context and leaves its receiver usable, so two
// computations can branch from a shared prefix without copying anything by
// hand. Writer adapts a Context to io.Writer for streaming callers.
package sha512

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
)

const (
	// Size is the size, in bytes, of a SHA-512 digest.
	Size = 64

	// BlockSize is the block size, in bytes, of SHA-512 and all
	// SHA-512/t variants.
	BlockSize = 128
)

// ErrInvalidVariant is returned by NewT for a truncation parameter outside
// the range FIPS 180-4 defines, or for the reserved value 384.
var ErrInvalidVariant = errors.New("sha512: invalid truncated variant")

// Digest is a full 512-bit hash output. Truncated variants also produce 64
// bytes here; callers needing the standard shorter output keep the leading
// ceil(t/8) bytes, or use SumT which does it for them.
type Digest [Size]byte

// Hex returns the lowercase hexadecimal rendering of the digest.
func (d Digest) Hex() string { return hex.EncodeToString(d[:]) }

func (d Digest) String() string { return d.Hex() }

// Context holds incremental hashing state: the eight chaining words, up to
// one block of buffered input, and the 128-bit message length in bytes.
// The zero Context is not usable; obtain one from New or NewT.
//
// Context has value semantics. Every Update returns a fresh value and the
// receiver stays valid, so contexts may be stored, branched, and finalized
// repeatedly. Distinct values never share state, which also makes them safe
// to advance from separate goroutines.
type Context struct {
	h      [8]uint64
	x      [BlockSize]byte
	nx     int
	lo, hi uint64
}

// New returns a Context initialized with the standard SHA-512 initial hash
// values.
func New() Context {
	return Context{h: iv512}
}

// NewT returns a Context initialized for SHA-512/t per FIPS 180-4 section
// 6.7. The initial values for t=224 and t=256 are precomputed; any other
// valid t is derived at call time by hashing the string "SHA-512/t" under
// SHA-512 seeded with the xor-flipped standard constants.
//
// t must be positive, at most 512, and not 384 (reserved for SHA-384);
// anything else fails with ErrInvalidVariant.
func NewT(t int) (Context, error) {
	if t <= 0 || t > 512 || t == 384 {
		return Context{}, fmt.Errorf("SHA-512/%d: %w", t, ErrInvalidVariant)
	}
	switch t {
	case 224:
		return Context{h: iv512_224}, nil
	case 256:
		return Context{h: iv512_256}, nil
	}
	return Context{h: deriveIV(t)}, nil
}

// Update returns a Context reflecting the message hashed so far followed by
// p. Complete 128-byte blocks are compressed immediately; any tail is
// buffered. Updating with no data returns an equivalent Context.
func (c Context) Update(p []byte) Context {
	c.addLen(uint64(len(p)))
	if c.nx > 0 {
		n := copy(c.x[c.nx:], p)
		c.nx += n
		if c.nx == BlockSize {
			blocks(&c.h, c.x[:])
			c.nx = 0
		}
		p = p[n:]
	}
	if len(p) >= BlockSize {
		n := len(p) &^ (BlockSize - 1)
		blocks(&c.h, p[:n])
		p = p[n:]
	}
	if len(p) > 0 {
		c.nx = copy(c.x[:], p)
	}
	return c
}

// addLen advances the 128-bit byte counter with carry.
func (c *Context) addLen(n uint64) {
	lo := c.lo + n
	if lo < c.lo {
		c.hi++
	}
	c.lo = lo
}

// Finalize appends the standard padding (0x80, zeros to 112 mod 128, then
// the 128-bit big-endian bit length of the unpadded message), compresses the
// final block or two, and serializes the chaining words big-endian. It is a
// pure function of the receiver; the caller's Context can keep accepting
// updates afterwards.
func (c Context) Finalize() Digest {
	lo, hi := c.lo, c.hi
	var tmp [BlockSize]byte
	tmp[0] = 0x80
	if rem := lo % BlockSize; rem < 112 {
		c = c.Update(tmp[:112-rem])
	} else {
		c = c.Update(tmp[:BlockSize+112-rem])
	}

	// Length in bits across the two halves.
	binary.BigEndian.PutUint64(tmp[0:8], hi<<3|lo>>61)
	binary.BigEndian.PutUint64(tmp[8:16], lo<<3)
	c = c.Update(tmp[0:16])

	var d Digest
	for i, w := range c.h {
		binary.BigEndian.PutUint64(d[i*8:], w)
	}
	return d
}

// Sum returns the SHA-512 digest of data.
func Sum(data []byte) Digest {
	return New().Update(data).Finalize()
}

// SumChunks returns the SHA-512 digest of the concatenation of chunks. How
// the message is split across chunks never affects the digest; SumChunks and
// Sum agree for any partition of the same bytes.
func SumChunks(chunks [][]byte) Digest {
	c := New()
	for _, chunk := range chunks {
		c = c.Update(chunk)
	}
	return c.Finalize()
}

// SumT returns the SHA-512/t digest of data truncated to the standard
// ceil(t/8) bytes. It fails with ErrInvalidVariant exactly when NewT does.
func SumT(t int, data []byte) ([]byte, error) {
	c, err := NewT(t)
	if err != nil {
		return nil, err
	}
	d := c.Update(data).Finalize()
	out := make([]byte, (t+7)/8)
	copy(out, d[:])
	return out, nil
}
