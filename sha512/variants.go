package sha512

import (
	"encoding/binary"
	"strconv"
)

// Standard SHA-512 initial hash values (FIPS 180-4 section 5.3.5).
var iv512 = [8]uint64{
	0x6a09e667f3bcc908, 0xbb67ae8584caa73b,
	0x3c6ef372fe94f82b, 0xa54ff53a5f1d36f1,
	0x510e527fade682d1, 0x9b05688c2b3e6c1f,
	0x1f83d9abfb41bd6b, 0x5be0cd19137e2179,
}

// Precomputed initial values for the two standardized truncated variants
// (FIPS 180-4 sections 5.3.6.1 and 5.3.6.2). Equal to deriveIV(224) and
// deriveIV(256).
var iv512_224 = [8]uint64{
	0x8c3d37c819544da2, 0x73e1996689dcd4d6,
	0x1dfab7ae32ff9c82, 0x679dd514582f9fcf,
	0x0f6d2b697bd44da8, 0x77e36f7304c48942,
	0x3f9d85a86a1d36c8, 0x1112e6ad91d692a1,
}

var iv512_256 = [8]uint64{
	0x22312194fc2bf72c, 0x9f555fa3c84c64c2,
	0x2393b86b6f53b151, 0x963877195940eabd,
	0x96283ee2a88effe3, 0xbe5e1e2553863992,
	0x2b0199fc2c85b8aa, 0x0eb72ddc81c52ca2,
}

// deriveIV computes the SHA-512/t initial hash value: the SHA-512 digest of
// the ASCII string "SHA-512/t", taken under initial values with every word
// xored with 0xa5a5a5a5a5a5a5a5, reinterpreted as eight chaining words.
func deriveIV(t int) [8]uint64 {
	c := Context{h: iv512}
	for i := range c.h {
		c.h[i] ^= 0xa5a5a5a5a5a5a5a5
	}
	d := c.Update([]byte("SHA-512/" + strconv.Itoa(t))).Finalize()

	var h [8]uint64
	for i := range h {
		h[i] = binary.BigEndian.Uint64(d[i*8:])
	}
	return h
}
