// Package sha256 implements the SHA-256 hash algorithm defined in FIPS 180-4.
package sha256

import (
	"encoding/binary"
	"hash"
)

// Size is the length of a SHA-256 digest in bytes.
const Size = 32

// BlockSize is the SHA-256 block size in bytes.
const BlockSize = 64

const chunk = BlockSize

// Initial hash value, FIPS 180-4 section 5.3.3.
const (
	init0 = 0x6a09e667
	init1 = 0xbb67ae85
	init2 = 0x3c6ef372
	init3 = 0xa54ff53a
	init4 = 0x510e527f
	init5 = 0x9b05688c
	init6 = 0x1f83d9ab
	init7 = 0x5be0cd19
)

// digest is the partial evaluation of one checksum: the working hash,
// bytes buffered short of a full block, and the total message length,
// which is folded into the padding at finalization.
type digest struct {
	h   [8]uint32
	x   [chunk]byte
	nx  int
	len uint64
}

// New returns a new hash.Hash computing the SHA-256 checksum.
func New() hash.Hash {
	d := new(digest)
	d.Reset()
	return d
}

func (d *digest) Reset() {
	d.h = [8]uint32{init0, init1, init2, init3, init4, init5, init6, init7}
	d.nx = 0
	d.len = 0
}

func (d *digest) Size() int { return Size }

func (d *digest) BlockSize() int { return BlockSize }

func (d *digest) Write(p []byte) (n int, err error) {
	n = len(p)
	d.len += uint64(n)
	if d.nx > 0 {
		c := copy(d.x[d.nx:], p)
		d.nx += c
		if d.nx == chunk {
			block(d, d.x[:])
			d.nx = 0
		}
		p = p[c:]
	}
	if len(p) >= chunk {
		full := len(p) &^ (chunk - 1)
		block(d, p[:full])
		p = p[full:]
	}
	if len(p) > 0 {
		d.nx = copy(d.x[:], p)
	}
	return n, nil
}

// Sum appends the current checksum to in. The digest state is copied
// first, so the caller may keep writing and summing.
func (d *digest) Sum(in []byte) []byte {
	d0 := *d
	sum := d0.checkSum()
	return append(in, sum[:]...)
}

// checkSum pads the pending message and produces the final digest.
// Padding is a single 0x80 byte, zeros until the length is 56 mod 64,
// then the message length in bits as a big-endian 64-bit integer.
func (d *digest) checkSum() [Size]byte {
	msgLen := d.len
	var pad [chunk + 8]byte
	pad[0] = 0x80
	padLen := 56 - int(msgLen%chunk)
	if padLen <= 0 {
		padLen += chunk
	}
	binary.BigEndian.PutUint64(pad[padLen:], msgLen<<3)
	_, _ = d.Write(pad[:padLen+8])

	var out [Size]byte
	for i, w := range d.h {
		binary.BigEndian.PutUint32(out[i*4:], w)
	}
	return out
}

// Sum256 returns the SHA-256 checksum of data.
func Sum256(data []byte) [Size]byte {
	var d digest
	d.Reset()
	_, _ = d.Write(data)
	return d.checkSum()
}
