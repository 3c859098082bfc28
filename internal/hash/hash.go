// Package hash exposes SHA-256 digest computation over strings, byte
// buffers, files, and streamed byte sources.
package hash

import (
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"

	apperrors "hashsum/internal/errors"
	"hashsum/internal/sha256"
)

// Size is the raw digest length in bytes.
const Size = sha256.Size

// ReadChunkSize is the buffer size used when streaming a byte source.
const ReadChunkSize = 256 * 1024

// Engine computes one SHA-256 digest incrementally. An engine is single
// use: once finalized it only serves the cached digest until Reset. A
// single engine must not be mutated from multiple goroutines.
type Engine struct {
	h         hash.Hash
	finalized bool
	sum       [Size]byte
}

// New creates an engine in its initial state.
func New() *Engine {
	return &Engine{h: sha256.New()}
}

// Update appends chunk to the pending message. It fails only when the
// engine has already been finalized.
func (e *Engine) Update(chunk []byte) error {
	if e.finalized {
		return fmt.Errorf("update after finalize: %w", apperrors.ErrFinalized)
	}
	_, _ = e.h.Write(chunk)
	return nil
}

// Finalize pads and processes the pending message and returns the raw
// 32-byte digest. Repeated calls return the same cached digest.
func (e *Engine) Finalize() [Size]byte {
	if !e.finalized {
		e.h.Sum(e.sum[:0])
		e.finalized = true
	}
	return e.sum
}

// FinalizeHex returns the digest as 64 lowercase hex characters.
func (e *Engine) FinalizeHex() string {
	sum := e.Finalize()
	return hex.EncodeToString(sum[:])
}

// Reset returns the engine to its initial state for a new message.
func (e *Engine) Reset() {
	e.h.Reset()
	e.finalized = false
	e.sum = [Size]byte{}
}

// SumBytes returns the hex digest of data.
func SumBytes(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// SumString returns the hex digest of the bytes of s.
func SumString(s string) string {
	return SumBytes([]byte(s))
}

// SumReader streams r through a fresh engine in fixed-size chunks and
// returns the hex digest. A read failure surfaces as ErrIO and no digest
// value is produced.
func SumReader(r io.Reader) (string, error) {
	engine := New()
	buf := make([]byte, ReadChunkSize)
	for {
		n, readErr := r.Read(buf)
		if n > 0 {
			if err := engine.Update(buf[:n]); err != nil {
				return "", err
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return "", fmt.Errorf("read byte source: %w: %w", readErr, apperrors.ErrIO)
		}
	}
	return engine.FinalizeHex(), nil
}

// SumFile hashes the contents of the file at path.
func SumFile(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open input file: %w: %w", err, apperrors.ErrIO)
	}
	defer func() { _ = file.Close() }()

	digest, err := SumReader(file)
	if err != nil {
		return "", fmt.Errorf("hash file %s: %w", path, err)
	}
	return digest, nil
}
