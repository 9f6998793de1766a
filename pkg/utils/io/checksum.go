package io

import (
	"crypto/md5"
	"encoding/hex"
	"hash"
	"io"
)

// ChecksumReader is a reader which digests bytes passing through it.
type ChecksumReader interface {
	io.Reader

	// Sum returns the digest of bytes read so far.
	Sum() []byte

	// Hex returns Sum as a lowercase hex string.
	Hex() string

	// Size returns the number of bytes read so far.
	Size() int64
}

type md5Reader struct {
	source io.Reader
	md5    hash.Hash
	size   int64
}

func NewMD5Reader(source io.Reader) ChecksumReader {
	return &md5Reader{source: source, md5: md5.New()}
}

func (mr *md5Reader) Read(p []byte) (int, error) {
	n, err := mr.source.Read(p)
	if 0 < n {
		mr.md5.Write(p[:n])
		mr.size += int64(n)
	}
	return n, err
}

func (mr *md5Reader) Sum() []byte {
	return mr.md5.Sum(nil)
}

func (mr *md5Reader) Hex() string {
	return hex.EncodeToString(mr.Sum())
}

func (mr *md5Reader) Size() int64 {
	return mr.size
}
