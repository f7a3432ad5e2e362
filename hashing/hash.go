// Package hashing derives 64-bit values, such as random seeds, from arbitrary data.
package hashing

import (
	"crypto/sha256"
	"encoding/binary"
	"hash"
	"hash/fnv"
	"strings"

	"github.com/OneOfOne/xxhash"
	"github.com/spaolacci/murmur3"

	"github.com/ARM-software/golang-folds/commonerrors"
)

const (
	HashXXHash = "xxhash" // https://github.com/OneOfOne/xxhash
	HashMurmur = "murmur"
	HashFNV    = "fnv"
	HashSha256 = "sha256"
)

var algorithms = map[string]func() hash.Hash{
	HashXXHash: func() hash.Hash { return xxhash.New64() },
	HashMurmur: func() hash.Hash { return murmur3.New64() },
	HashFNV:    func() hash.Hash { return fnv.New64a() },
	HashSha256: sha256.New,
}

type hashingAlgo struct {
	newHash func() hash.Hash
	htype   string
}

// Sum64 returns the first 8 bytes of the digest of data, read as a big-endian integer. For 64-bit
// algorithms, this is the hash itself.
func (h *hashingAlgo) Sum64(data []byte) uint64 {
	digest := h.newHash()
	_, _ = digest.Write(data)
	return binary.BigEndian.Uint64(digest.Sum(nil)[:8])
}

func (h *hashingAlgo) GetType() string {
	return h.htype
}

// SupportedAlgorithms lists the algorithms NewHashingAlgorithm accepts.
func SupportedAlgorithms() []string {
	return []string{HashXXHash, HashMurmur, HashFNV, HashSha256}
}

// NewHashingAlgorithm returns the hashing algorithm of type htype (case insensitive).
func NewHashingAlgorithm(htype string) (IHash, error) {
	normalised := strings.ToLower(strings.TrimSpace(htype))
	newHash, found := algorithms[normalised]
	if !found {
		return nil, commonerrors.Newf(commonerrors.ErrUnsupported, "hashing algorithm %q", htype)
	}
	return &hashingAlgo{
		newHash: newHash,
		htype:   normalised,
	}, nil
}

// SeedFromLabel hashes label into a seed using the algorithm htype.
func SeedFromLabel(htype, label string) (uint64, error) {
	hasher, err := NewHashingAlgorithm(htype)
	if err != nil {
		return 0, err
	}
	return hasher.Sum64([]byte(label)), nil
}
