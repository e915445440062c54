package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given string. Used to derive stable
// pattern identifiers from human-readable names.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Digest computes the xxHash64 of a raw byte window. Carried in frame status
// events so consumers can detect unchanged windows while scrubbing.
func Digest(buf []byte) uint64 {
	return xxhash.Sum64(buf)
}
