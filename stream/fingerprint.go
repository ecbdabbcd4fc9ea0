package stream

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// elementSeparator keeps ["ab" "c"] and ["a" "bc"] from hashing alike.
const elementSeparator = "\x1f"

// Fingerprint hashes the rendered elements of a finite stream into a 64-bit
// content digest. Two streams fingerprint equally iff their elements render
// equally in the same order. Like Collect, Fingerprint consumes the whole
// stream and never returns on an infinite one.
func Fingerprint[T any](s Stream[T]) uint64 {
	digest := xxhash.New()
	for !IsEmpty(s) {
		fmt.Fprintf(digest, "%v%s", Head(s), elementSeparator)
		s = Tail(s)
	}
	return digest.Sum64()
}
