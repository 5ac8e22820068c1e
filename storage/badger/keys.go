package badger

import (
	"encoding/binary"

	"github.com/poiesic/leadrank/core"
)

// Key prefixes for different data types
const (
	seenRecordPrefix = "seenrec"
)

// makeSeenKey generates a composite key for a delivered identity.
// Format: prefix:profileKey:id
func makeSeenKey(profileKey string, id core.ID) []byte {
	prefix := makeSeenPrefix(profileKey)
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makeSeenPrefix generates the iteration prefix for one profile's entries.
func makeSeenPrefix(profileKey string) []byte {
	return []byte(seenRecordPrefix + ":" + profileKey + ":")
}

// seenIDFromKey extracts the identity key from a composite seen key.
func seenIDFromKey(key []byte) (core.ID, bool) {
	if len(key) < 8 {
		return 0, false
	}
	return core.ID(binary.BigEndian.Uint64(key[len(key)-8:])), true
}
