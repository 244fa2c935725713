package gui

import (
	"encoding/binary"
	"hash/fnv"
)

// ID identifies an element across frames.
//
// Explicit ids are hashed from the caller's string alone, so the same string
// used in two different groups yields the same ID. Such elements are
// indistinguishable to focus navigation and pointer capture; which of them
// receives input is undefined.
type ID uint64

// NullID is the zero ID. No element hashes to it.
const NullID ID = 0

// HashID returns the ID for an explicit string id.
func HashID(id string) ID {
	h := fnv.New64a()
	h.Write([]byte(id))
	return nonNull(ID(h.Sum64()))
}

// childID derives an ID from the parent ID, a salt (content or kind) and
// the element's position among its siblings.
func childID(parent ID, salt string, index int) ID {
	h := fnv.New64a()
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(parent))
	binary.LittleEndian.PutUint64(buf[8:], uint64(index))
	h.Write(buf[:])
	h.Write([]byte(salt))
	return nonNull(ID(h.Sum64()))
}

func nonNull(id ID) ID {
	if id == NullID {
		return 1
	}
	return id
}
