package model

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"strings"
	"time"
)

// ID is the canonical primary key for stored entities: a 24-character
// lowercase hexadecimal string.
type ID string

const idHexLength = 24

// NewID generates a new identifier from the current unix timestamp
// followed by 8 random bytes.
func NewID() ID {
	var b [12]byte
	binary.BigEndian.PutUint32(b[:4], uint32(time.Now().Unix()))
	_, _ = rand.Read(b[4:])
	return ID(hex.EncodeToString(b[:]))
}

// ParseID validates a raw identifier and normalizes it to lower case.
// Returns ErrInvalidID for anything that is not 24 hex characters.
func ParseID(s string) (ID, error) {
	if len(s) != idHexLength {
		return "", ErrInvalidID
	}
	if _, err := hex.DecodeString(s); err != nil {
		return "", ErrInvalidID
	}
	return ID(strings.ToLower(s)), nil
}

// String returns the identifier as a plain string.
func (id ID) String() string {
	return string(id)
}

// IsZero reports whether the identifier is unset.
func (id ID) IsZero() bool {
	return id == ""
}
