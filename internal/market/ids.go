package market

import "github.com/google/uuid"

// SecID identifies a security. IDs are opaque: equality and hashing only,
// never reused, never ordered.
type SecID struct {
	uuid.UUID
}

// AccID identifies an account.
type AccID struct {
	uuid.UUID
}

func NewSecID() SecID {
	return SecID{uuid.New()}
}

func NewAccID() AccID {
	return AccID{uuid.New()}
}

// ParseSecID parses the canonical textual form of a security ID.
func ParseSecID(s string) (SecID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return SecID{}, err
	}
	return SecID{id}, nil
}

// ParseAccID parses the canonical textual form of an account ID.
func ParseAccID(s string) (AccID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return AccID{}, err
	}
	return AccID{id}, nil
}
