package server

import "github.com/pkg/errors"

// Payload is a queued JSON value kept as its raw encoding, so numbers,
// strings and null round-trip byte for byte. A nil Payload means no value
// was supplied; an explicit JSON null is the four bytes "null".
type Payload []byte

func (p Payload) MarshalJSON() ([]byte, error) {
	if len(p) == 0 {
		return []byte("null"), nil
	}
	return p, nil
}

func (p *Payload) UnmarshalJSON(data []byte) error {
	if p == nil {
		return errors.New("server.Payload: UnmarshalJSON on nil pointer")
	}
	*p = append((*p)[:0], data...)
	return nil
}

// String renders the raw JSON text.
func (p Payload) String() string { return string(p) }
