package state

import "fmt"

// wrapField annotates a lower-level codec error with the state field
// it occurred in, mirroring the jam package's own error wrapping so a
// failure trace reads consistently across both layers.
func wrapField(field string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("state: field %q: %w", field, err)
}

// ErrUnknownDiscriminator is returned when a key-value pair's
// discriminator byte does not belong to the closed set of 19 fields
// (spec §7).
type ErrUnknownDiscriminator struct {
	Discriminator byte
}

func (e *ErrUnknownDiscriminator) Error() string {
	return fmt.Sprintf("state: unknown discriminator 0x%02x", e.Discriminator)
}

// ErrDuplicateDiscriminator is returned when the same discriminator
// appears twice in one key-value set (spec §7).
type ErrDuplicateDiscriminator struct {
	Discriminator byte
}

func (e *ErrDuplicateDiscriminator) Error() string {
	return fmt.Sprintf("state: duplicate discriminator 0x%02x", e.Discriminator)
}
