package lectio

import "context"

// Setting is a single entry in the flat key-value preference store. Values
// are opaque strings; interpretation belongs to the caller.
type Setting struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Validate returns an error if the setting contains invalid fields.
// Validation errors return EINVALID error code.
func (s *Setting) Validate() error {
	if s.Key == "" {
		return Errorf(EINVALID, "Key required.")
	}
	return nil
}

// SettingService represents a service for managing user preferences.
// Writes are last-writer-wins whole-value replacements.
type SettingService interface {
	// Setting returns the value stored under key. Returns ENOTFOUND if the
	// key has never been set.
	Setting(ctx context.Context, key string) (string, error)

	// SetSetting stores value under key, replacing any previous value.
	SetSetting(ctx context.Context, key, value string) error

	// DeleteSetting removes key. Deleting an absent key is a no-op.
	DeleteSetting(ctx context.Context, key string) error
}
