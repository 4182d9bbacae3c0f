// Package profile persists named tuning profiles as a single JSON document.
package profile

// BaselineProfileName is the reserved profile that captures the machine's
// initial defaults from ryzenadj --info. It is read-only as far as normal
// save and delete operations are concerned and is hidden from the
// user-facing profile list; only a baseline capture writes it.
const BaselineProfileName = "Initial Default"

// Document is the full on-disk profile store. Selected is either empty or
// the name of an existing profile. Field order matters: encoding/json emits
// struct fields in declaration order, and the file format promises sorted
// keys for stable diffs.
type Document struct {
	Profiles map[string]map[string]any `json:"profiles"`
	Selected string                    `json:"selected"`
}

// StoreError is the single error kind reported for any profile persistence
// failure: I/O, malformed JSON, or validation. Callers treat them all the
// same way — surface the message and abort the operation.
type StoreError struct {
	Message string
	Err     error
}

func (e *StoreError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
