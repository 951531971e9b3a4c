package save

import (
	"encoding/json"
	"fmt"
	"strings"

	"stlsave/compress"
	"stlsave/crypt"
)

// Protocol constants for this one game. Not secrets: every install
// ships the same key and iv.
const (
	gameKey = "K1FjcmVkc2Vhc29u"
	gameIV  = "LH75Qxpyf0prVvImu4gqxg=="

	// comprMarker prefixes slot text that was compressed a second time
	// before encryption.
	comprMarker = "compr-"

	slotCount = 3
)

// Document maps slot index (0..2) to the decoded slot payload, an
// arbitrary JSON tree whose schema belongs to the game.
type Document map[int]any

// SlotError reports a failure while decoding one slot. Stage is the
// pipeline step that failed: "decrypt", "decompress" or "parse".
type SlotError struct {
	Slot  int
	Stage string
	Err   error
}

func (e *SlotError) Error() string {
	return fmt.Sprintf("slot %d: %s: %v", e.Slot, e.Stage, e.Err)
}

func (e *SlotError) Unwrap() error { return e.Err }

// Field returns the preference key holding slot i's ciphertext.
func Field(i int) string {
	return fmt.Sprintf("%d data", i)
}

// Decode turns the raw preference document into a Document.
//
// For each slot: decrypt the base64 blob with the fixed key, strip the
// "compr-" marker and decompress if present, then parse as JSON. The
// order is fixed; the marker only exists on decrypted text. Empty or
// missing slots decode to an empty object, never an error. A populated
// slot that fails any step aborts the decode with a *SlotError.
func Decode(raw map[string]any) (Document, error) {
	doc := make(Document, slotCount)
	for i := 0; i < slotCount; i++ {
		blob, _ := raw[Field(i)].(string)
		if blob == "" {
			doc[i] = map[string]any{}
			continue
		}

		text, err := crypt.Decrypt(blob, gameKey, gameIV)
		if err != nil {
			return nil, &SlotError{Slot: i, Stage: "decrypt", Err: err}
		}
		if strings.HasPrefix(text, comprMarker) {
			if text, err = compress.Decompress(strings.TrimPrefix(text, comprMarker)); err != nil {
				return nil, &SlotError{Slot: i, Stage: "decompress", Err: err}
			}
		}

		var payload any
		if err = json.Unmarshal([]byte(text), &payload); err != nil {
			return nil, &SlotError{Slot: i, Stage: "parse", Err: err}
		}
		doc[i] = payload
	}
	return doc, nil
}
