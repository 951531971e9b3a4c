// Package prefs reads the game's preference container and handles the
// file plumbing around the decode pipeline: copying the save file out
// of its sandbox and writing decoded documents as JSON.
package prefs

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"howett.net/plist"
)

// containerPath is the preference file location inside a macOS home
// directory. The game runs sandboxed under the tiltingpoint container.
const containerPath = "Library/Containers/com.tiltingpoint.startrek/Data/Library/Preferences/com.tiltingpoint.startrek.plist"

// SavePath returns the save file path under the given home directory.
// The caller resolves home; nothing here consults process identity.
func SavePath(home string) string {
	return filepath.Join(home, filepath.FromSlash(containerPath))
}

// Load reads the property list at path into a raw preference document.
// Binary and XML plists both decode.
func Load(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if _, err := plist.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode plist %s: %w", path, err)
	}
	return doc, nil
}

// Copy writes a byte-for-byte copy of the save file to dst.
func Copy(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// WriteJSON serializes doc to path, keys sorted, indented.
func WriteJSON(path string, doc any) error {
	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
