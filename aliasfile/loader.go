package aliasfile

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"

	"github.com/poiesic/resolvit/core"
)

// record mirrors one catalog entry in the alias document.
type record struct {
	Name  string   `json:"Name"`
	Alias []string `json:"Alias"`
}

// Parse decodes an alias document of the form
//
//	{"8": {"Name": "Crimson Sky", "Alias": ["红天", "crimson"]}, ...}
//
// into a corpus map. The canonical name is included as an alias when the
// document does not already list it, so an entity is always findable under
// its own name. Entries with no aliases and no name map to an empty list;
// an entity with zero aliases is a valid corpus member.
func Parse(data []byte) (map[core.EntityID][]string, error) {
	var raw map[string]record
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse alias document: %w", err)
	}

	corpus := make(map[core.EntityID][]string, len(raw))
	for id, rec := range raw {
		aliases := make([]string, 0, len(rec.Alias)+1)
		if rec.Name != "" && !slices.Contains(rec.Alias, rec.Name) {
			aliases = append(aliases, rec.Name)
		}
		aliases = append(aliases, rec.Alias...)
		corpus[core.EntityID(id)] = aliases
	}
	return corpus, nil
}

// Load reads and parses an alias document from disk.
func Load(path string) (map[core.EntityID][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read alias document: %w", err)
	}
	return Parse(data)
}

// ParseOverlay decodes an overlay patch document of the form
//
//	{"8": ["new alias", ...], ...}
func ParseOverlay(data []byte) (map[core.EntityID][]string, error) {
	var raw map[string][]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse overlay document: %w", err)
	}

	overlay := make(map[core.EntityID][]string, len(raw))
	for id, aliases := range raw {
		overlay[core.EntityID(id)] = aliases
	}
	return overlay, nil
}

// LoadOverlay reads and parses an overlay patch document from disk.
func LoadOverlay(path string) (map[core.EntityID][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read overlay document: %w", err)
	}
	return ParseOverlay(data)
}
