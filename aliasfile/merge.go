package aliasfile

import (
	"slices"

	"github.com/poiesic/resolvit/core"
)

// Merge applies overlay additions and removals to a base corpus and returns
// a new map; the inputs are never mutated. Additions skip aliases the entity
// already has, removals of absent aliases are no-ops, so merging is
// idempotent. Additions for entity ids missing from the base create the
// entity rather than failing.
func Merge(base, add, remove map[core.EntityID][]string) map[core.EntityID][]string {
	out := make(map[core.EntityID][]string, len(base))
	for id, aliases := range base {
		out[id] = slices.Clone(aliases)
	}

	for id, aliases := range add {
		for _, alias := range aliases {
			if !slices.Contains(out[id], alias) {
				out[id] = append(out[id], alias)
			}
		}
	}

	for id, aliases := range remove {
		if len(out[id]) == 0 {
			continue
		}
		out[id] = slices.DeleteFunc(out[id], func(a string) bool {
			return slices.Contains(aliases, a)
		})
	}

	return out
}

// LoadMerged loads a base alias document and applies the add/remove overlay
// files. Either overlay path may be empty to skip it.
func LoadMerged(basePath, addPath, removePath string) (map[core.EntityID][]string, error) {
	base, err := Load(basePath)
	if err != nil {
		return nil, err
	}

	add := map[core.EntityID][]string{}
	if addPath != "" {
		if add, err = LoadOverlay(addPath); err != nil {
			return nil, err
		}
	}

	remove := map[core.EntityID][]string{}
	if removePath != "" {
		if remove, err = LoadOverlay(removePath); err != nil {
			return nil, err
		}
	}

	return Merge(base, add, remove), nil
}
