package core

import (
	"check-compromised/internal/shared"
	"check-compromised/internal/types"
)

// CompromisedSet answers "is name@version known bad?". Exact keys are
// always checked first; for pip and deb a miss falls back to comparing
// the installed version against every compromised version of that name.
type CompromisedSet struct {
	ecosystem types.Ecosystem
	keys      map[string]struct{}
	versions  map[string][]string
	cache     *versionCache
}

// NewCompromisedSet collapses entries into a lookup set. Duplicate entries
// are harmless.
func NewCompromisedSet(entries []types.CompromisedEntry, ecosystem types.Ecosystem) *CompromisedSet {
	if ecosystem == "" {
		ecosystem = types.EcosystemNpm
	}
	set := &CompromisedSet{
		ecosystem: ecosystem,
		keys:      make(map[string]struct{}, len(entries)),
		versions:  map[string][]string{},
		cache:     newVersionCache(ecosystem),
	}
	for _, entry := range entries {
		key := shared.Key(entry.Name, entry.Version)
		if _, seen := set.keys[key]; seen {
			continue
		}
		set.keys[key] = struct{}{}
		if ecosystem != types.EcosystemNpm {
			name := canonicalName(ecosystem, entry.Name)
			set.versions[name] = append(set.versions[name], entry.Version)
		}
	}
	return set
}

// Len returns the number of distinct name@version keys.
func (s *CompromisedSet) Len() int {
	return len(s.keys)
}

func (s *CompromisedSet) Contains(name string, version string) bool {
	if _, ok := s.keys[shared.Key(name, version)]; ok {
		return true
	}
	if s.ecosystem == types.EcosystemNpm {
		return false
	}
	for _, candidate := range s.versions[canonicalName(s.ecosystem, name)] {
		if s.cache.equal(candidate, version) {
			return true
		}
	}
	return false
}
