package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"check-compromised/internal/shared"
	"check-compromised/internal/types"
)

func installed(name string, version string) types.InstalledPackage {
	return types.InstalledPackage{
		Name:    name,
		Version: version,
		Raw:     `"name": "` + name + `"` + "\n" + `"version": "` + version + `"`,
	}
}

func TestMatch(t *testing.T) {
	compromised := []types.CompromisedEntry{
		{Name: "left-pad", Version: "1.3.0"},
		{Name: "chalk", Version: "5.6.1"},
		{Name: "debug", Version: "4.4.2"},
	}
	tests := []struct {
		name      string
		installed []types.InstalledPackage
		want      []types.InstalledPackage
	}{
		{
			name:      "no installed packages",
			installed: nil,
			want:      nil,
		},
		{
			name:      "no intersection",
			installed: []types.InstalledPackage{installed("left-pad", "1.2.0"), installed("chalk", "5.6.0")},
			want:      nil,
		},
		{
			name: "scan order preserved",
			installed: []types.InstalledPackage{
				installed("debug", "4.4.2"),
				installed("express", "4.19.2"),
				installed("left-pad", "1.3.0"),
			},
			want: []types.InstalledPackage{installed("debug", "4.4.2"), installed("left-pad", "1.3.0")},
		},
		{
			name: "same package installed twice is reported twice",
			installed: []types.InstalledPackage{
				installed("chalk", "5.6.1"),
				installed("chalk", "5.6.1"),
			},
			want: []types.InstalledPackage{installed("chalk", "5.6.1"), installed("chalk", "5.6.1")},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := NewCompromisedSet(compromised, types.EcosystemNpm)
			got := Match(set, tt.installed)
			if diff := cmp.Diff(tt.want, got.Matches); diff != "" {
				t.Fatalf("unexpected matches (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMatchEqualsFilteredInventory(t *testing.T) {
	compromised := []types.CompromisedEntry{
		{Name: "a", Version: "1"},
		{Name: "c", Version: "3"},
	}
	keys := map[string]bool{}
	for _, entry := range compromised {
		keys[shared.Key(entry.Name, entry.Version)] = true
	}
	inventory := []types.InstalledPackage{
		installed("a", "1"), installed("b", "2"), installed("c", "3"),
		installed("a", "2"), installed("c", "3"),
	}

	var want []types.InstalledPackage
	for _, pkg := range inventory {
		if keys[shared.Key(pkg.Name, pkg.Version)] {
			want = append(want, pkg)
		}
	}

	got := Match(NewCompromisedSet(compromised, types.EcosystemNpm), inventory)
	if diff := cmp.Diff(want, got.Matches); diff != "" {
		t.Fatalf("unexpected matches (-want +got):\n%s", diff)
	}
}

func TestMatchIsIdempotent(t *testing.T) {
	set := NewCompromisedSet([]types.CompromisedEntry{{Name: "left-pad", Version: "1.3.0"}}, types.EcosystemNpm)
	inventory := []types.InstalledPackage{installed("left-pad", "1.3.0"), installed("chalk", "5.6.1")}

	first := Match(set, inventory)
	second := Match(set, inventory)
	assert.Equal(t, first, second)
}
