package core

import "check-compromised/internal/types"

// Match returns the installed packages found in set, preserving the scan
// order of installed.
func Match(set *CompromisedSet, installed []types.InstalledPackage) types.MatchResult {
	result := types.MatchResult{}
	for _, pkg := range installed {
		if set.Contains(pkg.Name, pkg.Version) {
			result.Matches = append(result.Matches, pkg)
		}
	}
	return result
}
