package types

// CompromisedEntry is one known-bad name/version pair.
type CompromisedEntry struct {
	Name    string `json:"name" yaml:"name"`
	Version string `json:"version" yaml:"version"`
}

// InstalledPackage is one package reported by the enumerator. Raw keeps the
// original text block for display in the report.
type InstalledPackage struct {
	Name    string
	Version string
	Raw     string
}

// MatchResult lists the installed packages that are compromised, in the
// order the inventory was scanned.
type MatchResult struct {
	Matches []InstalledPackage
}

func (r MatchResult) Empty() bool {
	return len(r.Matches) == 0
}
