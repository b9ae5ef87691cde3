package app

import "check-compromised/internal/types"

// CheckRequest carries every path the check touches. Relative paths are
// resolved against BaseDir, which is also the enumerator's working
// directory.
type CheckRequest struct {
	BaseDir         string
	CompromisedPath string
	InventoryPath   string
	Script          string
	Shell           string
	Ecosystem       string
	Format          string
	FailOnMatch     bool
}

type CheckResult struct {
	InventoryPath    string
	CompromisedCount int
	InstalledCount   int
	Result           types.MatchResult
}
