package ports

import "check-compromised/internal/types"

type InstalledListPort interface {
	ReadInstalled(path string) ([]types.InstalledPackage, error)
}
