package ports

import "check-compromised/internal/types"

type CompromisedListPort interface {
	LoadCompromised(path string) ([]types.CompromisedEntry, error)
}
