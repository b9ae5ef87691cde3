package ports

import "context"

// EnumeratorPort produces the installed-package inventory file.
type EnumeratorPort interface {
	// Enumerate runs the enumeration step and leaves its output at
	// outputPath. A non-nil error means the inventory is unusable.
	Enumerate(ctx context.Context, outputPath string) error
}
