package ports

// TransientFilePort removes files that only live for one run.
type TransientFilePort interface {
	Remove(path string) error
}
