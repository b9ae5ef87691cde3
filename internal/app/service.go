package app

import (
	"io"
	"os"

	"check-compromised/internal/adapters"
	"check-compromised/internal/ports"
)

// Service runs the compromised-package check. Any nil port falls back to
// the file adapter; Enumerator and Installed are built from the
// CheckRequest.
type Service struct {
	Enumerator  ports.EnumeratorPort
	Compromised ports.CompromisedListPort
	Installed   ports.InstalledListPort
	Cleaner     ports.TransientFilePort
	Reporter    ports.ReportPort
	Out         io.Writer
	ErrOut      io.Writer
}

func NewService() Service {
	return Service{
		Compromised: adapters.NewCompromisedFileAdapter(),
		Cleaner:     adapters.NewTransientFileAdapter(),
		Reporter:    adapters.NewTextReportAdapter(),
		Out:         os.Stdout,
		ErrOut:      os.Stderr,
	}
}
