package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"check-compromised/internal/ports"
)

type TransientFileAdapter struct{}

func NewTransientFileAdapter() TransientFileAdapter {
	return TransientFileAdapter{}
}

func (a TransientFileAdapter) Remove(path string) error {
	if err := os.Remove(path); err != nil {
		code := errbuilder.CodeInternal
		if os.IsNotExist(err) {
			code = errbuilder.CodeNotFound
		}
		return errbuilder.New().
			WithCode(code).
			WithMsg("could not remove " + path).
			WithCause(err)
	}
	return nil
}

var _ ports.TransientFilePort = TransientFileAdapter{}
