package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// readError codes a failed input read: NotFound when the file is absent,
// Internal for anything else (permissions, directories).
func readError(what string, path string, err error) error {
	if os.IsNotExist(err) {
		return errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(what + " not found: " + path).
			WithCause(err)
	}
	return errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg("failed to read " + what + " " + path + ": " + err.Error()).
		WithCause(err)
}
