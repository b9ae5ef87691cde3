package adapters

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"check-compromised/internal/ports"
	"check-compromised/internal/types"
)

type CompromisedFileAdapter struct{}

func NewCompromisedFileAdapter() CompromisedFileAdapter {
	return CompromisedFileAdapter{}
}

// LoadCompromised reads a list of {name, version} records. Files ending in
// .yaml or .yml are decoded as YAML, everything else as JSON.
func (a CompromisedFileAdapter) LoadCompromised(path string) ([]types.CompromisedEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, readError("compromised list", path, err)
	}
	var entries []types.CompromisedEntry
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &entries)
	default:
		err = json.Unmarshal(data, &entries)
	}
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse compromised list " + path + ": " + err.Error()).
			WithCause(err)
	}
	return entries, nil
}

var _ ports.CompromisedListPort = CompromisedFileAdapter{}
