package adapters

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"check-compromised/internal/ports"
	"check-compromised/internal/types"
)

var (
	lineSplit      = regexp.MustCompile(`\r?\n`)
	namePattern    = regexp.MustCompile(`"name":\s*"([^"]+)"`)
	versionPattern = regexp.MustCompile(`"version":\s*"([^"]+)"`)
)

// ParseInventoryFormat maps a configuration value onto an InventoryFormat.
// An empty value selects the paired-line format.
func ParseInventoryFormat(value string) (types.InventoryFormat, error) {
	switch types.InventoryFormat(strings.ToLower(strings.TrimSpace(value))) {
	case "", types.InventoryFormatPairs:
		return types.InventoryFormatPairs, nil
	case types.InventoryFormatJSONL:
		return types.InventoryFormatJSONL, nil
	default:
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported inventory format %q (want pairs or jsonl)", value))
	}
}

type InstalledFileAdapter struct {
	format types.InventoryFormat
}

func NewInstalledFileAdapter(format types.InventoryFormat) InstalledFileAdapter {
	if format == "" {
		format = types.InventoryFormatPairs
	}
	return InstalledFileAdapter{format: format}
}

func (a InstalledFileAdapter) ReadInstalled(path string) ([]types.InstalledPackage, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, readError("installed package list", path, err)
	}
	lines := lineSplit.Split(string(content), -1)
	if a.format == types.InventoryFormatJSONL {
		return parseJSONLines(lines), nil
	}
	return parseLinePairs(lines), nil
}

// parseLinePairs reads the inventory two lines at a time: a "name" line
// followed by a "version" line. Pairs that do not match, including a
// trailing odd line, are skipped.
func parseLinePairs(lines []string) []types.InstalledPackage {
	var installed []types.InstalledPackage
	skipped := 0
	for i := 0; i < len(lines); i += 2 {
		if i+1 >= len(lines) {
			if strings.TrimSpace(lines[i]) != "" {
				skipped++
			}
			break
		}
		nameMatch := namePattern.FindStringSubmatch(lines[i])
		versionMatch := versionPattern.FindStringSubmatch(lines[i+1])
		if nameMatch == nil || versionMatch == nil {
			if strings.TrimSpace(lines[i]) != "" || strings.TrimSpace(lines[i+1]) != "" {
				skipped++
			}
			continue
		}
		installed = append(installed, types.InstalledPackage{
			Name:    nameMatch[1],
			Version: versionMatch[1],
			Raw:     lines[i] + "\n" + lines[i+1],
		})
	}
	log.Debug().
		Int("packages", len(installed)).
		Int("skipped", skipped).
		Msg("installed package pairs parsed")
	return installed
}

type inventoryRecord struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

func parseJSONLines(lines []string) []types.InstalledPackage {
	var installed []types.InstalledPackage
	skipped := 0
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		var record inventoryRecord
		if err := json.Unmarshal([]byte(line), &record); err != nil || record.Name == "" || record.Version == "" {
			skipped++
			continue
		}
		installed = append(installed, types.InstalledPackage{
			Name:    record.Name,
			Version: record.Version,
			Raw:     line,
		})
	}
	log.Debug().
		Int("packages", len(installed)).
		Int("skipped", skipped).
		Msg("installed package records parsed")
	return installed
}

var _ ports.InstalledListPort = InstalledFileAdapter{}
