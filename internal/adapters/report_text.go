package adapters

import (
	"fmt"
	"io"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"check-compromised/internal/ports"
	"check-compromised/internal/shared"
	"check-compromised/internal/types"
)

const (
	NoMatchesMessage = "No compromised packages found."
	MatchesHeader    = "Compromised packages found:"
)

type TextReportAdapter struct{}

func NewTextReportAdapter() TextReportAdapter {
	return TextReportAdapter{}
}

// WriteReport prints either the no-match line or the header followed by a
// "- name@version" bullet, the raw inventory block and a blank line per
// match.
func (a TextReportAdapter) WriteReport(w io.Writer, result types.MatchResult) error {
	var report string
	if result.Empty() {
		report = NoMatchesMessage + "\n"
	} else {
		lines := []string{MatchesHeader, ""}
		for _, pkg := range result.Matches {
			lines = append(lines, "- "+shared.Key(pkg.Name, pkg.Version), pkg.Raw, "")
		}
		report = strings.Join(lines, "\n") + "\n"
	}
	if _, err := fmt.Fprint(w, report); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write report").
			WithCause(err)
	}
	return nil
}

var _ ports.ReportPort = TextReportAdapter{}
