package ports

import (
	"io"

	"check-compromised/internal/types"
)

type ReportPort interface {
	WriteReport(w io.Writer, result types.MatchResult) error
}
