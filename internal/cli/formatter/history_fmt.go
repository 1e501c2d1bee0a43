package formatter

import (
	"strconv"

	"github.com/ml4phys/lhcdata/internal/domain"
)

// FormatHistory renders recorded fetches as a table, newest first.
func FormatHistory(records []*domain.FetchRecord) string {
	if len(records) == 0 {
		return Dim("No fetches recorded yet.")
	}

	headers := []string{"WHEN", "ID", "DESCRIPTION", "FILES", "SIZE", "TOOK", "REF", "DEST"}
	rows := make([][]string, 0, len(records))

	for _, r := range records {
		rows = append(rows, []string{
			StyleFg.Render(HumanTimestamp(r.FetchedAt)),
			strconv.Itoa(r.DatasetID),
			Bold(r.Description),
			strconv.Itoa(r.FileCount),
			FormatBytes(r.ArchiveBytes),
			Dim(FormatDuration(r.Duration)),
			TruncID(r.ID),
			Dim(r.DestDir),
		})
	}

	table := RenderTable(headers, rows)
	return RenderBox("Fetch history", table)
}
