package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ml4phys/lhcdata/internal/domain"
)

// FormatDatasetList renders the dataset registry inside a bordered box.
func FormatDatasetList(datasets []domain.Dataset) string {
	headers := []string{"ID", "DESCRIPTION", "ARCHIVE", "TUTORIALS"}
	rows := make([][]string, 0, len(datasets))

	for _, ds := range datasets {
		rows = append(rows, []string{
			strconv.Itoa(ds.ID),
			Bold(ds.Description),
			StyleBlue.Render(ds.Archive),
			Dim(FormatTutorials(ds.Tutorials)),
		})
	}

	table := RenderTable(headers, rows)
	return RenderBox("Datasets", table)
}

// FormatDatasetInfo renders a detail card for one dataset. The last fetch
// record is optional; pass nil when the dataset has never been fetched.
func FormatDatasetInfo(ds domain.Dataset, url string, last *domain.FetchRecord) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("ARCHIVE  "), StyleFg.Render(ds.Archive)))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("URL      "), StyleBlue.Render(url)))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("TUTORIALS"), StyleFg.Render(FormatTutorials(ds.Tutorials))))

	if last != nil {
		fetched := fmt.Sprintf("%s (%d files, %s)",
			HumanTimestamp(last.FetchedAt), last.FileCount, FormatBytes(last.ArchiveBytes))
		b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("FETCHED  "), StyleGreen.Render(fetched)))
		b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("DEST     "), Dim(last.DestDir)))
	} else {
		b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("FETCHED  "), Dim("never")))
	}

	title := fmt.Sprintf("Dataset %d: %s", ds.ID, ds.Description)
	return RenderBox(title, strings.TrimRight(b.String(), "\n"))
}
