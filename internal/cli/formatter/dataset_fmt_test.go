package formatter

import (
	"testing"
	"time"

	"github.com/ml4phys/lhcdata/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDatasetList_ShowsAllDatasets(t *testing.T) {
	out := stripANSI(FormatDatasetList(domain.Datasets()))

	assert.Contains(t, out, "DATASETS")
	assert.Contains(t, out, "amplitude regression")
	assert.Contains(t, out, "top tagging")
	assert.Contains(t, out, "anomaly detection")
	assert.Contains(t, out, "event generation")
	assert.Contains(t, out, "toptagging-short.zip")
	assert.Contains(t, out, "[5, 6, 7, 8, 9]")
}

func TestFormatDatasetInfo_NeverFetched(t *testing.T) {
	ds, err := domain.ResolveDataset(2)
	require.NoError(t, err)

	out := stripANSI(FormatDatasetInfo(ds, ds.URL(""), nil))

	assert.Contains(t, out, "DATASET 2: TOP TAGGING")
	assert.Contains(t, out, "toptagging-short.zip")
	assert.Contains(t, out, "https://www.thphys.uni-heidelberg.de/~plehn/data/toptagging-short.zip")
	assert.Contains(t, out, "never")
}

func TestFormatDatasetInfo_WithLastFetch(t *testing.T) {
	ds, err := domain.ResolveDataset(1)
	require.NoError(t, err)

	last := &domain.FetchRecord{
		ID:           "0f47ac10-58cc-4372-a567-0e02b2c3d479",
		DatasetID:    ds.ID,
		Archive:      ds.Archive,
		Description:  ds.Description,
		DestDir:      "/data/tutorials",
		ArchiveBytes: 3 << 20,
		FileCount:    4,
		Duration:     2 * time.Second,
		FetchedAt:    time.Now().Add(-2 * time.Hour),
	}

	out := stripANSI(FormatDatasetInfo(ds, ds.URL(""), last))

	assert.Contains(t, out, "2h ago")
	assert.Contains(t, out, "4 files")
	assert.Contains(t, out, "3.0 MiB")
	assert.Contains(t, out, "/data/tutorials")
	assert.NotContains(t, out, "never")
}
