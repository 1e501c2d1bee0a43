package domain

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultBaseURL is where the tutorial archives are published.
const DefaultBaseURL = "https://www.thphys.uni-heidelberg.de/~plehn/data/"

// ErrUnknownDataset indicates a dataset identifier outside the registry.
var ErrUnknownDataset = errors.New("unknown dataset")

// Dataset is one downloadable tutorial archive.
type Dataset struct {
	ID          int
	Archive     string
	Description string
	Tutorials   []int
}

// Fixed upstream contract: identifiers, archive names, descriptions and
// tutorial numbers match the published course material and must not change.
var datasets = []Dataset{
	{ID: 1, Archive: "tutorial-2-data.zip", Description: "amplitude regression", Tutorials: []int{2, 3, 4}},
	{ID: 2, Archive: "toptagging-short.zip", Description: "top tagging", Tutorials: []int{5, 6, 7, 8, 9}},
	{ID: 3, Archive: "tutorial-10-data.zip", Description: "anomaly detection", Tutorials: []int{10}},
	{ID: 4, Archive: "tutorial-11-data.zip", Description: "event generation", Tutorials: []int{11, 12, 13, 14, 15}},
}

// ResolveDataset looks up a dataset by its numeric identifier.
func ResolveDataset(id int) (Dataset, error) {
	for _, d := range datasets {
		if d.ID == id {
			return d.clone(), nil
		}
	}
	return Dataset{}, fmt.Errorf("%w %d (valid identifiers are 1-%d)", ErrUnknownDataset, id, len(datasets))
}

// Datasets returns the registry in identifier order.
func Datasets() []Dataset {
	out := make([]Dataset, len(datasets))
	for i, d := range datasets {
		out[i] = d.clone()
	}
	return out
}

// clone copies the dataset so callers cannot reach the registry's
// Tutorials backing array through the returned value.
func (d Dataset) clone() Dataset {
	d.Tutorials = append([]int(nil), d.Tutorials...)
	return d
}

// URL joins the archive name onto base. An empty base falls back to
// DefaultBaseURL; a missing trailing slash is tolerated.
func (d Dataset) URL(base string) string {
	if base == "" {
		base = DefaultBaseURL
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + d.Archive
}
