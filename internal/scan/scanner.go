// Package scan discovers Trends.Earth outputs in a data directory and maps
// them to per-country dataset groupings ready for catalog building.
//
// The expected layout is one subdirectory per country, each containing task
// summary files (<kind>_summary.json) and the task's output files. A file
// belongs to a dataset kind when its name contains the kind's match string.
package scan

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/karrick/godirwalk"

	"github.com/trendsearth/stacgen/pkg/errors"
	"github.com/trendsearth/stacgen/pkg/logging"
)

// Dataset is one country's output of a single kind: the extracted summary
// properties plus the asset files, keyed the way pystac keyed them
// (file name with dots replaced by underscores).
type Dataset struct {
	Kind       Kind
	Properties map[string]any
	Datetime   time.Time

	// Assets maps asset key to the file path relative to the data dir.
	Assets map[string]string
}

// Country is everything discovered under one country directory.
type Country struct {
	Name     string
	Datasets []Dataset
}

// Scan walks the data directory and returns the discovered countries in
// lexicographic order. Countries with no recognized dataset files are
// omitted. An unreadable directory aborts the scan.
func Scan(ctx context.Context, dataDir string, defs Definitions) ([]Country, error) {
	log := logging.Ctx(ctx)

	names, err := godirwalk.ReadDirnames(dataDir, nil)
	if err != nil {
		return nil, errors.WrapIO("read", dataDir, err)
	}
	sort.Strings(names)

	countries := make([]Country, 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		countryPath := filepath.Join(dataDir, name)
		info, err := os.Stat(countryPath)
		if err != nil {
			return nil, errors.WrapIO("stat", countryPath, err)
		}
		if !info.IsDir() {
			continue
		}

		log.Debug().Str("country", name).Msg("Scanning country directory")
		country, err := scanCountry(dataDir, name, defs)
		if err != nil {
			return nil, err
		}
		if len(country.Datasets) > 0 {
			countries = append(countries, country)
		}
	}

	return countries, nil
}

// scanCountry collects the assets and summary properties for every dataset
// kind present under one country directory.
func scanCountry(dataDir, name string, defs Definitions) (Country, error) {
	countryPath := filepath.Join(dataDir, name)

	assets := make(map[string]map[string]string, len(defs.Kinds))
	for _, kind := range defs.Kinds {
		assets[kind.Name] = map[string]string{}
	}

	err := godirwalk.Walk(countryPath, &godirwalk.Options{
		Callback: func(osPathname string, de *godirwalk.Dirent) error {
			if de.IsDir() {
				return nil
			}
			rel, err := filepath.Rel(dataDir, osPathname)
			if err != nil {
				return err
			}
			// First matching kind claims the file; kinds with
			// overlapping match strings do not share assets.
			fileName := de.Name()
			for _, kind := range defs.Kinds {
				if kind.Matches(fileName) {
					assets[kind.Name][assetKey(fileName)] = filepath.ToSlash(rel)
					break
				}
			}
			return nil
		},
		Unsorted: false,
	})
	if err != nil {
		return Country{}, errors.WrapIO("walk", countryPath, err)
	}

	country := Country{Name: name}
	for _, kind := range defs.Kinds {
		if len(assets[kind.Name]) == 0 {
			continue
		}
		summary := readSummary(filepath.Join(countryPath, kind.SummaryFile()))
		props := extractProperties(summary, kind)
		country.Datasets = append(country.Datasets, Dataset{
			Kind:       kind,
			Properties: props,
			Datetime:   summaryDatetime(props),
			Assets:     assets[kind.Name],
		})
	}
	return country, nil
}

// assetKey derives the asset map key from a file name, replacing dots so
// the key stays a safe identifier ("drought.tif" -> "drought_tif").
func assetKey(fileName string) string {
	return strings.ReplaceAll(fileName, ".", "_")
}
