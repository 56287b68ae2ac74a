package scan

import (
	"encoding/json"
	"os"
	"time"

	"github.com/trendsearth/stacgen/pkg/constants"
	"github.com/trendsearth/stacgen/pkg/logging"
)

// Summary property keys copied from every Trends.Earth task summary.
var commonSummaryKeys = []string{
	"id", "status", "start_date", "end_date", "progress", "task_name",
}

// summaryDateLayouts are the timestamp formats Trends.Earth has written
// into task summaries over the years.
var summaryDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// readSummary reads and parses a task summary file. A missing file yields a
// nil map; a malformed file is logged and likewise treated as absent.
func readSummary(path string) map[string]any {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logging.Warn().Str("path", path).Msg("Summary file does not exist")
			return nil
		}
		logging.Error().Err(err).Str("path", path).Msg("Failed to read summary file")
		return nil
	}

	var summary map[string]any
	if err := json.Unmarshal(data, &summary); err != nil {
		logging.Error().Err(err).Str("path", path).Msg("Failed to parse summary JSON")
		return nil
	}
	return summary
}

// extractProperties maps a parsed summary to STAC item properties: the common
// task fields, the script version, the area of interest, and the
// kind-specific summary payload.
func extractProperties(summary map[string]any, kind Kind) map[string]any {
	if summary == nil {
		return map[string]any{}
	}

	props := make(map[string]any, len(commonSummaryKeys)+3)
	for _, key := range commonSummaryKeys {
		props[key] = summary[key]
	}
	props["script_version"] = dig(summary, "script", "version")
	props["area_of_interest"] = dig(summary, "local_context", "area_of_interest_name")
	if kind.SummaryKey != "" {
		props[kind.SummaryKey] = dig(summary, kind.SummaryPath...)
	}
	return props
}

// dig walks nested JSON objects along the given key path.
func dig(obj map[string]any, path ...string) any {
	var current any = obj
	for _, key := range path {
		m, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current = m[key]
	}
	return current
}

// summaryDatetime derives the nominal item timestamp from a summary's
// end_date, falling back to start_date and then to the temporal floor so
// that regeneration over unchanged input stays deterministic.
func summaryDatetime(props map[string]any) time.Time {
	for _, key := range []string{"end_date", "start_date"} {
		s, ok := props[key].(string)
		if !ok || s == "" {
			continue
		}
		for _, layout := range summaryDateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t.UTC()
			}
		}
		logging.Warn().Str(key, s).Msg("Unparseable summary date")
	}
	return constants.TemporalFloor
}
