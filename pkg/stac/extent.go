package stac

import "time"

// WorldBBox is the fallback spatial extent when items carry no geometry.
var WorldBBox = []float64{-180, -90, 180, 90}

// Extent describes the spatial and temporal coverage of a collection.
type Extent struct {
	Spatial  SpatialExtent  `json:"spatial"`
	Temporal TemporalExtent `json:"temporal"`
}

// SpatialExtent holds one or more bounding boxes. The first bbox covers the
// whole collection; subsequent entries describe sub-extents.
type SpatialExtent struct {
	BBox [][]float64 `json:"bbox" validate:"required,min=1,dive,min=4,max=6"`
}

// TemporalExtent holds one or more closed or half-open datetime intervals.
// A nil endpoint means the interval is open on that side.
type TemporalExtent struct {
	Interval [][]*string `json:"interval" validate:"required,min=1,dive,len=2"`
}

// NewExtent builds an extent from a single bbox and a closed time interval.
func NewExtent(bbox []float64, start, end time.Time) Extent {
	s := FormatDatetime(start)
	e := FormatDatetime(end)
	return Extent{
		Spatial:  SpatialExtent{BBox: [][]float64{bbox}},
		Temporal: TemporalExtent{Interval: [][]*string{{&s, &e}}},
	}
}

// FormatDatetime renders a timestamp the way STAC documents expect:
// RFC 3339 in UTC.
func FormatDatetime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// ParseDatetime parses an RFC 3339 timestamp from a STAC document.
func ParseDatetime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// UnionBBox returns the smallest bbox containing both arguments.
// Either argument may be nil, in which case the other is returned unchanged.
func UnionBBox(a, b []float64) []float64 {
	if len(a) < 4 {
		return b
	}
	if len(b) < 4 {
		return a
	}
	return []float64{
		min(a[0], b[0]),
		min(a[1], b[1]),
		max(a[2], b[2]),
		max(a[3], b[3]),
	}
}

// Contains reports whether the outer bbox fully contains the inner one.
func Contains(outer, inner []float64) bool {
	if len(outer) < 4 || len(inner) < 4 {
		return false
	}
	return outer[0] <= inner[0] && outer[1] <= inner[1] &&
		outer[2] >= inner[2] && outer[3] >= inner[3]
}
