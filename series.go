package birch

import "fmt"

// Record is a single data point. Field values are read through accessors;
// birch never mutates a record and never retains one past the next mount.
type Record map[string]any

// Series is an ordered list of records sharing one color and one legend entry.
type Series []Record

// Normalize coerces caller data into the canonical per-series form. It
// accepts a flat record list (treated as a single series), a list of series,
// or the equivalent shapes built from untyped []any values. Normalization
// happens exactly once per SetData call; everything downstream consumes the
// returned [][]Record shape and never re-inspects the input.
//
// Mixing records and series at the same level is an error, as is any element
// that is neither. nil and empty inputs normalize to an empty, valid dataset.
func Normalize(data any) ([]Series, error) {
	switch v := data.(type) {
	case nil:
		return nil, nil
	case []Series:
		return v, nil
	case Series:
		return []Series{v}, nil
	case []Record:
		return []Series{Series(v)}, nil
	case []map[string]any:
		return []Series{recordSlice(v)}, nil
	case [][]Record:
		out := make([]Series, len(v))
		for i, s := range v {
			out[i] = Series(s)
		}
		return out, nil
	case [][]map[string]any:
		out := make([]Series, len(v))
		for i, s := range v {
			out[i] = recordSlice(s)
		}
		return out, nil
	case []any:
		return normalizeUntyped(v)
	default:
		return nil, fmt.Errorf("birch: unsupported data shape %T", data)
	}
}

// normalizeUntyped resolves a []any whose elements are either all records or
// all series.
func normalizeUntyped(v []any) ([]Series, error) {
	if len(v) == 0 {
		return nil, nil
	}
	records := 0
	seriesN := 0
	for _, el := range v {
		if _, ok := asRecord(el); ok {
			records++
		} else if _, ok := asSeries(el); ok {
			seriesN++
		} else {
			return nil, fmt.Errorf("birch: data element %T is neither a record nor a series", el)
		}
	}
	switch {
	case records == len(v):
		s := make(Series, len(v))
		for i, el := range v {
			s[i], _ = asRecord(el)
		}
		return []Series{s}, nil
	case seriesN == len(v):
		out := make([]Series, len(v))
		for i, el := range v {
			out[i], _ = asSeries(el)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("birch: data mixes records and series at the same level")
	}
}

func recordSlice(v []map[string]any) Series {
	s := make(Series, len(v))
	for i, r := range v {
		s[i] = Record(r)
	}
	return s
}

// asRecord reports whether el is a single record.
func asRecord(el any) (Record, bool) {
	switch r := el.(type) {
	case Record:
		return r, true
	case map[string]any:
		return Record(r), true
	default:
		return nil, false
	}
}

// asSeries reports whether el is a list of records.
func asSeries(el any) (Series, bool) {
	switch s := el.(type) {
	case Series:
		return s, true
	case []Record:
		return Series(s), true
	case []map[string]any:
		return recordSlice(s), true
	case []any:
		out := make(Series, len(s))
		for i, e := range s {
			r, ok := asRecord(e)
			if !ok {
				return nil, false
			}
			out[i] = r
		}
		return out, true
	default:
		return nil, false
	}
}

// countPoints returns the total point count across all series.
func countPoints(series []Series) int {
	n := 0
	for _, s := range series {
		n += len(s)
	}
	return n
}
