package birch

import "fmt"

// Accessor extracts one numeric value from a record. Accessors must be
// deterministic: the registry and the point index both evaluate them over the
// same data during a redraw and rely on identical results.
type Accessor func(Record) (float64, error)

// Field returns an accessor that reads the named record field. It fails on a
// missing field or a non-numeric value.
func Field(name string) Accessor {
	return func(r Record) (float64, error) {
		v, ok := r[name]
		if !ok {
			return 0, fmt.Errorf("record has no field %q", name)
		}
		f, ok := asFloat(v)
		if !ok {
			return 0, fmt.Errorf("field %q is %T, not numeric", name, v)
		}
		return f, nil
	}
}

// Constant returns an accessor that ignores the record and yields v.
func Constant(v float64) Accessor {
	return func(Record) (float64, error) {
		return v, nil
	}
}

// asFloat coerces the usual numeric types to float64. Anything else
// (strings, bools, nil) is rejected.
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

// DefaultPointRadius is the dot radius used when no size is configured.
const DefaultPointRadius = 3

// sizeAccessor resolves the ScatterConfig.Size field. nil means the default
// constant radius, a string names a record field, and a function is used
// directly.
func sizeAccessor(spec any) (Accessor, error) {
	switch s := spec.(type) {
	case nil:
		return Constant(DefaultPointRadius), nil
	case string:
		return Field(s), nil
	case Accessor:
		return s, nil
	case func(Record) (float64, error):
		return Accessor(s), nil
	case float64:
		return Constant(s), nil
	case int:
		return Constant(float64(s)), nil
	default:
		return nil, fmt.Errorf("birch: unsupported size spec %T (want nil, field name, number, or accessor)", spec)
	}
}
