package typedmap

import (
	"time"

	"github.com/spf13/cast"
)

// Source is the read surface a Map wraps: any string-keyed container with a
// comma-ok lookup. Both dictionary strategies in pkg/dict satisfy it when
// instantiated as [string, any], as does any custom type with the same
// method.
type Source interface {
	Lookup(key string) (any, bool)
}

// Map reads loosely typed values out of a Source and coerces them to
// concrete types. Every getter takes a fallback that is returned when the
// key is absent or the stored value cannot be coerced, so reads never fail.
type Map struct {
	src Source
}

// Wrap returns a Map reading from src. It panics if src is nil.
func Wrap(src Source) *Map {
	if src == nil {
		panic("typedmap: source must not be nil")
	}
	return &Map{src: src}
}

// Has reports whether key is present in the underlying source.
func (m *Map) Has(key string) bool {
	_, ok := m.src.Lookup(key)
	return ok
}

// GetString returns the value under key coerced to a string, or fallback.
func (m *Map) GetString(key, fallback string) string {
	return coerce(m, key, fallback, cast.ToStringE)
}

// GetInt returns the value under key coerced to an int, or fallback.
func (m *Map) GetInt(key string, fallback int) int {
	return coerce(m, key, fallback, cast.ToIntE)
}

// GetInt64 returns the value under key coerced to an int64, or fallback.
func (m *Map) GetInt64(key string, fallback int64) int64 {
	return coerce(m, key, fallback, cast.ToInt64E)
}

// GetFloat64 returns the value under key coerced to a float64, or fallback.
func (m *Map) GetFloat64(key string, fallback float64) float64 {
	return coerce(m, key, fallback, cast.ToFloat64E)
}

// GetBool returns the value under key coerced to a bool, or fallback.
// Strings like "true", "1", and "t" coerce to true.
func (m *Map) GetBool(key string, fallback bool) bool {
	return coerce(m, key, fallback, cast.ToBoolE)
}

// GetDuration returns the value under key coerced to a time.Duration, or
// fallback. Strings are parsed in time.ParseDuration notation ("1h30m").
func (m *Map) GetDuration(key string, fallback time.Duration) time.Duration {
	return coerce(m, key, fallback, cast.ToDurationE)
}

// GetTime returns the value under key coerced to a time.Time, or fallback.
func (m *Map) GetTime(key string, fallback time.Time) time.Time {
	return coerce(m, key, fallback, cast.ToTimeE)
}

// GetStringSlice returns the value under key coerced to a []string, or
// fallback.
func (m *Map) GetStringSlice(key string, fallback []string) []string {
	return coerce(m, key, fallback, cast.ToStringSliceE)
}

func coerce[T any](m *Map, key string, fallback T, conv func(any) (T, error)) T {
	v, ok := m.src.Lookup(key)
	if !ok {
		return fallback
	}

	t, err := conv(v)
	if err != nil {
		return fallback
	}
	return t
}
