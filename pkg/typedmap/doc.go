// Package typedmap provides typed, fallback-based reads over any string-keyed
// container holding loosely typed values.
//
// Containers that accumulate values as any (request metadata, feature flags,
// job payloads, settings bags) push a type assertion onto every reader.
// typedmap wraps such a container behind the small Source interface and
// exposes getters that coerce with github.com/spf13/cast and fall back
// instead of failing, so call sites stay one-liners.
//
// # Usage
//
// Wrap any Source, for example a dictionary from pkg/dict:
//
//	settings := dict.NewHashDict[string, any]()
//	settings.Set("timeout", "30s")
//	settings.Set("retries", 3)
//	settings.Set("debug", "true")
//
//	m := typedmap.Wrap(settings)
//
//	timeout := m.GetDuration("timeout", 10*time.Second) // 30s
//	retries := m.GetInt("retries", 1)                   // 3
//	debug := m.GetBool("debug", false)                  // true
//	region := m.GetString("region", "eu-west-1")        // fallback
//
// Coercion is lenient in the way cast is: numeric strings satisfy GetInt,
// numbers satisfy GetString, "1" satisfies GetBool. When a value cannot be
// coerced at all, the getter returns the fallback rather than an error:
//
//	settings.Set("retries", "not-a-number")
//	m.GetInt("retries", 1) // 1
//
// # Custom Sources
//
// Any type with a Lookup(key string) (any, bool) method is a Source, so the
// getters also work over ad-hoc adapters:
//
//	type envSource struct{}
//
//	func (envSource) Lookup(key string) (any, bool) {
//		v, ok := os.LookupEnv(key)
//		return v, ok
//	}
//
//	m := typedmap.Wrap(envSource{})
//
// # Concurrency
//
// Map itself is stateless between calls; its safety is that of the wrapped
// Source. Wrapping a container that is not safe for concurrent use does not
// make it safe.
package typedmap
