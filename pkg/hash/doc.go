// Package hash provides short, stable fingerprints for strings.
//
// argdump prints a fingerprint of the rendered flag store so that two
// invocations can be compared at a glance: the same flags and values in
// the same order always give the same fingerprint.
//
// The fingerprint is the first 8 characters of MD5(s). It identifies, it
// does not protect.
//
// Example usage:
//
//	fp := hash.Fingerprint(store.String())
//	// Returns: "a1b2c3d4"
package hash
