// Package utils holds field helpers shared by the ent schemas.
package utils

import "fmt"

// OneOf returns a string field validator accepting only the listed values.
// The rejected value is named in the error so constraint failures are
// diagnosable from logs alone.
func OneOf(allowed ...string) func(string) error {
	set := make(map[string]struct{}, len(allowed))
	for _, v := range allowed {
		set[v] = struct{}{}
	}
	return func(v string) error {
		if _, ok := set[v]; !ok {
			return fmt.Errorf("value %q is not in the allowed set", v)
		}
		return nil
	}
}
