package utils

import "fmt"

// EnumValidator builds an ent string-field validator that accepts only the
// given values. Schemas use it for status and method columns, whose value
// sets are closed.
func EnumValidator(allowed ...string) func(string) error {
	set := make(map[string]struct{}, len(allowed))
	for _, v := range allowed {
		set[v] = struct{}{}
	}
	return func(s string) error {
		if _, ok := set[s]; !ok {
			return fmt.Errorf("value %q not in %v", s, allowed)
		}
		return nil
	}
}
