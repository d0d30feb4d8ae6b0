package checker

import (
	"fmt"
	"regexp"

	"github.com/nomagicln/roundtrip/pkg/method"
)

// CompileExclusion compiles an exclusion pattern so that it must match a
// whole method name. An empty pattern compiles to nil, which excludes
// nothing.
func CompileExclusion(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, nil
	}
	re, err := regexp.Compile(`^(?:` + pattern + `)$`)
	if err != nil {
		return nil, fmt.Errorf("invalid exclusion pattern %q: %w", pattern, err)
	}
	return re, nil
}

// ShouldSkip reports whether both the getter and setter names of tuple
// match pattern.
func ShouldSkip(tuple method.Tuple, pattern *regexp.Regexp) bool {
	if pattern == nil {
		return false
	}
	return pattern.MatchString(tuple.Getter.Name) && pattern.MatchString(tuple.Setter.Name)
}

// Filter drops the tuples ShouldSkip reports, keeping the order of the rest.
func Filter(tuples []method.Tuple, pattern *regexp.Regexp) []method.Tuple {
	kept := make([]method.Tuple, 0, len(tuples))
	for _, tuple := range tuples {
		if !ShouldSkip(tuple, pattern) {
			kept = append(kept, tuple)
		}
	}
	return kept
}
