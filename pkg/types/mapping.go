package types

import "sort"

// ProjectNameVariable is injected into every instantiation mapping
const ProjectNameVariable = "PROJECT_NAME"

// Mapping holds substitution variables, name to value.
//
// A Mapping is mutated in place while substituting: answers to prompts for
// unknown variables are written back so later lookups reuse them.
type Mapping map[string]string

// Clone returns an independent copy of m. A nil mapping clones to an empty one.
func (m Mapping) Clone() Mapping {
	out := make(Mapping, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Keys returns the variable names in sorted order
func (m Mapping) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
