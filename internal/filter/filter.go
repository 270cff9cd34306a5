// Package filter holds the pure predicate logic shared by every list
// surface: a case-insensitive substring search over designated text
// fields combined with equality matches on any active enum filters.
package filter

import "strings"

// All is the sentinel that disables an enum filter.
const All = "all"

// MatchesSearch reports whether any of the fields contains the search
// term, case-insensitively. An empty term matches everything.
func MatchesSearch(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// MatchesEnum reports whether value equals the selected filter,
// case-insensitively. Empty selection and the "all" sentinel match
// everything.
func MatchesEnum(selected, value string) bool {
	if selected == "" || strings.EqualFold(selected, All) {
		return true
	}
	return strings.EqualFold(selected, value)
}

// MatchesContains reports whether value contains the selection as a
// substring, case-insensitively. Empty selection and the "all"
// sentinel match everything.
func MatchesContains(selected, value string) bool {
	if selected == "" || strings.EqualFold(selected, All) {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(selected))
}

// MatchesAnySearch reports whether the term matches any element of the
// list, used for skill searches.
func MatchesAnySearch(term string, values []string) bool {
	if term == "" {
		return true
	}
	for _, v := range values {
		if MatchesSearch(term, v) {
			return true
		}
	}
	return false
}
