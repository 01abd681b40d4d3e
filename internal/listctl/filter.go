package listctl

import "strings"

// FilterAll disables a status or provider gate.
const FilterAll = "all"

// Filter is the pure row-matching function behind every list screen.
// A record is visible when ANY of its searchable fields contains the term
// (case-insensitive), AND the status gate passes, AND the provider gate
// passes. An empty term matches everything. The result is always a subset
// of items, in the original order.
func Filter[T any](items []T, res Resource[T], search, status, provider string) []T {
	term := strings.ToLower(strings.TrimSpace(search))

	out := make([]T, 0, len(items))
	for _, item := range items {
		if !matchesTerm(res, item, term) {
			continue
		}
		if !gatePasses(status, statusOf(res, item)) {
			continue
		}
		if !gatePasses(provider, providerOf(res, item)) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func matchesTerm[T any](res Resource[T], item T, term string) bool {
	if term == "" {
		return true
	}
	if res.SearchText == nil {
		return false
	}
	for _, field := range res.SearchText(item) {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

func gatePasses(filter, value string) bool {
	return filter == "" || filter == FilterAll || filter == value
}

func statusOf[T any](res Resource[T], item T) string {
	if res.Status == nil {
		return ""
	}
	return res.Status(item)
}

func providerOf[T any](res Resource[T], item T) string {
	if res.Provider == nil {
		return ""
	}
	return res.Provider(item)
}
