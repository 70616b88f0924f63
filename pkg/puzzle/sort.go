package puzzle

import "sort"

// SortKeyLength is the number of trailing characters used by SortBySuffix.
const SortKeyLength = 8

// SortKey selects how extracted URLs are ordered.
type SortKey string

const (
	// SortBySuffix orders URLs by their last SortKeyLength characters.
	SortBySuffix SortKey = "suffix"
	// SortByFull orders URLs by the whole string.
	SortByFull SortKey = "full"
)

// Key returns the string URLs are compared by under this policy.
// URLs shorter than SortKeyLength are compared whole.
func (k SortKey) Key(url string) string {
	if k == SortByFull || len(url) <= SortKeyLength {
		return url
	}
	return url[len(url)-SortKeyLength:]
}

// SortURLs sorts urls in place in ascending byte order of their key.
// The sort is stable: URLs with equal keys keep their relative order.
func SortURLs(urls []string, key SortKey) {
	sort.SliceStable(urls, func(i, j int) bool {
		return key.Key(urls[i]) < key.Key(urls[j])
	})
}
