// Package pagerange parses page selections like "5,6,7" or "5,8-12".
package pagerange

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Parse expands a page specification into a sorted, deduplicated list of
// page numbers. Parts are comma-separated; each part is a single page or
// an inclusive range.
func Parse(spec string) ([]int, error) {
	seen := make(map[int]bool)

	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if start, end, found := strings.Cut(part, "-"); found {
			lo, err := strconv.Atoi(strings.TrimSpace(start))
			if err != nil {
				return nil, fmt.Errorf("invalid page range %q: %w", part, err)
			}
			hi, err := strconv.Atoi(strings.TrimSpace(end))
			if err != nil {
				return nil, fmt.Errorf("invalid page range %q: %w", part, err)
			}
			if hi < lo {
				return nil, fmt.Errorf("invalid page range %q: end before start", part)
			}
			for p := lo; p <= hi; p++ {
				seen[p] = true
			}
			continue
		}

		p, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid page number %q: %w", part, err)
		}
		seen[p] = true
	}

	if len(seen) == 0 {
		return nil, fmt.Errorf("empty page specification %q", spec)
	}

	pages := make([]int, 0, len(seen))
	for p := range seen {
		pages = append(pages, p)
	}
	sort.Ints(pages)
	return pages, nil
}
