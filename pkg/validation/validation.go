// Package validation provides stateless field validators for search input.
// The functions take a value plus its limits and nothing else, so the same
// rules can be evaluated anywhere a form is checked.
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	AuthorMinLen = 2
	AuthorMaxLen = 100
	TitleMinLen  = 2
	TitleMaxLen  = 200
	LimitMin     = 1
	LimitMax     = 10000
)

// authorPattern accepts letters (including diacritics), spaces, dots,
// hyphens and apostrophes.
var authorPattern = regexp.MustCompile(`^[\p{L}\s.\-']+$`)

// Author validates an author name. Empty input is allowed; the caller
// decides whether at least one search field is present.
func Author(author string) error {
	author = strings.TrimSpace(author)
	if author == "" {
		return nil
	}
	if len([]rune(author)) < AuthorMinLen {
		return fmt.Errorf("author name must be at least %d characters", AuthorMinLen)
	}
	if len([]rune(author)) > AuthorMaxLen {
		return fmt.Errorf("author name must not exceed %d characters", AuthorMaxLen)
	}
	if !authorPattern.MatchString(author) {
		return fmt.Errorf("author name may only contain letters, spaces, dots, hyphens and apostrophes")
	}
	return nil
}

// Title validates a book title. Empty input is allowed.
func Title(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil
	}
	if len([]rune(title)) < TitleMinLen {
		return fmt.Errorf("title must be at least %d characters", TitleMinLen)
	}
	if len([]rune(title)) > TitleMaxLen {
		return fmt.Errorf("title must not exceed %d characters", TitleMaxLen)
	}
	return nil
}

// YearRange validates an optional publication year range.
func YearRange(from, to *int) error {
	if from != nil && to != nil && *from > *to {
		return fmt.Errorf("end year must be greater than or equal to start year")
	}
	return nil
}

// Limit validates a result-count limit. Zero means "use the default"
// and is accepted.
func Limit(limit int) error {
	if limit == 0 {
		return nil
	}
	if limit < LimitMin || limit > LimitMax {
		return fmt.Errorf("result limit must be between %d and %d", LimitMin, LimitMax)
	}
	return nil
}

// HasCriteria reports whether at least one searchable field is present.
func HasCriteria(author, title, language, format string, fromYear, toYear *int) bool {
	if strings.TrimSpace(author) != "" || strings.TrimSpace(title) != "" {
		return true
	}
	return strings.TrimSpace(language) != "" || strings.TrimSpace(format) != "" ||
		fromYear != nil || toYear != nil
}
