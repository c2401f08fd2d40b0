package service

import (
	"strings"
)

// ExtractKeywords derives search tokens from seller-facing text. Runs of
// whitespace, commas, hyphens and underscores all act as one separator;
// tokens are lowercased and deduplicated, preserving first-seen order.
func ExtractKeywords(text string) []string {

	if text == "" {
		return nil
	}

	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		switch r {
		case ' ', '\t', '\n', '\r', ',', '-', '_':
			return true
		}
		return false
	})

	seen := make(map[string]struct{}, len(fields))
	keywords := make([]string, 0, len(fields))

	for _, field := range fields {

		word := strings.TrimSpace(field)
		if word == "" {
			continue
		}

		if _, ok := seen[word]; ok {
			continue
		}

		seen[word] = struct{}{}
		keywords = append(keywords, word)
	}

	if len(keywords) == 0 {
		return nil
	}

	return keywords
}

// SeedCatalogKeywords builds the initial keyword set for a new catalog entry
// from its name, brand and category.
func SeedCatalogKeywords(name, brand, category string) []string {

	var parts []string

	if name != "" {
		parts = append(parts, name)
	}

	if brand != "" {
		parts = append(parts, brand)
	}

	if category != "" {
		parts = append(parts, category)
	}

	return ExtractKeywords(strings.Join(parts, " "))
}
