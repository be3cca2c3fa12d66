package sanitizer

func NormalizeStringSlice(items []string, normalizer func(string) string) []string {
	if len(items) == 0 {
		return []string{}
	}

	seen := make(map[string]bool)
	result := make([]string, 0, len(items))

	for _, item := range items {
		normalized := normalizer(item)

		if normalized == "" {
			continue
		}

		if seen[normalized] {
			continue
		}

		seen[normalized] = true
		result = append(result, normalized)
	}

	return result
}

// NormalizeItems cleans the included/excluded lists of a tour. A nil list
// stays nil so an omitted field is stored as absent.
func NormalizeItems(items []string) []string {
	if items == nil {
		return nil
	}
	return NormalizeStringSlice(items, TrimAndNormalize)
}
