// Package matching implements the skill-token normalization and the
// relevance scoring used by the job matching engine.
package matching

import "strings"

func isDelimiter(r rune) bool {
	return r == ',' || r == '/' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// Normalize turns a free-text skill string into a set of canonical tokens:
// split on any run of comma, slash or whitespace, lowercased, empties
// dropped, duplicates removed. Order of first occurrence is preserved.
func Normalize(raw string) []string {
	fields := strings.FieldsFunc(raw, isDelimiter)
	seen := make(map[string]struct{}, len(fields))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		token := strings.ToLower(strings.TrimSpace(f))
		if token == "" {
			continue
		}
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		tokens = append(tokens, token)
	}
	return tokens
}

// Score counts the distinct tokens present in both sets. Exact equality
// only: no stemming, no fuzzy matching.
func Score(candidateTokens, jobTokens []string) int {
	if len(candidateTokens) == 0 || len(jobTokens) == 0 {
		return 0
	}

	jobSet := make(map[string]struct{}, len(jobTokens))
	for _, t := range jobTokens {
		jobSet[t] = struct{}{}
	}

	counted := make(map[string]struct{}, len(candidateTokens))
	score := 0
	for _, t := range candidateTokens {
		if _, ok := jobSet[t]; !ok {
			continue
		}
		if _, ok := counted[t]; ok {
			continue
		}
		counted[t] = struct{}{}
		score++
	}
	return score
}
