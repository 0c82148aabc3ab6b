package utils

import "strings"

// Canonical AT verdicts stored on site records.
const (
	ATStatusPending  = "Pending"
	ATStatusApproved = "Approved"
	ATStatusRejected = "Rejected"
)

// Import sheets arrive with whatever spelling the field teams used; everything
// funnels into the three canonical verdicts before a row is stored.
var atStatusSynonyms = map[string][]string{
	ATStatusApproved: {
		"approved",
		"accepted",
		"done",
		"ok",
		"pass",
		"passed",
	},
	ATStatusRejected: {
		"rejected",
		"fail",
		"failed",
		"not ok",
	},
	ATStatusPending: {
		"pending",
		"wip",
		"in progress",
		"offered",
		"under review",
	},
}

var atStatusAliases = buildATStatusAliasMap()

func buildATStatusAliasMap() map[string]string {
	aliases := make(map[string]string)
	for canonical, synonyms := range atStatusSynonyms {
		aliases[normalizeStatusKey(canonical)] = canonical
		for _, s := range synonyms {
			aliases[normalizeStatusKey(s)] = canonical
		}
	}
	return aliases
}

func normalizeStatusKey(v string) string {
	return strings.ToLower(strings.Join(strings.Fields(v), " "))
}

// NormalizeATStatus maps a free-text AT status onto its canonical verdict.
// Unknown values pass through untouched so nothing is silently lost.
func NormalizeATStatus(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	if canonical, ok := atStatusAliases[normalizeStatusKey(v)]; ok {
		return canonical
	}
	return v
}
