package analytics

import (
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"
)

// words too common to signal a content gap
var stopwords = map[string]bool{
	"a": true, "about": true, "an": true, "and": true, "any": true,
	"are": true, "can": true, "do": true, "does": true, "for": true,
	"have": true, "how": true, "i": true, "in": true, "is": true,
	"it": true, "me": true, "of": true, "on": true, "or": true,
	"project": true, "projects": true, "show": true, "tell": true,
	"the": true, "this": true, "to": true, "what": true, "when": true,
	"where": true, "which": true, "who": true, "why": true, "with": true,
	"you": true, "your": true,
}

const minGapCount = 2

// aggregates low-confidence queries into recurring terms the portfolio
// apparently has no content for. Pure over its inputs so it can run on
// any slice of logs.
func BuildGapReport(logs []QueryLog, totalQueries int, since time.Time) *GapReport {
	type bucket struct {
		count   int
		example string
		confSum float64
	}

	buckets := map[string]*bucket{}

	for _, entry := range logs {
		seen := map[string]bool{}

		for _, term := range tokenize(entry.QueryText) {
			if stopwords[term] || len(term) < 3 || seen[term] {
				continue
			}

			seen[term] = true

			b, ok := buckets[term]
			if !ok {
				b = &bucket{example: entry.QueryText}
				buckets[term] = b
			}

			b.count++
			b.confSum += entry.Confidence
		}
	}

	gaps := make([]Gap, 0, len(buckets))

	for term, b := range buckets {
		if b.count < minGapCount {
			continue
		}

		gaps = append(gaps, Gap{
			Term:    term,
			Count:   b.count,
			Example: b.example,
			AvgConf: b.confSum / float64(b.count),
		})
	}

	sort.Slice(gaps, func(i, j int) bool {
		if gaps[i].Count != gaps[j].Count {
			return gaps[i].Count > gaps[j].Count
		}

		return gaps[i].Term < gaps[j].Term
	})

	return &GapReport{
		Since:           since,
		TotalQueries:    totalQueries,
		LowConfidence:   len(logs),
		Gaps:            gaps,
		Recommendations: recommendations(gaps),
	}
}

func recommendations(gaps []Gap) []string {
	recs := make([]string, 0, len(gaps))

	for i, g := range gaps {
		if i >= 5 {
			break
		}

		recs = append(recs, fmt.Sprintf(
			"%d visitors asked about %q with no close match - consider adding a project or description covering it",
			g.Count, g.Term,
		))
	}

	return recs
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}
