package analytics

import (
	"testing"
	"time"
)

func TestBuildGapReportAggregatesTerms(t *testing.T) {
	since := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	logs := []QueryLog{
		{QueryText: "do you have any rust projects", Confidence: 0.3},
		{QueryText: "tell me about rust", Confidence: 0.5},
		{QueryText: "what about kubernetes experience", Confidence: 0.2},
	}

	report := BuildGapReport(logs, 10, since)

	if report.TotalQueries != 10 {
		t.Errorf("expected total of 10, got %d", report.TotalQueries)
	}

	if report.LowConfidence != 3 {
		t.Errorf("expected 3 low-confidence queries, got %d", report.LowConfidence)
	}

	if len(report.Gaps) != 1 {
		t.Fatalf("expected a single recurring gap, got %d: %v", len(report.Gaps), report.Gaps)
	}

	gap := report.Gaps[0]

	if gap.Term != "rust" {
		t.Errorf("expected the recurring term to be rust, got %q", gap.Term)
	}

	if gap.Count != 2 {
		t.Errorf("expected rust counted twice, got %d", gap.Count)
	}

	if gap.AvgConf != 0.4 {
		t.Errorf("expected average confidence 0.4, got %v", gap.AvgConf)
	}

	if len(report.Recommendations) != 1 {
		t.Fatalf("expected one recommendation, got %d", len(report.Recommendations))
	}
}

func TestBuildGapReportIgnoresStopwords(t *testing.T) {
	logs := []QueryLog{
		{QueryText: "tell me about the projects", Confidence: 0.1},
		{QueryText: "what projects do you have", Confidence: 0.1},
	}

	report := BuildGapReport(logs, 2, time.Now())

	if len(report.Gaps) != 0 {
		t.Errorf("expected no gaps from stopword-only queries, got %v", report.Gaps)
	}
}

func TestBuildGapReportCountsTermOncePerQuery(t *testing.T) {
	logs := []QueryLog{
		{QueryText: "rust rust rust", Confidence: 0.1},
		{QueryText: "more rust", Confidence: 0.1},
	}

	report := BuildGapReport(logs, 2, time.Now())

	if len(report.Gaps) != 1 || report.Gaps[0].Count != 2 {
		t.Errorf("expected rust counted once per query, got %v", report.Gaps)
	}
}

func TestBuildGapReportOrdersByFrequency(t *testing.T) {
	logs := []QueryLog{
		{QueryText: "rust experience", Confidence: 0.1},
		{QueryText: "rust services", Confidence: 0.1},
		{QueryText: "rust tooling", Confidence: 0.1},
		{QueryText: "kubernetes deploys", Confidence: 0.1},
		{QueryText: "kubernetes clusters", Confidence: 0.1},
	}

	report := BuildGapReport(logs, 5, time.Now())

	if len(report.Gaps) != 2 {
		t.Fatalf("expected two gaps, got %d", len(report.Gaps))
	}

	if report.Gaps[0].Term != "rust" || report.Gaps[1].Term != "kubernetes" {
		t.Errorf("expected frequency ordering, got %v", report.Gaps)
	}
}
