package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMemoryRecorder_AggregatesByPurpose(t *testing.T) {
	rec := NewMemoryRecorder()
	rec.Record(CallRecord{Purpose: "risk-predict", Model: "gpt-4o-mini", InputTokens: 100, OutputTokens: 20, Success: true})
	rec.Record(CallRecord{Purpose: "risk-predict", Model: "gpt-4o-mini", InputTokens: 120, OutputTokens: 30, Success: true})
	rec.Record(CallRecord{Purpose: "guidance", Model: "gpt-4o-mini", InputTokens: 200, OutputTokens: 150, Success: false})

	snap := rec.Snapshot()
	if len(snap) != 2 {
		t.Fatalf("got %d purposes, want 2", len(snap))
	}
	// Snapshot is sorted by purpose name.
	if snap[0].Purpose != "guidance" || snap[1].Purpose != "risk-predict" {
		t.Fatalf("unexpected order: %v", snap)
	}
	if snap[1].Calls != 2 || snap[1].InputTokens != 220 || snap[1].OutputTokens != 50 {
		t.Errorf("risk-predict usage = %+v", snap[1])
	}
	if snap[0].Failures != 1 {
		t.Errorf("guidance failures = %d, want 1", snap[0].Failures)
	}
}

func TestMemoryRecorder_EstimatedCost(t *testing.T) {
	rec := NewMemoryRecorder()
	rec.Record(CallRecord{Purpose: "guidance", Model: "gpt-4o-mini", InputTokens: 1_000_000, OutputTokens: 1_000_000, Success: true})

	cost, ok := rec.EstimatedCost()
	if !ok {
		t.Fatal("expected pricing for gpt-4o-mini")
	}
	want := 0.15 + 0.6
	if cost < want-1e-9 || cost > want+1e-9 {
		t.Errorf("cost = %f, want %f", cost, want)
	}
}

func TestMemoryRecorder_UnknownModelCost(t *testing.T) {
	rec := NewMemoryRecorder()
	rec.Record(CallRecord{Purpose: "guidance", Model: "some-private-model", InputTokens: 10, Success: true})

	if _, ok := rec.EstimatedCost(); ok {
		t.Error("expected no pricing for unknown model")
	}
}

func TestWithUsageTracking_RecordsSuccessAndFailure(t *testing.T) {
	rec := NewMemoryRecorder()
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{}`), Usage: Usage{InputTokens: 10, OutputTokens: 5}},
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
	)
	p := WithUsageTracking(mock, rec)

	ctx := WithPurpose(context.Background(), "risk-predict")
	if _, err := p.Generate(ctx, Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := p.Generate(ctx, Request{}); err == nil {
		t.Fatal("expected error from second call")
	}

	snap := rec.Snapshot()
	if len(snap) != 1 {
		t.Fatalf("got %d purposes, want 1", len(snap))
	}
	u := snap[0]
	if u.Calls != 2 || u.Failures != 1 {
		t.Errorf("calls=%d failures=%d, want 2/1", u.Calls, u.Failures)
	}
	if u.InputTokens != 10 || u.OutputTokens != 5 {
		t.Errorf("tokens = %d/%d, want 10/5", u.InputTokens, u.OutputTokens)
	}
}

func TestWithUsageTracking_NilRecorderPassthrough(t *testing.T) {
	mock := NewMockProvider()
	if p := WithUsageTracking(mock, nil); p != Provider(mock) {
		t.Error("nil recorder should return the provider unchanged")
	}
}
