package llm

import (
	"context"
	"sort"
	"sync"
	"time"
)

// CallRecord describes one completed provider call.
type CallRecord struct {
	Purpose      string
	Model        string
	InputTokens  int
	OutputTokens int
	Latency      time.Duration
	Success      bool
	ErrorMessage string
}

// Recorder receives a record for every provider call. Implementations must
// be safe for concurrent use. Recording failures never fail the request.
type Recorder interface {
	Record(CallRecord)
}

// UsageProvider is a decorator that reports every call to a Recorder.
type UsageProvider struct {
	inner Provider
	rec   Recorder
}

// WithUsageTracking wraps a Provider with usage accounting. A nil recorder
// returns the provider unchanged.
func WithUsageTracking(p Provider, rec Recorder) Provider {
	if rec == nil {
		return p
	}
	return &UsageProvider{inner: p, rec: rec}
}

func (u *UsageProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := u.inner.Generate(ctx, req)

	record := CallRecord{
		Purpose: PurposeFrom(ctx),
		Model:   u.inner.ModelID(),
		Latency: time.Since(start),
		Success: err == nil,
	}
	if resp != nil {
		record.Model = resp.Model
		record.InputTokens = resp.Usage.InputTokens
		record.OutputTokens = resp.Usage.OutputTokens
	}
	if err != nil {
		record.ErrorMessage = err.Error()
	}
	u.rec.Record(record)

	return resp, err
}

func (u *UsageProvider) ModelID() string {
	return u.inner.ModelID()
}

// PurposeUsage aggregates call statistics for one purpose label.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	Failures     int
	InputTokens  int
	OutputTokens int
	TotalLatency time.Duration
}

// MemoryRecorder aggregates usage in memory for the lifetime of the
// process. Nothing is persisted; each run starts fresh.
type MemoryRecorder struct {
	mu        sync.Mutex
	byPurpose map[string]*PurposeUsage
	model     string
}

// NewMemoryRecorder creates an empty in-memory usage recorder.
func NewMemoryRecorder() *MemoryRecorder {
	return &MemoryRecorder{byPurpose: make(map[string]*PurposeUsage)}
}

func (r *MemoryRecorder) Record(c CallRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byPurpose[c.Purpose]
	if !ok {
		u = &PurposeUsage{Purpose: c.Purpose}
		r.byPurpose[c.Purpose] = u
	}
	u.Calls++
	if !c.Success {
		u.Failures++
	}
	u.InputTokens += c.InputTokens
	u.OutputTokens += c.OutputTokens
	u.TotalLatency += c.Latency

	if c.Model != "" {
		r.model = c.Model
	}
}

// Snapshot returns aggregated usage sorted by purpose name.
func (r *MemoryRecorder) Snapshot() []PurposeUsage {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]PurposeUsage, 0, len(r.byPurpose))
	for _, u := range r.byPurpose {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Purpose < out[j].Purpose })
	return out
}

// EstimatedCost returns the estimated USD cost of all recorded calls, and
// false when the served model has no known pricing.
func (r *MemoryRecorder) EstimatedCost() (float64, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cost := LookupCost(r.model)
	if cost == nil {
		return 0, false
	}
	var in, out int
	for _, u := range r.byPurpose {
		in += u.InputTokens
		out += u.OutputTokens
	}
	return cost.Cost(in, out), true
}
