package guidance

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/edurisk/internal/llm"
	"github.com/abhisek/edurisk/internal/risk"
)

func TestGenerator_BuildsPlanFromResponse(t *testing.T) {
	resp := json.RawMessage(`{"title":"Turnaround Plan","actions":["See your advisor this week","Study 5 hours daily","Attend every lecture"]}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	g := NewGenerator(mock, DefaultConfig())

	p, err := g.Generate(context.Background(), risk.LevelHigh, sampleWeakAreas())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if p.Title != "Turnaround Plan" {
		t.Errorf("title = %q", p.Title)
	}
	if p.Source != SourceRemote {
		t.Errorf("source = %q, want %q", p.Source, SourceRemote)
	}
	if !strings.Contains(p.Body, "• Study 5 hours daily") {
		t.Errorf("body missing bulleted action:\n%s", p.Body)
	}
}

func TestGenerator_PromptCarriesWeakAreasCriticalFirst(t *testing.T) {
	resp := json.RawMessage(`{"title":"Plan","actions":["a","b","c"]}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	g := NewGenerator(mock, DefaultConfig())

	if _, err := g.Generate(context.Background(), risk.LevelMedium, sampleWeakAreas()); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	msg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(msg, "Risk level: Medium") {
		t.Errorf("prompt missing risk level:\n%s", msg)
	}
	quiz := strings.Index(msg, "Quizzes")
	att := strings.Index(msg, "Attendance")
	if quiz == -1 || att == -1 || quiz > att {
		t.Errorf("prompt should list critical areas first:\n%s", msg)
	}
	if mock.Calls[0].Schema != PlanSchema {
		t.Error("request did not carry the plan schema")
	}
}

func TestGenerator_RejectsEmptyPlan(t *testing.T) {
	resp := json.RawMessage(`{"title":"","actions":[]}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	g := NewGenerator(mock, DefaultConfig())

	if _, err := g.Generate(context.Background(), risk.LevelLow, nil); err == nil {
		t.Fatal("expected error for empty plan")
	}
}

func TestService_TemplateOnlyWithoutProvider(t *testing.T) {
	s := NewService(nil)
	if s.RemoteEnabled() {
		t.Error("RemoteEnabled = true with nil provider")
	}

	p := s.Plan(context.Background(), risk.LevelLow, nil)
	if p.Source != SourceTemplate {
		t.Errorf("source = %q, want %q", p.Source, SourceTemplate)
	}
	if p.Title != "Excellence Plan" {
		t.Errorf("title = %q", p.Title)
	}
}

func TestService_FallsBackOnRemoteFailure(t *testing.T) {
	remoteErr := errors.New("upstream down")
	mock := llm.NewMockProvider(llm.MockResponse{Err: remoteErr})
	s := NewService(mock)

	p := s.Plan(context.Background(), risk.LevelHigh, sampleWeakAreas())
	if p.Source != SourceFallback {
		t.Errorf("source = %q, want %q", p.Source, SourceFallback)
	}
	if p.Title != "Urgent Recovery Plan" {
		t.Errorf("title = %q, want the template plan", p.Title)
	}
	if !errors.Is(p.RemoteErr, remoteErr) {
		t.Errorf("RemoteErr = %v, want wrapped %v", p.RemoteErr, remoteErr)
	}
}

func TestService_UsesRemoteWhenAvailable(t *testing.T) {
	resp := json.RawMessage(`{"title":"Custom Plan","actions":["x","y","z"]}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	s := NewService(mock)

	p := s.Plan(context.Background(), risk.LevelMedium, nil)
	if p.Source != SourceRemote {
		t.Errorf("source = %q, want %q", p.Source, SourceRemote)
	}
	if p.Title != "Custom Plan" {
		t.Errorf("title = %q", p.Title)
	}
}
