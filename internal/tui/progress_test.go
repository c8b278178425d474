package tui

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mwiater/normdist/internal/estimate"
	"github.com/mwiater/normdist/internal/simulate"
)

func sampleResult() simulate.SuiteResult {
	return simulate.SuiteResult{
		Config: simulate.SuiteConfig{Column: "score", SampleSize: 30, Trials: 100, Target: simulate.TargetMean},
		Summary: simulate.Summary{
			Trials: 100, Covered: 95, Rate: 0.95, RateLower: 0.888, RateUpper: 0.978,
			Level: 0.95, WidthMean: 2.5, WidthStd: 0.3, WidthP50: 2.45, WidthP95: 3.0, Truth: 20,
		},
	}
}

func TestModel_ProgressAndDone(t *testing.T) {
	cancelled := false
	m := newModel("estimating", 100, func() { cancelled = true })

	if out := m.View(); !strings.Contains(out, "0/100 trials") {
		t.Fatalf("expected empty progress, got: %s", out)
	}

	_, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	if m.bar.Width != 60 {
		t.Fatalf("expected bar width 60, got %d", m.bar.Width)
	}

	m2, _ := m.Update(progressMsg{done: 40, total: 100})
	m = m2.(*model)
	if m.percent() != 0.4 {
		t.Fatalf("expected 40%%, got %v", m.percent())
	}
	if out := m.View(); !strings.Contains(out, "40/100 trials") || !strings.Contains(out, "estimating") {
		t.Fatalf("unexpected running view: %s", out)
	}

	m2, cmd := m.Update(doneMsg{result: sampleResult()})
	m = m2.(*model)
	if !m.finished || cmd == nil {
		t.Fatalf("expected finished model and a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg from done")
	}
	out := m.View()
	if !strings.Contains(out, "coverage of mean") || !strings.Contains(out, "0.9500") {
		t.Fatalf("expected summary view, got: %s", out)
	}
	if cancelled {
		t.Fatalf("cancel should not be called on normal completion")
	}
}

func TestModel_QuitCancels(t *testing.T) {
	cancelled := false
	m := newModel("estimating", 10, func() { cancelled = true })
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if !cancelled {
		t.Fatalf("expected q to cancel the run")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected quit command")
	}
}

func TestModel_ErrorView(t *testing.T) {
	m := newModel("estimating", 10, nil)
	m2, _ := m.Update(doneMsg{err: errors.New("boom")})
	if out := m2.View(); !strings.Contains(out, "Error: boom") {
		t.Fatalf("expected error view, got: %s", out)
	}
}

func TestRun_Headless(t *testing.T) {
	var in, out bytes.Buffer
	want := sampleResult()
	res, err := Run(context.Background(), "estimating", 3, func(ctx context.Context, progress simulate.ProgressFunc) (simulate.SuiteResult, error) {
		for i := 1; i <= 3; i++ {
			progress(i, 3)
		}
		return want, nil
	}, tea.WithInput(&in), tea.WithOutput(&out), tea.WithoutRenderer())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Summary.Covered != want.Summary.Covered {
		t.Fatalf("expected run result to be returned, got %+v", res.Summary)
	}
}

func TestVerdictAndTable(t *testing.T) {
	ok := Verdict(estimate.Result{Interval: estimate.ConfidenceInterval{Lower: 1, Upper: 2}, Covered: true})
	if !strings.Contains(ok, "[1, 2]") || !strings.Contains(ok, "OK") {
		t.Fatalf("unexpected verdict: %q", ok)
	}
	ng := Verdict(estimate.Result{Interval: estimate.ConfidenceInterval{Lower: 1, Upper: 2}})
	if !strings.Contains(ng, "NG") {
		t.Fatalf("unexpected verdict: %q", ng)
	}

	tbl := Table("critical values", [][2]string{{"right", "2.228"}, {"left", "-2.228"}})
	if !strings.Contains(tbl, "critical values") || !strings.Contains(tbl, "right") || !strings.Contains(tbl, "-2.228") {
		t.Fatalf("unexpected table: %q", tbl)
	}
}
