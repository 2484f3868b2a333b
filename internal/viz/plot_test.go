package viz

import (
	"math"
	"strings"
	"testing"
)

func TestLog10_DropsNonPositive(t *testing.T) {
	got := Log10([]float64{100, 0, -1, 1e-3})
	if len(got) != 2 {
		t.Fatalf("expected 2 values, got %v", got)
	}
	if math.Abs(got[0]-2) > 1e-12 || math.Abs(got[1]+3) > 1e-12 {
		t.Errorf("unexpected values %v", got)
	}
}

func TestPlot_Caption(t *testing.T) {
	out := Plot([]float64{1, 2, 3, 2, 1}, "error vs dt")
	if !strings.Contains(out, "error vs dt") {
		t.Errorf("caption missing from plot:\n%s", out)
	}
}

func TestPlot_Empty(t *testing.T) {
	if out := Plot(nil, "x"); !strings.Contains(out, "no data") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestSparkline_Width(t *testing.T) {
	values := make([]float64, 100)
	for i := range values {
		values[i] = float64(i)
	}

	out := Sparkline(values, 20)
	count := 0
	for _, r := range out {
		if r >= '▁' && r <= '█' {
			count++
		}
	}
	if count != 20 {
		t.Errorf("expected 20 bars, got %d", count)
	}

	if Sparkline(nil, 5) != "─────" {
		t.Error("empty sparkline should be a flat line")
	}
}

func TestMetric(t *testing.T) {
	out := Metric("order", "4.00", 10)
	if !strings.Contains(out, "order:") || !strings.Contains(out, "4.00") {
		t.Errorf("unexpected metric %q", out)
	}
}

func TestSparkline_NonPositiveWidth(t *testing.T) {
	for _, width := range []int{0, -1} {
		if out := Sparkline([]float64{1, 2, 3}, width); out != "" {
			t.Errorf("width %d: expected empty sparkline, got %q", width, out)
		}
		if out := Sparkline(nil, width); out != "" {
			t.Errorf("width %d: expected empty flat line, got %q", width, out)
		}
	}
}
