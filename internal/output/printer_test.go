package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/micutio/delayspottr/internal"
)

func TestPrinterPlainOutput(t *testing.T) {
	var out, errOut bytes.Buffer
	printer := NewPrinterWithWriters(&out, &errOut, false)

	printer.Info("fetching %s", "2024-01-01")
	printer.Success("saved")
	printer.Warning("slow")
	printer.Error("broken")
	printer.Hint("try again")

	stdout := out.String()
	stderr := errOut.String()

	if !strings.Contains(stdout, "fetching 2024-01-01") {
		t.Errorf("stdout = %q, want info message", stdout)
	}
	if !strings.Contains(stdout, "[OK] saved") {
		t.Errorf("stdout = %q, want success marker", stdout)
	}
	if !strings.Contains(stderr, "[WARN] slow") {
		t.Errorf("stderr = %q, want warning marker", stderr)
	}
	if !strings.Contains(stderr, "[ERROR] broken") {
		t.Errorf("stderr = %q, want error marker", stderr)
	}
	if !strings.Contains(stderr, "Hint: try again") {
		t.Errorf("stderr = %q, want hint", stderr)
	}
}

func TestPrinterSeparatesStreams(t *testing.T) {
	var out, errOut bytes.Buffer
	printer := NewPrinterWithWriters(&out, &errOut, false)

	printer.Warning("only on stderr")

	if out.Len() != 0 {
		t.Errorf("stdout = %q, want empty", out.String())
	}
}

func TestStatusTextWithoutColors(t *testing.T) {
	var out, errOut bytes.Buffer
	printer := NewPrinterWithWriters(&out, &errOut, false)

	categories := []internal.DelayCategory{
		internal.OnTime,
		internal.MinorDelay,
		internal.MajorDelay,
		internal.SevereDelay,
		internal.Cancelled,
		internal.Diverted,
	}

	for _, category := range categories {
		if got := printer.StatusText(category); got != category.String() {
			t.Errorf("StatusText(%v) = %q, want %q", category, got, category.String())
		}
	}
}
