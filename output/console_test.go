package output

import (
	"bytes"
	"testing"

	"portsniffer/port"
)

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintReport(&buf, port.Report{{Port: 22}, {Port: 80}}); err != nil {
		t.Fatalf("PrintReport: %v", err)
	}
	if got, want := buf.String(), "\n22 is open\n80 is open\n"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestPrintReport_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintReport(&buf, nil); err != nil {
		t.Fatalf("PrintReport: %v", err)
	}
	if buf.String() != "\n" {
		t.Fatalf("got %q", buf.String())
	}
}
