package output

import (
	"bufio"
	"fmt"
	"io"

	"portsniffer/port"
)

// PrintReport writes a blank separator followed by one "<port> is open"
// line per entry, in report order.
func PrintReport(w io.Writer, report port.Report) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw)
	for _, o := range report {
		fmt.Fprintln(bw, o)
	}
	return bw.Flush()
}
