package scanner

import (
	"context"
	"errors"
	"net"
	"strconv"
	"strings"
	"syscall"
	"time"
)

// DefaultTimeout bounds a single connect attempt.
const DefaultTimeout = 2 * time.Second

// Dialer opens TCP connections. *net.Dialer satisfies it.
type Dialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}

// State is the classification of one probe.
type State string

const (
	StateOpen     State = "open"
	StateClosed   State = "closed"
	StateFiltered State = "filtered"
)

// Outcome is the result of probing a single port.
type Outcome struct {
	Port  uint16
	State State
	RTT   time.Duration
	Err   error
}

// Probe performs a TCP connect to ip:port. An established connection is
// closed immediately without exchanging data. Anything but success is a
// closed or filtered port, never an error of the scan.
func Probe(ctx context.Context, d Dialer, ip net.IP, portNum uint16) Outcome {
	addr := net.JoinHostPort(ip.String(), strconv.Itoa(int(portNum)))
	start := time.Now()
	conn, err := d.DialContext(ctx, "tcp", addr)
	res := Outcome{Port: portNum, State: StateFiltered, RTT: time.Since(start), Err: err}
	if err == nil {
		_ = conn.Close()
		res.State = StateOpen
		return res
	}
	if isConnRefused(err) {
		res.State = StateClosed
	}
	return res
}

func isConnRefused(err error) bool {
	if errors.Is(err, syscall.ECONNREFUSED) {
		return true
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return false
	}
	return strings.Contains(err.Error(), "connection refused")
}
