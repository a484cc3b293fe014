package port

import (
	"errors"
	"fmt"
	"net"
	"sort"
)

const (
	// MaxPort is the highest port probed by the command line tool.
	MaxPort = 1024
	// DefaultWorkers is the worker count used when none is given.
	DefaultWorkers = 4
)

// ErrInvalidTarget is returned for a target the engine must not run against.
var ErrInvalidTarget = errors.New("invalid target")

// Target is the immutable description of one scan. It is shared read-only
// by every worker.
type Target struct {
	Address     net.IP
	HighestPort int
	Workers     int
}

// NewTarget builds a Target covering ports 1..MaxPort.
func NewTarget(addr net.IP, workers int) (Target, error) {
	return NewTargetRange(addr, MaxPort, workers)
}

// NewTargetRange builds a Target covering ports 1..highest.
// A worker count above highest is clamped, since the extra workers would own
// no ports.
func NewTargetRange(addr net.IP, highest, workers int) (Target, error) {
	if workers > highest {
		workers = highest
	}
	t := Target{HighestPort: highest, Workers: workers}
	if addr != nil {
		t.Address = make(net.IP, len(addr))
		copy(t.Address, addr)
	}
	if err := t.Validate(); err != nil {
		return Target{}, err
	}
	return t, nil
}

// Validate reports whether the engine may run against t.
func (t Target) Validate() error {
	if t.Address == nil {
		return fmt.Errorf("%w: missing address", ErrInvalidTarget)
	}
	if t.HighestPort < 1 || t.HighestPort > 65535 {
		return fmt.Errorf("%w: highest port %d outside 1..65535", ErrInvalidTarget, t.HighestPort)
	}
	if t.Workers < 1 {
		return fmt.Errorf("%w: worker count must be at least 1, got %d", ErrInvalidTarget, t.Workers)
	}
	if t.Workers > t.HighestPort {
		return fmt.Errorf("%w: %d workers for %d ports", ErrInvalidTarget, t.Workers, t.HighestPort)
	}
	return nil
}

// OpenPort is a single finding emitted by a worker.
type OpenPort struct {
	Port uint16
}

func (o OpenPort) String() string {
	return fmt.Sprintf("%d is open", o.Port)
}

// Report is the ordered list of open ports produced by a scan.
type Report []OpenPort

// Sort orders the report ascending by port.
func (r Report) Sort() {
	sort.Slice(r, func(i, j int) bool { return r[i].Port < r[j].Port })
}

// Ports returns the bare port numbers in report order.
func (r Report) Ports() []uint16 {
	out := make([]uint16, 0, len(r))
	for _, o := range r {
		out = append(out, o.Port)
	}
	return out
}
