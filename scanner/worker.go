package scanner

import (
	"context"
	"fmt"

	"portsniffer/port"
)

// sweep probes every port owned by worker index and sends the open ones on
// results. The caller sizes results so that sends never block.
func (m *Manager) sweep(ctx context.Context, index int, results chan<- port.OpenPort) {
	tgt := m.cfg.Target
	ports := port.Assign(index, tgt.Workers, tgt.HighestPort)
	m.log.Debug("worker started", "worker", index, "ports", len(ports))
	found := 0
	for _, p := range ports {
		out := Probe(ctx, m.dialer, tgt.Address, p)
		if out.State != StateOpen {
			if out.State == StateFiltered {
				m.log.Debug("probe filtered", "worker", index, "port", p, "rtt", out.RTT, "err", out.Err)
			}
			continue
		}
		found++
		m.progress(p)
		results <- port.OpenPort{Port: p}
	}
	m.log.Debug("worker finished", "worker", index, "open", found)
}

func (m *Manager) progress(p uint16) {
	if m.cfg.Progress == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	fmt.Fprintln(m.cfg.Progress, port.OpenPort{Port: p})
}
