package probe

import (
	"VCS_Uptime_Monitor/internal/monitor-service/model"
	"context"
	"errors"
	"net"
	"net/url"
	"strings"
	"time"

	probing "github.com/prometheus-community/pro-bing"
)

// PingFunc sends a single echo request to host, binding to source when it is
// not empty.
type PingFunc func(ctx context.Context, host string, source string, timeout time.Duration) (*probing.Statistics, error)

type icmpProber struct {
	ping    PingFunc
	timeout time.Duration
}

// Probe pings the monitor's host. The resolved proxy host, if any, is used as
// the source address of the echo request.
func (p *icmpProber) Probe(ctx context.Context, m model.Monitor, t Transport) model.ProbeResult {
	source := ""
	if !t.Proxy.IsEmpty() {
		source = t.Proxy.Host
	}
	stats, err := p.ping(ctx, pingHost(m.URL), source, p.timeout)
	if err != nil {
		var dnsErr *net.DNSError
		if errors.As(err, &dnsErr) {
			return model.OfflineResult(model.ReasonDNS, true)
		}
		return model.OfflineResult(model.ReasonPing, true)
	}
	if stats == nil || stats.PacketsRecv == 0 {
		return model.OfflineResult(model.ReasonNoReply, false)
	}
	rtt := stats.AvgRtt
	if len(stats.Rtts) > 0 {
		rtt = stats.Rtts[0]
	}
	return model.ProbeResult{
		Status:    model.StatusOnline,
		Latency:   rtt.Milliseconds(),
		CheckedAt: time.Now(),
	}
}

// pingHost accepts a bare host or a URL and returns the host part.
func pingHost(target string) string {
	target = strings.TrimSpace(target)
	if strings.Contains(target, "://") {
		if u, err := url.Parse(target); err == nil && u.Hostname() != "" {
			return u.Hostname()
		}
	}
	return target
}

// NewPing returns a PingFunc backed by pro-bing. Unprivileged mode needs
// net.ipv4.ping_group_range to include the process group on Linux.
func NewPing(privileged bool) PingFunc {
	return func(ctx context.Context, host string, source string, timeout time.Duration) (*probing.Statistics, error) {
		pinger, err := probing.NewPinger(host)
		if err != nil {
			return nil, err
		}
		pinger.Count = 1
		pinger.Timeout = timeout
		pinger.SetPrivileged(privileged)
		if source != "" {
			pinger.Source = source
		}
		if err = pinger.RunWithContext(ctx); err != nil {
			return nil, err
		}
		return pinger.Statistics(), nil
	}
}

func NewICMPProber(ping PingFunc, timeout time.Duration) Prober {
	return &icmpProber{
		ping:    ping,
		timeout: timeout,
	}
}
