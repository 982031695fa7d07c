package probe

import (
	"VCS_Uptime_Monitor/internal/monitor-service/model"
	"context"
	"io"
	"net/http"
	"time"
)

const maxDrainBytes = 64 << 10

type httpProber struct {
	timeout       time.Duration
	defaultClient *http.Client
}

// Probe issues a GET. Any HTTP response counts as Online whatever its status
// code; only transport failures make the target Offline.
func (h *httpProber) Probe(ctx context.Context, m model.Monitor, t Transport) model.ProbeResult {
	client := t.Client
	if client == nil {
		client = h.defaultClient
	}
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.URL, nil)
	if err != nil {
		return model.OfflineResult(model.ReasonNetwork, true)
	}
	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return model.OfflineResult(classifyError(err), true)
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrainBytes))
	resp.Body.Close()

	return model.ProbeResult{
		Status:     model.StatusOnline,
		Latency:    time.Since(start).Milliseconds(),
		StatusCode: resp.StatusCode,
		CheckedAt:  time.Now(),
	}
}

func NewHTTPProber(timeout time.Duration) Prober {
	return &httpProber{
		timeout: timeout,
		defaultClient: &http.Client{
			Timeout: timeout,
		},
	}
}
