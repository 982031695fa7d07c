package probe

import (
	"VCS_Uptime_Monitor/internal/monitor-service/model"
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"net"
	"net/http"
	"syscall"

	"go.uber.org/zap"
)

// Transport is what a probe needs from the proxy resolution step.
type Transport struct {
	Client *http.Client
	Proxy  *model.ProxyConfig
}

// Prober never fails: every problem is reported as an Offline result.
type Prober interface {
	Probe(ctx context.Context, m model.Monitor, t Transport) model.ProbeResult
}

type strategy struct {
	probers map[string]Prober
	logger  *zap.Logger
}

func (s *strategy) Probe(ctx context.Context, m model.Monitor, t Transport) (res model.ProbeResult) {
	p, ok := s.probers[m.Method]
	if !ok {
		s.logger.Warn("unsupported probe method", zap.String("monitor_id", m.ID), zap.String("method", m.Method))
		return model.OfflineResult(model.ReasonUnsupportedMethod, true)
	}
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("Strategy.Probe: panic: %v", r)
			s.logger.Error("probe panicked", zap.Error(err), zap.String("monitor_id", m.ID))
			res = model.OfflineResult(model.ReasonNetwork, true)
		}
	}()
	return p.Probe(ctx, m, t)
}

// NewStrategy dispatches on Monitor.Method.
func NewStrategy(httpProber Prober, icmpProber Prober, logger *zap.Logger) Prober {
	return &strategy{
		probers: map[string]Prober{
			model.MethodHTTP: httpProber,
			model.MethodICMP: icmpProber,
		},
		logger: logger,
	}
}

func classifyError(err error) string {
	var dnsErr *net.DNSError
	var netErr net.Error
	var certErr *tls.CertificateVerificationError
	var unknownAuthority x509.UnknownAuthorityError
	var hostnameErr x509.HostnameError
	var recordErr tls.RecordHeaderError
	switch {
	case errors.Is(err, syscall.ECONNREFUSED):
		return model.ReasonConnectionRefused
	case errors.Is(err, context.DeadlineExceeded):
		return model.ReasonTimeout
	case errors.As(err, &dnsErr):
		return model.ReasonDNS
	case errors.As(err, &certErr), errors.As(err, &unknownAuthority), errors.As(err, &hostnameErr), errors.As(err, &recordErr):
		return model.ReasonTLS
	case errors.As(err, &netErr) && netErr.Timeout():
		return model.ReasonTimeout
	default:
		return model.ReasonNetwork
	}
}
