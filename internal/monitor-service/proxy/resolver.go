package proxy

import (
	"VCS_Uptime_Monitor/internal/monitor-service/model"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
)

const directKey = "direct"

var errInvalidPort = errors.New("proxy port out of range")

type Resolver interface {
	// Resolve returns the effective proxy for m, or nil for a direct connection.
	Resolve(m model.Monitor) *model.ProxyConfig
	// Client returns the shared client for cfg. Malformed configs get the direct client.
	Client(cfg *model.ProxyConfig) *http.Client
	Global() *model.ProxyConfig
	SetGlobal(cfg *model.ProxyConfig)
}

type resolver struct {
	globalMu sync.RWMutex
	global   *model.ProxyConfig

	clientsMu sync.Mutex
	clients   map[string]*http.Client

	timeout time.Duration
	logger  *zap.Logger
}

// Resolve picks the monitor's own proxy first, then the global one unless the
// monitor opts out of it.
func Resolve(m model.Monitor, global *model.ProxyConfig) *model.ProxyConfig {
	if !m.ProxyConfig.IsEmpty() {
		return m.ProxyConfig
	}
	if !global.IsEmpty() && !m.IgnoreGlobalProxy {
		return global
	}
	return nil
}

// URL builds the http:// proxy URL used for both plain and TLS targets.
func URL(cfg *model.ProxyConfig) (*url.URL, error) {
	if cfg.IsEmpty() {
		return nil, nil
	}
	if cfg.Port < 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("proxy.URL: %w: %d", errInvalidPort, cfg.Port)
	}
	host := cfg.Host
	if cfg.Port > 0 {
		host = net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	}
	u := &url.URL{Scheme: "http", Host: host}
	if cfg.Username != "" {
		u.User = url.UserPassword(cfg.Username, cfg.Password)
	}
	parsed, err := url.Parse(u.String())
	if err != nil {
		return nil, fmt.Errorf("proxy.URL: %w", err)
	}
	if parsed.Hostname() == "" {
		return nil, fmt.Errorf("proxy.URL: empty host in %q", u.Redacted())
	}
	return parsed, nil
}

func (r *resolver) Resolve(m model.Monitor) *model.ProxyConfig {
	return Resolve(m, r.Global())
}

func (r *resolver) Global() *model.ProxyConfig {
	r.globalMu.RLock()
	defer r.globalMu.RUnlock()
	return r.global.Clone()
}

func (r *resolver) SetGlobal(cfg *model.ProxyConfig) {
	r.globalMu.Lock()
	defer r.globalMu.Unlock()
	if cfg.IsEmpty() {
		r.global = nil
		return
	}
	r.global = cfg.Clone()
}

func (r *resolver) Client(cfg *model.ProxyConfig) *http.Client {
	proxyURL, err := URL(cfg)
	if err != nil {
		r.logger.Warn("invalid proxy config, falling back to direct connection", zap.Error(err), zap.String("proxy_host", cfg.Host))
		proxyURL = nil
	}
	key := directKey
	if proxyURL != nil {
		key = proxyURL.String()
	}

	r.clientsMu.Lock()
	defer r.clientsMu.Unlock()
	if c, ok := r.clients[key]; ok {
		return c
	}
	c := r.newClient(proxyURL)
	r.clients[key] = c
	if proxyURL != nil {
		r.logger.Debug("created proxied http client", zap.String("proxy", proxyURL.Redacted()))
	}
	return c
}

func (r *resolver) newClient(proxyURL *url.URL) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.Proxy = nil
	if proxyURL != nil {
		transport.Proxy = http.ProxyURL(proxyURL)
	}
	return &http.Client{
		Timeout:   r.timeout,
		Transport: transport,
	}
}

func NewResolver(global *model.ProxyConfig, timeout time.Duration, logger *zap.Logger) Resolver {
	r := &resolver{
		clients: make(map[string]*http.Client),
		timeout: timeout,
		logger:  logger,
	}
	r.SetGlobal(global)
	return r
}
