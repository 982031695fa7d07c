package model

import (
	"time"
)

const (
	StatusOnline   = "Online"
	StatusOffline  = "Offline"
	StatusInactive = "Inactive"
)

const (
	MethodHTTP = "HTTP"
	MethodICMP = "ICMP"
)

// Failure reasons carried by ProbeResult.Reason and Monitor.ErrorMessage.
const (
	ReasonConnectionRefused = "connection_refused"
	ReasonTimeout           = "timeout"
	ReasonDNS               = "dns_error"
	ReasonTLS               = "tls_error"
	ReasonNetwork           = "network_error"
	ReasonUnsupportedMethod = "unsupported_method"
	ReasonPing              = "ping_error"
	ReasonNoReply           = "no_reply"
)

// ProxyConfig is an HTTP proxy address with optional basic credentials.
// A config with an empty Host means "no proxy".
type ProxyConfig struct {
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port,omitempty" yaml:"port,omitempty"`
	Username string `json:"username,omitempty" yaml:"username,omitempty"`
	Password string `json:"password,omitempty" yaml:"password,omitempty"`
}

func (p *ProxyConfig) IsEmpty() bool {
	return p == nil || p.Host == ""
}

func (p *ProxyConfig) Clone() *ProxyConfig {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

type Monitor struct {
	ID                string       `gorm:"primaryKey" json:"id" yaml:"id"`
	Name              string       `json:"name" yaml:"name"`
	URL               string       `json:"url" yaml:"url"`
	Method            string       `json:"method" yaml:"method"`
	Frequency         int          `json:"frequency" yaml:"frequency"` // milliseconds
	Active            bool         `json:"active" yaml:"active"`
	IgnoreGlobalProxy bool         `json:"ignore_global_proxy" yaml:"ignore_global_proxy"`
	ProxyConfig       *ProxyConfig `gorm:"serializer:json" json:"proxy_config,omitempty" yaml:"proxy_config,omitempty"`
	Status            string       `json:"status" yaml:"status"`
	Latency           int64        `json:"latency" yaml:"latency"` // milliseconds
	Error             bool         `json:"error" yaml:"error"`
	ErrorMessage      string       `json:"error_message,omitempty" yaml:"error_message,omitempty"`
	LastCheckedAt     *time.Time   `json:"last_checked_at,omitempty" yaml:"last_checked_at,omitempty"`
	CreatedAt         time.Time    `json:"created_at" yaml:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at" yaml:"updated_at"`
}

// Clone returns a copy that shares no pointers with m.
func (m *Monitor) Clone() Monitor {
	c := *m
	c.ProxyConfig = m.ProxyConfig.Clone()
	if m.LastCheckedAt != nil {
		t := *m.LastCheckedAt
		c.LastCheckedAt = &t
	}
	return c
}

// Apply folds a probe result into the status fields of m.
func (m *Monitor) Apply(r ProbeResult) {
	m.Status = r.Status
	m.Latency = r.Latency
	m.Error = r.Error
	m.ErrorMessage = r.Reason
	checkedAt := r.CheckedAt
	m.LastCheckedAt = &checkedAt
}

// ProbeResult is the outcome of a single probe.
type ProbeResult struct {
	Status     string
	Latency    int64
	Error      bool
	Reason     string
	StatusCode int
	CheckedAt  time.Time
}

func OfflineResult(reason string, isError bool) ProbeResult {
	return ProbeResult{
		Status:    StatusOffline,
		Latency:   0,
		Error:     isError,
		Reason:    reason,
		CheckedAt: time.Now(),
	}
}
