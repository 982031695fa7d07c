package response

import (
	"VCS_Uptime_Monitor/internal/monitor-service/model"
	"time"
)

type ProxyConfigResponse struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Username string `json:"username,omitempty"`
}

type MonitorInfoResponse struct {
	ID                string               `json:"id"`
	Name              string               `json:"name"`
	URL               string               `json:"url"`
	Method            string               `json:"method"`
	Frequency         int                  `json:"frequency"`
	Active            bool                 `json:"active"`
	IgnoreGlobalProxy bool                 `json:"ignore_global_proxy"`
	ProxyConfig       *ProxyConfigResponse `json:"proxy_config,omitempty"`
	Status            string               `json:"status"`
	Latency           int64                `json:"latency"`
	Error             bool                 `json:"error"`
	ErrorMessage      string               `json:"error_message,omitempty"`
	LastCheckedAt     *time.Time           `json:"last_checked_at,omitempty"`
	CreatedAt         time.Time            `json:"created_at"`
	UpdatedAt         time.Time            `json:"updated_at"`
}

// NewProxyConfigResponse never exposes the proxy password.
func NewProxyConfigResponse(cfg *model.ProxyConfig) *ProxyConfigResponse {
	if cfg.IsEmpty() {
		return nil
	}
	return &ProxyConfigResponse{
		Host:     cfg.Host,
		Port:     cfg.Port,
		Username: cfg.Username,
	}
}

func NewMonitorInfoResponse(m model.Monitor) MonitorInfoResponse {
	return MonitorInfoResponse{
		ID:                m.ID,
		Name:              m.Name,
		URL:               m.URL,
		Method:            m.Method,
		Frequency:         m.Frequency,
		Active:            m.Active,
		IgnoreGlobalProxy: m.IgnoreGlobalProxy,
		ProxyConfig:       NewProxyConfigResponse(m.ProxyConfig),
		Status:            m.Status,
		Latency:           m.Latency,
		Error:             m.Error,
		ErrorMessage:      m.ErrorMessage,
		LastCheckedAt:     m.LastCheckedAt,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}
