package request

type UpdateMonitorRequest struct {
	Name              *string             `json:"name" binding:"omitempty,min=1"`
	URL               *string             `json:"url" binding:"omitempty,min=1"`
	Method            *string             `json:"method" validate:"omitempty,oneof=HTTP ICMP"`
	Frequency         *int                `json:"frequency" binding:"omitempty,gte=1"`
	Active            *bool               `json:"active"`
	IgnoreGlobalProxy *bool               `json:"ignore_global_proxy"`
	ProxyConfig       *ProxyConfigRequest `json:"proxy_config"`
	ClearProxyConfig  bool                `json:"clear_proxy_config"`
}
