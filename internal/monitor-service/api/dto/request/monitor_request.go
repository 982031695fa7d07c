package request

type ProxyConfigRequest struct {
	Host     string `json:"host" binding:"required" validate:"required"`
	Port     int    `json:"port" binding:"gte=0,lte=65535" validate:"gte=0,lte=65535"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type MonitorRequest struct {
	Name              string              `json:"name" binding:"required" validate:"required"`
	URL               string              `json:"url" binding:"required" validate:"required"`
	Method            string              `json:"method" binding:"required" validate:"required,oneof=HTTP ICMP"`
	Frequency         *int                `json:"frequency" binding:"required,gte=1" validate:"required,gte=1"`
	Active            *bool               `json:"active"`
	IgnoreGlobalProxy bool                `json:"ignore_global_proxy"`
	ProxyConfig       *ProxyConfigRequest `json:"proxy_config"`
}
