package response

type GlobalProxyResponse struct {
	Enabled     bool                 `json:"enabled"`
	ProxyConfig *ProxyConfigResponse `json:"proxy_config,omitempty"`
}
