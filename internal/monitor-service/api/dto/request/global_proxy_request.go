package request

// GlobalProxyRequest with an empty host clears the global proxy.
type GlobalProxyRequest struct {
	Host     string `json:"host"`
	Port     int    `json:"port" binding:"gte=0,lte=65535"`
	Username string `json:"username"`
	Password string `json:"password"`
}
