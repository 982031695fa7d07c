package model

import "time"

const GlobalProxySettingID = 1

// ProxySetting is the persisted row holding the global proxy fallback.
type ProxySetting struct {
	ID        int `gorm:"primaryKey;autoIncrement:false"`
	Host      string
	Port      int
	Username  string
	Password  string
	UpdatedAt time.Time
}

func (ProxySetting) TableName() string {
	return "proxy_settings"
}

func (s ProxySetting) ProxyConfig() *ProxyConfig {
	if s.Host == "" {
		return nil
	}
	return &ProxyConfig{
		Host:     s.Host,
		Port:     s.Port,
		Username: s.Username,
		Password: s.Password,
	}
}
