package apperrors

import (
	"errors"
)

var (
	ErrMonitorNotFound      = errors.New("monitor not found")
	ErrMonitorAlreadyExists = errors.New("monitor already exists")
	ErrInvalidMonitor       = errors.New("invalid monitor")
	ErrInvalidProxyConfig   = errors.New("invalid proxy config")
)
