package repository

import (
	"VCS_Uptime_Monitor/internal/monitor-service/model"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProxyConfigRepository interface {
	// GetProxyConfig returns nil when no global proxy is configured.
	GetProxyConfig(ctx context.Context) (*model.ProxyConfig, error)
	// SaveProxyConfig replaces the global proxy. A nil config clears it.
	SaveProxyConfig(ctx context.Context, cfg *model.ProxyConfig) error
}

type proxyConfigRepository struct {
	db *gorm.DB
}

func (r *proxyConfigRepository) GetProxyConfig(ctx context.Context) (*model.ProxyConfig, error) {
	var setting model.ProxySetting
	result := r.db.WithContext(ctx).First(&setting, model.GlobalProxySettingID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("ProxyConfigRepository.GetProxyConfig: %w", result.Error)
	}
	return setting.ProxyConfig(), nil
}

func (r *proxyConfigRepository) SaveProxyConfig(ctx context.Context, cfg *model.ProxyConfig) error {
	setting := model.ProxySetting{ID: model.GlobalProxySettingID}
	if !cfg.IsEmpty() {
		setting.Host = cfg.Host
		setting.Port = cfg.Port
		setting.Username = cfg.Username
		setting.Password = cfg.Password
	}
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&setting)
	if result.Error != nil {
		return fmt.Errorf("ProxyConfigRepository.SaveProxyConfig: %w", result.Error)
	}
	return nil
}

func NewProxyConfigRepository(db *gorm.DB) ProxyConfigRepository {
	return &proxyConfigRepository{
		db: db,
	}
}
