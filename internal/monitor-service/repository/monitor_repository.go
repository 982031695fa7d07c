package repository

import (
	apperrors "VCS_Uptime_Monitor/internal/monitor-service/errors"
	"VCS_Uptime_Monitor/internal/monitor-service/model"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type MonitorRepository interface {
	GetMonitors(ctx context.Context) ([]model.Monitor, error)
	CreateMonitor(ctx context.Context, monitor model.Monitor) (model.Monitor, error)
	// UpdateMonitor overwrites the definition fields and status of an existing monitor.
	UpdateMonitor(ctx context.Context, monitor model.Monitor) error
	DeleteMonitorById(ctx context.Context, id string) error
	// SaveStatuses persists only the status fields of the given monitors.
	SaveStatuses(ctx context.Context, monitors []model.Monitor) error
	// UpdateStatus stores a status event on an active monitor. Missing and
	// inactive monitors both yield ErrMonitorNotFound.
	UpdateStatus(ctx context.Context, event model.StatusEvent) error
}

var definitionColumns = []string{"name", "url", "method", "frequency", "active", "ignore_global_proxy", "proxy_config", "status", "latency", "error", "error_message", "updated_at"}

type monitorRepository struct {
	db *gorm.DB
}

func (r *monitorRepository) GetMonitors(ctx context.Context) ([]model.Monitor, error) {
	var monitors []model.Monitor
	result := r.db.WithContext(ctx).Order("created_at asc").Find(&monitors)
	if result.Error != nil {
		return nil, fmt.Errorf("MonitorRepository.GetMonitors: %w", result.Error)
	}
	return monitors, nil
}

func (r *monitorRepository) CreateMonitor(ctx context.Context, monitor model.Monitor) (model.Monitor, error) {
	result := r.db.WithContext(ctx).Create(&monitor)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return monitor, fmt.Errorf("MonitorRepository.CreateMonitor: %w", apperrors.ErrMonitorAlreadyExists)
		}
		return monitor, fmt.Errorf("MonitorRepository.CreateMonitor: %w", result.Error)
	}
	return monitor, nil
}

func (r *monitorRepository) UpdateMonitor(ctx context.Context, monitor model.Monitor) error {
	result := r.db.WithContext(ctx).Model(&model.Monitor{}).Where("id = ?", monitor.ID).Select(definitionColumns).Updates(&monitor)
	if result.Error != nil {
		return fmt.Errorf("MonitorRepository.UpdateMonitor: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("MonitorRepository.UpdateMonitor: %w", apperrors.ErrMonitorNotFound)
	}
	return nil
}

func (r *monitorRepository) DeleteMonitorById(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Monitor{})
	if result.Error != nil {
		return fmt.Errorf("MonitorRepository.DeleteMonitorById: %w", result.Error)
	}
	return nil
}

func (r *monitorRepository) SaveStatuses(ctx context.Context, monitors []model.Monitor) error {
	if len(monitors) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, m := range monitors {
			result := tx.Model(&model.Monitor{}).Where("id = ?", m.ID).Updates(statusColumns(m.Status, m.Latency, m.Error, m.ErrorMessage, m.LastCheckedAt))
			if result.Error != nil {
				return result.Error
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("MonitorRepository.SaveStatuses: %w", err)
	}
	return nil
}

func (r *monitorRepository) UpdateStatus(ctx context.Context, event model.StatusEvent) error {
	checkedAt := event.CheckedAt
	result := r.db.WithContext(ctx).Model(&model.Monitor{}).Where("id = ? AND active = ?", event.ID, true).
		Updates(statusColumns(event.Status, event.Latency, event.Error, event.ErrorMessage, &checkedAt))
	if result.Error != nil {
		return fmt.Errorf("MonitorRepository.UpdateStatus: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("MonitorRepository.UpdateStatus: %w", apperrors.ErrMonitorNotFound)
	}
	return nil
}

func statusColumns(status string, latency int64, isError bool, errorMessage string, checkedAt *time.Time) map[string]interface{} {
	return map[string]interface{}{
		"status":          status,
		"latency":         latency,
		"error":           isError,
		"error_message":   errorMessage,
		"last_checked_at": checkedAt,
	}
}

func NewMonitorRepository(db *gorm.DB) MonitorRepository {
	return &monitorRepository{
		db: db,
	}
}

// Migrate creates or updates the tables used by the gorm repositories.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.Monitor{}, &model.ProxySetting{}); err != nil {
		return fmt.Errorf("repository.Migrate: %w", err)
	}
	return nil
}
