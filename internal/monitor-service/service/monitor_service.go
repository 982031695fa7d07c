package service

import (
	apperrors "VCS_Uptime_Monitor/internal/monitor-service/errors"
	"VCS_Uptime_Monitor/internal/monitor-service/model"
	"VCS_Uptime_Monitor/internal/monitor-service/proxy"
	"VCS_Uptime_Monitor/internal/monitor-service/repository"
	"VCS_Uptime_Monitor/internal/monitor-service/scheduler"
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MonitorUpdate carries a partial update. Nil fields are left unchanged.
type MonitorUpdate struct {
	Name              *string
	URL               *string
	Method            *string
	Frequency         *int
	Active            *bool
	IgnoreGlobalProxy *bool
	ProxyConfig       *model.ProxyConfig
	// ClearProxyConfig removes the monitor's own proxy.
	ClearProxyConfig bool
}

type MonitorService interface {
	// Boot loads persisted monitors and the global proxy and schedules every active monitor.
	Boot(ctx context.Context) error
	GetMonitors(ctx context.Context) []model.Monitor
	GetMonitor(ctx context.Context, id string) (model.Monitor, error)
	AddMonitor(ctx context.Context, monitor model.Monitor) (model.Monitor, error)
	ImportMonitors(ctx context.Context, monitors []model.Monitor) (inserted []model.Monitor, nonInserted []model.Monitor, err error)
	UpdateMonitor(ctx context.Context, id string, update MonitorUpdate) (model.Monitor, error)
	DeleteMonitor(ctx context.Context, id string) error
	GetProxyConfig(ctx context.Context) *model.ProxyConfig
	SetProxyConfig(ctx context.Context, cfg *model.ProxyConfig) error
	// FlushStatuses persists status changes accumulated since the last flush.
	FlushStatuses(ctx context.Context) error
}

type monitorService struct {
	// mu serializes mutations. It is never held by the probe path, so
	// scheduler calls made under it cannot deadlock with Merge.
	mu        sync.Mutex
	list      *MonitorList
	repo      repository.MonitorRepository
	proxyRepo repository.ProxyConfigRepository
	scheduler scheduler.Scheduler
	resolver  proxy.Resolver
	onUpdate  scheduler.UpdateFunc
	onRemove  func(id string)
	logger    *zap.Logger
}

func (s *monitorService) Boot(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	global, err := s.proxyRepo.GetProxyConfig(ctx)
	if err != nil {
		return fmt.Errorf("MonitorService.Boot: %w", err)
	}
	s.resolver.SetGlobal(global)

	monitors, err := s.repo.GetMonitors(ctx)
	if err != nil {
		return fmt.Errorf("MonitorService.Boot: %w", err)
	}
	defs := make([]*model.Monitor, 0, len(monitors))
	for _, m := range monitors {
		if !m.Active {
			m.Status = model.StatusInactive
		}
		def, ok := s.list.Add(m)
		if !ok {
			s.logger.Warn("duplicate monitor id in storage, skipping", zap.String("monitor_id", m.ID))
			continue
		}
		defs = append(defs, def)
	}
	s.scheduler.Start(defs, s.onUpdate)
	s.logger.Info("monitors loaded", zap.Int("total", len(defs)), zap.Int("scheduled", s.scheduler.Len()))
	return nil
}

func (s *monitorService) GetMonitors(_ context.Context) []model.Monitor {
	return s.list.Snapshot()
}

func (s *monitorService) GetMonitor(_ context.Context, id string) (model.Monitor, error) {
	m, ok := s.list.Get(id)
	if !ok {
		return model.Monitor{}, fmt.Errorf("MonitorService.GetMonitor: %w", apperrors.ErrMonitorNotFound)
	}
	return m, nil
}

func (s *monitorService) AddMonitor(ctx context.Context, monitor model.Monitor) (model.Monitor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	created, err := s.addMonitor(ctx, monitor)
	if err != nil {
		return created, fmt.Errorf("MonitorService.AddMonitor: %w", err)
	}
	return created, nil
}

func (s *monitorService) ImportMonitors(ctx context.Context, monitors []model.Monitor) ([]model.Monitor, []model.Monitor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var inserted, nonInserted []model.Monitor
	for _, m := range monitors {
		created, err := s.addMonitor(ctx, m)
		if err != nil {
			s.logger.Warn("monitor not imported", zap.String("name", m.Name), zap.String("url", m.URL), zap.Error(err))
			nonInserted = append(nonInserted, m)
			continue
		}
		inserted = append(inserted, created)
	}
	return inserted, nonInserted, nil
}

func (s *monitorService) addMonitor(ctx context.Context, monitor model.Monitor) (model.Monitor, error) {
	if monitor.ID == "" {
		monitor.ID = uuid.NewString()
	}
	normalize(&monitor)
	if err := validate(monitor); err != nil {
		return monitor, err
	}
	if _, exists := s.list.Get(monitor.ID); exists {
		return monitor, apperrors.ErrMonitorAlreadyExists
	}
	monitor.Error = false
	monitor.ErrorMessage = ""
	monitor.Latency = 0
	monitor.LastCheckedAt = nil
	if monitor.Active {
		monitor.Status = model.StatusOffline
	} else {
		monitor.Status = model.StatusInactive
	}

	created, err := s.repo.CreateMonitor(ctx, monitor)
	if err != nil {
		return monitor, err
	}
	def, ok := s.list.Add(created)
	if !ok {
		return created, apperrors.ErrMonitorAlreadyExists
	}
	s.scheduler.Start([]*model.Monitor{def}, s.onUpdate)
	s.logger.Info("monitor added", zap.String("monitor_id", created.ID), zap.String("url", created.URL), zap.Bool("active", created.Active))
	return created, nil
}

func (s *monitorService) UpdateMonitor(ctx context.Context, id string, update MonitorUpdate) (model.Monitor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.list.Get(id)
	if !ok {
		return model.Monitor{}, fmt.Errorf("MonitorService.UpdateMonitor: %w", apperrors.ErrMonitorNotFound)
	}
	next := current.Clone()
	update.apply(&next)
	normalize(&next)
	if err := validate(next); err != nil {
		return current, fmt.Errorf("MonitorService.UpdateMonitor: %w", err)
	}
	activated := !current.Active && next.Active
	deactivated := current.Active && !next.Active
	if deactivated {
		next.Status = model.StatusInactive
		next.Error = false
		next.ErrorMessage = ""
		next.Latency = 0
	} else if activated {
		next.Status = model.StatusOffline
	}

	if err := s.repo.UpdateMonitor(ctx, next); err != nil {
		return current, fmt.Errorf("MonitorService.UpdateMonitor: %w", err)
	}
	// Stop first so an in-flight probe cannot overwrite the Inactive status.
	if deactivated {
		s.scheduler.Stop(id)
		s.removed(id)
	}
	def, ok := s.list.Update(id, func(m *model.Monitor) {
		m.Name = next.Name
		m.URL = next.URL
		m.Method = next.Method
		m.Frequency = next.Frequency
		m.Active = next.Active
		m.IgnoreGlobalProxy = next.IgnoreGlobalProxy
		m.ProxyConfig = next.ProxyConfig.Clone()
		if activated || deactivated {
			m.Status = next.Status
			m.Error = next.Error
			m.ErrorMessage = next.ErrorMessage
			m.Latency = next.Latency
		}
	})
	if !ok {
		return current, fmt.Errorf("MonitorService.UpdateMonitor: %w", apperrors.ErrMonitorNotFound)
	}

	if activated || (next.Active && scheduleChanged(current, next)) {
		s.scheduler.Start([]*model.Monitor{def}, s.onUpdate)
	}
	updated, _ := s.list.Get(id)
	s.logger.Info("monitor updated", zap.String("monitor_id", id), zap.Bool("active", updated.Active))
	return updated, nil
}

func (s *monitorService) DeleteMonitor(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.list.Get(id); !ok {
		return fmt.Errorf("MonitorService.DeleteMonitor: %w", apperrors.ErrMonitorNotFound)
	}
	if err := s.repo.DeleteMonitorById(ctx, id); err != nil {
		return fmt.Errorf("MonitorService.DeleteMonitor: %w", err)
	}
	s.scheduler.Stop(id)
	s.list.Remove(id)
	s.removed(id)
	s.logger.Info("monitor deleted", zap.String("monitor_id", id))
	return nil
}

func (s *monitorService) GetProxyConfig(_ context.Context) *model.ProxyConfig {
	return s.resolver.Global()
}

// SetProxyConfig replaces the global proxy and re-arms every active monitor
// that falls back to it.
func (s *monitorService) SetProxyConfig(ctx context.Context, cfg *model.ProxyConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cfg.IsEmpty() {
		cfg = nil
	} else if _, err := proxy.URL(cfg); err != nil {
		return fmt.Errorf("MonitorService.SetProxyConfig: %w: %v", apperrors.ErrInvalidProxyConfig, err)
	}
	if err := s.proxyRepo.SaveProxyConfig(ctx, cfg); err != nil {
		return fmt.Errorf("MonitorService.SetProxyConfig: %w", err)
	}
	s.resolver.SetGlobal(cfg)

	affected := s.list.Select(func(m *model.Monitor) bool {
		return m.Active && m.ProxyConfig.IsEmpty() && !m.IgnoreGlobalProxy
	})
	restarted := 0
	for _, def := range affected {
		if s.scheduler.Restart(def) {
			restarted++
		}
	}
	s.logger.Info("global proxy updated", zap.Bool("enabled", cfg != nil), zap.Int("restarted_monitors", restarted))
	return nil
}

// FlushStatuses holds mu for the whole write so a concurrent deactivation or
// delete cannot be overwritten by an older probe result.
func (s *monitorService) FlushStatuses(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dirty := s.list.TakeDirty()
	if len(dirty) == 0 {
		return nil
	}
	if err := s.repo.SaveStatuses(ctx, dirty); err != nil {
		ids := make([]string, 0, len(dirty))
		for _, m := range dirty {
			ids = append(ids, m.ID)
		}
		s.list.MarkDirty(ids...)
		return fmt.Errorf("MonitorService.FlushStatuses: %w", err)
	}
	s.logger.Debug("statuses flushed", zap.Int("count", len(dirty)))
	return nil
}

// removed runs onRemove once no further status of id can be published.
func (s *monitorService) removed(id string) {
	if s.onRemove != nil {
		s.onRemove(id)
	}
}

func (u MonitorUpdate) apply(m *model.Monitor) {
	if u.Name != nil {
		m.Name = *u.Name
	}
	if u.URL != nil {
		m.URL = *u.URL
	}
	if u.Method != nil {
		m.Method = *u.Method
	}
	if u.Frequency != nil {
		m.Frequency = *u.Frequency
	}
	if u.Active != nil {
		m.Active = *u.Active
	}
	if u.IgnoreGlobalProxy != nil {
		m.IgnoreGlobalProxy = *u.IgnoreGlobalProxy
	}
	if u.ClearProxyConfig {
		m.ProxyConfig = nil
	} else if u.ProxyConfig != nil {
		m.ProxyConfig = u.ProxyConfig.Clone()
	}
}

func normalize(m *model.Monitor) {
	m.Name = strings.TrimSpace(m.Name)
	m.URL = strings.TrimSpace(m.URL)
	m.Method = strings.ToUpper(strings.TrimSpace(m.Method))
	if m.ProxyConfig.IsEmpty() {
		m.ProxyConfig = nil
	}
}

func validate(m model.Monitor) error {
	switch {
	case m.Name == "":
		return fmt.Errorf("%w: name is required", apperrors.ErrInvalidMonitor)
	case m.URL == "":
		return fmt.Errorf("%w: url is required", apperrors.ErrInvalidMonitor)
	case m.Method != model.MethodHTTP && m.Method != model.MethodICMP:
		return fmt.Errorf("%w: method must be %s or %s", apperrors.ErrInvalidMonitor, model.MethodHTTP, model.MethodICMP)
	case m.Frequency <= 0:
		return fmt.Errorf("%w: frequency must be positive", apperrors.ErrInvalidMonitor)
	}
	if m.ProxyConfig != nil {
		if _, err := proxy.URL(m.ProxyConfig); err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrInvalidMonitor, err)
		}
	}
	return nil
}

// scheduleChanged reports whether the probe of a running monitor must be re-armed.
func scheduleChanged(prev, next model.Monitor) bool {
	return prev.URL != next.URL ||
		prev.Method != next.Method ||
		prev.Frequency != next.Frequency ||
		prev.IgnoreGlobalProxy != next.IgnoreGlobalProxy ||
		!sameProxy(prev.ProxyConfig, next.ProxyConfig)
}

func sameProxy(a, b *model.ProxyConfig) bool {
	if a.IsEmpty() || b.IsEmpty() {
		return a.IsEmpty() == b.IsEmpty()
	}
	return *a == *b
}

// NewMonitorService wires the list shared with sched (as its Merger) to the
// repositories. onUpdate receives every merged status; onRemove, which may be
// nil, is called when a monitor is deleted or deactivated.
func NewMonitorService(list *MonitorList, repo repository.MonitorRepository, proxyRepo repository.ProxyConfigRepository,
	sched scheduler.Scheduler, resolver proxy.Resolver, onUpdate scheduler.UpdateFunc, onRemove func(id string), logger *zap.Logger) MonitorService {
	return &monitorService{
		list:      list,
		repo:      repo,
		proxyRepo: proxyRepo,
		scheduler: sched,
		resolver:  resolver,
		onUpdate:  onUpdate,
		onRemove:  onRemove,
		logger:    logger,
	}
}
