package repository

import (
	apperrors "VCS_Uptime_Monitor/internal/monitor-service/errors"
	"VCS_Uptime_Monitor/internal/monitor-service/model"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// FileRepository keeps monitors and the global proxy in two documents under a
// data directory: monitors.<ext> and config.<ext>.
type FileRepository interface {
	MonitorRepository
	ProxyConfigRepository
}

type settingsDocument struct {
	ProxyConfig *model.ProxyConfig `json:"proxy_config" yaml:"proxy_config"`
}

type fileRepository struct {
	mu           sync.Mutex
	dir          string
	format       string
	monitorsPath string
	configPath   string
}

func (r *fileRepository) GetMonitors(_ context.Context) ([]model.Monitor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	monitors, err := r.loadMonitors()
	if err != nil {
		return nil, fmt.Errorf("FileRepository.GetMonitors: %w", err)
	}
	return monitors, nil
}

func (r *fileRepository) CreateMonitor(_ context.Context, monitor model.Monitor) (model.Monitor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	monitors, err := r.loadMonitors()
	if err != nil {
		return monitor, fmt.Errorf("FileRepository.CreateMonitor: %w", err)
	}
	if indexOf(monitors, monitor.ID) >= 0 {
		return monitor, fmt.Errorf("FileRepository.CreateMonitor: %w", apperrors.ErrMonitorAlreadyExists)
	}
	now := time.Now()
	if monitor.CreatedAt.IsZero() {
		monitor.CreatedAt = now
	}
	monitor.UpdatedAt = now
	if err = r.writeDocument(r.monitorsPath, append(monitors, monitor)); err != nil {
		return monitor, fmt.Errorf("FileRepository.CreateMonitor: %w", err)
	}
	return monitor, nil
}

func (r *fileRepository) UpdateMonitor(_ context.Context, monitor model.Monitor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	monitors, err := r.loadMonitors()
	if err != nil {
		return fmt.Errorf("FileRepository.UpdateMonitor: %w", err)
	}
	i := indexOf(monitors, monitor.ID)
	if i < 0 {
		return fmt.Errorf("FileRepository.UpdateMonitor: %w", apperrors.ErrMonitorNotFound)
	}
	monitor.CreatedAt = monitors[i].CreatedAt
	monitor.LastCheckedAt = monitors[i].LastCheckedAt
	monitor.UpdatedAt = time.Now()
	monitors[i] = monitor
	if err = r.writeDocument(r.monitorsPath, monitors); err != nil {
		return fmt.Errorf("FileRepository.UpdateMonitor: %w", err)
	}
	return nil
}

func (r *fileRepository) DeleteMonitorById(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	monitors, err := r.loadMonitors()
	if err != nil {
		return fmt.Errorf("FileRepository.DeleteMonitorById: %w", err)
	}
	i := indexOf(monitors, id)
	if i < 0 {
		return nil
	}
	monitors = append(monitors[:i], monitors[i+1:]...)
	if err = r.writeDocument(r.monitorsPath, monitors); err != nil {
		return fmt.Errorf("FileRepository.DeleteMonitorById: %w", err)
	}
	return nil
}

// SaveStatuses ignores monitors that are no longer stored.
func (r *fileRepository) SaveStatuses(_ context.Context, updates []model.Monitor) error {
	if len(updates) == 0 {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	monitors, err := r.loadMonitors()
	if err != nil {
		return fmt.Errorf("FileRepository.SaveStatuses: %w", err)
	}
	for _, u := range updates {
		if i := indexOf(monitors, u.ID); i >= 0 {
			copyStatus(&monitors[i], u.Status, u.Latency, u.Error, u.ErrorMessage, u.LastCheckedAt)
		}
	}
	if err = r.writeDocument(r.monitorsPath, monitors); err != nil {
		return fmt.Errorf("FileRepository.SaveStatuses: %w", err)
	}
	return nil
}

func (r *fileRepository) UpdateStatus(_ context.Context, event model.StatusEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	monitors, err := r.loadMonitors()
	if err != nil {
		return fmt.Errorf("FileRepository.UpdateStatus: %w", err)
	}
	i := indexOf(monitors, event.ID)
	if i < 0 || !monitors[i].Active {
		return fmt.Errorf("FileRepository.UpdateStatus: %w", apperrors.ErrMonitorNotFound)
	}
	checkedAt := event.CheckedAt
	copyStatus(&monitors[i], event.Status, event.Latency, event.Error, event.ErrorMessage, &checkedAt)
	if err = r.writeDocument(r.monitorsPath, monitors); err != nil {
		return fmt.Errorf("FileRepository.UpdateStatus: %w", err)
	}
	return nil
}

func (r *fileRepository) GetProxyConfig(_ context.Context) (*model.ProxyConfig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var doc settingsDocument
	if err := r.readDocument(r.configPath, &doc); err != nil {
		return nil, fmt.Errorf("FileRepository.GetProxyConfig: %w", err)
	}
	if doc.ProxyConfig.IsEmpty() {
		return nil, nil
	}
	return doc.ProxyConfig, nil
}

func (r *fileRepository) SaveProxyConfig(_ context.Context, cfg *model.ProxyConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc := settingsDocument{}
	if !cfg.IsEmpty() {
		doc.ProxyConfig = cfg.Clone()
	}
	if err := r.writeDocument(r.configPath, doc); err != nil {
		return fmt.Errorf("FileRepository.SaveProxyConfig: %w", err)
	}
	return nil
}

func (r *fileRepository) loadMonitors() ([]model.Monitor, error) {
	var monitors []model.Monitor
	if err := r.readDocument(r.monitorsPath, &monitors); err != nil {
		return nil, err
	}
	return monitors, nil
}

// readDocument leaves v untouched when the file does not exist yet.
func (r *fileRepository) readDocument(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %q: %w", path, err)
	}
	if len(data) == 0 {
		return nil
	}
	if r.format == FormatYAML {
		err = yaml.Unmarshal(data, v)
	} else {
		err = json.Unmarshal(data, v)
	}
	if err != nil {
		return fmt.Errorf("parse %q: %w", path, err)
	}
	return nil
}

// writeDocument replaces path atomically through a temp file and rename.
func (r *fileRepository) writeDocument(path string, v interface{}) error {
	if err := os.MkdirAll(r.dir, 0o700); err != nil {
		return fmt.Errorf("ensure data dir %q: %w", r.dir, err)
	}
	var data []byte
	var err error
	if r.format == FormatYAML {
		data, err = yaml.Marshal(v)
	} else {
		data, err = json.MarshalIndent(v, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal %q: %w", path, err)
	}
	tmp := path + ".tmp"
	if err = os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write temp file %q: %w", tmp, err)
	}
	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("commit file %q: %w", path, err)
	}
	return nil
}

func indexOf(monitors []model.Monitor, id string) int {
	for i := range monitors {
		if monitors[i].ID == id {
			return i
		}
	}
	return -1
}

func copyStatus(m *model.Monitor, status string, latency int64, isError bool, errorMessage string, checkedAt *time.Time) {
	m.Status = status
	m.Latency = latency
	m.Error = isError
	m.ErrorMessage = errorMessage
	m.LastCheckedAt = checkedAt
}

// NewFileRepository stores documents in dir using format (json or yaml).
func NewFileRepository(dir, format string) (FileRepository, error) {
	switch format {
	case FormatJSON, FormatYAML:
	case "yml":
		format = FormatYAML
	default:
		return nil, fmt.Errorf("NewFileRepository: unsupported format %q", format)
	}
	return &fileRepository{
		dir:          dir,
		format:       format,
		monitorsPath: filepath.Join(dir, "monitors."+format),
		configPath:   filepath.Join(dir, "config."+format),
	}, nil
}
