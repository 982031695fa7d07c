package service

import (
	apperrors "VCS_Uptime_Monitor/internal/monitor-service/errors"
	mockrepository "VCS_Uptime_Monitor/internal/monitor-service/mocks/repository"
	mockscheduler "VCS_Uptime_Monitor/internal/monitor-service/mocks/scheduler"
	"VCS_Uptime_Monitor/internal/monitor-service/model"
	"VCS_Uptime_Monitor/internal/monitor-service/proxy"
	"VCS_Uptime_Monitor/internal/monitor-service/scheduler"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type testDeps struct {
	list      *MonitorList
	repo      *mockrepository.MockMonitorRepository
	proxyRepo *mockrepository.MockProxyConfigRepository
	scheduler *mockscheduler.MockScheduler
	resolver  proxy.Resolver
	service   MonitorService
	removed   []string
}

func newTestDeps(t *testing.T) *testDeps {
	ctrl := gomock.NewController(t)
	d := &testDeps{
		list:      NewMonitorList(),
		repo:      mockrepository.NewMockMonitorRepository(ctrl),
		proxyRepo: mockrepository.NewMockProxyConfigRepository(ctrl),
		scheduler: mockscheduler.NewMockScheduler(ctrl),
		resolver:  proxy.NewResolver(nil, time.Second, zap.NewNop()),
	}
	d.service = NewMonitorService(d.list, d.repo, d.proxyRepo, d.scheduler, d.resolver, func(model.Monitor) {},
		func(id string) { d.removed = append(d.removed, id) }, zap.NewNop())
	return d
}

func echoCreate(_ context.Context, m model.Monitor) (model.Monitor, error) {
	m.CreatedAt = time.Now()
	return m, nil
}

func seed(d *testDeps, monitors ...model.Monitor) {
	for _, m := range monitors {
		d.list.Add(m)
	}
}

func activeHTTP(id string) model.Monitor {
	return model.Monitor{
		ID:        id,
		Name:      "monitor " + id,
		URL:       "http://" + id + ".local",
		Method:    model.MethodHTTP,
		Frequency: 60000,
		Active:    true,
		Status:    model.StatusOnline,
	}
}

func TestMonitorService_Boot(t *testing.T) {
	ctx := context.Background()
	global := &model.ProxyConfig{Host: "proxy.local", Port: 3128}
	stored := []model.Monitor{activeHTTP("a"), {ID: "b", Name: "gw", URL: "10.0.0.1", Method: model.MethodICMP, Frequency: 1000, Status: model.StatusOnline}}

	testCases := []struct {
		name       string
		setupMocks func(d *testDeps)
		expectErr  bool
	}{
		{
			name: "Success",
			setupMocks: func(d *testDeps) {
				d.proxyRepo.EXPECT().GetProxyConfig(ctx).Return(global, nil)
				d.repo.EXPECT().GetMonitors(ctx).Return(stored, nil)
				d.scheduler.EXPECT().Start(gomock.Any(), gomock.Any()).Do(func(defs []*model.Monitor, _ scheduler.UpdateFunc) {
					assert.Len(t, defs, 2)
				})
				d.scheduler.EXPECT().Len().Return(1)
			},
		},
		{
			name: "Error proxy repository",
			setupMocks: func(d *testDeps) {
				d.proxyRepo.EXPECT().GetProxyConfig(ctx).Return(nil, errors.New("database error"))
			},
			expectErr: true,
		},
		{
			name: "Error monitor repository",
			setupMocks: func(d *testDeps) {
				d.proxyRepo.EXPECT().GetProxyConfig(ctx).Return(nil, nil)
				d.repo.EXPECT().GetMonitors(ctx).Return(nil, errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newTestDeps(t)
			tc.setupMocks(d)

			err := d.service.Boot(ctx)

			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, global, d.service.GetProxyConfig(ctx))
			monitors := d.service.GetMonitors(ctx)
			require.Len(t, monitors, 2)
			assert.Equal(t, model.StatusOnline, monitors[0].Status)
			assert.Equal(t, model.StatusInactive, monitors[1].Status)
		})
	}
}

func TestMonitorService_AddMonitor(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name           string
		input          model.Monitor
		setupMocks     func(d *testDeps)
		expectedStatus string
		expectedErr    error
	}{
		{
			name:  "Success active monitor is scheduled",
			input: model.Monitor{Name: " api ", URL: "http://api.local", Method: "http", Frequency: 1000, Active: true},
			setupMocks: func(d *testDeps) {
				d.repo.EXPECT().CreateMonitor(ctx, gomock.Any()).DoAndReturn(echoCreate)
				d.scheduler.EXPECT().Start(gomock.Len(1), gomock.Any())
			},
			expectedStatus: model.StatusOffline,
		},
		{
			name:  "Success inactive monitor",
			input: model.Monitor{Name: "gw", URL: "10.0.0.1", Method: model.MethodICMP, Frequency: 1000},
			setupMocks: func(d *testDeps) {
				d.repo.EXPECT().CreateMonitor(ctx, gomock.Any()).DoAndReturn(echoCreate)
				d.scheduler.EXPECT().Start(gomock.Len(1), gomock.Any())
			},
			expectedStatus: model.StatusInactive,
		},
		{
			name:        "Error unsupported method",
			input:       model.Monitor{Name: "api", URL: "http://api.local", Method: "TCP", Frequency: 1000},
			setupMocks:  func(d *testDeps) {},
			expectedErr: apperrors.ErrInvalidMonitor,
		},
		{
			name:        "Error non positive frequency",
			input:       model.Monitor{Name: "api", URL: "http://api.local", Method: model.MethodHTTP},
			setupMocks:  func(d *testDeps) {},
			expectedErr: apperrors.ErrInvalidMonitor,
		},
		{
			name: "Error invalid proxy port",
			input: model.Monitor{Name: "api", URL: "http://api.local", Method: model.MethodHTTP, Frequency: 1000,
				ProxyConfig: &model.ProxyConfig{Host: "proxy.local", Port: 70000}},
			setupMocks:  func(d *testDeps) {},
			expectedErr: apperrors.ErrInvalidMonitor,
		},
		{
			name:        "Error duplicate id",
			input:       activeHTTP("a"),
			setupMocks:  func(d *testDeps) { seed(d, activeHTTP("a")) },
			expectedErr: apperrors.ErrMonitorAlreadyExists,
		},
		{
			name:  "Error repository",
			input: activeHTTP("b"),
			setupMocks: func(d *testDeps) {
				d.repo.EXPECT().CreateMonitor(ctx, gomock.Any()).Return(model.Monitor{}, apperrors.ErrMonitorAlreadyExists)
			},
			expectedErr: apperrors.ErrMonitorAlreadyExists,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newTestDeps(t)
			tc.setupMocks(d)

			created, err := d.service.AddMonitor(ctx, tc.input)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, created.ID)
			assert.Equal(t, tc.expectedStatus, created.Status)
			got, err := d.service.GetMonitor(ctx, created.ID)
			require.NoError(t, err)
			assert.Equal(t, created.Name, got.Name)
			assert.NotContains(t, got.Name, " ")
			assert.Contains(t, []string{model.MethodHTTP, model.MethodICMP}, got.Method)
		})
	}
}

func TestMonitorService_ImportMonitors(t *testing.T) {
	ctx := context.Background()
	d := newTestDeps(t)
	d.repo.EXPECT().CreateMonitor(ctx, gomock.Any()).DoAndReturn(echoCreate).Times(2)
	d.scheduler.EXPECT().Start(gomock.Any(), gomock.Any()).Times(2)

	inserted, nonInserted, err := d.service.ImportMonitors(ctx, []model.Monitor{
		{Name: "a", URL: "http://a.local", Method: model.MethodHTTP, Frequency: 1000, Active: true},
		{Name: "", URL: "http://b.local", Method: model.MethodHTTP, Frequency: 1000},
		{Name: "c", URL: "10.0.0.3", Method: model.MethodICMP, Frequency: 1000},
	})

	require.NoError(t, err)
	assert.Len(t, inserted, 2)
	require.Len(t, nonInserted, 1)
	assert.Equal(t, "http://b.local", nonInserted[0].URL)
	assert.Len(t, d.service.GetMonitors(ctx), 2)
}

func TestMonitorService_UpdateMonitor(t *testing.T) {
	ctx := context.Background()
	strPtr := func(s string) *string { return &s }
	boolPtr := func(b bool) *bool { return &b }
	intPtr := func(i int) *int { return &i }

	testCases := []struct {
		name        string
		existing    model.Monitor
		update      MonitorUpdate
		setupMocks  func(d *testDeps)
		check       func(t *testing.T, m model.Monitor)
		removed     []string
		expectedErr error
	}{
		{
			name:     "Success rename keeps schedule",
			existing: activeHTTP("a"),
			update:   MonitorUpdate{Name: strPtr("renamed")},
			setupMocks: func(d *testDeps) {
				d.repo.EXPECT().UpdateMonitor(ctx, gomock.Any()).Return(nil)
			},
			check: func(t *testing.T, m model.Monitor) {
				assert.Equal(t, "renamed", m.Name)
				assert.Equal(t, model.StatusOnline, m.Status)
			},
		},
		{
			name:     "Success url change re-arms",
			existing: activeHTTP("a"),
			update:   MonitorUpdate{URL: strPtr("http://new.local"), Frequency: intPtr(5000)},
			setupMocks: func(d *testDeps) {
				d.repo.EXPECT().UpdateMonitor(ctx, gomock.Any()).Return(nil)
				d.scheduler.EXPECT().Start(gomock.Len(1), gomock.Any())
			},
			check: func(t *testing.T, m model.Monitor) {
				assert.Equal(t, "http://new.local", m.URL)
				assert.Equal(t, 5000, m.Frequency)
			},
		},
		{
			name:     "Success proxy change re-arms",
			existing: activeHTTP("a"),
			update:   MonitorUpdate{ProxyConfig: &model.ProxyConfig{Host: "proxy.local", Port: 3128}},
			setupMocks: func(d *testDeps) {
				d.repo.EXPECT().UpdateMonitor(ctx, gomock.Any()).Return(nil)
				d.scheduler.EXPECT().Start(gomock.Len(1), gomock.Any())
			},
			check: func(t *testing.T, m model.Monitor) {
				assert.Equal(t, &model.ProxyConfig{Host: "proxy.local", Port: 3128}, m.ProxyConfig)
			},
		},
		{
			name:     "Success deactivate stops and marks inactive",
			existing: activeHTTP("a"),
			update:   MonitorUpdate{Active: boolPtr(false)},
			setupMocks: func(d *testDeps) {
				d.repo.EXPECT().UpdateMonitor(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, m model.Monitor) error {
					assert.Equal(t, model.StatusInactive, m.Status)
					return nil
				})
				d.scheduler.EXPECT().Stop("a")
			},
			check: func(t *testing.T, m model.Monitor) {
				assert.False(t, m.Active)
				assert.Equal(t, model.StatusInactive, m.Status)
			},
			removed: []string{"a"},
		},
		{
			name: "Success activate starts",
			existing: func() model.Monitor {
				m := activeHTTP("a")
				m.Active = false
				m.Status = model.StatusInactive
				return m
			}(),
			update: MonitorUpdate{Active: boolPtr(true)},
			setupMocks: func(d *testDeps) {
				d.repo.EXPECT().UpdateMonitor(ctx, gomock.Any()).Return(nil)
				d.scheduler.EXPECT().Start(gomock.Len(1), gomock.Any())
			},
			check: func(t *testing.T, m model.Monitor) {
				assert.True(t, m.Active)
				assert.Equal(t, model.StatusOffline, m.Status)
			},
		},
		{
			name:        "Error not found",
			existing:    activeHTTP("other"),
			update:      MonitorUpdate{Name: strPtr("x")},
			setupMocks:  func(d *testDeps) {},
			expectedErr: apperrors.ErrMonitorNotFound,
		},
		{
			name:        "Error invalid update",
			existing:    activeHTTP("a"),
			update:      MonitorUpdate{Method: strPtr("UDP")},
			setupMocks:  func(d *testDeps) {},
			expectedErr: apperrors.ErrInvalidMonitor,
		},
		{
			name:     "Error repository leaves monitor untouched",
			existing: activeHTTP("a"),
			update:   MonitorUpdate{Active: boolPtr(false)},
			setupMocks: func(d *testDeps) {
				d.repo.EXPECT().UpdateMonitor(ctx, gomock.Any()).Return(errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newTestDeps(t)
			seed(d, tc.existing)
			tc.setupMocks(d)

			updated, err := d.service.UpdateMonitor(ctx, "a", tc.update)

			if tc.expectedErr != nil {
				require.Error(t, err)
				if errors.Is(tc.expectedErr, apperrors.ErrMonitorNotFound) || errors.Is(tc.expectedErr, apperrors.ErrInvalidMonitor) {
					assert.ErrorIs(t, err, tc.expectedErr)
				}
				if got, ok := d.list.Get("a"); ok {
					assert.Equal(t, tc.existing, got)
				}
				return
			}
			require.NoError(t, err)
			tc.check(t, updated)
			assert.Equal(t, tc.removed, d.removed)
			stored, ok := d.list.Get("a")
			require.True(t, ok)
			assert.Equal(t, updated, stored)
		})
	}
}

func TestMonitorService_DeleteMonitor(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name        string
		setupMocks  func(d *testDeps)
		expectedErr bool
		remaining   int
		removed     []string
	}{
		{
			name: "Success",
			setupMocks: func(d *testDeps) {
				seed(d, activeHTTP("a"))
				gomock.InOrder(
					d.repo.EXPECT().DeleteMonitorById(ctx, "a").Return(nil),
					d.scheduler.EXPECT().Stop("a"),
				)
			},
			remaining: 0,
			removed:   []string{"a"},
		},
		{
			name:        "Error not found",
			setupMocks:  func(d *testDeps) {},
			expectedErr: true,
		},
		{
			name: "Error repository keeps monitor scheduled",
			setupMocks: func(d *testDeps) {
				seed(d, activeHTTP("a"))
				d.repo.EXPECT().DeleteMonitorById(ctx, "a").Return(errors.New("database error"))
			},
			expectedErr: true,
			remaining:   1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newTestDeps(t)
			tc.setupMocks(d)

			err := d.service.DeleteMonitor(ctx, "a")

			if tc.expectedErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.remaining, d.list.Len())
			assert.Equal(t, tc.removed, d.removed)
		})
	}
}

func TestMonitorService_SetProxyConfig(t *testing.T) {
	ctx := context.Background()
	own := activeHTTP("own")
	own.ProxyConfig = &model.ProxyConfig{Host: "own.proxy", Port: 8080}
	ignoring := activeHTTP("ignoring")
	ignoring.IgnoreGlobalProxy = true
	inactive := activeHTTP("inactive")
	inactive.Active = false
	cfg := &model.ProxyConfig{Host: "proxy.local", Port: 3128}

	testCases := []struct {
		name              string
		input             *model.ProxyConfig
		setupMocks        func(d *testDeps, restarted *[]string)
		expectedGlobal    *model.ProxyConfig
		expectedRestarted []string
		expectedErr       error
	}{
		{
			name:  "Success restarts monitors using the global proxy",
			input: cfg,
			setupMocks: func(d *testDeps, restarted *[]string) {
				d.proxyRepo.EXPECT().SaveProxyConfig(ctx, cfg).Return(nil)
				d.scheduler.EXPECT().Restart(gomock.Any()).DoAndReturn(func(def *model.Monitor) bool {
					*restarted = append(*restarted, def.ID)
					return true
				}).AnyTimes()
			},
			expectedGlobal:    cfg,
			expectedRestarted: []string{"a"},
		},
		{
			name:  "Success clearing",
			input: &model.ProxyConfig{},
			setupMocks: func(d *testDeps, restarted *[]string) {
				d.resolver.SetGlobal(cfg)
				d.proxyRepo.EXPECT().SaveProxyConfig(ctx, nil).Return(nil)
				d.scheduler.EXPECT().Restart(gomock.Any()).DoAndReturn(func(def *model.Monitor) bool {
					*restarted = append(*restarted, def.ID)
					return true
				}).AnyTimes()
			},
			expectedRestarted: []string{"a"},
		},
		{
			name:              "Error invalid port",
			input:             &model.ProxyConfig{Host: "proxy.local", Port: -1},
			setupMocks:        func(d *testDeps, restarted *[]string) {},
			expectedErr:       apperrors.ErrInvalidProxyConfig,
			expectedRestarted: nil,
		},
		{
			name:  "Error repository keeps previous global",
			input: cfg,
			setupMocks: func(d *testDeps, restarted *[]string) {
				d.proxyRepo.EXPECT().SaveProxyConfig(ctx, cfg).Return(errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newTestDeps(t)
			seed(d, activeHTTP("a"), own, ignoring, inactive)
			var restarted []string
			tc.setupMocks(d, &restarted)

			err := d.service.SetProxyConfig(ctx, tc.input)

			if tc.expectedErr != nil {
				require.Error(t, err)
				if errors.Is(tc.expectedErr, apperrors.ErrInvalidProxyConfig) {
					assert.ErrorIs(t, err, tc.expectedErr)
				}
				assert.Nil(t, d.service.GetProxyConfig(ctx))
				assert.Empty(t, restarted)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedGlobal, d.service.GetProxyConfig(ctx))
			assert.Equal(t, tc.expectedRestarted, restarted)
		})
	}
}

func TestMonitorService_FlushStatuses(t *testing.T) {
	ctx := context.Background()
	d := newTestDeps(t)
	seed(d, activeHTTP("a"), activeHTTP("b"))

	require.NoError(t, d.service.FlushStatuses(ctx))

	def := d.list.Select(func(m *model.Monitor) bool { return m.ID == "b" })[0]
	d.list.Merge(def, model.OfflineResult(model.ReasonTimeout, true))

	gomock.InOrder(
		d.repo.EXPECT().SaveStatuses(ctx, gomock.Len(1)).Return(errors.New("database error")),
		d.repo.EXPECT().SaveStatuses(ctx, gomock.Len(1)).DoAndReturn(func(_ context.Context, ms []model.Monitor) error {
			assert.Equal(t, "b", ms[0].ID)
			assert.Equal(t, model.StatusOffline, ms[0].Status)
			assert.Equal(t, model.ReasonTimeout, ms[0].ErrorMessage)
			return nil
		}),
	)

	assert.Error(t, d.service.FlushStatuses(ctx))
	assert.NoError(t, d.service.FlushStatuses(ctx))
	assert.NoError(t, d.service.FlushStatuses(ctx))
}

func TestMonitorService_FlushStatuses_DeactivateDuringFlush(t *testing.T) {
	ctx := context.Background()
	d := newTestDeps(t)
	seed(d, activeHTTP("a"))
	def := d.list.Select(func(m *model.Monitor) bool { return m.ID == "a" })[0]
	d.list.Merge(def, model.ProbeResult{Status: model.StatusOnline, Latency: 12, CheckedAt: time.Now()})

	var (
		mu     sync.Mutex
		writes []string
	)
	record := func(w string) {
		mu.Lock()
		defer mu.Unlock()
		writes = append(writes, w)
	}
	flushStarted := make(chan struct{})
	releaseFlush := make(chan struct{})
	d.repo.EXPECT().SaveStatuses(ctx, gomock.Len(1)).DoAndReturn(func(_ context.Context, ms []model.Monitor) error {
		close(flushStarted)
		<-releaseFlush
		record("flush:" + ms[0].Status)
		return nil
	})
	d.repo.EXPECT().UpdateMonitor(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, m model.Monitor) error {
		record("update:" + m.Status)
		return nil
	})
	d.scheduler.EXPECT().Stop("a")

	flushDone := make(chan error, 1)
	go func() { flushDone <- d.service.FlushStatuses(ctx) }()
	<-flushStarted

	updateDone := make(chan error, 1)
	go func() {
		_, err := d.service.UpdateMonitor(ctx, "a", MonitorUpdate{Active: func(b bool) *bool { return &b }(false)})
		updateDone <- err
	}()

	select {
	case <-updateDone:
		t.Fatal("deactivation finished while a flush was writing")
	case <-time.After(50 * time.Millisecond):
	}
	close(releaseFlush)

	require.NoError(t, <-flushDone)
	require.NoError(t, <-updateDone)
	mu.Lock()
	assert.Equal(t, []string{"flush:" + model.StatusOnline, "update:" + model.StatusInactive}, writes)
	mu.Unlock()

	m, err := d.service.GetMonitor(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, model.StatusInactive, m.Status)
	assert.NoError(t, d.service.FlushStatuses(ctx))
}

func TestMonitorList(t *testing.T) {
	l := NewMonitorList()
	def, ok := l.Add(activeHTTP("a"))
	require.True(t, ok)
	_, ok = l.Add(activeHTTP("a"))
	assert.False(t, ok)

	snapshot := l.Merge(def, model.ProbeResult{Status: model.StatusOnline, Latency: 42, CheckedAt: time.Now()})
	assert.Equal(t, int64(42), snapshot.Latency)
	snapshot.ProxyConfig = &model.ProxyConfig{Host: "mutated"}
	got, _ := l.Get("a")
	assert.Nil(t, got.ProxyConfig)

	dirty := l.TakeDirty()
	require.Len(t, dirty, 1)
	assert.Nil(t, l.TakeDirty())

	l.Merge(def, model.OfflineResult(model.ReasonNoReply, false))
	assert.True(t, l.Remove("a"))
	assert.False(t, l.Remove("a"))
	assert.Nil(t, l.TakeDirty())

	l.MarkDirty("a")
	assert.Nil(t, l.TakeDirty())
}
