package scheduler

import (
	"VCS_Uptime_Monitor/internal/monitor-service/model"
	"VCS_Uptime_Monitor/internal/monitor-service/probe"
	"VCS_Uptime_Monitor/internal/monitor-service/proxy"
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// UpdateFunc receives a snapshot of a monitor after every probe. It runs on the
// scheduler's merging goroutine: it must return quickly and must not call back
// into the Scheduler.
type UpdateFunc func(m model.Monitor)

// Merger folds a probe result into the shared definition and returns a
// snapshot of it.
type Merger interface {
	Merge(def *model.Monitor, r model.ProbeResult) model.Monitor
}

type Scheduler interface {
	// Start arms one repeating probe per active definition, replacing any
	// schedule already registered for the same id. Inactive definitions are skipped.
	Start(defs []*model.Monitor, onUpdate UpdateFunc)
	// Stop cancels the schedule for id. No update for that schedule is
	// delivered once Stop returns.
	Stop(id string)
	StopAll()
	// Restart re-arms def with the callback of its current schedule. It
	// reports false when def.ID is not scheduled.
	Restart(def *model.Monitor) bool
	Scheduled(id string) bool
	Len() int
	// Close stops every schedule and the merging goroutine. The Scheduler
	// cannot be reused afterwards.
	Close()
}

type entry struct {
	def      *model.Monitor
	input    model.Monitor
	onUpdate UpdateFunc
	cancel   context.CancelFunc
	done     chan struct{}

	mu      sync.Mutex
	stopped bool
}

func (e *entry) halt() {
	e.cancel()
	e.mu.Lock()
	e.stopped = true
	e.mu.Unlock()
}

type tick struct {
	entry  *entry
	result model.ProbeResult
}

type scheduler struct {
	mu      sync.Mutex
	entries map[string]*entry
	closed  bool

	resolver proxy.Resolver
	prober   probe.Prober
	merger   Merger
	logger   *zap.Logger

	defaultFrequency time.Duration
	results          chan tick
	quit             chan struct{}
	actorDone        chan struct{}
	closeOnce        sync.Once
}

type Option func(s *scheduler)

func WithMerger(m Merger) Option {
	return func(s *scheduler) {
		s.merger = m
	}
}

// WithDefaultFrequency sets the interval used for definitions whose frequency
// is not positive.
func WithDefaultFrequency(d time.Duration) Option {
	return func(s *scheduler) {
		if d > 0 {
			s.defaultFrequency = d
		}
	}
}

func WithResultBuffer(n int) Option {
	return func(s *scheduler) {
		if n >= 0 {
			s.results = make(chan tick, n)
		}
	}
}

func (s *scheduler) Start(defs []*model.Monitor, onUpdate UpdateFunc) {
	for _, def := range defs {
		if def == nil {
			continue
		}
		if !def.Active {
			s.logger.Debug("skipping inactive monitor", zap.String("monitor_id", def.ID))
			continue
		}
		s.arm(def, onUpdate, false)
	}
}

func (s *scheduler) Stop(id string) {
	s.mu.Lock()
	e, ok := s.entries[id]
	delete(s.entries, id)
	s.mu.Unlock()
	if !ok {
		return
	}
	e.halt()
	s.logger.Info("monitor stopped", zap.String("monitor_id", id))
}

func (s *scheduler) StopAll() {
	for _, e := range s.detachAll() {
		e.halt()
	}
}

func (s *scheduler) Restart(def *model.Monitor) bool {
	if def == nil {
		return false
	}
	if !def.Active {
		s.mu.Lock()
		_, ok := s.entries[def.ID]
		s.mu.Unlock()
		if ok {
			s.Stop(def.ID)
		}
		return ok
	}
	return s.arm(def, nil, true)
}

func (s *scheduler) Scheduled(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.entries[id]
	return ok
}

func (s *scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *scheduler) Close() {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		s.closed = true
		s.mu.Unlock()

		entries := s.detachAll()
		for _, e := range entries {
			e.halt()
		}
		for _, e := range entries {
			<-e.done
		}
		close(s.quit)
		<-s.actorDone
	})
}

func (s *scheduler) detachAll() []*entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := make([]*entry, 0, len(s.entries))
	for _, e := range s.entries {
		entries = append(entries, e)
	}
	s.entries = make(map[string]*entry)
	return entries
}

// arm registers a fresh schedule for def. With restart set it only replaces an
// existing schedule and inherits its callback.
func (s *scheduler) arm(def *model.Monitor, onUpdate UpdateFunc, restart bool) bool {
	input := probeInput(def)
	interval := time.Duration(input.Frequency) * time.Millisecond
	if interval <= 0 {
		s.logger.Warn("invalid monitor frequency, using default",
			zap.String("monitor_id", input.ID), zap.Int("frequency", input.Frequency), zap.Duration("default", s.defaultFrequency))
		interval = s.defaultFrequency
	}
	transport := s.transportFor(input)

	ctx, cancel := context.WithCancel(context.Background())
	e := &entry{
		def:      def,
		input:    input,
		onUpdate: onUpdate,
		cancel:   cancel,
		done:     make(chan struct{}),
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		cancel()
		s.logger.Warn("scheduler closed, monitor not started", zap.String("monitor_id", input.ID))
		return false
	}
	old, exists := s.entries[input.ID]
	if restart {
		if !exists {
			s.mu.Unlock()
			cancel()
			return false
		}
		e.onUpdate = old.onUpdate
	}
	s.entries[input.ID] = e
	s.mu.Unlock()

	if old != nil {
		old.halt()
	}
	go s.run(ctx, e, transport, interval)

	s.logger.Info("monitor started",
		zap.String("monitor_id", input.ID), zap.String("method", input.Method), zap.Duration("interval", interval), zap.Bool("proxied", transport.Proxy != nil))
	return true
}

func (s *scheduler) transportFor(m model.Monitor) probe.Transport {
	t := probe.Transport{Proxy: s.resolver.Resolve(m)}
	if m.Method == model.MethodHTTP {
		t.Client = s.resolver.Client(t.Proxy)
	}
	return t
}

// run probes on every tick. Ticks that arrive while a probe is still running
// are dropped by the ticker, so probes of one monitor never overlap.
func (s *scheduler) run(ctx context.Context, e *entry, transport probe.Transport, interval time.Duration) {
	defer close(e.done)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			res := s.prober.Probe(ctx, e.input, transport)
			if ctx.Err() != nil {
				return
			}
			select {
			case s.results <- tick{entry: e, result: res}:
			case <-ctx.Done():
				return
			}
		}
	}
}

func (s *scheduler) actor() {
	defer close(s.actorDone)
	for {
		select {
		case t := <-s.results:
			s.deliver(t)
		case <-s.quit:
			return
		}
	}
}

func (s *scheduler) deliver(t tick) {
	e := t.entry
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stopped {
		return
	}
	snapshot := s.merger.Merge(e.def, t.result)
	s.logger.Debug("monitor probed",
		zap.String("monitor_id", snapshot.ID), zap.String("status", snapshot.Status), zap.Int64("latency_ms", snapshot.Latency), zap.Bool("error", snapshot.Error))
	s.publish(e, snapshot)
}

func (s *scheduler) publish(e *entry, snapshot model.Monitor) {
	if e.onUpdate == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("Scheduler.publish: panic in update callback: %v", r)
			s.logger.Error("status callback failed", zap.Error(err), zap.String("monitor_id", snapshot.ID))
		}
	}()
	e.onUpdate(snapshot)
}

// probeInput copies the fields a probe reads so that status merges into def do
// not race with running probes.
func probeInput(def *model.Monitor) model.Monitor {
	return model.Monitor{
		ID:                def.ID,
		Name:              def.Name,
		URL:               def.URL,
		Method:            def.Method,
		Frequency:         def.Frequency,
		Active:            def.Active,
		IgnoreGlobalProxy: def.IgnoreGlobalProxy,
		ProxyConfig:       def.ProxyConfig.Clone(),
	}
}

type lockedMerger struct {
	mu sync.Mutex
}

func (m *lockedMerger) Merge(def *model.Monitor, r model.ProbeResult) model.Monitor {
	m.mu.Lock()
	defer m.mu.Unlock()
	def.Apply(r)
	return def.Clone()
}

func NewScheduler(resolver proxy.Resolver, prober probe.Prober, logger *zap.Logger, opts ...Option) Scheduler {
	s := &scheduler{
		entries:          make(map[string]*entry),
		resolver:         resolver,
		prober:           prober,
		merger:           &lockedMerger{},
		logger:           logger,
		defaultFrequency: time.Minute,
		results:          make(chan tick, 64),
		quit:             make(chan struct{}),
		actorDone:        make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	go s.actor()
	return s
}
