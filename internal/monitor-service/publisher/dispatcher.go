package publisher

import (
	"VCS_Uptime_Monitor/internal/monitor-service/model"
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Dispatcher hands snapshots from the scheduler's callback to a Publisher on a
// separate goroutine so that slow sinks never hold up status merging.
type Dispatcher interface {
	Start()
	Stop()
	// Enqueue never blocks. It reports false when the snapshot was dropped.
	Enqueue(m model.Monitor) bool
	// Forget queues the release of per-monitor state behind the snapshots
	// already queued for id.
	Forget(id string) bool
}

type dispatchItem struct {
	monitor model.Monitor
	forget  bool
}

type dispatcher struct {
	queue     chan dispatchItem
	publisher Publisher
	timeout   time.Duration
	logger    *zap.Logger

	stopped  atomic.Bool
	quit     chan struct{}
	wg       sync.WaitGroup
	stopOnce sync.Once
}

func (d *dispatcher) Start() {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		for {
			select {
			case item := <-d.queue:
				d.handle(item)
			case <-d.quit:
				d.drain()
				return
			}
		}
	}()
}

func (d *dispatcher) Stop() {
	d.stopOnce.Do(func() {
		d.stopped.Store(true)
		close(d.quit)
	})
	d.wg.Wait()
}

func (d *dispatcher) Enqueue(m model.Monitor) bool {
	return d.push(dispatchItem{monitor: m})
}

func (d *dispatcher) Forget(id string) bool {
	return d.push(dispatchItem{monitor: model.Monitor{ID: id}, forget: true})
}

func (d *dispatcher) push(item dispatchItem) bool {
	if d.stopped.Load() {
		return false
	}
	select {
	case d.queue <- item:
		return true
	default:
		d.logger.Warn("publish queue full, dropping status update", zap.String("monitor_id", item.monitor.ID), zap.Bool("forget", item.forget))
		return false
	}
}

func (d *dispatcher) drain() {
	for {
		select {
		case item := <-d.queue:
			d.handle(item)
		default:
			return
		}
	}
}

func (d *dispatcher) handle(item dispatchItem) {
	if !item.forget {
		d.publish(item.monitor)
		return
	}
	if f, ok := d.publisher.(Forgetter); ok {
		f.Forget(item.monitor.ID)
	}
}

func (d *dispatcher) publish(m model.Monitor) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()
	if err := d.publisher.Publish(ctx, m); err != nil {
		d.logger.Error("failed to publish status update", zap.Error(err), zap.String("monitor_id", m.ID))
	}
}

func NewDispatcher(p Publisher, queueSize int, timeout time.Duration, logger *zap.Logger) Dispatcher {
	if queueSize <= 0 {
		queueSize = 1
	}
	return &dispatcher{
		queue:     make(chan dispatchItem, queueSize),
		publisher: p,
		timeout:   timeout,
		logger:    logger,
		quit:      make(chan struct{}),
	}
}
