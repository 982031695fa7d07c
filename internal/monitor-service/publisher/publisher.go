package publisher

import (
	"VCS_Uptime_Monitor/internal/monitor-service/model"
	"context"
	"fmt"

	"go.uber.org/multierr"
)

// Publisher delivers a monitor snapshot to one external consumer.
type Publisher interface {
	Publish(ctx context.Context, m model.Monitor) error
}

// Forgetter is implemented by publishers that keep per-monitor state.
type Forgetter interface {
	Forget(id string)
}

type Func func(ctx context.Context, m model.Monitor) error

func (f Func) Publish(ctx context.Context, m model.Monitor) error {
	return f(ctx, m)
}

type multiPublisher struct {
	publishers []Publisher
}

// Publish calls every publisher even when some of them fail.
func (mp *multiPublisher) Publish(ctx context.Context, m model.Monitor) error {
	var err error
	for _, p := range mp.publishers {
		if e := p.Publish(ctx, m); e != nil {
			err = multierr.Append(err, e)
		}
	}
	if err != nil {
		return fmt.Errorf("MultiPublisher.Publish: %w", err)
	}
	return nil
}

func (mp *multiPublisher) Forget(id string) {
	for _, p := range mp.publishers {
		if f, ok := p.(Forgetter); ok {
			f.Forget(id)
		}
	}
}

func NewMultiPublisher(publishers ...Publisher) Publisher {
	var ps []Publisher
	for _, p := range publishers {
		if p != nil {
			ps = append(ps, p)
		}
	}
	return &multiPublisher{publishers: ps}
}
