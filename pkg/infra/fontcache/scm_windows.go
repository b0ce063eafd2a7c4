//go:build windows

package fontcache

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sys/windows/svc"
	"golang.org/x/sys/windows/svc/mgr"

	"github.com/m-mizutani/fontinst/pkg/domain/interfaces"
)

const defaultKind = KindSCM

// scm talks to the Service Control Manager. The manager handle is opened
// per call; the run restarts the service once.
type scm struct {
	name string
}

func newSCM(name string) (interfaces.FontCacheService, error) {
	return &scm{name: name}, nil
}

func (s *scm) withService(fn func(*mgr.Service) error) error {
	m, err := mgr.Connect()
	if err != nil {
		return goerr.Wrap(err, "failed to connect to service manager")
	}
	defer m.Disconnect()

	service, err := m.OpenService(s.name)
	if err != nil {
		return goerr.Wrap(err, "failed to open service", goerr.V("service", s.name))
	}
	defer service.Close()

	return fn(service)
}

func (s *scm) Stop(ctx context.Context) error {
	return s.withService(func(service *mgr.Service) error {
		status, err := service.Query()
		if err != nil {
			return goerr.Wrap(err, "failed to query service", goerr.V("service", s.name))
		}
		if status.State == svc.Stopped || status.State == svc.StopPending {
			return nil
		}
		if _, err := service.Control(svc.Stop); err != nil {
			return goerr.Wrap(err, "failed to stop service", goerr.V("service", s.name))
		}
		return nil
	})
}

func (s *scm) Stopped(ctx context.Context) (bool, error) {
	var stopped bool
	err := s.withService(func(service *mgr.Service) error {
		status, err := service.Query()
		if err != nil {
			return goerr.Wrap(err, "failed to query service", goerr.V("service", s.name))
		}
		stopped = status.State == svc.Stopped
		return nil
	})
	return stopped, err
}

func (s *scm) Start(ctx context.Context) error {
	return s.withService(func(service *mgr.Service) error {
		if err := service.Start(); err != nil {
			return goerr.Wrap(err, "failed to start service", goerr.V("service", s.name))
		}
		return nil
	})
}
