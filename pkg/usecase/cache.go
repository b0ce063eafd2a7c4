package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

var errStopTimeout = goerr.New("font cache service did not stop in time")

// refreshCache restarts the font cache service. The service is polled until
// it reports stopped; if that takes longer than the stop timeout, start is
// attempted anyway.
func (uc *installUseCase) refreshCache(ctx context.Context) error {
	logger := ctxlog.From(ctx)
	logger.Info("Attempting to refresh font cache...")

	if err := uc.cache.Stop(ctx); err != nil {
		return goerr.Wrap(err, "failed to stop font cache service")
	}

	if err := uc.waitStopped(ctx); err != nil {
		if err != errStopTimeout {
			return err
		}
		logger.Warn("Font cache service still running, starting anyway",
			"timeout", uc.stopTimeout,
		)
	}

	if err := uc.cache.Start(ctx); err != nil {
		return goerr.Wrap(err, "failed to start font cache service")
	}

	logger.Info("Font cache refreshed successfully")
	return nil
}

func (uc *installUseCase) waitStopped(ctx context.Context) error {
	deadline := time.Now().Add(uc.stopTimeout)
	for {
		stopped, err := uc.cache.Stopped(ctx)
		if err != nil {
			return goerr.Wrap(err, "failed to query font cache service")
		}
		if stopped {
			return nil
		}
		if !time.Now().Before(deadline) {
			return errStopTimeout
		}

		select {
		case <-ctx.Done():
			return goerr.Wrap(ctx.Err(), "interrupted while waiting for font cache service")
		case <-time.After(uc.pollInterval):
		}
	}
}
