package interfaces

import (
	"context"

	"github.com/m-mizutani/fontinst/pkg/domain/model"
)

// InstallUseCase runs the extract, install, refresh and cleanup pipeline
// over one directory
type InstallUseCase interface {
	Run(ctx context.Context, dir string) (*model.Report, error)
}
