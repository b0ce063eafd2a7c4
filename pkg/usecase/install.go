package usecase

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/fontinst/pkg/domain/interfaces"
	"github.com/m-mizutani/fontinst/pkg/domain/model"
	"github.com/m-mizutani/fontinst/pkg/infra/archive"
	"github.com/m-mizutani/fontinst/pkg/utils/safe"
)

// ScratchDirName is the directory created inside the target directory to
// hold extracted archives
const ScratchDirName = "temp_extracted"

const (
	defaultStopTimeout  = 10 * time.Second
	defaultPollInterval = 200 * time.Millisecond
)

type installUseCase struct {
	privilege interfaces.PrivilegeChecker
	extractor interfaces.Extractor
	registrar interfaces.FontRegistrar
	cache     interfaces.FontCacheService

	fontDir      string
	archiveExts  []string
	replace      model.ReplacePolicy
	keepArchives bool
	refresh      bool
	stopTimeout  time.Duration
	pollInterval time.Duration
	runID        string
}

// Option configures the install use case
type Option func(*installUseCase)

// WithArchiveExtensions sets which archive extensions are scanned
func WithArchiveExtensions(exts []string) Option {
	return func(uc *installUseCase) {
		if len(exts) > 0 {
			uc.archiveExts = exts
		}
	}
}

// WithReplacePolicy sets the policy for fonts that already exist
func WithReplacePolicy(p model.ReplacePolicy) Option {
	return func(uc *installUseCase) {
		uc.replace = p
	}
}

// WithKeepArchives keeps archives in place after processing
func WithKeepArchives(keep bool) Option {
	return func(uc *installUseCase) {
		uc.keepArchives = keep
	}
}

// WithCacheRefresh enables or disables the font cache restart
func WithCacheRefresh(enabled bool) Option {
	return func(uc *installUseCase) {
		uc.refresh = enabled
	}
}

// WithStopTimeout bounds how long to wait for the cache service to stop
func WithStopTimeout(d time.Duration) Option {
	return func(uc *installUseCase) {
		if d > 0 {
			uc.stopTimeout = d
		}
	}
}

// WithPollInterval sets how often the cache service state is polled
func WithPollInterval(d time.Duration) Option {
	return func(uc *installUseCase) {
		if d > 0 {
			uc.pollInterval = d
		}
	}
}

// WithRunID tags the report with an identifier
func WithRunID(id string) Option {
	return func(uc *installUseCase) {
		uc.runID = id
	}
}

// NewInstall creates the install use case writing fonts to fontDir
func NewInstall(
	fontDir string,
	privilege interfaces.PrivilegeChecker,
	extractor interfaces.Extractor,
	registrar interfaces.FontRegistrar,
	cache interfaces.FontCacheService,
	opts ...Option,
) interfaces.InstallUseCase {
	uc := &installUseCase{
		privilege:    privilege,
		extractor:    extractor,
		registrar:    registrar,
		cache:        cache,
		fontDir:      fontDir,
		archiveExts:  archive.DefaultExtensions,
		replace:      model.ReplaceSkip,
		refresh:      true,
		stopTimeout:  defaultStopTimeout,
		pollInterval: defaultPollInterval,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// RequirePrivilege returns an error tagged ErrTagPrivilege unless checker
// reports elevated rights
func RequirePrivilege(checker interfaces.PrivilegeChecker) error {
	elevated, err := checker.IsElevated()
	if err != nil {
		return goerr.Wrap(err, "failed to check privileges", goerr.T(model.ErrTagPrivilege))
	}
	if !elevated {
		return goerr.New("administrative privileges are required to install fonts",
			goerr.T(model.ErrTagPrivilege))
	}
	return nil
}

// Run processes every archive in dir. Fatal preconditions (privilege,
// invalid directory) return an error before anything is touched; per
// archive and per font failures are recorded in the report.
func (uc *installUseCase) Run(ctx context.Context, dir string) (*model.Report, error) {
	logger := ctxlog.From(ctx)

	if err := RequirePrivilege(uc.privilege); err != nil {
		return nil, err
	}

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, goerr.New("invalid folder path",
			goerr.T(model.ErrTagInvalidDir),
			goerr.V("dir", dir))
	}

	report := &model.Report{
		RunID:   uc.runID,
		Dir:     dir,
		FontDir: uc.fontDir,
	}

	logger.Info("Processing folder", "dir", dir, "font_dir", uc.fontDir)

	archives, err := ScanArchives(dir, uc.archiveExts)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to scan for archives", goerr.T(model.ErrTagInvalidDir))
	}
	if len(archives) == 0 {
		logger.Info("No archives found in the folder", "dir", dir, "extensions", uc.archiveExts)
		return report, nil
	}

	if err := os.MkdirAll(uc.fontDir, 0755); err != nil {
		return nil, goerr.Wrap(err, "failed to prepare font directory", goerr.V("font_dir", uc.fontDir))
	}

	scratch := filepath.Join(dir, ScratchDirName)
	if err := os.MkdirAll(scratch, 0755); err != nil {
		return nil, goerr.Wrap(err, "failed to create scratch directory", goerr.V("dir", scratch))
	}

	for _, a := range archives {
		if err := ctx.Err(); err != nil {
			logger.Warn("Run interrupted, remaining archives left untouched", "error", err)
			break
		}
		report.Archives = append(report.Archives, uc.processArchive(ctx, a, scratch))
	}

	// only succeeds when empty
	_ = os.Remove(scratch)

	if uc.refresh && ctx.Err() == nil {
		if err := uc.refreshCache(ctx); err != nil {
			report.CacheErr = err
			logger.Error("Error refreshing font cache. Try restarting your applications.", "error", err)
		} else {
			report.CacheRefreshed = true
		}
	}

	return report, nil
}

// processArchive drives one archive through
// found → extracted → fonts-installed → deleted, or found → extraction-failed
func (uc *installUseCase) processArchive(ctx context.Context, a model.Archive, scratch string) model.ArchiveResult {
	logger := ctxlog.From(ctx).With("archive", a.Name)
	ctx = ctxlog.With(ctx, logger)

	result := model.ArchiveResult{
		Archive: a,
		State:   model.ArchiveFound,
	}
	logger.Info("Processing archive")

	extractDir, err := extractionDir(scratch, a.Stem)
	if err != nil {
		logger.Error("Error preparing extraction directory", "error", err)
		result.State = model.ArchiveExtractionFailed
		result.Err = err
		return result
	}
	defer func() {
		if err := os.RemoveAll(extractDir); err != nil {
			logger.Debug("Failed to remove extraction directory", "dir", extractDir, "error", err)
		}
	}()

	err = safe.Run(ctx, "extract", func(ctx context.Context) error {
		return uc.extractor.Extract(ctx, a.Path, extractDir)
	})
	if err != nil {
		logger.Error("Error extracting archive", "path", a.Path, "error", err)
		result.State = model.ArchiveExtractionFailed
		result.Err = err
		return result
	}
	result.State = model.ArchiveExtracted

	fonts, err := FindFonts(extractDir)
	if err != nil {
		logger.Error("Error searching extracted files", "error", err)
		result.Err = err
		return result
	}
	if len(fonts) == 0 {
		logger.Info("No font files in archive")
	}

	for _, font := range fonts {
		result.Fonts = append(result.Fonts, uc.installFont(ctx, font))
	}
	result.State = model.ArchiveFontsInstalled

	if uc.keepArchives {
		return result
	}

	if err := os.Remove(a.Path); err != nil {
		logger.Error("Error deleting archive", "path", a.Path, "error", err)
		result.Err = goerr.Wrap(err, "failed to delete archive", goerr.V("path", a.Path))
		return result
	}
	result.State = model.ArchiveDeleted
	logger.Info("Deleted processed archive")

	return result
}

// extractionDir creates the per-archive directory directly under scratch,
// named after stem. A stem that is not a plain file name, such as ".." from
// "...zip", gets a generated name instead.
func extractionDir(scratch, stem string) (string, error) {
	if stem == "." || !filepath.IsLocal(stem) || filepath.Base(stem) != stem {
		dir, err := os.MkdirTemp(scratch, "archive-*")
		if err != nil {
			return "", goerr.Wrap(err, "failed to create extraction directory", goerr.V("scratch", scratch))
		}
		return dir, nil
	}

	dir := filepath.Join(scratch, stem)
	// leftovers from an earlier interrupted run must not be installed
	if err := os.RemoveAll(dir); err != nil {
		return "", goerr.Wrap(err, "failed to clear extraction directory", goerr.V("dir", dir))
	}
	if err := os.Mkdir(dir, 0755); err != nil {
		return "", goerr.Wrap(err, "failed to create extraction directory", goerr.V("dir", dir))
	}
	return dir, nil
}
