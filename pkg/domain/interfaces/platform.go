package interfaces

import "context"

// PrivilegeChecker reports whether the current process may write to the
// system font directory and registry
type PrivilegeChecker interface {
	IsElevated() (bool, error)
}

// Extractor unpacks one archive into a destination directory
type Extractor interface {
	// Extract writes every entry of the archive under destDir. Entries that
	// would escape destDir make the whole extraction fail.
	Extract(ctx context.Context, archivePath, destDir string) error
}

// FontRegistrar makes a font in the font directory available to
// applications without a reboot
type FontRegistrar interface {
	// Register is called with the extracted font src and its destination
	// dest in the font directory. dest has already been written unless
	// CopiesFile reports true.
	Register(ctx context.Context, src, dest string) error

	// CopiesFile reports whether Register writes dest from src itself
	CopiesFile() bool
}

// FontCacheService controls the OS font cache service
type FontCacheService interface {
	// Stop requests the service to stop. It may return before the service
	// has actually stopped.
	Stop(ctx context.Context) error

	// Stopped reports whether the service has fully stopped
	Stopped(ctx context.Context) (bool, error)

	// Start starts the service again
	Start(ctx context.Context) error
}
