package domain

import "path/filepath"

const (
	// CritDirName is the name of the internal workspace directory.
	CritDirName = ".crit"

	// ReportsDirName is the name of the report cache directory.
	ReportsDirName = "reports"

	// ProjectFileName is the name of the default project file.
	ProjectFileName = "crit.yaml"

	// ProjectTOMLFileName is the name of the TOML flavoured project file.
	ProjectTOMLFileName = "crit.toml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultCritPath returns the default root directory for crit metadata.
func DefaultCritPath() string {
	return CritDirName
}

// DefaultReportsPath returns the default path for the report cache.
// It joins .crit and reports.
func DefaultReportsPath() string {
	return filepath.Join(CritDirName, ReportsDirName)
}
