package model

import "github.com/m-mizutani/goerr/v2"

// Tags for fatal precondition failures. The CLI renders these as plain
// messages and exits non-zero.
var (
	ErrTagPrivilege  = goerr.NewTag("privilege")
	ErrTagInvalidDir = goerr.NewTag("invalid_dir")
	ErrTagConfig     = goerr.NewTag("config")
)
