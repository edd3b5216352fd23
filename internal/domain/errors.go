package domain

import "errors"

var (
	ErrNotLocal           = errors.New("project is not present locally")
	ErrOutsideProjectsDir = errors.New("path is outside the projects directory")
	ErrToolNotFound       = errors.New("required tool not found in PATH")
)
