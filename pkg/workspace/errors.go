package workspace

import "errors"

var ErrNoWorkspace = errors.New("no such workspace")
