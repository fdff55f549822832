package editor

import "errors"

var ErrUnknownMode = errors.New("unknown edit mode")
