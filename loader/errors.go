package loader

import "errors"

var ErrSchemeUnsupported = errors.New("unsupported scheme")
var ErrScriptNotAvailable = errors.New("script not available")
