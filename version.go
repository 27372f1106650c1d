package reducto

import _ "embed"

// Version is the release of the reducto module, read from the VERSION file.
//
//go:embed VERSION
var Version string
