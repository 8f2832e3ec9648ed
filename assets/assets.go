package assets

import _ "embed"

// Portfolio is the default content feed compiled into the binary.
//
//go:embed content/portfolio.yaml
var Portfolio []byte
