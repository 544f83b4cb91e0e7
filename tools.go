//go:build tools

package tools

// Tool dependencies tracked with blank imports so `go mod tidy` keeps them.
// Run: go run github.com/vektra/mockery/v2 (from the module root) to
// regenerate pkg/tango/mocks.
import (
	_ "github.com/vektra/mockery/v2"
)
