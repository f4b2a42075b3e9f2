// Package module holds the module contract and the port registry. It sits
// apart from modkit so a module can import it next to its own ports type
package module

import phttp "termswap/internal/platform/net/http"

// Module is what modkit mounts and registers
type Module interface {
	Name() string
	Ports() any // the bundle other modules may consume, or nil
	MountRoutes(r phttp.Router)
}
