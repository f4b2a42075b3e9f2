package httpkit

import (
	"net/http"
	"strings"

	phttp "termswap/internal/platform/net/http"
)

// MountUnder runs mount on a subrouter at prefix wrapped in mw.
// An empty or "/" prefix mounts a group on r itself
func MountUnder(r Router, prefix string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	scoped := func(sub Router) {
		if len(mw) > 0 {
			sub.Use(mw...)
		}
		mount(sub)
	}
	switch prefix {
	case "", "/":
		r.Group(scoped)
	default:
		r.Route(prefix, scoped)
	}
}

// MountAPI mounts under /api/<version>. Unmatched paths and methods below
// it answer with the JSON error envelope
//
//	httpkit.MountAPI(r, "v1", httpkit.CommonStack(opts), func(api httpkit.Router) {
//		modkit.MountAll(api, mods...)
//	})
func MountAPI(r Router, version string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	MountUnder(r, "/api/"+strings.Trim(version, "/"), mw, func(api Router) {
		api.NotFound(phttp.NotFoundJSON)
		api.MethodNotAllowed(phttp.MethodNotAllowedJSON)
		mount(api)
	})
}

// MountAPIV1 is MountAPI for v1
func MountAPIV1(r Router, mw []func(http.Handler) http.Handler, mount func(Router)) {
	MountAPI(r, "v1", mw, mount)
}
