package http

import "net/http"

// Handler is a plain handler func; every route in the project uses it
type Handler = func(http.ResponseWriter, *http.Request)

// Router is the routing surface modules see. AdaptChi is the only
// implementation; nothing outside this package imports chi for routing
type Router interface {
	// routes
	Get(path string, h Handler)
	Post(path string, h Handler)
	Handle(path string, h http.Handler)

	// scoping
	Use(mw ...func(http.Handler) http.Handler)
	Group(fn func(Router))
	Route(prefix string, fn func(Router))

	// fallbacks for unmatched paths and methods; set them before Route so
	// subrouters inherit them
	NotFound(h Handler)
	MethodNotAllowed(h Handler)

	Mux() http.Handler
}
