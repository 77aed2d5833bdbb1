package providers

import (
	"net/http"

	"shiftlog/internal/structures"
)

type RouterProviderInterface interface {
	Get(url string, handler http.Handler)
	Post(url string, handler http.Handler)
	GetRoutes() []structures.Route
}

// RouterProvider collects routes for the server mux. Patterns are
// method-qualified ("GET /edit/{id}") so the same path can serve both the
// form and its submission; the mux answers other methods with 405 and an
// Allow header. Handlers read path wildcards via r.PathValue.
type RouterProvider struct {
	routes []structures.Route
}

func (rp *RouterProvider) Get(url string, handler http.Handler) {
	rp.routes = append(rp.routes, structures.Route{
		Url:     http.MethodGet + " " + url,
		Handler: handler,
	})
}

func (rp *RouterProvider) Post(url string, handler http.Handler) {
	rp.routes = append(rp.routes, structures.Route{
		Url:     http.MethodPost + " " + url,
		Handler: handler,
	})
}

func (rp *RouterProvider) GetRoutes() []structures.Route {
	return rp.routes
}

func NewRouterProvider() RouterProviderInterface {
	return &RouterProvider{}
}
