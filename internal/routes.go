package internal

import (
	"net/http"

	"shiftlog/internal/controllers"
	"shiftlog/internal/providers"
	"shiftlog/internal/structures"
)

func InitRoutes(trackerController *controllers.TrackerController, conf *structures.Config) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/{$}", http.HandlerFunc(trackerController.Index))
	routers.Post("/add", http.HandlerFunc(trackerController.Add))
	routers.Get("/edit/{id}", http.HandlerFunc(trackerController.EditForm))
	routers.Post("/edit/{id}", http.HandlerFunc(trackerController.Edit))
	routers.Post("/delete/{id}", http.HandlerFunc(trackerController.Delete))
	return routers
}
