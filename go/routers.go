package petnamesserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Route is the information for every URI.
type Route struct {
	// Name is the name of this Route.
	Name string
	// Method is the string for the HTTP method. ex) GET, POST etc..
	Method string
	// Pattern is the pattern of the URI.
	Pattern string
	// HandlerFunc is the handler function of this route.
	HandlerFunc gin.HandlerFunc
}

// ApiHandleFunctions groups the handlers behind every catalog route.
type ApiHandleFunctions struct {
	PetAPI    PetAPI
	FactAPI   FactAPI
	HealthAPI HealthAPI
}

// NewRouter returns a new gin engine with every catalog route registered.
func NewRouter(handleFunctions ApiHandleFunctions) *gin.Engine {
	return NewRouterWithGinEngine(gin.Default(), handleFunctions)
}

// NewRouterWithGinEngine registers the catalog routes on an existing engine.
// Middleware must already be attached to router; gin only applies it to
// routes registered afterwards.
func NewRouterWithGinEngine(router *gin.Engine, handleFunctions ApiHandleFunctions) *gin.Engine {
	for _, route := range getRoutes(handleFunctions) {
		if route.HandlerFunc == nil {
			route.HandlerFunc = DefaultHandleFunc
		}
		router.Handle(route.Method, route.Pattern, route.HandlerFunc)
	}
	return router
}

// DefaultHandleFunc answers routes without a handler.
func DefaultHandleFunc(c *gin.Context) {
	c.String(http.StatusNotImplemented, "501 not implemented")
}

func getRoutes(handleFunctions ApiHandleFunctions) []Route {
	return []Route{
		{
			"HealthCheck",
			http.MethodGet,
			"/health",
			handleFunctions.HealthAPI.HealthCheck,
		},
		{
			"Version",
			http.MethodGet,
			"/version",
			handleFunctions.HealthAPI.Version,
		},
		{
			"GetPetTypes",
			http.MethodGet,
			"/pets",
			handleFunctions.PetAPI.GetPetTypes,
		},
		{
			"GetPetNames",
			http.MethodGet,
			"/pets/:type/names",
			handleFunctions.PetAPI.GetPetNames,
		},
		{
			"GetRandomPetName",
			http.MethodGet,
			"/pets/:type/random",
			handleFunctions.PetAPI.GetRandomPetName,
		},
		{
			"GetPetFacts",
			http.MethodGet,
			"/pets/:type/facts",
			handleFunctions.FactAPI.GetPetFacts,
		},
		{
			"GetRandomPetFact",
			http.MethodGet,
			"/pets/:type/facts/random",
			handleFunctions.FactAPI.GetRandomPetFact,
		},
		{
			"GetAllFacts",
			http.MethodGet,
			"/facts",
			handleFunctions.FactAPI.GetAllFacts,
		},
		{
			"GetRandomFact",
			http.MethodGet,
			"/facts/random",
			handleFunctions.FactAPI.GetRandomFact,
		},
	}
}
