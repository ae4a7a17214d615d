package petnamesserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	catmapper "github.com/Apurer/pet-name-generator/internal/domains/catalog/adapters/http/mapper"
	catports "github.com/Apurer/pet-name-generator/internal/domains/catalog/ports"
)

// VersionResponse is the body of GET /version.
type VersionResponse struct {
	Version string `json:"version"`
	Service string `json:"service"`
}

// HealthAPI serves liveness and build information.
type HealthAPI struct {
	service catports.Service
	version VersionResponse
}

// NewHealthAPI creates a HealthAPI reporting the given service name and version.
func NewHealthAPI(service catports.Service, serviceName, version string) HealthAPI {
	return HealthAPI{service: service, version: VersionResponse{Version: version, Service: serviceName}}
}

// Get /health
func (api *HealthAPI) HealthCheck(c *gin.Context) {
	result, err := api.service.Health(c.Request.Context())
	if err != nil {
		respondCatalogServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, catmapper.FromHealth(result))
}

// Get /version
func (api *HealthAPI) Version(c *gin.Context) {
	c.JSON(http.StatusOK, api.version)
}
