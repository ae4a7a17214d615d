package petnamesserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	catmapper "github.com/Apurer/pet-name-generator/internal/domains/catalog/adapters/http/mapper"
	cattypes "github.com/Apurer/pet-name-generator/internal/domains/catalog/application/types"
	catports "github.com/Apurer/pet-name-generator/internal/domains/catalog/ports"
)

// FactAPI serves the fact endpoints of the catalog.
type FactAPI struct {
	service catports.Service
}

// NewFactAPI creates a FactAPI backed by the provided service.
func NewFactAPI(service catports.Service) FactAPI {
	return FactAPI{service: service}
}

// Get /pets/:type/facts
// List every fact for a pet type
func (api *FactAPI) GetPetFacts(c *gin.Context) {
	result, err := api.service.Facts(c.Request.Context(), cattypes.PetTypeInput{PetType: c.Param("type")})
	if err != nil {
		respondCatalogServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, catmapper.FromFactList(result))
}

// Get /pets/:type/facts/random
// Draw a single fact for a pet type
func (api *FactAPI) GetRandomPetFact(c *gin.Context) {
	result, err := api.service.RandomFact(c.Request.Context(), cattypes.PetTypeInput{PetType: c.Param("type")})
	if err != nil {
		respondCatalogServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, catmapper.FromFact(result))
}

// Get /facts
// List every fact of every pet type
func (api *FactAPI) GetAllFacts(c *gin.Context) {
	result, err := api.service.AllFacts(c.Request.Context())
	if err != nil {
		respondCatalogServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, catmapper.FromFactCollection(result))
}

// Get /facts/random
// Draw a single fact, uniform over all facts
func (api *FactAPI) GetRandomFact(c *gin.Context) {
	result, err := api.service.RandomFactAcrossAll(c.Request.Context())
	if err != nil {
		respondCatalogServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, catmapper.FromFact(result))
}
