package petnamesserver

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/runtime"

	catmapper "github.com/Apurer/pet-name-generator/internal/domains/catalog/adapters/http/mapper"
	cattypes "github.com/Apurer/pet-name-generator/internal/domains/catalog/application/types"
	catports "github.com/Apurer/pet-name-generator/internal/domains/catalog/ports"
)

const (
	defaultNameCount       = 1
	defaultRandomSelection = true
)

// GetPetNamesParams defines parameters for GetPetNames.
type GetPetNamesParams struct {
	// Count is the number of names to return, 1 to 10.
	Count *int `form:"count,omitempty" json:"count,omitempty"`
	// RandomSelection samples without replacement when true and returns a table prefix otherwise.
	RandomSelection *bool `form:"random_selection,omitempty" json:"random_selection,omitempty"`
}

// PetAPI serves the name endpoints of the catalog.
type PetAPI struct {
	service catports.Service
}

// NewPetAPI creates a PetAPI backed by the provided service.
func NewPetAPI(service catports.Service) PetAPI {
	return PetAPI{service: service}
}

// Get /pets
// List the pet types that have names
func (api *PetAPI) GetPetTypes(c *gin.Context) {
	result, err := api.service.AvailablePetTypes(c.Request.Context())
	if err != nil {
		respondCatalogServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, catmapper.FromPetTypes(result))
}

// Get /pets/:type/names
// Select one or more names for a pet type
func (api *PetAPI) GetPetNames(c *gin.Context) {
	params, ok := bindGetPetNamesParams(c)
	if !ok {
		return
	}
	input := cattypes.SelectNamesInput{
		PetType:         c.Param("type"),
		Count:           defaultNameCount,
		RandomSelection: defaultRandomSelection,
	}
	if params.Count != nil {
		input.Count = *params.Count
	}
	if params.RandomSelection != nil {
		input.RandomSelection = *params.RandomSelection
	}
	result, err := api.service.SelectNames(c.Request.Context(), input)
	if err != nil {
		respondCatalogServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, catmapper.FromNameSelection(result))
}

// Get /pets/:type/random
// Draw a single random name
func (api *PetAPI) GetRandomPetName(c *gin.Context) {
	result, err := api.service.RandomName(c.Request.Context(), cattypes.PetTypeInput{PetType: c.Param("type")})
	if err != nil {
		respondCatalogServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, catmapper.FromRandomName(result))
}

func bindGetPetNamesParams(c *gin.Context) (GetPetNamesParams, bool) {
	var params GetPetNamesParams
	query := normalizeBooleans(c.Request.URL.Query(), "random_selection")
	if err := runtime.BindQueryParameter("form", true, false, "count", query, &params.Count); err != nil {
		respondInvalidParameter(c, "count", err)
		return params, false
	}
	if err := runtime.BindQueryParameter("form", true, false, "random_selection", query, &params.RandomSelection); err != nil {
		respondInvalidParameter(c, "random_selection", err)
		return params, false
	}
	return params, true
}

// normalizeBooleans maps the yes/no and on/off spellings onto values
// strconv.ParseBool understands.
func normalizeBooleans(query url.Values, keys ...string) url.Values {
	for _, key := range keys {
		values, ok := query[key]
		if !ok {
			continue
		}
		normalized := make([]string, len(values))
		for i, value := range values {
			switch strings.ToLower(strings.TrimSpace(value)) {
			case "yes", "on", "y":
				normalized[i] = "true"
			case "no", "off", "n":
				normalized[i] = "false"
			default:
				normalized[i] = value
			}
		}
		query[key] = normalized
	}
	return query
}
