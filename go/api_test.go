package petnamesserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catmapper "github.com/Apurer/pet-name-generator/internal/domains/catalog/adapters/http/mapper"
	catrandom "github.com/Apurer/pet-name-generator/internal/domains/catalog/adapters/random"
	catapp "github.com/Apurer/pet-name-generator/internal/domains/catalog/application"
	"github.com/Apurer/pet-name-generator/internal/domains/catalog/domain"
	apierrors "github.com/Apurer/pet-name-generator/internal/shared/errors"
)

func newTestRouter(t *testing.T, catalog *domain.Catalog) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	service := catapp.NewService(catalog, catapp.WithSampler(catrandom.NewSeeded(42)))
	return NewRouterWithGinEngine(gin.New(), ApiHandleFunctions{
		PetAPI:    NewPetAPI(service),
		FactAPI:   NewFactAPI(service),
		HealthAPI: NewHealthAPI(service, "pet-name-generator-api", "v9.9.9"),
	})
}

func get(t *testing.T, router *gin.Engine, path string, out any) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	if out != nil {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out), rec.Body.String())
	}
	return rec
}

func TestHealthAndVersion(t *testing.T) {
	router := newTestRouter(t, domain.Default())

	var health catmapper.HealthResponse
	rec := get(t, router, "/health", &health)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, catapp.HealthMessage, health.Message)

	var version VersionResponse
	rec = get(t, router, "/version", &version)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, VersionResponse{Version: "v9.9.9", Service: "pet-name-generator-api"}, version)
}

func TestGetPetTypes(t *testing.T) {
	router := newTestRouter(t, domain.Default())

	var body map[string]any
	rec := get(t, router, "/pets", &body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []any{"dog", "cat", "bird", "fish", "rabbit"}, body["available_pets"])
	assert.EqualValues(t, 5, body["total_types"])
}

func TestGetPetNames_Sequential(t *testing.T) {
	router := newTestRouter(t, domain.Default())

	var body catmapper.PetNamesResponse
	rec := get(t, router, "/pets/dog/names?count=3&random_selection=false", &body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, catmapper.PetNamesResponse{
		PetType: "dog",
		Names:   []string{"Buddy", "Max", "Charlie"},
		Count:   3,
	}, body)
}

func TestGetPetNames_Defaults(t *testing.T) {
	router := newTestRouter(t, domain.Default())
	cats, _ := domain.Default().Names(domain.Cat)

	var body catmapper.PetNamesResponse
	rec := get(t, router, "/pets/CAT/names", &body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "cat", body.PetType)
	require.Len(t, body.Names, 1)
	assert.Equal(t, 1, body.Count)
	assert.Contains(t, cats, body.Names[0])
}

func TestGetPetNames_RandomDistinct(t *testing.T) {
	router := newTestRouter(t, domain.Default())

	for i := 0; i < 20; i++ {
		var body catmapper.PetNamesResponse
		rec := get(t, router, "/pets/rabbit/names?count=10&random_selection=yes", &body)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, body.Names, 10)
		seen := map[string]bool{}
		for _, name := range body.Names {
			require.False(t, seen[name], "duplicate %s", name)
			seen[name] = true
		}
	}
}

func TestGetPetNames_Errors(t *testing.T) {
	router := newTestRouter(t, domain.Default())

	cases := []struct {
		name   string
		path   string
		status int
		detail string
	}{
		{
			name:   "unknown type",
			path:   "/pets/xyz/names",
			status: http.StatusNotFound,
			detail: "Pet type 'xyz' not found. Available types: ['dog', 'cat', 'bird', 'fish', 'rabbit']",
		},
		{
			name:   "unknown type wins over bad count",
			path:   "/pets/xyz/names?count=0",
			status: http.StatusNotFound,
			detail: "Pet type 'xyz' not found. Available types: ['dog', 'cat', 'bird', 'fish', 'rabbit']",
		},
		{name: "count too low", path: "/pets/dog/names?count=0", status: http.StatusBadRequest, detail: "Count must be between 1 and 10"},
		{name: "count too high", path: "/pets/dog/names?count=11&random_selection=false", status: http.StatusBadRequest, detail: "Count must be between 1 and 10"},
		{name: "count not a number", path: "/pets/dog/names?count=three", status: http.StatusUnprocessableEntity, detail: "Invalid value for query parameter 'count'"},
		{name: "flag not a bool", path: "/pets/dog/names?random_selection=maybe", status: http.StatusUnprocessableEntity, detail: "Invalid value for query parameter 'random_selection'"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var problem apierrors.ProblemDetail
			rec := get(t, router, tc.path, &problem)
			require.Equal(t, tc.status, rec.Code)
			assert.Equal(t, apierrors.ContentTypeProblemJSON, rec.Header().Get("Content-Type"))
			assert.Equal(t, tc.detail, problem.Detail)
		})
	}
}

func TestGetRandomPetName(t *testing.T) {
	router := newTestRouter(t, domain.Default())
	birds, _ := domain.Default().Names(domain.Bird)

	var body catmapper.RandomNameResponse
	rec := get(t, router, "/pets/bird/random", &body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "bird", body.PetType)
	assert.Contains(t, birds, body.Name)
	assert.Equal(t, "Perfect name for your bird! 🐾", body.Message)

	rec = get(t, router, "/pets/unicorn/random", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFactsEndpoints(t *testing.T) {
	router := newTestRouter(t, domain.Default())
	fishFacts, _ := domain.Default().Facts(domain.Fish)

	var list catmapper.PetFactsResponse
	rec := get(t, router, "/pets/Fish/facts", &list)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "fish", list.PetType)
	assert.Equal(t, fishFacts, list.Facts)
	assert.Equal(t, 5, list.TotalFacts)

	var one catmapper.PetFactResponse
	rec = get(t, router, "/pets/fish/facts/random", &one)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, fishFacts, one.Fact)

	var all catmapper.AllFactsResponse
	rec = get(t, router, "/facts", &all)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 25, all.TotalFacts)
	assert.Len(t, all.Facts, 25)
	assert.Equal(t, []string{"dog", "cat", "bird", "fish", "rabbit"}, all.PetTypes)
	assert.Equal(t, "dog", all.Facts[0].PetType)

	var random catmapper.PetFactResponse
	rec = get(t, router, "/facts/random", &random)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, all.Facts, random)

	rec = get(t, router, "/pets/xyz/facts", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = get(t, router, "/pets/xyz/facts/random", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRandomFact_EmptyCatalogIsInternalError(t *testing.T) {
	catalog, err := domain.NewCatalog(nil, nil)
	require.NoError(t, err)
	router := newTestRouter(t, catalog)

	var problem apierrors.ProblemDetail
	rec := get(t, router, "/facts/random", &problem)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotEmpty(t, problem.Detail)

	var all catmapper.AllFactsResponse
	rec = get(t, router, "/facts", &all)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotNil(t, all.Facts)
	assert.Equal(t, 0, all.TotalFacts)
}
