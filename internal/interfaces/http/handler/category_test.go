package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	catalogapp "github.com/brewery/backend/internal/application/catalog"
	"github.com/brewery/backend/internal/domain/catalog"
	"github.com/brewery/backend/internal/infrastructure/persistence"
)

func newCategoryTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&catalog.Category{}))

	beerRepo := persistence.NewMemoryBeerRepository()
	categoryRepo := persistence.NewGormCategoryRepository(db)

	engine := gin.New()
	api := engine.Group("/api/v1")
	NewCategoryHandler(catalogapp.NewCategoryService(categoryRepo, beerRepo)).RegisterRoutes(api)
	NewBeerHandler(catalogapp.NewBeerService(beerRepo)).RegisterRoutes(api)
	return engine
}

func TestCategoryHandler_CreateAndAssign(t *testing.T) {
	engine := newCategoryTestRouter(t)

	w := performJSON(engine, http.MethodPost, "/api/v1/category", gin.H{
		"description": "Hoppy",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var category map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &category))
	categoryID := category["id"].(string)
	assert.Equal(t, "/api/v1/category/"+categoryID, w.Header().Get("Location"))

	beer := createTestBeer(t, engine, "Sunshine City", "IPA")
	beerID := beer["id"].(string)

	assign := performJSON(engine, http.MethodPut, "/api/v1/category/"+categoryID+"/beer/"+beerID, nil)
	require.Equal(t, http.StatusNoContent, assign.Code)

	list := performJSON(engine, http.MethodGet, "/api/v1/category/"+categoryID+"/beers", nil)
	require.Equal(t, http.StatusOK, list.Code)

	var page struct {
		Content       []map[string]any `json:"content"`
		TotalElements int64            `json:"totalElements"`
	}
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &page))
	assert.Equal(t, int64(1), page.TotalElements)
	assert.Equal(t, "Sunshine City", page.Content[0]["beerName"])
}

func createTestCategory(t *testing.T, engine *gin.Engine, description string) map[string]any {
	t.Helper()
	w := performJSON(engine, http.MethodPost, "/api/v1/category", gin.H{
		"description": description,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var category map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &category))
	return category
}

func TestCategoryHandler_UpdateByID(t *testing.T) {
	engine := newCategoryTestRouter(t)
	categoryID := createTestCategory(t, engine, "Hoppy")["id"].(string)

	update := gin.H{"version": 1, "description": "Hop Forward"}
	w := performJSON(engine, http.MethodPut, "/api/v1/category/"+categoryID, update)
	require.Equal(t, http.StatusOK, w.Code)

	var updated map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "Hop Forward", updated["description"])
	assert.Equal(t, float64(2), updated["version"])

	stale := performJSON(engine, http.MethodPut, "/api/v1/category/"+categoryID, update)
	assert.Equal(t, http.StatusConflict, stale.Code)
}

func TestCategoryHandler_DeleteByID(t *testing.T) {
	engine := newCategoryTestRouter(t)
	categoryID := createTestCategory(t, engine, "Sessionable")["id"].(string)

	require.Equal(t, http.StatusOK,
		performJSON(engine, http.MethodDelete, "/api/v1/category/"+categoryID, nil).Code)
	assert.Equal(t, http.StatusNotFound,
		performJSON(engine, http.MethodDelete, "/api/v1/category/"+categoryID, nil).Code)
}

func TestCategoryHandler_UnassignBeer(t *testing.T) {
	engine := newCategoryTestRouter(t)
	categoryID := createTestCategory(t, engine, "Hoppy")["id"].(string)

	beer := createTestBeer(t, engine, "Sunshine City", "IPA")
	beerID := beer["id"].(string)

	require.Equal(t, http.StatusNoContent,
		performJSON(engine, http.MethodPut, "/api/v1/category/"+categoryID+"/beer/"+beerID, nil).Code)
	require.Equal(t, http.StatusNoContent,
		performJSON(engine, http.MethodDelete, "/api/v1/category/"+categoryID+"/beer/"+beerID, nil).Code)

	list := performJSON(engine, http.MethodGet, "/api/v1/category/"+categoryID+"/beers", nil)
	require.Equal(t, http.StatusOK, list.Code)

	var page struct {
		TotalElements int64 `json:"totalElements"`
	}
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &page))
	assert.Equal(t, int64(0), page.TotalElements)
}

func TestCategoryHandler_List_EmptyIsArray(t *testing.T) {
	engine := newCategoryTestRouter(t)

	w := performJSON(engine, http.MethodGet, "/api/v1/category", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestCategoryHandler_Create_ValidationFailure(t *testing.T) {
	engine := newCategoryTestRouter(t)

	w := performJSON(engine, http.MethodPost, "/api/v1/category", gin.H{
		"description": "  ",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string][]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []string{"must not be blank"}, body["description"])
}
