package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogapp "github.com/brewery/backend/internal/application/catalog"
	"github.com/brewery/backend/internal/infrastructure/persistence"
	"github.com/brewery/backend/internal/interfaces/http/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
}

func newBeerTestRouter() (*gin.Engine, *persistence.MemoryBeerRepository) {
	repo := persistence.NewMemoryBeerRepository()
	handler := NewBeerHandler(catalogapp.NewBeerService(repo))

	engine := gin.New()
	api := engine.Group("/api/v1")
	handler.RegisterRoutes(api)
	return engine, repo
}

func performJSON(engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func performJSONWithToken(engine *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func createTestBeer(t *testing.T, engine *gin.Engine, name, style string) map[string]any {
	t.Helper()
	w := performJSON(engine, http.MethodPost, "/api/v1/beer", gin.H{
		"beerName":       name,
		"beerStyle":      style,
		"upc":            "0631234200036",
		"quantityOnHand": 100,
		"price":          12.99,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestBeerHandler_Create(t *testing.T) {
	engine, _ := newBeerTestRouter()

	w := performJSON(engine, http.MethodPost, "/api/v1/beer", gin.H{
		"beerName":  "Galaxy Cat",
		"beerStyle": "PALE_ALE",
		"upc":       "0631234200036",
		"price":     12.99,
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Galaxy Cat", body["beerName"])
	assert.Equal(t, float64(1), body["version"])
	assert.NotEmpty(t, body["id"])
	assert.Equal(t, "/api/v1/beer/"+body["id"].(string), w.Header().Get("Location"))
}

func TestBeerHandler_Create_ValidationFailure(t *testing.T) {
	engine, _ := newBeerTestRouter()

	w := performJSON(engine, http.MethodPost, "/api/v1/beer", gin.H{
		"beerName":  "   ",
		"beerStyle": "PALE_ALE",
		"price":     12.99,
	})

	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string][]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []string{"must not be blank"}, body["beerName"])
	assert.Equal(t, []string{"must not be null"}, body["upc"])
}

func TestBeerHandler_Create_UnknownStyle(t *testing.T) {
	engine, _ := newBeerTestRouter()

	w := performJSON(engine, http.MethodPost, "/api/v1/beer", gin.H{
		"beerName":  "Mystery",
		"beerStyle": "NOT_A_STYLE",
		"upc":       "123",
		"price":     9.99,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBeerHandler_GetByID_NotFound(t *testing.T) {
	engine, _ := newBeerTestRouter()

	path := "/api/v1/beer/" + uuid.NewString()
	w := performJSON(engine, http.MethodGet, path, nil)

	require.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(http.StatusNotFound), body["status"])
	assert.Equal(t, "Not Found", body["error"])
	assert.Equal(t, path, body["path"])
	assert.NotEmpty(t, body["timestamp"])
	assert.NotEmpty(t, body["message"])
}

func TestBeerHandler_GetByID_MalformedID(t *testing.T) {
	engine, _ := newBeerTestRouter()

	w := performJSON(engine, http.MethodGet, "/api/v1/beer/not-a-uuid", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBeerHandler_List_DefaultPage(t *testing.T) {
	engine, _ := newBeerTestRouter()
	createTestBeer(t, engine, "Galaxy Cat", "PALE_ALE")
	createTestBeer(t, engine, "Crank", "PALE_ALE")

	w := performJSON(engine, http.MethodGet, "/api/v1/beer", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var page struct {
		Content          []map[string]any `json:"content"`
		Number           int              `json:"number"`
		Size             int              `json:"size"`
		TotalElements    int64            `json:"totalElements"`
		TotalPages       int              `json:"totalPages"`
		First            bool             `json:"first"`
		Last             bool             `json:"last"`
		NumberOfElements int              `json:"numberOfElements"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, 0, page.Number)
	assert.Equal(t, 25, page.Size)
	assert.Equal(t, int64(2), page.TotalElements)
	assert.Equal(t, 1, page.TotalPages)
	assert.True(t, page.First)
	assert.True(t, page.Last)
	assert.Equal(t, 2, page.NumberOfElements)
	// Ordered by name
	assert.Equal(t, "Crank", page.Content[0]["beerName"])
	assert.Equal(t, "Galaxy Cat", page.Content[1]["beerName"])
}

func TestBeerHandler_List_HidesInventory(t *testing.T) {
	engine, _ := newBeerTestRouter()
	createTestBeer(t, engine, "Galaxy Cat", "PALE_ALE")

	w := performJSON(engine, http.MethodGet, "/api/v1/beer?showInventory=false", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var page struct {
		Content []map[string]any `json:"content"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	require.Len(t, page.Content, 1)
	assert.Nil(t, page.Content[0]["quantityOnHand"])
}

func TestBeerHandler_List_FiltersByName(t *testing.T) {
	engine, _ := newBeerTestRouter()
	createTestBeer(t, engine, "Galaxy Cat", "PALE_ALE")
	createTestBeer(t, engine, "Sunshine City", "IPA")

	w := performJSON(engine, http.MethodGet, "/api/v1/beer?name=galaxy", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var page struct {
		Content       []map[string]any `json:"content"`
		TotalElements int64            `json:"totalElements"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, int64(1), page.TotalElements)
	assert.Equal(t, "Galaxy Cat", page.Content[0]["beerName"])
}

func TestBeerHandler_UpdateByID(t *testing.T) {
	engine, _ := newBeerTestRouter()
	created := createTestBeer(t, engine, "Galaxy Cat", "PALE_ALE")
	id := created["id"].(string)

	w := performJSON(engine, http.MethodPut, "/api/v1/beer/"+id, gin.H{
		"version":   1,
		"beerName":  "Galaxy Cat Reserve",
		"beerStyle": "PALE_ALE",
		"upc":       "0631234200036",
		"price":     14.99,
	})

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Galaxy Cat Reserve", body["beerName"])
	assert.Equal(t, float64(2), body["version"])
}

func TestBeerHandler_UpdateByID_StaleVersion(t *testing.T) {
	engine, _ := newBeerTestRouter()
	created := createTestBeer(t, engine, "Galaxy Cat", "PALE_ALE")
	id := created["id"].(string)

	update := gin.H{
		"version":   1,
		"beerName":  "Renamed",
		"beerStyle": "PALE_ALE",
		"upc":       "0631234200036",
		"price":     14.99,
	}
	require.Equal(t, http.StatusOK, performJSON(engine, http.MethodPut, "/api/v1/beer/"+id, update).Code)

	// Same version again: the first writer already advanced it
	w := performJSON(engine, http.MethodPut, "/api/v1/beer/"+id, update)
	require.Equal(t, http.StatusConflict, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(http.StatusConflict), body["status"])
}

func TestBeerHandler_PatchByID(t *testing.T) {
	engine, _ := newBeerTestRouter()
	created := createTestBeer(t, engine, "Galaxy Cat", "PALE_ALE")
	id := created["id"].(string)

	w := performJSON(engine, http.MethodPatch, "/api/v1/beer/"+id, gin.H{
		"beerName": "Galaxy Cat 2",
	})
	require.Equal(t, http.StatusNoContent, w.Code)

	get := performJSON(engine, http.MethodGet, "/api/v1/beer/"+id, nil)
	require.Equal(t, http.StatusOK, get.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(get.Body.Bytes(), &body))
	assert.Equal(t, "Galaxy Cat 2", body["beerName"])
	assert.Equal(t, "0631234200036", body["upc"])
	assert.Equal(t, float64(2), body["version"])
}

func TestBeerHandler_PatchByID_NotFound(t *testing.T) {
	engine, _ := newBeerTestRouter()

	w := performJSON(engine, http.MethodPatch, fmt.Sprintf("/api/v1/beer/%s", uuid.NewString()), gin.H{
		"beerName": "Ghost",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBeerHandler_DeleteByID(t *testing.T) {
	engine, _ := newBeerTestRouter()
	created := createTestBeer(t, engine, "Galaxy Cat", "PALE_ALE")
	id := created["id"].(string)

	require.Equal(t, http.StatusOK, performJSON(engine, http.MethodDelete, "/api/v1/beer/"+id, nil).Code)
	assert.Equal(t, http.StatusNotFound, performJSON(engine, http.MethodDelete, "/api/v1/beer/"+id, nil).Code)
}
