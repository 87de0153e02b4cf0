// controllers/plate_controller_test.go
package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-meet-scoring/models"
	"go-meet-scoring/services"
	"go-meet-scoring/store"
)

func newPlateRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	pc := NewPlateController(services.NewPlateService(store.NewMemStore()))

	router := gin.New()
	api := router.Group("/api")
	api.GET("/contests/:contestId/plates/loading", pc.CalculateLoading)
	api.POST("/contests/:contestId/plates", pc.AddPlateSet)
	api.GET("/contests/:contestId/plates", pc.ListPlateSets)
	api.PUT("/contests/:contestId/bars", pc.UpdateBarWeights)
	api.GET("/contests/:contestId/bars", pc.GetBarWeights)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(method, path, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCalculateLoadingEndpoint(t *testing.T) {
	router := newPlateRouter()

	for _, body := range []string{
		`{"plateWeight":25,"quantity":8,"color":"#dc2626"}`,
		`{"plateWeight":10,"quantity":2,"color":"#16a34a"}`,
		`{"plateWeight":5,"quantity":2,"color":"#ffffff"}`,
	} {
		w := doJSON(t, router, "POST", "/api/contests/c1/plates", body)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, router, "GET", "/api/contests/c1/plates/loading?target=100&gender=Male", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var calc models.PlateCalculation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &calc))
	assert.True(t, calc.Exact)
	assert.Equal(t, 100.0, calc.Total)
	assert.Equal(t, 20.0, calc.BarWeight)
}

func TestCalculateLoadingEndpoint_BadTarget(t *testing.T) {
	router := newPlateRouter()

	w := doJSON(t, router, "GET", "/api/contests/c1/plates/loading?target=heavy", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddPlateSetEndpoint_Validation(t *testing.T) {
	router := newPlateRouter()

	w := doJSON(t, router, "POST", "/api/contests/c1/plates", `{"plateWeight":-5,"quantity":2}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBarWeightsEndpoint(t *testing.T) {
	router := newPlateRouter()

	w := doJSON(t, router, "PUT", "/api/contests/c1/bars", `{"mensBarWeight":25,"womensBarWeight":15}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, "GET", "/api/contests/c1/bars", "")
	require.Equal(t, http.StatusOK, w.Code)
	var bars models.BarWeights
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bars))
	assert.Equal(t, 25.0, bars.Mens)

	w = doJSON(t, router, "PUT", "/api/contests/c1/bars", `{"mensBarWeight":20.1,"womensBarWeight":15}`)
	assert.Equal(t, http.StatusBadRequest, w.Code, "bars come in 0.25kg steps")
}
