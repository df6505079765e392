package catalog_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"rainerio-service/internal/domain/seller"
	"rainerio-service/internal/domain/vehicle"
	handler "rainerio-service/internal/handlers/catalog"
	"rainerio-service/internal/service/catalog"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockVehicleRepo struct {
	mock.Mock
}

func (m *mockVehicleRepo) Load(ctx context.Context) ([]vehicle.Vehicle, error) {
	args := m.Called(ctx)
	return args.Get(0).([]vehicle.Vehicle), args.Error(1)
}

func (m *mockVehicleRepo) ReplaceAll(ctx context.Context, vehicles []vehicle.Vehicle) error {
	args := m.Called(ctx, vehicles)
	return args.Error(0)
}

type mockSellerRepo struct {
	mock.Mock
}

func (m *mockSellerRepo) Load(ctx context.Context) ([]seller.Seller, error) {
	args := m.Called(ctx)
	return args.Get(0).([]seller.Seller), args.Error(1)
}

func (m *mockSellerRepo) Upsert(ctx context.Context, s seller.Seller, keepPassword bool) error {
	args := m.Called(ctx, s, keepPassword)
	return args.Error(0)
}

func (m *mockSellerRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockSellerRepo) FindByCredentials(ctx context.Context, identifier, password string) (*seller.Seller, error) {
	args := m.Called(ctx, identifier, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*seller.Seller), args.Error(1)
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupRouter(t *testing.T, vehicles []vehicle.Vehicle, sellers []seller.Seller) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	vehicleRepo := new(mockVehicleRepo)
	sellerRepo := new(mockSellerRepo)
	vehicleRepo.On("Load", mock.Anything).Return(vehicles, nil)
	sellerRepo.On("Load", mock.Anything).Return(sellers, nil)

	store := catalog.NewStore(vehicleRepo, sellerRepo, nil, zap.NewNop())
	assert.NoError(t, store.Load(context.Background()))

	h := handler.NewCatalogHandler(store)
	r := gin.New()
	r.GET("/api/v1/catalog/vehicles", h.ListVehicles)
	r.GET("/api/v1/catalog/facets", h.GetFacets)
	r.GET("/api/v1/catalog/featured", h.GetFeatured)
	r.GET("/api/v1/catalog/specialists", h.ListSpecialists)
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestListVehiclesFilterAndSort(t *testing.T) {
	r := setupRouter(t, []vehicle.Vehicle{
		{ID: "v1", Type: "Carro", Brand: "HONDA", Color: "PRETO", PriceNumeric: 50000},
		{ID: "v2", Type: "Moto", Brand: "YAMAHA", Color: "AZUL", PriceNumeric: 10000},
		{ID: "v3", Type: "Carro", Brand: "FIAT", Color: "PRETO", PriceNumeric: 30000},
	}, nil)

	w := get(r, "/api/v1/catalog/vehicles?type=Carro&sort=price-asc")
	assert.Equal(t, http.StatusOK, w.Code)

	var env envelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.True(t, env.Success)

	var got []vehicle.Vehicle
	assert.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Len(t, got, 2)
	assert.Equal(t, "v3", got[0].ID)
	assert.Equal(t, "v1", got[1].ID)
}

func TestListVehiclesSentinelsMatchEverything(t *testing.T) {
	r := setupRouter(t, []vehicle.Vehicle{
		{ID: "v1", Type: "Carro"},
		{ID: "v2", Type: "Moto"},
	}, nil)

	w := get(r, "/api/v1/catalog/vehicles?type=Todos&brand=Todas&color=Todas")
	assert.Equal(t, http.StatusOK, w.Code)

	var env envelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var got []vehicle.Vehicle
	assert.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Len(t, got, 2)
}

func TestGetFacets(t *testing.T) {
	r := setupRouter(t, []vehicle.Vehicle{
		{ID: "v1", Type: "Moto", Brand: "YAMAHA", Color: "AZUL"},
		{ID: "v2", Type: "Carro", Brand: "HONDA", Color: "PRETO"},
	}, nil)

	w := get(r, "/api/v1/catalog/facets")
	assert.Equal(t, http.StatusOK, w.Code)

	var env envelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var got vehicle.Facets
	assert.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, []string{"Todos", "Carro", "Moto"}, got.Types)
	assert.Equal(t, []string{"Todas", "YAMAHA", "HONDA"}, got.Brands)
}

func TestGetFeatured(t *testing.T) {
	r := setupRouter(t, []vehicle.Vehicle{
		{ID: "v1"}, {ID: "v2", Featured: true}, {ID: "v3"}, {ID: "v4"},
	}, nil)

	w := get(r, "/api/v1/catalog/featured")
	assert.Equal(t, http.StatusOK, w.Code)

	var env envelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var got []vehicle.Vehicle
	assert.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Len(t, got, 3)
	assert.Equal(t, "v2", got[0].ID)
}

func TestGetFeaturedRejectsBadLimit(t *testing.T) {
	r := setupRouter(t, nil, nil)

	assert.Equal(t, http.StatusBadRequest, get(r, "/api/v1/catalog/featured?limit=zero").Code)
	assert.Equal(t, http.StatusBadRequest, get(r, "/api/v1/catalog/featured?limit=0").Code)
}

func TestListSpecialistsHidesAdmins(t *testing.T) {
	r := setupRouter(t, nil, []seller.Seller{
		{ID: "s1", Name: "ANA", Active: true},
		{ID: "s2", Name: "BRUNO", Active: true, IsAdmin: true, Role: seller.RoleAdmin},
	})

	w := get(r, "/api/v1/catalog/specialists")
	assert.Equal(t, http.StatusOK, w.Code)

	var env envelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var got []seller.Seller
	assert.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Len(t, got, 1)
	assert.Equal(t, "ANA", got[0].Name)
}
