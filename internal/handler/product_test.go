package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/highway/highway/internal/model"
	"github.com/highway/highway/internal/store"
)

type fakeProductStore struct {
	products map[string]*model.Product
	err      error
}

func (f *fakeProductStore) ListProducts(ctx context.Context) ([]model.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []model.Product{}
	for _, p := range f.products {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeProductStore) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(id) != 24 {
		return nil, store.ErrInvalidID
	}
	p, ok := f.products[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return p, nil
}

func (f *fakeProductStore) CreateProduct(ctx context.Context, product model.Product) (*store.InsertResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &store.InsertResult{Acknowledged: true, InsertedID: "abc"}, nil
}

func (f *fakeProductStore) DeleteProduct(ctx context.Context, id string) (*store.DeleteResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	if _, ok := f.products[id]; !ok {
		return &store.DeleteResult{Acknowledged: true, DeletedCount: 0}, nil
	}
	delete(f.products, id)
	return &store.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
}

const testHexID = "507f1f77bcf86cd799439011"

func productRouter(st ProductStore) http.Handler {
	h := NewProductHandler(st, testLogger())
	r := chi.NewRouter()
	r.Get("/product", h.List)
	r.Get("/product/{id}", h.Get)
	r.Post("/product", h.Create)
	r.Delete("/product/{id}", h.Delete)
	return r
}

func TestProductList(t *testing.T) {
	st := &fakeProductStore{products: map[string]*model.Product{
		testHexID: {Name: "Asphalt Sealant", Price: 49.5},
	}}
	router := productRouter(st)

	req := httptest.NewRequest(http.MethodGet, "/product", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var products []model.Product
	if err := json.NewDecoder(rec.Body).Decode(&products); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if len(products) != 1 || products[0].Name != "Asphalt Sealant" {
		t.Errorf("unexpected products: %+v", products)
	}
}

func TestProductGet(t *testing.T) {
	st := &fakeProductStore{products: map[string]*model.Product{
		testHexID: {Name: "Road Marker", Price: 12},
	}}
	router := productRouter(st)

	testCases := []struct {
		name       string
		id         string
		wantStatus int
	}{
		{name: "found", id: testHexID, wantStatus: http.StatusOK},
		{name: "missing", id: "507f1f77bcf86cd799439099", wantStatus: http.StatusNotFound},
		{name: "invalid id", id: "not-a-hex-id", wantStatus: http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/product/"+tc.id, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Errorf("expected status %d, got %d", tc.wantStatus, rec.Code)
			}
		})
	}
}

func TestProductCreate(t *testing.T) {
	router := productRouter(&fakeProductStore{products: map[string]*model.Product{}})

	body := strings.NewReader(`{"name":"Guard Rail","price":199.99}`)
	req := httptest.NewRequest(http.MethodPost, "/product", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var result store.InsertResult
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if !result.Acknowledged {
		t.Error("expected acknowledged insert result")
	}
}

func TestProductCreate_InvalidBody(t *testing.T) {
	router := productRouter(&fakeProductStore{})

	req := httptest.NewRequest(http.MethodPost, "/product", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 for malformed body, got %d", rec.Code)
	}
}

func TestProductDelete(t *testing.T) {
	st := &fakeProductStore{products: map[string]*model.Product{
		testHexID: {Name: "Cone"},
	}}
	router := productRouter(st)

	req := httptest.NewRequest(http.MethodDelete, "/product/"+testHexID, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var result store.DeleteResult
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if result.DeletedCount != 1 {
		t.Errorf("expected deletedCount 1, got %d", result.DeletedCount)
	}
}

func TestProductList_StoreFailure(t *testing.T) {
	router := productRouter(&fakeProductStore{err: errors.New("connection reset")})

	req := httptest.NewRequest(http.MethodGet, "/product", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", rec.Code)
	}
	if msg := decodeMessage(t, rec); msg != "internal server error" {
		t.Errorf("unexpected message %q", msg)
	}
}
