package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghuser/storefront/pkg/app"
	"github.com/ghuser/storefront/pkg/logger"
	"github.com/ghuser/storefront/services/item/application/api"
	appsvcs "github.com/ghuser/storefront/services/item/application/services"
	"github.com/ghuser/storefront/services/item/infrastructure/persistence/memory"
)

type itemBody struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
	Category  *string   `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type fixture struct {
	router http.Handler
	repo   *memory.ItemRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	a := &app.Application{Logger: logger.Discard()}
	repo := memory.NewItemRepository(nil)
	r := chi.NewRouter()
	api.MountItemRoutes(r, a, appsvcs.NewWithRepository(a, repo))
	return &fixture{router: r, repo: repo}
}

func (f *fixture) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, http.NoBody)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)
	return rr
}

func decodeData(t *testing.T, rr *httptest.ResponseRecorder) itemBody {
	t.Helper()
	var env struct {
		Data itemBody `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&env))
	return env.Data
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var env struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&env))
	assert.Equal(t, "error", env.Status)
	return env.Message
}

func TestPostItem_DefaultsQuantity(t *testing.T) {
	f := newFixture(t)

	rr := f.do(t, http.MethodPost, "/items", `{"name":"Hammer","price":9.99}`)

	require.Equal(t, http.StatusCreated, rr.Code)
	item := decodeData(t, rr)
	assert.Equal(t, "1", item.ID)
	assert.Equal(t, "Hammer", item.Name)
	assert.Equal(t, 9.99, item.Price)
	assert.Zero(t, item.Quantity)
	assert.Nil(t, item.Category)
	assert.False(t, item.CreatedAt.IsZero())
	assert.Equal(t, item.CreatedAt, item.UpdatedAt)
}

func TestPostItem_OmitsAbsentCategory(t *testing.T) {
	f := newFixture(t)

	rr := f.do(t, http.MethodPost, "/items", `{"name":"Hammer","price":1}`)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.NotContains(t, rr.Body.String(), "category")
}

func TestPostItem_RejectsInvalidPayloads(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero price", `{"name":"Hammer","price":0}`},
		{"negative price", `{"name":"Hammer","price":-2}`},
		{"missing name", `{"price":3}`},
		{"empty name", `{"name":"","price":3}`},
		{"negative quantity", `{"name":"Hammer","price":3,"quantity":-1}`},
		{"fractional quantity", `{"name":"Hammer","price":3,"quantity":2.5}`},
		{"string price", `{"name":"Hammer","price":"3"}`},
		{"malformed", `{"name":`},
		{"empty body", ``},
		{"trailing data", `{"name":"Hammer","price":3} garbage`},
		{"two objects", `{"name":"Hammer","price":3}{"name":"Saw","price":4}`},
		{"null body", `null`},
		{"array body", `[{"name":"Hammer","price":3}]`},
		{"null quantity", `{"name":"Hammer","price":3,"quantity":null}`},
		{"null category", `{"name":"Hammer","price":3,"category":null}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			rr := f.do(t, http.MethodPost, "/items", tt.body)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.NotEmpty(t, decodeError(t, rr))
			assert.Zero(t, f.repo.Len(), "rejected payload must not be stored")
		})
	}
}

func TestPostItem_AcceptsIntegralNumberForms(t *testing.T) {
	tests := []struct {
		body string
		want int
	}{
		{`{"name":"Hammer","price":3,"quantity":5.0}`, 5},
		{`{"name":"Hammer","price":3,"quantity":1e2}`, 100},
		{`{"name":"Hammer","price":3,"quantity":0}`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			f := newFixture(t)

			rr := f.do(t, http.MethodPost, "/items", tt.body)

			require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
			assert.Equal(t, tt.want, decodeData(t, rr).Quantity)
		})
	}
}

func TestPostItem_NullMessages(t *testing.T) {
	f := newFixture(t)

	rr := f.do(t, http.MethodPost, "/items", `{"name":null,"price":3,"quantity":null}`)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Validation failed: name: Expected string, received null; quantity: Expected number, received null", decodeError(t, rr))
}

func TestPatchItem_IntegralQuantityAndNull(t *testing.T) {
	f := newFixture(t)
	created := decodeData(t, f.do(t, http.MethodPost, "/items", `{"name":"Saw","price":12}`))

	rr := f.do(t, http.MethodPatch, "/items/"+created.ID, `{"quantity":3.0}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, 3, decodeData(t, rr).Quantity)

	rr = f.do(t, http.MethodPatch, "/items/"+created.ID, `{"quantity":3.5}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Validation failed: quantity: Expected integer, received number", decodeError(t, rr))

	rr = f.do(t, http.MethodPatch, "/items/"+created.ID, `{"category":null}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Validation failed: category: Expected string, received null", decodeError(t, rr))
}

func TestGetItem_RoundTrip(t *testing.T) {
	f := newFixture(t)
	created := decodeData(t, f.do(t, http.MethodPost, "/items", `{"name":"Saw","price":12,"quantity":3,"category":"tools"}`))

	rr := f.do(t, http.MethodGet, "/items/"+created.ID, "")

	require.Equal(t, http.StatusOK, rr.Code)
	got := decodeData(t, rr)
	assert.Equal(t, created, got)
}

func TestGetItem_Unknown(t *testing.T) {
	f := newFixture(t)

	rr := f.do(t, http.MethodGet, "/items/99", "")

	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Item 99 not found", decodeError(t, rr))
}

func TestListItems(t *testing.T) {
	f := newFixture(t)

	rr := f.do(t, http.MethodGet, "/items", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"data":[],"total":0}`, rr.Body.String())

	f.do(t, http.MethodPost, "/items", `{"name":"a","price":1}`)
	f.do(t, http.MethodPost, "/items", `{"name":"b","price":2}`)

	var env struct {
		Data  []itemBody `json:"data"`
		Total int        `json:"total"`
	}
	rr = f.do(t, http.MethodGet, "/items", "")
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&env))
	assert.Equal(t, 2, env.Total)
	require.Len(t, env.Data, 2)
	assert.Equal(t, "a", env.Data[0].Name)
	assert.Equal(t, "b", env.Data[1].Name)
}

func TestPatchItem_PartialUpdate(t *testing.T) {
	f := newFixture(t)
	created := decodeData(t, f.do(t, http.MethodPost, "/items", `{"name":"Saw","price":12,"quantity":3,"category":"tools"}`))

	rr := f.do(t, http.MethodPatch, "/items/"+created.ID, `{"price":15}`)

	require.Equal(t, http.StatusOK, rr.Code)
	got := decodeData(t, rr)
	assert.Equal(t, 15.0, got.Price)
	assert.Equal(t, created.Name, got.Name)
	assert.Equal(t, created.Quantity, got.Quantity)
	assert.Equal(t, created.Category, got.Category)
	assert.Equal(t, created.ID, got.ID)
	assert.True(t, got.CreatedAt.Equal(created.CreatedAt))
	assert.True(t, got.UpdatedAt.After(created.UpdatedAt), "updatedAt must strictly increase")
}

func TestPatchItem_EmptyBodyStillRefreshesUpdatedAt(t *testing.T) {
	f := newFixture(t)
	created := decodeData(t, f.do(t, http.MethodPost, "/items", `{"name":"Saw","price":12}`))

	rr := f.do(t, http.MethodPatch, "/items/"+created.ID, `{}`)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, decodeData(t, rr).UpdatedAt.After(created.UpdatedAt))
}

func TestPatchItem_InvalidFieldLeavesRecord(t *testing.T) {
	f := newFixture(t)
	created := decodeData(t, f.do(t, http.MethodPost, "/items", `{"name":"Saw","price":12}`))

	rr := f.do(t, http.MethodPatch, "/items/"+created.ID, `{"price":-1}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	got := decodeData(t, f.do(t, http.MethodGet, "/items/"+created.ID, ""))
	assert.Equal(t, created, got)
}

func TestPatchItem_UnknownIDWinsOverInvalidBody(t *testing.T) {
	f := newFixture(t)

	rr := f.do(t, http.MethodPatch, "/items/5", `{"price":-1}`)

	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Item 5 not found", decodeError(t, rr))
}

func TestDeleteItem_ThenGet(t *testing.T) {
	f := newFixture(t)
	created := decodeData(t, f.do(t, http.MethodPost, "/items", `{"name":"Saw","price":12}`))

	rr := f.do(t, http.MethodDelete, "/items/"+created.ID, "")
	require.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())

	assert.Equal(t, http.StatusNotFound, f.do(t, http.MethodGet, "/items/"+created.ID, "").Code)
	assert.Equal(t, http.StatusNotFound, f.do(t, http.MethodDelete, "/items/"+created.ID, "").Code)
}

func TestPostItem_IDsNotReusedAfterDelete(t *testing.T) {
	f := newFixture(t)
	first := decodeData(t, f.do(t, http.MethodPost, "/items", `{"name":"a","price":1}`))
	f.do(t, http.MethodDelete, "/items/"+first.ID, "")

	second := decodeData(t, f.do(t, http.MethodPost, "/items", `{"name":"b","price":1}`))
	assert.NotEqual(t, first.ID, second.ID)

	f.repo.Reset()
	third := decodeData(t, f.do(t, http.MethodPost, "/items", `{"name":"c","price":1}`))
	assert.Equal(t, "1", third.ID)
}
