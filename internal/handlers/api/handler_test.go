package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/dnd-item-catalog/internal/domain/item"
	caterr "github.com/KirkDiggler/dnd-item-catalog/internal/errors"
	"github.com/KirkDiggler/dnd-item-catalog/internal/facet"
	"github.com/KirkDiggler/dnd-item-catalog/internal/handlers/api"
	"github.com/KirkDiggler/dnd-item-catalog/internal/itemfilter"
	"github.com/KirkDiggler/dnd-item-catalog/internal/picker"
	"github.com/KirkDiggler/dnd-item-catalog/internal/services/catalog"
	mockcatalog "github.com/KirkDiggler/dnd-item-catalog/internal/services/catalog/mock"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func setup(t *testing.T) (*mockcatalog.MockService, http.Handler) {
	t.Helper()
	ctrl := gomock.NewController(t)
	svc := mockcatalog.NewMockService(ctrl)
	h, err := api.NewHandler(&api.HandlerConfig{CatalogService: svc})
	require.NoError(t, err)
	return svc, h.Routes()
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func ptr(v float64) *float64 { return &v }

func TestNewHandler_Validation(t *testing.T) {
	_, err := api.NewHandler(nil)
	assert.Error(t, err)

	_, err = api.NewHandler(&api.HandlerConfig{})
	assert.Error(t, err)
}

func TestGetItems_DecodesQuery(t *testing.T) {
	svc, h := setup(t)

	want := &catalog.BrowseInput{
		Selection: facet.Selection{}.
			Include("category", "Weapon").
			Include("traits", "Finesse").
			Exclude("source", "APG").
			Range("level", ptr(2), nil).
			Range("price", ptr(0), ptr(1000)),
		Sort:   itemfilter.SortOptions{SortBy: "price", Direction: "desc"},
		Offset: 20,
		Limit:  100,
	}
	svc.EXPECT().Browse(gomock.Any(), want).Return(&catalog.BrowseOutput{
		Rows:  []*itemfilter.Row{{ID: "0", Name: "Rapier"}},
		Total: 1,
	}, nil)

	rec := do(t, h, http.MethodGet,
		"/api/items?sort=price&dir=desc&offset=20"+
			"&include=category:Weapon&include=traits:Finesse&exclude=source:APG"+
			"&range=level:2:&range=price:0:1000", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	var out catalog.BrowseOutput
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, 1, out.Total)
	assert.Equal(t, "Rapier", out.Rows[0].Name)
}

func TestGetItems_BadFilters(t *testing.T) {
	_, h := setup(t)

	for _, q := range []string{
		"include=category",
		"exclude=:Weapon",
		"range=level:1",
		"range=level:x:2",
		"range=level:1:y",
		"offset=abc",
	} {
		rec := do(t, h, http.MethodGet, "/api/items?"+q, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, q)

		var out map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		assert.Equal(t, "invalid_argument", out["code"], q)
	}
}

func TestGetItems_ServiceErrors(t *testing.T) {
	svc, h := setup(t)

	svc.EXPECT().Browse(gomock.Any(), gomock.Any()).Return(nil, caterr.InvalidArgumentf("unknown facet %q", "colour"))
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodGet, "/api/items?include=colour:red", "").Code)

	svc.EXPECT().Browse(gomock.Any(), gomock.Any()).Return(nil, caterr.DataIntegrityf("%q has no entries", "Broken"))
	assert.Equal(t, http.StatusUnprocessableEntity, do(t, h, http.MethodGet, "/api/items", "").Code)

	svc.EXPECT().Browse(gomock.Any(), gomock.Any()).Return(nil, caterr.RateLimitedf("slow down"))
	assert.Equal(t, http.StatusTooManyRequests, do(t, h, http.MethodGet, "/api/items", "").Code)

	svc.EXPECT().Browse(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, do(t, h, http.MethodGet, "/api/items", "").Code)
}

func TestGetFacets(t *testing.T) {
	svc, h := setup(t)

	svc.EXPECT().Facets(gomock.Any()).Return(&catalog.FacetsOutput{
		Facets: []facet.Description{{ID: "source", Header: "Source", Kind: facet.KindSet}},
	}, nil)

	rec := do(t, h, http.MethodGet, "/api/facets", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"kind":"set"`)
}

func TestGetPicker(t *testing.T) {
	svc, h := setup(t)

	svc.EXPECT().Pick(gomock.Any(), &catalog.PickInput{
		Radio:     true,
		Selection: facet.Selection{}.Include("category", "Armor"),
		Sort:      itemfilter.SortOptions{SortBy: "name"},
	}).Return(&catalog.PickOutput{Columns: picker.ColumnHeaders()}, nil)

	rec := do(t, h, http.MethodGet, "/api/picker?radio=true&sort=name&include=category:Armor", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var out catalog.PickOutput
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Len(t, out.Columns, 5)
}

func TestCreateHomebrewItem(t *testing.T) {
	svc, h := setup(t)

	svc.EXPECT().AddHomebrew(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, it *item.Item) (*item.Item, error) {
			assert.Equal(t, "Bone Club", it.Name)
			assert.Equal(t, 300, it.Price.Value())
			it.UniqueID = "brew-1"
			return it, nil
		})

	rec := do(t, h, http.MethodPost, "/api/homebrew/items",
		`{"name":"Bone Club","source":"MyBrew","category":"Weapon","price":{"amount":3,"coin":"gp"},"entries":["Crude."]}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"uniqueId":"brew-1"`)

	svc.EXPECT().AddHomebrew(gomock.Any(), gomock.Any()).Return(nil, caterr.AlreadyExistsf("homebrew item with ID '%s' already exists", "brew-1"))
	rec = do(t, h, http.MethodPost, "/api/homebrew/items", `{"name":"Bone Club","uniqueId":"brew-1"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/homebrew/items", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/homebrew/items", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestDeleteHomebrewItem(t *testing.T) {
	svc, h := setup(t)

	svc.EXPECT().RemoveHomebrew(gomock.Any(), "brew-1").Return(nil)
	rec := do(t, h, http.MethodDelete, "/api/homebrew/items/brew-1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	svc.EXPECT().RemoveHomebrew(gomock.Any(), "brew-2").
		Return(caterr.NotFoundf("homebrew item with ID '%s' not found", "brew-2"))
	rec = do(t, h, http.MethodDelete, "/api/homebrew/items/brew-2", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"not_found"`)
}

func TestReload(t *testing.T) {
	svc, h := setup(t)

	svc.EXPECT().Reload(gomock.Any()).Return(&catalog.ReloadOutput{Loaded: 3, Skipped: 1, Stats: itemfilter.Stats{Registered: 3}}, nil)

	rec := do(t, h, http.MethodPost, "/api/reload", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"loaded":3`)
	assert.Contains(t, rec.Body.String(), `"skipped":1`)
}

func TestHealthAndMetrics(t *testing.T) {
	_, h := setup(t)

	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/health", "").Code)

	rec := do(t, h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestRoutes_CORS(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, err := api.NewHandler(&api.HandlerConfig{
		CatalogService: mockcatalog.NewMockService(ctrl),
		CORSOrigins:    []string{"https://vtt.example.com"},
	})
	require.NoError(t, err)
	routes := h.Routes()

	req := httptest.NewRequest(http.MethodOptions, "/api/items", nil)
	req.Header.Set("Origin", "https://vtt.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	routes.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://vtt.example.com", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/api/items", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec = httptest.NewRecorder()
	routes.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
