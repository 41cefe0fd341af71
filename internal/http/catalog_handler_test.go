package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookcatalog/internal/catalog"
	"bookcatalog/internal/session"
	"bookcatalog/internal/testutil"
)

func newTestRouter(t *testing.T) *http.ServeMux {
	t.Helper()
	ctrl := gomock.NewController(t)
	src := catalog.NewMockSource(ctrl)
	src.EXPECT().Load(gomock.Any()).Return(testutil.NewCatalog(), nil)

	svc := catalog.NewService(src, 2)
	require.NoError(t, svc.Load(context.Background()))
	return NewRouter(NewCatalogHandler(svc, session.NewStore(time.Minute)), svc)
}

func do(router http.Handler, r *http.Request) testutil.RecordResponse {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	return testutil.RecordHTTPResponse(w)
}

func createSession(t *testing.T, router http.Handler) string {
	t.Helper()
	resp := do(router, testutil.NewRequest(http.MethodPost, "/v1/sessions", nil))
	require.Equal(t, http.StatusCreated, resp.Code)
	id, _ := resp.Data()["id"].(string)
	require.NotEmpty(t, id)
	return id
}

func itemIDs(list map[string]interface{}) []string {
	raw, _ := list["items"].([]interface{})
	out := make([]string, 0, len(raw))
	for _, it := range raw {
		m, _ := it.(map[string]interface{})
		id, _ := m["id"].(string)
		out = append(out, id)
	}
	return out
}

func button(list map[string]interface{}) map[string]interface{} {
	b, _ := list["button"].(map[string]interface{})
	return b
}

func TestCatalogHandler_CreateSession(t *testing.T) {
	router := newTestRouter(t)

	t.Run("day by default", func(t *testing.T) {
		resp := do(router, testutil.NewRequest(http.MethodPost, "/v1/sessions", nil))
		require.Equal(t, http.StatusCreated, resp.Code)

		data := resp.Data()
		list, _ := data["list"].(map[string]interface{})
		assert.Equal(t, []string{"b1", "b2"}, itemIDs(list))
		assert.Equal(t, "Show more (4)", button(list)["label"])
		assert.Equal(t, float64(1), data["page"])
		assert.Nil(t, data["detail"])

		th, _ := data["theme"].(map[string]interface{})
		assert.Equal(t, "day", th["theme"])
	})

	t.Run("night when client prefers dark", func(t *testing.T) {
		req := testutil.NewRequest(http.MethodPost, "/v1/sessions", nil)
		req.Header.Set("Sec-CH-Prefers-Color-Scheme", `"dark"`)
		resp := do(router, req)
		require.Equal(t, http.StatusCreated, resp.Code)

		th, _ := resp.Data()["theme"].(map[string]interface{})
		assert.Equal(t, "night", th["theme"])
		props, _ := th["properties"].(map[string]interface{})
		assert.Equal(t, "255, 255, 255", props["--color-dark"])
		assert.Equal(t, "10, 10, 20", props["--color-light"])
	})
}

func TestCatalogHandler_PagingScenario(t *testing.T) {
	router := newTestRouter(t)
	id := createSession(t, router)

	resp := do(router, testutil.NewRequest(http.MethodPost, "/v1/sessions/"+id+"/more", nil))
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, []string{"b3", "b4"}, itemIDs(resp.Data()))
	assert.Equal(t, float64(2), resp.Body["meta"].(map[string]interface{})["page"])

	resp = do(router, testutil.NewRequest(http.MethodPost, "/v1/sessions/"+id+"/more", nil))
	assert.Equal(t, []string{"b5", "b6"}, itemIDs(resp.Data()))
	assert.Equal(t, true, button(resp.Data())["disabled"])

	for i := 0; i < 3; i++ {
		resp = do(router, testutil.NewRequest(http.MethodPost, "/v1/sessions/"+id+"/more", nil))
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Empty(t, itemIDs(resp.Data()))
		assert.Equal(t, float64(0), button(resp.Data())["remaining"])
		assert.Equal(t, float64(3), resp.Body["meta"].(map[string]interface{})["page"])
	}

	resp = do(router, testutil.NewRequest(http.MethodGet, "/v1/sessions/"+id, nil))
	list, _ := resp.Data()["list"].(map[string]interface{})
	assert.Equal(t, []string{"b1", "b2", "b3", "b4", "b5", "b6"}, itemIDs(list))
}

func TestCatalogHandler_Search(t *testing.T) {
	router := newTestRouter(t)
	id := createSession(t, router)

	tests := []struct {
		name      string
		body      map[string]string
		wantIDs   []string
		wantEmpty bool
	}{
		{name: "title and author", body: map[string]string{"title": "SEA", "author": "a1", "genre": "any"}, wantIDs: []string{"b1", "b3"}},
		{name: "blank selects mean any", body: map[string]string{"title": "", "author": "", "genre": ""}, wantIDs: []string{"b1", "b2"}},
		{name: "unused genre", body: map[string]string{"title": "", "author": "any", "genre": "g1"}, wantIDs: []string{}, wantEmpty: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := do(router, testutil.NewRequest(http.MethodPost, "/v1/sessions/"+id+"/search", tt.body))
			require.Equal(t, http.StatusOK, resp.Code)

			data := resp.Data()
			assert.Equal(t, tt.wantIDs, itemIDs(data))
			assert.Equal(t, tt.wantEmpty, data["empty"])
			if tt.wantEmpty {
				assert.Equal(t, "No results found. Your filters might be too narrow.", data["message"])
				assert.Equal(t, true, button(data)["disabled"])
			}
			assert.Equal(t, float64(1), resp.Body["meta"].(map[string]interface{})["page"])
		})
	}

	t.Run("too long title", func(t *testing.T) {
		long := make([]byte, 201)
		for i := range long {
			long[i] = 'x'
		}
		resp := do(router, testutil.NewRequest(http.MethodPost, "/v1/sessions/"+id+"/search", map[string]string{"title": string(long)}))
		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Equal(t, "VALIDATION_ERROR", resp.ErrorCode())
	})
}

func TestCatalogHandler_Detail(t *testing.T) {
	router := newTestRouter(t)
	id := createSession(t, router)

	t.Run("missing id leaves panel closed", func(t *testing.T) {
		resp := do(router, testutil.NewRequest(http.MethodGet, "/v1/sessions/"+id+"/items/missing-id", nil))
		assert.Equal(t, http.StatusNotFound, resp.Code)
		assert.Equal(t, "NOT_FOUND", resp.ErrorCode())

		resp = do(router, testutil.NewRequest(http.MethodGet, "/v1/sessions/"+id, nil))
		assert.Nil(t, resp.Data()["detail"])
	})

	t.Run("item outside visible page", func(t *testing.T) {
		resp := do(router, testutil.NewRequest(http.MethodGet, "/v1/sessions/"+id+"/items/b6", nil))
		require.Equal(t, http.StatusOK, resp.Code)

		data := resp.Data()
		assert.Equal(t, "Winter", data["title"])
		assert.Equal(t, "Ann Author", data["author"])
		assert.Equal(t, float64(1906), data["year"])
		assert.Equal(t, "Snow.", data["description"])
	})

	t.Run("close", func(t *testing.T) {
		resp := do(router, testutil.NewRequest(http.MethodDelete, "/v1/sessions/"+id+"/detail", nil))
		assert.Equal(t, http.StatusNoContent, resp.Code)

		resp = do(router, testutil.NewRequest(http.MethodGet, "/v1/sessions/"+id, nil))
		assert.Nil(t, resp.Data()["detail"])
	})
}

func TestCatalogHandler_SetTheme(t *testing.T) {
	router := newTestRouter(t)
	id := createSession(t, router)

	resp := do(router, testutil.NewRequest(http.MethodPut, "/v1/sessions/"+id+"/theme", map[string]string{"theme": "night"}))
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "night", resp.Data()["theme"])
	assert.Equal(t, "255, 255, 255", resp.Data()["dark"])

	resp = do(router, testutil.NewRequest(http.MethodPut, "/v1/sessions/"+id+"/theme", map[string]string{"theme": "dusk"}))
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "VALIDATION_ERROR", resp.ErrorCode())
}

func TestCatalogHandler_UnknownSession(t *testing.T) {
	router := newTestRouter(t)

	for _, r := range []*http.Request{
		testutil.NewRequest(http.MethodGet, "/v1/sessions/nope", nil),
		testutil.NewRequest(http.MethodPost, "/v1/sessions/nope/more", nil),
		testutil.NewRequest(http.MethodPost, "/v1/sessions/nope/search", map[string]string{}),
		testutil.NewRequest(http.MethodGet, "/v1/sessions/nope/items/b1", nil),
		testutil.NewRequest(http.MethodDelete, "/v1/sessions/nope/detail", nil),
		testutil.NewRequest(http.MethodDelete, "/v1/sessions/nope", nil),
	} {
		resp := do(router, r)
		assert.Equal(t, http.StatusNotFound, resp.Code, r.Method+" "+r.URL.Path)
		assert.Equal(t, "SESSION_NOT_FOUND", resp.ErrorCode())
	}
}

func TestCatalogHandler_DeleteSession(t *testing.T) {
	router := newTestRouter(t)
	id := createSession(t, router)

	resp := do(router, testutil.NewRequest(http.MethodDelete, "/v1/sessions/"+id, nil))
	assert.Equal(t, http.StatusNoContent, resp.Code)

	resp = do(router, testutil.NewRequest(http.MethodGet, "/v1/sessions/"+id, nil))
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestCatalogHandler_Options(t *testing.T) {
	router := newTestRouter(t)

	resp := do(router, testutil.NewRequest(http.MethodGet, "/v1/options", nil))
	require.Equal(t, http.StatusOK, resp.Code)

	authors, _ := resp.Data()["authors"].([]interface{})
	require.Len(t, authors, 3)
	first, _ := authors[0].(map[string]interface{})
	assert.Equal(t, "any", first["value"])
	assert.Equal(t, "All Authors", first["label"])
}

func TestCatalogHandler_NotLoaded(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := catalog.NewMockSource(ctrl)
	src.EXPECT().Load(gomock.Any()).Return(nil, errors.New("db down"))

	svc := catalog.NewService(src, 2)
	assert.Error(t, svc.Load(context.Background()))
	router := NewRouter(NewCatalogHandler(svc, session.NewStore(time.Minute)), svc)

	resp := do(router, testutil.NewRequest(http.MethodPost, "/v1/sessions", nil))
	assert.Equal(t, http.StatusServiceUnavailable, resp.Code)
	assert.Equal(t, "CATALOG_UNAVAILABLE", resp.ErrorCode())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCatalogHandler_MethodNotAllowed(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/sessions/abc/more", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
