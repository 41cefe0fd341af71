package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"

	"bookcatalog/internal/catalog"
)

// TestAuthors, TestGenres and TestItems form a small dataset with six
// items, two authors and two genres. Genre "g1" is unused.
var (
	TestAuthors = []catalog.Author{
		{ID: "a1", Name: "Ann Author"},
		{ID: "a2", Name: "Bob Writer"},
	}
	TestGenres = []catalog.Genre{
		{ID: "g2", Name: "Drama"},
		{ID: "g3", Name: "Horror"},
	}
	TestItems = []catalog.Item{
		{ID: "b1", Title: "The Silent Sea", AuthorID: "a1", Image: "/b1.jpg", PublishedDate: "1901-05-01T00:00:00.000Z", Description: "Waves.", GenreIDs: []string{"g2"}},
		{ID: "b2", Title: "Night Garden", AuthorID: "a2", Image: "/b2.jpg", PublishedDate: "1902-05-01T00:00:00.000Z", Description: "Roses.", GenreIDs: []string{"g3"}},
		{ID: "b3", Title: "Sea of Glass", AuthorID: "a1", Image: "/b3.jpg", PublishedDate: "1903-05-01T00:00:00.000Z", Description: "Glass.", GenreIDs: []string{"g2", "g3"}},
		{ID: "b4", Title: "Paper Moon", AuthorID: "a2", Image: "/b4.jpg", PublishedDate: "1904-05-01T00:00:00.000Z", Description: "Moon.", GenreIDs: []string{"g2"}},
		{ID: "b5", Title: "Seaside", AuthorID: "a2", Image: "/b5.jpg", PublishedDate: "1905-05-01T00:00:00.000Z", Description: "Sand.", GenreIDs: nil},
		{ID: "b6", Title: "Winter", AuthorID: "a1", Image: "/b6.jpg", PublishedDate: "1906-05-01T00:00:00.000Z", Description: "Snow.", GenreIDs: []string{"g3"}},
	}
)

// NewCatalog builds the test dataset. It panics on error since the fixture is static.
func NewCatalog() *catalog.Catalog {
	c, err := catalog.NewCatalog(TestItems, TestAuthors, TestGenres)
	if err != nil {
		panic(err)
	}
	return c
}

// NewRequest creates a new HTTP request for testing
func NewRequest(method, path string, body interface{}) *http.Request {
	var bodyBytes []byte
	if body != nil {
		bodyBytes, _ = json.Marshal(body)
	}
	var r *http.Request
	if bodyBytes != nil {
		r = httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	return r
}

// RecordResponse records the HTTP response for testing
type RecordResponse struct {
	Code   int
	Header http.Header
	Body   map[string]interface{}
}

// RecordHTTPResponse records the HTTP response
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var bodyMap map[string]interface{}
	if len(bodyBytes) > 0 {
		json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&bodyMap)
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   bodyMap,
	}
}

// Data returns the "data" member of a success envelope as a map.
func (r RecordResponse) Data() map[string]interface{} {
	m, _ := r.Body["data"].(map[string]interface{})
	return m
}

// ErrorCode returns error.code of an error envelope.
func (r RecordResponse) ErrorCode() string {
	e, _ := r.Body["error"].(map[string]interface{})
	code, _ := e["code"].(string)
	return code
}
