package http

import (
	"errors"
	"net/http"
	"strings"

	"bookcatalog/internal/catalog"
	"bookcatalog/internal/httpx"
	"bookcatalog/internal/logger"
	"bookcatalog/internal/metrics"
	"bookcatalog/internal/render"
	"bookcatalog/internal/session"
	"bookcatalog/internal/theme"
)

const colorSchemeHeader = "Sec-CH-Prefers-Color-Scheme"

type CatalogHandler struct {
	svc      *catalog.Service
	sessions *session.Store
}

func NewCatalogHandler(svc *catalog.Service, sessions *session.Store) *CatalogHandler {
	return &CatalogHandler{svc: svc, sessions: sessions}
}

type searchRequest struct {
	Title  string `json:"title" validate:"max=200"`
	Author string `json:"author" validate:"max=100"`
	Genre  string `json:"genre" validate:"max=100"`
}

type themeRequest struct {
	Theme string `json:"theme" validate:"required,oneof=day night"`
}

type sessionResponse struct {
	ID     string          `json:"id"`
	Filter catalog.Filter  `json:"filter"`
	Page   int             `json:"page"`
	List   render.ListView `json:"list"`
	Detail *render.Detail  `json:"detail"`
	Theme  themeResponse   `json:"theme"`
}

type themeResponse struct {
	theme.Settings
	Properties map[string]string `json:"properties"`
}

func newThemeResponse(s theme.Settings) themeResponse {
	return themeResponse{Settings: s, Properties: s.Properties()}
}

// CreateSession handles POST /v1/sessions
// @Summary Open a catalog view
// @Tags sessions
// @Produce json
// @Success 201 {object} httpx.SuccessResponse
// @Failure 503 {object} httpx.ErrorResponse
// @Router /v1/sessions [post]
func (h *CatalogHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	ctl, err := h.svc.NewController()
	if err != nil {
		h.serviceUnavailable(w, r, err)
		return
	}

	sess := h.sessions.Create(ctl, theme.FromColorScheme(prefersDark(r)))
	logger.For(r.Context()).WithField("session_id", sess.ID).Info("session created")
	httpx.JSONSuccessCreated(w, r, snapshotResponse(sess))
}

// GetSession handles GET /v1/sessions/{id}
func (h *CatalogHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	var resp sessionResponse
	err := h.sessions.With(r.PathValue("id"), func(sess *session.Session) error {
		ctl := sess.Controller
		resp = snapshotResponse(sess)
		resp.List = render.List(ctl.Catalog(), ctl.State(), ctl.Visible(), ctl.PageSize())
		return nil
	})
	if err != nil {
		h.sessionError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, resp, nil)
}

// DeleteSession handles DELETE /v1/sessions/{id}
func (h *CatalogHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Delete(r.PathValue("id")); err != nil {
		h.sessionError(w, r, err)
		return
	}
	httpx.JSONSuccessNoContent(w)
}

// Search handles POST /v1/sessions/{id}/search
// @Summary Filter the catalog
// @Description Replaces the filter and returns the first page of matches
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /v1/sessions/{id}/search [post]
func (h *CatalogHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if !httpx.DecodeAndValidate(w, r, &req) {
		return
	}
	f := catalog.Filter{
		TitleQuery: req.Title,
		AuthorID:   anyIfBlank(req.Author),
		GenreID:    anyIfBlank(req.Genre),
	}

	var list render.ListView
	var state catalog.ViewState
	err := h.sessions.With(r.PathValue("id"), func(sess *session.Session) error {
		state = sess.Controller.ApplyFilter(f)
		list = sess.View.List
		return nil
	})
	if err != nil {
		h.sessionError(w, r, err)
		return
	}

	metrics.FilterMatches.Observe(float64(len(state.Matches)))
	httpx.JSONSuccess(w, r, list, map[string]any{
		"filter": state.Filter,
		"page":   state.PageCursor,
		"total":  len(state.Matches),
	})
}

// More handles POST /v1/sessions/{id}/more and returns only the newly revealed previews.
func (h *CatalogHandler) More(w http.ResponseWriter, r *http.Request) {
	var list render.ListView
	var page int
	err := h.sessions.With(r.PathValue("id"), func(sess *session.Session) error {
		sess.Controller.NextPage()
		list = sess.View.List
		page = sess.Controller.State().PageCursor
		return nil
	})
	if err != nil {
		h.sessionError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, list, map[string]any{"page": page})
}

// OpenDetail handles GET /v1/sessions/{id}/items/{itemID}
func (h *CatalogHandler) OpenDetail(w http.ResponseWriter, r *http.Request) {
	itemID := r.PathValue("itemID")

	var detail *render.Detail
	err := h.sessions.With(r.PathValue("id"), func(sess *session.Session) error {
		if _, err := sess.Controller.OpenDetail(itemID); err != nil {
			return err
		}
		detail = sess.View.Detail
		return nil
	})
	switch {
	case err == nil:
		httpx.JSONSuccess(w, r, detail, nil)
	case errors.Is(err, catalog.ErrNotFound):
		metrics.DetailNotFound.Inc()
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Item not found in catalog", nil)
	default:
		h.sessionError(w, r, err)
	}
}

// CloseDetail handles DELETE /v1/sessions/{id}/detail
func (h *CatalogHandler) CloseDetail(w http.ResponseWriter, r *http.Request) {
	err := h.sessions.With(r.PathValue("id"), func(sess *session.Session) error {
		sess.Controller.CloseDetail()
		return nil
	})
	if err != nil {
		h.sessionError(w, r, err)
		return
	}
	httpx.JSONSuccessNoContent(w)
}

// SetTheme handles PUT /v1/sessions/{id}/theme
func (h *CatalogHandler) SetTheme(w http.ResponseWriter, r *http.Request) {
	var req themeRequest
	if !httpx.DecodeAndValidate(w, r, &req) {
		return
	}
	t, err := theme.Parse(req.Theme)
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
		return
	}

	var settings theme.Settings
	err = h.sessions.With(r.PathValue("id"), func(sess *session.Session) error {
		sess.SetTheme(t)
		settings = sess.View.Theme
		return nil
	})
	if err != nil {
		h.sessionError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, newThemeResponse(settings), nil)
}

// Options handles GET /v1/options
func (h *CatalogHandler) Options(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.Catalog()
	if err != nil {
		h.serviceUnavailable(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, render.Options(c), nil)
}

func (h *CatalogHandler) sessionError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, session.ErrNotFound) {
		httpx.JSONError(w, r, http.StatusNotFound, "SESSION_NOT_FOUND", "Session not found or expired", nil)
		return
	}
	logger.For(r.Context()).WithError(err).Error("session operation failed")
	httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
}

func (h *CatalogHandler) serviceUnavailable(w http.ResponseWriter, r *http.Request, err error) {
	logger.For(r.Context()).WithError(err).Warn("catalog unavailable")
	httpx.JSONError(w, r, http.StatusServiceUnavailable, "CATALOG_UNAVAILABLE", "Catalog is not loaded", nil)
}

func snapshotResponse(sess *session.Session) sessionResponse {
	s := sess.Controller.State()
	return sessionResponse{
		ID:     sess.ID,
		Filter: s.Filter,
		Page:   s.PageCursor,
		List:   sess.View.List,
		Detail: sess.View.Detail,
		Theme:  newThemeResponse(sess.View.Theme),
	}
}

func prefersDark(r *http.Request) bool {
	v := strings.Trim(strings.TrimSpace(r.Header.Get(colorSchemeHeader)), `"`)
	return strings.EqualFold(v, "dark")
}

func anyIfBlank(v string) string {
	if strings.TrimSpace(v) == "" {
		return catalog.Any
	}
	return v
}
