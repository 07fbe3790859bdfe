// Package api exposes the catalog as a read-only JSON API, mirroring the
// HTML explorer's query semantics. Session state stays a UI concern and
// is not served here.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"elemdex/domain/catalog"
)

// Server wraps the gin engine serving the JSON API
type Server struct {
	engine  *gin.Engine
	dataset *catalog.Dataset
	roles   catalog.RoleMap
}

// NewServer builds the API server over an already-loaded dataset
func NewServer(ds *catalog.Dataset, roles catalog.RoleMap, mode string) *Server {
	if mode != "" {
		gin.SetMode(mode)
	}

	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery())

	s := &Server{
		engine:  engine,
		dataset: ds,
		roles:   roles,
	}

	engine.GET("/healthz", s.handleHealth)
	engine.GET("/api/elements", s.handleListElements)
	engine.GET("/api/elements/:key", s.handleGetElement)
	engine.GET("/api/overview", s.handleOverview)
	engine.GET("/api/export.csv", s.handleExport)

	return s
}

// Handler exposes the gin engine for serving and tests
func (s *Server) Handler() http.Handler {
	return s.engine
}

// elementResponse is one element record on the wire
type elementResponse struct {
	Key                 string `json:"key"`
	Number              string `json:"number,omitempty"`
	Name                string `json:"name"`
	Symbol              string `json:"symbol,omitempty"`
	Category            string `json:"category,omitempty"`
	Action              string `json:"action,omitempty"`
	Definition          string `json:"definition,omitempty"`
	DetailedExplanation string `json:"detailed_explanation,omitempty"`
	Reference           string `json:"reference,omitempty"`
	Link                string `json:"link"`
}

type listResponse struct {
	Total    int               `json:"total"`
	Shown    int               `json:"shown"`
	Elements []elementResponse `json:"elements"`
	DeepLink *elementResponse  `json:"deep_link,omitempty"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"rows":   s.dataset.Len(),
	})
}

// handleListElements applies the same filter, ranking, and deep-link
// semantics as the explorer index, statelessly
func (s *Server) handleListElements(c *gin.Context) {
	values := c.Request.URL.Query()
	criteria, query := catalog.ParseCriteria(values, s.dataset, s.roles)
	rows := catalog.Search(catalog.ApplyFilters(s.dataset, s.roles, criteria), s.roles, query)

	resp := listResponse{
		Total:    s.dataset.Len(),
		Shown:    len(rows),
		Elements: s.toResponses(rows),
	}
	if target := values.Get(catalog.ParamElement); target != "" {
		if row := catalog.LookupRow(s.dataset, s.roles, target); row != nil {
			e := s.toResponse(*row)
			resp.DeepLink = &e
		}
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleGetElement(c *gin.Context) {
	key := c.Param("key")
	row := catalog.LookupRow(s.dataset, s.roles, key)
	if row == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "element not found"})
		return
	}
	c.JSON(http.StatusOK, s.toResponse(*row))
}

func (s *Server) handleOverview(c *gin.Context) {
	criteria, query := catalog.ParseCriteria(c.Request.URL.Query(), s.dataset, s.roles)
	shown := catalog.Search(catalog.ApplyFilters(s.dataset, s.roles, criteria), s.roles, query)
	c.JSON(http.StatusOK, catalog.BuildProfile(s.dataset, s.roles, shown))
}

func (s *Server) handleExport(c *gin.Context) {
	criteria, query := catalog.ParseCriteria(c.Request.URL.Query(), s.dataset, s.roles)
	rows := catalog.Search(catalog.ApplyFilters(s.dataset, s.roles, criteria), s.roles, query)

	payload, err := catalog.ToCSV(s.dataset.Columns(), rows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="filtered_research_elements.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", payload)
}

func (s *Server) toResponse(row catalog.Row) elementResponse {
	key := s.roles.RowKey(row)
	return elementResponse{
		Key:                 key,
		Number:              s.roles.Value(row, catalog.RoleNumber),
		Name:                s.roles.Value(row, catalog.RoleName),
		Symbol:              s.roles.Value(row, catalog.RoleSymbol),
		Category:            s.roles.Value(row, catalog.RoleCategory),
		Action:              s.roles.Value(row, catalog.RoleAction),
		Definition:          s.roles.Value(row, catalog.RoleDefinition),
		DetailedExplanation: s.roles.Value(row, catalog.RoleDetailedExplanation),
		Reference:           s.roles.Value(row, catalog.RoleReference),
		Link:                catalog.BuildLink(key),
	}
}

func (s *Server) toResponses(rows []catalog.Row) []elementResponse {
	out := make([]elementResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, s.toResponse(row))
	}
	return out
}
