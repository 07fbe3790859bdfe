package ui

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"elemdex/domain/catalog"
	"elemdex/internal/session"
)

// handleIndex renders the explorer: filter sidebar, ranked results, and
// whichever view mode the session is in
func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	state := a.sessionState(w, r)

	// Query parameters drive mode and deep link on every request, so
	// shared links land in the right state
	params := r.URL.Query()
	if params.Has(catalog.ParamView) {
		state.SetViewMode(catalog.ParseViewMode(params.Get(catalog.ParamView)))
	}
	state.SetDeepLinkTarget(params.Get(catalog.ParamElement))

	criteria, query := a.parseCriteria(r)
	result := catalog.ResolveView(a.dataset, a.roles, criteria, query, state)

	data := indexData{
		Title:         "Research Elements Explorer",
		Query:         query,
		Mode:          result.Mode,
		Insufficient:  result.Insufficient,
		Cards:         a.buildCards(result.Rows, state),
		ShownCount:    len(result.Rows),
		TotalCount:    a.dataset.Len(),
		FavoriteCount: state.FavoriteCount(),
		CompareCount:  state.CompareCount(),
		Categories:    a.buildOptions(catalog.CategoryOptions(a.dataset, a.roles), criteria.Categories),
		Actions:       a.buildOptions(catalog.ActionOptions(a.dataset, a.roles), criteria.Actions),
		ReturnURL:     r.URL.RequestURI(),
		ExportURL:     withQuery("/export.csv", r.URL.RawQuery),
		OverviewURL:   withQuery("/overview", r.URL.RawQuery),
	}
	if result.DeepLink != nil {
		card := a.buildCard(*result.DeepLink, state)
		data.DeepLink = &card
	}
	if min, max, ok := catalog.NumberBounds(a.dataset, a.roles); ok {
		data.Bounds = &boundsData{DatasetMin: min, DatasetMax: max, Min: min, Max: max}
		if criteria.Range != nil {
			data.Bounds.Min = criteria.Range.Min
			data.Bounds.Max = criteria.Range.Max
		}
	}

	a.render(w, "index.html", data)
}

// handleElementDetail renders one element's full record
func (a *App) handleElementDetail(w http.ResponseWriter, r *http.Request) {
	state := a.sessionState(w, r)

	key := chi.URLParam(r, "key")
	row := catalog.LookupRow(a.dataset, a.roles, key)
	if row == nil {
		http.Error(w, "element not found", http.StatusNotFound)
		return
	}

	card := a.buildCard(*row, state)
	data := detailData{
		Title:           card.Header,
		Card:            card,
		DefinitionHTML:  renderMarkdown(a.roles.Value(*row, catalog.RoleDefinition)),
		ExplanationHTML: renderMarkdown(a.roles.Value(*row, catalog.RoleDetailedExplanation)),
		Reference:       a.roles.Value(*row, catalog.RoleReference),
		ShareLink:       catalog.BuildLink(card.Key),
	}

	a.render(w, "element.html", data)
}

// handleOverview renders dataset quick stats for the current filter set
func (a *App) handleOverview(w http.ResponseWriter, r *http.Request) {
	criteria, query := a.parseCriteria(r)
	shown := catalog.Search(catalog.ApplyFilters(a.dataset, a.roles, criteria), a.roles, query)
	profile := catalog.BuildProfile(a.dataset, a.roles, shown)

	a.render(w, "overview.html", overviewData{
		Title:   "Dataset overview",
		Profile: profile,
	})
}

// handleExport streams the filtered results as a CSV download
func (a *App) handleExport(w http.ResponseWriter, r *http.Request) {
	criteria, query := a.parseCriteria(r)
	rows := catalog.Search(catalog.ApplyFilters(a.dataset, a.roles, criteria), a.roles, query)

	payload, err := catalog.ToCSV(a.dataset.Columns(), rows)
	if err != nil {
		log.Printf("[UI] CSV export failed: %v", err)
		http.Error(w, "export failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="filtered_research_elements.csv"`)
	w.Write(payload)
}

// handleToggleFavorite flips a row key in the session's favorites set
func (a *App) handleToggleFavorite(w http.ResponseWriter, r *http.Request) {
	a.handleToggle(w, r, func(state *catalog.SelectionState, key string) {
		state.ToggleFavorite(key)
	})
}

// handleToggleCompare flips a row key in the session's compare set
func (a *App) handleToggleCompare(w http.ResponseWriter, r *http.Request) {
	a.handleToggle(w, r, func(state *catalog.SelectionState, key string) {
		state.ToggleCompare(key)
	})
}

func (a *App) handleToggle(w http.ResponseWriter, r *http.Request, apply func(*catalog.SelectionState, string)) {
	state := a.sessionState(w, r)

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	key := r.FormValue("key")
	if key == "" {
		http.Error(w, "key is required", http.StatusBadRequest)
		return
	}

	// Unknown keys are tolerated; they resolve to nothing when rendered
	apply(state, key)

	returnURL := r.FormValue("return")
	if returnURL == "" || returnURL[0] != '/' {
		returnURL = "/"
	}
	http.Redirect(w, r, returnURL, http.StatusSeeOther)
}

// sessionState finds or creates the SelectionState for this browser
func (a *App) sessionState(w http.ResponseWriter, r *http.Request) *catalog.SelectionState {
	if cookie, err := r.Cookie(session.CookieName); err == nil && cookie.Value != "" {
		return a.sessions.Get(cookie.Value)
	}

	token := a.sessions.NewToken()
	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return a.sessions.Get(token)
}

// parseCriteria reads filter settings from the request's query string
func (a *App) parseCriteria(r *http.Request) (catalog.Criteria, string) {
	return catalog.ParseCriteria(r.URL.Query(), a.dataset, a.roles)
}

// withQuery carries the current filter parameters onto a sibling path, so
// export and overview see the same rows the page shows
func withQuery(path, rawQuery string) string {
	if rawQuery == "" {
		return path
	}
	return path + "?" + rawQuery
}
