package ui

import (
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"elemdex/domain/catalog"
)

// cardData is one element rendered as a tap-friendly card
type cardData struct {
	Key        string
	Header     string
	Number     string
	Name       string
	Symbol     string
	Category   string
	Action     string
	Definition string
	IsFavorite bool
	InCompare  bool
	Link       string
}

// optionData is one choice in a multiselect filter
type optionData struct {
	Value    string
	Selected bool
}

// boundsData drives the element-number range inputs
type boundsData struct {
	DatasetMin float64
	DatasetMax float64
	Min        float64
	Max        float64
}

type indexData struct {
	Title         string
	Query         string
	Mode          catalog.ViewMode
	Insufficient  bool
	Cards         []cardData
	DeepLink      *cardData
	ShownCount    int
	TotalCount    int
	FavoriteCount int
	CompareCount  int
	Categories    []optionData
	Actions       []optionData
	Bounds        *boundsData
	ReturnURL     string
	ExportURL     string
	OverviewURL   string
}

type detailData struct {
	Title           string
	Card            cardData
	DefinitionHTML  template.HTML
	ExplanationHTML template.HTML
	Reference       string
	ShareLink       string
}

type overviewData struct {
	Title   string
	Profile catalog.Profile
}

// buildCard projects a row into its card view model
func (a *App) buildCard(row catalog.Row, state *catalog.SelectionState) cardData {
	key := a.roles.RowKey(row)

	number := a.roles.Value(row, catalog.RoleNumber)
	name := a.roles.Value(row, catalog.RoleName)
	symbol := a.roles.Value(row, catalog.RoleSymbol)

	header := name
	if number != "" {
		header = fmt.Sprintf("%s — %s", number, name)
	}
	if symbol != "" {
		header = fmt.Sprintf("%s (%s)", header, symbol)
	}

	return cardData{
		Key:        key,
		Header:     header,
		Number:     number,
		Name:       name,
		Symbol:     symbol,
		Category:   a.roles.Value(row, catalog.RoleCategory),
		Action:     a.roles.Value(row, catalog.RoleAction),
		Definition: a.roles.Value(row, catalog.RoleDefinition),
		IsFavorite: state.IsFavorite(key),
		InCompare:  state.InCompare(key),
		Link:       catalog.BuildLink(key),
	}
}

func (a *App) buildCards(rows []catalog.Row, state *catalog.SelectionState) []cardData {
	cards := make([]cardData, 0, len(rows))
	for _, row := range rows {
		cards = append(cards, a.buildCard(row, state))
	}
	return cards
}

// buildOptions marks each known value as selected. With no constraint in
// play every option renders selected, matching the multiselect default.
func (a *App) buildOptions(values []string, selected []string) []optionData {
	if values == nil {
		return nil
	}
	selectedSet := make(map[string]bool, len(selected))
	for _, v := range selected {
		selectedSet[v] = true
	}
	noConstraint := selected == nil

	options := make([]optionData, 0, len(values))
	for _, v := range values {
		options = append(options, optionData{
			Value:    v,
			Selected: noConstraint || selectedSet[v],
		})
	}
	return options
}

// renderMarkdown converts a long-text field to sanitizable HTML
func renderMarkdown(source string) template.HTML {
	source = strings.TrimSpace(source)
	if source == "" {
		return ""
	}
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return template.HTML(markdown.ToHTML([]byte(source), p, renderer))
}

// render executes a template, logging failures the way the rest of the
// app logs
func (a *App) render(w http.ResponseWriter, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := a.templates.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("[UI] Failed to render %s: %v", name, err)
		http.Error(w, "render failed", http.StatusInternalServerError)
	}
}
