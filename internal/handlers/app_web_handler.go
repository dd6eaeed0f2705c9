package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/elite-admin/internal/middleware"
	"github.com/BruksfildServices01/elite-admin/internal/models"
	"github.com/BruksfildServices01/elite-admin/internal/quote"
	"github.com/BruksfildServices01/elite-admin/internal/usecase/crud"
	ucJob "github.com/BruksfildServices01/elite-admin/internal/usecase/job"
)

// Column is one table column. Display is the dotted JSON path shown in the
// cell; Input, when set, adds the key to the create and edit forms. Input
// "client" picks a client by name.
type Column struct {
	Key     string
	Label   string
	Display string
	Input   string
}

// ClientLister feeds the client picker on job forms.
type ClientLister interface {
	List(ctx context.Context) ([]models.Client, error)
}

type SearchFunc func(ctx context.Context, q string) (any, error)

type ResourcePage struct {
	Path    string
	Title   string
	API     string
	Columns []Column
	Search  SearchFunc
}

type navLink struct {
	Path  string
	Title string
}

type monthRef struct {
	Year  int
	Month int
}

var monthNames = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// Searcher adapts a CRUD service to a page search function.
func Searcher[T models.Entity](svc *crud.Service[T]) SearchFunc {
	return func(ctx context.Context, q string) (any, error) {
		return svc.Search(ctx, q)
	}
}

type AppWebHandler struct {
	pages    []ResourcePage
	calendar *ucJob.CalendarMonth
	clients  ClientLister
	loc      *time.Location
	nav      []navLink
}

func NewAppWebHandler(
	pages []ResourcePage,
	calendar *ucJob.CalendarMonth,
	clients ClientLister,
	loc *time.Location,
) *AppWebHandler {
	nav := make([]navLink, 0, len(pages)+2)
	for _, p := range pages {
		nav = append(nav, navLink{Path: p.Path, Title: p.Title})
	}
	nav = append(nav,
		navLink{Path: "/scheduled-jobs", Title: "Trabajos agendados"},
		navLink{Path: "/quote", Title: "Cotización"},
	)

	return &AppWebHandler{pages: pages, calendar: calendar, clients: clients, loc: loc, nav: nav}
}

// Register mounts every page on r.
func (h *AppWebHandler) Register(r gin.IRoutes) {
	r.GET("/", h.Home)
	r.GET(middleware.LoginPath, h.LoginPage)
	r.GET("/scheduled-jobs", h.Calendar)
	r.GET("/quote", h.Quote)

	for _, p := range h.pages {
		r.GET(p.Path, h.Resource(p))
	}
}

// render adds the layout data every page needs.
func (h *AppWebHandler) render(c *gin.Context, status int, data gin.H) {
	data["Nav"] = h.nav
	data["Path"] = c.Request.URL.Path
	if s, ok := middleware.Session(c); ok {
		data["CurrentUser"] = s.User
	}
	c.HTML(status, "base", data)
}

func (h *AppWebHandler) renderLogin(c *gin.Context, status int, msg string) {
	c.HTML(status, "base", gin.H{
		"Page":  "login",
		"Title": "Ingresar",
		"Error": msg,
	})
}

func (h *AppWebHandler) Home(c *gin.Context) {
	c.Redirect(http.StatusFound, "/clients")
}

func (h *AppWebHandler) LoginPage(c *gin.Context) {
	h.renderLogin(c, http.StatusOK, "")
}

func (h *AppWebHandler) Resource(p ResourcePage) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := c.Query("q")

		found, err := p.Search(c.Request.Context(), q)
		if err != nil {
			writeError(c, err)
			return
		}

		rows, err := toRows(found)
		if err != nil {
			writeError(c, err)
			return
		}

		var clients []models.Client
		if p.picksClient() {
			if clients, err = h.clients.List(c.Request.Context()); err != nil {
				writeError(c, err)
				return
			}
		}

		h.render(c, http.StatusOK, gin.H{
			"Page":    "table",
			"Title":   p.Title,
			"API":     p.API,
			"Columns": p.Columns,
			"Rows":    rows,
			"Query":   q,
			"Clients": clients,
		})
	}
}

func (p ResourcePage) picksClient() bool {
	for _, col := range p.Columns {
		if col.Input == "client" {
			return true
		}
	}
	return false
}

func (h *AppWebHandler) Calendar(c *gin.Context) {
	year, month, ok := parseYearMonth(c)
	if !ok {
		year, month = 0, 0
	}
	q := c.Query("q")

	m, err := h.calendar.Execute(c.Request.Context(), year, month, q)
	if err != nil {
		writeError(c, err)
		return
	}

	clients, err := h.clients.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	first := time.Date(m.Year, time.Month(m.Month), 1, 0, 0, 0, 0, h.loc)
	prev := first.AddDate(0, -1, 0)
	next := first.AddDate(0, 1, 0)

	h.render(c, http.StatusOK, gin.H{
		"Page":      "calendar",
		"Title":     "Trabajos agendados",
		"Month":     m,
		"MonthName": monthNames[m.Month-1],
		"Prev":      monthRef{Year: prev.Year(), Month: int(prev.Month())},
		"Next":      monthRef{Year: next.Year(), Month: int(next.Month())},
		"Query":     q,
		"Clients":   clients,
	})
}

func (h *AppWebHandler) Quote(c *gin.Context) {
	h.render(c, http.StatusOK, gin.H{
		"Page":     "quote",
		"Title":    "Cotización",
		"Document": quote.DefaultDocument(time.Now().In(h.loc)),
		"Footer":   quote.Footer,
	})
}

// toRows turns typed rows into generic maps keyed like the JSON API.
func toRows(v any) ([]map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var rows []map[string]any
	if err := json.Unmarshal(b, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
