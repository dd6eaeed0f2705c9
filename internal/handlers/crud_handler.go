package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/elite-admin/internal/httperr"
	"github.com/BruksfildServices01/elite-admin/internal/httpresp"
	"github.com/BruksfildServices01/elite-admin/internal/middleware"
	"github.com/BruksfildServices01/elite-admin/internal/models"
	"github.com/BruksfildServices01/elite-admin/internal/usecase/crud"
)

// CrudHandler exposes one entity on GET/POST/PATCH/DELETE of a single path.
type CrudHandler[T models.Entity] struct {
	svc *crud.Service[T]

	// deleteMessage replaces the deleted row in the DELETE response.
	deleteMessage string
}

func NewCrudHandler[T models.Entity](svc *crud.Service[T]) *CrudHandler[T] {
	return &CrudHandler[T]{svc: svc}
}

func (h *CrudHandler[T]) WithDeleteMessage(msg string) *CrudHandler[T] {
	h.deleteMessage = msg
	return h
}

func (h *CrudHandler[T]) Register(g *gin.RouterGroup, path string) {
	g.GET(path, h.List)
	g.POST(path, h.Create)
	g.PATCH(path, h.Update)
	g.DELETE(path, h.Delete)
}

func (h *CrudHandler[T]) List(c *gin.Context) {
	var (
		rows []T
		err  error
	)
	if q := c.Query("q"); q != "" {
		rows, err = h.svc.Search(c.Request.Context(), q)
	} else {
		rows, err = h.svc.List(c.Request.Context())
	}
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.Array(c, rows)
}

func (h *CrudHandler[T]) Create(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		writeError(c, httperr.InvalidBodyError{Err: err})
		return
	}

	row, err := crud.ParseCreate[T](h.svc.Table(), body)
	if err != nil {
		writeError(c, err)
		return
	}

	created, err := h.svc.Create(c.Request.Context(), middleware.EmployeeID(c), row)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, created)
}

func (h *CrudHandler[T]) Update(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		writeError(c, httperr.InvalidBodyError{Err: err})
		return
	}

	patch, err := crud.ParsePatch[T](h.svc.Table(), body)
	if err != nil {
		writeError(c, err)
		return
	}

	updated, err := h.svc.Update(c.Request.Context(), middleware.EmployeeID(c), patch)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, updated)
}

func (h *CrudHandler[T]) Delete(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		writeError(c, httperr.InvalidBodyError{Err: err})
		return
	}

	id, err := crud.ParseID(body)
	if err != nil {
		writeError(c, err)
		return
	}

	deleted, err := h.svc.Delete(c.Request.Context(), middleware.EmployeeID(c), id)
	if err != nil {
		writeError(c, err)
		return
	}

	if h.deleteMessage != "" {
		httpresp.OK(c, httpresp.Message{Message: h.deleteMessage})
		return
	}
	httpresp.OK(c, deleted)
}
