package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/elite-admin/internal/httperr"
	"github.com/BruksfildServices01/elite-admin/internal/quote"
	"github.com/BruksfildServices01/elite-admin/internal/storage"
)

const (
	HeaderQuoteKey  = "X-Quote-Key"
	quoteArchiveDir = "quotes"
	contentTypePDF  = "application/pdf"
)

type QuoteHandler struct {
	renderer *quote.Renderer
	archive  storage.Archive
	loc      *time.Location
}

// NewQuoteHandler takes a nil archive when archiving is not configured.
func NewQuoteHandler(renderer *quote.Renderer, archive storage.Archive, loc *time.Location) *QuoteHandler {
	return &QuoteHandler{renderer: renderer, archive: archive, loc: loc}
}

func (h *QuoteHandler) PDF(c *gin.Context) {
	var doc quote.Document
	if err := c.ShouldBind(&doc); err != nil && !errors.Is(err, io.EOF) {
		writeError(c, httperr.InvalidBodyError{Err: err})
		return
	}

	doc = doc.WithDefaults(time.Now().In(h.loc))

	out, err := h.renderer.Render(doc)
	if err != nil {
		writeError(c, err)
		return
	}

	if h.archive != nil {
		key, err := h.archive.Put(c.Request.Context(), quoteArchiveDir, out, contentTypePDF)
		if err != nil {
			zerolog.Ctx(c.Request.Context()).Warn().Err(err).Msg("quote archive failed")
		} else {
			c.Header(HeaderQuoteKey, key)
		}
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", quote.FileName))
	c.Data(http.StatusOK, contentTypePDF, out)
}
