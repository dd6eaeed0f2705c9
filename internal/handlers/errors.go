package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/elite-admin/internal/httperr"
)

var businessMessages = map[string]string{
	httperr.CodeClientInUse:         "El cliente tiene trabajos asociados",
	httperr.CodeJobAlreadyCompleted: "El trabajo ya fue completado",
}

// writeError maps service errors onto the JSON error body. Anything that is
// not a request or business error is reported as a 500 with its message.
func writeError(c *gin.Context, err error) {
	log := zerolog.Ctx(c.Request.Context())

	switch {
	case errors.Is(err, httperr.ErrMissingID):
		httperr.BadRequest(c, "missing_id", err.Error())

	case httperr.IsInvalidBody(err):
		httperr.BadRequest(c, "invalid_body", err.Error())

	default:
		if be, ok := httperr.AsBusiness(err); ok {
			msg, found := businessMessages[be.Code]
			if !found {
				msg = be.Code
			}
			httperr.Conflict(c, be.Code, msg)
			return
		}

		log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		_ = c.Error(err)
		httperr.Internal(c, "", err.Error())
	}
}
