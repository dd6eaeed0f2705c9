package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/elite-admin/internal/httperr"
	"github.com/BruksfildServices01/elite-admin/internal/httpresp"
	"github.com/BruksfildServices01/elite-admin/internal/middleware"
	"github.com/BruksfildServices01/elite-admin/internal/usecase/crud"
	ucJob "github.com/BruksfildServices01/elite-admin/internal/usecase/job"
)

type ScheduledJobHandler struct {
	finish   *ucJob.FinishAndBill
	calendar *ucJob.CalendarMonth
}

func NewScheduledJobHandler(
	finish *ucJob.FinishAndBill,
	calendar *ucJob.CalendarMonth,
) *ScheduledJobHandler {
	return &ScheduledJobHandler{
		finish:   finish,
		calendar: calendar,
	}
}

// ======================================================
// FINISH AND BILL
// ======================================================
func (h *ScheduledJobHandler) Finish(c *gin.Context) {
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

	res, err := h.finish.Execute(c.Request.Context(), middleware.EmployeeID(c), id)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, res)
}

// ======================================================
// CALENDAR
// ======================================================
func (h *ScheduledJobHandler) Calendar(c *gin.Context) {
	year, month, ok := parseYearMonth(c)
	if !ok {
		httperr.BadRequest(c, "invalid_month", "year/month inválido")
		return
	}

	m, err := h.calendar.Execute(c.Request.Context(), year, month, c.Query("q"))
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, m)
}

// parseYearMonth reads optional year and month query params; zero means
// "current".
func parseYearMonth(c *gin.Context) (int, time.Month, bool) {
	var (
		year  int
		month int
		err   error
	)

	if s := c.Query("year"); s != "" {
		year, err = strconv.Atoi(s)
		if err != nil || year < 1 || year > 9999 {
			return 0, 0, false
		}
	}

	if s := c.Query("month"); s != "" {
		month, err = strconv.Atoi(s)
		if err != nil || month < 1 || month > 12 {
			return 0, 0, false
		}
	}

	return year, time.Month(month), true
}
