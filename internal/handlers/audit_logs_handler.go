package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/merseybathrooms/jobtracker/internal/audit"
	"github.com/merseybathrooms/jobtracker/internal/httperr"
	"github.com/merseybathrooms/jobtracker/internal/httpresp"
	"github.com/merseybathrooms/jobtracker/internal/models"
	"github.com/merseybathrooms/jobtracker/internal/timezone"
)

type AuditLogsHandler struct {
	logger   *audit.Logger
	timezone string
}

func NewAuditLogsHandler(logger *audit.Logger, tz string) *AuditLogsHandler {
	return &AuditLogsHandler{logger: logger, timezone: tz}
}

// List supports ?action=&entity=&from=YYYY-MM-DD&to=YYYY-MM-DD&page=&limit=.
// Dates are whole days in the business timezone; to is inclusive.
func (h *AuditLogsHandler) List(c *gin.Context) {
	q := audit.Query{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
	}
	q.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	q.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))

	loc := timezone.Location(h.timezone)

	if fromStr := c.Query("from"); fromStr != "" {
		from, err := time.ParseInLocation(timezone.DateLayout, fromStr, loc)
		if err != nil {
			httperr.From(c, httperr.ErrBusinessMsg(httperr.CodeValidation, "from must be YYYY-MM-DD"))
			return
		}
		q.From = from
	}
	if toStr := c.Query("to"); toStr != "" {
		to, err := time.ParseInLocation(timezone.DateLayout, toStr, loc)
		if err != nil {
			httperr.From(c, httperr.ErrBusinessMsg(httperr.CodeValidation, "to must be YYYY-MM-DD"))
			return
		}
		q.To = to.AddDate(0, 0, 1)
	}

	logs, total, err := h.logger.Search(c.Request.Context(), q)
	if err != nil {
		httperr.From(c, err)
		return
	}
	if logs == nil {
		logs = []models.AuditLog{}
	}

	httpresp.OK(c, gin.H{
		"page":  max(q.Page, 1),
		"total": total,
		"logs":  logs,
	})
}
