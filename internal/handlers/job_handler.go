package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/merseybathrooms/jobtracker/internal/dto"
	"github.com/merseybathrooms/jobtracker/internal/httperr"
	"github.com/merseybathrooms/jobtracker/internal/httpresp"
	"github.com/merseybathrooms/jobtracker/internal/middleware"
	ucJob "github.com/merseybathrooms/jobtracker/internal/usecase/job"
)

// ======================================================
// HANDLER
// ======================================================

type JobHandler struct {
	createUC *ucJob.CreateJob
	listUC   *ucJob.ListJobs
	getUC    *ucJob.GetJob
}

func NewJobHandler(
	createUC *ucJob.CreateJob,
	listUC *ucJob.ListJobs,
	getUC *ucJob.GetJob,
) *JobHandler {
	return &JobHandler{
		createUC: createUC,
		listUC:   listUC,
		getUC:    getUC,
	}
}

// ======================================================
// CREATE
// ======================================================

func (h *JobHandler) Create(c *gin.Context) {
	var req dto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.From(c, httperr.ErrBusinessMsg(httperr.CodeValidation, "request body must be a JSON object"))
		return
	}

	job, err := h.createUC.Execute(c.Request.Context(), ucJob.CreateJobInput{
		Address:       req.Address,
		Postcode:      req.Postcode,
		Problem:       req.Problem,
		CustomerPhone: req.CustomerPhone,
		ScheduledDate: req.ScheduledDate,
		TimeFrom:      req.TimeFrom,
		TimeTo:        req.TimeTo,
		CreatedBy:     c.GetString(middleware.ContextUserID),
		AssignedTo:    req.AssignedTo,
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, gin.H{"job": job})
}

// ======================================================
// LIST
// ======================================================

func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.listUC.Execute(c.Request.Context(), ucJob.ListJobsInput{
		Status:     c.Query("status"),
		Date:       c.Query("date"),
		ViewerID:   c.GetString(middleware.ContextUserID),
		ViewerRole: c.GetString(middleware.ContextUserRole),
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.List(c, "jobs", jobs)
}

// ======================================================
// GET
// ======================================================

func (h *JobHandler) Get(c *gin.Context) {
	job, err := h.getUC.Execute(
		c.Request.Context(),
		c.Param("id"),
		c.GetString(middleware.ContextUserID),
		c.GetString(middleware.ContextUserRole),
	)
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, gin.H{"job": job})
}
