package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/merseybathrooms/jobtracker/internal/dto"
	"github.com/merseybathrooms/jobtracker/internal/httperr"
	"github.com/merseybathrooms/jobtracker/internal/httpresp"
	"github.com/merseybathrooms/jobtracker/internal/middleware"
	"github.com/merseybathrooms/jobtracker/internal/storage"
	ucReport "github.com/merseybathrooms/jobtracker/internal/usecase/report"
)

// ======================================================
// HANDLER
// ======================================================

type ReportHandler struct {
	submitUC *ucReport.SubmitReport
	listUC   *ucReport.ListReports
	pdfUC    *ucReport.RenderReportPDF

	maxBodyBytes int64
}

func NewReportHandler(
	submitUC *ucReport.SubmitReport,
	listUC *ucReport.ListReports,
	pdfUC *ucReport.RenderReportPDF,
	maxBodyBytes int64,
) *ReportHandler {
	return &ReportHandler{
		submitUC:     submitUC,
		listUC:       listUC,
		pdfUC:        pdfUC,
		maxBodyBytes: maxBodyBytes,
	}
}

// ======================================================
// SUBMIT (multipart: "data" JSON + "photos" files)
// ======================================================

func (h *ReportHandler) Submit(c *gin.Context) {
	if h.maxBodyBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBodyBytes)
	}

	form, err := c.MultipartForm()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httperr.From(c, httperr.ErrBusinessMsg(httperr.CodeValidation, "upload is too large"))
			return
		}
		httperr.From(c, httperr.ErrBusinessMsg(httperr.CodeValidation, "request must be multipart/form-data"))
		return
	}

	var raw string
	if v := form.Value["data"]; len(v) > 0 {
		raw = v[0]
	}
	data, err := dto.ParseReportData(raw)
	if err != nil {
		httperr.From(c, err)
		return
	}

	photos, err := readPhotos(form.File["photos"])
	if err != nil {
		httperr.From(c, err)
		return
	}

	res, err := h.submitUC.Execute(c.Request.Context(), ucReport.SubmitReportInput{
		Submission:    data.Submission(c.GetString(middleware.ContextUserID)),
		Photos:        photos,
		SubmitterRole: c.GetString(middleware.ContextUserRole),
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"report":    res.Report,
		"photoUrls": res.PhotoURLs,
	})
}

func readPhotos(files []*multipart.FileHeader) ([]storage.Photo, error) {
	photos := make([]storage.Photo, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", fh.Filename, err)
		}
		content, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", fh.Filename, err)
		}

		contentType := fh.Header.Get("Content-Type")
		if contentType == "" || contentType == "application/octet-stream" {
			contentType = http.DetectContentType(content)
		}

		photos = append(photos, storage.Photo{
			Content:     content,
			ContentType: contentType,
			Filename:    fh.Filename,
		})
	}
	return photos, nil
}

// ======================================================
// LIST
// ======================================================

func (h *ReportHandler) List(c *gin.Context) {
	reports, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.List(c, "reports", reports)
}

// ======================================================
// PDF
// ======================================================

func (h *ReportHandler) PDF(c *gin.Context) {
	id := c.Param("id")

	pdf, err := h.pdfUC.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.From(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="report-%s.pdf"`, id))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
