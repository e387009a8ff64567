package report

import (
	"bytes"
	"context"

	domain "github.com/merseybathrooms/jobtracker/internal/domain/report"
	"github.com/merseybathrooms/jobtracker/internal/models"
	"github.com/merseybathrooms/jobtracker/internal/reportpdf"
)

type ListReports struct {
	repo domain.Repository
}

func NewListReports(repo domain.Repository) *ListReports {
	return &ListReports{repo: repo}
}

func (uc *ListReports) Execute(ctx context.Context) ([]models.Report, error) {
	return uc.repo.ListReports(ctx)
}

// ======================================================
// PDF
// ======================================================

type RenderReportPDF struct {
	repo     domain.Repository
	compiler *reportpdf.Compiler
}

func NewRenderReportPDF(repo domain.Repository, compiler *reportpdf.Compiler) *RenderReportPDF {
	return &RenderReportPDF{repo: repo, compiler: compiler}
}

// Execute returns the PDF bytes for report id.
func (uc *RenderReportPDF) Execute(ctx context.Context, id string) ([]byte, error) {
	rep, err := uc.repo.GetReport(ctx, id)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := uc.compiler.Render(&buf, rep, rep.Job); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
