// Package reportpdf lays out a work report as a one-or-more page PDF.
//
// Output depends only on the report, its job and the compiler settings:
// document dates come from the report timestamp and the catalog is sorted,
// so identical input yields identical bytes.
package reportpdf

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/merseybathrooms/jobtracker/internal/models"
)

const (
	margin     = 50.0
	lineGap    = 6.0
	sectionGap = 10.0
	bodySize   = 12.0
	headSize   = 14.0
	titleSize  = 18.0
)

type Compiler struct {
	company  string
	compress bool
}

func NewCompiler(company string) *Compiler {
	return &Compiler{company: company, compress: true}
}

func (c *Compiler) Title() string {
	if c.company == "" {
		return "Work Report"
	}
	return c.company + " - Work Report"
}

// Render writes the PDF for rep (belonging to j) to w.
func (c *Compiler) Render(w io.Writer, rep *models.Report, j *models.Job) error {
	if rep == nil || j == nil {
		return fmt.Errorf("reportpdf: report and job are required")
	}

	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetCompression(c.compress)
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(rep.CreatedAt.UTC())
	pdf.SetModificationDate(rep.CreatedAt.UTC())
	pdf.SetAutoPageBreak(false, margin)
	pdf.SetTitle(c.Title(), true)
	pdf.SetSubject("Report "+rep.ID, true)
	pdf.SetCreator(c.company, true)

	pg := &page{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	pg.newPage()

	pg.line(c.Title(), titleSize)
	pg.gap(sectionGap)

	pg.line("Report ID: "+rep.ID, bodySize)
	pg.line("Job ID: "+rep.JobID, bodySize)
	pg.line(fmt.Sprintf("Address: %s, %s", j.Address, j.Postcode), bodySize)
	pg.line("Problem: "+j.Problem, bodySize)
	pg.line("Status: "+j.Status, bodySize)
	pg.gap(sectionGap)

	pg.line("Work Summary:", headSize)
	for i, item := range rep.WorkSummary {
		pg.line(fmt.Sprintf("%d. %s", i+1, item), bodySize)
	}
	pg.gap(sectionGap)

	if rep.StartTime != nil || rep.FinishTime != nil {
		pg.line(fmt.Sprintf("Time: %s - %s", orDash(rep.StartTime), orDash(rep.FinishTime)), bodySize)
	}

	if rep.RequiresFollowUp {
		pg.line("Requires follow-up: YES", bodySize)
	}

	if rep.Postponed {
		pg.line("Postponed to: "+orDash(rep.PostponedDate), bodySize)
		if rep.PostponedReason != nil && *rep.PostponedReason != "" {
			pg.line("Reason: "+*rep.PostponedReason, bodySize)
		}
	}

	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}

// page tracks the baseline cursor and breaks onto new pages.
type page struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
	y   float64
}

func (p *page) newPage() {
	p.pdf.AddPage()
	p.y = margin
}

func (p *page) gap(h float64) {
	p.y += h
}

// line draws text at the cursor, wrapping to the printable width.
func (p *page) line(text string, size float64) {
	p.pdf.SetFont("Helvetica", "", size)
	pageW, pageH := p.pdf.GetPageSize()

	for _, l := range p.pdf.SplitText(p.tr(text), pageW-2*margin) {
		if p.y+size > pageH-margin {
			p.newPage()
			p.pdf.SetFont("Helvetica", "", size)
		}
		p.pdf.SetTextColor(0, 0, 0)
		p.pdf.Text(margin, p.y+size, l)
		p.y += size + lineGap
	}
}

func orDash(v *string) string {
	if v == nil || *v == "" {
		return "-"
	}
	return *v
}
