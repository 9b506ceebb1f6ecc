package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	vdi "BoltLab/internal/calc/vdi"

	"github.com/phpdave11/gofpdf"
)

type Input struct {
	Project string        `json:"project"`
	Author  string        `json:"author"`
	Title   string        `json:"title"`
	Joint   vdi.JointSpec `json:"joint"`
}

type Handler struct{}

// Generate runs one evaluation and renders it as a one-page PDF.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "Bolted Joint Report"
	}

	state, err := vdi.Evaluate(input.Joint)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", input.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	lines := []string{
		fmt.Sprintf("Stress area As: %.1f mm2", state.As),
		fmt.Sprintf("Bolt resilience: %.4g mm/N", state.DeltaBolt),
		fmt.Sprintf("Clamped-parts resilience: %.4g mm/N", state.DeltaParts),
		fmt.Sprintf("Load factor Phi: %.3f", state.Phi),
		fmt.Sprintf("Minimum preload: %.0f N", state.FVMin),
		fmt.Sprintf("Assembly preload: %.0f N", state.FVAssembly),
		fmt.Sprintf("Embedding loss: %.0f N", state.FEmbed),
		fmt.Sprintf("Bolt working force FSB: %.0f N", state.FSB),
		fmt.Sprintf("Clamping working force FKB: %.0f N", state.FKB),
		fmt.Sprintf("Bolt stress: %.1f MPa", state.Sigma),
		fmt.Sprintf("Utilization: %.3f (%s)", state.Utilization, state.Verdict),
		fmt.Sprintf("Surface criterion: %.3f (pass=%v, basis %s)", state.Surface.Combined, state.Surface.OK, state.Surface.Basis),
	}
	for _, line := range lines {
		pdf.Cell(0, 6, line)
		pdf.Ln(6)
	}
	if len(state.Warnings) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Cell(0, 6, "Warnings")
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "", 11)
		for _, warn := range state.Warnings {
			pdf.MultiCell(0, 6, warn, "", "L", false)
		}
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"joint-report.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}
