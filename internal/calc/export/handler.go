package export

import (
	"encoding/json"
	"fmt"
	"net/http"

	"BoltLab/internal/calc/premium/batch"

	"github.com/xuri/excelize/v2"
)

type Handler struct{}

var columns = []string{
	"As mm2", "deltaBolt mm/N", "deltaParts mm/N", "Phi", "FVmin N",
	"FV assembly N", "FV eff N", "FSB N", "FKB N", "sigma MPa",
	"utilization", "verdict", "surface combined", "warnings",
}

// Joints evaluates a batch and streams the results as an .xlsx workbook.
func (h *Handler) Joints(w http.ResponseWriter, r *http.Request) {
	var input batch.JointBatchInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := batch.CalculateJoints(input)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	for i, name := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, name)
	}
	for i, item := range res.Results {
		rowIdx := i + 2
		if item.Error != "" {
			cell, _ := excelize.CoordinatesToCellName(1, rowIdx)
			f.SetCellValue(sheet, cell, item.Error)
			continue
		}
		st := item.State
		warnings := ""
		for j, warn := range st.Warnings {
			if j > 0 {
				warnings += "; "
			}
			warnings += warn
		}
		values := []interface{}{
			st.As, st.DeltaBolt, st.DeltaParts, st.Phi, st.FVMin,
			st.FVAssembly, st.FV, st.FSB, st.FKB, st.Sigma,
			st.Utilization, string(st.Verdict), st.Surface.Combined, warnings,
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, rowIdx)
			f.SetCellValue(sheet, cell, v)
		}
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "joints.xlsx"))
	if err := f.Write(w); err != nil {
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}
}
