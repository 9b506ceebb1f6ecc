package importer

import (
	"encoding/json"
	"fmt"
	"net/http"

	"BoltLab/internal/calc/premium/batch"
	"BoltLab/internal/calc/thread"
	vdi "BoltLab/internal/calc/vdi"

	"github.com/xuri/excelize/v2"
)

type Handler struct{}

type JointImportResult struct {
	Count   int          `json:"count"`
	Results []batch.Item `json:"results"`
}

// Joints reads joint rows from the first sheet of an uploaded workbook and
// evaluates them as a batch. Unparseable rows are skipped, matching how the
// rest of the import tools treat dirty sheets.
func (h *Handler) Joints(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	var specs []vdi.JointSpec
	for i := 1; i < len(rows); i++ {
		spec, err := parseJointRow(rows[i])
		if err != nil {
			continue
		}
		specs = append(specs, spec)
	}
	if len(specs) == 0 {
		http.Error(w, "No parseable rows", http.StatusBadRequest)
		return
	}

	res, err := batch.CalculateJoints(batch.JointBatchInput{Items: specs})
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(JointImportResult{Count: len(res.Results), Results: res.Results})
}

// expected columns: size, lk, dw, dh, fa, fm_tab, fz(optional), e_p, e_b,
// rp02, rm, n_interfaces, f_z_settle
func parseJointRow(row []string) (vdi.JointSpec, error) {
	if len(row) < 6 {
		return vdi.JointSpec{}, fmt.Errorf("bad row")
	}
	t, err := thread.Size(row[0])
	if err != nil {
		return vdi.JointSpec{}, err
	}
	lk, err := toFloat(row[1])
	if err != nil {
		return vdi.JointSpec{}, err
	}
	dw, err := toFloat(row[2])
	if err != nil {
		return vdi.JointSpec{}, err
	}
	dh, err := toFloat(row[3])
	if err != nil {
		return vdi.JointSpec{}, err
	}
	fa, err := toFloat(row[4])
	if err != nil {
		return vdi.JointSpec{}, err
	}
	fmTab, err := toFloat(row[5])
	if err != nil {
		return vdi.JointSpec{}, err
	}
	fz := 0.0
	if len(row) > 6 && row[6] != "" {
		fz, _ = toFloat(row[6])
	}
	ep := 210000.0
	if len(row) > 7 && row[7] != "" {
		ep, _ = toFloat(row[7])
	}
	eb := 210000.0
	if len(row) > 8 && row[8] != "" {
		eb, _ = toFloat(row[8])
	}
	rp02 := 640.0
	if len(row) > 9 && row[9] != "" {
		rp02, _ = toFloat(row[9])
	}
	rm := 800.0
	if len(row) > 10 && row[10] != "" {
		rm, _ = toFloat(row[10])
	}
	interfaces := 1.0
	if len(row) > 11 && row[11] != "" {
		interfaces, _ = toFloat(row[11])
	}
	settle := 0.004
	if len(row) > 12 && row[12] != "" {
		settle, _ = toFloat(row[12])
	}
	return vdi.JointSpec{
		Bolt:     vdi.BoltGeometry{D: t.D, D2: t.D2, D3: t.D3, P: t.P, Alpha: 30},
		Stack:    vdi.ClampedStack{LK: lk, DW: dw, Dh: dh, EP: ep},
		Material: vdi.MaterialPair{EB: eb, AlphaA: 1.2e-5, AlphaP: 1.2e-5, Rp02: rp02, Rm: rm},
		Friction: vdi.FrictionModel{MuG: 0.12, MuK: 0.14, DKm: (dw + dh) / 2.0},
		Load: vdi.LoadCase{
			FA:         fa,
			FZ:         fz,
			Interfaces: int(interfaces),
			FZSettle:   settle,
			FMTab:      fmTab,
		},
	}, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}
