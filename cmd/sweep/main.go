// sweep evaluates one load case across every tabulated metric thread size
// and writes the comparison to an .xlsx workbook. Meant for quick sizing
// studies from the command line; the joint template comes from a JSON file
// shaped like autodesign.BoltAutoInput.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	autodesign "BoltLab/internal/calc/premium/autodesign"
	"BoltLab/internal/calc/thread"
	vdi "BoltLab/internal/calc/vdi"

	"github.com/xuri/excelize/v2"
)

func main() {
	in := flag.String("in", "joint.json", "joint template JSON (stack, material, friction, load)")
	out := flag.String("out", "sweep.xlsx", "output workbook")
	flag.Parse()

	data, err := os.ReadFile(*in)
	if err != nil {
		log.Fatalf("read %s: %v", *in, err)
	}
	var tpl autodesign.BoltAutoInput
	if err := json.Unmarshal(data, &tpl); err != nil {
		log.Fatalf("parse %s: %v", *in, err)
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	header := []string{"size", "As mm2", "Phi", "FV N", "FSB N", "FKB N", "sigma MPa", "utilization", "verdict", "surface", "error"}
	for i, name := range header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, name)
	}

	row := 2
	for _, t := range thread.Sizes() {
		spec := vdi.JointSpec{
			Bolt:     vdi.BoltGeometry{D: t.D, D2: t.D2, D3: t.D3, P: t.P, Alpha: 30},
			Stack:    tpl.Stack,
			Material: tpl.Material,
			Friction: tpl.Friction,
			Load:     tpl.Load,
		}
		state, err := vdi.Evaluate(spec)
		var values []interface{}
		if err != nil {
			values = []interface{}{t.Name, "", "", "", "", "", "", "", "", "", err.Error()}
		} else {
			values = []interface{}{
				t.Name, state.As, state.Phi, state.FV, state.FSB, state.FKB,
				state.Sigma, state.Utilization, string(state.Verdict), state.Surface.Combined, "",
			}
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			f.SetCellValue(sheet, cell, v)
		}
		row++
	}

	if err := f.SaveAs(*out); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}
	log.Printf("wrote %d sizes to %s", row-2, *out)
}
