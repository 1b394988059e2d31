// Package report renders the crop collection as a spreadsheet, one row per
// record with its inputs and the progress derived at export time.
package report

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"agrismart/entities"
	"agrismart/pkg/lifecycle"
)

const sheet = "Crops"

var header = []any{
	"Crop", "Location", "Land Area", "Unit", "Sowing Date",
	"Duration (days)", "Elapsed", "Remaining", "Progress", "Status", "Est. Harvest", "Summary",
}

func BuildWorkbook(recs []entities.CropRecord, now time.Time) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}
	for i, rec := range recs {
		p := lifecycle.Derive(&rec, now)
		row := []any{
			rec.CropName,
			rec.Location,
			rec.LandArea,
			string(rec.LandUnit),
			rec.SowingDate.Format("2006-01-02"),
			rec.Analysis.TotalDurationDays,
			p.ElapsedDays,
			p.RemainingDays,
			fmt.Sprintf("%.0f%%", p.ProgressFraction*100),
			string(p.Status),
			p.HarvestDate.Format("2006-01-02"),
			rec.Analysis.Summary,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}
	return f, nil
}
