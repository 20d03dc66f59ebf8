package report

import (
	"context"
	"fmt"

	"github.com/RobertoAguirre/amn-backend-go/internal/domain/report"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Asistencia"

var excelHeaders = []string{
	"Empleado",
	"Sitio",
	"Horas dentro",
	"Horas comida",
	"Horas efectivas",
	"Días trabajados",
	"Horario",
	"Horas esperadas",
	"Delta",
	"Faltas",
	"Retardos",
	"Min. retardo",
	"Salidas anticipadas",
	"Min. anticipados",
	"Horas extra",
}

// ExportExcel renders the report rows as an xlsx workbook.
func (s *service) ExportExcel(ctx context.Context, filter report.Filter) ([]byte, error) {
	resp, err := s.Generate(ctx, filter)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for col, h := range excelHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			return nil, fmt.Errorf("failed to style header: %w", err)
		}
	}

	for i, row := range resp.Rows {
		values := []interface{}{
			row.EmployeeName,
			strOrDash(row.SiteName),
			row.InsideHours,
			row.MealHours,
			row.EffectiveHours,
			row.DaysWorked,
		}
		if row.Schedule != nil {
			values = append(values,
				row.Schedule.ScheduleName,
				row.Schedule.ExpectedHours,
				row.Schedule.DeltaHours,
				row.Schedule.DaysAbsent,
				row.Schedule.LatenessCount,
				row.Schedule.LateMinutes,
				row.Schedule.EarlyDepartureCount,
				row.Schedule.EarlyMinutes,
				row.Schedule.OvertimeHours,
			)
		} else {
			// No matched schedule: comparison columns stay blank, not zero
			for range excelHeaders[6:] {
				values = append(values, "")
			}
		}

		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, fmt.Errorf("failed to write row: %w", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func strOrDash(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
