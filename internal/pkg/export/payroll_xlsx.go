package export

import (
	"bytes"
	"fmt"

	"github.com/cmlabs-hris/attendance-payroll/internal/domain/payroll"
	"github.com/xuri/excelize/v2"
)

const payrollSheet = "Payroll"

var payrollHeaders = []string{
	"Employee ID", "Employee Code", "Employee Name", "Present Days", "Absent Days",
	"Worked Hours", "Overtime Hours", "Base Salary", "Base Pay", "Overtime Pay", "Total Pay",
}

// PayrollXLSX renders a payroll report as a single-sheet workbook. Values go
// through the same presentation rounding as the JSON response.
func PayrollXLSX(report payroll.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", payrollSheet); err != nil {
		return nil, fmt.Errorf("error naming sheet: %w", err)
	}

	title := fmt.Sprintf("Payroll estimate %04d-%02d", report.Year, report.Month)
	if err := f.SetCellValue(payrollSheet, "A1", title); err != nil {
		return nil, err
	}

	for i, header := range payrollHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 2)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(payrollSheet, cell, header); err != nil {
			return nil, err
		}
	}

	resp := report.ToResponse()
	for i, row := range resp.Rows {
		values := []interface{}{
			row.EmployeeID,
			row.EmployeeCode,
			row.EmployeeName,
			row.PresentDays,
			row.AbsentDays,
			row.TotalWorkedHours.InexactFloat64(),
			row.OvertimeHours.InexactFloat64(),
			row.BaseSalary.IntPart(),
			row.BasePayEarned.IntPart(),
			row.OvertimePay.IntPart(),
			row.TotalPay.IntPart(),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+3)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(payrollSheet, cell, &values); err != nil {
			return nil, fmt.Errorf("error writing row %d: %w", i+3, err)
		}
	}

	totalRow := len(resp.Rows) + 3
	if err := f.SetCellValue(payrollSheet, fmt.Sprintf("J%d", totalRow), "Total"); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(payrollSheet, fmt.Sprintf("K%d", totalRow), resp.TotalPay.IntPart()); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("error writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}
