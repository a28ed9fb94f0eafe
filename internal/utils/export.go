package utils

import (
	"fmt"
	"strings"

	"github.com/fieldtrax/sales_visit_app/internal/core/domain"
	"github.com/xuri/excelize/v2"
)

// visitCSVHeader matches the source system's export column set.
const visitCSVHeader = "Date,Company,Purpose,Outcome,Value,Status"

// VisitEntriesCSV renders visit reports in the legacy export format: comma-joined
// rows with no quoting or escaping. Embedded commas shift columns, same as the
// source system; use the XLSX export for data with free-form text.
func VisitEntriesCSV(visits []domain.VisitEntry) string {
	var b strings.Builder
	b.WriteString(visitCSVHeader)
	b.WriteByte('\n')
	for _, v := range visits {
		b.WriteString(strings.Join([]string{
			v.DateOfVisit,
			v.CompanyName,
			v.PurposeOfMeeting,
			string(v.VisitOutcome),
			v.PotentialSaleValue,
			v.Status,
		}, ","))
		b.WriteByte('\n')
	}
	return b.String()
}

// VisitEntriesXLSX renders visit reports as a serialized spreadsheet with the full
// column set.
func VisitEntriesXLSX(visits []domain.VisitEntry) ([]byte, error) {
	f := excelize.NewFile()
	const sheet = "Visit Reports"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}

	headers := []string{
		"S.No", "Date", "Day", "Company", "Plant", "City/Area", "State",
		"Contacts", "Purpose", "Discussion Points", "Products/Services",
		"Action Step", "Remarks", "Value", "Outcome", "Pipeline Stage", "Status",
	}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for row, v := range visits {
		contacts := make([]string, len(v.ContactPersons))
		for i, c := range v.ContactPersons {
			contacts[i] = c.Name
			if c.Designation != "" {
				contacts[i] += " (" + c.Designation + ")"
			}
		}
		values := []any{
			v.SerialNumber, v.DateOfVisit, v.DayOfVisit, v.CompanyName, v.Plant,
			v.CityArea, v.State, strings.Join(contacts, "; "), v.PurposeOfMeeting,
			v.DiscussionPoints, v.ProductServices, v.ActionStep, v.Remarks,
			v.PotentialSaleValue, string(v.VisitOutcome), string(v.ConvertStatus), v.Status,
		}
		for col, val := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, val); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
