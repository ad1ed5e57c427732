package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rpgo/incometax/internal/domain"
)

// CSVFormatter writes the report as blank-line separated CSV sections:
// summary, slab breakup and advance-tax schedule (plus the recommendation
// for comparisons).
type CSVFormatter struct{}

func (c CSVFormatter) Name() string      { return "csv" }
func (c CSVFormatter) Extension() string { return "csv" }

func (c CSVFormatter) Format(report *Report) ([]byte, error) {
	if _, err := report.view(); err != nil {
		return nil, err
	}
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	if report.Slabs != nil {
		if err := writeSlabRows(w, report.Slabs); err != nil {
			return nil, err
		}
		w.Flush()
		return buf.Bytes(), w.Error()
	}

	if b := report.BreakEven; b != nil {
		err := w.WriteAll([][]string{
			{"AnnualIncome", "IsSalaried", "NewRegimeTax", "BreakEvenDeduction", "OldRegimeTax", "Iterations"},
			{b.AnnualIncome.String(), boolToString(b.IsSalaried), b.NewRegimeTax.String(),
				b.BreakEvenDeduction.String(), b.OldRegimeTax.String(), strconv.Itoa(b.Iterations)},
		})
		return buf.Bytes(), err
	}

	assessments := []*domain.TaxAssessment{report.Assessment}
	if report.Comparison != nil {
		assessments = []*domain.TaxAssessment{report.Comparison.Old, report.Comparison.New}
	}

	sections := [][][]string{
		summaryRows(assessments),
		breakupRows(assessments),
		scheduleRows(assessments),
	}
	if report.Comparison != nil {
		sections = append(sections, [][]string{
			{"Recommended", "Savings"},
			{report.Comparison.Recommended.String(), report.Comparison.Savings.String()},
		})
	}

	for i, section := range sections {
		if i > 0 {
			buf.WriteString("\n")
		}
		if err := w.WriteAll(section); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

func summaryRows(assessments []*domain.TaxAssessment) [][]string {
	rows := [][]string{{"Regime", "AnnualIncome", "NormalizedDeduction", "TaxableIncome", "BaseTax", "Cess", "TotalTax", "FullyRebated"}}
	for _, a := range assessments {
		rows = append(rows, []string{
			a.Regime.String(),
			a.AnnualIncome.String(),
			a.NormalizedDeduction.String(),
			a.Result.TaxableIncome.String(),
			a.Result.BaseTax.String(),
			a.Result.Cess.String(),
			a.Result.TotalTax.String(),
			boolToString(a.FullyRebated),
		})
	}
	return rows
}

func breakupRows(assessments []*domain.TaxAssessment) [][]string {
	rows := [][]string{{"Regime", "SlabUpTo", "SlabRate", "SlabIncome", "Tax"}}
	for _, a := range assessments {
		for _, e := range a.Result.Breakdown {
			upTo := ""
			if e.SlabUpTo != nil {
				upTo = e.SlabUpTo.String()
			}
			rows = append(rows, []string{a.Regime.String(), upTo, e.Rate.String(), e.IncomeInBand.String(), e.TaxForBand.String()})
		}
	}
	return rows
}

func scheduleRows(assessments []*domain.TaxAssessment) [][]string {
	rows := [][]string{{"Regime", "Quarter", "DueDate", "DueOn", "CumulativeAmount"}}
	for _, a := range assessments {
		for _, inst := range a.Schedule {
			dueOn := ""
			if inst.DueOn != nil {
				dueOn = inst.DueOn.Format("2006-01-02")
			}
			rows = append(rows, []string{a.Regime.String(), inst.Quarter, inst.DueDate, dueOn, inst.CumulativeAmount.String()})
		}
	}
	return rows
}

func writeSlabRows(w *csv.Writer, s *SlabTableView) error {
	if err := w.Write([]string{"Regime", "From", "UpTo", "Rate"}); err != nil {
		return err
	}
	for _, band := range s.Slabs {
		upTo := ""
		if band.UpTo != nil {
			upTo = strconv.FormatFloat(*band.UpTo, 'f', -1, 64)
		}
		row := []string{s.Regime, strconv.FormatFloat(band.From, 'f', -1, 64), upTo, strconv.FormatFloat(band.Rate, 'f', -1, 64)}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
