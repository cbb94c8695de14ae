package maintenance

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/rafabene/academia-backend/internal/domain/entities"
	"github.com/rafabene/academia-backend/internal/infrastructure/config"
	"github.com/rafabene/academia-backend/internal/infrastructure/persistence/postgres"
)

const reportSheet = "Dashboard"

// reportRow é uma linha do relatório
type reportRow struct {
	label string
	value any
}

func reportRows(s *entities.DashboardSummary) []reportRow {
	return []reportRow{
		{"Total students", s.TotalStudents},
		{"Active students", s.ActiveStudents},
		{"Instructors", s.TotalInstructors},
		{"Revenue (current month)", s.MonthlyRevenue},
		{"Overdue payments", s.OverduePayments},
		{"Check-ins today", s.CheckInsToday},
		{"Unread notifications", s.UnreadNotifications},
	}
}

// WriteReport imprime os agregados em formato de tabela
func WriteReport(out io.Writer, s *entities.DashboardSummary) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Dashboard report\t%s\n", s.GeneratedAt.Format(time.RFC3339))
	for _, row := range reportRows(s) {
		switch v := row.value.(type) {
		case float64:
			fmt.Fprintf(tw, "  %s\t%.2f\n", row.label, v)
		default:
			fmt.Fprintf(tw, "  %s\t%v\n", row.label, v)
		}
	}
	return tw.Flush()
}

// WriteXLSX grava os mesmos agregados numa planilha
func WriteXLSX(path string, s *entities.DashboardSummary) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), reportSheet); err != nil {
		return err
	}

	header := []any{"Metric", "Value"}
	if err := f.SetSheetRow(reportSheet, "A1", &header); err != nil {
		return err
	}
	for i, row := range reportRows(s) {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []any{row.label, row.value}
		if err := f.SetSheetRow(reportSheet, cell, &values); err != nil {
			return err
		}
	}

	last := len(reportRows(s)) + 2
	generated := []any{"Generated at", s.GeneratedAt.Format(time.RFC3339)}
	if err := f.SetSheetRow(reportSheet, fmt.Sprintf("A%d", last), &generated); err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(reportSheet, "A1", "B1", bold); err != nil {
		return err
	}
	if err := f.SetColWidth(reportSheet, "A", "A", 28); err != nil {
		return err
	}

	return f.SaveAs(path)
}

// DashboardReport é o fluxo completo do script dashboard-report
func DashboardReport(ctx context.Context, cfg *config.Config, now time.Time, out io.Writer) error {
	session, err := Open(ctx, &cfg.Database)
	if err != nil {
		return err
	}
	defer session.Close()

	summary, err := postgres.LoadDashboardSummary(ctx, session.Conn, now)
	if err != nil {
		return err
	}
	if err := WriteReport(out, summary); err != nil {
		return err
	}

	if path := cfg.Reports.DashboardXLSXPath; path != "" {
		if err := WriteXLSX(path, summary); err != nil {
			return fmt.Errorf("write xlsx report: %w", err)
		}
		fmt.Fprintf(out, "Spreadsheet written to %s\n", path)
	}
	return nil
}
