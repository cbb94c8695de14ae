package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/rafabene/academia-backend/internal/domain/entities"
	"github.com/rafabene/academia-backend/internal/domain/repositories"
)

// Queryer é satisfeito por *sql.DB, *sql.Conn e *sql.Tx
type Queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// dashboardQueries são executadas em sequência, uma por indicador
var dashboardQueries = []struct {
	name  string
	query string
}{
	{"total_students", `SELECT COUNT(*) FROM students`},
	{"active_students", `SELECT COUNT(*) FROM students s JOIN users u ON u.id = s.user_id WHERE u.status = 'active'`},
	{"total_instructors", `SELECT COUNT(*) FROM instructors`},
	{"monthly_revenue", `SELECT COALESCE(SUM(amount), 0) FROM payments
		WHERE status = 'paid' AND payment_date >= date_trunc('month', $1::timestamptz)::date
		AND payment_date < (date_trunc('month', $1::timestamptz) + interval '1 month')::date`},
	{"overdue_payments", `SELECT COUNT(*) FROM students WHERE payment_status = 'overdue'
		OR (next_payment_date IS NOT NULL AND next_payment_date < $1::date)`},
	{"check_ins_today", `SELECT COUNT(*) FROM attendance WHERE check_in::date = $1::date`},
	{"unread_notifications", `SELECT COUNT(*) FROM notifications WHERE "read" = false`},
}

// LoadDashboardSummary calcula os agregados do painel. É compartilhada entre a
// API e o script dashboard-report.
func LoadDashboardSummary(ctx context.Context, q Queryer, now time.Time) (*entities.DashboardSummary, error) {
	summary := &entities.DashboardSummary{GeneratedAt: now}

	targets := map[string]any{
		"total_students":       &summary.TotalStudents,
		"active_students":      &summary.ActiveStudents,
		"total_instructors":    &summary.TotalInstructors,
		"monthly_revenue":      &summary.MonthlyRevenue,
		"overdue_payments":     &summary.OverduePayments,
		"check_ins_today":      &summary.CheckInsToday,
		"unread_notifications": &summary.UnreadNotifications,
	}

	for _, dq := range dashboardQueries {
		var args []any
		if strings.Contains(dq.query, "$1") {
			args = append(args, now)
		}
		if err := q.QueryRowContext(ctx, dq.query, args...).Scan(targets[dq.name]); err != nil {
			return nil, fmt.Errorf("dashboard %s: %w", dq.name, err)
		}
	}

	return summary, nil
}

// DashboardRepository implementa repositories.DashboardRepository
type DashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository cria um novo DashboardRepository
func NewDashboardRepository(db *gorm.DB) repositories.DashboardRepository {
	return &DashboardRepository{db: db}
}

func (r *DashboardRepository) Summary(ctx context.Context, now time.Time) (*entities.DashboardSummary, error) {
	sqlDB, err := r.db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	return LoadDashboardSummary(ctx, sqlDB, now)
}
