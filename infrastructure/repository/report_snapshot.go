package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/Acedi-a/spa-report-api/infrastructure/database/postgres"
	"github.com/Acedi-a/spa-report-api/internal/domain"
	"github.com/Acedi-a/spa-report-api/pkg/utils"
)

const (
	reportSnapshotsTable = "report_snapshots rs"
)

// ReportSnapshotRepository é o cache read-through de relatórios calculados,
// chaveado pela tupla de filtros (início, fim, cliente)
type ReportSnapshotRepository interface {
	GetByFilters(filters *domain.ReportFilters) (*domain.ReportSnapshotEntry, error)
	SaveOrUpdate(entry *domain.ReportSnapshotEntry) error
	DeleteByFilters(filters *domain.ReportFilters) (int64, error)
	DeleteOlderThan(days int) (int64, error)
}

type reportSnapshotRepository struct {
	conn *postgres.Connection
}

func NewReportSnapshotRepository(conn *postgres.Connection) ReportSnapshotRepository {
	return &reportSnapshotRepository{
		conn: conn,
	}
}

// customerKey mapeia o ponteiro opcional de cliente para a coluna não nula
// usada na chave única do snapshot
func customerKey(customerID *string) string {
	if customerID == nil {
		return ""
	}
	return *customerID
}

func (r *reportSnapshotRepository) GetByFilters(filters *domain.ReportFilters) (*domain.ReportSnapshotEntry, error) {
	query, args, err := squirrel.
		Select("rs.id, rs.start_date, rs.end_date, rs.customer_id, rs.summary, rs.created_at, rs.updated_at").
		From(reportSnapshotsTable).
		Where(squirrel.Eq{
			"rs.start_date":  filters.StartDate.Format(time.DateOnly),
			"rs.end_date":    filters.EndDate.Format(time.DateOnly),
			"rs.customer_id": customerKey(filters.CustomerID),
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	entry, err := r.scanSnapshot(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
	}

	return entry, nil
}

func (r *reportSnapshotRepository) SaveOrUpdate(entry *domain.ReportSnapshotEntry) error {
	var summaryJSON []byte
	var err error

	if entry.Summary != nil {
		summaryJSON, err = json.Marshal(entry.Summary)
		if err != nil {
			return fmt.Errorf("erro ao serializar ReportSummary para JSON: %w", err)
		}
	}

	if entry.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar ID do snapshot: %w", err)
		}
		entry.ID = id
	}

	query := squirrel.StatementBuilder.
		Insert("report_snapshots").
		Columns("id", "start_date", "end_date", "customer_id", "summary").
		Values(
			entry.ID,
			entry.StartDate.Format(time.DateOnly),
			entry.EndDate.Format(time.DateOnly),
			customerKey(entry.CustomerID),
			summaryJSON,
		).
		Suffix(`
			ON CONFLICT (start_date, end_date, customer_id) DO UPDATE SET
				summary = EXCLUDED.summary,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// DeleteByFilters é a invalidação explícita do cache para uma tupla de
// filtros
func (r *reportSnapshotRepository) DeleteByFilters(filters *domain.ReportFilters) (int64, error) {
	query, args, err := squirrel.
		Delete("report_snapshots").
		Where(squirrel.Eq{
			"start_date":  filters.StartDate.Format(time.DateOnly),
			"end_date":    filters.EndDate.Format(time.DateOnly),
			"customer_id": customerKey(filters.CustomerID),
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func (r *reportSnapshotRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format(time.DateOnly)

	query, args, err := squirrel.
		Delete("report_snapshots").
		Where(squirrel.Lt{"end_date": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func (r *reportSnapshotRepository) scanSnapshot(row *sql.Row) (*domain.ReportSnapshotEntry, error) {
	entry := &domain.ReportSnapshotEntry{}
	var summaryJSON []byte
	var customerID string

	err := row.Scan(
		&entry.ID,
		&entry.StartDate,
		&entry.EndDate,
		&customerID,
		&summaryJSON,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if customerID != "" {
		entry.CustomerID = &customerID
	}

	if summaryJSON != nil {
		summary := &domain.ReportSummary{}
		if err := json.Unmarshal(summaryJSON, summary); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de summary: %w", err)
		}
		entry.Summary = summary
	}

	return entry, nil
}
