package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/creative-health-api/infrastructure/database/postgres"
	"github.com/vfg2006/creative-health-api/internal/domain"
)

const adDailyMetricsTable = "ad_daily_metrics adm"

// Campanhas ativas e sem status conhecido seguem elegíveis para análise
var analyzableCampaignStatus = []domain.CampaignStatus{
	domain.CampaignStatusActive,
	domain.CampaignStatusUnknown,
}

type AdDailyMetricsRepository interface {
	QueryDailyAdMetrics(accountID string, startDate, endDate time.Time, includeInactive bool) ([]*domain.AdDailyRow, error)
}

type adDailyMetricsRepository struct {
	conn *postgres.Connection
}

func NewAdDailyMetricsRepository(conn *postgres.Connection) AdDailyMetricsRepository {
	return &adDailyMetricsRepository{
		conn: conn,
	}
}

func (r *adDailyMetricsRepository) QueryDailyAdMetrics(
	accountID string,
	startDate, endDate time.Time,
	includeInactive bool,
) ([]*domain.AdDailyRow, error) {
	queryBuilder := squirrel.
		Select(
			"adm.campaign_id, adm.campaign_name, adm.campaign_status",
			"adm.adset_id, adm.adset_name, adm.ad_id, adm.ad_name, adm.date",
			"adm.impressions, adm.reach, adm.inline_link_clicks, adm.outbound_clicks",
			"adm.clicks, adm.conversions, adm.spend",
		).
		From(adDailyMetricsTable).
		Where(squirrel.Eq{"adm.account_id": accountID}).
		Where(squirrel.GtOrEq{"adm.date": startDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"adm.date": endDate.Format("2006-01-02")}).
		OrderBy("adm.date ASC").
		PlaceholderFormat(squirrel.Dollar)

	if !includeInactive {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"adm.campaign_status": analyzableCampaignStatus})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	metrics := make([]*domain.AdDailyRow, 0)
	for rows.Next() {
		metric, err := r.scanDailyRow(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear métricas diárias: %w", err)
		}
		metrics = append(metrics, metric)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return metrics, nil
}

func (r *adDailyMetricsRepository) scanDailyRow(rows *sql.Rows) (*domain.AdDailyRow, error) {
	row := &domain.AdDailyRow{}

	if err := rows.Scan(
		&row.CampaignID,
		&row.CampaignName,
		&row.CampaignStatus,
		&row.AdsetID,
		&row.AdsetName,
		&row.AdID,
		&row.AdName,
		&row.Date,
		&row.Impressions,
		&row.Reach,
		&row.InlineLinkClicks,
		&row.OutboundClicks,
		&row.Clicks,
		&row.Conversions,
		&row.Spend,
	); err != nil {
		return nil, err
	}

	return row, nil
}
