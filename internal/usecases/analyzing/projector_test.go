package analyzing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/creative-health-api/internal/domain"
)

func metricsRow(campaignID, adsetID, adID string, date time.Time) *domain.AdDailyRow {
	return &domain.AdDailyRow{
		CampaignID:       campaignID,
		CampaignName:     "Campanha " + campaignID,
		CampaignStatus:   domain.CampaignStatusActive,
		AdsetID:          adsetID,
		AdsetName:        "Conjunto " + adsetID,
		AdID:             adID,
		AdName:           "Anúncio " + adID,
		Date:             date,
		Impressions:      1000,
		Reach:            800,
		InlineLinkClicks: 50,
		Conversions:      5,
		Spend:            10,
	}
}

func TestProject(t *testing.T) {
	day := func(offset int) time.Time {
		return time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
	}

	t.Run("Agrupa por campanha, conjunto e anúncio", func(t *testing.T) {
		rows := []*domain.AdDailyRow{
			metricsRow("c1", "s1", "a1", day(0)),
			metricsRow("c1", "s1", "a1", day(1)),
			metricsRow("c1", "s1", "a2", day(0)),
			metricsRow("c1", "s2", "a3", day(0)),
			metricsRow("c2", "s3", "a4", day(0)),
		}

		groups, err := project(rows, 1)
		require.NoError(t, err)

		require.Len(t, groups, 2)
		assert.Equal(t, "c1", groups[0].campaignID)
		require.Len(t, groups[0].adsets, 2)
		assert.Len(t, groups[0].adsets[0].ads, 2)
		assert.Len(t, groups[0].adsets[0].ads[0].days, 2)
		assert.Equal(t, "c2", groups[1].campaignID)
	})

	t.Run("Ordena os dias de cada anúncio por data", func(t *testing.T) {
		rows := []*domain.AdDailyRow{
			metricsRow("c1", "s1", "a1", day(2)),
			metricsRow("c1", "s1", "a1", day(0)),
			metricsRow("c1", "s1", "a1", day(1)),
		}

		groups, err := project(rows, 1)
		require.NoError(t, err)

		days := groups[0].adsets[0].ads[0].days
		require.Len(t, days, 3)
		assert.True(t, days[0].date.Before(days[1].date))
		assert.True(t, days[1].date.Before(days[2].date))
	})

	t.Run("Descarta anúncios com menos dias que o mínimo", func(t *testing.T) {
		rows := []*domain.AdDailyRow{}
		for i := 0; i < 7; i++ {
			rows = append(rows, metricsRow("c1", "s1", "a1", day(i)))
		}
		for i := 0; i < 3; i++ {
			rows = append(rows, metricsRow("c1", "s1", "a2", day(i)))
		}

		groups, err := project(rows, 7)
		require.NoError(t, err)

		require.Len(t, groups, 1)
		require.Len(t, groups[0].adsets, 1)
		require.Len(t, groups[0].adsets[0].ads, 1)
		assert.Equal(t, "a1", groups[0].adsets[0].ads[0].adID)
	})

	t.Run("Remove conjuntos e campanhas que ficarem vazios", func(t *testing.T) {
		rows := []*domain.AdDailyRow{
			metricsRow("c1", "s1", "a1", day(0)),
		}

		groups, err := project(rows, 7)
		require.NoError(t, err)
		assert.Empty(t, groups)
	})

	t.Run("Ordena anúncios do conjunto por identificador", func(t *testing.T) {
		rows := []*domain.AdDailyRow{
			metricsRow("c1", "s1", "b", day(0)),
			metricsRow("c1", "s1", "a", day(0)),
		}

		groups, err := project(rows, 1)
		require.NoError(t, err)

		ads := groups[0].adsets[0].ads
		require.Len(t, ads, 2)
		assert.Equal(t, "a", ads[0].adID)
		assert.Equal(t, "b", ads[1].adID)
	})

	t.Run("Falha com coluna obrigatória ausente", func(t *testing.T) {
		tests := []struct {
			name    string
			mutate  func(*domain.AdDailyRow)
			wantMsg string
		}{
			{
				name:    "campaign_id ausente",
				mutate:  func(r *domain.AdDailyRow) { r.CampaignID = "" },
				wantMsg: "campaign_id",
			},
			{
				name:    "adset_id ausente",
				mutate:  func(r *domain.AdDailyRow) { r.AdsetID = "" },
				wantMsg: "adset_id",
			},
			{
				name:    "ad_id ausente",
				mutate:  func(r *domain.AdDailyRow) { r.AdID = "" },
				wantMsg: "ad_id",
			},
			{
				name:    "date ausente",
				mutate:  func(r *domain.AdDailyRow) { r.Date = time.Time{} },
				wantMsg: "date",
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				row := metricsRow("c1", "s1", "a1", day(0))
				tt.mutate(row)

				_, err := project([]*domain.AdDailyRow{row}, 1)
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantMsg)
			})
		}
	})

	t.Run("Status desconhecido de campanha é normalizado", func(t *testing.T) {
		row := metricsRow("c1", "s1", "a1", day(0))
		row.CampaignStatus = "ARCHIVED"

		groups, err := project([]*domain.AdDailyRow{row}, 1)
		require.NoError(t, err)
		assert.Equal(t, domain.CampaignStatusUnknown, groups[0].status)
	})
}

func TestDeriveDaily(t *testing.T) {
	day := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Calcula as métricas derivadas", func(t *testing.T) {
		row := metricsRow("c1", "s1", "a1", day)

		point := deriveDaily(row)

		assert.InDelta(t, 5.0, point.linkCTR, 1e-9)      // 50/1000 * 100
		assert.InDelta(t, 10.0, point.cvr, 1e-9)         // 5/50 * 100
		assert.InDelta(t, 1.25, point.frequency, 1e-9)   // 1000/800
		assert.InDelta(t, 0.8, point.newReachRatio, 1e-9) // 800/1000
	})

	t.Run("Usa cliques externos quando inline é zero", func(t *testing.T) {
		row := metricsRow("c1", "s1", "a1", day)
		row.InlineLinkClicks = 0
		row.OutboundClicks = 30

		point := deriveDaily(row)
		assert.Equal(t, 30, point.linkClicks)
	})

	t.Run("Prefere cliques inline quando presentes", func(t *testing.T) {
		row := metricsRow("c1", "s1", "a1", day)
		row.InlineLinkClicks = 20
		row.OutboundClicks = 50

		point := deriveDaily(row)
		assert.Equal(t, 20, point.linkClicks)
	})

	t.Run("Cliques externos negativos são coagidos a zero", func(t *testing.T) {
		row := metricsRow("c1", "s1", "a1", day)
		row.InlineLinkClicks = 0
		row.OutboundClicks = -5

		point := deriveDaily(row)
		assert.Equal(t, 0, point.linkClicks)
		assert.Zero(t, point.cvr)
	})

	t.Run("Denominadores zero produzem métricas zero", func(t *testing.T) {
		row := metricsRow("c1", "s1", "a1", day)
		row.Impressions = 0
		row.Reach = 0
		row.InlineLinkClicks = 0

		point := deriveDaily(row)
		assert.Zero(t, point.linkCTR)
		assert.Zero(t, point.frequency)
		assert.Zero(t, point.newReachRatio)
	})

	t.Run("Gasto negativo é coagido a zero", func(t *testing.T) {
		row := metricsRow("c1", "s1", "a1", day)
		row.Spend = -3.5

		point := deriveDaily(row)
		assert.Zero(t, point.spend)
	})
}

func TestRenderEntry(t *testing.T) {
	point := dailyPoint{
		date:          time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		impressions:   300,
		reach:         200,
		linkClicks:    1,
		conversions:   1,
		spend:         10.991,
		linkCTR:       1.0 / 3.0,
		cvr:           100,
		frequency:     1.5,
		newReachRatio: 2.0 / 3.0,
	}

	entry := point.renderEntry()

	assert.Equal(t, "2026-08-01", entry.Date)
	assert.Equal(t, 10.99, entry.Spend)
	assert.Equal(t, 0.33, entry.LinkCTR)
	assert.Equal(t, 100.0, entry.CVR)
	assert.Equal(t, 1.5, entry.Frequency)
	assert.Equal(t, 0.667, entry.NewReachRatio)
}
