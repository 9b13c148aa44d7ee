package analyzing

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/vfg2006/creative-health-api/internal/domain"
	"github.com/vfg2006/creative-health-api/pkg/utils"
)

// dailyPoint é uma linha diária projetada com métricas derivadas sem
// arredondamento. O arredondamento só acontece na serialização do relatório
type dailyPoint struct {
	date          time.Time
	impressions   int
	reach         int
	linkClicks    int
	conversions   int
	spend         float64
	linkCTR       float64
	cvr           float64
	frequency     float64
	newReachRatio float64
}

type adSeries struct {
	adID   string
	adName string
	days   []dailyPoint
}

type adsetGroup struct {
	adsetID   string
	adsetName string
	ads       []*adSeries
}

type campaignGroup struct {
	campaignID   string
	campaignName string
	status       domain.CampaignStatus
	adsets       []*adsetGroup
}

// project agrupa as linhas brutas em campanha → conjunto → anúncio e calcula
// as métricas derivadas de cada dia. Anúncios com menos de minDays dias são
// descartados; conjuntos e campanhas que ficarem vazios também
func project(rows []*domain.AdDailyRow, minDays int) ([]*campaignGroup, error) {
	campaignsByID := make(map[string]*campaignGroup)
	adsetsByKey := make(map[string]*adsetGroup)
	adsByKey := make(map[string]*adSeries)

	var campaignOrder []string

	for _, row := range rows {
		if err := validateRow(row); err != nil {
			return nil, err
		}

		campaign, ok := campaignsByID[row.CampaignID]
		if !ok {
			campaign = &campaignGroup{
				campaignID:   row.CampaignID,
				campaignName: row.CampaignName,
				status:       normalizeStatus(row.CampaignStatus),
			}
			campaignsByID[row.CampaignID] = campaign
			campaignOrder = append(campaignOrder, row.CampaignID)
		}

		adsetKey := row.CampaignID + "|" + row.AdsetID
		adset, ok := adsetsByKey[adsetKey]
		if !ok {
			adset = &adsetGroup{
				adsetID:   row.AdsetID,
				adsetName: row.AdsetName,
			}
			adsetsByKey[adsetKey] = adset
			campaign.adsets = append(campaign.adsets, adset)
		}

		adKey := adsetKey + "|" + row.AdID
		ad, ok := adsByKey[adKey]
		if !ok {
			ad = &adSeries{
				adID:   row.AdID,
				adName: row.AdName,
			}
			adsByKey[adKey] = ad
			adset.ads = append(adset.ads, ad)
		}

		ad.days = append(ad.days, deriveDaily(row))
	}

	result := make([]*campaignGroup, 0, len(campaignOrder))

	for _, campaignID := range campaignOrder {
		campaign := campaignsByID[campaignID]

		surviving := make([]*adsetGroup, 0, len(campaign.adsets))
		for _, adset := range campaign.adsets {
			kept := make([]*adSeries, 0, len(adset.ads))
			for _, ad := range adset.ads {
				sort.Slice(ad.days, func(i, j int) bool {
					return ad.days[i].date.Before(ad.days[j].date)
				})

				// Portão de histórico mínimo: séries curtas não sustentam
				// correlação nem divisão em metades
				if len(ad.days) < minDays {
					continue
				}

				kept = append(kept, ad)
			}

			// Ordem determinística dos anúncios para a análise
			sort.Slice(kept, func(i, j int) bool {
				return kept[i].adID < kept[j].adID
			})

			if len(kept) == 0 {
				continue
			}

			adset.ads = kept
			surviving = append(surviving, adset)
		}

		if len(surviving) == 0 {
			continue
		}

		campaign.adsets = surviving
		result = append(result, campaign)
	}

	return result, nil
}

// validateRow falha rápido quando colunas obrigatórias estão ausentes
func validateRow(row *domain.AdDailyRow) error {
	switch {
	case row.CampaignID == "":
		return fmt.Errorf("linha de métricas inválida: coluna campaign_id ausente")
	case row.AdsetID == "":
		return fmt.Errorf("linha de métricas inválida: coluna adset_id ausente")
	case row.AdID == "":
		return fmt.Errorf("linha de métricas inválida: coluna ad_id ausente")
	case row.Date.IsZero():
		return fmt.Errorf("linha de métricas inválida: coluna date ausente")
	}

	return nil
}

func normalizeStatus(status domain.CampaignStatus) domain.CampaignStatus {
	switch status {
	case domain.CampaignStatusActive, domain.CampaignStatusPaused, domain.CampaignStatusDeleted:
		return status
	default:
		return domain.CampaignStatusUnknown
	}
}

// deriveDaily projeta uma linha bruta em métricas derivadas. Contagens
// negativas e valores não finitos são coagidos a zero antes da projeção
func deriveDaily(row *domain.AdDailyRow) dailyPoint {
	impressions := coerceCount(row.Impressions)
	reach := coerceCount(row.Reach)
	inlineLinkClicks := coerceCount(row.InlineLinkClicks)
	outboundClicks := coerceCount(row.OutboundClicks)
	conversions := coerceCount(row.Conversions)

	spend := row.Spend
	if spend < 0 || math.IsNaN(spend) || math.IsInf(spend, 0) {
		spend = 0
	}

	linkClicks := inlineLinkClicks
	if linkClicks == 0 {
		linkClicks = outboundClicks
	}

	point := dailyPoint{
		date:        row.Date,
		impressions: impressions,
		reach:       reach,
		linkClicks:  linkClicks,
		conversions: conversions,
		spend:       spend,
	}

	if impressions > 0 {
		point.linkCTR = (float64(linkClicks) / float64(impressions)) * 100
		point.newReachRatio = float64(reach) / float64(impressions)
	}

	if linkClicks > 0 {
		point.cvr = (float64(conversions) / float64(linkClicks)) * 100
	}

	if reach > 0 {
		point.frequency = float64(impressions) / float64(reach)
	}

	return point
}

func coerceCount(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

// renderEntry produz a linha diária arredondada para o relatório
func (p dailyPoint) renderEntry() *domain.AdDailyEntry {
	return &domain.AdDailyEntry{
		Date:          p.date.Format(time.DateOnly),
		Impressions:   p.impressions,
		Reach:         p.reach,
		LinkClicks:    p.linkClicks,
		Conversions:   p.conversions,
		Spend:         utils.RoundWithTwoDecimalPlace(p.spend),
		LinkCTR:       utils.RoundWithTwoDecimalPlace(p.linkCTR),
		CVR:           utils.RoundWithTwoDecimalPlace(p.cvr),
		Frequency:     utils.RoundWithTwoDecimalPlace(p.frequency),
		NewReachRatio: roundTo(p.newReachRatio, 3),
	}
}
