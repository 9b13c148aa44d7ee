package analyzing

import (
	"sort"

	"github.com/vfg2006/creative-health-api/internal/domain"
)

// buildReport monta a hierarquia campanha → conjunto → anúncio, ordena por
// severidade e calcula os resumos. Nunca falha: sem dados suficientes o
// relatório sai vazio com resumo zerado
func buildReport(groups []*campaignGroup, dateRange domain.DateRange, includeInactive bool, policy Policy) *domain.CreativeHealthReport {
	report := &domain.CreativeHealthReport{
		IncludeInactive: includeInactive,
		CTRDefinition:   domain.CTRDefinition,
		DateRange:       dateRange,
		Campaigns:       make([]*domain.CampaignReport, 0, len(groups)),
	}

	for _, group := range groups {
		campaign := &domain.CampaignReport{
			CampaignID:      group.campaignID,
			CampaignName:    group.campaignName,
			EffectiveStatus: group.status,
			IsActive:        group.status.IsActive(),
			Adsets:          make([]*domain.AdSetReport, 0, len(group.adsets)),
		}

		for _, adsetData := range group.adsets {
			adset := analyzeAdSet(group, adsetData, policy)

			campaign.Summary.Add(adset.Status)
			report.Summary.Add(adset.Status)
			campaign.Adsets = append(campaign.Adsets, adset)
		}

		sortAdSets(campaign.Adsets)
		report.Campaigns = append(report.Campaigns, campaign)
	}

	sortCampaigns(report.Campaigns)

	return report
}

// analyzeAdSet roda o analisador por anúncio, o detector de saturação e o
// resolvedor de diagnóstico para um conjunto de anúncios
func analyzeAdSet(campaign *campaignGroup, adsetData *adsetGroup, policy Policy) *domain.AdSetReport {
	ads := make([]*domain.AdAnalysis, 0, len(adsetData.ads))
	for _, ad := range adsetData.ads {
		ads = append(ads, analyzeAd(ad, policy))
	}

	adset := &domain.AdSetReport{
		CampaignID:     campaign.campaignID,
		CampaignName:   campaign.campaignName,
		AdsetID:        adsetData.adsetID,
		AdsetName:      adsetData.adsetName,
		Ads:            ads,
		CampaignStatus: campaign.status,
	}

	verdict := detectSaturation(ads, policy)
	resolveAdSet(adset, verdict)

	sort.SliceStable(adset.Ads, func(i, j int) bool {
		a, b := adset.Ads[i], adset.Ads[j]
		if a.Status.Severity() != b.Status.Severity() {
			return a.Status.Severity() < b.Status.Severity()
		}
		return a.AdID < b.AdID
	})

	return adset
}

// sortAdSets ordena conjuntos do mais grave para o mais saudável
func sortAdSets(adsets []*domain.AdSetReport) {
	sort.SliceStable(adsets, func(i, j int) bool {
		a, b := adsets[i], adsets[j]
		if a.Status.Severity() != b.Status.Severity() {
			return a.Status.Severity() < b.Status.Severity()
		}
		if a.AdsetName != b.AdsetName {
			return a.AdsetName < b.AdsetName
		}
		return a.AdsetID < b.AdsetID
	})
}

// sortCampaigns coloca campanhas ativas antes das inativas, depois por nome
func sortCampaigns(campaigns []*domain.CampaignReport) {
	sort.SliceStable(campaigns, func(i, j int) bool {
		a, b := campaigns[i], campaigns[j]
		if a.IsActive != b.IsActive {
			return a.IsActive
		}
		if a.CampaignName != b.CampaignName {
			return a.CampaignName < b.CampaignName
		}
		return a.CampaignID < b.CampaignID
	})
}
