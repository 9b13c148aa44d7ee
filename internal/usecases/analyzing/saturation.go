package analyzing

import (
	"github.com/vfg2006/creative-health-api/internal/domain"
)

// detectSaturation decide se o conjunto inteiro está saturado no nível da
// audiência. Saturação só é diagnosticada quando uma supermaioria dos
// anúncios irmãos está em declínio, eles declinam juntos (correlação cruzada
// positiva de CTR) e o alcance está sendo re-servido aos mesmos usuários
// (new-reach baixo). Nenhuma condição isolada é suficiente
func detectSaturation(ads []*domain.AdAnalysis, policy Policy) *domain.SaturationVerdict {
	total := len(ads)

	declining := 0
	ctrSeries := make([][]float64, 0, total)
	newReachValues := make([]float64, 0, total)

	for _, ad := range ads {
		if ad.Trends.CTR.Direction == domain.TrendFalling && ad.CTRChangeRaw < policy.DeclineChangeThreshold {
			declining++
		}

		if len(ad.CTRSeries) >= policy.MinDays {
			ctrSeries = append(ctrSeries, ad.CTRSeries)
		}

		newReachValues = append(newReachValues, ad.NewReachPctRaw)
	}

	declineRatio := 0.0
	if total > 0 {
		declineRatio = float64(declining) / float64(total)
	}

	crossCorr := averagePairwiseCorrelation(ctrSeries)
	avgNewReach := mean(newReachValues)

	positiveCrossCorr := crossCorr
	if positiveCrossCorr < 0 {
		positiveCrossCorr = 0
	}

	reachExhaustion := (100 - avgNewReach) / 100
	if reachExhaustion < 0 {
		reachExhaustion = 0
	}

	weights := policy.SaturationWeights
	score := weights.DeclineRatio*declineRatio +
		weights.CrossCorrelation*positiveCrossCorr +
		weights.ReachExhaustion*reachExhaustion

	return &domain.SaturationVerdict{
		Score:            roundTo(score, 3),
		IsSaturated:      score > policy.SaturationScoreThreshold && declineRatio > policy.SaturationDeclineThreshold,
		DeclineRatio:     roundTo(declineRatio*100, 1),
		CrossCorrelation: roundTo(crossCorr, 3),
		AvgNewReachPct:   roundTo(avgNewReach, 0),
		DecliningCount:   declining,
		TotalCount:       total,
	}
}
