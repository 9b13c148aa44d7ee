package analyzing

import (
	"fmt"

	"github.com/vfg2006/creative-health-api/internal/domain"
)

// Rótulos exibidos pela interface; o front-end estiliza cada card por eles
const (
	labelAudienceSaturation = "Audience Saturation"
	labelCreativeFatigue    = "Creative Fatigue"
	labelEarlyWarning       = "Early Warning"
	labelHealthy            = "Healthy"
)

// resolveAdSet reconcilia os diagnósticos preliminares por anúncio com o
// veredito de saturação do conjunto e produz o status final de cada anúncio
// e do conjunto, com a recomendação para o operador
func resolveAdSet(adset *domain.AdSetReport, verdict *domain.SaturationVerdict) {
	fatigued := 0
	warnings := 0
	healthy := 0

	for _, ad := range adset.Ads {
		resolveAd(ad, verdict.IsSaturated)

		switch ad.PreliminaryStatus {
		case domain.HealthStatusFatigued:
			fatigued++
		case domain.HealthStatusWarning:
			warnings++
		case domain.HealthStatusHealthy:
			healthy++
		}
	}

	adset.Saturation = verdict

	switch {
	case verdict.IsSaturated:
		adset.Status = domain.HealthStatusSaturated
		adset.StatusLabel = labelAudienceSaturation
		adset.Diagnosis = domain.DiagnosisAudienceSaturation
		adset.Confidence = domain.ConfidenceHigh
		adset.Recommendation = fmt.Sprintf(
			"%d de %d anúncios em declínio simultâneo com new-reach médio de %.0f%%. "+
				"A audiência está esgotada: expanda o público ou reduza o orçamento do conjunto. "+
				"Trocar os criativos não vai ajudar aqui.",
			verdict.DecliningCount, verdict.TotalCount, verdict.AvgNewReachPct,
		)

	case fatigued > 0:
		adset.Status = domain.HealthStatusFatigued
		adset.StatusLabel = labelCreativeFatigue
		adset.Diagnosis = domain.DiagnosisCreativeFatigue
		// Irmãos saudáveis descartam saturação; a fadiga é do criativo
		if healthy > 0 {
			adset.Confidence = domain.ConfidenceHigh
		} else {
			adset.Confidence = domain.ConfidenceMedium
		}
		adset.Recommendation = fmt.Sprintf(
			"%d de %d anúncios com fadiga criativa. "+
				"Substitua ou atualize os criativos fatigados; os demais seguem entregando.",
			fatigued, len(adset.Ads),
		)

	case warnings > 0:
		adset.Status = domain.HealthStatusWarning
		adset.StatusLabel = labelEarlyWarning
		adset.Diagnosis = domain.DiagnosisPossibleFatigue
		adset.Confidence = domain.ConfidenceMedium
		adset.Recommendation = fmt.Sprintf(
			"%d de %d anúncios com sinais iniciais de desgaste. "+
				"Monitore diariamente e prepare criativos substitutos.",
			warnings, len(adset.Ads),
		)

	default:
		adset.Status = domain.HealthStatusHealthy
		adset.StatusLabel = labelHealthy
		adset.Diagnosis = domain.DiagnosisHealthy
		adset.Confidence = domain.ConfidenceHigh
		adset.Recommendation = "Conjunto saudável. Continue monitorando."
	}
}

// resolveAd aplica a tabela de resolução preliminar × saturação
func resolveAd(ad *domain.AdAnalysis, setSaturated bool) {
	switch ad.PreliminaryStatus {
	case domain.HealthStatusFatigued:
		if setSaturated {
			ad.Status = domain.HealthStatusSaturated
			ad.Diagnosis = domain.DiagnosisAudienceSaturation
			ad.Confidence = domain.ConfidenceHigh
		} else {
			ad.Status = domain.HealthStatusFatigued
			ad.Diagnosis = domain.DiagnosisCreativeFatigue
		}

	case domain.HealthStatusWarning:
		ad.Status = domain.HealthStatusWarning
		if setSaturated {
			ad.Diagnosis = domain.DiagnosisPossibleSaturation
		} else {
			ad.Diagnosis = domain.DiagnosisPossibleFatigue
		}

	default:
		ad.Status = domain.HealthStatusHealthy
		ad.Diagnosis = domain.DiagnosisHealthy
	}
}
