package analyzing

import (
	"github.com/vfg2006/creative-health-api/internal/domain"
	"github.com/vfg2006/creative-health-api/pkg/utils"
)

// adFeatures reúne os sinais estatísticos extraídos da série diária de um anúncio
type adFeatures struct {
	freqCTRCorr  float64
	freqCTRValid bool
	pCTR         float64
	freqCVRCorr  float64
	freqCVRValid bool
	pCVR         float64

	ctrSlope      float64
	cvrSlope      float64
	freqSlope     float64
	newReachSlope float64

	ctrChange      float64
	cvrChange      float64
	freqChange     float64
	newReachChange float64

	currentFrequency float64
	currentCTR       float64
	currentNewReach  float64
}

// analyzeAd extrai as características estatísticas da série diária de um
// anúncio (n ≥ 7) e produz o diagnóstico preliminar com score de fadiga.
// O status final é decidido depois pelo resolvedor, à luz do veredito de
// saturação do conjunto
func analyzeAd(ad *adSeries, policy Policy) *domain.AdAnalysis {
	n := len(ad.days)

	frequency := make([]float64, n)
	linkCTR := make([]float64, n)
	cvr := make([]float64, n)
	newReach := make([]float64, n)

	daily := make([]*domain.AdDailyEntry, n)

	for i, day := range ad.days {
		frequency[i] = day.frequency
		linkCTR[i] = day.linkCTR
		cvr[i] = day.cvr
		newReach[i] = day.newReachRatio
		daily[i] = day.renderEntry()
	}

	features := extractFeatures(frequency, linkCTR, cvr, newReach, policy)

	hasFatigueCorrelation := features.freqCTRValid &&
		features.freqCTRCorr < policy.CorrelationThreshold &&
		features.pCTR < policy.SignificanceLevel

	ctrDeclining := features.ctrSlope < 0 && features.ctrChange < policy.DeclineChangeThreshold
	freqRising := features.freqSlope > 0 && features.freqChange > policy.RiseChangeThreshold

	score := 0.0
	if hasFatigueCorrelation {
		score += -features.freqCTRCorr * policy.CorrelationWeight
	}
	if ctrDeclining {
		score += policy.CTRDeclineWeight
	}
	if freqRising {
		score += policy.FrequencyRiseWeight
	}
	if score > 1 {
		score = 1
	}

	var status domain.HealthStatus
	var confidence domain.Confidence

	switch {
	case score >= policy.FatigueScoreThreshold && hasFatigueCorrelation:
		status = domain.HealthStatusFatigued
		confidence = domain.ConfidenceMedium
		if features.pCTR < policy.HighConfidencePValue {
			confidence = domain.ConfidenceHigh
		}
	case score >= policy.WarningScoreThreshold || (ctrDeclining && freqRising):
		status = domain.HealthStatusWarning
		confidence = domain.ConfidenceMedium
	default:
		status = domain.HealthStatusHealthy
		confidence = domain.ConfidenceHigh
	}

	newReachPct := features.currentNewReach * 100

	analysis := &domain.AdAnalysis{
		AdID:       ad.adID,
		AdName:     ad.adName,
		Status:     status,
		Confidence: confidence,
		Metrics: domain.AdCurrentMetrics{
			Frequency:    utils.RoundWithTwoDecimalPlace(features.currentFrequency),
			LinkCTR:      utils.RoundWithTwoDecimalPlace(features.currentCTR),
			NewReachPct:  roundTo(newReachPct, 0),
			DaysAnalyzed: n,
		},
		Correlation: domain.AdCorrelations{
			FrequencyCTR: renderCorrelation(features.freqCTRCorr, features.pCTR, features.freqCTRValid, policy),
			FrequencyCVR: renderCorrelation(features.freqCVRCorr, features.pCVR, features.freqCVRValid, policy),
		},
		Trends: domain.AdTrends{
			CTR:       renderTrend(features.ctrSlope, features.ctrChange, policy.RateSlopeEpsilon, currentValue(features.currentCTR)),
			CVR:       renderTrend(features.cvrSlope, features.cvrChange, policy.RateSlopeEpsilon, nil),
			Frequency: renderTrend(features.freqSlope, features.freqChange, policy.FrequencySlopeEpsilon, currentValue(features.currentFrequency)),
			NewReach:  renderTrend(features.newReachSlope, features.newReachChange, policy.RateSlopeEpsilon, currentValue(features.currentNewReach)),
		},
		Daily: daily,

		PreliminaryStatus: status,
		FatigueScore:      score,
		CTRSeries:         linkCTR,
		CTRChangeRaw:      features.ctrChange,
		NewReachPctRaw:    newReachPct,
	}

	return analysis
}

// extractFeatures calcula correlações, inclinações, variações entre metades
// e valores atuais das quatro séries paralelas
func extractFeatures(frequency, linkCTR, cvr, newReach []float64, policy Policy) adFeatures {
	n := len(frequency)

	features := adFeatures{
		pCTR: 1,
		pCVR: 1,
	}

	features.freqCTRCorr, features.freqCTRValid = pearson(frequency, linkCTR)
	if features.freqCTRValid {
		features.pCTR = correlationPValue(features.freqCTRCorr, n)
	}

	features.freqCVRCorr, features.freqCVRValid = pearson(frequency, cvr)
	if features.freqCVRValid {
		features.pCVR = correlationPValue(features.freqCVRCorr, n)
	}

	features.ctrSlope = linearSlope(linkCTR)
	features.cvrSlope = linearSlope(cvr)
	features.freqSlope = linearSlope(frequency)
	features.newReachSlope = linearSlope(newReach)

	mid := n / 2
	features.ctrChange = halvesChange(linkCTR, mid)
	features.cvrChange = halvesChange(cvr, mid)
	features.freqChange = halvesChange(frequency, mid)
	features.newReachChange = halvesChange(newReach, mid)

	currentWindow := policy.CurrentWindowDays
	if currentWindow > n {
		currentWindow = n
	}

	features.currentFrequency = mean(frequency[n-currentWindow:])
	features.currentCTR = mean(linkCTR[n-currentWindow:])
	features.currentNewReach = mean(newReach[n-currentWindow:])

	return features
}

// halvesChange compara a média da primeira metade da série com a da segunda
func halvesChange(series []float64, mid int) float64 {
	return percentChange(mean(series[:mid]), mean(series[mid:]))
}

func renderCorrelation(r, p float64, valid bool, policy Policy) domain.CorrelationResult {
	if !valid {
		return domain.CorrelationResult{R: 0, PValue: 1, Significant: false}
	}

	return domain.CorrelationResult{
		R:           roundTo(r, 3),
		PValue:      roundTo(p, 4),
		Significant: p < policy.SignificanceLevel,
	}
}

func renderTrend(slope, change, epsilon float64, current *float64) domain.Trend {
	direction := domain.TrendStable
	if slope > epsilon {
		direction = domain.TrendRising
	} else if slope < -epsilon {
		direction = domain.TrendFalling
	}

	return domain.Trend{
		Slope:     roundTo(slope, 4),
		Direction: direction,
		Change:    roundTo(change, 1),
		Current:   current,
	}
}

func currentValue(v float64) *float64 {
	rounded := utils.RoundWithTwoDecimalPlace(v)
	return &rounded
}
