package analyzing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/creative-health-api/internal/domain"
)

// buildAdSeries monta a série diária de um anúncio a partir das séries
// derivadas já calculadas
func buildAdSeries(adID string, frequency, linkCTR, cvr, newReach []float64) *adSeries {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	days := make([]dailyPoint, len(frequency))
	for i := range frequency {
		days[i] = dailyPoint{
			date:          base.AddDate(0, 0, i),
			impressions:   1000,
			reach:         500,
			linkClicks:    50,
			conversions:   5,
			spend:         10,
			frequency:     frequency[i],
			linkCTR:       linkCTR[i],
			cvr:           cvr[i],
			newReachRatio: newReach[i],
		}
	}

	return &adSeries{adID: adID, adName: "Anúncio " + adID, days: days}
}

func linearSeries(start, step float64, n int) []float64 {
	series := make([]float64, n)
	for i := range series {
		series[i] = start + step*float64(i)
	}
	return series
}

func constantSeries(value float64, n int) []float64 {
	series := make([]float64, n)
	for i := range series {
		series[i] = value
	}
	return series
}

func TestAnalyzeAd_Saudavel(t *testing.T) {
	n := 7
	ad := buildAdSeries("a1",
		constantSeries(1.5, n),
		constantSeries(2.0, n),
		constantSeries(10.0, n),
		constantSeries(0.8, n),
	)

	analysis := analyzeAd(ad, DefaultPolicy())

	assert.Equal(t, domain.HealthStatusHealthy, analysis.Status)
	assert.Equal(t, domain.ConfidenceHigh, analysis.Confidence)
	assert.Zero(t, analysis.FatigueScore)

	// Séries constantes não sustentam correlação
	assert.False(t, analysis.Correlation.FrequencyCTR.Significant)
	assert.Equal(t, 0.0, analysis.Correlation.FrequencyCTR.R)
	assert.Equal(t, 1.0, analysis.Correlation.FrequencyCTR.PValue)

	assert.Equal(t, domain.TrendStable, analysis.Trends.CTR.Direction)
	assert.Equal(t, domain.TrendStable, analysis.Trends.Frequency.Direction)

	assert.Equal(t, 1.5, analysis.Metrics.Frequency)
	assert.Equal(t, 2.0, analysis.Metrics.LinkCTR)
	assert.Equal(t, 80.0, analysis.Metrics.NewReachPct)
	assert.Equal(t, n, analysis.Metrics.DaysAnalyzed)

	require.Len(t, analysis.Daily, n)
	assert.Equal(t, "2026-08-01", analysis.Daily[0].Date)
}

func TestAnalyzeAd_Fatigado(t *testing.T) {
	n := 14
	ad := buildAdSeries("a1",
		linearSeries(1.0, 0.1, n),  // frequência subindo 1.0 → 2.3
		linearSeries(5.0, -0.3, n), // CTR caindo 5.0 → 1.1
		constantSeries(0, n),
		constantSeries(0.5, n),
	)

	analysis := analyzeAd(ad, DefaultPolicy())

	assert.Equal(t, domain.HealthStatusFatigued, analysis.Status)
	assert.Equal(t, domain.ConfidenceHigh, analysis.Confidence)
	assert.InDelta(t, 1.0, analysis.FatigueScore, 1e-6)

	assert.InDelta(t, -1.0, analysis.Correlation.FrequencyCTR.R, 1e-3)
	assert.True(t, analysis.Correlation.FrequencyCTR.Significant)

	assert.Equal(t, domain.TrendFalling, analysis.Trends.CTR.Direction)
	assert.Less(t, analysis.Trends.CTR.Change, -10.0)
	assert.Equal(t, domain.TrendRising, analysis.Trends.Frequency.Direction)
	assert.Greater(t, analysis.Trends.Frequency.Change, 10.0)

	// Janela atual de 3 dias
	assert.Equal(t, 2.2, analysis.Metrics.Frequency)
	assert.Equal(t, 1.4, analysis.Metrics.LinkCTR)
	assert.Equal(t, 50.0, analysis.Metrics.NewReachPct)
}

func TestAnalyzeAd_Alerta(t *testing.T) {
	// Correlação perfeita frequência × CTR, mas quedas entre metades abaixo
	// dos limiares de ±10%: apenas o termo de correlação pontua (0.4)
	n := 14
	ad := buildAdSeries("a1",
		linearSeries(2.0, 0.02, n),
		linearSeries(3.0, -0.015, n),
		constantSeries(0, n),
		constantSeries(0.6, n),
	)

	analysis := analyzeAd(ad, DefaultPolicy())

	assert.Equal(t, domain.HealthStatusWarning, analysis.Status)
	assert.Equal(t, domain.ConfidenceMedium, analysis.Confidence)
	assert.InDelta(t, 0.4, analysis.FatigueScore, 1e-6)

	assert.True(t, analysis.Correlation.FrequencyCTR.Significant)
	assert.Greater(t, analysis.Trends.CTR.Change, -10.0)
	assert.Less(t, analysis.Trends.Frequency.Change, 10.0)
}

func TestAnalyzeAd_DecliveSemCorrelacao(t *testing.T) {
	// CTR em queda com frequência constante: sem correlação válida e sem
	// alta de frequência, o declínio sozinho não passa de healthy
	n := 14
	ad := buildAdSeries("a1",
		constantSeries(1.5, n),
		linearSeries(5.0, -0.3, n),
		constantSeries(0, n),
		constantSeries(0.7, n),
	)

	analysis := analyzeAd(ad, DefaultPolicy())

	assert.Equal(t, domain.HealthStatusHealthy, analysis.Status)
	assert.False(t, analysis.Correlation.FrequencyCTR.Significant)
	assert.InDelta(t, 0.3, analysis.FatigueScore, 1e-6)
}

func TestAnalyzeAd_RetencaoParaSaturacao(t *testing.T) {
	n := 14
	ctr := linearSeries(5.0, -0.3, n)
	ad := buildAdSeries("a1",
		linearSeries(1.0, 0.1, n),
		ctr,
		constantSeries(0, n),
		constantSeries(0.5, n),
	)

	analysis := analyzeAd(ad, DefaultPolicy())

	// Os campos internos alimentam o detector de saturação do conjunto
	assert.Equal(t, analysis.Status, analysis.PreliminaryStatus)
	assert.InDeltaSlice(t, ctr, analysis.CTRSeries, 1e-9)
	assert.Less(t, analysis.CTRChangeRaw, -10.0)
	assert.InDelta(t, 50.0, analysis.NewReachPctRaw, 1e-9)
}

func TestHalvesChange(t *testing.T) {
	// Primeira metade com média 2, segunda com média 3
	series := []float64{2, 2, 2, 3, 3, 3}
	assert.InDelta(t, 50.0, halvesChange(series, 3), 1e-9)
}

func TestRenderTrend(t *testing.T) {
	tests := []struct {
		name    string
		slope   float64
		epsilon float64
		want    domain.TrendDirection
	}{
		{name: "Acima do epsilon é rising", slope: 0.02, epsilon: 0.01, want: domain.TrendRising},
		{name: "Abaixo do epsilon negativo é falling", slope: -0.02, epsilon: 0.01, want: domain.TrendFalling},
		{name: "Dentro do epsilon é stable", slope: 0.005, epsilon: 0.01, want: domain.TrendStable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trend := renderTrend(tt.slope, 0, tt.epsilon, nil)
			assert.Equal(t, tt.want, trend.Direction)
			assert.Nil(t, trend.Current)
		})
	}
}
