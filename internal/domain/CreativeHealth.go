package domain

// CTRDefinition é ecoado em todo relatório para que os consumidores saibam
// qual definição de CTR foi usada (cliques no link, nunca cliques totais)
const CTRDefinition = "link_ctr = link_clicks / impressions"

// HealthStatus é o estado de saúde de um anúncio ou conjunto de anúncios
type HealthStatus string

const (
	HealthStatusHealthy   HealthStatus = "healthy"
	HealthStatusWarning   HealthStatus = "warning"
	HealthStatusFatigued  HealthStatus = "fatigued"
	HealthStatusSaturated HealthStatus = "saturated"
)

var statusSeverity = map[HealthStatus]int{
	HealthStatusSaturated: 0,
	HealthStatusFatigued:  1,
	HealthStatusWarning:   2,
	HealthStatusHealthy:   3,
}

// Severity retorna a prioridade de ordenação do status (menor = mais grave)
func (s HealthStatus) Severity() int {
	severity, ok := statusSeverity[s]
	if !ok {
		return len(statusSeverity)
	}
	return severity
}

// Confidence é o nível de confiança de um diagnóstico
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
)

// Diagnosis distingue fadiga criativa de saturação de audiência
type Diagnosis string

const (
	DiagnosisHealthy            Diagnosis = "healthy"
	DiagnosisPossibleFatigue    Diagnosis = "possible_fatigue"
	DiagnosisPossibleSaturation Diagnosis = "possible_saturation"
	DiagnosisCreativeFatigue    Diagnosis = "creative_fatigue"
	DiagnosisAudienceSaturation Diagnosis = "audience_saturation"
)

// TrendDirection classifica a inclinação de uma série
type TrendDirection string

const (
	TrendRising  TrendDirection = "rising"
	TrendFalling TrendDirection = "falling"
	TrendStable  TrendDirection = "stable"
)

// CorrelationResult é o resultado de uma correlação de Pearson com teste de significância
type CorrelationResult struct {
	R           float64 `json:"r"`
	PValue      float64 `json:"p_value"`
	Significant bool    `json:"significant"`
}

// AdCorrelations agrupa as correlações frequência×CTR e frequência×CVR de um anúncio
type AdCorrelations struct {
	FrequencyCTR CorrelationResult `json:"frequency_ctr"`
	FrequencyCVR CorrelationResult `json:"frequency_cvr"`
}

// Trend descreve a tendência de uma métrica ao longo da janela analisada
type Trend struct {
	Slope     float64        `json:"slope"`
	Direction TrendDirection `json:"direction"`
	Change    float64        `json:"change"`
	Current   *float64       `json:"current,omitempty"`
}

type AdTrends struct {
	CTR       Trend `json:"ctr"`
	CVR       Trend `json:"cvr"`
	Frequency Trend `json:"frequency"`
	NewReach  Trend `json:"new_reach"`
}

// AdCurrentMetrics são as médias dos últimos dias da janela, para exibição
type AdCurrentMetrics struct {
	Frequency    float64 `json:"frequency"`
	LinkCTR      float64 `json:"link_ctr"`
	NewReachPct  float64 `json:"new_reach_pct"`
	DaysAnalyzed int     `json:"days_analyzed"`
}

// AdAnalysis é a análise completa de um anúncio com pelo menos 7 dias de dados.
// Os campos não serializados são retidos para o detector de saturação do conjunto.
type AdAnalysis struct {
	AdID        string           `json:"ad_id"`
	AdName      string           `json:"ad_name"`
	Status      HealthStatus     `json:"status"`
	Diagnosis   Diagnosis        `json:"diagnosis"`
	Confidence  Confidence       `json:"confidence"`
	Metrics     AdCurrentMetrics `json:"metrics"`
	Correlation AdCorrelations   `json:"correlation"`
	Trends      AdTrends         `json:"trends"`
	Daily       []*AdDailyEntry  `json:"daily"`

	PreliminaryStatus HealthStatus `json:"-"`
	FatigueScore      float64      `json:"-"`
	CTRSeries         []float64    `json:"-"`
	CTRChangeRaw      float64      `json:"-"`
	NewReachPctRaw    float64      `json:"-"`
}

// SaturationVerdict é o veredito de saturação de audiência de um conjunto de anúncios
type SaturationVerdict struct {
	Score            float64 `json:"score"`
	IsSaturated      bool    `json:"is_saturated"`
	DeclineRatio     float64 `json:"decline_ratio"`
	CrossCorrelation float64 `json:"cross_correlation"`
	AvgNewReachPct   float64 `json:"avg_new_reach_pct"`
	DecliningCount   int     `json:"declining_count"`
	TotalCount       int     `json:"total_count"`
}

// AdSetReport é o relatório final de um conjunto de anúncios
type AdSetReport struct {
	CampaignID     string             `json:"campaign_id"`
	CampaignName   string             `json:"campaign_name"`
	AdsetID        string             `json:"adset_id"`
	AdsetName      string             `json:"adset_name"`
	Status         HealthStatus       `json:"status"`
	StatusLabel    string             `json:"status_label"`
	Diagnosis      Diagnosis          `json:"diagnosis"`
	Recommendation string             `json:"recommendation"`
	Confidence     Confidence         `json:"confidence"`
	Saturation     *SaturationVerdict `json:"saturation"`
	Ads            []*AdAnalysis      `json:"ads"`

	CampaignStatus CampaignStatus `json:"-"`
}

// StatusSummary conta conjuntos de anúncios por status final
type StatusSummary struct {
	Total     int `json:"total"`
	Healthy   int `json:"healthy"`
	Warning   int `json:"warning"`
	Fatigued  int `json:"fatigued"`
	Saturated int `json:"saturated"`
}

// Add incrementa o contador do status informado
func (s *StatusSummary) Add(status HealthStatus) {
	s.Total++

	switch status {
	case HealthStatusHealthy:
		s.Healthy++
	case HealthStatusWarning:
		s.Warning++
	case HealthStatusFatigued:
		s.Fatigued++
	case HealthStatusSaturated:
		s.Saturated++
	}
}

// CampaignReport agrupa os conjuntos de anúncios de uma campanha
type CampaignReport struct {
	CampaignID      string         `json:"campaign_id"`
	CampaignName    string         `json:"campaign_name"`
	EffectiveStatus CampaignStatus `json:"effective_status"`
	IsActive        bool           `json:"is_active"`
	Summary         StatusSummary  `json:"summary"`
	Adsets          []*AdSetReport `json:"adsets"`
}

type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// CreativeHealthReport é o relatório hierárquico campanha → conjunto → anúncio
type CreativeHealthReport struct {
	Summary         StatusSummary     `json:"summary"`
	IncludeInactive bool              `json:"include_inactive"`
	CTRDefinition   string            `json:"ctr_definition"`
	DateRange       DateRange         `json:"date_range"`
	Campaigns       []*CampaignReport `json:"campaigns"`
}
