package analyzing

// SaturationWeights são os pesos dos três sinais do score de saturação.
// A soma deve ser 1.0
type SaturationWeights struct {
	DeclineRatio     float64
	CrossCorrelation float64
	ReachExhaustion  float64
}

// Policy concentra todos os limiares de decisão do analisador. Esses valores
// são a superfície de política do produto: mudá-los muda quais anúncios
// recebem cada diagnóstico, então ficam em um único bloco nomeado em vez de
// espalhados pelo código
type Policy struct {
	// Janela de análise
	MinDays           int
	MinWindowDays     int
	MaxWindowDays     int
	DefaultWindowDays int

	// Sinais por anúncio
	CorrelationThreshold   float64 // r abaixo disso (negativo) indica fadiga
	SignificanceLevel      float64 // p-value máximo para correlação significativa
	HighConfidencePValue   float64 // p-value abaixo disso eleva a confiança para high
	DeclineChangeThreshold float64 // queda percentual de CTR entre metades
	RiseChangeThreshold    float64 // alta percentual de frequência entre metades

	// Score de fadiga
	CorrelationWeight   float64
	CTRDeclineWeight    float64
	FrequencyRiseWeight float64

	FatigueScoreThreshold float64
	WarningScoreThreshold float64

	// Saturação do conjunto
	SaturationScoreThreshold   float64
	SaturationDeclineThreshold float64
	SaturationWeights          SaturationWeights

	// Epsilons de direção de tendência
	FrequencySlopeEpsilon float64
	RateSlopeEpsilon      float64

	// Dias usados nas métricas "atuais"
	CurrentWindowDays int
}

// DefaultPolicy retorna a política padrão do produto. Os testes de
// conformidade assumem exatamente estes valores
func DefaultPolicy() Policy {
	return Policy{
		MinDays:           7,
		MinWindowDays:     7,
		MaxWindowDays:     90,
		DefaultWindowDays: 30,

		CorrelationThreshold:   -0.5,
		SignificanceLevel:      0.05,
		HighConfidencePValue:   0.01,
		DeclineChangeThreshold: -10,
		RiseChangeThreshold:    10,

		CorrelationWeight:   0.4,
		CTRDeclineWeight:    0.3,
		FrequencyRiseWeight: 0.3,

		FatigueScoreThreshold: 0.7,
		WarningScoreThreshold: 0.4,

		SaturationScoreThreshold:   0.6,
		SaturationDeclineThreshold: 0.6,
		SaturationWeights: SaturationWeights{
			DeclineRatio:     0.35,
			CrossCorrelation: 0.35,
			ReachExhaustion:  0.30,
		},

		FrequencySlopeEpsilon: 0.01,
		RateSlopeEpsilon:      0.001,

		CurrentWindowDays: 3,
	}
}
