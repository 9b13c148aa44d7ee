package analyzing

import (
	"time"

	"github.com/vfg2006/creative-health-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces_mock.go -package=mocks

// MetricsSource é o único ponto de acoplamento do analisador com a loja de
// métricas: uma consulta de linhas diárias por anúncio para uma conta.
// Quando includeInactive é false, apenas linhas de campanhas com status
// active ou unknown são retornadas
type MetricsSource interface {
	QueryDailyAdMetrics(accountID string, startDate, endDate time.Time, includeInactive bool) ([]*domain.AdDailyRow, error)
}

// Analyzer analisa a saúde criativa de uma conta de anúncios
type Analyzer interface {
	// AnalyzeAccount classifica cada anúncio e conjunto de anúncios da conta
	// em healthy/warning/fatigued/saturated dentro da janela informada
	AnalyzeAccount(accountID string, filters *domain.AnalysisFilters, options domain.AnalysisOptions) (*domain.CreativeHealthReport, error)
}
