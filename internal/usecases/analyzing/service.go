package analyzing

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creative-health-api/internal/domain"
)

var (
	ErrMissingAccount = errors.New("é necessário informar a conta de anúncios")
	ErrInvalidWindow  = errors.New("a data de início não pode ser posterior à data de fim")
)

// Service implementa a interface Analyzer sobre uma MetricsSource injetada.
// Cada análise é uma função pura sobre a janela consultada: o serviço não
// guarda estado mutável e duas análises concorrentes não se observam
type Service struct {
	metrics MetricsSource
	policy  Policy
}

// NewService cria uma nova instância do analisador de saúde criativa
func NewService(metrics MetricsSource, policy Policy) Analyzer {
	return &Service{
		metrics: metrics,
		policy:  policy,
	}
}

// AnalyzeAccount executa a análise completa: resolve e grampeia a janela,
// consulta a loja de métricas, projeta as métricas derivadas e monta o
// relatório hierárquico
func (s *Service) AnalyzeAccount(accountID string, filters *domain.AnalysisFilters, options domain.AnalysisOptions) (*domain.CreativeHealthReport, error) {
	if accountID == "" {
		return nil, ErrMissingAccount
	}

	startDate, endDate, err := s.resolveWindow(filters)
	if err != nil {
		return nil, err
	}

	dateRange := domain.DateRange{
		Start: startDate.Format(time.DateOnly),
		End:   endDate.Format(time.DateOnly),
	}

	logrus.WithFields(logrus.Fields{
		"account_id":       accountID,
		"start_date":       dateRange.Start,
		"end_date":         dateRange.End,
		"include_inactive": options.IncludeInactive,
	}).Info("Analisando saúde criativa da conta")

	rows, err := s.metrics.QueryDailyAdMetrics(accountID, startDate, endDate, options.IncludeInactive)
	if err != nil {
		logrus.WithError(err).WithField("account_id", accountID).
			Error("Erro ao consultar métricas diárias de anúncios")
		return nil, err
	}

	groups, err := project(rows, s.policy.MinDays)
	if err != nil {
		return nil, err
	}

	report := buildReport(groups, dateRange, options.IncludeInactive, s.policy)

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"adsets":     report.Summary.Total,
		"saturated":  report.Summary.Saturated,
		"fatigued":   report.Summary.Fatigued,
		"warning":    report.Summary.Warning,
	}).Info("Análise de saúde criativa concluída")

	return report, nil
}

// resolveWindow aplica os padrões (fim = hoje, 30 dias) e grampeia a duração
// da janela em [MinWindowDays, MaxWindowDays] mantendo a data final fixa
func (s *Service) resolveWindow(filters *domain.AnalysisFilters) (time.Time, time.Time, error) {
	endDate := truncateDay(time.Now())
	if filters != nil && filters.EndDate != nil && !filters.EndDate.IsZero() {
		endDate = truncateDay(*filters.EndDate)
	}

	startDate := endDate.AddDate(0, 0, -(s.policy.DefaultWindowDays - 1))
	if filters != nil && filters.StartDate != nil && !filters.StartDate.IsZero() {
		startDate = truncateDay(*filters.StartDate)
	}

	if startDate.After(endDate) {
		return time.Time{}, time.Time{}, ErrInvalidWindow
	}

	days := int(endDate.Sub(startDate).Hours()/24) + 1
	if days < s.policy.MinWindowDays {
		days = s.policy.MinWindowDays
	} else if days > s.policy.MaxWindowDays {
		days = s.policy.MaxWindowDays
	}

	startDate = endDate.AddDate(0, 0, -(days - 1))

	return startDate, endDate, nil
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
