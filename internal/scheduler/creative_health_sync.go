package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creative-health-api/infrastructure/repository"
	"github.com/vfg2006/creative-health-api/internal/config"
	"github.com/vfg2006/creative-health-api/internal/domain"
	"github.com/vfg2006/creative-health-api/internal/usecases/analyzing"
	"github.com/vfg2006/creative-health-api/pkg/utils"
)

// CreativeHealthSyncConfig representa a configuração da varredura de saúde criativa
type CreativeHealthSyncConfig struct {
	CronSchedule string
	LookbackDays int
	SyncEnabled  bool
}

// CreativeHealthSyncService agenda a varredura noturna que analisa a saúde
// criativa de todas as contas ativas e registra conjuntos saturados/fatigados
type CreativeHealthSyncService struct {
	scheduler           *gocron.Scheduler
	config              CreativeHealthSyncConfig
	accountRepo         repository.AccountRepository
	analyzerService     analyzing.Analyzer
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewCreativeHealthSyncService cria uma nova instância do serviço de varredura
func NewCreativeHealthSyncService(
	accountRepo repository.AccountRepository,
	analyzerService analyzing.Analyzer,
	appConfig *config.Config,
) *CreativeHealthSyncService {
	syncConfig := CreativeHealthSyncConfig{
		CronSchedule: appConfig.CreativeHealthSync.CronSchedule,
		LookbackDays: appConfig.CreativeHealthSync.LookbackDays,
		SyncEnabled:  appConfig.CreativeHealthSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"lookback_days": syncConfig.LookbackDays,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração da varredura de saúde criativa carregada")

	return &CreativeHealthSyncService{
		scheduler:       scheduler,
		config:          syncConfig,
		accountRepo:     accountRepo,
		analyzerService: analyzerService,
		syncRunning:     false,
	}
}

// Start inicia o agendador
func (s *CreativeHealthSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Varredura de saúde criativa desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador da varredura de saúde criativa")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.scanAllAccounts()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar varredura de saúde criativa: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador da varredura de saúde criativa")
		s.scheduler.Stop()
	}()

	return nil
}

// scanAllAccounts analisa todas as contas ativas e registra os conjuntos de
// anúncios que precisam de atenção
func (s *CreativeHealthSyncService) scanAllAccounts() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Varredura de saúde criativa já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	runID, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Error("Erro ao gerar identificador da varredura")
		return
	}

	logger := logrus.WithField("run_id", runID)
	logger.Info("Iniciando varredura de saúde criativa para todas as contas ativas")

	activeAccounts, err := s.getActiveAccounts()
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar lista de contas para a varredura de saúde criativa")
		return
	}

	if len(activeAccounts) == 0 {
		logger.Info("Nenhuma conta ativa encontrada para a varredura de saúde criativa")
		return
	}

	endDate := time.Now()
	startDate := endDate.AddDate(0, 0, -(s.config.LookbackDays - 1))
	filters := &domain.AnalysisFilters{
		StartDate: &startDate,
		EndDate:   &endDate,
	}

	analyzed := 0
	for _, account := range activeAccounts {
		if account.ExternalID == "" {
			continue
		}

		report, err := s.analyzerService.AnalyzeAccount(account.ExternalID, filters, domain.AnalysisOptions{})
		if err != nil {
			logger.WithError(err).WithField("account_id", account.ExternalID).
				Error("Erro ao analisar saúde criativa da conta")
			continue
		}

		s.logAttentionAdsets(logger, account, report)
		analyzed++
	}

	duration := time.Since(startTime)
	logger.WithFields(logrus.Fields{
		"duration": duration.String(),
		"accounts": analyzed,
		"days":     s.config.LookbackDays,
	}).Info("Varredura de saúde criativa concluída")

	s.lastSyncCompletedAt = time.Now()
}

// logAttentionAdsets registra os conjuntos de anúncios saturados ou fatigados
func (s *CreativeHealthSyncService) logAttentionAdsets(logger *logrus.Entry, account *domain.AdAccount, report *domain.CreativeHealthReport) {
	for _, campaign := range report.Campaigns {
		for _, adset := range campaign.Adsets {
			if adset.Status != domain.HealthStatusSaturated && adset.Status != domain.HealthStatusFatigued {
				continue
			}

			entry := logger.WithFields(logrus.Fields{
				"account_id":  account.ExternalID,
				"campaign_id": campaign.CampaignID,
				"adset_id":    adset.AdsetID,
				"adset_name":  adset.AdsetName,
				"status":      adset.Status,
				"diagnosis":   adset.Diagnosis,
				"confidence":  adset.Confidence,
			})
			if adset.Saturation != nil {
				entry = entry.WithField("saturation_score", adset.Saturation.Score)
			}

			entry.Warn("Conjunto de anúncios precisa de atenção")
		}
	}
}

// IsRunning indica se há uma varredura em andamento
func (s *CreativeHealthSyncService) IsRunning() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning
}

// getActiveAccounts busca e filtra contas ativas
func (s *CreativeHealthSyncService) getActiveAccounts() ([]*domain.AdAccount, error) {
	activeAccounts, err := s.accountRepo.ListAccounts([]domain.AdAccountStatus{domain.AdAccountStatusActive})
	if err != nil {
		return nil, err
	}

	if len(activeAccounts) == 0 {
		logrus.Info("Nenhuma conta encontrada para a varredura de saúde criativa")
		return []*domain.AdAccount{}, nil
	}

	logrus.WithFields(logrus.Fields{
		"active_accounts": len(activeAccounts),
	}).Info("Contas encontradas para a varredura de saúde criativa")

	return activeAccounts, nil
}
