package handler

import (
	"errors"
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/creative-health-api/internal/domain"
	"github.com/vfg2006/creative-health-api/internal/usecases/analyzing"
	"github.com/vfg2006/creative-health-api/pkg/apiErrors"
	"github.com/vfg2006/creative-health-api/pkg/log"
	"github.com/vfg2006/creative-health-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// GetCreativeHealth analisa a saúde criativa de uma conta de anúncios dentro
// da janela pedida via query string (start_date, end_date, include_inactive)
func GetCreativeHealth(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("account_id", id).Info("creative-health: analyzing account")

		filters := &domain.AnalysisFilters{}

		if raw := r.URL.Query().Get("start_date"); raw != "" {
			startDate, err := utils.ParseDate(raw)
			if err != nil {
				logger.WithFields(log.Fields{
					"account_id": id,
					"start_date": raw,
					"error":      err.Error(),
				}).Warn("creative-health: invalid start_date parameter")

				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "start_date inválido, use o formato YYYY-MM-DD", nil)
				return
			}
			filters.StartDate = startDate
		}

		if raw := r.URL.Query().Get("end_date"); raw != "" {
			endDate, err := utils.ParseDate(raw)
			if err != nil {
				logger.WithFields(log.Fields{
					"account_id": id,
					"end_date":   raw,
					"error":      err.Error(),
				}).Warn("creative-health: invalid end_date parameter")

				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "end_date inválido, use o formato YYYY-MM-DD", nil)
				return
			}
			filters.EndDate = endDate
		}

		options := domain.AnalysisOptions{}
		if raw := r.URL.Query().Get("include_inactive"); raw != "" {
			includeInactive, err := strconv.ParseBool(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "include_inactive inválido, use true ou false", nil)
				return
			}
			options.IncludeInactive = includeInactive
		}

		report, err := service.AnalyzeAccount(id, filters, options)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"error":      err.Error(),
			}).Error("creative-health: failed to analyze account")

			if errors.Is(err, analyzing.ErrMissingAccount) || errors.Is(err, analyzing.ErrInvalidWindow) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao analisar a conta", nil)
			return
		}

		logger.WithFields(log.Fields{
			"account_id": id,
			"adsets":     report.Summary.Total,
			"saturated":  report.Summary.Saturated,
		}).Info("creative-health: analysis completed")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"error":      err.Error(),
			}).Error("creative-health: failed to encode response")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
