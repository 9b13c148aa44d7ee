package handler

import (
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creative-health-api/infrastructure/repository"
	"github.com/vfg2006/creative-health-api/internal/domain"
	"github.com/vfg2006/creative-health-api/pkg/apiErrors"
)

// AdAccountList lista as contas de anúncios cadastradas, com filtro opcional
// por status via query string (status=ACTIVE,INACTIVE)
func AdAccountList(repo repository.AccountRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filterStatus := r.URL.Query().Get("status")

		availableStatus := make([]domain.AdAccountStatus, 0)
		if filterStatus != "" {
			for _, status := range strings.Split(filterStatus, ",") {
				availableStatus = append(availableStatus, domain.AdAccountStatus(status))
			}
		}

		adAccounts, err := repo.ListAccounts(availableStatus)
		if err != nil {
			logrus.Error("Error listing accounts:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar contas no banco de dados", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(adAccounts); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
