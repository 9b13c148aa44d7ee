package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/creative-health-api/internal/domain"
	"github.com/vfg2006/creative-health-api/internal/usecases/analyzing"
	"github.com/vfg2006/creative-health-api/internal/usecases/analyzing/mocks"
	"go.uber.org/mock/gomock"
)

func creativeHealthRequest(accountID, query string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/v1/adAccount/"+accountID+"/creative-health"+query, nil)

	params := httprouter.Params{{Key: "id", Value: accountID}}
	return req.WithContext(context.WithValue(req.Context(), httprouter.ParamsKey, params))
}

func TestGetCreativeHealth(t *testing.T) {
	t.Run("Retorna o relatório da conta", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAnalyzer := mocks.NewMockAnalyzer(ctrl)
		mockAnalyzer.EXPECT().
			AnalyzeAccount("act_1", gomock.Any(), domain.AnalysisOptions{IncludeInactive: true}).
			Return(&domain.CreativeHealthReport{
				Summary:         domain.StatusSummary{Total: 2, Healthy: 1, Saturated: 1},
				IncludeInactive: true,
				CTRDefinition:   domain.CTRDefinition,
			}, nil)

		recorder := httptest.NewRecorder()
		GetCreativeHealth(mockAnalyzer).ServeHTTP(recorder, creativeHealthRequest("act_1", "?include_inactive=true"))

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

		var report domain.CreativeHealthReport
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &report))
		assert.Equal(t, 2, report.Summary.Total)
		assert.True(t, report.IncludeInactive)
	})

	t.Run("Datas da query são repassadas como filtros", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAnalyzer := mocks.NewMockAnalyzer(ctrl)
		mockAnalyzer.EXPECT().
			AnalyzeAccount("act_1", gomock.Any(), domain.AnalysisOptions{}).
			DoAndReturn(func(_ string, filters *domain.AnalysisFilters, _ domain.AnalysisOptions) (*domain.CreativeHealthReport, error) {
				require.NotNil(t, filters.StartDate)
				require.NotNil(t, filters.EndDate)
				assert.Equal(t, "2026-08-01", filters.StartDate.Format("2006-01-02"))
				assert.Equal(t, "2026-08-14", filters.EndDate.Format("2006-01-02"))
				return &domain.CreativeHealthReport{}, nil
			})

		recorder := httptest.NewRecorder()
		GetCreativeHealth(mockAnalyzer).ServeHTTP(recorder, creativeHealthRequest("act_1", "?start_date=2026-08-01&end_date=2026-08-14"))

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("Data inválida retorna 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAnalyzer := mocks.NewMockAnalyzer(ctrl)

		recorder := httptest.NewRecorder()
		GetCreativeHealth(mockAnalyzer).ServeHTTP(recorder, creativeHealthRequest("act_1", "?start_date=01-08-2026"))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "start_date")
	})

	t.Run("include_inactive inválido retorna 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAnalyzer := mocks.NewMockAnalyzer(ctrl)

		recorder := httptest.NewRecorder()
		GetCreativeHealth(mockAnalyzer).ServeHTTP(recorder, creativeHealthRequest("act_1", "?include_inactive=talvez"))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("Janela inválida retorna 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAnalyzer := mocks.NewMockAnalyzer(ctrl)
		mockAnalyzer.EXPECT().
			AnalyzeAccount("act_1", gomock.Any(), gomock.Any()).
			Return(nil, analyzing.ErrInvalidWindow)

		recorder := httptest.NewRecorder()
		GetCreativeHealth(mockAnalyzer).ServeHTTP(recorder, creativeHealthRequest("act_1", ""))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("Erro interno do analisador retorna 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAnalyzer := mocks.NewMockAnalyzer(ctrl)
		mockAnalyzer.EXPECT().
			AnalyzeAccount("act_1", gomock.Any(), gomock.Any()).
			Return(nil, assert.AnError)

		recorder := httptest.NewRecorder()
		GetCreativeHealth(mockAnalyzer).ServeHTTP(recorder, creativeHealthRequest("act_1", ""))

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})
}
