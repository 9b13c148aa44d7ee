package analyzing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPearson(t *testing.T) {
	tests := []struct {
		name      string
		x         []float64
		y         []float64
		wantR     float64
		wantValid bool
	}{
		{
			name:      "Correlação positiva perfeita",
			x:         []float64{1, 2, 3, 4, 5},
			y:         []float64{2, 4, 6, 8, 10},
			wantR:     1,
			wantValid: true,
		},
		{
			name:      "Correlação negativa perfeita",
			x:         []float64{1, 2, 3, 4, 5},
			y:         []float64{10, 8, 6, 4, 2},
			wantR:     -1,
			wantValid: true,
		},
		{
			name:      "Menos de três pontos é inválido",
			x:         []float64{1, 2},
			y:         []float64{2, 4},
			wantValid: false,
		},
		{
			name:      "Tamanhos diferentes é inválido",
			x:         []float64{1, 2, 3, 4},
			y:         []float64{1, 2, 3},
			wantValid: false,
		},
		{
			name:      "Variância zero em uma das séries é inválido",
			x:         []float64{3, 3, 3, 3},
			y:         []float64{1, 2, 3, 4},
			wantValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, valid := pearson(tt.x, tt.y)

			assert.Equal(t, tt.wantValid, valid)
			if tt.wantValid {
				assert.InDelta(t, tt.wantR, r, 1e-9)
			} else {
				assert.Zero(t, r)
			}
		})
	}
}

func TestCorrelationPValue(t *testing.T) {
	t.Run("Correlação forte com amostra razoável é significativa", func(t *testing.T) {
		p := correlationPValue(0.9, 10)
		assert.Less(t, p, 0.05)
	})

	t.Run("Correlação fraca não é significativa", func(t *testing.T) {
		p := correlationPValue(0.1, 10)
		assert.Greater(t, p, 0.05)
	})

	t.Run("Menos de três pontos retorna 1", func(t *testing.T) {
		assert.Equal(t, 1.0, correlationPValue(0.9, 2))
	})

	t.Run("Correlação perfeita retorna 0", func(t *testing.T) {
		assert.Equal(t, 0.0, correlationPValue(-1, 20))
	})

	t.Run("Amostra grande usa a CDF normal", func(t *testing.T) {
		// df > 100: correlação moderada em amostra grande é muito significativa
		p := correlationPValue(0.5, 150)
		assert.Less(t, p, 0.01)
	})

	t.Run("P-value sempre em [0,1]", func(t *testing.T) {
		for _, r := range []float64{-0.99, -0.5, 0, 0.5, 0.99} {
			for _, n := range []int{3, 7, 30, 150} {
				p := correlationPValue(r, n)
				assert.GreaterOrEqual(t, p, 0.0)
				assert.LessOrEqual(t, p, 1.0)
			}
		}
	})
}

func TestNormalCDF(t *testing.T) {
	t.Run("Em zero vale meio", func(t *testing.T) {
		assert.InDelta(t, 0.5, normalCDF(0), 1e-4)
	})

	t.Run("É simétrica", func(t *testing.T) {
		assert.InDelta(t, 1.0, normalCDF(1.5)+normalCDF(-1.5), 1e-6)
	})

	t.Run("Valores conhecidos da tabela", func(t *testing.T) {
		assert.InDelta(t, 0.8413, normalCDF(1), 1e-3)
		assert.InDelta(t, 0.9772, normalCDF(2), 1e-3)
	})
}

func TestLinearSlope(t *testing.T) {
	tests := []struct {
		name string
		y    []float64
		want float64
	}{
		{
			name: "Série crescente linear",
			y:    []float64{1, 3, 5, 7},
			want: 2,
		},
		{
			name: "Série decrescente linear",
			y:    []float64{10, 8, 6, 4},
			want: -2,
		},
		{
			name: "Série constante tem inclinação zero",
			y:    []float64{5, 5, 5, 5},
			want: 0,
		},
		{
			name: "Menos de dois pontos retorna zero",
			y:    []float64{7},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, linearSlope(tt.y), 1e-9)
		})
	}
}

func TestPercentChange(t *testing.T) {
	tests := []struct {
		name     string
		oldValue float64
		newValue float64
		want     float64
	}{
		{name: "Aumento de 50%", oldValue: 2, newValue: 3, want: 50},
		{name: "Queda de 25%", oldValue: 4, newValue: 3, want: -25},
		{name: "Antigo zero e novo positivo retorna 100", oldValue: 0, newValue: 1, want: 100},
		{name: "Antigo zero e novo zero retorna 0", oldValue: 0, newValue: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, percentChange(tt.oldValue, tt.newValue), 1e-9)
		})
	}
}

func TestAveragePairwiseCorrelation(t *testing.T) {
	t.Run("Séries idênticas têm correlação média 1", func(t *testing.T) {
		series := [][]float64{
			{1, 2, 3, 4, 5},
			{1, 2, 3, 4, 5},
			{2, 4, 6, 8, 10},
		}

		assert.InDelta(t, 1.0, averagePairwiseCorrelation(series), 1e-9)
	})

	t.Run("Séries de tamanhos diferentes usam a janela final comum", func(t *testing.T) {
		series := [][]float64{
			{99, 0, 1, 2, 3, 4, 5},
			{2, 4, 6, 8, 10},
		}

		// A cauda de 5 dias das duas séries é linear e crescente
		assert.InDelta(t, 1.0, averagePairwiseCorrelation(series), 1e-9)
	})

	t.Run("Sem pares válidos retorna zero", func(t *testing.T) {
		assert.Zero(t, averagePairwiseCorrelation([][]float64{{1, 2, 3}}))
		assert.Zero(t, averagePairwiseCorrelation(nil))
		assert.Zero(t, averagePairwiseCorrelation([][]float64{
			{1, 1, 1, 1},
			{2, 2, 2, 2},
		}))
	})
}

func TestMean(t *testing.T) {
	assert.Zero(t, mean(nil))
	assert.InDelta(t, 2.5, mean([]float64{1, 2, 3, 4}), 1e-9)
}

func TestRoundTo(t *testing.T) {
	assert.Equal(t, 0.333, roundTo(1.0/3.0, 3))
	assert.Equal(t, -0.517, roundTo(-0.5168, 3))
	assert.Equal(t, 42.0, roundTo(42.0001, 0))
}
