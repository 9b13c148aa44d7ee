package analyzing

import (
	"math"
)

// Primitivas numéricas puras do analisador. Todas são defensivas contra
// denominadores zero e nunca retornam NaN ou infinito.

// pearson calcula o coeficiente de correlação de Pearson entre x e y.
// Retorna valid=false quando há menos de 3 pontos, tamanhos diferentes
// ou variância zero em uma das séries
func pearson(x, y []float64) (float64, bool) {
	n := len(x)
	if n != len(y) || n < 3 {
		return 0, false
	}

	var sumX, sumY float64
	for i := 0; i < n; i++ {
		sumX += x[i]
		sumY += y[i]
	}

	meanX := sumX / float64(n)
	meanY := sumY / float64(n)

	var numerator, varX, varY float64
	for i := 0; i < n; i++ {
		dx := x[i] - meanX
		dy := y[i] - meanY
		numerator += dx * dy
		varX += dx * dx
		varY += dy * dy
	}

	if varX == 0 || varY == 0 {
		return 0, false
	}

	r := numerator / math.Sqrt(varX*varY)

	// Erros de arredondamento podem empurrar |r| ligeiramente acima de 1
	if r > 1 {
		r = 1
	} else if r < -1 {
		r = -1
	}

	return r, true
}

// correlationPValue aproxima o p-value bicaudal de um coeficiente de
// correlação via estatística t com df = n-2. Para df > 100 usa a CDF da
// normal padrão; abaixo disso usa a aproximação (df/(df+t²))^(df/2).
// A aproximação é intencional: os chamadores dependem apenas da decisão
// de significância no limiar 0.05, não do valor exato
func correlationPValue(r float64, n int) float64 {
	df := n - 2
	if df < 1 {
		return 1
	}

	r2 := r * r
	if r2 >= 1 {
		return 0
	}

	t := math.Abs(r) * math.Sqrt(float64(df)/(1-r2))

	var p float64
	if df > 100 {
		p = 2 * (1 - normalCDF(t))
	} else {
		p = math.Pow(float64(df)/(float64(df)+t*t), float64(df)/2)
	}

	if p < 0 {
		p = 0
	} else if p > 1 {
		p = 1
	}

	return p
}

// normalCDF é a CDF da normal padrão via aproximação racional de
// Abramowitz & Stegun 7.1.26
func normalCDF(x float64) float64 {
	if x < 0 {
		return 1 - normalCDF(-x)
	}

	const (
		p  = 0.2316419
		b1 = 0.319381530
		b2 = -0.356563782
		b3 = 1.781477937
		b4 = -1.821255978
		b5 = 1.330274429
	)

	t := 1 / (1 + p*x)
	poly := t * (b1 + t*(b2+t*(b3+t*(b4+t*b5))))
	pdf := math.Exp(-x*x/2) / math.Sqrt(2*math.Pi)

	return 1 - pdf*poly
}

// linearSlope calcula a inclinação da regressão linear de y contra o
// índice 0..n-1 por mínimos quadrados. Retorna 0 para n < 2
func linearSlope(y []float64) float64 {
	n := len(y)
	if n < 2 {
		return 0
	}

	var sumX, sumY, sumXY, sumXX float64
	for i, v := range y {
		x := float64(i)
		sumX += x
		sumY += v
		sumXY += x * v
		sumXX += x * x
	}

	denominator := float64(n)*sumXX - sumX*sumX
	if denominator == 0 {
		return 0
	}

	return (float64(n)*sumXY - sumX*sumY) / denominator
}

// percentChange calcula a variação percentual entre dois valores.
// Quando o valor antigo é zero, retorna 100 se o novo for positivo, senão 0
func percentChange(oldValue, newValue float64) float64 {
	if oldValue == 0 {
		if newValue > 0 {
			return 100
		}
		return 0
	}

	return ((newValue - oldValue) / oldValue) * 100
}

// averagePairwiseCorrelation calcula a média do r de Pearson sobre todos os
// pares não ordenados de séries. Pares com tamanhos diferentes são truncados
// para a janela final comum (dias mais recentes). Retorna 0 sem nenhum par válido
func averagePairwiseCorrelation(series [][]float64) float64 {
	var sum float64
	var pairs int

	for i := 0; i < len(series); i++ {
		for j := i + 1; j < len(series); j++ {
			a, b := series[i], series[j]

			if len(a) != len(b) {
				k := len(a)
				if len(b) < k {
					k = len(b)
				}
				a = a[len(a)-k:]
				b = b[len(b)-k:]
			}

			r, valid := pearson(a, b)
			if !valid {
				continue
			}

			sum += r
			pairs++
		}
	}

	if pairs == 0 {
		return 0
	}

	return sum / float64(pairs)
}

// mean retorna a média aritmética de values, 0 para slice vazio
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}

// roundTo arredonda v para o número de casas decimais informado
func roundTo(v float64, decimals int) float64 {
	factor := math.Pow(10, float64(decimals))
	return math.Round(v*factor) / factor
}
