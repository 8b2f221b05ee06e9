package comision_test

import (
	"testing"

	"github.com/SegurosCumbre/api-corredora/internal/comision"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCalcular(t *testing.T) {
	casos := []struct {
		nombre   string
		monto    string
		tasa     string
		esperado string
	}{
		{"diez por ciento", "400000", "0.10", "40000"},
		{"tasa cero", "400000", "0", "0"},
		{"redondeo a centavos", "1000.555", "0.1", "100.06"},
		{"tasa fraccionaria", "333333", "0.0375", "12499.99"},
	}

	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			monto := decimal.RequireFromString(c.monto)
			tasa := decimal.RequireFromString(c.tasa)
			esperado := decimal.RequireFromString(c.esperado)

			resultado := comision.Calcular(monto, tasa)
			assert.True(t, resultado.Equal(esperado), "esperaba %s, obtuve %s", esperado, resultado)
		})
	}
}
