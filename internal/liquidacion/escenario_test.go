package liquidacion_test

import (
	"strings"
	"testing"

	"github.com/SegurosCumbre/api-corredora/internal/conciliacion"
	"github.com/SegurosCumbre/api-corredora/internal/liquidacion"
	"github.com/SegurosCumbre/api-corredora/internal/poliza"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Recorrido completo: archivo de pagos → conciliación → liquidación.
// Prima 1.000.000 al 10%; abonos de 400.000 (día 1) y 600.000 (día 5);
// liquidación de la ventana [día 1, día 10] con una deducción de 10.000.
func TestEscenarioConciliacionALiquidacion(t *testing.T) {
	db := nuevaBD(t)

	p := &poliza.Poliza{
		NumeroPoliza:   "POL-1000",
		PrimaTotal:     decimal.NewFromInt(1_000_000),
		MontoPagado:    decimal.Zero,
		SaldoPendiente: decimal.NewFromInt(1_000_000),
		EstadoPago:     poliza.EstadoPendiente,
		TasaComision:   decimal.NewFromFloat(0.10),
		AgenteID:       1,
	}
	require.NoError(t, poliza.NewRepository(db).Crear(p))

	archivo := "numeroPoliza,monto,fechaPago,referenciaTransaccion\n" +
		"POL-1000,400000,2024-03-01,BCO-001\n" +
		"POL-1000,600000,2024-03-05,BCO-002\n"
	filas, err := conciliacion.ParsearArchivo(strings.NewReader(archivo))
	require.NoError(t, err)

	carga := conciliacion.NewConciliador(db).Procesar(filas)
	require.Equal(t, 2, carga.Aplicadas)

	actual, err := poliza.NewRepository(db).BuscarPorNumero("POL-1000")
	require.NoError(t, err)
	assert.True(t, actual.MontoPagado.Equal(decimal.NewFromInt(1_000_000)))
	assert.True(t, actual.SaldoPendiente.IsZero())
	assert.Equal(t, poliza.EstadoPagado, actual.EstadoPago)

	servicio := liquidacion.NewServicio(db, &gatewayFalso{})
	l, err := servicio.Crear(liquidacion.SolicitudCrear{
		AgenteID:    1,
		FechaInicio: dia(1),
		FechaFin:    dia(10),
		Deducciones: []liquidacion.Deduccion{{Descripcion: "gastos administrativos", Monto: decimal.NewFromInt(10_000)}},
	})
	require.NoError(t, err)

	assert.True(t, l.TotalComisiones.Equal(decimal.NewFromInt(100_000)))
	assert.True(t, l.TotalDeducciones.Equal(decimal.NewFromInt(10_000)))
	assert.True(t, l.PagoNeto.Equal(decimal.NewFromInt(90_000)))
}
