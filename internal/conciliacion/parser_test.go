package conciliacion_test

import (
	"strings"
	"testing"
	"time"

	"github.com/SegurosCumbre/api-corredora/internal/conciliacion"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const encabezado = "numeroPoliza,monto,fechaPago,referenciaTransaccion,numeroAnexo,agenteId\n"

func TestParsearArchivo_FilaCompleta(t *testing.T) {
	contenido := encabezado +
		"POL-001,400000,2024-03-01,TRX-9,AX-2,7\n"

	filas, err := conciliacion.ParsearArchivo(strings.NewReader(contenido))
	require.NoError(t, err)
	require.Len(t, filas, 1)

	fila := filas[0]
	require.NotNil(t, fila.Datos, "la fila debería ser válida: %s", fila.Error)
	assert.Equal(t, "POL-001", fila.Datos.NumeroPoliza)
	assert.True(t, fila.Datos.Monto.Equal(decimal.NewFromInt(400_000)))
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), fila.Datos.FechaPago)
	assert.Equal(t, "TRX-9", fila.Datos.ReferenciaTransaccion)
	assert.Equal(t, "AX-2", fila.Datos.NumeroAnexo)
	assert.Equal(t, uint(7), fila.Datos.AgenteID)
}

func TestParsearArchivo_CamposOpcionalesVacios(t *testing.T) {
	contenido := encabezado + "POL-001,100,2024-03-01,,,\n"

	filas, err := conciliacion.ParsearArchivo(strings.NewReader(contenido))
	require.NoError(t, err)
	require.Len(t, filas, 1)
	require.NotNil(t, filas[0].Datos)
	assert.Empty(t, filas[0].Datos.ReferenciaTransaccion)
	assert.Zero(t, filas[0].Datos.AgenteID)
}

func TestParsearArchivo_FechaConBarras(t *testing.T) {
	contenido := "numeroPoliza,monto,fechaPago\nPOL-001,100,05/03/2024\n"

	filas, err := conciliacion.ParsearArchivo(strings.NewReader(contenido))
	require.NoError(t, err)
	require.NotNil(t, filas[0].Datos)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), filas[0].Datos.FechaPago)
}

func TestParsearArchivo_FilasMalFormadasSeConservan(t *testing.T) {
	// Ninguna fila individual hace fallar el archivo: el total de filas
	// del reporte debe coincidir con el archivo.
	contenido := encabezado +
		"POL-001,400000,2024-03-01,TRX-1,,\n" +
		",100,2024-03-01,,,\n" + // sin número de póliza
		"POL-002,abc,2024-03-01,,,\n" + // monto inválido
		"POL-003,100,fecha-rara,,,\n" + // fecha inválida
		"POL-004,100,2024-03-02,TRX-2,,\n"

	filas, err := conciliacion.ParsearArchivo(strings.NewReader(contenido))
	require.NoError(t, err)
	require.Len(t, filas, 5)

	assert.NotNil(t, filas[0].Datos)
	assert.Nil(t, filas[1].Datos)
	assert.Contains(t, filas[1].Error, "número de póliza")
	assert.Nil(t, filas[2].Datos)
	assert.Contains(t, filas[2].Error, "monto inválido")
	assert.Equal(t, "POL-002", filas[2].NumeroPoliza, "el número se conserva para el reporte")
	assert.Nil(t, filas[3].Datos)
	assert.Contains(t, filas[3].Error, "fecha de pago inválida")
	assert.NotNil(t, filas[4].Datos)
}

func TestParsearArchivo_ArchivoVacio(t *testing.T) {
	_, err := conciliacion.ParsearArchivo(strings.NewReader(""))
	assert.ErrorIs(t, err, conciliacion.ErrArchivoVacio)
}

func TestParsearArchivo_EncabezadoSinColumnasRequeridas(t *testing.T) {
	_, err := conciliacion.ParsearArchivo(strings.NewReader("a,b,c\n1,2,3\n"))
	assert.ErrorIs(t, err, conciliacion.ErrEncabezadoInvalido)
}

func TestParsearArchivo_EncabezadoIgnoraMayusculas(t *testing.T) {
	contenido := "NUMEROPOLIZA,Monto,FechaPago\nPOL-001,100,2024-03-01\n"

	filas, err := conciliacion.ParsearArchivo(strings.NewReader(contenido))
	require.NoError(t, err)
	require.Len(t, filas, 1)
	assert.NotNil(t, filas[0].Datos)
}

func TestParsearArchivo_SoloEncabezado(t *testing.T) {
	filas, err := conciliacion.ParsearArchivo(strings.NewReader(encabezado))
	require.NoError(t, err)
	assert.Empty(t, filas)
}
