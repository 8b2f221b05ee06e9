// internal/conciliacion/service.go
package conciliacion

import (
	"errors"
	"fmt"

	"github.com/SegurosCumbre/api-corredora/internal/comision"
	"github.com/SegurosCumbre/api-corredora/internal/pago"
	"github.com/SegurosCumbre/api-corredora/internal/poliza"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Conciliador aplica las filas de un archivo de pagos contra los libros
// de las pólizas. Cada fila corre en su propia transacción: ninguna
// fila puede abortar el lote y las filas previas o siguientes no se ven
// afectadas por el fracaso de una.
type Conciliador struct {
	DB      *gorm.DB
	Polizas *poliza.Repository
	Pagos   *pago.Repository
}

func NewConciliador(db *gorm.DB) *Conciliador {
	return &Conciliador{
		DB:      db,
		Polizas: poliza.NewRepository(db),
		Pagos:   pago.NewRepository(db),
	}
}

// Procesar recorre las filas en orden y devuelve un resultado por cada
// una. La operación en sí nunca falla: la visibilidad del éxito parcial
// es el contrato.
func (c *Conciliador) Procesar(filas []Fila) ResultadoCarga {
	resultado := ResultadoCarga{
		LoteID:     uuid.New(),
		TotalFilas: len(filas),
		Resultados: make([]ResultadoFila, 0, len(filas)),
	}

	for _, fila := range filas {
		r := c.procesarFila(fila)
		if r.Exito {
			resultado.Aplicadas++
		} else {
			resultado.Fallidas++
		}
		resultado.Resultados = append(resultado.Resultados, r)
	}
	return resultado
}

func (c *Conciliador) procesarFila(fila Fila) ResultadoFila {
	fallo := func(mensaje string) ResultadoFila {
		return ResultadoFila{Exito: false, NumeroPoliza: fila.NumeroPoliza, Mensaje: mensaje}
	}

	if fila.Datos == nil {
		return fallo(fila.Error)
	}
	datos := fila.Datos

	if datos.Monto.LessThanOrEqual(decimal.Zero) {
		return fallo("el monto debe ser mayor que cero")
	}

	p, err := c.Polizas.BuscarPorNumero(datos.NumeroPoliza)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fallo("póliza no encontrada")
		}
		return fallo(fmt.Sprintf("error al buscar la póliza: %v", err))
	}

	tx := c.DB.Begin()
	if tx.Error != nil {
		return fallo(fmt.Sprintf("no se pudo iniciar la transacción: %v", tx.Error))
	}

	pagosTx := c.Pagos.WithDB(tx)
	polizasTx := c.Polizas.WithDB(tx)

	if datos.ReferenciaTransaccion != "" {
		duplicada, err := pagosTx.ExisteReferencia(p.ID, datos.ReferenciaTransaccion)
		if err != nil {
			_ = tx.Rollback()
			return fallo(fmt.Sprintf("error al verificar la referencia: %v", err))
		}
		if duplicada {
			_ = tx.Rollback()
			return fallo(fmt.Sprintf("referencia de transacción duplicada: %q", datos.ReferenciaTransaccion))
		}
	}

	if err := p.AplicarPago(datos.Monto); err != nil {
		_ = tx.Rollback()
		return fallo(err.Error())
	}

	agenteID := datos.AgenteID
	if agenteID == 0 {
		agenteID = p.AgenteID
	}

	nuevo := &pago.Pago{
		PolizaID:              p.ID,
		Monto:                 datos.Monto,
		FechaPago:             datos.FechaPago,
		ReferenciaTransaccion: datos.ReferenciaTransaccion,
		ComisionGanada:        comision.Calcular(datos.Monto, p.TasaComision),
		AgenteID:              agenteID,
		NumeroAnexo:           datos.NumeroAnexo,
	}

	if err := polizasTx.ActualizarLibro(p); err != nil {
		_ = tx.Rollback()
		return fallo(fmt.Sprintf("error al actualizar la póliza: %v", err))
	}
	if err := pagosTx.Crear(nuevo); err != nil {
		_ = tx.Rollback()
		return fallo(fmt.Sprintf("error al registrar el pago: %v", err))
	}
	if err := tx.Commit().Error; err != nil {
		_ = tx.Rollback()
		return fallo(fmt.Sprintf("error al confirmar la transacción: %v", err))
	}

	return ResultadoFila{
		Exito:        true,
		NumeroPoliza: fila.NumeroPoliza,
		Mensaje:      fmt.Sprintf("pago aplicado; nuevo estado: %s", p.EstadoPago),
	}
}
