// internal/liquidacion/service.go
package liquidacion

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/SegurosCumbre/api-corredora/internal/agente"
	"github.com/SegurosCumbre/api-corredora/internal/documento"
	"github.com/SegurosCumbre/api-corredora/internal/pago"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrVentanaInvalida = errors.New("la fecha de inicio no puede ser posterior a la fecha de fin")
	ErrSinCambios      = errors.New("la solicitud no trae ningún campo para actualizar")
)

// SolicitudCrear son los datos ya tipados para generar una liquidación.
type SolicitudCrear struct {
	AgenteID    uint
	FechaInicio time.Time
	FechaFin    time.Time
	Deducciones []Deduccion
}

// SolicitudActualizar son los cambios pedidos sobre una liquidación.
type SolicitudActualizar struct {
	Estado               *string
	GenerarDocumentoPago bool
	GenerarDocumentoPre  bool
}

// ResultadoActualizar reporta la liquidación resultante y los
// documentos cuyo renderizado quedó pendiente (falló y es reintentable).
type ResultadoActualizar struct {
	Liquidacion *Liquidacion
	Pendientes  []documento.TipoDocumento
}

// Servicio agrega comisiones en liquidaciones y maneja su ciclo de
// vida. La creación corre en una sola transacción (totales + reclamo de
// pagos); el renderizado del documento ocurre siempre después del
// commit y nunca condiciona el estado persistido.
type Servicio struct {
	DB         *gorm.DB
	Repo       *Repository
	Pagos      *pago.Repository
	Agentes    agente.Repository
	Documentos documento.Gateway
}

func NewServicio(db *gorm.DB, gw documento.Gateway) *Servicio {
	return &Servicio{
		DB:         db,
		Repo:       NewRepository(db),
		Pagos:      pago.NewRepository(db),
		Agentes:    agente.NewRepository(),
		Documentos: gw,
	}
}

// Crear genera la liquidación de un agente para una ventana de fechas.
// Solo entran los pagos aún no reclamados por otra liquidación; dentro
// de la misma transacción esos pagos quedan reclamados, de modo que dos
// ventanas solapadas jamás cuentan dos veces la misma comisión.
func (s *Servicio) Crear(solicitud SolicitudCrear) (*Liquidacion, error) {
	if solicitud.FechaInicio.After(solicitud.FechaFin) {
		return nil, ErrVentanaInvalida
	}

	// Nombre del agente: mejor esfuerzo, nunca bloquea la creación.
	nombre := fmt.Sprintf("Agente #%d", solicitud.AgenteID)
	if a, err := s.Agentes.BuscarPorID(s.DB, solicitud.AgenteID); err == nil {
		nombre = a.NombreCompleto()
	}

	tx := s.DB.Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("no se pudo iniciar la transacción: %w", tx.Error)
	}

	pagosTx := s.Pagos.WithDB(tx)
	pagos, err := pagosTx.ListarSinLiquidar(solicitud.AgenteID, solicitud.FechaInicio, solicitud.FechaFin)
	if err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("error al buscar pagos de la ventana: %w", err)
	}

	totalComisiones := decimal.Zero
	ids := make([]uint, 0, len(pagos))
	for _, p := range pagos {
		totalComisiones = totalComisiones.Add(p.ComisionGanada)
		ids = append(ids, p.ID)
	}

	totalDeducciones := decimal.Zero
	for _, d := range solicitud.Deducciones {
		totalDeducciones = totalDeducciones.Add(d.Monto)
	}

	l := &Liquidacion{
		AgenteID:         solicitud.AgenteID,
		NombreAgente:     nombre,
		FechaInicio:      solicitud.FechaInicio,
		FechaFin:         solicitud.FechaFin,
		TotalComisiones:  totalComisiones,
		TotalDeducciones: totalDeducciones,
		PagoNeto:         totalComisiones.Sub(totalDeducciones),
		Estado:           EstadoGenerada,
		Deducciones:      solicitud.Deducciones,
	}

	if err := s.Repo.WithDB(tx).Crear(l); err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("error al crear la liquidación: %w", err)
	}
	if err := pagosTx.ReclamarParaLiquidacion(ids, l.ID); err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("error al reclamar los pagos: %w", err)
	}
	if err := tx.Commit().Error; err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("error al confirmar la transacción: %w", err)
	}

	// Renderizado después del commit: si falla, la liquidación queda sin
	// ruta y se reintenta por POST /liquidaciones/{id}/documentos.
	if ruta, err := s.renderizar(l, documento.TipoPreLiquidacion); err != nil {
		log.Printf("liquidación %d creada sin documento: %v", l.ID, err)
	} else {
		l.RutaDocumento = ruta
	}

	return l, nil
}

// Actualizar aplica el cambio de estado y/o los renderizados pedidos.
// El estado se confirma primero; los documentos se generan después y
// sus fallos se reportan como pendientes sin deshacer nada.
func (s *Servicio) Actualizar(id uint, cambio SolicitudActualizar) (*ResultadoActualizar, error) {
	if cambio.Estado == nil && !cambio.GenerarDocumentoPago && !cambio.GenerarDocumentoPre {
		return nil, ErrSinCambios
	}

	l, err := s.Repo.BuscarPorID(id)
	if err != nil {
		return nil, err
	}

	if cambio.Estado != nil {
		if err := l.CambiarEstado(*cambio.Estado); err != nil {
			return nil, err
		}
		if err := s.Repo.ActualizarEstado(l.ID, l.Estado); err != nil {
			return nil, fmt.Errorf("error al actualizar el estado: %w", err)
		}
	}

	resultado := &ResultadoActualizar{Liquidacion: l}

	quierePago := cambio.GenerarDocumentoPago || (cambio.Estado != nil && *cambio.Estado == EstadoPagada)
	if quierePago {
		if ruta, err := s.renderizar(l, documento.TipoPago); err != nil {
			log.Printf("liquidación %d: documento de pago pendiente: %v", l.ID, err)
			resultado.Pendientes = append(resultado.Pendientes, documento.TipoPago)
		} else {
			l.RutaDocumentoPago = ruta
		}
	}
	if cambio.GenerarDocumentoPre {
		if ruta, err := s.renderizar(l, documento.TipoPreLiquidacion); err != nil {
			log.Printf("liquidación %d: pre-liquidación pendiente: %v", l.ID, err)
			resultado.Pendientes = append(resultado.Pendientes, documento.TipoPreLiquidacion)
		} else {
			l.RutaDocumento = ruta
		}
	}

	return resultado, nil
}

// Renderizar vuelve a pedir un documento al renderizador y persiste la
// ruta. Es el camino de reintento manual.
func (s *Servicio) Renderizar(id uint, tipo documento.TipoDocumento) (string, error) {
	l, err := s.Repo.BuscarPorID(id)
	if err != nil {
		return "", err
	}
	return s.renderizar(l, tipo)
}

func (s *Servicio) renderizar(l *Liquidacion, tipo documento.TipoDocumento) (string, error) {
	ruta, err := s.Documentos.Generar(l.Vista(), tipo)
	if err != nil {
		return "", err
	}
	if err := s.Repo.GuardarRuta(l.ID, tipo, ruta); err != nil {
		return "", fmt.Errorf("error al guardar la ruta del documento: %w", err)
	}
	return ruta, nil
}
