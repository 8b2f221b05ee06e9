// internal/conciliacion/dto.go
package conciliacion

import "github.com/google/uuid"

// ResultadoFila es el desenlace de una fila del archivo, en el mismo
// orden del archivo: una entrada por fila, haya salido bien o mal.
type ResultadoFila struct {
	Exito        bool   `json:"exito"`
	NumeroPoliza string `json:"numeroPoliza"`
	Mensaje      string `json:"mensaje"`
}

// ResultadoCarga es el reporte completo de una carga de pagos.
type ResultadoCarga struct {
	LoteID     uuid.UUID       `json:"loteId"`
	TotalFilas int             `json:"totalFilas"`
	Aplicadas  int             `json:"aplicadas"`
	Fallidas   int             `json:"fallidas"`
	Resultados []ResultadoFila `json:"resultados"`
}
