package conciliacion

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
)

const maxTamanoArchivo = 10 << 20 // 10 MiB

type Handler struct {
	Conciliador *Conciliador
}

func NewHandler(c *Conciliador) *Handler {
	return &Handler{Conciliador: c}
}

// POST /pagos/carga
// Multipart con un único CSV en el campo "archivo". Una vez que el
// archivo parsea, la respuesta es siempre 200 con un resultado por
// fila; los fallos individuales viajan dentro del reporte.
func (h *Handler) CargarPagos(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxTamanoArchivo); err != nil {
		http.Error(w, "formulario multipart inválido", http.StatusBadRequest)
		return
	}

	archivo, _, err := r.FormFile("archivo")
	if err != nil {
		http.Error(w, "falta el archivo de pagos", http.StatusBadRequest)
		return
	}
	defer archivo.Close()

	filas, err := ParsearArchivo(archivo)
	if err != nil {
		if errors.Is(err, ErrArchivoVacio) || errors.Is(err, ErrEncabezadoInvalido) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "no se pudo leer el archivo", http.StatusBadRequest)
		return
	}

	resultado := h.Conciliador.Procesar(filas)
	log.Printf("carga de pagos %s: %d filas, %d aplicadas, %d fallidas",
		resultado.LoteID, resultado.TotalFilas, resultado.Aplicadas, resultado.Fallidas)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(struct {
		Mensaje string `json:"mensaje"`
		ResultadoCarga
	}{
		Mensaje:        "carga procesada",
		ResultadoCarga: resultado,
	})
}
