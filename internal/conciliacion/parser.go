// internal/conciliacion/parser.go
package conciliacion

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Errores estructurales: solo cuando el archivo completo no sirve.
var (
	ErrArchivoVacio       = errors.New("el archivo está vacío")
	ErrEncabezadoInvalido = errors.New("el encabezado no contiene las columnas numeroPoliza, monto y fechaPago")
)

// DatosPago son los campos tipados de una fila bien formada del archivo
// de pagos.
type DatosPago struct {
	NumeroPoliza          string
	Monto                 decimal.Decimal
	FechaPago             time.Time
	ReferenciaTransaccion string
	NumeroAnexo           string
	AgenteID              uint
}

// Fila es una fila del archivo ya clasificada: Datos != nil cuando la
// fila es válida, Error describe el problema cuando no lo es. Las filas
// inválidas se conservan para que el reporte tenga una entrada por cada
// fila del archivo.
type Fila struct {
	Numero       int
	NumeroPoliza string
	Datos        *DatosPago
	Error        string
}

var formatosFecha = []string{"2006-01-02", "02/01/2006"}

// ParsearArchivo convierte el contenido CSV en filas clasificadas. No
// toca la base de datos y nunca falla por una fila individual; devuelve
// error únicamente si el contenido no es tabular (vacío o sin
// encabezado reconocible).
func ParsearArchivo(r io.Reader) ([]Fila, error) {
	lector := csv.NewReader(r)
	lector.FieldsPerRecord = -1
	lector.TrimLeadingSpace = true

	encabezado, err := lector.Read()
	if err == io.EOF {
		return nil, ErrArchivoVacio
	}
	if err != nil {
		return nil, fmt.Errorf("no se pudo leer el encabezado: %w", err)
	}

	columnas := map[string]int{}
	for i, nombre := range encabezado {
		columnas[strings.ToLower(strings.TrimSpace(nombre))] = i
	}
	if _, ok := columnas["numeropoliza"]; !ok {
		return nil, ErrEncabezadoInvalido
	}
	if _, ok := columnas["monto"]; !ok {
		return nil, ErrEncabezadoInvalido
	}
	if _, ok := columnas["fechapago"]; !ok {
		return nil, ErrEncabezadoInvalido
	}

	var filas []Fila
	numero := 0
	for {
		registro, err := lector.Read()
		if err == io.EOF {
			break
		}
		numero++
		if err != nil {
			filas = append(filas, Fila{Numero: numero, Error: fmt.Sprintf("fila mal formada: %v", err)})
			continue
		}
		filas = append(filas, parsearFila(numero, registro, columnas))
	}
	return filas, nil
}

func parsearFila(numero int, registro []string, columnas map[string]int) Fila {
	campo := func(nombre string) string {
		i, ok := columnas[nombre]
		if !ok || i >= len(registro) {
			return ""
		}
		return strings.TrimSpace(registro[i])
	}

	fila := Fila{Numero: numero, NumeroPoliza: campo("numeropoliza")}

	if fila.NumeroPoliza == "" {
		fila.Error = "falta el número de póliza"
		return fila
	}

	montoCrudo := campo("monto")
	if montoCrudo == "" {
		fila.Error = "falta el monto"
		return fila
	}
	monto, err := decimal.NewFromString(montoCrudo)
	if err != nil {
		fila.Error = fmt.Sprintf("monto inválido: %q", montoCrudo)
		return fila
	}

	fechaCruda := campo("fechapago")
	if fechaCruda == "" {
		fila.Error = "falta la fecha de pago"
		return fila
	}
	fecha, err := parsearFecha(fechaCruda)
	if err != nil {
		fila.Error = fmt.Sprintf("fecha de pago inválida: %q", fechaCruda)
		return fila
	}

	var agenteID uint
	if crudo := campo("agenteid"); crudo != "" {
		id, err := strconv.ParseUint(crudo, 10, 32)
		if err != nil {
			fila.Error = fmt.Sprintf("agenteId inválido: %q", crudo)
			return fila
		}
		agenteID = uint(id)
	}

	fila.Datos = &DatosPago{
		NumeroPoliza:          fila.NumeroPoliza,
		Monto:                 monto,
		FechaPago:             fecha,
		ReferenciaTransaccion: campo("referenciatransaccion"),
		NumeroAnexo:           campo("numeroanexo"),
		AgenteID:              agenteID,
	}
	return fila
}

func parsearFecha(crudo string) (time.Time, error) {
	var ultimo error
	for _, formato := range formatosFecha {
		fecha, err := time.Parse(formato, crudo)
		if err == nil {
			return fecha, nil
		}
		ultimo = err
	}
	return time.Time{}, ultimo
}
