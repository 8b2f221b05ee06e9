// Package comision calcula la comisión devengada por un pago.
//
// El cálculo es puro: monto × tasa, redondeado a centavos. La tasa se
// toma de la póliza en el instante del pago y el resultado queda
// congelado en el registro de Pago; cambios posteriores de tasa no
// alteran comisiones históricas.
package comision

import "github.com/shopspring/decimal"

// Calcular devuelve la comisión de un pago dado el monto y la tasa
// (fracción, ej. 0.10 para 10%).
func Calcular(monto, tasa decimal.Decimal) decimal.Decimal {
	return monto.Mul(tasa).Round(2)
}
