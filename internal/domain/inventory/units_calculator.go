package inventory

import (
	"fmt"
	"math"

	"github.com/jhoicas/Estoque-api/internal/domain"
)

// MaxTotalUnits límite de unidades de un pico; coincide con la columna INTEGER de total_units.
const MaxTotalUnits = math.MaxInt32

// TotalUnits implementa el cálculo de unidades de un pico (servicio de dominio).
// TotalUnidades = (Bases * UnidadesPorBase) + UnidadesSueltas
//
// Devuelve domain.ErrInvalidInput si algún factor es negativo o el resultado supera MaxTotalUnits.
func TotalUnits(bases, unitsPerBase, looseUnits int) (int, error) {
	if bases < 0 || unitsPerBase < 0 || looseUnits < 0 {
		return 0, fmt.Errorf("%w: bases, unitsPerBase y looseUnits no pueden ser negativos", domain.ErrInvalidInput)
	}
	if looseUnits > MaxTotalUnits ||
		(unitsPerBase > 0 && bases > (MaxTotalUnits-looseUnits)/unitsPerBase) {
		return 0, fmt.Errorf("%w: el total de unidades supera %d", domain.ErrInvalidInput, MaxTotalUnits)
	}
	return bases*unitsPerBase + looseUnits, nil
}
