package entity

import "time"

// Pico es una pila parcial de un producto (bases + unidades sueltas) ubicada en una torre.
// TotalUnits lo calcula el caso de uso en cada alta o modificación.
type Pico struct {
	ID            string
	ProductID     string
	Bases         int
	LooseUnits    int
	TotalUnits    int
	TowerLocation string // exactamente dos dígitos
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// PicoWithProduct pico junto con su producto (consulta con join).
type PicoWithProduct struct {
	Pico
	Product Product
}
