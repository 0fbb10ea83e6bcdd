package repository

import "github.com/jhoicas/Gestion-api/internal/domain/document"

// SequenceRepository emite consecutivos por tipo de documento.
// Next debe ser atómico a nivel de almacenamiento (contador dedicado con
// increment-and-fetch), nunca un count-then-format: dos requests concurrentes
// jamás deben recibir el mismo número. Se consume dentro de la misma
// transacción que inserta el documento.
type SequenceRepository interface {
	Next(t document.Type) (int64, error)
}
