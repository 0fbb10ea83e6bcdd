package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Gestion-api/internal/domain/document"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

var _ repository.SequenceRepository = (*SequenceRepo)(nil)

// SequenceRepo emite consecutivos por tipo de documento sobre una tabla
// contador dedicada. Usable con pool o tx (Querier); los workflows lo usan
// dentro de la misma transacción que inserta el documento.
type SequenceRepo struct {
	q Querier
}

// NewSequenceRepository construye el emisor de consecutivos. Pasar pool o tx (Querier).
func NewSequenceRepository(q Querier) *SequenceRepo {
	return &SequenceRepo{q: q}
}

// Next incrementa y devuelve el consecutivo del tipo de documento en una sola
// sentencia atómica: dos llamadas concurrentes nunca reciben el mismo número.
func (r *SequenceRepo) Next(t document.Type) (int64, error) {
	query := `
		INSERT INTO document_sequences (doc_type, seq)
		VALUES ($1, 1)
		ON CONFLICT (doc_type)
		DO UPDATE SET seq = document_sequences.seq + 1
		RETURNING seq`
	var seq int64
	if err := r.q.QueryRow(context.Background(), query, string(t)).Scan(&seq); err != nil {
		return 0, fmt.Errorf("next sequence %s: %w", t, err)
	}
	return seq, nil
}
