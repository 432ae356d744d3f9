package growth

import "context"

// Repository persiste el historial. El core no depende del mecanismo:
// HistoryStore es la fuente de verdad en memoria y el repo solo la refleja.
type Repository interface {
	Insert(ctx context.Context, r Record) error
	Update(ctx context.Context, r Record) error
	Delete(ctx context.Context, m Metric, id string) error

	// ListAll devuelve todos los registros, por métrica en orden de fecha
	// y, en empate, en orden de inserción.
	ListAll(ctx context.Context) ([]Record, error)
}
