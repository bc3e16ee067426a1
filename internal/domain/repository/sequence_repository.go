package repository

// SequenceRepository puerto del contador monotónico por categoría (inbound, outbound, ...).
// El incremento es atómico y debe ejecutarse en la misma transacción que escribe el registro nuevo.
type SequenceRepository interface {
	// Next incrementa y devuelve el siguiente valor del contador de la categoría.
	Next(category string) (int64, error)
}
