package dto

// RowError error de validación de una fila de la planilla (número de fila 1-based, como en Excel).
type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// ImportOutcome resultado de una reconciliación de nómina. No se persiste.
type ImportOutcome struct {
	HadErrors bool
	Report    []byte // planilla: copia importada o copia anotada con errores
	Rows      int
	Errors    []RowError
}
