package dto

// PageRequest paginación para listados paginados por número de página (1-based).
type PageRequest struct {
	Enabled  bool // paging=true o presencia de page
	Page     int
	PageSize int
}

// PageMeta metadatos de página. Viajan como cabeceras, nunca en el cuerpo.
type PageMeta struct {
	Total    int
	PageSize int
	Pages    int
	Page     int
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
