package dto

// PageDTO metadatos de paginación en las respuestas de pantalla.
type PageDTO struct {
	CurrentPage    int `json:"current_page"`
	RecordsPerPage int `json:"records_per_page"`
	TotalPages     int `json:"total_pages"`
	TotalRecords   int `json:"total_records"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"` // errores de validación por campo
}
