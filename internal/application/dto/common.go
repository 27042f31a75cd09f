package dto

// PageRequest paginación para listados (page/page_size, 1-based como el cliente original).
type PageRequest struct {
	Page     int `query:"page"`
	PageSize int `query:"limit"`
}

// Coerce normaliza page y pageSize a enteros positivos (1 y 10 por defecto).
// Valores ausentes, cero o negativos nunca producen error.
func (p *PageRequest) Coerce() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = 10
	}
}

// Offset devuelve el desplazamiento SQL para la página actual.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
