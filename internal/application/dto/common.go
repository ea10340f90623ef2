package dto

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// ErrorResponse cuerpo de error HTTP. Detail lleva datos adicionales
// (ej. producto/disponible/requerido en stock insuficiente).
type ErrorResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Detail  interface{} `json:"detail,omitempty"`
}

// InsufficientStockDetail detalle del rechazo por stock insuficiente.
type InsufficientStockDetail struct {
	ProductID string `json:"product_id"`
	Available int64  `json:"available"`
	Required  int64  `json:"required"`
}
