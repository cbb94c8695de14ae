package repositories

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Pagination contém os parâmetros de paginação comuns às listagens
type Pagination struct {
	Page     int // Página (começa em 1)
	PageSize int // Itens por página (default: 20, max: 100)
}

// LimitOffset normaliza a paginação e devolve limit/offset para a consulta
func (p Pagination) LimitOffset() (limit, offset int) {
	page := p.Page
	if page < 1 {
		page = 1
	}
	pageSize := p.PageSize
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return pageSize, (page - 1) * pageSize
}
