package dto

import "github.com/jhoicas/Estoque-api/internal/domain/entity"

// FromUser convierte la entidad a la respuesta sin password.
func FromUser(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:           u.ID,
		Name:         u.Name,
		Nickname:     u.Nickname,
		Username:     u.Username,
		Role:         u.Role,
		IsFirstLogin: u.IsFirstLogin,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

// FromProduct convierte la entidad a la respuesta.
func FromProduct(p *entity.Product) *ProductResponse {
	if p == nil {
		return nil
	}
	return &ProductResponse{
		ID:            p.ID,
		Code:          p.Code,
		Description:   p.Description,
		QuantityBases: p.QuantityBases,
		UnitsPerBase:  p.UnitsPerBase,
		Category:      p.Category,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// FromPico convierte el pico; product puede ser nil.
func FromPico(p *entity.Pico, product *entity.Product) *PicoResponse {
	if p == nil {
		return nil
	}
	return &PicoResponse{
		ID:            p.ID,
		ProductID:     p.ProductID,
		Bases:         p.Bases,
		LooseUnits:    p.LooseUnits,
		TotalUnits:    p.TotalUnits,
		TowerLocation: p.TowerLocation,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
		Product:       FromProduct(product),
	}
}

// FromPaletizado convierte el stock; product puede ser nil.
func FromPaletizado(s *entity.PaletizadoStock, product *entity.Product) *PaletizadoStockResponse {
	if s == nil {
		return nil
	}
	return &PaletizadoStockResponse{
		ID:        s.ID,
		ProductID: s.ProductID,
		Quantity:  s.Quantity,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
		Product:   FromProduct(product),
	}
}

// FromActivityLogs convierte una lista de registros; nunca devuelve nil.
func FromActivityLogs(list []*entity.ActivityLog) []ActivityLogResponse {
	out := make([]ActivityLogResponse, 0, len(list))
	for _, l := range list {
		out = append(out, ActivityLogResponse{
			ID:                 l.ID,
			Type:               l.Type,
			ProductCode:        l.ProductCode,
			ProductDescription: l.ProductDescription,
			Quantity:           l.Quantity,
			Category:           l.Category,
			ItemType:           l.ItemType,
			CreatedAt:          l.CreatedAt,
		})
	}
	return out
}
