package analytics

import (
	"context"

	"github.com/epify/inventory-api/internal/application/dto"
	"github.com/epify/inventory-api/internal/domain/repository"
)

// DefaultMostAddedLimit límite del ranking cuando el caller no envía uno válido.
const DefaultMostAddedLimit = 5

// UseCase vistas derivadas de solo lectura sobre productos y log de auditoría.
// Abarca los productos de todos los usuarios: el gate administrativo ocurre antes,
// en el middleware. Nunca escribe.
type UseCase struct {
	repo repository.AnalyticsRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.AnalyticsRepository) *UseCase {
	return &UseCase{repo: repo}
}

// MostAdded devuelve los productos con más unidades añadidas (eventos 'add'),
// desempatados por frecuencia. limit se normaliza a positivo, 5 por defecto.
// Productos sin eventos aparecen con totales en cero, no se excluyen.
func (uc *UseCase) MostAdded(ctx context.Context, limit int) ([]dto.MostAddedProductResponse, error) {
	if limit <= 0 {
		limit = DefaultMostAddedLimit
	}
	rows, err := uc.repo.MostAdded(ctx, limit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MostAddedProductResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.MostAddedProductResponse{
			ID:           r.ID,
			UserID:       r.UserID,
			Name:         r.Name,
			Type:         r.Type,
			SKU:          r.SKU,
			Quantity:     r.Quantity,
			Price:        r.Price,
			CreatedAt:    r.CreatedAt,
			TotalAdded:   r.TotalAdded,
			AddFrequency: r.AddFrequency,
		})
	}
	return items, nil
}

// ProductHistory devuelve los eventos del producto, más recientes primero, anotados
// con el nombre actual. Producto sin eventos o inexistente → slice vacío.
func (uc *UseCase) ProductHistory(ctx context.Context, productID int64) ([]dto.HistoryEntryResponse, error) {
	rows, err := uc.repo.ProductHistory(ctx, productID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.HistoryEntryResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.HistoryEntryResponse{
			ID:          r.ID,
			ProductID:   r.ProductID,
			ProductName: r.ProductName,
			Action:      r.Action,
			Delta:       r.Delta,
			Timestamp:   r.Timestamp,
		})
	}
	return items, nil
}

// GlobalStats devuelve el agregado global. Con cero productos todos los campos son
// cero (la consulta usa COALESCE); un fallo real de la consulta se propaga como
// error, nunca se disfraza de resultado vacío.
func (uc *UseCase) GlobalStats(ctx context.Context) (*dto.StatsResponse, error) {
	snap, err := uc.repo.GlobalStats(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.StatsResponse{
		TotalProducts:  snap.TotalProducts,
		TotalInventory: snap.TotalInventory,
		AveragePrice:   snap.AveragePrice,
		InventoryValue: snap.InventoryValue,
	}, nil
}
