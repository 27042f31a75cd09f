package inventory

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/epify/inventory-api/internal/application/dto"
	"github.com/epify/inventory-api/internal/domain"
	"github.com/epify/inventory-api/internal/domain/entity"
	"github.com/epify/inventory-api/internal/domain/repository"
)

// UseCase mutaciones transaccionales del inventario: cada creación o cambio de
// cantidad escribe la fila de producto y su evento de auditoría como unidad atómica,
// con el filtro de dueño aplicado dentro de la misma transacción.
type UseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository // atado al pool, lecturas fuera de tx
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner TxRunner, productRepo repository.ProductRepository) *UseCase {
	return &UseCase{txRunner: txRunner, productRepo: productRepo}
}

// CreateProduct crea un producto y su evento 'add' (delta = cantidad inicial, incluso
// cero) en una sola transacción. Devuelve el ID nuevo.
// SKU duplicado → domain.ErrDuplicate; campos inválidos → domain.ErrInvalidInput.
// Cualquier fallo de escritura revierte ambas filas.
func (uc *UseCase) CreateProduct(ctx context.Context, ownerID int64, in dto.CreateProductRequest) (int64, error) {
	if ownerID <= 0 || in.Name == "" || in.SKU == "" {
		return 0, domain.ErrInvalidInput
	}
	if in.Quantity < 0 || in.Price.LessThan(decimal.Zero) {
		return 0, domain.ErrInvalidInput
	}
	existing, err := uc.productRepo.GetBySKU(ctx, in.SKU)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return 0, domain.ErrDuplicate
	}

	now := time.Now()
	product := &entity.Product{
		UserID:      ownerID,
		Name:        in.Name,
		Type:        in.Type,
		SKU:         in.SKU,
		ImageURL:    in.ImageURL,
		Description: in.Description,
		Quantity:    in.Quantity,
		Price:       in.Price,
		CreatedAt:   now,
	}
	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		auditRepo repository.AuditEventRepository,
	) error {
		if err := productRepo.Create(ctx, product); err != nil {
			return err
		}
		event := &entity.AuditEvent{
			ProductID: product.ID,
			Action:    entity.ActionAdd,
			Delta:     in.Quantity,
			Timestamp: now,
		}
		return auditRepo.Create(ctx, event)
	})
	if err != nil {
		return 0, err
	}
	return product.ID, nil
}

// UpdateQuantity fija la cantidad de un producto del dueño indicado y registra el
// evento 'update' con delta = nueva - actual (puede ser negativo o cero; un delta
// cero también se registra como evento de estado verificado).
//
// La lectura de la cantidad actual usa bloqueo de fila dentro de la misma transacción
// que el UPDATE, de modo que dos actualizaciones concurrentes sobre el mismo producto
// serializan en el motor de almacenamiento y no en memoria de la aplicación.
//
// Devuelve (nil, nil) cuando el id no existe o el producto no pertenece al caller:
// no es un error, y no se escribe nada.
func (uc *UseCase) UpdateQuantity(ctx context.Context, productID, newQuantity, ownerID int64) (*dto.ProductResponse, error) {
	if newQuantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	var out *dto.ProductResponse
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		auditRepo repository.AuditEventRepository,
	) error {
		current, err := productRepo.GetForUpdate(ctx, productID, ownerID)
		if err != nil {
			return err
		}
		if current == nil {
			// id equivocado o dueño distinto: la transacción termina sin escrituras
			return nil
		}
		delta := newQuantity - current.Quantity
		affected, err := productRepo.UpdateQuantity(ctx, productID, ownerID, newQuantity)
		if err != nil {
			return err
		}
		if !affected {
			return nil
		}
		event := &entity.AuditEvent{
			ProductID: productID,
			Action:    entity.ActionUpdate,
			Delta:     delta,
			Timestamp: time.Now(),
		}
		if err := auditRepo.Create(ctx, event); err != nil {
			return err
		}
		updated, err := productRepo.GetByID(ctx, productID)
		if err != nil {
			return err
		}
		out = toProductResponse(updated)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListProducts lista los productos del dueño, más recientes primero.
// page y pageSize se normalizan a positivos (1 y 10 por defecto); una página fuera
// de rango devuelve un slice vacío, nunca error. El filtro de dueño es obligatorio.
func (uc *UseCase) ListProducts(ctx context.Context, ownerID int64, page dto.PageRequest) ([]dto.ProductResponse, error) {
	page.Coerce()
	list, err := uc.productRepo.ListByOwner(ctx, ownerID, page.PageSize, page.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		UserID:      p.UserID,
		Name:        p.Name,
		Type:        p.Type,
		SKU:         p.SKU,
		ImageURL:    p.ImageURL,
		Description: p.Description,
		Quantity:    p.Quantity,
		Price:       p.Price,
		CreatedAt:   p.CreatedAt,
	}
}
