package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/hostaly/hostaly-api/internal/application/dto"
	"github.com/hostaly/hostaly-api/internal/domain"
	"github.com/hostaly/hostaly-api/internal/domain/entity"
	"github.com/hostaly/hostaly-api/internal/domain/repository"
)

// StockUseCase CRUD de existencias por (artículo, ubicación), siempre acotado
// por organización. No escribe movimientos: las mutaciones de cantidad con
// auditoría pasan por PosterUseCase.
type StockUseCase struct {
	invRepo       repository.InventoryRepository
	articleRepo   repository.ArticleRepository
	roomRepo      repository.RoomRepository
	warehouseRepo repository.WarehouseRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(
	invRepo repository.InventoryRepository,
	articleRepo repository.ArticleRepository,
	roomRepo repository.RoomRepository,
	warehouseRepo repository.WarehouseRepository,
) *StockUseCase {
	return &StockUseCase{
		invRepo:       invRepo,
		articleRepo:   articleRepo,
		roomRepo:      roomRepo,
		warehouseRepo: warehouseRepo,
	}
}

// List lista existencias de la organización, filtrables por ubicación.
// Enriquece cada fila con nombre/precio de artículo y nombre de ubicación.
func (uc *StockUseCase) List(organizationID string, locationType, locationID *string) (*dto.InventoryListResponse, error) {
	if locationType != nil && !entity.ValidLocationType(*locationType) {
		return nil, domain.ErrInvalidInput
	}
	records, err := uc.invRepo.List(organizationID, repository.InventoryFilter{
		LocationType: locationType,
		LocationID:   locationID,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.InventoryResponse, 0, len(records))
	for _, rec := range records {
		items = append(items, *uc.toResponse(rec))
	}
	return &dto.InventoryListResponse{Items: items, Total: len(items)}, nil
}

// GetByID obtiene una existencia por ID dentro de la organización.
func (uc *StockUseCase) GetByID(id, organizationID string) (*dto.InventoryResponse, error) {
	rec, err := uc.invRepo.GetByID(id, organizationID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	return uc.toResponse(rec), nil
}

// Create da de alta la existencia de un artículo en una ubicación.
// ErrConflict si ya existe para esa (artículo, ubicación); ErrNotFound si el
// artículo no pertenece a la organización.
func (uc *StockUseCase) Create(organizationID string, in dto.CreateInventoryRequest) (*dto.InventoryResponse, error) {
	if in.ArticleID == "" || !entity.ValidLocationType(in.LocationType) || in.InitialQuantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	// GENERAL no lleva ubicación concreta; ROOM/WAREHOUSE la exigen.
	if in.LocationType == entity.LocationGeneral && in.LocationID != nil {
		return nil, domain.ErrInvalidInput
	}
	if in.LocationType != entity.LocationGeneral && (in.LocationID == nil || *in.LocationID == "") {
		return nil, domain.ErrInvalidInput
	}

	article, err := uc.articleRepo.GetByID(in.ArticleID)
	if err != nil {
		return nil, err
	}
	if article == nil || article.OrganizationID != organizationID {
		return nil, domain.ErrNotFound
	}
	if err := uc.checkLocation(organizationID, in.LocationType, in.LocationID); err != nil {
		return nil, err
	}

	existing, err := uc.invRepo.GetByLocation(in.ArticleID, organizationID, in.LocationType, in.LocationID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrConflict
	}

	now := time.Now()
	rec := &entity.InventoryRecord{
		ID:             uuid.New().String(),
		ArticleID:      in.ArticleID,
		OrganizationID: organizationID,
		LocationType:   in.LocationType,
		LocationID:     in.LocationID,
		Quantity:       in.InitialQuantity,
		RegisteredAt:   now,
		UpdatedAt:      now,
	}
	if err := uc.invRepo.Create(rec); err != nil {
		return nil, err
	}
	return uc.toResponse(rec), nil
}

// Delete borra físicamente una existencia (acción administrativa, sin asiento).
func (uc *StockUseCase) Delete(id, organizationID string) error {
	deleted, err := uc.invRepo.Delete(id, organizationID)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

// SyncGeneral reconcilia el stock general: crea con cantidad 0 el registro
// GENERAL de cada artículo que no lo tenga. Seguro de ejecutar repetidamente.
func (uc *StockUseCase) SyncGeneral(organizationID string) (*dto.SyncGeneralResponse, error) {
	created, err := uc.invRepo.SyncGeneral(organizationID)
	if err != nil {
		return nil, err
	}
	return &dto.SyncGeneralResponse{Created: created}, nil
}

// checkLocation valida que la ubicación exista y pertenezca a la organización.
func (uc *StockUseCase) checkLocation(organizationID, locationType string, locationID *string) error {
	switch locationType {
	case entity.LocationRoom:
		room, err := uc.roomRepo.GetByID(*locationID)
		if err != nil {
			return err
		}
		if room == nil || room.OrganizationID != organizationID {
			return domain.ErrNotFound
		}
	case entity.LocationWarehouse:
		wh, err := uc.warehouseRepo.GetByID(*locationID)
		if err != nil {
			return err
		}
		if wh == nil || wh.OrganizationID != organizationID {
			return domain.ErrNotFound
		}
	}
	return nil
}

func (uc *StockUseCase) toResponse(rec *entity.InventoryRecord) *dto.InventoryResponse {
	resp := &dto.InventoryResponse{
		ID:           rec.ID,
		ArticleID:    rec.ArticleID,
		LocationType: rec.LocationType,
		LocationID:   rec.LocationID,
		Quantity:     rec.Quantity,
		RegisteredAt: rec.RegisteredAt,
		UpdatedAt:    rec.UpdatedAt,
	}
	// Enriquecimiento best-effort: el listado no falla por referencia ausente.
	if article, err := uc.articleRepo.GetByID(rec.ArticleID); err == nil && article != nil {
		resp.ArticleName = article.Name
		resp.ArticlePrice = article.Price
	}
	if rec.LocationID != nil {
		switch rec.LocationType {
		case entity.LocationRoom:
			if room, err := uc.roomRepo.GetByID(*rec.LocationID); err == nil && room != nil {
				resp.LocationName = room.Name
			}
		case entity.LocationWarehouse:
			if wh, err := uc.warehouseRepo.GetByID(*rec.LocationID); err == nil && wh != nil {
				resp.LocationName = wh.Name
			}
		}
	}
	return resp
}
