package usecase

import (
	"github.com/hostaly/hostaly-api/internal/application/dto"
	"github.com/hostaly/hostaly-api/internal/domain"
	"github.com/hostaly/hostaly-api/internal/domain/repository"
)

// CatalogUseCase lado de lectura de los datos de referencia que consume el
// ledger: artículos y habitaciones.
type CatalogUseCase struct {
	articleRepo repository.ArticleRepository
	roomRepo    repository.RoomRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(articleRepo repository.ArticleRepository, roomRepo repository.RoomRepository) *CatalogUseCase {
	return &CatalogUseCase{articleRepo: articleRepo, roomRepo: roomRepo}
}

// ListArticles lista artículos de la organización con paginación.
func (uc *CatalogUseCase) ListArticles(organizationID string, page dto.PageRequest) ([]dto.ArticleResponse, error) {
	page.DefaultPage()
	articles, err := uc.articleRepo.ListByOrganization(organizationID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ArticleResponse, 0, len(articles))
	for _, a := range articles {
		items = append(items, dto.ArticleResponse{
			ID: a.ID, Name: a.Name, Price: a.Price, ImageURL: a.ImageURL, CreatedAt: a.CreatedAt,
		})
	}
	return items, nil
}

// GetArticle obtiene un artículo por ID dentro de la organización.
func (uc *CatalogUseCase) GetArticle(id, organizationID string) (*dto.ArticleResponse, error) {
	a, err := uc.articleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil || a.OrganizationID != organizationID {
		return nil, domain.ErrNotFound
	}
	return &dto.ArticleResponse{ID: a.ID, Name: a.Name, Price: a.Price, ImageURL: a.ImageURL, CreatedAt: a.CreatedAt}, nil
}

// ListRooms lista habitaciones de la organización con paginación.
func (uc *CatalogUseCase) ListRooms(organizationID string, page dto.PageRequest) ([]dto.RoomResponse, error) {
	page.DefaultPage()
	rooms, err := uc.roomRepo.ListByOrganization(organizationID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		items = append(items, dto.RoomResponse{ID: r.ID, Name: r.Name, Number: r.Number, CreatedAt: r.CreatedAt})
	}
	return items, nil
}

// GetRoom obtiene una habitación por ID dentro de la organización.
func (uc *CatalogUseCase) GetRoom(id, organizationID string) (*dto.RoomResponse, error) {
	r, err := uc.roomRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if r == nil || r.OrganizationID != organizationID {
		return nil, domain.ErrNotFound
	}
	return &dto.RoomResponse{ID: r.ID, Name: r.Name, Number: r.Number, CreatedAt: r.CreatedAt}, nil
}
