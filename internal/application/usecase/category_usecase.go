package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/jhoicas/hotel-inventory/internal/application/dto"
	"github.com/jhoicas/hotel-inventory/internal/domain"
	"github.com/jhoicas/hotel-inventory/internal/domain/entity"
	"github.com/jhoicas/hotel-inventory/internal/domain/inventory"
	"github.com/jhoicas/hotel-inventory/internal/domain/repository"
	"github.com/rs/zerolog"
)

// CategoryUseCase registro de categorías por sitio.
type CategoryUseCase struct {
	repo  repository.CategoryRepository
	tx    CatalogTxRunner
	clock Clock
	log   zerolog.Logger
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository, tx CatalogTxRunner, clock Clock, log zerolog.Logger) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, tx: tx, clock: clock, log: log}
}

// Create crea una categoría. ValidationError si el nombre está vacío o el tipo es desconocido.
func (uc *CategoryUseCase) Create(ctx context.Context, siteID string, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	now := uc.clock()
	category := &entity.Category{
		ID:          uuid.New().String(),
		SiteID:      siteID,
		Name:        strings.TrimSpace(in.Name),
		Kind:        entity.CategoryKind(in.Kind),
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := inventory.ValidateCategory(category); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	uc.log.Info().Str("site_id", siteID).Str("category_id", category.ID).Msg("categoría creada")
	return dto.FromCategory(category), nil
}

// GetByID obtiene una categoría; NotFoundError si no existe en el sitio.
func (uc *CategoryUseCase) GetByID(ctx context.Context, siteID, id string) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(ctx, siteID, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.NewNotFoundError("category", id)
	}
	return dto.FromCategory(category), nil
}

// Update aplica un parche; NotFoundError si el id no existe.
func (uc *CategoryUseCase) Update(ctx context.Context, siteID, id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(ctx, siteID, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.NewNotFoundError("category", id)
	}
	if in.Name != nil {
		category.Name = strings.TrimSpace(*in.Name)
	}
	if in.Kind != nil {
		category.Kind = entity.CategoryKind(*in.Kind)
	}
	if in.Description != nil {
		category.Description = *in.Description
	}
	if err := inventory.ValidateCategory(category); err != nil {
		return nil, err
	}
	category.UpdatedAt = uc.clock()
	if err := uc.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	return dto.FromCategory(category), nil
}

// Delete elimina la categoría si ningún producto la referencia. La existencia, el conteo de
// referencias y el borrado ocurren en la misma transacción (la fila queda bloqueada).
func (uc *CategoryUseCase) Delete(ctx context.Context, siteID, id string) error {
	err := uc.tx.RunCatalog(ctx, func(categories repository.CategoryRepository, products repository.ProductRepository) error {
		category, err := categories.GetForUpdate(ctx, siteID, id)
		if err != nil {
			return err
		}
		if category == nil {
			return domain.NewNotFoundError("category", id)
		}
		refs, err := products.CountByCategory(ctx, siteID, id)
		if err != nil {
			return err
		}
		if refs > 0 {
			return &domain.ReferentialConstraintError{Entity: "category", ID: id, ReferencedBy: "products", Count: refs}
		}
		return categories.Delete(ctx, siteID, id)
	})
	if err != nil {
		return err
	}
	uc.log.Info().Str("site_id", siteID).Str("category_id", id).Msg("categoría eliminada")
	return nil
}

// List devuelve las categorías del sitio ordenadas por nombre.
func (uc *CategoryUseCase) List(ctx context.Context, siteID string) (*dto.CategoryListResponse, error) {
	list, err := uc.repo.ListBySite(ctx, siteID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Name != list[j].Name {
			return list[i].Name < list[j].Name
		}
		return list[i].ID < list[j].ID
	})
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *dto.FromCategory(c))
	}
	return &dto.CategoryListResponse{Items: items}, nil
}
