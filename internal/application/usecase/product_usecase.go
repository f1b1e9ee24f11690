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

// ProductUseCase catálogo de productos. La cantidad se fija al crear; después solo cambia
// mediante el procesador de ajustes (inventory.AdjustStockUseCase).
type ProductUseCase struct {
	repo      repository.ProductRepository
	tx        CatalogTxRunner
	suppliers repository.SupplierDirectory
	clock     Clock
	log       zerolog.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	tx CatalogTxRunner,
	suppliers repository.SupplierDirectory,
	clock Clock,
	log zerolog.Logger,
) *ProductUseCase {
	return &ProductUseCase{repo: repo, tx: tx, suppliers: suppliers, clock: clock, log: log}
}

// Create valida el borrador y lo persiste. La categoría se resuelve dentro de la transacción.
func (uc *ProductUseCase) Create(ctx context.Context, siteID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	now := uc.clock()
	product := &entity.Product{
		ID:                      uuid.New().String(),
		SiteID:                  siteID,
		Name:                    strings.TrimSpace(in.Name),
		CategoryID:              in.CategoryID,
		Unit:                    in.Unit,
		Quantity:                in.Quantity,
		MinThreshold:            in.MinThreshold,
		MaxThreshold:            in.MaxThreshold,
		UnitCost:                in.UnitCost,
		SupplierID:              in.SupplierID,
		Location:                in.Location,
		ExpirationDate:          in.ExpirationDate,
		AverageDailyConsumption: in.DailyConsumption,
		AutoReorder:             in.AutoReorder,
		Version:                 1,
		CreatedAt:               now,
		UpdatedAt:               now,
	}
	if err := inventory.ValidateProduct(product); err != nil {
		return nil, err
	}
	if err := uc.checkSupplier(ctx, siteID, product); err != nil {
		return nil, err
	}
	err := uc.tx.RunCatalog(ctx, func(categories repository.CategoryRepository, products repository.ProductRepository) error {
		if err := resolveCategory(ctx, categories, siteID, product.CategoryID); err != nil {
			return err
		}
		return products.Create(ctx, product)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("site_id", siteID).Str("product_id", product.ID).Msg("producto creado")
	return dto.FromProduct(product), nil
}

// GetByID obtiene un producto; NotFoundError si no existe en el sitio.
func (uc *ProductUseCase) GetByID(ctx context.Context, siteID, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, siteID, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NewNotFoundError("product", id)
	}
	return dto.FromProduct(product), nil
}

// Update fusiona el parche y valida el resultado como en Create. La cantidad no es editable aquí.
func (uc *ProductUseCase) Update(ctx context.Context, siteID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if in.Quantity != nil {
		return nil, domain.NewValidationError("quantity", "la cantidad solo cambia mediante ajustes de inventario")
	}
	var updated *entity.Product
	err := uc.tx.RunCatalog(ctx, func(categories repository.CategoryRepository, products repository.ProductRepository) error {
		current, err := products.GetByID(ctx, siteID, id)
		if err != nil {
			return err
		}
		if current == nil {
			return domain.NewNotFoundError("product", id)
		}
		if in.Version != 0 && in.Version != current.Version {
			return domain.ErrConflict
		}
		product := current.Clone()
		applyProductPatch(product, in)
		if err := inventory.ValidateProduct(product); err != nil {
			return err
		}
		if err := resolveCategory(ctx, categories, siteID, product.CategoryID); err != nil {
			return err
		}
		if err := uc.checkSupplier(ctx, siteID, product); err != nil {
			return err
		}
		product.UpdatedAt = uc.clock()
		if err := products.Update(ctx, product); err != nil {
			return err
		}
		updated = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto.FromProduct(updated), nil
}

// Delete elimina el producto. No hay restricción referencial hacia productos.
func (uc *ProductUseCase) Delete(ctx context.Context, siteID, id string) error {
	product, err := uc.repo.GetByID(ctx, siteID, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.NewNotFoundError("product", id)
	}
	if err := uc.repo.Delete(ctx, siteID, id); err != nil {
		return err
	}
	uc.log.Info().Str("site_id", siteID).Str("product_id", id).Msg("producto eliminado")
	return nil
}

// List filtra por categoría y por subcadena del nombre (sin distinguir mayúsculas).
func (uc *ProductUseCase) List(ctx context.Context, siteID string, in dto.ProductFilterRequest) (*dto.ProductListResponse, error) {
	in.Normalize()
	filter := repository.ProductFilter{
		CategoryID:   in.CategoryID,
		NameContains: strings.TrimSpace(in.Name),
		Limit:        in.Limit,
		Offset:       in.Offset,
	}
	list, err := uc.repo.List(ctx, siteID, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *dto.FromProduct(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset},
	}, nil
}

// CompatibleSuppliers devuelve los proveedores activos compatibles con la categoría.
// Sin categoría, se cruza contra todas las categorías del sitio.
func (uc *ProductUseCase) CompatibleSuppliers(ctx context.Context, siteID, categoryID string) ([]dto.SupplierResponse, error) {
	var categoryIDs []string
	err := uc.tx.RunCatalog(ctx, func(categories repository.CategoryRepository, _ repository.ProductRepository) error {
		if categoryID != "" {
			if err := resolveCategory(ctx, categories, siteID, categoryID); err != nil {
				return err
			}
			categoryIDs = []string{categoryID}
			return nil
		}
		all, err := categories.ListBySite(ctx, siteID)
		if err != nil {
			return err
		}
		for _, c := range all {
			categoryIDs = append(categoryIDs, c.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(categoryIDs) == 0 {
		return []dto.SupplierResponse{}, nil
	}
	list, err := uc.suppliers.ListByCategoryCompatibility(ctx, siteID, categoryIDs)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		if !s.Active {
			continue
		}
		out = append(out, dto.SupplierResponse{ID: s.ID, Name: s.Name, CategoryIDs: s.CategoryIDs})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// checkSupplier: sin proveedor se permite (aunque no exista ninguno compatible);
// con proveedor, debe existir, estar activo y ser compatible con la categoría.
func (uc *ProductUseCase) checkSupplier(ctx context.Context, siteID string, p *entity.Product) error {
	if p.SupplierID == "" {
		return nil
	}
	supplier, err := uc.suppliers.GetByID(ctx, siteID, p.SupplierID)
	if err != nil {
		return err
	}
	if supplier == nil {
		return domain.NewValidationError("supplier_id", "proveedor inexistente")
	}
	if !supplier.Active || !supplier.CompatibleWith(p.CategoryID) {
		return domain.NewValidationError("supplier_id", "proveedor no compatible con la categoría")
	}
	return nil
}

func resolveCategory(ctx context.Context, categories repository.CategoryRepository, siteID, categoryID string) error {
	category, err := categories.GetByID(ctx, siteID, categoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.NewValidationError("category_id", "categoría inexistente")
	}
	return nil
}

func applyProductPatch(p *entity.Product, in dto.UpdateProductRequest) {
	if in.Name != nil {
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.CategoryID != nil {
		p.CategoryID = *in.CategoryID
	}
	if in.Unit != nil {
		p.Unit = *in.Unit
	}
	if in.MinThreshold != nil {
		p.MinThreshold = *in.MinThreshold
	}
	if in.MaxThreshold != nil {
		p.MaxThreshold = *in.MaxThreshold
	}
	if in.UnitCost != nil {
		p.UnitCost = *in.UnitCost
	}
	if in.SupplierID != nil {
		p.SupplierID = *in.SupplierID
	}
	if in.Location != nil {
		p.Location = *in.Location
	}
	if in.ClearExpirationDate {
		p.ExpirationDate = nil
	} else if in.ExpirationDate != nil {
		t := *in.ExpirationDate
		p.ExpirationDate = &t
	}
	if in.ClearDailyConsumption {
		p.AverageDailyConsumption = nil
	} else if in.DailyConsumption != nil {
		d := *in.DailyConsumption
		p.AverageDailyConsumption = &d
	}
	if in.AutoReorder != nil {
		p.AutoReorder = *in.AutoReorder
	}
}
