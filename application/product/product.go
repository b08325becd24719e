package product

import (
	"context"
	"io"

	"github.com/ksagri/agroexport-api/constant"
	"github.com/ksagri/agroexport-api/model"
	productrepo "github.com/ksagri/agroexport-api/repository/product"
	userrepo "github.com/ksagri/agroexport-api/repository/user"
	"github.com/ksagri/agroexport-api/thirdparty/storage"
	"github.com/ksagri/agroexport-api/utils/errors"
	"github.com/ksagri/agroexport-api/utils/logger"
	"go.uber.org/zap"
)

// DefaultFeaturedLimit bounds the featured subset on the landing endpoint.
const DefaultFeaturedLimit = 6

// ImageUpload is a validated multipart image awaiting storage.
type ImageUpload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

type ProductApp interface {
	List(ctx context.Context, filter *model.ProductFilter) (*model.ProductListResult, error)
	Featured(ctx context.Context, limit int) ([]model.ProductEntity, error)
	Categories(ctx context.Context) ([]string, error)
	Get(ctx context.Context, id uint64) (*model.ProductEntity, error)
	Create(ctx context.Context, actorID uint64, req *model.CreateProductRequest, image *ImageUpload) (*model.ProductEntity, error)
	Update(ctx context.Context, id uint64, req *model.UpdateProductRequest, image *ImageUpload) (*model.ProductEntity, error)
	Delete(ctx context.Context, id uint64) error
}

type productAppImpl struct {
	productRepo productrepo.ProductRepository
	userRepo    userrepo.UserRepository
	images      storage.ImageStore
}

func NewProductApp(productRepo productrepo.ProductRepository, userRepo userrepo.UserRepository, images storage.ImageStore) ProductApp {
	return &productAppImpl{
		productRepo: productRepo,
		userRepo:    userRepo,
		images:      images,
	}
}

func (s *productAppImpl) List(ctx context.Context, filter *model.ProductFilter) (*model.ProductListResult, error) {
	items, total, err := s.productRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ListProducts] err productRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.populateCreators(ctx, items); err != nil {
		logger.Error("[ListProducts] err populateCreators", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.ProductListResult{Items: items, Total: total}, nil
}

func (s *productAppImpl) Featured(ctx context.Context, limit int) ([]model.ProductEntity, error) {
	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}

	items, err := s.productRepo.Featured(ctx, limit)
	if err != nil {
		logger.Error("[FeaturedProducts] err productRepo.Featured", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return items, nil
}

func (s *productAppImpl) Categories(ctx context.Context) ([]string, error) {
	categories, err := s.productRepo.Categories(ctx)
	if err != nil {
		logger.Error("[ProductCategories] err productRepo.Categories", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return categories, nil
}

func (s *productAppImpl) Get(ctx context.Context, id uint64) (*model.ProductEntity, error) {
	entity, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetProduct] err productRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if err := s.populateCreator(ctx, entity); err != nil {
		logger.Error("[GetProduct] err populateCreator", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return entity, nil
}

func (s *productAppImpl) Create(ctx context.Context, actorID uint64, req *model.CreateProductRequest, image *ImageUpload) (*model.ProductEntity, error) {
	if image == nil {
		return nil, errors.NewValidationError(errors.FieldError{
			Field:   "image",
			Message: "product image is required",
		})
	}

	imageURL, err := s.images.Upload(ctx, image.Filename, image.ContentType, image.Body)
	if err != nil {
		logger.Error("[CreateProduct] err images.Upload", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	entity := &model.ProductEntity{
		Name:              req.Name,
		Description:       req.Description,
		Price:             req.Price,
		Currency:          req.Currency,
		ImageURL:          imageURL,
		AvailableQuantity: req.AvailableQuantity,
		Unit:              req.Unit,
		Category:          req.Category,
		Origin:            req.Origin,
		HarvestSeason:     req.HarvestSeason,
		ShelfLife:         req.ShelfLife,
		PackagingOptions:  req.PackagingOptions,
		Certifications:    req.Certifications,
		NutritionalInfo:   req.NutritionalInfo,
		Featured:          req.Featured,
		Active:            true,
		CreatedByID:       &actorID,
	}
	if entity.Currency == "" {
		entity.Currency = constant.CurrencyUSD
	}
	if entity.Origin == "" {
		entity.Origin = constant.DefaultOrigin
	}

	entity, err = s.productRepo.Create(ctx, entity)
	if err != nil {
		logger.Error("[CreateProduct] err productRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return entity, nil
}

func (s *productAppImpl) Update(ctx context.Context, id uint64, req *model.UpdateProductRequest, image *ImageUpload) (*model.ProductEntity, error) {
	entity, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[UpdateProduct] err productRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if image != nil {
		imageURL, err := s.images.Upload(ctx, image.Filename, image.ContentType, image.Body)
		if err != nil {
			logger.Error("[UpdateProduct] err images.Upload", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		entity.ImageURL = imageURL
	}

	applyUpdate(entity, req)

	if _, err := s.productRepo.Update(ctx, entity); err != nil {
		logger.Error("[UpdateProduct] err productRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return s.Get(ctx, id)
}

func (s *productAppImpl) Delete(ctx context.Context, id uint64) error {
	deleted, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		logger.Error("[DeleteProduct] err productRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !deleted {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	return nil
}

// applyUpdate merges the supplied fields onto the stored entity.
func applyUpdate(entity *model.ProductEntity, req *model.UpdateProductRequest) {
	if req.Name != nil {
		entity.Name = *req.Name
	}
	if req.Description != nil {
		entity.Description = *req.Description
	}
	if req.Price != nil {
		entity.Price = *req.Price
	}
	if req.Currency != nil {
		entity.Currency = *req.Currency
	}
	if req.AvailableQuantity != nil {
		entity.AvailableQuantity = *req.AvailableQuantity
	}
	if req.Unit != nil {
		entity.Unit = *req.Unit
	}
	if req.Category != nil {
		entity.Category = *req.Category
	}
	if req.Origin != nil {
		entity.Origin = *req.Origin
	}
	if req.HarvestSeason != nil {
		entity.HarvestSeason = *req.HarvestSeason
	}
	if req.ShelfLife != nil {
		entity.ShelfLife = *req.ShelfLife
	}
	if req.PackagingOptions != nil {
		entity.PackagingOptions = req.PackagingOptions
	}
	if req.Certifications != nil {
		entity.Certifications = req.Certifications
	}
	if req.NutritionalInfo != nil {
		entity.NutritionalInfo = req.NutritionalInfo
	}
	if req.Featured != nil {
		entity.Featured = *req.Featured
	}
	if req.Active != nil {
		entity.Active = *req.Active
	}
}

func (s *productAppImpl) populateCreator(ctx context.Context, entity *model.ProductEntity) error {
	if entity.CreatedByID == nil {
		return nil
	}
	refs, err := s.userRepo.GetRefs(ctx, []uint64{*entity.CreatedByID})
	if err != nil {
		return err
	}
	if ref, ok := refs[*entity.CreatedByID]; ok {
		entity.CreatedBy = &ref
	}
	return nil
}

func (s *productAppImpl) populateCreators(ctx context.Context, items []model.ProductEntity) error {
	ids := make([]uint64, 0, len(items))
	seen := make(map[uint64]bool)
	for i := range items {
		if id := items[i].CreatedByID; id != nil && !seen[*id] {
			seen[*id] = true
			ids = append(ids, *id)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	refs, err := s.userRepo.GetRefs(ctx, ids)
	if err != nil {
		return err
	}
	for i := range items {
		if id := items[i].CreatedByID; id != nil {
			if ref, ok := refs[*id]; ok {
				items[i].CreatedBy = &ref
			}
		}
	}
	return nil
}
