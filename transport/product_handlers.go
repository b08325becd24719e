package transport

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	appproduct "github.com/ksagri/agroexport-api/application/product"
	"github.com/ksagri/agroexport-api/constant"
	"github.com/ksagri/agroexport-api/model"
	utilsContext "github.com/ksagri/agroexport-api/utils/context"
	"github.com/ksagri/agroexport-api/utils/errors"
	validatorx "github.com/ksagri/agroexport-api/utils/validator"
)

// ListProducts serves the public catalog listing. Inactive items are only
// visible to an admin asking for them explicitly.
func (s *RestHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	values := r.URL.Query()

	filter := &model.ProductFilter{
		Category: values.Get("category"),
		Query:    model.ParseListQuery(values),
	}
	if raw := values.Get("featured"); raw != "" {
		featured := raw == "true"
		filter.Featured = &featured
	}
	if values.Get("includeInactive") == "true" {
		if authedUser, ok := utilsContext.GetUser(ctx); ok && authedUser.Role == constant.RoleAdmin {
			filter.IncludeInactive = true
		}
	}

	res, err := s.ProductApp.List(ctx, filter)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeList(w, res.Items, model.NewPagination(filter.Query, res.Total))
}

func (s *RestHandler) FeaturedProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	res, err := s.ProductApp.Featured(ctx, limit)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) ProductCategories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := s.ProductApp.Categories(ctx)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	res, err := s.ProductApp.Get(ctx, id)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actorID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		s.writeError(w, errors.SetCustomError(constant.ErrUnauthorized))
		return
	}

	req, image, err := s.parseProductForm(r, true)
	if err != nil {
		s.writeError(w, err)
		return
	}

	if err := validatorx.ValidateRequest(req); err != nil {
		s.writeError(w, err)
		return
	}

	res, err := s.ProductApp.Create(ctx, actorID, req, image)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeCreated(w, res, "Product created successfully")
}

func (s *RestHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	req, image, err := s.parseProductForm(r, false)
	if err != nil {
		s.writeError(w, err)
		return
	}

	update := toUpdateRequest(req, r)
	if err := validatorx.ValidateRequest(update); err != nil {
		s.writeError(w, err)
		return
	}

	res, err := s.ProductApp.Update(ctx, id, update, image)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeMessage(w, res, "Product updated successfully")
}

func (s *RestHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	if err := s.ProductApp.Delete(ctx, id); err != nil {
		s.writeError(w, err)
		return
	}

	writeMessage(w, nil, "Product deleted successfully")
}

// parseProductForm reads the multipart product payload: scalar fields, list
// fields (repeated form values), the optional nutrition JSON blob, and the
// image part. The image is validated for size and MIME type before any
// upload happens.
func (s *RestHandler) parseProductForm(r *http.Request, imageRequired bool) (*model.CreateProductRequest, *appproduct.ImageUpload, error) {
	if err := r.ParseMultipartForm(constant.MaxImageSize + 1<<20); err != nil {
		return nil, nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	req := &model.CreateProductRequest{
		Name:              r.FormValue("name"),
		Description:       r.FormValue("description"),
		Currency:          r.FormValue("currency"),
		Unit:              r.FormValue("unit"),
		Category:          r.FormValue("category"),
		Origin:            r.FormValue("origin"),
		HarvestSeason:     r.FormValue("harvestSeason"),
		ShelfLife:         r.FormValue("shelfLife"),
		PackagingOptions:  formList(r, "packagingOptions"),
		Certifications:    formList(r, "certifications"),
		Featured:          r.FormValue("featured") == "true",
	}

	if raw := r.FormValue("price"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, nil, errors.NewValidationError(errors.FieldError{Field: "price", Message: "price must be a number"})
		}
		req.Price = price
	}
	if raw := r.FormValue("availableQuantity"); raw != "" {
		qty, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, nil, errors.NewValidationError(errors.FieldError{Field: "availableQuantity", Message: "availableQuantity must be an integer"})
		}
		req.AvailableQuantity = qty
	}
	if raw := r.FormValue("nutritionalInfo"); raw != "" {
		var info model.NutritionalInfo
		if err := json.Unmarshal([]byte(raw), &info); err != nil {
			return nil, nil, errors.NewValidationError(errors.FieldError{Field: "nutritionalInfo", Message: "nutritionalInfo must be valid JSON"})
		}
		req.NutritionalInfo = &info
	}

	image, err := s.imagePart(r, imageRequired)
	if err != nil {
		return nil, nil, err
	}

	return req, image, nil
}

func (s *RestHandler) imagePart(r *http.Request, required bool) (*appproduct.ImageUpload, error) {
	file, header, err := r.FormFile("image")
	if err != nil {
		if required {
			return nil, errors.NewValidationError(errors.FieldError{Field: "image", Message: "product image is required"})
		}
		return nil, nil
	}

	if header.Size > constant.MaxImageSize {
		file.Close()
		return nil, errors.NewValidationError(errors.FieldError{Field: "image", Message: "image must not exceed 5 MB"})
	}
	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		file.Close()
		return nil, errors.NewValidationError(errors.FieldError{Field: "image", Message: "only image files are allowed"})
	}

	return &appproduct.ImageUpload{
		Filename:    header.Filename,
		ContentType: contentType,
		Body:        file,
	}, nil
}

func formList(r *http.Request, key string) []string {
	values := r.PostForm[key]
	if len(values) == 1 && strings.Contains(values[0], ",") {
		values = strings.Split(values[0], ",")
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// toUpdateRequest converts the flat form into a partial update: only fields
// actually present in the form are carried over.
func toUpdateRequest(req *model.CreateProductRequest, r *http.Request) *model.UpdateProductRequest {
	update := &model.UpdateProductRequest{}

	if _, ok := r.PostForm["name"]; ok {
		update.Name = &req.Name
	}
	if _, ok := r.PostForm["description"]; ok {
		update.Description = &req.Description
	}
	if _, ok := r.PostForm["price"]; ok {
		update.Price = &req.Price
	}
	if _, ok := r.PostForm["currency"]; ok {
		update.Currency = &req.Currency
	}
	if _, ok := r.PostForm["availableQuantity"]; ok {
		update.AvailableQuantity = &req.AvailableQuantity
	}
	if _, ok := r.PostForm["unit"]; ok {
		update.Unit = &req.Unit
	}
	if _, ok := r.PostForm["category"]; ok {
		update.Category = &req.Category
	}
	if _, ok := r.PostForm["origin"]; ok {
		update.Origin = &req.Origin
	}
	if _, ok := r.PostForm["harvestSeason"]; ok {
		update.HarvestSeason = &req.HarvestSeason
	}
	if _, ok := r.PostForm["shelfLife"]; ok {
		update.ShelfLife = &req.ShelfLife
	}
	if _, ok := r.PostForm["packagingOptions"]; ok {
		update.PackagingOptions = req.PackagingOptions
	}
	if _, ok := r.PostForm["certifications"]; ok {
		update.Certifications = req.Certifications
	}
	if req.NutritionalInfo != nil {
		update.NutritionalInfo = req.NutritionalInfo
	}
	if _, ok := r.PostForm["featured"]; ok {
		update.Featured = &req.Featured
	}
	if raw, ok := r.PostForm["active"]; ok && len(raw) > 0 {
		active := raw[0] == "true"
		update.Active = &active
	}

	return update
}
