package product

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/ksagri/agroexport-api/model"
)

type SQL struct {
	conn *sqlx.DB
}

type ProductRepository interface {
	Create(ctx context.Context, data *model.ProductEntity) (*model.ProductEntity, error)
	GetByID(ctx context.Context, id uint64) (*model.ProductEntity, error)
	List(ctx context.Context, filter *model.ProductFilter) ([]model.ProductEntity, int64, error)
	Featured(ctx context.Context, limit int) ([]model.ProductEntity, error)
	Categories(ctx context.Context) ([]string, error)
	Update(ctx context.Context, data *model.ProductEntity) (bool, error)
	Delete(ctx context.Context, id uint64) (bool, error)
}

func NewProductRepository(conn *sqlx.DB) ProductRepository {
	return &SQL{conn: conn}
}

const productColumns = `id, name, description, price, currency, image_url, available_quantity, unit,
category, origin, harvest_season, shelf_life, packaging_options, certifications, nutritional_info,
featured, active, created_by, created_at, updated_at`

const insertProductQuery = `INSERT INTO product
(name, description, price, currency, image_url, available_quantity, unit, category, origin,
harvest_season, shelf_life, packaging_options, certifications, nutritional_info, featured, active,
created_by, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())`

const updateProductQuery = `UPDATE product SET
name = ?, description = ?, price = ?, currency = ?, image_url = ?, available_quantity = ?,
unit = ?, category = ?, origin = ?, harvest_season = ?, shelf_life = ?, packaging_options = ?,
certifications = ?, nutritional_info = ?, featured = ?, active = ?, updated_at = NOW()
WHERE id = ?`

var searchColumns = []string{"name", "description", "origin"}

var sortWhitelist = map[string]string{
	"createdAt":         "created_at",
	"updatedAt":         "updated_at",
	"name":              "name",
	"price":             "price",
	"availableQuantity": "available_quantity",
	"category":          "category",
	"featured":          "featured",
}

func buildWhere(filter *model.ProductFilter) (string, []any) {
	var sb strings.Builder
	sb.WriteString(" WHERE true")
	args := make([]any, 0, 6)

	if !filter.IncludeInactive {
		sb.WriteString(" AND active = true")
	}
	if filter.Category != "" {
		sb.WriteString(" AND category = ?")
		args = append(args, filter.Category)
	}
	if filter.Featured != nil {
		sb.WriteString(" AND featured = ?")
		args = append(args, *filter.Featured)
	}
	if s := filter.Query.Search; s != "" {
		parts := make([]string, 0, len(searchColumns))
		for _, col := range searchColumns {
			parts = append(parts, col+" LIKE ?")
			args = append(args, "%"+s+"%")
		}
		sb.WriteString(" AND (" + strings.Join(parts, " OR ") + ")")
	}

	return sb.String(), args
}

func orderClause(q model.ListQuery) string {
	col, ok := sortWhitelist[q.SortBy]
	if !ok {
		return " ORDER BY created_at DESC"
	}
	dir := "ASC"
	if strings.EqualFold(q.SortOrder, "desc") {
		dir = "DESC"
	}
	return " ORDER BY " + col + " " + dir
}

func (s *SQL) Create(ctx context.Context, data *model.ProductEntity) (*model.ProductEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertProductQuery,
		data.Name, data.Description, data.Price, data.Currency, data.ImageURL,
		data.AvailableQuantity, data.Unit, data.Category, data.Origin, data.HarvestSeason,
		data.ShelfLife, data.PackagingOptions, data.Certifications, data.NutritionalInfo,
		data.Featured, data.Active, data.CreatedByID)
	if err != nil {
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	return data, nil
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.ProductEntity, error) {
	query := "SELECT " + productColumns + " FROM product WHERE id = ?"

	var entity model.ProductEntity
	if err := s.conn.QueryRowxContext(ctx, query, id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) List(ctx context.Context, filter *model.ProductFilter) ([]model.ProductEntity, int64, error) {
	where, args := buildWhere(filter)

	query := "SELECT " + productColumns + " FROM product" + where + orderClause(filter.Query) + " LIMIT ? OFFSET ?"
	pageArgs := append(append([]any{}, args...), filter.Query.Limit, filter.Query.Offset())

	rows, err := s.conn.QueryxContext(ctx, query, pageArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]model.ProductEntity, 0)
	for rows.Next() {
		var it model.ProductEntity
		if err := rows.StructScan(&it); err != nil {
			return nil, 0, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := s.conn.GetContext(ctx, &total, "SELECT COUNT(*) FROM product"+where, args...); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (s *SQL) Featured(ctx context.Context, limit int) ([]model.ProductEntity, error) {
	query := "SELECT " + productColumns + " FROM product WHERE featured = true AND active = true ORDER BY created_at DESC LIMIT ?"

	rows, err := s.conn.QueryxContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ProductEntity, 0)
	for rows.Next() {
		var it model.ProductEntity
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (s *SQL) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	err := s.conn.SelectContext(ctx, &categories,
		"SELECT DISTINCT category FROM product WHERE active = true ORDER BY category")
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *SQL) Update(ctx context.Context, data *model.ProductEntity) (bool, error) {
	result, err := s.conn.ExecContext(ctx, updateProductQuery,
		data.Name, data.Description, data.Price, data.Currency, data.ImageURL,
		data.AvailableQuantity, data.Unit, data.Category, data.Origin, data.HarvestSeason,
		data.ShelfLife, data.PackagingOptions, data.Certifications, data.NutritionalInfo,
		data.Featured, data.Active, data.ID)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (s *SQL) Delete(ctx context.Context, id uint64) (bool, error) {
	result, err := s.conn.ExecContext(ctx, "DELETE FROM product WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
