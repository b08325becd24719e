package user

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/ksagri/agroexport-api/model"
)

type SQL struct {
	conn *sqlx.DB
}

type UserRepository interface {
	Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error)
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
	List(ctx context.Context, filter *model.UserFilter) ([]model.UserEntity, int64, error)
	GetRefs(ctx context.Context, ids []uint64) (map[uint64]model.UserRef, error)
	UpdateProfile(ctx context.Context, id uint64, req *model.UpdateProfileRequest) (bool, error)
	UpdatePassword(ctx context.Context, id uint64, passwordHash string) error
	RecordFailedLogin(ctx context.Context, id uint64, attempts int, lockedUntil *time.Time) error
	RecordLogin(ctx context.Context, id uint64) error
	Delete(ctx context.Context, id uint64) (bool, error)
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const userColumns = `id, first_name, last_name, email, password_hash, phone, company, country,
business_type, role, active, failed_attempts, locked_until, last_login, created_at, updated_at`

const insertUserQuery = `INSERT INTO user
(first_name, last_name, email, password_hash, phone, company, country, business_type, role, active, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, true, NOW())`

var searchColumns = []string{"first_name", "last_name", "email", "company"}

var sortWhitelist = map[string]string{
	"createdAt": "created_at",
	"firstName": "first_name",
	"lastName":  "last_name",
	"email":     "email",
	"country":   "country",
	"role":      "role",
	"lastLogin": "last_login",
}

func buildWhere(filter *model.UserFilter) (string, []any) {
	var sb strings.Builder
	sb.WriteString(" WHERE true")
	args := make([]any, 0, 6)

	if filter.ID != 0 {
		sb.WriteString(" AND id = ?")
		args = append(args, filter.ID)
	}
	if filter.Email != "" {
		sb.WriteString(" AND email = ?")
		args = append(args, filter.Email)
	}
	if filter.Role != "" {
		sb.WriteString(" AND role = ?")
		args = append(args, filter.Role)
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

func (s *SQL) Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertUserQuery,
		data.FirstName, data.LastName, data.Email, data.PasswordHash, data.Phone,
		data.Company, data.Country, data.BusinessType, data.Role)
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

func (s *SQL) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	where, args := buildWhere(filter)
	query := "SELECT " + userColumns + " FROM user" + where

	var entity model.UserEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) List(ctx context.Context, filter *model.UserFilter) ([]model.UserEntity, int64, error) {
	where, args := buildWhere(filter)

	query := "SELECT " + userColumns + " FROM user" + where + orderClause(filter.Query) + " LIMIT ? OFFSET ?"
	pageArgs := append(append([]any{}, args...), filter.Query.Limit, filter.Query.Offset())

	rows, err := s.conn.QueryxContext(ctx, query, pageArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]model.UserEntity, 0)
	for rows.Next() {
		var it model.UserEntity
		if err := rows.StructScan(&it); err != nil {
			return nil, 0, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := s.conn.GetContext(ctx, &total, "SELECT COUNT(*) FROM user"+where, args...); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (s *SQL) GetRefs(ctx context.Context, ids []uint64) (map[uint64]model.UserRef, error) {
	refs := make(map[uint64]model.UserRef, len(ids))
	if len(ids) == 0 {
		return refs, nil
	}

	query, args, err := sqlx.In("SELECT id, first_name, last_name FROM user WHERE id IN (?)", ids)
	if err != nil {
		return nil, err
	}

	rows, err := s.conn.QueryxContext(ctx, s.conn.Rebind(query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var ref model.UserRef
		if err := rows.StructScan(&ref); err != nil {
			return nil, err
		}
		refs[ref.ID] = ref
	}
	return refs, rows.Err()
}

func (s *SQL) UpdateProfile(ctx context.Context, id uint64, req *model.UpdateProfileRequest) (bool, error) {
	sets := make([]string, 0, 6)
	args := make([]any, 0, 7)

	if req.FirstName != nil {
		sets = append(sets, "first_name = ?")
		args = append(args, *req.FirstName)
	}
	if req.LastName != nil {
		sets = append(sets, "last_name = ?")
		args = append(args, *req.LastName)
	}
	if req.Phone != nil {
		sets = append(sets, "phone = ?")
		args = append(args, *req.Phone)
	}
	if req.Company != nil {
		sets = append(sets, "company = ?")
		args = append(args, *req.Company)
	}
	if req.Country != nil {
		sets = append(sets, "country = ?")
		args = append(args, *req.Country)
	}
	if req.BusinessType != nil {
		sets = append(sets, "business_type = ?")
		args = append(args, *req.BusinessType)
	}
	if len(sets) == 0 {
		var exists int
		if err := s.conn.GetContext(ctx, &exists, "SELECT COUNT(*) FROM user WHERE id = ?", id); err != nil {
			return false, err
		}
		return exists > 0, nil
	}
	sets = append(sets, "updated_at = NOW()")

	query := "UPDATE user SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	args = append(args, id)

	result, err := s.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (s *SQL) UpdatePassword(ctx context.Context, id uint64, passwordHash string) error {
	_, err := s.conn.ExecContext(ctx,
		"UPDATE user SET password_hash = ?, updated_at = NOW() WHERE id = ?", passwordHash, id)
	return err
}

func (s *SQL) RecordFailedLogin(ctx context.Context, id uint64, attempts int, lockedUntil *time.Time) error {
	_, err := s.conn.ExecContext(ctx,
		"UPDATE user SET failed_attempts = ?, locked_until = ? WHERE id = ?", attempts, lockedUntil, id)
	return err
}

func (s *SQL) RecordLogin(ctx context.Context, id uint64) error {
	_, err := s.conn.ExecContext(ctx,
		"UPDATE user SET failed_attempts = 0, locked_until = NULL, last_login = NOW() WHERE id = ?", id)
	return err
}

func (s *SQL) Delete(ctx context.Context, id uint64) (bool, error) {
	result, err := s.conn.ExecContext(ctx, "DELETE FROM user WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
