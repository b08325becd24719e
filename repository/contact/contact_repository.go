package contact

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

type ContactRepository interface {
	Create(ctx context.Context, data *model.ContactEntity) (*model.ContactEntity, error)
	GetByID(ctx context.Context, id uint64) (*model.ContactEntity, error)
	List(ctx context.Context, filter *model.ContactFilter) ([]model.ContactEntity, int64, error)
	CountByStatus(ctx context.Context, filter *model.ContactFilter) (map[string]int64, error)
	Update(ctx context.Context, id uint64, req *model.UpdateContactRequest) (bool, error)
	UpdateStatus(ctx context.Context, id uint64, status string) (bool, error)
	Delete(ctx context.Context, id uint64) (bool, error)
	Overview(ctx context.Context) (*model.ContactOverview, error)
	CountByInquiryType(ctx context.Context) ([]model.InquiryTypeCount, error)
	MonthlyCounts(ctx context.Context, months int) ([]model.MonthlyCount, error)
}

func NewContactRepository(conn *sqlx.DB) ContactRepository {
	return &SQL{conn: conn}
}

const contactColumns = `id, first_name, last_name, email, phone, company, country, subject, message,
inquiry_type, products_of_interest, estimated_quantity, preferred_contact_method, urgency, status,
assigned_to, response_notes, follow_up_date, ip_address, user_agent, created_at, updated_at`

const insertContactQuery = `INSERT INTO contact
(first_name, last_name, email, phone, company, country, subject, message, inquiry_type,
products_of_interest, estimated_quantity, preferred_contact_method, urgency, status,
ip_address, user_agent, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())`

// searchColumns is the fixed set of text fields an inquiry search term is
// matched against.
var searchColumns = []string{"first_name", "last_name", "email", "company", "subject"}

// sortWhitelist maps exposed sort keys to columns. Unknown keys fall back to
// the default ordering instead of being passed through.
var sortWhitelist = map[string]string{
	"createdAt":   "created_at",
	"updatedAt":   "updated_at",
	"firstName":   "first_name",
	"lastName":    "last_name",
	"email":       "email",
	"country":     "country",
	"subject":     "subject",
	"inquiryType": "inquiry_type",
	"urgency":     "urgency",
	"status":      "status",
}

// buildWhere translates the filter into a WHERE fragment and its args. The
// same predicate backs the page, the total and the status histogram.
func buildWhere(filter *model.ContactFilter) (string, []any) {
	var sb strings.Builder
	sb.WriteString(" WHERE true")
	args := make([]any, 0, 8)

	if filter.Status != "" {
		sb.WriteString(" AND status = ?")
		args = append(args, filter.Status)
	}
	if filter.InquiryType != "" {
		sb.WriteString(" AND inquiry_type = ?")
		args = append(args, filter.InquiryType)
	}
	if filter.Urgency != "" {
		sb.WriteString(" AND urgency = ?")
		args = append(args, filter.Urgency)
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

// orderClause resolves sortBy/sortOrder against the whitelist; the default
// ordering is most-recently-created first.
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

func (s *SQL) Create(ctx context.Context, data *model.ContactEntity) (*model.ContactEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertContactQuery,
		data.FirstName, data.LastName, data.Email, data.Phone, data.Company, data.Country,
		data.Subject, data.Message, data.InquiryType, data.ProductsOfInterest,
		data.EstimatedQuantity, data.PreferredContactMethod, data.Urgency, data.Status,
		data.IPAddress, data.UserAgent)
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

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.ContactEntity, error) {
	query := "SELECT " + contactColumns + " FROM contact WHERE id = ?"

	var entity model.ContactEntity
	if err := s.conn.QueryRowxContext(ctx, query, id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) List(ctx context.Context, filter *model.ContactFilter) ([]model.ContactEntity, int64, error) {
	where, args := buildWhere(filter)

	query := "SELECT " + contactColumns + " FROM contact" + where + orderClause(filter.Query) + " LIMIT ? OFFSET ?"
	pageArgs := append(append([]any{}, args...), filter.Query.Limit, filter.Query.Offset())

	rows, err := s.conn.QueryxContext(ctx, query, pageArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]model.ContactEntity, 0)
	for rows.Next() {
		var it model.ContactEntity
		if err := rows.StructScan(&it); err != nil {
			return nil, 0, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := s.conn.GetContext(ctx, &total, "SELECT COUNT(*) FROM contact"+where, args...); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (s *SQL) CountByStatus(ctx context.Context, filter *model.ContactFilter) (map[string]int64, error) {
	where, args := buildWhere(filter)
	query := "SELECT status, COUNT(*) AS count FROM contact" + where + " GROUP BY status"

	rows, err := s.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

func (s *SQL) Update(ctx context.Context, id uint64, req *model.UpdateContactRequest) (bool, error) {
	sets := make([]string, 0, 5)
	args := make([]any, 0, 6)

	if req.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, *req.Status)
	}
	if req.AssignedTo != nil {
		sets = append(sets, "assigned_to = ?")
		args = append(args, *req.AssignedTo)
	}
	if req.ResponseNotes != nil {
		sets = append(sets, "response_notes = ?")
		args = append(args, *req.ResponseNotes)
	}
	if req.FollowUpDate != nil {
		sets = append(sets, "follow_up_date = ?")
		args = append(args, *req.FollowUpDate)
	}
	if len(sets) == 0 {
		// nothing to write, but the row must still exist
		var exists int
		if err := s.conn.GetContext(ctx, &exists, "SELECT COUNT(*) FROM contact WHERE id = ?", id); err != nil {
			return false, err
		}
		return exists > 0, nil
	}
	sets = append(sets, "updated_at = NOW()")

	query := "UPDATE contact SET " + strings.Join(sets, ", ") + " WHERE id = ?"
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

func (s *SQL) UpdateStatus(ctx context.Context, id uint64, status string) (bool, error) {
	result, err := s.conn.ExecContext(ctx,
		"UPDATE contact SET status = ?, updated_at = NOW() WHERE id = ?", status, id)
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
	result, err := s.conn.ExecContext(ctx, "DELETE FROM contact WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

const overviewQuery = `SELECT
COUNT(*) AS total_messages,
COALESCE(SUM(status = 'new'), 0) AS new_messages,
COALESCE(SUM(status = 'in-progress'), 0) AS in_progress_messages,
COALESCE(SUM(status = 'responded'), 0) AS responded_messages,
COALESCE(SUM(status = 'closed'), 0) AS closed_messages
FROM contact`

func (s *SQL) Overview(ctx context.Context) (*model.ContactOverview, error) {
	var overview model.ContactOverview
	if err := s.conn.GetContext(ctx, &overview, overviewQuery); err != nil {
		return nil, err
	}
	return &overview, nil
}

func (s *SQL) CountByInquiryType(ctx context.Context) ([]model.InquiryTypeCount, error) {
	query := `SELECT inquiry_type, COUNT(*) AS count FROM contact GROUP BY inquiry_type ORDER BY count DESC`

	rows, err := s.conn.QueryxContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make([]model.InquiryTypeCount, 0)
	for rows.Next() {
		var c model.InquiryTypeCount
		if err := rows.StructScan(&c); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

func (s *SQL) MonthlyCounts(ctx context.Context, months int) ([]model.MonthlyCount, error) {
	query := `SELECT YEAR(created_at) AS year, MONTH(created_at) AS month, COUNT(*) AS count
FROM contact GROUP BY YEAR(created_at), MONTH(created_at)
ORDER BY year DESC, month DESC LIMIT ?`

	rows, err := s.conn.QueryxContext(ctx, query, months)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make([]model.MonthlyCount, 0)
	for rows.Next() {
		var c model.MonthlyCount
		if err := rows.StructScan(&c); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}
