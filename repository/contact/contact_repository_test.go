package contact

import (
	"reflect"
	"testing"

	"github.com/ksagri/agroexport-api/constant"
	"github.com/ksagri/agroexport-api/model"
)

func TestBuildWhere(t *testing.T) {
	tests := []struct {
		name     string
		filter   *model.ContactFilter
		want     string
		wantArgs []any
	}{
		{
			name:     "empty filter matches everything",
			filter:   &model.ContactFilter{},
			want:     " WHERE true",
			wantArgs: []any{},
		},
		{
			name: "status and urgency combine with AND",
			filter: &model.ContactFilter{
				Status:  constant.ContactStatusNew,
				Urgency: constant.UrgencyHigh,
			},
			want:     " WHERE true AND status = ? AND urgency = ?",
			wantArgs: []any{constant.ContactStatusNew, constant.UrgencyHigh},
		},
		{
			name: "inquiry type filter",
			filter: &model.ContactFilter{
				InquiryType: constant.InquiryTypeBulkOrders,
			},
			want:     " WHERE true AND inquiry_type = ?",
			wantArgs: []any{constant.InquiryTypeBulkOrders},
		},
		{
			name: "search expands to one LIKE per column",
			filter: &model.ContactFilter{
				Query: model.ListQuery{Search: "cinnamon"},
			},
			want: " WHERE true AND (first_name LIKE ? OR last_name LIKE ? OR email LIKE ? OR company LIKE ? OR subject LIKE ?)",
			wantArgs: []any{
				"%cinnamon%", "%cinnamon%", "%cinnamon%", "%cinnamon%", "%cinnamon%",
			},
		},
		{
			name: "status plus search keeps filter args first",
			filter: &model.ContactFilter{
				Status: constant.ContactStatusResponded,
				Query:  model.ListQuery{Search: "mueller"},
			},
			want: " WHERE true AND status = ? AND (first_name LIKE ? OR last_name LIKE ? OR email LIKE ? OR company LIKE ? OR subject LIKE ?)",
			wantArgs: []any{
				constant.ContactStatusResponded,
				"%mueller%", "%mueller%", "%mueller%", "%mueller%", "%mueller%",
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, args := buildWhere(tt.filter)
			if got != tt.want {
				t.Fatalf("buildWhere() = %q, want %q", got, tt.want)
			}
			if !reflect.DeepEqual(args, tt.wantArgs) {
				t.Fatalf("buildWhere() args = %v, want %v", args, tt.wantArgs)
			}
		})
	}
}

func TestOrderClause(t *testing.T) {
	tests := []struct {
		name  string
		query model.ListQuery
		want  string
	}{
		{
			name:  "empty sort falls back to newest first",
			query: model.ListQuery{},
			want:  " ORDER BY created_at DESC",
		},
		{
			name:  "unknown sort key falls back to newest first",
			query: model.ListQuery{SortBy: "status; DROP TABLE contact", SortOrder: "asc"},
			want:  " ORDER BY created_at DESC",
		},
		{
			name:  "whitelisted key maps to its column",
			query: model.ListQuery{SortBy: "urgency", SortOrder: "desc"},
			want:  " ORDER BY urgency DESC",
		},
		{
			name:  "direction defaults to ascending",
			query: model.ListQuery{SortBy: "status"},
			want:  " ORDER BY status ASC",
		},
		{
			name:  "direction is case-insensitive",
			query: model.ListQuery{SortBy: "createdAt", SortOrder: "DESC"},
			want:  " ORDER BY created_at DESC",
		},
		{
			name:  "unknown direction reads as ascending",
			query: model.ListQuery{SortBy: "createdAt", SortOrder: "sideways"},
			want:  " ORDER BY created_at ASC",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := orderClause(tt.query); got != tt.want {
				t.Fatalf("orderClause() = %q, want %q", got, tt.want)
			}
		})
	}
}
