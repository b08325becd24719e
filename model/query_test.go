package model_test

import (
	"net/url"
	"testing"

	"github.com/ksagri/agroexport-api/model"
)

func TestParseListQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  model.ListQuery
	}{
		{
			name:  "empty query uses defaults",
			query: "",
			want:  model.ListQuery{Page: 1, Limit: 10},
		},
		{
			name:  "explicit values parsed",
			query: "page=3&limit=25&search=mango&sortBy=price&sortOrder=desc",
			want:  model.ListQuery{Page: 3, Limit: 25, Search: "mango", SortBy: "price", SortOrder: "desc"},
		},
		{
			name:  "non-numeric page and limit fall back",
			query: "page=abc&limit=xyz",
			want:  model.ListQuery{Page: 1, Limit: 10},
		},
		{
			name:  "zero and negative values fall back",
			query: "page=0&limit=-5",
			want:  model.ListQuery{Page: 1, Limit: 10},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			if err != nil {
				t.Fatalf("ParseQuery() error = %v", err)
			}
			if got := model.ParseListQuery(values); got != tt.want {
				t.Fatalf("ParseListQuery() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestListQuery_Offset(t *testing.T) {
	tests := []struct {
		name  string
		query model.ListQuery
		want  int
	}{
		{name: "first page starts at zero", query: model.ListQuery{Page: 1, Limit: 10}, want: 0},
		{name: "later page skips earlier rows", query: model.ListQuery{Page: 4, Limit: 25}, want: 75},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.query.Offset(); got != tt.want {
				t.Fatalf("Offset() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name      string
		query     model.ListQuery
		total     int64
		wantPages int64
	}{
		{name: "exact multiple", query: model.ListQuery{Page: 1, Limit: 10}, total: 30, wantPages: 3},
		{name: "partial last page rounds up", query: model.ListQuery{Page: 1, Limit: 10}, total: 31, wantPages: 4},
		{name: "empty result has zero pages", query: model.ListQuery{Page: 1, Limit: 10}, total: 0, wantPages: 0},
		{name: "single row", query: model.ListQuery{Page: 1, Limit: 10}, total: 1, wantPages: 1},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := model.NewPagination(tt.query, tt.total)
			if got.Pages != tt.wantPages {
				t.Fatalf("NewPagination() pages = %d, want %d", got.Pages, tt.wantPages)
			}
			if got.Total != tt.total || got.Page != tt.query.Page || got.Limit != tt.query.Limit {
				t.Fatalf("NewPagination() = %+v", got)
			}
		})
	}
}
