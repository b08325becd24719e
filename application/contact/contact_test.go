package contact_test

import (
	"context"
	"errors"
	"testing"
	"time"

	appcontact "github.com/ksagri/agroexport-api/application/contact"
	"github.com/ksagri/agroexport-api/constant"
	contactmocks "github.com/ksagri/agroexport-api/mocks/repository/contact"
	usermocks "github.com/ksagri/agroexport-api/mocks/repository/user"
	rabbitmocks "github.com/ksagri/agroexport-api/mocks/thirdparty/rabbitmq"
	"github.com/ksagri/agroexport-api/model"
	"github.com/ksagri/agroexport-api/thirdparty/rabbitmq"
	cerr "github.com/ksagri/agroexport-api/utils/errors"
	"github.com/stretchr/testify/mock"
)

func TestContactApp_Create(t *testing.T) {
	type fields struct {
		contactRepo *contactmocks.ContactRepository
		userRepo    *usermocks.UserRepository
		publisher   *rabbitmocks.FollowUpPublisher
	}
	type args struct {
		ctx  context.Context
		req  *model.CreateContactRequest
		prov appcontact.Provenance
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.ContactEntity
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: defaults and provenance stamped",
			fields: fields{
				contactRepo: contactmocks.NewContactRepository(t),
				userRepo:    usermocks.NewUserRepository(t),
				publisher:   rabbitmocks.NewFollowUpPublisher(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.CreateContactRequest{
					FirstName:   "Hans",
					LastName:    "Mueller",
					Email:       "hans@example.de",
					Country:     "Germany",
					Subject:     "Cinnamon bulk pricing",
					Message:     "We are interested in importing Ceylon cinnamon in bulk quantities.",
					InquiryType: constant.InquiryTypeBulkOrders,
				},
				prov: appcontact.Provenance{
					IPAddress: "203.0.113.7",
					UserAgent: "curl/8.0",
				},
			},
			mockCall: func(f fields) {
				f.contactRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(ent *model.ContactEntity) bool {
						return ent.Status == constant.ContactStatusNew &&
							ent.Urgency == constant.UrgencyMedium &&
							ent.PreferredContactMethod == constant.ContactMethodEmail &&
							ent.IPAddress == "203.0.113.7" &&
							ent.UserAgent == "curl/8.0"
					})).
					Return(&model.ContactEntity{
						ID:          10,
						FirstName:   "Hans",
						LastName:    "Mueller",
						Email:       "hans@example.de",
						Status:      constant.ContactStatusNew,
						Urgency:     constant.UrgencyMedium,
						InquiryType: constant.InquiryTypeBulkOrders,
					}, nil).
					Once()
			},
			want: &model.ContactEntity{
				ID:     10,
				Status: constant.ContactStatusNew,
			},
			wantErr: false,
		},
		{
			name: "success: explicit urgency is kept",
			fields: fields{
				contactRepo: contactmocks.NewContactRepository(t),
				userRepo:    usermocks.NewUserRepository(t),
				publisher:   rabbitmocks.NewFollowUpPublisher(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.CreateContactRequest{
					FirstName:   "Hans",
					LastName:    "Mueller",
					Email:       "hans@example.de",
					Country:     "Germany",
					Subject:     "Urgent shipment question",
					Message:     "Our last shipment is delayed at customs, please advise urgently.",
					InquiryType: constant.InquiryTypeOther,
					Urgency:     constant.UrgencyUrgent,
				},
			},
			mockCall: func(f fields) {
				f.contactRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(ent *model.ContactEntity) bool {
						return ent.Urgency == constant.UrgencyUrgent
					})).
					Return(&model.ContactEntity{
						ID:      11,
						Status:  constant.ContactStatusNew,
						Urgency: constant.UrgencyUrgent,
					}, nil).
					Once()
			},
			want: &model.ContactEntity{
				ID:     11,
				Status: constant.ContactStatusNew,
			},
			wantErr: false,
		},
		{
			name: "error: repository Create returns error",
			fields: fields{
				contactRepo: contactmocks.NewContactRepository(t),
				userRepo:    usermocks.NewUserRepository(t),
				publisher:   rabbitmocks.NewFollowUpPublisher(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.CreateContactRequest{
					FirstName:   "Hans",
					LastName:    "Mueller",
					Email:       "hans@example.de",
					Country:     "Germany",
					Subject:     "Cinnamon bulk pricing",
					Message:     "We are interested in importing Ceylon cinnamon in bulk quantities.",
					InquiryType: constant.InquiryTypeBulkOrders,
				},
			},
			mockCall: func(f fields) {
				f.contactRepo.
					On("Create", mock.Anything, mock.AnythingOfType("*model.ContactEntity")).
					Return(nil, errors.New("db error")).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := appcontact.NewContactApp(tt.fields.contactRepo, tt.fields.userRepo, tt.fields.publisher)

			got, err := app.Create(tt.args.ctx, tt.args.req, tt.args.prov)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Create() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got.ID != tt.want.ID || got.Status != tt.want.Status {
				t.Fatalf("Create() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestContactApp_List(t *testing.T) {
	adminID := uint64(3)

	type fields struct {
		contactRepo *contactmocks.ContactRepository
		userRepo    *usermocks.UserRepository
	}
	tests := []struct {
		name     string
		fields   fields
		filter   *model.ContactFilter
		mockCall func(f fields)
		want     *model.ContactListResult
		wantErr  bool
	}{
		{
			name: "success: page with histogram and assignees",
			fields: fields{
				contactRepo: contactmocks.NewContactRepository(t),
				userRepo:    usermocks.NewUserRepository(t),
			},
			filter: &model.ContactFilter{
				Status: constant.ContactStatusNew,
				Query:  model.ListQuery{Page: 1, Limit: 10},
			},
			mockCall: func(f fields) {
				f.contactRepo.
					On("List", mock.Anything, mock.AnythingOfType("*model.ContactFilter")).
					Return([]model.ContactEntity{
						{ID: 1, Status: constant.ContactStatusNew},
						{ID: 2, Status: constant.ContactStatusNew, AssignedToID: &adminID},
					}, int64(12), nil).
					Once()
				f.contactRepo.
					On("CountByStatus", mock.Anything, mock.AnythingOfType("*model.ContactFilter")).
					Return(map[string]int64{constant.ContactStatusNew: 12}, nil).
					Once()
				f.userRepo.
					On("GetRefs", mock.Anything, []uint64{3}).
					Return(map[uint64]model.UserRef{
						3: {ID: 3, FirstName: "Admin", LastName: "User"},
					}, nil).
					Once()
			},
			want: &model.ContactListResult{
				Total:        12,
				StatusCounts: map[string]int64{constant.ContactStatusNew: 12},
			},
			wantErr: false,
		},
		{
			name: "success: no assignees skips the ref lookup",
			fields: fields{
				contactRepo: contactmocks.NewContactRepository(t),
				userRepo:    usermocks.NewUserRepository(t),
			},
			filter: &model.ContactFilter{Query: model.ListQuery{Page: 1, Limit: 10}},
			mockCall: func(f fields) {
				f.contactRepo.
					On("List", mock.Anything, mock.AnythingOfType("*model.ContactFilter")).
					Return([]model.ContactEntity{{ID: 1}}, int64(1), nil).
					Once()
				f.contactRepo.
					On("CountByStatus", mock.Anything, mock.AnythingOfType("*model.ContactFilter")).
					Return(map[string]int64{}, nil).
					Once()
			},
			want: &model.ContactListResult{
				Total:        1,
				StatusCounts: map[string]int64{},
			},
			wantErr: false,
		},
		{
			name: "error: repository List returns error",
			fields: fields{
				contactRepo: contactmocks.NewContactRepository(t),
				userRepo:    usermocks.NewUserRepository(t),
			},
			filter: &model.ContactFilter{Query: model.ListQuery{Page: 1, Limit: 10}},
			mockCall: func(f fields) {
				f.contactRepo.
					On("List", mock.Anything, mock.AnythingOfType("*model.ContactFilter")).
					Return(nil, int64(0), errors.New("db error")).
					Once()
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := appcontact.NewContactApp(tt.fields.contactRepo, tt.fields.userRepo, nil)

			got, err := app.List(context.Background(), tt.filter)
			if (err != nil) != tt.wantErr {
				t.Fatalf("List() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}

			if got.Total != tt.want.Total {
				t.Fatalf("List() total = %d, want %d", got.Total, tt.want.Total)
			}
			if len(got.StatusCounts) != len(tt.want.StatusCounts) {
				t.Fatalf("List() statusCounts = %v, want %v", got.StatusCounts, tt.want.StatusCounts)
			}
			for i := range got.Items {
				if id := got.Items[i].AssignedToID; id != nil {
					if got.Items[i].AssignedTo == nil || got.Items[i].AssignedTo.ID != *id {
						t.Fatalf("List() item %d assignee not populated", got.Items[i].ID)
					}
				}
			}
		})
	}
}

func TestContactApp_Update(t *testing.T) {
	assigneeID := uint64(3)
	status := constant.ContactStatusInProgress
	followUp := time.Now().Add(48 * time.Hour)

	type fields struct {
		contactRepo *contactmocks.ContactRepository
		userRepo    *usermocks.UserRepository
		publisher   *rabbitmocks.FollowUpPublisher
	}
	tests := []struct {
		name     string
		fields   fields
		req      *model.UpdateContactRequest
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
		wantVErr bool
	}{
		{
			name: "success: status change with assignment",
			fields: fields{
				contactRepo: contactmocks.NewContactRepository(t),
				userRepo:    usermocks.NewUserRepository(t),
				publisher:   rabbitmocks.NewFollowUpPublisher(t),
			},
			req: &model.UpdateContactRequest{
				Status:     &status,
				AssignedTo: &assigneeID,
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{ID: assigneeID}).
					Return(&model.UserEntity{ID: assigneeID, Role: constant.RoleAdmin}, nil).
					Once()
				f.contactRepo.
					On("Update", mock.Anything, uint64(10), mock.AnythingOfType("*model.UpdateContactRequest")).
					Return(true, nil).
					Once()
				f.contactRepo.
					On("GetByID", mock.Anything, uint64(10)).
					Return(&model.ContactEntity{
						ID:           10,
						Status:       constant.ContactStatusInProgress,
						AssignedToID: &assigneeID,
					}, nil).
					Once()
				f.userRepo.
					On("GetRefs", mock.Anything, []uint64{assigneeID}).
					Return(map[uint64]model.UserRef{
						assigneeID: {ID: assigneeID, FirstName: "Admin", LastName: "User"},
					}, nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "success: follow-up date schedules a reminder",
			fields: fields{
				contactRepo: contactmocks.NewContactRepository(t),
				userRepo:    usermocks.NewUserRepository(t),
				publisher:   rabbitmocks.NewFollowUpPublisher(t),
			},
			req: &model.UpdateContactRequest{
				FollowUpDate: &followUp,
			},
			mockCall: func(f fields) {
				f.contactRepo.
					On("Update", mock.Anything, uint64(10), mock.AnythingOfType("*model.UpdateContactRequest")).
					Return(true, nil).
					Once()
				f.publisher.
					On("PublishFollowUp", rabbitmq.FollowUpMessage{ContactID: 10, DueAt: followUp}).
					Return(nil).
					Once()
				f.contactRepo.
					On("GetByID", mock.Anything, uint64(10)).
					Return(&model.ContactEntity{ID: 10, FollowUpDate: &followUp}, nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "success: publish failure does not fail the update",
			fields: fields{
				contactRepo: contactmocks.NewContactRepository(t),
				userRepo:    usermocks.NewUserRepository(t),
				publisher:   rabbitmocks.NewFollowUpPublisher(t),
			},
			req: &model.UpdateContactRequest{
				FollowUpDate: &followUp,
			},
			mockCall: func(f fields) {
				f.contactRepo.
					On("Update", mock.Anything, uint64(10), mock.AnythingOfType("*model.UpdateContactRequest")).
					Return(true, nil).
					Once()
				f.publisher.
					On("PublishFollowUp", mock.AnythingOfType("rabbitmq.FollowUpMessage")).
					Return(errors.New("broker down")).
					Once()
				f.contactRepo.
					On("GetByID", mock.Anything, uint64(10)).
					Return(&model.ContactEntity{ID: 10, FollowUpDate: &followUp}, nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "error: unknown assignee rejected as validation failure",
			fields: fields{
				contactRepo: contactmocks.NewContactRepository(t),
				userRepo:    usermocks.NewUserRepository(t),
				publisher:   rabbitmocks.NewFollowUpPublisher(t),
			},
			req: &model.UpdateContactRequest{
				AssignedTo: &assigneeID,
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{ID: assigneeID}).
					Return(nil, nil).
					Once()
			},
			wantErr:  true,
			wantVErr: true,
		},
		{
			name: "error: inquiry not found",
			fields: fields{
				contactRepo: contactmocks.NewContactRepository(t),
				userRepo:    usermocks.NewUserRepository(t),
				publisher:   rabbitmocks.NewFollowUpPublisher(t),
			},
			req: &model.UpdateContactRequest{
				Status: &status,
			},
			mockCall: func(f fields) {
				f.contactRepo.
					On("Update", mock.Anything, uint64(10), mock.AnythingOfType("*model.UpdateContactRequest")).
					Return(false, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := appcontact.NewContactApp(tt.fields.contactRepo, tt.fields.userRepo, tt.fields.publisher)

			got, err := app.Update(context.Background(), 10, tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Update() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantVErr {
				if _, ok := cerr.AsValidation(err); !ok {
					t.Fatalf("error type = %T, want ValidationError", err)
				}
				return
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got.ID != 10 {
				t.Fatalf("Update() id = %d, want 10", got.ID)
			}
		})
	}
}

func TestContactApp_MarkFollowUpDue(t *testing.T) {
	type fields struct {
		contactRepo *contactmocks.ContactRepository
		userRepo    *usermocks.UserRepository
	}
	tests := []struct {
		name     string
		fields   fields
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: open inquiry flipped to in-progress",
			fields: fields{
				contactRepo: contactmocks.NewContactRepository(t),
				userRepo:    usermocks.NewUserRepository(t),
			},
			mockCall: func(f fields) {
				f.contactRepo.
					On("GetByID", mock.Anything, uint64(10)).
					Return(&model.ContactEntity{ID: 10, Status: constant.ContactStatusResponded}, nil).
					Once()
				f.contactRepo.
					On("UpdateStatus", mock.Anything, uint64(10), constant.ContactStatusInProgress).
					Return(true, nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "success: closed inquiry left alone",
			fields: fields{
				contactRepo: contactmocks.NewContactRepository(t),
				userRepo:    usermocks.NewUserRepository(t),
			},
			mockCall: func(f fields) {
				f.contactRepo.
					On("GetByID", mock.Anything, uint64(10)).
					Return(&model.ContactEntity{ID: 10, Status: constant.ContactStatusClosed}, nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "error: inquiry not found",
			fields: fields{
				contactRepo: contactmocks.NewContactRepository(t),
				userRepo:    usermocks.NewUserRepository(t),
			},
			mockCall: func(f fields) {
				f.contactRepo.
					On("GetByID", mock.Anything, uint64(10)).
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := appcontact.NewContactApp(tt.fields.contactRepo, tt.fields.userRepo, nil)

			err := app.MarkFollowUpDue(context.Background(), 10)
			if (err != nil) != tt.wantErr {
				t.Fatalf("MarkFollowUpDue() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
			}
		})
	}
}

func TestContactApp_Stats(t *testing.T) {
	contactRepo := contactmocks.NewContactRepository(t)
	userRepo := usermocks.NewUserRepository(t)

	contactRepo.
		On("Overview", mock.Anything).
		Return(&model.ContactOverview{
			TotalMessages:      20,
			NewMessages:        5,
			InProgressMessages: 4,
			RespondedMessages:  8,
			ClosedMessages:     3,
		}, nil).
		Once()
	contactRepo.
		On("CountByInquiryType", mock.Anything).
		Return([]model.InquiryTypeCount{
			{InquiryType: constant.InquiryTypeProduct, Count: 12},
			{InquiryType: constant.InquiryTypeBulkOrders, Count: 8},
		}, nil).
		Once()
	contactRepo.
		On("MonthlyCounts", mock.Anything, 12).
		Return([]model.MonthlyCount{
			{Year: 2026, Month: 8, Count: 7},
		}, nil).
		Once()

	app := appcontact.NewContactApp(contactRepo, userRepo, nil)

	got, err := app.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if got.Overview.TotalMessages != 20 {
		t.Fatalf("Stats() totalMessages = %d, want 20", got.Overview.TotalMessages)
	}
	if len(got.InquiryTypes) != 2 {
		t.Fatalf("Stats() inquiryTypes = %d entries, want 2", len(got.InquiryTypes))
	}
	if len(got.MonthlyTrends) != 1 {
		t.Fatalf("Stats() monthlyTrends = %d entries, want 1", len(got.MonthlyTrends))
	}
}
