package contact

import (
	"context"

	"github.com/ksagri/agroexport-api/constant"
	"github.com/ksagri/agroexport-api/model"
	contactrepo "github.com/ksagri/agroexport-api/repository/contact"
	userrepo "github.com/ksagri/agroexport-api/repository/user"
	"github.com/ksagri/agroexport-api/thirdparty/rabbitmq"
	"github.com/ksagri/agroexport-api/utils/errors"
	"github.com/ksagri/agroexport-api/utils/logger"
	"go.uber.org/zap"
)

// Provenance carries the request origin stamped onto a public submission.
type Provenance struct {
	IPAddress string
	UserAgent string
}

// FollowUpPublisher schedules follow-up reminders. Satisfied by the RabbitMQ
// publisher; nil disables reminders.
type FollowUpPublisher interface {
	PublishFollowUp(msg rabbitmq.FollowUpMessage) error
}

type ContactApp interface {
	Create(ctx context.Context, req *model.CreateContactRequest, prov Provenance) (*model.ContactEntity, error)
	List(ctx context.Context, filter *model.ContactFilter) (*model.ContactListResult, error)
	Get(ctx context.Context, id uint64) (*model.ContactEntity, error)
	Update(ctx context.Context, id uint64, req *model.UpdateContactRequest) (*model.ContactEntity, error)
	Delete(ctx context.Context, id uint64) error
	Stats(ctx context.Context) (*model.ContactStats, error)
	MarkFollowUpDue(ctx context.Context, id uint64) error
}

type contactAppImpl struct {
	contactRepo contactrepo.ContactRepository
	userRepo    userrepo.UserRepository
	publisher   FollowUpPublisher
}

func NewContactApp(contactRepo contactrepo.ContactRepository, userRepo userrepo.UserRepository, publisher FollowUpPublisher) ContactApp {
	return &contactAppImpl{
		contactRepo: contactRepo,
		userRepo:    userRepo,
		publisher:   publisher,
	}
}

func (s *contactAppImpl) Create(ctx context.Context, req *model.CreateContactRequest, prov Provenance) (*model.ContactEntity, error) {
	entity := &model.ContactEntity{
		FirstName:              req.FirstName,
		LastName:               req.LastName,
		Email:                  req.Email,
		Phone:                  req.Phone,
		Company:                req.Company,
		Country:                req.Country,
		Subject:                req.Subject,
		Message:                req.Message,
		InquiryType:            req.InquiryType,
		ProductsOfInterest:     req.ProductsOfInterest,
		EstimatedQuantity:      req.EstimatedQuantity,
		PreferredContactMethod: req.PreferredContactMethod,
		Urgency:                req.Urgency,
		Status:                 constant.ContactStatusNew,
		IPAddress:              prov.IPAddress,
		UserAgent:              prov.UserAgent,
	}
	if entity.PreferredContactMethod == "" {
		entity.PreferredContactMethod = constant.ContactMethodEmail
	}
	if entity.Urgency == "" {
		entity.Urgency = constant.UrgencyMedium
	}

	entity, err := s.contactRepo.Create(ctx, entity)
	if err != nil {
		logger.Error("[CreateContact] err contactRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return entity, nil
}

// List returns a page, the filter total and the status histogram. The three
// reads are independent; under concurrent writes the counts may reflect a
// slightly different snapshot than the page.
func (s *contactAppImpl) List(ctx context.Context, filter *model.ContactFilter) (*model.ContactListResult, error) {
	items, total, err := s.contactRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ListContacts] err contactRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	statusCounts, err := s.contactRepo.CountByStatus(ctx, filter)
	if err != nil {
		logger.Error("[ListContacts] err contactRepo.CountByStatus", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.populateAssignees(ctx, items); err != nil {
		logger.Error("[ListContacts] err populateAssignees", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.ContactListResult{
		Items:        items,
		Total:        total,
		StatusCounts: statusCounts,
	}, nil
}

func (s *contactAppImpl) Get(ctx context.Context, id uint64) (*model.ContactEntity, error) {
	entity, err := s.contactRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetContact] err contactRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if err := s.populateAssignee(ctx, entity); err != nil {
		logger.Error("[GetContact] err populateAssignee", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return entity, nil
}

func (s *contactAppImpl) Update(ctx context.Context, id uint64, req *model.UpdateContactRequest) (*model.ContactEntity, error) {
	if req.AssignedTo != nil {
		assignee, err := s.userRepo.Get(ctx, &model.UserFilter{ID: *req.AssignedTo})
		if err != nil {
			logger.Error("[UpdateContact] err userRepo.Get assignee", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if assignee == nil {
			return nil, errors.NewValidationError(errors.FieldError{
				Field:   "assignedTo",
				Message: "assignedTo must reference an existing user",
			})
		}
	}

	found, err := s.contactRepo.Update(ctx, id, req)
	if err != nil {
		logger.Error("[UpdateContact] err contactRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !found {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if req.FollowUpDate != nil && s.publisher != nil {
		msg := rabbitmq.FollowUpMessage{ContactID: id, DueAt: *req.FollowUpDate}
		if err := s.publisher.PublishFollowUp(msg); err != nil {
			// the update itself succeeded; a missed reminder is not fatal
			logger.Error("[UpdateContact] err PublishFollowUp", zap.Uint64("contact_id", id), zap.String("error", err.Error()))
		}
	}

	return s.Get(ctx, id)
}

func (s *contactAppImpl) Delete(ctx context.Context, id uint64) error {
	deleted, err := s.contactRepo.Delete(ctx, id)
	if err != nil {
		logger.Error("[DeleteContact] err contactRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !deleted {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	return nil
}

func (s *contactAppImpl) Stats(ctx context.Context) (*model.ContactStats, error) {
	overview, err := s.contactRepo.Overview(ctx)
	if err != nil {
		logger.Error("[ContactStats] err contactRepo.Overview", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	inquiryTypes, err := s.contactRepo.CountByInquiryType(ctx)
	if err != nil {
		logger.Error("[ContactStats] err contactRepo.CountByInquiryType", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	monthly, err := s.contactRepo.MonthlyCounts(ctx, 12)
	if err != nil {
		logger.Error("[ContactStats] err contactRepo.MonthlyCounts", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.ContactStats{
		Overview:      *overview,
		InquiryTypes:  inquiryTypes,
		MonthlyTrends: monthly,
	}, nil
}

// MarkFollowUpDue flips a still-open inquiry back to in-progress when its
// follow-up reminder fires. Closed inquiries are left alone.
func (s *contactAppImpl) MarkFollowUpDue(ctx context.Context, id uint64) error {
	entity, err := s.contactRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[MarkFollowUpDue] err contactRepo.GetByID", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	if entity.Status == constant.ContactStatusClosed {
		return nil
	}

	if _, err := s.contactRepo.UpdateStatus(ctx, id, constant.ContactStatusInProgress); err != nil {
		logger.Error("[MarkFollowUpDue] err contactRepo.UpdateStatus", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	logger.Info("follow-up due", zap.Uint64("contact_id", id))
	return nil
}

func (s *contactAppImpl) populateAssignee(ctx context.Context, entity *model.ContactEntity) error {
	if entity.AssignedToID == nil {
		return nil
	}
	refs, err := s.userRepo.GetRefs(ctx, []uint64{*entity.AssignedToID})
	if err != nil {
		return err
	}
	if ref, ok := refs[*entity.AssignedToID]; ok {
		entity.AssignedTo = &ref
	}
	return nil
}

func (s *contactAppImpl) populateAssignees(ctx context.Context, items []model.ContactEntity) error {
	ids := make([]uint64, 0, len(items))
	seen := make(map[uint64]bool)
	for i := range items {
		if id := items[i].AssignedToID; id != nil && !seen[*id] {
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
		if id := items[i].AssignedToID; id != nil {
			if ref, ok := refs[*id]; ok {
				items[i].AssignedTo = &ref
			}
		}
	}
	return nil
}
