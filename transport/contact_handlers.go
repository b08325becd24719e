package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	appcontact "github.com/ksagri/agroexport-api/application/contact"
	"github.com/ksagri/agroexport-api/constant"
	"github.com/ksagri/agroexport-api/model"
	"github.com/ksagri/agroexport-api/utils/errors"
	validatorx "github.com/ksagri/agroexport-api/utils/validator"
)

// pathID extracts the numeric {id} path variable. A malformed identifier is
// indistinguishable from a missing record: both surface as 404.
func pathID(r *http.Request) (uint64, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.SetCustomError(constant.ErrNotFound)
	}
	return id, nil
}

// CreateContact handles the public inquiry submission.
func (s *RestHandler) CreateContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CreateContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateRequest(&req); err != nil {
		s.writeError(w, err)
		return
	}

	prov := appcontact.Provenance{
		IPAddress: clientAddress(r),
		UserAgent: r.UserAgent(),
	}

	res, err := s.ContactApp.Create(ctx, &req, prov)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeCreated(w, res, "Contact message sent successfully. We will get back to you soon!")
}

// ListContacts serves the admin inquiry listing with pagination, filters,
// search and a status histogram.
func (s *RestHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	values := r.URL.Query()

	filter := &model.ContactFilter{
		Status:      values.Get("status"),
		InquiryType: values.Get("inquiryType"),
		Urgency:     values.Get("urgency"),
		Query:       model.ParseListQuery(values),
	}

	res, err := s.ContactApp.List(ctx, filter)
	if err != nil {
		s.writeError(w, err)
		return
	}

	pagination := model.NewPagination(filter.Query, res.Total)
	writeJSON(w, http.StatusOK, Response{
		Success:      true,
		Data:         res.Items,
		Pagination:   &pagination,
		StatusCounts: res.StatusCounts,
	})
}

func (s *RestHandler) GetContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	res, err := s.ContactApp.Get(ctx, id)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	var req model.UpdateContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateRequest(&req); err != nil {
		s.writeError(w, err)
		return
	}

	res, err := s.ContactApp.Update(ctx, id, &req)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeMessage(w, res, "Contact message updated successfully")
}

func (s *RestHandler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	if err := s.ContactApp.Delete(ctx, id); err != nil {
		s.writeError(w, err)
		return
	}

	writeMessage(w, nil, "Contact message deleted successfully")
}

func (s *RestHandler) ContactStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := s.ContactApp.Stats(ctx)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// FollowUpDue is the internal callback hit by the reminder consumer when a
// contact's follow-up date arrives.
func (s *RestHandler) FollowUpDue(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	if err := s.ContactApp.MarkFollowUpDue(ctx, id); err != nil {
		s.writeError(w, err)
		return
	}

	writeMessage(w, nil, "follow-up recorded")
}
