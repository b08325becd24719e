package transport

import (
	"encoding/json"
	"net/http"

	"github.com/ksagri/agroexport-api/constant"
	"github.com/ksagri/agroexport-api/model"
	utilsContext "github.com/ksagri/agroexport-api/utils/context"
	"github.com/ksagri/agroexport-api/utils/errors"
	"github.com/ksagri/agroexport-api/utils/logger"
	validatorx "github.com/ksagri/agroexport-api/utils/validator"
	"go.uber.org/zap"
)

// Register handles account creation. Every registration creates a customer
// account regardless of what the payload claims.
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateRequest(&req); err != nil {
		s.writeError(w, err)
		return
	}

	res, err := s.UserApp.Register(ctx, &req)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeCreated(w, res, "Account created successfully")
}

// Login verifies credentials and issues a bearer token.
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateRequest(&req); err != nil {
		s.writeError(w, err)
		return
	}

	res, err := s.UserApp.Login(ctx, &req)
	if err != nil {
		if errors.IsType(err, constant.ErrAccountLocked) {
			logger.Warn("login attempt on locked account", zap.String("email", req.Email))
		}
		s.writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		s.writeError(w, errors.SetCustomError(constant.ErrUnauthorized))
		return
	}

	res, err := s.UserApp.GetProfile(ctx, userID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		s.writeError(w, errors.SetCustomError(constant.ErrUnauthorized))
		return
	}

	var req model.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateRequest(&req); err != nil {
		s.writeError(w, err)
		return
	}

	res, err := s.UserApp.UpdateProfile(ctx, userID, &req)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeMessage(w, res, "Profile updated successfully")
}

func (s *RestHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		s.writeError(w, errors.SetCustomError(constant.ErrUnauthorized))
		return
	}

	var req model.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateRequest(&req); err != nil {
		s.writeError(w, err)
		return
	}

	if err := s.UserApp.ChangePassword(ctx, userID, &req); err != nil {
		s.writeError(w, err)
		return
	}

	writeMessage(w, nil, "Password changed successfully")
}

// ListUsers serves the admin account listing.
func (s *RestHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	values := r.URL.Query()

	filter := &model.UserFilter{
		Role:  values.Get("role"),
		Query: model.ParseListQuery(values),
	}

	res, err := s.UserApp.ListUsers(ctx, filter)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeList(w, res.Items, model.NewPagination(filter.Query, res.Total))
}

func (s *RestHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actorID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		s.writeError(w, errors.SetCustomError(constant.ErrUnauthorized))
		return
	}

	id, err := pathID(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	if err := s.UserApp.DeleteUser(ctx, actorID, id); err != nil {
		s.writeError(w, err)
		return
	}

	writeMessage(w, nil, "Account deleted successfully")
}
