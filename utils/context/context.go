package context

import (
	"context"

	"github.com/ksagri/agroexport-api/constant"
	"github.com/ksagri/agroexport-api/model"
)

// WithUser attaches the authenticated user to the context.
func WithUser(ctx context.Context, user *model.UserEntity) context.Context {
	return context.WithValue(ctx, constant.AuthUserKey, user)
}

// GetUser returns the authenticated user attached by the auth middleware.
func GetUser(ctx context.Context) (*model.UserEntity, bool) {
	v := ctx.Value(constant.AuthUserKey)
	if v == nil {
		return nil, false
	}
	user, ok := v.(*model.UserEntity)
	return user, ok
}

// GetUserID returns the authenticated user's id.
func GetUserID(ctx context.Context) (uint64, bool) {
	user, ok := GetUser(ctx)
	if !ok {
		return 0, false
	}
	return user.ID, true
}
