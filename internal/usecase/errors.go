package usecase

import (
	"errors"

	"github.com/prabindersinghh/leorit-order-service/internal/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gorm.io/gorm"
)

// PermissionDenied reports a guard that rejected the actor.
func PermissionDenied(d domain.Decision) error {
	return status.Error(codes.PermissionDenied, d.Reason)
}

// FailedPrecondition reports a guard that rejected the order's current state.
func FailedPrecondition(d domain.Decision) error {
	return status.Error(codes.FailedPrecondition, d.Reason)
}

func InvalidArgument(msg string) error {
	return status.Error(codes.InvalidArgument, msg)
}

// IsDenied reports whether err came from a guard.
func IsDenied(err error) bool {
	switch status.Code(err) {
	case codes.PermissionDenied, codes.FailedPrecondition, codes.InvalidArgument:
		return true
	}
	return false
}

// StatusError converts repository errors to status errors and passes status
// errors through.
func StatusError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	switch {
	case errors.Is(err, domain.ErrOrderNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return status.Error(codes.NotFound, domain.ErrOrderNotFound.Error())
	case errors.Is(err, domain.ErrQCRecordNotFound):
		return status.Error(codes.NotFound, domain.ErrQCRecordNotFound.Error())
	}
	return status.Error(codes.Internal, err.Error())
}

// RequireRole denies actors whose role is not listed.
func RequireRole(actor domain.Actor, roles ...domain.Role) error {
	for _, r := range roles {
		if actor.Role == r {
			return nil
		}
	}
	return PermissionDenied(domain.Deny("%s may not perform this operation", actor.Role))
}
