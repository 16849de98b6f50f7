package api

import (
	"context"
	"errors"

	"github.com/matheus3301/dmsync/internal/apperr"
	"github.com/matheus3301/dmsync/internal/sync"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"
)

var errNoIdentity = errors.New("missing " + UserIDKey + " metadata")

// Code maps an application error to its gRPC status code.
func Code(err error) codes.Code {
	switch {
	case err == nil:
		return codes.OK
	case errors.Is(err, errNoIdentity):
		return codes.Unauthenticated
	case errors.Is(err, context.Canceled):
		return codes.Canceled
	case errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded
	case errors.Is(err, sync.ErrStopped):
		return codes.Unavailable
	}
	switch apperr.Code(err) {
	case apperr.CodeValidation:
		return codes.InvalidArgument
	case apperr.CodePermissionDenied:
		return codes.PermissionDenied
	case apperr.CodeNotFound:
		return codes.NotFound
	case apperr.CodeTransient:
		return codes.Unavailable
	case apperr.CodeRateLimited:
		return codes.ResourceExhausted
	}
	return codes.Internal
}

// toStatus converts err to a gRPC status error. Errors that already carry
// a status pass through.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := grpcstatus.FromError(err); ok {
		return err
	}
	return grpcstatus.Error(Code(err), err.Error())
}

// FromStatus turns a status error received by a client back into an error
// matching the apperr sentinels.
func FromStatus(err error) error {
	st, ok := grpcstatus.FromError(err)
	if !ok || err == nil {
		return err
	}
	var sentinel error
	switch st.Code() {
	case codes.InvalidArgument:
		sentinel = apperr.ErrValidation
	case codes.PermissionDenied:
		sentinel = apperr.ErrPermissionDenied
	case codes.NotFound:
		sentinel = apperr.ErrNotFound
	case codes.Unavailable:
		sentinel = apperr.ErrTransient
	case codes.ResourceExhausted:
		sentinel = apperr.ErrRateLimited
	default:
		return err
	}
	return &remoteError{msg: st.Message(), sentinel: sentinel, status: err}
}

type remoteError struct {
	msg      string
	sentinel error
	status   error
}

func (e *remoteError) Error() string { return e.msg }

func (e *remoteError) Is(target error) bool { return target == e.sentinel }

func (e *remoteError) Unwrap() error { return e.status }
