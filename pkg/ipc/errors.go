package ipc

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/odvcencio/browserd/pkg/engine"
	"github.com/odvcencio/browserd/pkg/session"
)

// toStatus is the single translation point from handler failures to
// protocol status codes. Anything it does not recognize propagates
// unclassified; grpc reports those as Unknown with the engine's message.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	var noSession *session.NoSessionError
	switch {
	case errors.As(err, &noSession):
		return status.Error(codes.FailedPrecondition, noSession.Error())
	case errors.Is(err, engine.ErrUnsupportedKind):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, engine.ErrElementNotFound):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return err
	}
}

// propertyStatus distinguishes an element lookup failure from other engine
// errors when reading a DOM property.
func propertyStatus(err error, selector string) error {
	if engine.IsElementNotFound(err) {
		return status.Error(codes.FailedPrecondition,
			fmt.Sprintf("Tried to get property of nonexisting element %q", selector))
	}
	return toStatus(err)
}
