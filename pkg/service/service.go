// Package service implements the tunnel-manager gRPC services on top of the
// store repositories.
package service

import (
	"context"

	"github.com/kfsoftware/tunnel-manager/pkg/db"
	"github.com/kfsoftware/tunnel-manager/pkg/store"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Repository is the data access a handler needs for one entity.
type Repository[M any, K store.Key] interface {
	All(ctx context.Context) ([]M, error)
	Get(ctx context.Context, key K) ([]M, error)
	Add(ctx context.Context, row *M) (*M, error)
	Update(ctx context.Context, id int32, changes store.Changes) (*M, error)
	Delete(ctx context.Context, key K) (int64, error)
}

// MembershipRepository adds the user/permission joins to the membership repository.
type MembershipRepository interface {
	Repository[db.PermissionMembership, store.MembershipKey]
	PermissionMembers(ctx context.Context, key store.PermissionKey) ([]db.User, error)
	UserPermissions(ctx context.Context, key store.UserKey) ([]db.Permission, error)
}

func requestLogger(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &log.Logger
}

func invalid(msg string) error {
	return status.Error(codes.InvalidArgument, msg)
}

// toStatus converts a repository error into the status returned to callers.
// Store messages are logged and never sent over the wire.
func toStatus(ctx context.Context, entity string, err error) error {
	logger := requestLogger(ctx)
	if errors.Is(err, store.ErrNothingToUpdate) {
		return invalid("nothing to update")
	}
	if errors.Is(err, store.ErrUnknownColumn) {
		logger.Error().Err(err).Msg("Update rejected")
		return invalid("unknown column")
	}
	kind := store.Translate(err)
	switch kind {
	case store.KindNotFound:
		logger.Debug().Err(err).Msgf("%s not found", entity)
		return status.Errorf(codes.NotFound, "%s not found", entity)
	case store.KindOutOfRange:
		logger.Warn().Err(err).Msgf("%s value out of range", entity)
		return status.Errorf(codes.OutOfRange, "%s value out of range", entity)
	case store.KindInvalidInput:
		return invalid("invalid " + entity)
	}
	logger.Error().Err(err).Str("kind", kind.String()).Msgf("%s request failed", entity)
	return status.Errorf(codes.Internal, "%s request failed", entity)
}

// change copies one optional request field into the change set when present.
type change[R any] func(req R, changes store.Changes) error

func optString[R any](column store.Column, required bool, get func(R) *string) change[R] {
	return func(req R, changes store.Changes) error {
		v := get(req)
		if v == nil {
			return nil
		}
		if required && *v == "" {
			return invalid(string(column) + " must not be empty")
		}
		changes.Set(column, *v)
		return nil
	}
}

// optNullString clears a nullable column when the field is present but empty.
func optNullString[R any](column store.Column, get func(R) *string) change[R] {
	return func(req R, changes store.Changes) error {
		v := get(req)
		if v == nil {
			return nil
		}
		if *v == "" {
			changes.Set(column, nil)
			return nil
		}
		changes.Set(column, *v)
		return nil
	}
}

func optInt32[R any](column store.Column, required bool, get func(R) *int32) change[R] {
	return func(req R, changes store.Changes) error {
		v := get(req)
		if v == nil {
			return nil
		}
		if required && *v == 0 {
			return invalid(string(column) + " must not be zero")
		}
		changes.Set(column, *v)
		return nil
	}
}

func optBool[R any](column store.Column, get func(R) *bool) change[R] {
	return func(req R, changes store.Changes) error {
		if v := get(req); v != nil {
			changes.Set(column, *v)
		}
		return nil
	}
}

// collect builds the change set for an update request. It fails when a
// required column is cleared or when no field is present.
func collect[R any](req R, table []change[R]) (store.Changes, error) {
	changes := store.Changes{}
	for _, apply := range table {
		if err := apply(req, changes); err != nil {
			return nil, err
		}
	}
	if len(changes) == 0 {
		return nil, invalid("nothing to update")
	}
	return changes, nil
}
