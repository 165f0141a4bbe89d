package service

import (
	"context"

	"github.com/kfsoftware/tunnel-manager/pkg/db"
	"github.com/kfsoftware/tunnel-manager/pkg/messages"
	"github.com/kfsoftware/tunnel-manager/pkg/store"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var passwordCost = bcrypt.DefaultCost

type userService struct {
	messages.UnimplementedUserServer
	repo Repository[db.User, store.UserKey]
}

func NewUserService(repo Repository[db.User, store.UserKey]) messages.UserServer {
	return &userService{repo: repo}
}

var userChanges = []change[*messages.UserUpdateRequest]{
	optString(store.UserEmail, true, func(r *messages.UserUpdateRequest) *string { return r.Email }),
	func(r *messages.UserUpdateRequest, changes store.Changes) error {
		if r.Password == nil {
			return nil
		}
		hash, err := hashPassword(r.GetPassword())
		if err != nil {
			return err
		}
		changes.Set(store.UserPassword, hash)
		return nil
	},
}

func hashPassword(password string) (string, error) {
	if password == "" {
		return "", invalid("password must not be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", invalid("password too long")
		}
		return "", status.Error(codes.Internal, "failed to hash password")
	}
	return string(hash), nil
}

func userKey(req *messages.UserRequest) (store.UserKey, error) {
	switch k := req.GetIdOrEmail().(type) {
	case *messages.UserRequest_Id:
		return store.UserByID(k.Id), nil
	case *messages.UserRequest_Email:
		return store.UserByEmail(k.Email), nil
	}
	return nil, invalid("User id or email required")
}

// The password hash is never sent back.
func userData(u *db.User) *messages.UserData {
	return &messages.UserData{
		Id:    u.ID,
		Email: u.Email,
	}
}

func usersData(users []db.User) *messages.UsersData {
	res := &messages.UsersData{Users: make([]*messages.UserData, 0, len(users))}
	for i := range users {
		res.Users = append(res.Users, userData(&users[i]))
	}
	return res
}

func (s *userService) List(ctx context.Context, _ *messages.ListRequest) (*messages.UsersData, error) {
	requestLogger(ctx).Info().Msg("Got a List request")
	users, err := s.repo.All(ctx)
	if err != nil {
		return nil, toStatus(ctx, "user", err)
	}
	return usersData(users), nil
}

func (s *userService) Get(ctx context.Context, req *messages.UserRequest) (*messages.UserData, error) {
	requestLogger(ctx).Info().Msg("Got a Get request")
	key, err := userKey(req)
	if err != nil {
		return nil, err
	}
	users, err := s.repo.Get(ctx, key)
	if err != nil {
		return nil, toStatus(ctx, "user", err)
	}
	if len(users) == 0 {
		return nil, status.Error(codes.NotFound, "user not found")
	}
	return userData(&users[0]), nil
}

func (s *userService) Add(ctx context.Context, req *messages.UserAddRequest) (*messages.UserData, error) {
	requestLogger(ctx).Info().Msg("Got an Add request")
	if req.GetEmail() == "" {
		return nil, invalid("email is required")
	}
	row := &db.User{Email: req.GetEmail()}
	if req.GetPassword() != "" {
		hash, err := hashPassword(req.GetPassword())
		if err != nil {
			return nil, err
		}
		row.Password = hash
	}
	user, err := s.repo.Add(ctx, row)
	if err != nil {
		return nil, toStatus(ctx, "user", err)
	}
	return userData(user), nil
}

func (s *userService) Delete(ctx context.Context, req *messages.UserRequest) (*messages.DeleteResponse, error) {
	requestLogger(ctx).Info().Msg("Got a Delete request")
	key, err := userKey(req)
	if err != nil {
		return nil, err
	}
	affected, err := s.repo.Delete(ctx, key)
	if err != nil {
		return nil, toStatus(ctx, "user", err)
	}
	return &messages.DeleteResponse{Affected: affected}, nil
}

func (s *userService) Update(ctx context.Context, req *messages.UserUpdateRequest) (*messages.UserData, error) {
	requestLogger(ctx).Info().Msg("Got an Update request")
	if req.GetId() == 0 {
		return nil, invalid("id is required")
	}
	changes, err := collect(req, userChanges)
	if err != nil {
		return nil, err
	}
	user, err := s.repo.Update(ctx, req.GetId(), changes)
	if err != nil {
		return nil, toStatus(ctx, "user", err)
	}
	return userData(user), nil
}
