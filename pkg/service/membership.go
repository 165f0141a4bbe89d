package service

import (
	"context"

	"github.com/kfsoftware/tunnel-manager/pkg/db"
	"github.com/kfsoftware/tunnel-manager/pkg/messages"
	"github.com/kfsoftware/tunnel-manager/pkg/store"
)

type membershipService struct {
	messages.UnimplementedPermissionMembershipServer
	repo MembershipRepository
}

func NewPermissionMembershipService(repo MembershipRepository) messages.PermissionMembershipServer {
	return &membershipService{repo: repo}
}

var membershipChanges = []change[*messages.PermissionMembershipUpdateRequest]{
	optInt32(store.MembershipPermission, true, func(r *messages.PermissionMembershipUpdateRequest) *int32 { return r.Permission }),
	optInt32(store.MembershipUserID, true, func(r *messages.PermissionMembershipUpdateRequest) *int32 { return r.UserId }),
}

func membershipKey(req *messages.PermissionMembershipRequest) (store.MembershipKey, error) {
	switch k := req.GetIdPermissionOrUserId().(type) {
	case *messages.PermissionMembershipRequest_Id:
		return store.MembershipByID(k.Id), nil
	case *messages.PermissionMembershipRequest_Permission:
		return store.MembershipByPermission(k.Permission), nil
	case *messages.PermissionMembershipRequest_UserId:
		return store.MembershipByUser(k.UserId), nil
	}
	return nil, invalid("Permission membership id, permission or user id required")
}

func membershipData(m *db.PermissionMembership) *messages.PermissionMembershipData {
	return &messages.PermissionMembershipData{
		Id:         m.ID,
		Permission: m.Permission,
		UserId:     m.UserID,
	}
}

func membershipsData(memberships []db.PermissionMembership) *messages.PermissionMembershipsData {
	res := &messages.PermissionMembershipsData{
		Memberships: make([]*messages.PermissionMembershipData, 0, len(memberships)),
	}
	for i := range memberships {
		res.Memberships = append(res.Memberships, membershipData(&memberships[i]))
	}
	return res
}

func (s *membershipService) List(ctx context.Context, _ *messages.ListRequest) (*messages.PermissionMembershipsData, error) {
	requestLogger(ctx).Info().Msg("Got a List request")
	memberships, err := s.repo.All(ctx)
	if err != nil {
		return nil, toStatus(ctx, "permission membership", err)
	}
	return membershipsData(memberships), nil
}

func (s *membershipService) Get(ctx context.Context, req *messages.PermissionMembershipRequest) (*messages.PermissionMembershipsData, error) {
	requestLogger(ctx).Info().Msg("Got a Get request")
	key, err := membershipKey(req)
	if err != nil {
		return nil, err
	}
	memberships, err := s.repo.Get(ctx, key)
	if err != nil {
		return nil, toStatus(ctx, "permission membership", err)
	}
	return membershipsData(memberships), nil
}

func (s *membershipService) Add(ctx context.Context, req *messages.PermissionMembershipAddRequest) (*messages.PermissionMembershipData, error) {
	requestLogger(ctx).Info().Msg("Got an Add request")
	if req.GetPermission() == 0 {
		return nil, invalid("permission is required")
	}
	if req.GetUserId() == 0 {
		return nil, invalid("user id is required")
	}
	membership, err := s.repo.Add(ctx, &db.PermissionMembership{
		Permission: req.GetPermission(),
		UserID:     req.GetUserId(),
	})
	if err != nil {
		return nil, toStatus(ctx, "permission membership", err)
	}
	return membershipData(membership), nil
}

func (s *membershipService) Delete(ctx context.Context, req *messages.PermissionMembershipRequest) (*messages.DeleteResponse, error) {
	requestLogger(ctx).Info().Msg("Got a Delete request")
	key, err := membershipKey(req)
	if err != nil {
		return nil, err
	}
	affected, err := s.repo.Delete(ctx, key)
	if err != nil {
		return nil, toStatus(ctx, "permission membership", err)
	}
	return &messages.DeleteResponse{Affected: affected}, nil
}

func (s *membershipService) Update(ctx context.Context, req *messages.PermissionMembershipUpdateRequest) (*messages.PermissionMembershipData, error) {
	requestLogger(ctx).Info().Msg("Got an Update request")
	if req.GetId() == 0 {
		return nil, invalid("id is required")
	}
	changes, err := collect(req, membershipChanges)
	if err != nil {
		return nil, err
	}
	membership, err := s.repo.Update(ctx, req.GetId(), changes)
	if err != nil {
		return nil, toStatus(ctx, "permission membership", err)
	}
	return membershipData(membership), nil
}

func (s *membershipService) GetPermissionMembers(ctx context.Context, req *messages.PermissionRequest) (*messages.UsersData, error) {
	requestLogger(ctx).Info().Msg("Got a GetPermissionMembers request")
	key, err := permissionKey(req)
	if err != nil {
		return nil, err
	}
	users, err := s.repo.PermissionMembers(ctx, key)
	if err != nil {
		return nil, toStatus(ctx, "permission membership", err)
	}
	return usersData(users), nil
}

func (s *membershipService) GetUserPermissions(ctx context.Context, req *messages.UserRequest) (*messages.PermissionsData, error) {
	requestLogger(ctx).Info().Msg("Got a GetUserPermissions request")
	key, err := userKey(req)
	if err != nil {
		return nil, err
	}
	permissions, err := s.repo.UserPermissions(ctx, key)
	if err != nil {
		return nil, toStatus(ctx, "permission membership", err)
	}
	return permissionsData(permissions), nil
}
