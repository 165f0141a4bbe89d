package service

import (
	"context"

	"github.com/kfsoftware/tunnel-manager/pkg/db"
	"github.com/kfsoftware/tunnel-manager/pkg/messages"
	"github.com/kfsoftware/tunnel-manager/pkg/store"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type permissionService struct {
	messages.UnimplementedPermissionServer
	repo Repository[db.Permission, store.PermissionKey]
}

func NewPermissionService(repo Repository[db.Permission, store.PermissionKey]) messages.PermissionServer {
	return &permissionService{repo: repo}
}

var permissionChanges = []change[*messages.PermissionUpdateRequest]{
	optString(store.PermissionName, true, func(r *messages.PermissionUpdateRequest) *string { return r.Name }),
	optString(store.PermissionDescription, true, func(r *messages.PermissionUpdateRequest) *string { return r.Description }),
}

func permissionKey(req *messages.PermissionRequest) (store.PermissionKey, error) {
	switch k := req.GetIdOrName().(type) {
	case *messages.PermissionRequest_Id:
		return store.PermissionByID(k.Id), nil
	case *messages.PermissionRequest_Name:
		return store.PermissionByName(k.Name), nil
	}
	return nil, invalid("Permission id or name required")
}

func permissionData(p *db.Permission) *messages.PermissionData {
	return &messages.PermissionData{
		Id:          p.ID,
		Name:        p.Name,
		Description: p.Description,
	}
}

func permissionsData(permissions []db.Permission) *messages.PermissionsData {
	res := &messages.PermissionsData{Permissions: make([]*messages.PermissionData, 0, len(permissions))}
	for i := range permissions {
		res.Permissions = append(res.Permissions, permissionData(&permissions[i]))
	}
	return res
}

func (s *permissionService) List(ctx context.Context, _ *messages.ListRequest) (*messages.PermissionsData, error) {
	requestLogger(ctx).Info().Msg("Got a List request")
	permissions, err := s.repo.All(ctx)
	if err != nil {
		return nil, toStatus(ctx, "permission", err)
	}
	return permissionsData(permissions), nil
}

func (s *permissionService) Get(ctx context.Context, req *messages.PermissionRequest) (*messages.PermissionData, error) {
	requestLogger(ctx).Info().Msg("Got a Get request")
	key, err := permissionKey(req)
	if err != nil {
		return nil, err
	}
	permissions, err := s.repo.Get(ctx, key)
	if err != nil {
		return nil, toStatus(ctx, "permission", err)
	}
	if len(permissions) == 0 {
		return nil, status.Error(codes.NotFound, "permission not found")
	}
	return permissionData(&permissions[0]), nil
}

func (s *permissionService) Add(ctx context.Context, req *messages.PermissionAddRequest) (*messages.PermissionData, error) {
	requestLogger(ctx).Info().Msg("Got an Add request")
	if req.GetName() == "" {
		return nil, invalid("name is required")
	}
	if req.GetDescription() == "" {
		return nil, invalid("description is required")
	}
	permission, err := s.repo.Add(ctx, &db.Permission{
		Name:        req.GetName(),
		Description: req.GetDescription(),
	})
	if err != nil {
		return nil, toStatus(ctx, "permission", err)
	}
	return permissionData(permission), nil
}

func (s *permissionService) Delete(ctx context.Context, req *messages.PermissionRequest) (*messages.DeleteResponse, error) {
	requestLogger(ctx).Info().Msg("Got a Delete request")
	key, err := permissionKey(req)
	if err != nil {
		return nil, err
	}
	affected, err := s.repo.Delete(ctx, key)
	if err != nil {
		return nil, toStatus(ctx, "permission", err)
	}
	return &messages.DeleteResponse{Affected: affected}, nil
}

func (s *permissionService) Update(ctx context.Context, req *messages.PermissionUpdateRequest) (*messages.PermissionData, error) {
	requestLogger(ctx).Info().Msg("Got an Update request")
	if req.GetId() == 0 {
		return nil, invalid("id is required")
	}
	changes, err := collect(req, permissionChanges)
	if err != nil {
		return nil, err
	}
	permission, err := s.repo.Update(ctx, req.GetId(), changes)
	if err != nil {
		return nil, toStatus(ctx, "permission", err)
	}
	return permissionData(permission), nil
}
