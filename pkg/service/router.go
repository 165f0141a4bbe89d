package service

import (
	"context"

	"github.com/kfsoftware/tunnel-manager/pkg/db"
	"github.com/kfsoftware/tunnel-manager/pkg/messages"
	"github.com/kfsoftware/tunnel-manager/pkg/store"
)

type routerService struct {
	messages.UnimplementedRouterServer
	repo Repository[db.Router, store.RouterKey]
}

func NewRouterService(repo Repository[db.Router, store.RouterKey]) messages.RouterServer {
	return &routerService{repo: repo}
}

var routerChanges = []change[*messages.RouterUpdateRequest]{
	optInt32(store.RouterAgent, true, func(r *messages.RouterUpdateRequest) *int32 { return r.Agent }),
	optNullString(store.RouterSnmpCommunity, func(r *messages.RouterUpdateRequest) *string { return r.SnmpCommunity }),
	optNullString(store.RouterSSHUsername, func(r *messages.RouterUpdateRequest) *string { return r.SshUsername }),
	optNullString(store.RouterSSHPassword, func(r *messages.RouterUpdateRequest) *string { return r.SshPassword }),
	optNullString(store.RouterConnType, func(r *messages.RouterUpdateRequest) *string { return r.ConnType }),
	optNullString(store.RouterRouterType, func(r *messages.RouterUpdateRequest) *string { return r.RouterType }),
}

func routerKey(req *messages.RouterRequest) (store.RouterKey, error) {
	switch k := req.GetIdOrAgent().(type) {
	case *messages.RouterRequest_Id:
		return store.RouterByID(k.Id), nil
	case *messages.RouterRequest_Agent:
		return store.RouterByAgent(k.Agent), nil
	}
	return nil, invalid("Router id or agent required")
}

// Nullable columns stay unset on the wire when NULL in the store.
func routerData(r *db.Router) *messages.RouterData {
	return &messages.RouterData{
		Id:            r.ID,
		Agent:         r.Agent,
		SnmpCommunity: r.SnmpCommunity,
		SshUsername:   r.SSHUsername,
		SshPassword:   r.SSHPassword,
		ConnType:      r.ConnType,
		RouterType:    r.RouterType,
	}
}

func routersData(routers []db.Router) *messages.RoutersData {
	res := &messages.RoutersData{Routers: make([]*messages.RouterData, 0, len(routers))}
	for i := range routers {
		res.Routers = append(res.Routers, routerData(&routers[i]))
	}
	return res
}

func (s *routerService) List(ctx context.Context, _ *messages.ListRequest) (*messages.RoutersData, error) {
	requestLogger(ctx).Info().Msg("Got a List request")
	routers, err := s.repo.All(ctx)
	if err != nil {
		return nil, toStatus(ctx, "router", err)
	}
	return routersData(routers), nil
}

func (s *routerService) Get(ctx context.Context, req *messages.RouterRequest) (*messages.RoutersData, error) {
	requestLogger(ctx).Info().Msg("Got a Get request")
	key, err := routerKey(req)
	if err != nil {
		return nil, err
	}
	routers, err := s.repo.Get(ctx, key)
	if err != nil {
		return nil, toStatus(ctx, "router", err)
	}
	return routersData(routers), nil
}

func (s *routerService) Add(ctx context.Context, req *messages.RouterAddRequest) (*messages.RouterData, error) {
	requestLogger(ctx).Info().Msg("Got an Add request")
	if req.GetAgent() == 0 {
		return nil, invalid("agent is required")
	}
	router, err := s.repo.Add(ctx, &db.Router{
		Agent:         req.GetAgent(),
		SnmpCommunity: req.SnmpCommunity,
		SSHUsername:   req.SshUsername,
		SSHPassword:   req.SshPassword,
		ConnType:      req.ConnType,
		RouterType:    req.RouterType,
	})
	if err != nil {
		return nil, toStatus(ctx, "router", err)
	}
	return routerData(router), nil
}

func (s *routerService) Delete(ctx context.Context, req *messages.RouterRequest) (*messages.DeleteResponse, error) {
	requestLogger(ctx).Info().Msg("Got a Delete request")
	key, err := routerKey(req)
	if err != nil {
		return nil, err
	}
	affected, err := s.repo.Delete(ctx, key)
	if err != nil {
		return nil, toStatus(ctx, "router", err)
	}
	return &messages.DeleteResponse{Affected: affected}, nil
}

func (s *routerService) Update(ctx context.Context, req *messages.RouterUpdateRequest) (*messages.RouterData, error) {
	requestLogger(ctx).Info().Msg("Got an Update request")
	if req.GetId() == 0 {
		return nil, invalid("id is required")
	}
	changes, err := collect(req, routerChanges)
	if err != nil {
		return nil, err
	}
	router, err := s.repo.Update(ctx, req.GetId(), changes)
	if err != nil {
		return nil, toStatus(ctx, "router", err)
	}
	return routerData(router), nil
}
