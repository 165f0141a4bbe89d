package service

import (
	"context"

	"github.com/kfsoftware/tunnel-manager/pkg/db"
	"github.com/kfsoftware/tunnel-manager/pkg/messages"
	"github.com/kfsoftware/tunnel-manager/pkg/store"
)

type tunnelService struct {
	messages.UnimplementedTunnelServer
	repo Repository[db.Tunnel, store.TunnelKey]
}

func NewTunnelService(repo Repository[db.Tunnel, store.TunnelKey]) messages.TunnelServer {
	return &tunnelService{repo: repo}
}

type tunnelUpdate = *messages.TunnelUpdateRequest

var tunnelChanges = []change[tunnelUpdate]{
	optInt32(store.TunnelVersion, false, func(r tunnelUpdate) *int32 { return r.Version }),
	optInt32(store.TunnelRouter, true, func(r tunnelUpdate) *int32 { return r.Router }),
	optString(store.TunnelIP, true, func(r tunnelUpdate) *string { return r.Ip }),
	optBool(store.TunnelDynamicIP, func(r tunnelUpdate) *bool { return r.DynamicIp }),
	optInt32(store.TunnelIPClass, false, func(r tunnelUpdate) *int32 { return r.IpClass }),
	optString(store.TunnelHostname, true, func(r tunnelUpdate) *string { return r.Hostname }),
	optString(store.TunnelDescription, true, func(r tunnelUpdate) *string { return r.Description }),
	optString(store.TunnelSource, true, func(r tunnelUpdate) *string { return r.Source }),
	optInt32(store.TunnelCost, false, func(r tunnelUpdate) *int32 { return r.Cost }),
	optString(store.TunnelTunnelType, false, func(r tunnelUpdate) *string { return r.TunnelType }),
	optString(store.TunnelTopologyType, false, func(r tunnelUpdate) *string { return r.TopologyType }),
}

func tunnelKey(req *messages.TunnelRequest) (store.TunnelKey, error) {
	switch k := req.GetIdOrRouter().(type) {
	case *messages.TunnelRequest_Id:
		return store.TunnelByID(k.Id), nil
	case *messages.TunnelRequest_Router:
		return store.TunnelByRouter(k.Router), nil
	}
	return nil, invalid("Tunnel id or router required")
}

func tunnelData(t *db.Tunnel) *messages.TunnelData {
	return &messages.TunnelData{
		Id:           t.ID,
		Version:      t.Version,
		Router:       t.Router,
		Ip:           t.IP,
		DynamicIp:    t.DynamicIP,
		IpClass:      t.IPClass,
		Hostname:     t.Hostname,
		Description:  t.Description,
		Source:       t.Source,
		Cost:         t.Cost,
		TunnelType:   t.TunnelType,
		TopologyType: t.TopologyType,
	}
}

func tunnelsData(tunnels []db.Tunnel) *messages.TunnelsData {
	res := &messages.TunnelsData{Tunnels: make([]*messages.TunnelData, 0, len(tunnels))}
	for i := range tunnels {
		res.Tunnels = append(res.Tunnels, tunnelData(&tunnels[i]))
	}
	return res
}

func (s *tunnelService) List(ctx context.Context, _ *messages.ListRequest) (*messages.TunnelsData, error) {
	requestLogger(ctx).Info().Msg("Got a List request")
	tunnels, err := s.repo.All(ctx)
	if err != nil {
		return nil, toStatus(ctx, "tunnel", err)
	}
	return tunnelsData(tunnels), nil
}

func (s *tunnelService) Get(ctx context.Context, req *messages.TunnelRequest) (*messages.TunnelsData, error) {
	requestLogger(ctx).Info().Msg("Got a Get request")
	key, err := tunnelKey(req)
	if err != nil {
		return nil, err
	}
	tunnels, err := s.repo.Get(ctx, key)
	if err != nil {
		return nil, toStatus(ctx, "tunnel", err)
	}
	return tunnelsData(tunnels), nil
}

func (s *tunnelService) Add(ctx context.Context, req *messages.TunnelAddRequest) (*messages.TunnelData, error) {
	requestLogger(ctx).Info().Msg("Got an Add request")
	switch {
	case req.GetRouter() == 0:
		return nil, invalid("router is required")
	case req.GetIp() == "":
		return nil, invalid("ip is required")
	case req.GetHostname() == "":
		return nil, invalid("hostname is required")
	case req.GetDescription() == "":
		return nil, invalid("description is required")
	case req.GetSource() == "":
		return nil, invalid("source is required")
	}
	tunnel, err := s.repo.Add(ctx, &db.Tunnel{
		Version:      req.GetVersion(),
		Router:       req.GetRouter(),
		IP:           req.GetIp(),
		DynamicIP:    req.GetDynamicIp(),
		IPClass:      req.GetIpClass(),
		Hostname:     req.GetHostname(),
		Description:  req.GetDescription(),
		Source:       req.GetSource(),
		Cost:         req.GetCost(),
		TunnelType:   req.GetTunnelType(),
		TopologyType: req.GetTopologyType(),
	})
	if err != nil {
		return nil, toStatus(ctx, "tunnel", err)
	}
	return tunnelData(tunnel), nil
}

func (s *tunnelService) Delete(ctx context.Context, req *messages.TunnelRequest) (*messages.DeleteResponse, error) {
	requestLogger(ctx).Info().Msg("Got a Delete request")
	key, err := tunnelKey(req)
	if err != nil {
		return nil, err
	}
	affected, err := s.repo.Delete(ctx, key)
	if err != nil {
		return nil, toStatus(ctx, "tunnel", err)
	}
	return &messages.DeleteResponse{Affected: affected}, nil
}

func (s *tunnelService) Update(ctx context.Context, req *messages.TunnelUpdateRequest) (*messages.TunnelData, error) {
	requestLogger(ctx).Info().Msg("Got an Update request")
	if req.GetId() == 0 {
		return nil, invalid("id is required")
	}
	changes, err := collect(req, tunnelChanges)
	if err != nil {
		return nil, err
	}
	tunnel, err := s.repo.Update(ctx, req.GetId(), changes)
	if err != nil {
		return nil, toStatus(ctx, "tunnel", err)
	}
	return tunnelData(tunnel), nil
}
