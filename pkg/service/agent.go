package service

import (
	"context"

	"github.com/kfsoftware/tunnel-manager/pkg/db"
	"github.com/kfsoftware/tunnel-manager/pkg/messages"
	"github.com/kfsoftware/tunnel-manager/pkg/store"
)

type agentService struct {
	messages.UnimplementedAgentServer
	repo Repository[db.Agent, store.AgentKey]
}

func NewAgentService(repo Repository[db.Agent, store.AgentKey]) messages.AgentServer {
	return &agentService{repo: repo}
}

var agentChanges = []change[*messages.AgentUpdateRequest]{
	optString(store.AgentUUID, true, func(r *messages.AgentUpdateRequest) *string { return r.Uuid }),
	optString(store.AgentDescription, false, func(r *messages.AgentUpdateRequest) *string { return r.Description }),
	optInt32(store.AgentOwner, true, func(r *messages.AgentUpdateRequest) *int32 { return r.Owner }),
}

func agentKey(req *messages.AgentRequest) (store.AgentKey, error) {
	switch k := req.GetIdUuidOrOwner().(type) {
	case *messages.AgentRequest_Id:
		return store.AgentByID(k.Id), nil
	case *messages.AgentRequest_Uuid:
		return store.AgentByUUID(k.Uuid), nil
	case *messages.AgentRequest_Owner:
		return store.AgentByOwner(k.Owner), nil
	}
	return nil, invalid("Agent id, uuid or owner required")
}

func agentData(a *db.Agent) *messages.AgentData {
	return &messages.AgentData{
		Id:          a.ID,
		Uuid:        a.UUID,
		Description: a.Description,
		Owner:       a.Owner,
	}
}

func agentsData(agents []db.Agent) *messages.AgentsData {
	res := &messages.AgentsData{Agents: make([]*messages.AgentData, 0, len(agents))}
	for i := range agents {
		res.Agents = append(res.Agents, agentData(&agents[i]))
	}
	return res
}

func (s *agentService) List(ctx context.Context, _ *messages.ListRequest) (*messages.AgentsData, error) {
	requestLogger(ctx).Info().Msg("Got a List request")
	agents, err := s.repo.All(ctx)
	if err != nil {
		return nil, toStatus(ctx, "agent", err)
	}
	return agentsData(agents), nil
}

func (s *agentService) Get(ctx context.Context, req *messages.AgentRequest) (*messages.AgentsData, error) {
	requestLogger(ctx).Info().Msg("Got a Get request")
	key, err := agentKey(req)
	if err != nil {
		return nil, err
	}
	agents, err := s.repo.Get(ctx, key)
	if err != nil {
		return nil, toStatus(ctx, "agent", err)
	}
	return agentsData(agents), nil
}

func (s *agentService) Add(ctx context.Context, req *messages.AgentAddRequest) (*messages.AgentData, error) {
	requestLogger(ctx).Info().Msg("Got an Add request")
	if req.GetUuid() == "" {
		return nil, invalid("uuid is required")
	}
	if req.GetOwner() == 0 {
		return nil, invalid("owner is required")
	}
	agent, err := s.repo.Add(ctx, &db.Agent{
		UUID:        req.GetUuid(),
		Description: req.GetDescription(),
		Owner:       req.GetOwner(),
	})
	if err != nil {
		return nil, toStatus(ctx, "agent", err)
	}
	return agentData(agent), nil
}

func (s *agentService) Delete(ctx context.Context, req *messages.AgentRequest) (*messages.DeleteResponse, error) {
	requestLogger(ctx).Info().Msg("Got a Delete request")
	key, err := agentKey(req)
	if err != nil {
		return nil, err
	}
	affected, err := s.repo.Delete(ctx, key)
	if err != nil {
		return nil, toStatus(ctx, "agent", err)
	}
	return &messages.DeleteResponse{Affected: affected}, nil
}

func (s *agentService) Update(ctx context.Context, req *messages.AgentUpdateRequest) (*messages.AgentData, error) {
	requestLogger(ctx).Info().Msg("Got an Update request")
	if req.GetId() == 0 {
		return nil, invalid("id is required")
	}
	changes, err := collect(req, agentChanges)
	if err != nil {
		return nil, err
	}
	agent, err := s.repo.Update(ctx, req.GetId(), changes)
	if err != nil {
		return nil, toStatus(ctx, "agent", err)
	}
	return agentData(agent), nil
}
