package domain

import "context"

const (
	EventMemberJoined   = "member.joined"
	EventTeamCreated    = "team.created"
	EventOrderPlaced    = "order.placed"
	EventOrderCancelled = "order.cancelled"
)

type Event struct {
	Type    string
	Payload map[string]any
}

type EventBus interface {
	Publish(ctx context.Context, e Event)
}
