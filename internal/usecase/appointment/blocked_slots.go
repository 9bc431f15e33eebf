package appointment

import (
	"context"
	"time"

	domain "github.com/velvetnails/salon-scheduler/internal/domain/appointment"
)

type BlockedSlot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type ListBlockedSlots struct {
	repo domain.Repository
}

func NewListBlockedSlots(repo domain.Repository) *ListBlockedSlots {
	return &ListBlockedSlots{repo: repo}
}

// Execute projects the [start,end) windows held by other clients' pending
// and confirmed appointments. Read-only, derived entirely from service
// durations.
func (uc *ListBlockedSlots) Execute(
	ctx context.Context,
	actor domain.Actor,
) ([]BlockedSlot, error) {

	var ownClientID uint
	if client, err := uc.repo.GetClientByUserID(ctx, actor.UserID); err == nil {
		ownClientID = client.ID
	}

	aps, err := uc.repo.ListActiveExcludingClient(ctx, ownClientID)
	if err != nil {
		return nil, err
	}

	slots := make([]BlockedSlot, 0, len(aps))
	for i := range aps {
		if len(aps[i].Services) == 0 {
			continue
		}
		w := domain.WindowOf(&aps[i])
		slots = append(slots, BlockedSlot{Start: w.Start, End: w.End})
	}

	return slots, nil
}
