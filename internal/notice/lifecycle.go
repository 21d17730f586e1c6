package notice

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/yturchin/insolventz-v5-dashboard-upgraded/constants"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/common"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/entity"
)

// Accept moves a generated notice to accepted.
func (g *Generator) Accept(ctx context.Context, id uuid.UUID) (*entity.Notice, error) {
	return g.advance(ctx, id, constants.NoticeGenerated, constants.NoticeAccepted)
}

// Send moves an accepted notice to sent. Sending a notice that was never
// accepted is rejected; there is no skipping of steps.
func (g *Generator) Send(ctx context.Context, id uuid.UUID) (*entity.Notice, error) {
	return g.advance(ctx, id, constants.NoticeAccepted, constants.NoticeSent)
}

// advance performs the transition as a guarded update, so two concurrent
// calls cannot both succeed. When the guard misses, the notice is re-read to
// report why.
func (g *Generator) advance(ctx context.Context, id uuid.UUID, from, to constants.NoticeStatus) (*entity.Notice, error) {
	ok, err := g.notices.UpdateStatusIf(ctx, id, from, to)
	if err != nil {
		return nil, err
	}
	if !ok {
		n, err := g.notices.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if constants.NoticeRank(n.Status) >= constants.NoticeRank(to) {
			return nil, fmt.Errorf("notice %s is already %s: %w", id, n.Status, common.ErrInvalidTransition)
		}
		return nil, fmt.Errorf("notice %s is %s, cannot move to %s: %w", id, n.Status, to, common.ErrInvalidTransition)
	}

	g.logger.Info("notice transitioned", "notice_id", id, "from", from, "to", to)
	return g.notices.GetByID(ctx, id)
}
