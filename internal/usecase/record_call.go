package usecase

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/xavierca1/telecrm/internal/entity"
	"github.com/xavierca1/telecrm/internal/infra/queue"
	"github.com/xavierca1/telecrm/internal/logger"
)

// RecordCallUseCase is the status transition engine: it validates the
// call/response pair, synchronizes the lead, and appends a call record
// for connected outcomes. A not_connected outcome updates the lead but
// leaves the call log untouched, so the log reflects successful
// connections only while the lead always shows the latest attempt.
type RecordCallUseCase struct {
	Leads LeadRepositoryInterface
	Calls CallRecordRepositoryInterface
	Users UserRepositoryInterface
	Queue QueueProducerInterface
	Now   func() time.Time
}

func NewRecordCallUseCase(
	leads LeadRepositoryInterface,
	calls CallRecordRepositoryInterface,
	users UserRepositoryInterface,
	producer QueueProducerInterface,
) *RecordCallUseCase {
	return &RecordCallUseCase{
		Leads: leads,
		Calls: calls,
		Users: users,
		Queue: producer,
		Now:   time.Now,
	}
}

func (uc *RecordCallUseCase) UpdateStatus(ctx context.Context, leadID string, input UpdateLeadStatusInput, actor entity.Actor) (*entity.Lead, error) {
	lead, err := uc.Leads.FindByID(ctx, leadID)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return nil, NotFound("lead not found")
		}
		return nil, err
	}

	if !CanAccess(actor, lead.TelecallerID) {
		return nil, Forbidden("not authorized to update this lead")
	}

	if derr := validateStatusPair(input.CallStatus, input.ResponseStatus); derr != nil {
		return nil, derr
	}

	now := uc.Now()
	lead.CallStatus = input.CallStatus
	lead.ResponseStatus = input.ResponseStatus
	lead.LastUpdated = now

	if err := uc.Leads.Save(ctx, lead); err != nil {
		return nil, err
	}

	// The lead update and the record insert are two separate writes;
	// a crash in between leaves the lead updated and the record
	// missing, which is acceptable for this log.
	if input.CallStatus == entity.CallConnected {
		record := entity.NewCallRecord(lead, actor, input.CallStatus, input.ResponseStatus, now)
		if err := uc.Calls.Create(ctx, record); err != nil {
			return nil, err
		}
	}

	if input.ResponseStatus == entity.ResponseCallback {
		uc.publishFollowUp(ctx, lead, now)
	}

	return lead, nil
}

// publishFollowUp queues a reminder for callback outcomes. Failures are
// logged, not surfaced: the status update itself already succeeded.
func (uc *RecordCallUseCase) publishFollowUp(ctx context.Context, lead *entity.Lead, when time.Time) {
	if uc.Queue == nil {
		return
	}

	telecaller, err := uc.Users.FindByID(ctx, lead.TelecallerID)
	if err != nil {
		logger.Error("failed loading telecaller for follow-up",
			zap.String("leadId", lead.ID), zap.Error(err))
		return
	}

	payload := queue.FollowUpPayload{
		LeadID:          lead.ID,
		LeadName:        lead.Name,
		Phone:           lead.Phone,
		ResponseStatus:  string(lead.ResponseStatus),
		TelecallerID:    telecaller.ID,
		TelecallerName:  telecaller.Name,
		TelecallerEmail: telecaller.Email,
		RequestedAt:     when,
	}

	if err := uc.Queue.PublishFollowUp(ctx, payload); err != nil {
		logger.Error("failed publishing follow-up",
			zap.String("leadId", lead.ID), zap.Error(err))
	}
}
