package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/xavierca1/telecrm/internal/entity"
)

// CallRecordUseCase exposes the append-only call log. Records are never
// updated or deleted.
type CallRecordUseCase struct {
	Calls CallRecordRepositoryInterface
	Leads LeadRepositoryInterface
	Now   func() time.Time
}

func NewCallRecordUseCase(calls CallRecordRepositoryInterface, leads LeadRepositoryInterface) *CallRecordUseCase {
	return &CallRecordUseCase{
		Calls: calls,
		Leads: leads,
		Now:   time.Now,
	}
}

func (uc *CallRecordUseCase) List(ctx context.Context, actor entity.Actor) ([]entity.CallRecord, error) {
	if actor.IsAdmin() {
		return uc.Calls.FindAll(ctx)
	}
	return uc.Calls.FindByTelecaller(ctx, actor.ID)
}

func (uc *CallRecordUseCase) Get(ctx context.Context, id string, actor entity.Actor) (*entity.CallRecord, error) {
	record, err := uc.Calls.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrCallRecordNotFound) {
			return nil, NotFound("call record not found")
		}
		return nil, err
	}

	if !CanAccess(actor, record.TelecallerID) {
		return nil, Forbidden("not authorized to access this call record")
	}

	return record, nil
}

func (uc *CallRecordUseCase) ListByLead(ctx context.Context, leadID string, actor entity.Actor) ([]entity.CallRecord, error) {
	lead, err := uc.Leads.FindByID(ctx, leadID)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return nil, NotFound("lead not found")
		}
		return nil, err
	}

	if !CanAccess(actor, lead.TelecallerID) {
		return nil, Forbidden("not authorized to view call records for this lead")
	}

	return uc.Calls.FindByLead(ctx, leadID)
}

// Create is the direct tooling path onto the call log. It re-validates
// the referenced lead and the status pair itself, appends the record,
// and keeps the lead in sync with this latest attempt.
func (uc *CallRecordUseCase) Create(ctx context.Context, input CreateCallRecordInput, actor entity.Actor) (*entity.CallRecord, error) {
	lead, err := uc.Leads.FindByID(ctx, input.LeadID)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return nil, NotFound("lead not found")
		}
		return nil, err
	}

	if !CanAccess(actor, lead.TelecallerID) {
		return nil, Forbidden("not authorized to create call record for this lead")
	}

	if derr := validateStatusPair(input.CallStatus, input.ResponseStatus); derr != nil {
		return nil, derr
	}

	now := uc.Now()
	record := entity.NewCallRecord(lead, actor, input.CallStatus, input.ResponseStatus, now)
	if err := uc.Calls.Create(ctx, record); err != nil {
		return nil, err
	}

	lead.CallStatus = input.CallStatus
	lead.ResponseStatus = input.ResponseStatus
	lead.LastUpdated = now
	if err := uc.Leads.Save(ctx, lead); err != nil {
		return nil, err
	}

	return record, nil
}
