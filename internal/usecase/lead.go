package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/xavierca1/telecrm/internal/entity"
)

// LeadUseCase implements the lead store operations. Every operation
// takes the acting user explicitly; ownership is checked only after
// the lead is known to exist.
type LeadUseCase struct {
	Repo LeadRepositoryInterface
	Now  func() time.Time
}

func NewLeadUseCase(repo LeadRepositoryInterface) *LeadUseCase {
	return &LeadUseCase{
		Repo: repo,
		Now:  time.Now,
	}
}

func (uc *LeadUseCase) List(ctx context.Context, actor entity.Actor) ([]entity.Lead, error) {
	if actor.IsAdmin() {
		return uc.Repo.FindAll(ctx)
	}
	return uc.Repo.FindByTelecaller(ctx, actor.ID)
}

func (uc *LeadUseCase) Get(ctx context.Context, id string, actor entity.Actor) (*entity.Lead, error) {
	lead, err := uc.Repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return nil, NotFound("lead not found")
		}
		return nil, err
	}

	if !CanAccess(actor, lead.TelecallerID) {
		return nil, Forbidden("not authorized to access this lead")
	}

	return lead, nil
}

func (uc *LeadUseCase) Create(ctx context.Context, input CreateLeadInput, actor entity.Actor) (*entity.Lead, error) {
	if errs := ValidateCreateLeadInput(input); len(errs) > 0 {
		return nil, validationFailed(errs)
	}

	lead, err := entity.NewLead(input.Name, input.Email, input.Phone, input.Address, actor, uc.Now())
	if err != nil {
		return nil, Invalid(err.Error())
	}

	if err := uc.Repo.Create(ctx, lead); err != nil {
		return nil, err
	}

	return lead, nil
}

func (uc *LeadUseCase) Update(ctx context.Context, id string, input UpdateLeadInput, actor entity.Actor) (*entity.Lead, error) {
	lead, err := uc.Get(ctx, id, actor)
	if err != nil {
		return nil, err
	}

	// Partial update: provided fields overwrite, missing fields are
	// no-ops, never clears.
	if input.Name != "" {
		lead.Name = input.Name
	}
	if input.Email != "" {
		lead.Email = input.Email
	}
	if input.Phone != "" {
		lead.Phone = input.Phone
	}
	if input.Address != "" {
		lead.Address = input.Address
	}
	if input.CallStatus != "" {
		if !input.CallStatus.IsValid() {
			return nil, Invalid("call status must be connected or not_connected")
		}
		lead.CallStatus = input.CallStatus
	}
	if input.ResponseStatus != "" {
		lead.ResponseStatus = input.ResponseStatus
	}

	if err := lead.Validate(); err != nil {
		return nil, Invalid(err.Error())
	}

	lead.LastUpdated = uc.Now()

	if err := uc.Repo.Save(ctx, lead); err != nil {
		return nil, err
	}

	return lead, nil
}

func (uc *LeadUseCase) Delete(ctx context.Context, id string, actor entity.Actor) error {
	if _, err := uc.Get(ctx, id, actor); err != nil {
		return err
	}
	// Hard delete, no tombstone.
	return uc.Repo.Delete(ctx, id)
}
