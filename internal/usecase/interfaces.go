package usecase

import (
	"context"
	"time"

	"github.com/xavierca1/telecrm/internal/entity"
	"github.com/xavierca1/telecrm/internal/infra/queue"
)

// Repositories return the entity sentinels from internal/entity when a
// record is absent; usecases translate those into DomainError values.

type LeadRepositoryInterface interface {
	FindByID(ctx context.Context, id string) (*entity.Lead, error)
	FindAll(ctx context.Context) ([]entity.Lead, error)
	FindByTelecaller(ctx context.Context, telecallerID string) ([]entity.Lead, error)
	Create(ctx context.Context, lead *entity.Lead) error
	Save(ctx context.Context, lead *entity.Lead) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// DayCount is one group-by-day aggregation row. Date is a UTC calendar
// day formatted YYYY-MM-DD; only days with at least one record appear.
type DayCount struct {
	Date  string
	Calls int64
}

type CallRecordRepositoryInterface interface {
	FindByID(ctx context.Context, id string) (*entity.CallRecord, error)
	FindAll(ctx context.Context) ([]entity.CallRecord, error)
	FindByTelecaller(ctx context.Context, telecallerID string) ([]entity.CallRecord, error)
	FindByLead(ctx context.Context, leadID string) ([]entity.CallRecord, error)
	Create(ctx context.Context, record *entity.CallRecord) error
	Count(ctx context.Context) (int64, error)
	CountByDaySince(ctx context.Context, since time.Time) ([]DayCount, error)
}

type UserRepositoryInterface interface {
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByRole(ctx context.Context, role entity.Role) ([]entity.User, error)
	Create(ctx context.Context, user *entity.User) error
	Save(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id string) error
	CountByRole(ctx context.Context, role entity.Role) (int64, error)
}

type QueueProducerInterface interface {
	PublishFollowUp(ctx context.Context, payload queue.FollowUpPayload) error
}
