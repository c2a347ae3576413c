package directory

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Organisations is the persistence surface for organisation records
type Organisations interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Organisation, error)
	List(ctx context.Context) ([]*Organisation, error)
	Create(ctx context.Context, record *Organisation) (*Organisation, error)
	Update(ctx context.Context, record *Organisation) (*Organisation, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type organisations struct {
	repo repository.Repository[*Organisation]
	db   *bun.DB
}

var _ Organisations = (*organisations)(nil)

func NewOrganisationsRepository(db *bun.DB) Organisations {
	repo := repository.NewRepository[*Organisation](db, repository.ModelHandlers[*Organisation]{
		NewRecord: func() *Organisation { return &Organisation{} },
		GetID: func(o *Organisation) uuid.UUID {
			if o == nil {
				return uuid.Nil
			}
			return o.ID
		},
		SetID: func(o *Organisation, id uuid.UUID) {
			if o != nil {
				o.ID = id
			}
		},
		GetIdentifier: func() string {
			return "id"
		},
	})

	return &organisations{
		repo: repo,
		db:   db,
	}
}

// GetByID loads the organisation with its owner populated
func (a *organisations) GetByID(ctx context.Context, id uuid.UUID) (*Organisation, error) {
	record := &Organisation{}
	err := a.db.NewSelect().
		Model(record).
		Relation("User").
		Where("?TableAlias.id = ?", id).
		Limit(1).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.NewRecordNotFound().
				WithMetadata(map[string]any{"id": id.String()})
		}
		return nil, err
	}

	return record, nil
}

func (a *organisations) List(ctx context.Context) ([]*Organisation, error) {
	var records []*Organisation
	err := a.db.NewSelect().
		Model(&records).
		Relation("User").
		Order("created_at ASC").
		Scan(ctx)

	if err != nil {
		return nil, err
	}

	return records, nil
}

// Create persists a new organisation. The owner reference must be set by the
// caller; records without one never reach the database.
func (a *organisations) Create(ctx context.Context, record *Organisation) (*Organisation, error) {
	if record.UserID == uuid.Nil {
		return nil, errors.New("organisation requires an owner")
	}

	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	record.EnsureStatus()

	created, err := a.repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}

	return a.GetByID(ctx, created.ID)
}

// Update applies the writable fields to an existing record. The owner
// reference is immutable; it is never part of the update set.
func (a *organisations) Update(ctx context.Context, record *Organisation) (*Organisation, error) {
	existing, err := a.GetByID(ctx, record.ID)
	if err != nil {
		return nil, err
	}

	existing.Name = record.Name
	existing.Description = record.Description
	existing.Status = record.Status
	now := time.Now()
	existing.UpdatedAt = &now

	err = a.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := a.repo.UpdateTx(ctx, tx, existing, repository.UpdateByID(existing.ID.String()))
		return err
	})
	if err != nil {
		return nil, err
	}

	return a.GetByID(ctx, record.ID)
}

func (a *organisations) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := a.db.NewDelete().
		Model((*Organisation)(nil)).
		Where("?TableAlias.id = ?", id).
		Exec(ctx)

	if err != nil {
		return err
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return repository.NewRecordNotFound().
			WithMetadata(map[string]any{"id": id.String()})
	}

	return nil
}
