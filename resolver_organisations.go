package directory

import (
	"context"

	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
)

// OrganisationArgs identifies a single organisation record
type OrganisationArgs struct {
	ID uuid.UUID `json:"id"`
}

// OrganisationUpdateArgs pairs the target id with the writable fields
type OrganisationUpdateArgs struct {
	ID    uuid.UUID `json:"id"`
	Input OrganisationInput
}

// OrganisationResolver exposes the organisation queries and mutations. Every
// operation requires a present identity; the owner of a new organisation is
// always the acting identity.
type OrganisationResolver struct {
	store  Organisations
	logger Logger

	Organisation  HandlerFunc[OrganisationArgs, *Organisation]
	Organisations HandlerFunc[NoArgs, []*Organisation]
	Create        HandlerFunc[OrganisationInput, *Organisation]
	Edit          HandlerFunc[OrganisationUpdateArgs, *Organisation]
	Delete        HandlerFunc[OrganisationArgs, bool]
}

func NewOrganisationResolver(store Organisations) *OrganisationResolver {
	r := &OrganisationResolver{
		store:  store,
		logger: defLogger{},
	}

	r.Organisation = Combine(r.findOrganisation, Authenticated)
	r.Organisations = Combine(r.listOrganisations, Authenticated)
	r.Create = Combine(r.createOrganisation, Authenticated)
	r.Edit = Combine(r.editOrganisation, Authenticated)
	r.Delete = Combine(r.deleteOrganisation, Authenticated)

	return r
}

func (r *OrganisationResolver) WithLogger(logger Logger) *OrganisationResolver {
	r.logger = logger
	return r
}

func (r *OrganisationResolver) findOrganisation(ctx context.Context, args OrganisationArgs) (*Organisation, error) {
	record, err := r.store.GetByID(ctx, args.ID)
	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, nil
		}
		return nil, wrapStoreError("organisation", err)
	}
	return record, nil
}

func (r *OrganisationResolver) listOrganisations(ctx context.Context, _ NoArgs) ([]*Organisation, error) {
	records, err := r.store.List(ctx)
	if err != nil {
		return nil, wrapStoreError("organisations", err)
	}
	return records, nil
}

// createOrganisation validates the input and persists a record owned by the
// acting identity. The guard guarantees an identity is present here.
func (r *OrganisationResolver) createOrganisation(ctx context.Context, input OrganisationInput) (*Organisation, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	identity, _ := IdentityFromContext(ctx)
	owner, err := uuid.Parse(identity.ID())
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "acting identity has a malformed id")
	}

	record := &Organisation{
		Name:        input.Name,
		Description: input.Description,
		Status:      input.Status,
		UserID:      owner,
	}

	created, err := r.store.Create(ctx, record)
	if err != nil {
		return nil, wrapStoreError("createOrganisation", err)
	}
	return created, nil
}

// editOrganisation merges the supplied fields onto the stored record.
// Omitted fields keep their stored values, so renaming an organisation
// never changes its status.
func (r *OrganisationResolver) editOrganisation(ctx context.Context, args OrganisationUpdateArgs) (*Organisation, error) {
	if err := args.Input.ValidatePartial(); err != nil {
		return nil, err
	}

	existing, err := r.store.GetByID(ctx, args.ID)
	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, ErrOrganisationNotFound
		}
		return nil, wrapStoreError("editOrganisation", err)
	}

	if args.Input.Name != "" {
		existing.Name = args.Input.Name
	}
	if args.Input.Description != "" {
		existing.Description = args.Input.Description
	}
	if args.Input.Status != "" {
		existing.Status = args.Input.Status
	}

	updated, err := r.store.Update(ctx, existing)
	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, ErrOrganisationNotFound
		}
		return nil, wrapStoreError("editOrganisation", err)
	}
	return updated, nil
}

func (r *OrganisationResolver) deleteOrganisation(ctx context.Context, args OrganisationArgs) (bool, error) {
	if err := r.store.Delete(ctx, args.ID); err != nil {
		if repository.IsRecordNotFound(err) {
			return false, ErrOrganisationNotFound
		}
		return false, wrapStoreError("deleteOrganisation", err)
	}
	return true, nil
}
