package directory_test

import (
	"context"
	"testing"

	directory "github.com/goliatone/go-directory"
	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestOrganisationResolver_Guards(t *testing.T) {
	store := &MockOrganisations{}
	resolver := directory.NewOrganisationResolver(store).WithLogger(testLogger{})

	input := directory.OrganisationInput{Name: "Acme", Description: "A thing"}

	t.Run("reads reject anonymous callers", func(t *testing.T) {
		_, err := resolver.Organisations(context.Background(), directory.NoArgs{})
		assert.ErrorIs(t, err, directory.ErrNotAuthenticated)

		_, err = resolver.Organisation(context.Background(), directory.OrganisationArgs{ID: uuid.New()})
		assert.ErrorIs(t, err, directory.ErrNotAuthenticated)
	})

	t.Run("writes reject anonymous callers", func(t *testing.T) {
		_, err := resolver.Create(context.Background(), input)
		assert.ErrorIs(t, err, directory.ErrNotAuthenticated)

		_, err = resolver.Edit(context.Background(), directory.OrganisationUpdateArgs{ID: uuid.New(), Input: input})
		assert.ErrorIs(t, err, directory.ErrNotAuthenticated)

		ok, err := resolver.Delete(context.Background(), directory.OrganisationArgs{ID: uuid.New()})
		assert.ErrorIs(t, err, directory.ErrNotAuthenticated)
		assert.False(t, ok)
	})

	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "List", mock.Anything)
}

func TestOrganisationResolver_Create(t *testing.T) {
	owner := uuid.New()
	ctx := authedCtx(owner.String(), "ana@x.com", "USER")

	t.Run("attaches the acting identity as owner", func(t *testing.T) {
		store := &MockOrganisations{}
		store.On("Create", mock.Anything, mock.MatchedBy(func(o *directory.Organisation) bool {
			return o.UserID == owner && o.Name == "Acme"
		})).Return(&directory.Organisation{
			ID:     uuid.New(),
			Name:   "Acme",
			UserID: owner,
			Status: directory.StatusInactive,
		}, nil)

		resolver := directory.NewOrganisationResolver(store).WithLogger(testLogger{})

		record, err := resolver.Create(ctx, directory.OrganisationInput{
			Name:        "Acme",
			Description: "A thing",
		})

		assert.NoError(t, err)
		assert.Equal(t, owner, record.UserID)
		store.AssertExpectations(t)
	})

	t.Run("validation failure never reaches the store", func(t *testing.T) {
		store := &MockOrganisations{}
		resolver := directory.NewOrganisationResolver(store).WithLogger(testLogger{})

		record, err := resolver.Create(ctx, directory.OrganisationInput{Description: "A thing"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Name is required")
		assert.Nil(t, record)
		store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestOrganisationResolver_Edit(t *testing.T) {
	ctx := authedCtx(uuid.NewString(), "ana@x.com", "USER")
	input := directory.OrganisationInput{Name: "Acme", Description: "Updated", Status: directory.StatusActive}

	t.Run("updates an existing record", func(t *testing.T) {
		id := uuid.New()
		stored := &directory.Organisation{ID: id, Name: "Acme", Description: "Original", Status: directory.StatusInactive}
		updated := &directory.Organisation{ID: id, Name: "Acme", Description: "Updated", Status: directory.StatusActive}

		store := &MockOrganisations{}
		store.On("GetByID", mock.Anything, id).Return(stored, nil)
		store.On("Update", mock.Anything, mock.MatchedBy(func(o *directory.Organisation) bool {
			return o.ID == id && o.Description == "Updated" && o.Status == directory.StatusActive
		})).Return(updated, nil)

		resolver := directory.NewOrganisationResolver(store).WithLogger(testLogger{})

		record, err := resolver.Edit(ctx, directory.OrganisationUpdateArgs{ID: id, Input: input})
		assert.NoError(t, err)
		assert.Equal(t, updated, record)
	})

	t.Run("omitted fields keep their stored values", func(t *testing.T) {
		id := uuid.New()
		stored := &directory.Organisation{ID: id, Name: "Acme", Description: "Original", Status: directory.StatusActive}

		store := &MockOrganisations{}
		store.On("GetByID", mock.Anything, id).Return(stored, nil)
		store.On("Update", mock.Anything, mock.MatchedBy(func(o *directory.Organisation) bool {
			return o.Name == "Acme Corp" &&
				o.Description == "Original" &&
				o.Status == directory.StatusActive
		})).Return(stored, nil)

		resolver := directory.NewOrganisationResolver(store).WithLogger(testLogger{})

		_, err := resolver.Edit(ctx, directory.OrganisationUpdateArgs{
			ID:    id,
			Input: directory.OrganisationInput{Name: "Acme Corp"},
		})
		assert.NoError(t, err)
		store.AssertExpectations(t)
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		id := uuid.New()

		store := &MockOrganisations{}
		resolver := directory.NewOrganisationResolver(store).WithLogger(testLogger{})

		record, err := resolver.Edit(ctx, directory.OrganisationUpdateArgs{
			ID:    id,
			Input: directory.OrganisationInput{Status: "PAUSED"},
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Status must be either ACTIVE or INACTIVE")
		assert.Nil(t, record)
		store.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("missing target fails with not found", func(t *testing.T) {
		id := uuid.New()

		store := &MockOrganisations{}
		store.On("GetByID", mock.Anything, id).
			Return(nil, repository.NewRecordNotFound())

		resolver := directory.NewOrganisationResolver(store).WithLogger(testLogger{})

		record, err := resolver.Edit(ctx, directory.OrganisationUpdateArgs{ID: id, Input: input})
		assert.ErrorIs(t, err, directory.ErrOrganisationNotFound)
		assert.Nil(t, record)
		store.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestOrganisationResolver_Delete(t *testing.T) {
	ctx := authedCtx(uuid.NewString(), "ana@x.com", "USER")

	t.Run("reports success", func(t *testing.T) {
		id := uuid.New()

		store := &MockOrganisations{}
		store.On("Delete", mock.Anything, id).Return(nil)

		resolver := directory.NewOrganisationResolver(store).WithLogger(testLogger{})

		ok, err := resolver.Delete(ctx, directory.OrganisationArgs{ID: id})
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("missing target fails with not found", func(t *testing.T) {
		id := uuid.New()

		store := &MockOrganisations{}
		store.On("Delete", mock.Anything, id).Return(repository.NewRecordNotFound())

		resolver := directory.NewOrganisationResolver(store).WithLogger(testLogger{})

		ok, err := resolver.Delete(ctx, directory.OrganisationArgs{ID: id})
		assert.ErrorIs(t, err, directory.ErrOrganisationNotFound)
		assert.False(t, ok)
	})
}

func TestOrganisationResolver_Reads(t *testing.T) {
	ctx := authedCtx(uuid.NewString(), "ana@x.com", "USER")

	t.Run("organisation returns nothing for an unknown id", func(t *testing.T) {
		id := uuid.New()

		store := &MockOrganisations{}
		store.On("GetByID", mock.Anything, id).Return(nil, repository.NewRecordNotFound())

		resolver := directory.NewOrganisationResolver(store).WithLogger(testLogger{})

		record, err := resolver.Organisation(ctx, directory.OrganisationArgs{ID: id})
		assert.NoError(t, err)
		assert.Nil(t, record)
	})

	t.Run("organisations lists every record", func(t *testing.T) {
		stored := []*directory.Organisation{
			{ID: uuid.New(), Name: "Acme"},
			{ID: uuid.New(), Name: "Globex"},
		}

		store := &MockOrganisations{}
		store.On("List", mock.Anything).Return(stored, nil)

		resolver := directory.NewOrganisationResolver(store).WithLogger(testLogger{})

		records, err := resolver.Organisations(ctx, directory.NoArgs{})
		assert.NoError(t, err)
		assert.Len(t, records, 2)
	})
}
