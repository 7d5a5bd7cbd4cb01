package impl

import (
	"context"
	"testing"
	"time"

	"funnel/internal/domain/entity"
	domainerrors "funnel/internal/domain/errors"
	"funnel/internal/infra/persistence/model"
	"funnel/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leadInput(accountIDs ...uuid.UUID) *usecase.LeadInput {
	return &usecase.LeadInput{
		Title:      "Ms",
		FirstName:  "Jane",
		LastName:   "Roe",
		Email:      ptr("jane@example.com"),
		AccountIDs: accountIDs,
	}
}

func TestLeadService_CreateLead(t *testing.T) {
	fx := createDBServices(t)
	ctx := context.Background()
	acme := fx.account(t, "Acme")
	beta := fx.account(t, "Beta")

	lead, err := fx.leads.CreateLead(ctx, leadInput(beta.ID, acme.ID, beta.ID))
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, lead.ID)
	assert.Equal(t, entity.DefaultEntryPoint, lead.EntryPoint)
	require.Len(t, lead.Accounts, 2)
	assert.Equal(t, "Acme", lead.Accounts[0].CompanyName)
	assert.Equal(t, "Beta", lead.Accounts[1].CompanyName)
}

func TestLeadService_CreateLead_UnknownAccountWritesNothing(t *testing.T) {
	fx := createDBServices(t)
	acme := fx.account(t, "Acme")

	_, err := fx.leads.CreateLead(context.Background(), leadInput(acme.ID, uuid.New()))
	assert.True(t, errors.Is(err, domainerrors.ErrAccountsNotFound))

	assert.Zero(t, fx.count(t, &model.LeadModel{}))
	assert.Zero(t, fx.count(t, &model.LeadAccountModel{}))
}

func TestLeadService_UpdateLead_AccountSemantics(t *testing.T) {
	fx := createDBServices(t)
	ctx := context.Background()
	acme := fx.account(t, "Acme")
	beta := fx.account(t, "Beta")

	lead, err := fx.leads.CreateLead(ctx, leadInput(acme.ID))
	require.NoError(t, err)

	t.Run("nil keeps associations", func(t *testing.T) {
		input := leadInput()
		input.AccountIDs = nil
		input.FirstName = "Janet"

		updated, err := fx.leads.UpdateLead(ctx, lead.ID, input)
		require.NoError(t, err)
		assert.Equal(t, "Janet", updated.FirstName)
		require.Len(t, updated.Accounts, 1)
		assert.Equal(t, acme.ID, updated.Accounts[0].ID)
		assert.Equal(t, lead.CreatedAt.Unix(), updated.CreatedAt.Unix())
	})

	t.Run("list replaces associations", func(t *testing.T) {
		updated, err := fx.leads.UpdateLead(ctx, lead.ID, leadInput(beta.ID))
		require.NoError(t, err)
		require.Len(t, updated.Accounts, 1)
		assert.Equal(t, beta.ID, updated.Accounts[0].ID)
	})

	t.Run("empty list clears associations", func(t *testing.T) {
		updated, err := fx.leads.UpdateLead(ctx, lead.ID, leadInput([]uuid.UUID{}...))
		require.NoError(t, err)
		assert.Empty(t, updated.Accounts)
	})

	t.Run("unknown lead", func(t *testing.T) {
		_, err := fx.leads.UpdateLead(ctx, uuid.New(), leadInput())
		assert.True(t, errors.Is(err, domainerrors.ErrLeadNotFound))
	})
}

func TestLeadService_AssociationIdempotence(t *testing.T) {
	fx := createDBServices(t)
	ctx := context.Background()
	acme := fx.account(t, "Acme")

	lead, err := fx.leads.CreateLead(ctx, leadInput())
	require.NoError(t, err)

	first, err := fx.leads.AddContactToAccount(ctx, acme.ID, lead.ID)
	require.NoError(t, err)
	assert.True(t, first.Changed)
	assert.Equal(t, "Lead "+lead.ID.String()+" added as contact to account "+acme.ID.String(), first.Message)

	second, err := fx.leads.AddContactToAccount(ctx, acme.ID, lead.ID)
	require.NoError(t, err)
	assert.False(t, second.Changed)
	assert.Contains(t, second.Message, "is already a contact")
	assert.EqualValues(t, 1, fx.count(t, &model.LeadAccountModel{}))

	listed, err := fx.leads.ListAccountLeads(ctx, acme.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)

	removed, err := fx.leads.RemoveContactFromAccount(ctx, acme.ID, lead.ID)
	require.NoError(t, err)
	assert.True(t, removed.Changed)

	again, err := fx.leads.RemoveContactFromAccount(ctx, acme.ID, lead.ID)
	require.NoError(t, err)
	assert.False(t, again.Changed)
	assert.Contains(t, again.Message, "is not a contact")

	_, err = fx.leads.AddContactToAccount(ctx, uuid.New(), lead.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))

	_, err = fx.leads.AddContactToAccount(ctx, acme.ID, uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrLeadNotFound))
}

func TestLeadService_DeleteLead_RemovesChildren(t *testing.T) {
	fx := createDBServices(t)
	ctx := context.Background()
	acme := fx.account(t, "Acme")

	lead, err := fx.leads.CreateLead(ctx, leadInput(acme.ID))
	require.NoError(t, err)

	_, err = fx.leads.UpsertLeadDetails(ctx, lead.ID, &usecase.LeadDetailsInput{Occupation: ptr("Engineer")})
	require.NoError(t, err)
	_, err = fx.leads.AddLeadNote(ctx, lead.ID, &usecase.LeadNoteInput{Note: "called"})
	require.NoError(t, err)
	_, err = fx.leads.AddLeadProduct(ctx, lead.ID, &usecase.LeadProductInput{Product: "Premium"})
	require.NoError(t, err)

	require.NoError(t, fx.leads.DeleteLead(ctx, lead.ID))

	_, err = fx.leads.GetLead(ctx, lead.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrLeadNotFound))
	assert.Zero(t, fx.count(t, &model.LeadAccountModel{}))
	assert.Zero(t, fx.count(t, &model.LeadDetailsModel{}))
	assert.Zero(t, fx.count(t, &model.LeadNoteModel{}))
	assert.Zero(t, fx.count(t, &model.LeadProductModel{}))

	err = fx.leads.DeleteLead(ctx, lead.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrLeadNotFound))
}

func TestLeadService_Details(t *testing.T) {
	fx := createDBServices(t)
	ctx := context.Background()

	lead, err := fx.leads.CreateLead(ctx, leadInput())
	require.NoError(t, err)

	_, err = fx.leads.GetLeadDetails(ctx, lead.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrLeadDetailsNotFound))

	dob := time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC)
	saved, err := fx.leads.UpsertLeadDetails(ctx, lead.ID, &usecase.LeadDetailsInput{
		DOB:       &dob,
		Children:  ptr(2),
		Addresses: []map[string]any{{"city": "Taipei"}},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, *saved.Children)
	require.Len(t, saved.Addresses, 1)

	replaced, err := fx.leads.UpsertLeadDetails(ctx, lead.ID, &usecase.LeadDetailsInput{Gender: ptr("F")})
	require.NoError(t, err)
	assert.Equal(t, saved.ID, replaced.ID)
	assert.Nil(t, replaced.Children)
	assert.Empty(t, replaced.Addresses)
	assert.EqualValues(t, 1, fx.count(t, &model.LeadDetailsModel{}))

	require.NoError(t, fx.leads.DeleteLeadDetails(ctx, lead.ID))
	err = fx.leads.DeleteLeadDetails(ctx, lead.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrLeadDetailsNotFound))

	_, err = fx.leads.UpsertLeadDetails(ctx, uuid.New(), &usecase.LeadDetailsInput{})
	assert.True(t, errors.Is(err, domainerrors.ErrLeadNotFound))
}

func TestLeadService_NotesAndProducts(t *testing.T) {
	fx := createDBServices(t)
	ctx := context.Background()

	lead, err := fx.leads.CreateLead(ctx, leadInput())
	require.NoError(t, err)

	note, err := fx.leads.AddLeadNote(ctx, lead.ID, &usecase.LeadNoteInput{Note: "first call", UserID: nil})
	require.NoError(t, err)
	assert.NotZero(t, note.ID)

	notes, err := fx.leads.ListLeadNotes(ctx, lead.ID)
	require.NoError(t, err)
	require.Len(t, notes, 1)

	require.NoError(t, fx.leads.DeleteLeadNote(ctx, lead.ID, note.ID))
	err = fx.leads.DeleteLeadNote(ctx, lead.ID, note.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrLeadNoteNotFound))

	product, err := fx.leads.AddLeadProduct(ctx, lead.ID, &usecase.LeadProductInput{Product: "Basic", InterestLevel: ptr("low")})
	require.NoError(t, err)

	updated, err := fx.leads.UpdateLeadProduct(ctx, lead.ID, product.ID, &usecase.LeadProductInput{Product: "Premium"})
	require.NoError(t, err)
	assert.Equal(t, "Premium", updated.Product)
	assert.Nil(t, updated.InterestLevel)

	products, err := fx.leads.ListLeadProducts(ctx, lead.ID)
	require.NoError(t, err)
	require.Len(t, products, 1)

	_, err = fx.leads.UpdateLeadProduct(ctx, lead.ID, product.ID+100, &usecase.LeadProductInput{Product: "x"})
	assert.True(t, errors.Is(err, domainerrors.ErrLeadProductNotFound))

	require.NoError(t, fx.leads.DeleteLeadProduct(ctx, lead.ID, product.ID))

	_, err = fx.leads.ListLeadNotes(ctx, uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrLeadNotFound))
}

func TestLeadService_ChildRowsRequireLead(t *testing.T) {
	fx := createDBServices(t)
	ctx := context.Background()
	missing := uuid.New()

	err := fx.leads.DeleteLeadNote(ctx, missing, 1)
	assert.True(t, errors.Is(err, domainerrors.ErrLeadNotFound))

	err = fx.leads.DeleteLeadProduct(ctx, missing, 1)
	assert.True(t, errors.Is(err, domainerrors.ErrLeadNotFound))

	_, err = fx.leads.UpdateLeadProduct(ctx, missing, 1, &usecase.LeadProductInput{Product: "x"})
	assert.True(t, errors.Is(err, domainerrors.ErrLeadNotFound))
}
