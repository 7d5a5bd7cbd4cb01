package impl

import (
	"context"
	"testing"

	domainerrors "funnel/internal/domain/errors"
	"funnel/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactService_CRUD(t *testing.T) {
	fx := createDBServices(t)
	ctx := context.Background()
	acme := fx.account(t, "Acme")

	_, err := fx.contacts.CreateContact(ctx, &usecase.ContactInput{FirstName: "Carol", AccountID: ptr(uuid.New())})
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))

	contact, err := fx.contacts.CreateContact(ctx, &usecase.ContactInput{
		FirstName: "Carol",
		Email:     ptr("carol@example.com"),
		AccountID: &acme.ID,
		CreatedBy: ptr("alice"),
	})
	require.NoError(t, err)

	updated, err := fx.contacts.UpdateContact(ctx, contact.ID, &usecase.ContactInput{FirstName: "Caroline"})
	require.NoError(t, err)
	assert.Equal(t, "Caroline", updated.FirstName)
	assert.Nil(t, updated.Email)
	assert.Nil(t, updated.AccountID)
	assert.Equal(t, "alice", *updated.CreatedBy)

	all, err := fx.contacts.ListContacts(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, fx.contacts.DeleteContact(ctx, contact.ID))
	_, err = fx.contacts.GetContact(ctx, contact.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrContactNotFound))

	_, err = fx.contacts.UpdateContact(ctx, contact.ID, &usecase.ContactInput{FirstName: "x"})
	assert.True(t, errors.Is(err, domainerrors.ErrContactNotFound))
}
