package postgres

import (
	"context"
	"testing"
	"time"

	"funnel/internal/domain/entity"
	"funnel/internal/domain/repository"
	"funnel/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

func createAccount(t *testing.T, db *gorm.DB, name string, parent *uuid.UUID) *entity.Account {
	t.Helper()

	now := time.Now().UTC()
	account := &entity.Account{
		CompanyName:     name,
		Industry:        strPtr("Retail"),
		Address:         map[string]any{"city": "Taipei"},
		ParentAccountID: parent,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	require.NoError(t, NewAccountRepository(db).Create(context.Background(), account))

	return account
}

func createLead(t *testing.T, db *gorm.DB, firstName string) *entity.Lead {
	t.Helper()

	lead := &entity.Lead{
		Title:      "Mr",
		FirstName:  firstName,
		LastName:   "Doe",
		EntryPoint: entity.DefaultEntryPoint,
	}
	require.NoError(t, NewLeadRepository(db).Create(context.Background(), lead))

	return lead
}

func TestAccountRepository_CRUD(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewAccountRepository(db)
	ctx := context.Background()

	account := createAccount(t, db, "Acme Corp", nil)
	assert.NotEqual(t, uuid.Nil, account.ID)
	assert.Equal(t, account.CreatedAt, account.UpdatedAt)

	found, err := repo.FindByID(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", found.CompanyName)
	assert.Equal(t, "Retail", *found.Industry)
	assert.Equal(t, "Taipei", found.Address["city"])
	assert.Nil(t, found.SocialLinks)

	found.CompanyName = "Acme Inc"
	found.Industry = nil
	found.Address = nil
	require.NoError(t, repo.Update(ctx, found))

	updated, err := repo.FindByID(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Inc", updated.CompanyName)
	assert.Nil(t, updated.Industry)
	assert.Nil(t, updated.Address)
	assert.Equal(t, account.CreatedAt.Unix(), updated.CreatedAt.Unix())

	require.NoError(t, repo.Delete(ctx, account.ID))
	_, err = repo.FindByID(ctx, account.ID)
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, account.ID), repository.ErrAccountNotFound)
	assert.ErrorIs(t, repo.Update(ctx, &entity.Account{ID: uuid.New(), CompanyName: "x"}), repository.ErrAccountNotFound)
}

func TestAccountRepository_Hierarchy(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewAccountRepository(db)
	ctx := context.Background()

	parent := createAccount(t, db, "Parent", nil)
	child := createAccount(t, db, "Child", &parent.ID)

	parentID, err := repo.FindParentID(ctx, child.ID)
	require.NoError(t, err)
	require.NotNil(t, parentID)
	assert.Equal(t, parent.ID, *parentID)

	rootParent, err := repo.FindParentID(ctx, parent.ID)
	require.NoError(t, err)
	assert.Nil(t, rootParent)

	_, err = repo.FindParentID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)

	require.NoError(t, repo.DetachChildren(ctx, parent.ID))
	detached, err := repo.FindByID(ctx, child.ID)
	require.NoError(t, err)
	assert.Nil(t, detached.ParentAccountID)

	count, err := repo.CountByIDs(ctx, []uuid.UUID{parent.ID, child.ID, uuid.New()})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	accounts, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, accounts, 2)
}

func TestContactRepository_CRUD(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewContactRepository(db)
	ctx := context.Background()

	account := createAccount(t, db, "Acme Corp", nil)
	contact := &entity.Contact{
		FirstName:   "Jane",
		Email:       strPtr("jane@example.com"),
		SocialLinks: map[string]any{"linkedin": "jane"},
		AccountID:   &account.ID,
	}
	require.NoError(t, repo.Create(ctx, contact))
	assert.NotEqual(t, uuid.Nil, contact.ID)

	byAccount, err := repo.ListByAccount(ctx, account.ID)
	require.NoError(t, err)
	require.Len(t, byAccount, 1)
	assert.Equal(t, "jane", byAccount[0].SocialLinks["linkedin"])

	contact.LastName = strPtr("Doe")
	require.NoError(t, repo.Update(ctx, contact))

	require.NoError(t, repo.DetachAccount(ctx, account.ID))
	found, err := repo.FindByID(ctx, contact.ID)
	require.NoError(t, err)
	assert.Nil(t, found.AccountID)
	assert.Equal(t, "Doe", *found.LastName)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, repo.Delete(ctx, contact.ID))
	_, err = repo.FindByID(ctx, contact.ID)
	assert.ErrorIs(t, err, repository.ErrContactNotFound)
}

func TestLeadRepository_Associations(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewLeadRepository(db)
	ctx := context.Background()

	beta := createAccount(t, db, "Beta", nil)
	alpha := createAccount(t, db, "Alpha", nil)
	lead := createLead(t, db, "John")

	require.NoError(t, repo.ReplaceAccounts(ctx, lead.ID, []uuid.UUID{beta.ID, alpha.ID}))

	found, err := repo.FindByID(ctx, lead.ID)
	require.NoError(t, err)
	require.Len(t, found.Accounts, 2)
	assert.Equal(t, "Alpha", found.Accounts[0].CompanyName)
	assert.Equal(t, "Beta", found.Accounts[1].CompanyName)

	has, err := repo.HasAccount(ctx, lead.ID, alpha.ID)
	require.NoError(t, err)
	assert.True(t, has)

	// Adding an existing pair is a no-op.
	require.NoError(t, repo.AddAccount(ctx, lead.ID, alpha.ID))

	require.NoError(t, repo.RemoveAccount(ctx, lead.ID, alpha.ID))
	has, err = repo.HasAccount(ctx, lead.ID, alpha.ID)
	require.NoError(t, err)
	assert.False(t, has)

	byAccount, err := repo.ListByAccount(ctx, beta.ID)
	require.NoError(t, err)
	require.Len(t, byAccount, 1)
	assert.Equal(t, lead.ID, byAccount[0].ID)

	require.NoError(t, repo.DetachAccount(ctx, beta.ID))
	found, err = repo.FindByID(ctx, lead.ID)
	require.NoError(t, err)
	assert.Empty(t, found.Accounts)

	require.NoError(t, repo.ReplaceAccounts(ctx, lead.ID, []uuid.UUID{alpha.ID}))
	require.NoError(t, repo.ReplaceAccounts(ctx, lead.ID, nil))
	found, err = repo.FindByID(ctx, lead.ID)
	require.NoError(t, err)
	assert.Empty(t, found.Accounts)
}

func TestLeadRepository_UpdateAndDelete(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewLeadRepository(db)
	ctx := context.Background()

	account := createAccount(t, db, "Acme", nil)
	lead := createLead(t, db, "John")
	require.NoError(t, repo.ReplaceAccounts(ctx, lead.ID, []uuid.UUID{account.ID}))

	lead.FirstName = "Johnny"
	lead.Platform = strPtr("web")
	require.NoError(t, repo.Update(ctx, lead))

	found, err := repo.FindByID(ctx, lead.ID)
	require.NoError(t, err)
	assert.Equal(t, "Johnny", found.FirstName)
	assert.Equal(t, "web", *found.Platform)
	assert.Equal(t, entity.DefaultEntryPoint, found.EntryPoint)
	assert.Len(t, found.Accounts, 1)

	require.NoError(t, repo.SaveDetails(ctx, &entity.LeadDetails{LeadID: lead.ID, Gender: strPtr("male")}))
	require.NoError(t, repo.CreateNote(ctx, &entity.LeadNote{LeadID: lead.ID, Note: "called"}))
	require.NoError(t, repo.CreateProduct(ctx, &entity.LeadProduct{LeadID: lead.ID, Product: "Plan A"}))

	require.NoError(t, repo.Delete(ctx, lead.ID))
	_, err = repo.FindByID(ctx, lead.ID)
	assert.ErrorIs(t, err, repository.ErrLeadNotFound)

	_, err = repo.FindDetails(ctx, lead.ID)
	assert.ErrorIs(t, err, repository.ErrLeadDetailsNotFound)
	notes, err := repo.ListNotes(ctx, lead.ID)
	require.NoError(t, err)
	assert.Empty(t, notes)

	has, err := repo.HasAccount(ctx, lead.ID, account.ID)
	require.NoError(t, err)
	assert.False(t, has)

	assert.ErrorIs(t, repo.Delete(ctx, lead.ID), repository.ErrLeadNotFound)
}

func TestLeadRepository_Details(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewLeadRepository(db)
	ctx := context.Background()

	lead := createLead(t, db, "John")
	children := 2
	details := &entity.LeadDetails{
		LeadID:    lead.ID,
		Children:  &children,
		Addresses: []map[string]any{{"city": "Taipei"}},
	}
	require.NoError(t, repo.SaveDetails(ctx, details))
	firstID := details.ID
	assert.NotZero(t, firstID)

	replacement := &entity.LeadDetails{LeadID: lead.ID, Occupation: strPtr("Engineer")}
	require.NoError(t, repo.SaveDetails(ctx, replacement))
	assert.Equal(t, firstID, replacement.ID)

	found, err := repo.FindDetails(ctx, lead.ID)
	require.NoError(t, err)
	assert.Equal(t, "Engineer", *found.Occupation)
	assert.Nil(t, found.Children)
	assert.Empty(t, found.Addresses)

	require.NoError(t, repo.DeleteDetails(ctx, lead.ID))
	assert.ErrorIs(t, repo.DeleteDetails(ctx, lead.ID), repository.ErrLeadDetailsNotFound)
}

func TestLeadRepository_NotesAndProducts(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewLeadRepository(db)
	ctx := context.Background()

	lead := createLead(t, db, "John")
	other := createLead(t, db, "Jane")

	note := &entity.LeadNote{LeadID: lead.ID, Note: "first call"}
	require.NoError(t, repo.CreateNote(ctx, note))
	assert.NotZero(t, note.ID)

	notes, err := repo.ListNotes(ctx, lead.ID)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "first call", notes[0].Note)

	assert.ErrorIs(t, repo.DeleteNote(ctx, other.ID, note.ID), repository.ErrLeadNoteNotFound)
	require.NoError(t, repo.DeleteNote(ctx, lead.ID, note.ID))

	product := &entity.LeadProduct{LeadID: lead.ID, Product: "Plan A", InterestLevel: strPtr("low")}
	require.NoError(t, repo.CreateProduct(ctx, product))

	product.InterestLevel = strPtr("high")
	require.NoError(t, repo.UpdateProduct(ctx, product))

	found, err := repo.FindProduct(ctx, lead.ID, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "high", *found.InterestLevel)

	_, err = repo.FindProduct(ctx, other.ID, product.ID)
	assert.ErrorIs(t, err, repository.ErrLeadProductNotFound)

	products, err := repo.ListProducts(ctx, lead.ID)
	require.NoError(t, err)
	assert.Len(t, products, 1)

	require.NoError(t, repo.DeleteProduct(ctx, lead.ID, product.ID))
	assert.ErrorIs(t, repo.DeleteProduct(ctx, lead.ID, product.ID), repository.ErrLeadProductNotFound)
}

func TestUserRepository(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &entity.User{Username: "alice", HashedPassword: "hash"}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotZero(t, user.ID)

	err := repo.Create(ctx, &entity.User{Username: "alice", HashedPassword: "other"})
	assert.ErrorIs(t, err, repository.ErrUserAlreadyExists)

	found, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, "hash", found.HashedPassword)

	_, err = repo.FindByUsername(ctx, "bob")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}
