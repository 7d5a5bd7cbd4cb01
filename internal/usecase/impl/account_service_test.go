package impl

import (
	"context"
	"testing"
	"time"

	"funnel/internal/domain/entity"
	domainerrors "funnel/internal/domain/errors"
	"funnel/internal/domain/repository"
	mockRepo "funnel/internal/mocks/repository"
	"funnel/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service     usecase.AccountUsecase
	txManager   *mockRepo.MockTransactionManager
	accountRepo *mockRepo.MockAccountRepository
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)

	service := NewAccountService(AccountServiceParams{
		TxManager:   txManager,
		AccountRepo: accountRepo,
		Logger:      newDiscardLogger(),
	})

	return accountServiceFixtures{
		service:     service,
		txManager:   txManager,
		accountRepo: accountRepo,
	}
}

func TestAccountService_GetAccount(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.accountRepo.EXPECT().FindByID(ctx, id).Return(&entity.Account{ID: id, CompanyName: "Acme Corp"}, nil)

	account, err := fx.service.GetAccount(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", account.CompanyName)
}

func TestAccountService_GetAccount_NotFound(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.accountRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrAccountNotFound)

	account, err := fx.service.GetAccount(ctx, id)
	assert.Nil(t, account)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}

func TestAccountService_ListAccounts_Error(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.accountRepo.EXPECT().List(ctx).Return(nil, errors.New("db down"))

	_, err := fx.service.ListAccounts(ctx)
	assert.ErrorContains(t, err, "failed to list accounts")
}

func TestAccountService_CreateAccount(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	parentID := uuid.New()
	input := &usecase.AccountInput{
		CompanyName:     "Acme Corp",
		Industry:        ptr("Retail"),
		ParentAccountID: &parentID,
		CreatedBy:       ptr("alice"),
	}

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repo := mockRepo.NewMockAccountRepository(t)
		factory.EXPECT().AccountRepo().Return(repo)

		repo.EXPECT().FindParentID(ctx, parentID).Return(nil, nil)
		repo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Account")).
			RunAndReturn(func(_ context.Context, account *entity.Account) error {
				account.ID = uuid.New()
				account.CreatedAt = time.Now()
				account.UpdatedAt = account.CreatedAt

				return nil
			})
	})

	account, err := fx.service.CreateAccount(ctx, input)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, account.ID)
	assert.Equal(t, "Acme Corp", account.CompanyName)
	assert.Equal(t, "alice", *account.CreatedBy)
	assert.Equal(t, parentID, *account.ParentAccountID)
}

func TestAccountService_CreateAccount_ParentMissing(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	parentID := uuid.New()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repo := mockRepo.NewMockAccountRepository(t)
		factory.EXPECT().AccountRepo().Return(repo)
		repo.EXPECT().FindParentID(ctx, parentID).Return(nil, repository.ErrAccountNotFound)
	})

	_, err := fx.service.CreateAccount(ctx, &usecase.AccountInput{CompanyName: "Acme", ParentAccountID: &parentID})
	assert.True(t, errors.Is(err, domainerrors.ErrParentAccountNotFound))
}

func TestAccountService_UpdateAccount_SelfParent(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	id := uuid.New()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repo := mockRepo.NewMockAccountRepository(t)
		factory.EXPECT().AccountRepo().Return(repo)
		repo.EXPECT().FindByID(ctx, id).Return(&entity.Account{ID: id}, nil)
	})

	_, err := fx.service.UpdateAccount(ctx, id, &usecase.AccountInput{CompanyName: "Acme", ParentAccountID: &id})
	assert.True(t, errors.Is(err, domainerrors.ErrAccountHierarchyCycle))
}

func TestAccountService_UpdateAccount_DescendantParent(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	id := uuid.New()
	child := uuid.New()
	grandchild := uuid.New()

	// grandchild -> child -> id, so making grandchild the parent of id closes a loop.
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repo := mockRepo.NewMockAccountRepository(t)
		factory.EXPECT().AccountRepo().Return(repo)
		repo.EXPECT().FindByID(ctx, id).Return(&entity.Account{ID: id}, nil)
		repo.EXPECT().FindParentID(ctx, grandchild).Return(&child, nil)
		repo.EXPECT().FindParentID(ctx, child).Return(&id, nil)
	})

	_, err := fx.service.UpdateAccount(ctx, id, &usecase.AccountInput{CompanyName: "Acme", ParentAccountID: &grandchild})
	assert.True(t, errors.Is(err, domainerrors.ErrAccountHierarchyCycle))
}

func TestAccountService_UpdateAccount(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	id := uuid.New()
	createdAt := time.Now().Add(-time.Hour)
	existing := &entity.Account{ID: id, CompanyName: "Old", CreatedBy: ptr("alice"), CreatedAt: createdAt}
	reloaded := &entity.Account{ID: id, CompanyName: "New", CreatedBy: ptr("alice"), CreatedAt: createdAt, UpdatedAt: time.Now()}

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repo := mockRepo.NewMockAccountRepository(t)
		factory.EXPECT().AccountRepo().Return(repo)
		repo.EXPECT().FindByID(ctx, id).Return(existing, nil).Once()
		repo.EXPECT().
			Update(ctx, mock.MatchedBy(func(a *entity.Account) bool {
				return a.ID == id && a.CompanyName == "New" && a.Industry == nil && *a.CreatedBy == "alice"
			})).
			Return(nil)
		repo.EXPECT().FindByID(ctx, id).Return(reloaded, nil).Once()
	})

	account, err := fx.service.UpdateAccount(ctx, id, &usecase.AccountInput{CompanyName: "New"})
	require.NoError(t, err)
	assert.Same(t, reloaded, account)
}

func TestAccountService_UpdateAccount_NotFound(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	id := uuid.New()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repo := mockRepo.NewMockAccountRepository(t)
		factory.EXPECT().AccountRepo().Return(repo)
		repo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrAccountNotFound)
	})

	_, err := fx.service.UpdateAccount(ctx, id, &usecase.AccountInput{CompanyName: "New"})
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}

func TestAccountService_DeleteAccount(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	id := uuid.New()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		accountRepo := mockRepo.NewMockAccountRepository(t)
		contactRepo := mockRepo.NewMockContactRepository(t)
		leadRepo := mockRepo.NewMockLeadRepository(t)
		factory.EXPECT().AccountRepo().Return(accountRepo)
		factory.EXPECT().ContactRepo().Return(contactRepo)
		factory.EXPECT().LeadRepo().Return(leadRepo)

		accountRepo.EXPECT().DetachChildren(ctx, id).Return(nil)
		contactRepo.EXPECT().DetachAccount(ctx, id).Return(nil)
		leadRepo.EXPECT().DetachAccount(ctx, id).Return(nil)
		accountRepo.EXPECT().Delete(ctx, id).Return(nil)
	})

	require.NoError(t, fx.service.DeleteAccount(ctx, id))
}

func TestAccountService_DeleteAccount_NotFound(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	id := uuid.New()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		accountRepo := mockRepo.NewMockAccountRepository(t)
		contactRepo := mockRepo.NewMockContactRepository(t)
		leadRepo := mockRepo.NewMockLeadRepository(t)
		factory.EXPECT().AccountRepo().Return(accountRepo)
		factory.EXPECT().ContactRepo().Return(contactRepo)
		factory.EXPECT().LeadRepo().Return(leadRepo)

		accountRepo.EXPECT().DetachChildren(ctx, id).Return(nil)
		contactRepo.EXPECT().DetachAccount(ctx, id).Return(nil)
		leadRepo.EXPECT().DetachAccount(ctx, id).Return(nil)
		accountRepo.EXPECT().Delete(ctx, id).Return(repository.ErrAccountNotFound)
	})

	err := fx.service.DeleteAccount(ctx, id)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}

func TestAccountService_ListAccountContacts(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	id := uuid.New()
	lead := &entity.Lead{ID: uuid.New(), Title: "Mr", FirstName: "Bob", LastName: "Stone"}
	contact := &entity.Contact{ID: uuid.New(), FirstName: "Carol"}

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		accountRepo := mockRepo.NewMockAccountRepository(t)
		contactRepo := mockRepo.NewMockContactRepository(t)
		leadRepo := mockRepo.NewMockLeadRepository(t)
		factory.EXPECT().AccountRepo().Return(accountRepo)
		factory.EXPECT().ContactRepo().Return(contactRepo)
		factory.EXPECT().LeadRepo().Return(leadRepo)

		accountRepo.EXPECT().FindByID(ctx, id).Return(&entity.Account{ID: id, CompanyName: "Acme"}, nil)
		leadRepo.EXPECT().ListByAccount(ctx, id).Return([]*entity.Lead{lead}, nil)
		contactRepo.EXPECT().ListByAccount(ctx, id).Return([]*entity.Contact{contact}, nil)
	})

	out, err := fx.service.ListAccountContacts(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Acme", out.Account.CompanyName)
	require.Len(t, out.Contacts, 2)
	assert.Equal(t, entity.ContactKindLead, out.Contacts[0].Kind)
	assert.Equal(t, "Mr", *out.Contacts[0].Title)
	assert.Equal(t, entity.ContactKindContact, out.Contacts[1].Kind)
	assert.Nil(t, out.Contacts[1].Title)
}

func TestAccountService_DeleteAccount_DetachesEverything(t *testing.T) {
	fx := createDBServices(t)
	ctx := context.Background()
	parent := fx.account(t, "Parent")

	child, err := fx.accounts.CreateAccount(ctx, &usecase.AccountInput{CompanyName: "Child", ParentAccountID: &parent.ID})
	require.NoError(t, err)

	contact, err := fx.contacts.CreateContact(ctx, &usecase.ContactInput{FirstName: "Carol", AccountID: &parent.ID})
	require.NoError(t, err)

	lead, err := fx.leads.CreateLead(ctx, leadInput(parent.ID))
	require.NoError(t, err)

	out, err := fx.accounts.ListAccountContacts(ctx, parent.ID)
	require.NoError(t, err)
	require.Len(t, out.Contacts, 2)
	assert.Equal(t, lead.ID, out.Contacts[0].ID)
	assert.Equal(t, contact.ID, out.Contacts[1].ID)

	_, err = fx.accounts.UpdateAccount(ctx, parent.ID, &usecase.AccountInput{CompanyName: "Parent", ParentAccountID: &child.ID})
	assert.True(t, errors.Is(err, domainerrors.ErrAccountHierarchyCycle))

	require.NoError(t, fx.accounts.DeleteAccount(ctx, parent.ID))

	_, err = fx.accounts.GetAccount(ctx, parent.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))

	reloadedChild, err := fx.accounts.GetAccount(ctx, child.ID)
	require.NoError(t, err)
	assert.Nil(t, reloadedChild.ParentAccountID)

	reloadedContact, err := fx.contacts.GetContact(ctx, contact.ID)
	require.NoError(t, err)
	assert.Nil(t, reloadedContact.AccountID)

	reloadedLead, err := fx.leads.GetLead(ctx, lead.ID)
	require.NoError(t, err)
	assert.Empty(t, reloadedLead.Accounts)
}
