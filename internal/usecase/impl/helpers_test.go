package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"funnel/internal/domain/entity"
	"funnel/internal/domain/repository"
	"funnel/internal/infra/persistence/postgres"
	mockRepo "funnel/internal/mocks/repository"
	"funnel/internal/testutil"
	"funnel/internal/usecase"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// expectTx makes txManager run the callback against a fresh mock factory prepared by setup,
// returning whatever the callback returns.
func expectTx(t *testing.T, txManager *mockRepo.MockTransactionManager, setup func(factory *mockRepo.MockRepositoryFactory)) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)

			return fn(factory)
		})
}

func ptr[T any](v T) *T {
	return &v
}

// dbServiceFixtures wires the lead, account and contact services to one SQLite database.
type dbServiceFixtures struct {
	db       *gorm.DB
	leads    usecase.LeadUsecase
	accounts usecase.AccountUsecase
	contacts usecase.ContactUsecase
}

func createDBServices(t *testing.T) dbServiceFixtures {
	db := testutil.NewDB(t)
	txManager := postgres.NewTransactionManager(db)
	accountRepo := postgres.NewAccountRepository(db)
	logger := newDiscardLogger()

	return dbServiceFixtures{
		db: db,
		leads: NewLeadService(LeadServiceParams{
			TxManager:   txManager,
			LeadRepo:    postgres.NewLeadRepository(db),
			AccountRepo: accountRepo,
			Logger:      logger,
		}),
		accounts: NewAccountService(AccountServiceParams{
			TxManager:   txManager,
			AccountRepo: accountRepo,
			Logger:      logger,
		}),
		contacts: NewContactService(ContactServiceParams{
			TxManager:   txManager,
			ContactRepo: postgres.NewContactRepository(db),
			Logger:      logger,
		}),
	}
}

func (fx dbServiceFixtures) account(t *testing.T, name string) *entity.Account {
	t.Helper()

	account, err := fx.accounts.CreateAccount(context.Background(), &usecase.AccountInput{CompanyName: name})
	require.NoError(t, err)

	return account
}

func (fx dbServiceFixtures) count(t *testing.T, m any) int64 {
	t.Helper()

	var n int64
	require.NoError(t, fx.db.Model(m).Count(&n).Error)

	return n
}
