// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "funnel/internal/delivery/context"
	"funnel/internal/domain/entity"
	domainerrors "funnel/internal/domain/errors"
	"funnel/internal/domain/repository"
	"funnel/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager   repository.TransactionManager
	accountRepo repository.AccountRepository
	logger      *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AccountRepo repository.AccountRepository
	Logger      *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:   params.TxManager,
		accountRepo: params.AccountRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListAccounts returns every account.
func (srv *accountService) ListAccounts(ctx context.Context) ([]*entity.Account, error) {
	accounts, err := srv.accountRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	return accounts, nil
}

// GetAccount returns a single account.
func (srv *accountService) GetAccount(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, "failed to get account")
	}

	return account, nil
}

// CreateAccount validates the parent reference and persists a new account.
func (srv *accountService) CreateAccount(ctx context.Context, input *usecase.AccountInput) (*entity.Account, error) {
	account := buildAccount(input)
	account.CreatedBy = input.CreatedBy

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		if err := validateParent(ctx, accountRepo, nil, input.ParentAccountID); err != nil {
			return err
		}

		return errors.Wrap(accountRepo.Create(ctx, account), "failed to create account")
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create account", slog.String("company_name", input.CompanyName), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Account created", slog.String("account_id", account.ID.String()))

	return account, nil
}

// UpdateAccount replaces every field of an account.
func (srv *accountService) UpdateAccount(ctx context.Context, id uuid.UUID, input *usecase.AccountInput) (*entity.Account, error) {
	var updated *entity.Account

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		existing, err := accountRepo.FindByID(ctx, id)
		if err != nil {
			return translateRepoError(err, "failed to find account for update")
		}

		if err := validateParent(ctx, accountRepo, &id, input.ParentAccountID); err != nil {
			return err
		}

		account := buildAccount(input)
		account.ID = id
		account.CreatedBy = existing.CreatedBy
		account.CreatedAt = existing.CreatedAt

		if err := accountRepo.Update(ctx, account); err != nil {
			return translateRepoError(err, "failed to update account")
		}

		updated, err = accountRepo.FindByID(ctx, id)

		return translateRepoError(err, "failed to reload account")
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update account", slog.String("account_id", id.String()), slog.Any("error", err))

		return nil, err
	}

	return updated, nil
}

// DeleteAccount detaches the account's children, contacts and lead associations, then removes it.
func (srv *accountService) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		if err := accountRepo.DetachChildren(ctx, id); err != nil {
			return errors.Wrap(err, "failed to detach child accounts")
		}
		if err := repoFactory.ContactRepo().DetachAccount(ctx, id); err != nil {
			return errors.Wrap(err, "failed to detach contacts")
		}
		if err := repoFactory.LeadRepo().DetachAccount(ctx, id); err != nil {
			return errors.Wrap(err, "failed to detach leads")
		}

		return translateRepoError(accountRepo.Delete(ctx, id), "failed to delete account")
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to delete account", slog.String("account_id", id.String()), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Account deleted", slog.String("account_id", id.String()))

	return nil
}

// ListAccountContacts collects the leads associated with an account and the contacts that belong to it.
func (srv *accountService) ListAccountContacts(ctx context.Context, id uuid.UUID) (*usecase.AccountContactsOutput, error) {
	var output *usecase.AccountContactsOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		account, err := repoFactory.AccountRepo().FindByID(ctx, id)
		if err != nil {
			return translateRepoError(err, "failed to find account")
		}

		leads, err := repoFactory.LeadRepo().ListByAccount(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to list account leads")
		}

		contacts, err := repoFactory.ContactRepo().ListByAccount(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to list account contacts")
		}

		output = &usecase.AccountContactsOutput{
			Account:  account,
			Contacts: make([]*entity.AccountContact, 0, len(leads)+len(contacts)),
		}
		for _, lead := range leads {
			output.Contacts = append(output.Contacts, leadToAccountContact(lead))
		}
		for _, contact := range contacts {
			output.Contacts = append(output.Contacts, contactToAccountContact(contact))
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// validateParent checks that parentID exists and, for an existing account, that
// following the parent chain upwards never reaches the account itself.
func validateParent(ctx context.Context, repo repository.AccountRepository, accountID, parentID *uuid.UUID) error {
	if parentID == nil {
		return nil
	}

	if accountID != nil && *parentID == *accountID {
		return errors.Wrap(domainerrors.ErrAccountHierarchyCycle, "account cannot be its own parent")
	}

	visited := make(map[uuid.UUID]struct{})
	current := *parentID
	for {
		if _, seen := visited[current]; seen {
			return nil
		}
		visited[current] = struct{}{}

		next, err := repo.FindParentID(ctx, current)
		if errors.Is(err, repository.ErrAccountNotFound) {
			if current == *parentID {
				return errors.Wrapf(domainerrors.ErrParentAccountNotFound, "parent account %s", *parentID)
			}

			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to walk account hierarchy")
		}

		if next == nil {
			return nil
		}
		if accountID != nil && *next == *accountID {
			return errors.Wrap(domainerrors.ErrAccountHierarchyCycle, "parent account is a descendant")
		}
		current = *next
	}
}

func buildAccount(input *usecase.AccountInput) *entity.Account {
	return &entity.Account{
		CompanyName:     input.CompanyName,
		Industry:        input.Industry,
		Website:         input.Website,
		PhoneCode:       input.PhoneCode,
		PhoneNo:         input.PhoneNo,
		Email:           input.Email,
		Address:         input.Address,
		SocialLinks:     input.SocialLinks,
		LegalDetails:    input.LegalDetails,
		ParentAccountID: input.ParentAccountID,
	}
}

func leadToAccountContact(lead *entity.Lead) *entity.AccountContact {
	title := lead.Title
	lastName := lead.LastName

	return &entity.AccountContact{
		ID:        lead.ID,
		Kind:      entity.ContactKindLead,
		Title:     &title,
		FirstName: lead.FirstName,
		LastName:  &lastName,
		Email:     lead.Email,
		PhoneCode: lead.PhoneCode,
		PhoneNo:   lead.PhoneNo,
		CreatedAt: lead.CreatedAt,
	}
}

func contactToAccountContact(contact *entity.Contact) *entity.AccountContact {
	return &entity.AccountContact{
		ID:        contact.ID,
		Kind:      entity.ContactKindContact,
		FirstName: contact.FirstName,
		LastName:  contact.LastName,
		Email:     contact.Email,
		PhoneCode: contact.PhoneCode,
		PhoneNo:   contact.PhoneNo,
		CreatedAt: contact.CreatedAt,
	}
}
