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

// contactService implements the ContactUsecase interface.
type contactService struct {
	txManager   repository.TransactionManager
	contactRepo repository.ContactRepository
	logger      *slog.Logger
}

// ContactServiceParams holds dependencies for ContactService, injected by Fx.
type ContactServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ContactRepo repository.ContactRepository
	Logger      *slog.Logger
}

// NewContactService is the constructor for contactService.
func NewContactService(params ContactServiceParams) usecase.ContactUsecase {
	return &contactService{
		txManager:   params.TxManager,
		contactRepo: params.ContactRepo,
		logger:      params.Logger,
	}
}

func (srv *contactService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *contactService) ListContacts(ctx context.Context) ([]*entity.Contact, error) {
	contacts, err := srv.contactRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list contacts")
	}

	return contacts, nil
}

func (srv *contactService) GetContact(ctx context.Context, id uuid.UUID) (*entity.Contact, error) {
	contact, err := srv.contactRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, "failed to get contact")
	}

	return contact, nil
}

// CreateContact persists a new contact after checking its account reference.
func (srv *contactService) CreateContact(ctx context.Context, input *usecase.ContactInput) (*entity.Contact, error) {
	contact := buildContact(input)
	contact.CreatedBy = input.CreatedBy

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := ensureAccount(ctx, repoFactory.AccountRepo(), input.AccountID); err != nil {
			return err
		}

		return errors.Wrap(repoFactory.ContactRepo().Create(ctx, contact), "failed to create contact")
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create contact", slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Contact created", slog.String("contact_id", contact.ID.String()))

	return contact, nil
}

// UpdateContact replaces every field of a contact.
func (srv *contactService) UpdateContact(ctx context.Context, id uuid.UUID, input *usecase.ContactInput) (*entity.Contact, error) {
	var updated *entity.Contact

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		contactRepo := repoFactory.ContactRepo()

		existing, err := contactRepo.FindByID(ctx, id)
		if err != nil {
			return translateRepoError(err, "failed to find contact for update")
		}

		if err := ensureAccount(ctx, repoFactory.AccountRepo(), input.AccountID); err != nil {
			return err
		}

		contact := buildContact(input)
		contact.ID = id
		contact.CreatedBy = existing.CreatedBy
		contact.CreatedAt = existing.CreatedAt

		if err := contactRepo.Update(ctx, contact); err != nil {
			return translateRepoError(err, "failed to update contact")
		}

		updated, err = contactRepo.FindByID(ctx, id)

		return translateRepoError(err, "failed to reload contact")
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update contact", slog.String("contact_id", id.String()), slog.Any("error", err))

		return nil, err
	}

	return updated, nil
}

func (srv *contactService) DeleteContact(ctx context.Context, id uuid.UUID) error {
	if err := srv.contactRepo.Delete(ctx, id); err != nil {
		return translateRepoError(err, "failed to delete contact")
	}

	srv.log(ctx).Info("Contact deleted", slog.String("contact_id", id.String()))

	return nil
}

// ensureAccount verifies an optional account reference.
func ensureAccount(ctx context.Context, repo repository.AccountRepository, accountID *uuid.UUID) error {
	if accountID == nil {
		return nil
	}

	if _, err := repo.FindByID(ctx, *accountID); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrapf(domainerrors.ErrAccountNotFound, "account %s", *accountID)
		}

		return errors.Wrap(err, "failed to check account")
	}

	return nil
}

func buildContact(input *usecase.ContactInput) *entity.Contact {
	return &entity.Contact{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Email:       input.Email,
		PhoneCode:   input.PhoneCode,
		PhoneNo:     input.PhoneNo,
		EntryPoint:  input.EntryPoint,
		SocialLinks: input.SocialLinks,
		Address:     input.Address,
		AccountID:   input.AccountID,
	}
}
