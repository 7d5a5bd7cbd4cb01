package impl

import (
	"context"
	"fmt"
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

// leadService implements the LeadUsecase interface.
type leadService struct {
	txManager   repository.TransactionManager
	leadRepo    repository.LeadRepository
	accountRepo repository.AccountRepository
	logger      *slog.Logger
}

// LeadServiceParams holds dependencies for LeadService, injected by Fx.
type LeadServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	LeadRepo    repository.LeadRepository
	AccountRepo repository.AccountRepository
	Logger      *slog.Logger
}

// NewLeadService is the constructor for leadService.
func NewLeadService(params LeadServiceParams) usecase.LeadUsecase {
	return &leadService{
		txManager:   params.TxManager,
		leadRepo:    params.LeadRepo,
		accountRepo: params.AccountRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *leadService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *leadService) ListLeads(ctx context.Context) ([]*entity.Lead, error) {
	leads, err := srv.leadRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list leads")
	}

	return leads, nil
}

func (srv *leadService) GetLead(ctx context.Context, id uuid.UUID) (*entity.Lead, error) {
	lead, err := srv.leadRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, "failed to get lead")
	}

	return lead, nil
}

// CreateLead persists a lead and its account associations in one transaction.
func (srv *leadService) CreateLead(ctx context.Context, input *usecase.LeadInput) (*entity.Lead, error) {
	var created *entity.Lead

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		leadRepo := repoFactory.LeadRepo()

		accountIDs := uniqueIDs(input.AccountIDs)
		if err := ensureAccounts(ctx, repoFactory.AccountRepo(), accountIDs); err != nil {
			return err
		}

		lead := buildLead(input)
		lead.CreatedBy = input.CreatedBy
		if err := leadRepo.Create(ctx, lead); err != nil {
			return errors.Wrap(err, "failed to create lead")
		}

		if len(accountIDs) > 0 {
			if err := leadRepo.ReplaceAccounts(ctx, lead.ID, accountIDs); err != nil {
				return errors.Wrap(err, "failed to associate accounts")
			}
		}

		var err error
		created, err = leadRepo.FindByID(ctx, lead.ID)

		return translateRepoError(err, "failed to reload lead")
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create lead", slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Lead created", slog.String("lead_id", created.ID.String()), slog.Int("accounts", len(created.Accounts)))

	return created, nil
}

// UpdateLead replaces every field of a lead. Associations are replaced only when AccountIDs is non-nil.
func (srv *leadService) UpdateLead(ctx context.Context, id uuid.UUID, input *usecase.LeadInput) (*entity.Lead, error) {
	var updated *entity.Lead

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		leadRepo := repoFactory.LeadRepo()

		existing, err := leadRepo.FindByID(ctx, id)
		if err != nil {
			return translateRepoError(err, "failed to find lead for update")
		}

		accountIDs := uniqueIDs(input.AccountIDs)
		if err := ensureAccounts(ctx, repoFactory.AccountRepo(), accountIDs); err != nil {
			return err
		}

		lead := buildLead(input)
		lead.ID = id
		lead.CreatedBy = existing.CreatedBy
		lead.CreatedAt = existing.CreatedAt

		if err := leadRepo.Update(ctx, lead); err != nil {
			return translateRepoError(err, "failed to update lead")
		}

		if accountIDs != nil {
			if err := leadRepo.ReplaceAccounts(ctx, id, accountIDs); err != nil {
				return errors.Wrap(err, "failed to replace account associations")
			}
		}

		updated, err = leadRepo.FindByID(ctx, id)

		return translateRepoError(err, "failed to reload lead")
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update lead", slog.String("lead_id", id.String()), slog.Any("error", err))

		return nil, err
	}

	return updated, nil
}

// DeleteLead removes a lead with its associations and child rows.
func (srv *leadService) DeleteLead(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return translateRepoError(repoFactory.LeadRepo().Delete(ctx, id), "failed to delete lead")
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Lead deleted", slog.String("lead_id", id.String()))

	return nil
}

// ListAccountLeads returns the leads associated with an existing account.
func (srv *leadService) ListAccountLeads(ctx context.Context, accountID uuid.UUID) ([]*entity.Lead, error) {
	if _, err := srv.accountRepo.FindByID(ctx, accountID); err != nil {
		return nil, translateRepoError(err, "failed to find account")
	}

	leads, err := srv.leadRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list account leads")
	}

	return leads, nil
}

// AddContactToAccount associates a lead with an account. Repeating the call is a no-op.
func (srv *leadService) AddContactToAccount(ctx context.Context, accountID, leadID uuid.UUID) (*usecase.AssociationResult, error) {
	var result *usecase.AssociationResult

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		leadRepo := repoFactory.LeadRepo()

		linked, err := srv.checkAssociation(ctx, repoFactory, accountID, leadID)
		if err != nil {
			return err
		}

		if linked {
			result = &usecase.AssociationResult{
				Message: fmt.Sprintf("Lead %s is already a contact for account %s", leadID, accountID),
			}

			return nil
		}

		if err := leadRepo.AddAccount(ctx, leadID, accountID); err != nil {
			return errors.Wrap(err, "failed to add account association")
		}

		result = &usecase.AssociationResult{
			Message: fmt.Sprintf("Lead %s added as contact to account %s", leadID, accountID),
			Changed: true,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// RemoveContactFromAccount dissociates a lead from an account.
func (srv *leadService) RemoveContactFromAccount(ctx context.Context, accountID, leadID uuid.UUID) (*usecase.AssociationResult, error) {
	var result *usecase.AssociationResult

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		linked, err := srv.checkAssociation(ctx, repoFactory, accountID, leadID)
		if err != nil {
			return err
		}

		if !linked {
			result = &usecase.AssociationResult{
				Message: fmt.Sprintf("Lead %s is not a contact for account %s", leadID, accountID),
			}

			return nil
		}

		if err := repoFactory.LeadRepo().RemoveAccount(ctx, leadID, accountID); err != nil {
			return errors.Wrap(err, "failed to remove account association")
		}

		result = &usecase.AssociationResult{
			Message: fmt.Sprintf("Lead %s removed as contact from account %s", leadID, accountID),
			Changed: true,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// checkAssociation verifies that both sides exist, account first, and reports whether they are linked.
func (srv *leadService) checkAssociation(ctx context.Context, repoFactory repository.RepositoryFactory, accountID, leadID uuid.UUID) (bool, error) {
	if _, err := repoFactory.AccountRepo().FindByID(ctx, accountID); err != nil {
		return false, translateRepoError(err, "failed to find account")
	}

	leadRepo := repoFactory.LeadRepo()
	if _, err := leadRepo.FindByID(ctx, leadID); err != nil {
		return false, translateRepoError(err, "failed to find lead")
	}

	linked, err := leadRepo.HasAccount(ctx, leadID, accountID)
	if err != nil {
		return false, errors.Wrap(err, "failed to check account association")
	}

	return linked, nil
}

func (srv *leadService) GetLeadDetails(ctx context.Context, leadID uuid.UUID) (*entity.LeadDetails, error) {
	if err := srv.ensureLead(ctx, srv.leadRepo, leadID); err != nil {
		return nil, err
	}

	details, err := srv.leadRepo.FindDetails(ctx, leadID)
	if err != nil {
		return nil, translateRepoError(err, "failed to get lead details")
	}

	return details, nil
}

// UpsertLeadDetails creates the lead's details or replaces the existing row.
func (srv *leadService) UpsertLeadDetails(ctx context.Context, leadID uuid.UUID, input *usecase.LeadDetailsInput) (*entity.LeadDetails, error) {
	var saved *entity.LeadDetails

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		leadRepo := repoFactory.LeadRepo()

		if err := srv.ensureLead(ctx, leadRepo, leadID); err != nil {
			return err
		}

		details := &entity.LeadDetails{
			LeadID:        leadID,
			DOB:           input.DOB,
			Gender:        input.Gender,
			MaritalStatus: input.MaritalStatus,
			Children:      input.Children,
			Occupation:    input.Occupation,
			LegalDetails:  input.LegalDetails,
			SocialLinks:   input.SocialLinks,
			Addresses:     input.Addresses,
			Notes:         input.Notes,
		}
		if err := leadRepo.SaveDetails(ctx, details); err != nil {
			return errors.Wrap(err, "failed to save lead details")
		}

		var err error
		saved, err = leadRepo.FindDetails(ctx, leadID)

		return translateRepoError(err, "failed to reload lead details")
	})
	if err != nil {
		return nil, err
	}

	return saved, nil
}

func (srv *leadService) DeleteLeadDetails(ctx context.Context, leadID uuid.UUID) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		leadRepo := repoFactory.LeadRepo()

		if err := srv.ensureLead(ctx, leadRepo, leadID); err != nil {
			return err
		}

		return translateRepoError(leadRepo.DeleteDetails(ctx, leadID), "failed to delete lead details")
	})
}

func (srv *leadService) ListLeadNotes(ctx context.Context, leadID uuid.UUID) ([]*entity.LeadNote, error) {
	if err := srv.ensureLead(ctx, srv.leadRepo, leadID); err != nil {
		return nil, err
	}

	notes, err := srv.leadRepo.ListNotes(ctx, leadID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list lead notes")
	}

	return notes, nil
}

func (srv *leadService) AddLeadNote(ctx context.Context, leadID uuid.UUID, input *usecase.LeadNoteInput) (*entity.LeadNote, error) {
	note := &entity.LeadNote{
		LeadID: leadID,
		Note:   input.Note,
		UserID: input.UserID,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		leadRepo := repoFactory.LeadRepo()

		if err := srv.ensureLead(ctx, leadRepo, leadID); err != nil {
			return err
		}

		return errors.Wrap(leadRepo.CreateNote(ctx, note), "failed to create lead note")
	})
	if err != nil {
		return nil, err
	}

	return note, nil
}

func (srv *leadService) DeleteLeadNote(ctx context.Context, leadID uuid.UUID, noteID uint) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		leadRepo := repoFactory.LeadRepo()

		if err := srv.ensureLead(ctx, leadRepo, leadID); err != nil {
			return err
		}

		return translateRepoError(leadRepo.DeleteNote(ctx, leadID, noteID), "failed to delete lead note")
	})
}

func (srv *leadService) ListLeadProducts(ctx context.Context, leadID uuid.UUID) ([]*entity.LeadProduct, error) {
	if err := srv.ensureLead(ctx, srv.leadRepo, leadID); err != nil {
		return nil, err
	}

	products, err := srv.leadRepo.ListProducts(ctx, leadID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list lead products")
	}

	return products, nil
}

func (srv *leadService) AddLeadProduct(ctx context.Context, leadID uuid.UUID, input *usecase.LeadProductInput) (*entity.LeadProduct, error) {
	product := &entity.LeadProduct{
		LeadID:        leadID,
		Product:       input.Product,
		InterestLevel: input.InterestLevel,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		leadRepo := repoFactory.LeadRepo()

		if err := srv.ensureLead(ctx, leadRepo, leadID); err != nil {
			return err
		}

		return errors.Wrap(leadRepo.CreateProduct(ctx, product), "failed to create lead product")
	})
	if err != nil {
		return nil, err
	}

	return product, nil
}

func (srv *leadService) UpdateLeadProduct(ctx context.Context, leadID uuid.UUID, productID uint, input *usecase.LeadProductInput) (*entity.LeadProduct, error) {
	var updated *entity.LeadProduct

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		leadRepo := repoFactory.LeadRepo()

		if err := srv.ensureLead(ctx, leadRepo, leadID); err != nil {
			return err
		}

		product, err := leadRepo.FindProduct(ctx, leadID, productID)
		if err != nil {
			return translateRepoError(err, "failed to find lead product")
		}

		product.Product = input.Product
		product.InterestLevel = input.InterestLevel
		if err := leadRepo.UpdateProduct(ctx, product); err != nil {
			return translateRepoError(err, "failed to update lead product")
		}

		updated, err = leadRepo.FindProduct(ctx, leadID, productID)

		return translateRepoError(err, "failed to reload lead product")
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (srv *leadService) DeleteLeadProduct(ctx context.Context, leadID uuid.UUID, productID uint) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		leadRepo := repoFactory.LeadRepo()

		if err := srv.ensureLead(ctx, leadRepo, leadID); err != nil {
			return err
		}

		return translateRepoError(leadRepo.DeleteProduct(ctx, leadID, productID), "failed to delete lead product")
	})
}

func (srv *leadService) ensureLead(ctx context.Context, repo repository.LeadRepository, leadID uuid.UUID) error {
	if _, err := repo.FindByID(ctx, leadID); err != nil {
		return translateRepoError(err, "failed to find lead")
	}

	return nil
}

// ensureAccounts fails with ErrAccountsNotFound unless every ID resolves.
func ensureAccounts(ctx context.Context, repo repository.AccountRepository, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	count, err := repo.CountByIDs(ctx, ids)
	if err != nil {
		return errors.Wrap(err, "failed to count accounts")
	}

	if count != int64(len(ids)) {
		return errors.Wrapf(domainerrors.ErrAccountsNotFound, "%d of %d accounts exist", count, len(ids))
	}

	return nil
}

func buildLead(input *usecase.LeadInput) *entity.Lead {
	entryPoint := entity.DefaultEntryPoint
	if input.EntryPoint != nil && *input.EntryPoint != "" {
		entryPoint = *input.EntryPoint
	}

	return &entity.Lead{
		Title:      input.Title,
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		Email:      input.Email,
		PhoneCode:  input.PhoneCode,
		PhoneNo:    input.PhoneNo,
		EntryPoint: entryPoint,
		Platform:   input.Platform,
		LeadStage:  input.LeadStage,
	}
}
