package postgres

import (
	"context"

	"funnel/internal/domain/entity"
	"funnel/internal/domain/repository"
	"funnel/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// contactRepository implements the repository.ContactRepository interface.
type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository is the constructor for contactRepository.
func NewContactRepository(db *gorm.DB) repository.ContactRepository {
	return &contactRepository{
		db: db,
	}
}

func (repo *contactRepository) Create(ctx context.Context, contact *entity.Contact) error {
	contactM := fromContactDomain(contact)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(contactM).Error; err != nil {
		return translateWriteError(err, "failed to create contact")
	}

	contact.ID = contactM.ID
	contact.CreatedAt = contactM.CreatedAt
	contact.UpdatedAt = contactM.UpdatedAt

	return nil
}

func (repo *contactRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Contact, error) {
	var contactM model.ContactModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&contactM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrContactNotFound
		}

		return nil, errors.Wrap(err, "failed to find contact by ID")
	}

	return toContactDomain(&contactM), nil
}

func (repo *contactRepository) List(ctx context.Context) ([]*entity.Contact, error) {
	return repo.find(repo.db.WithContext(ctx))
}

func (repo *contactRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.Contact, error) {
	return repo.find(repo.db.WithContext(ctx).Where("account_id = ?", accountID))
}

func (repo *contactRepository) find(query *gorm.DB) ([]*entity.Contact, error) {
	var contactModels []*model.ContactModel

	if err := query.
		Order("created_at ASC").
		Order("id ASC").
		Find(&contactModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list contacts")
	}

	contacts := make([]*entity.Contact, 0, len(contactModels))
	for _, contactM := range contactModels {
		contacts = append(contacts, toContactDomain(contactM))
	}

	return contacts, nil
}

func (repo *contactRepository) Update(ctx context.Context, contact *entity.Contact) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ContactModel{}).
		Where("id = ?", contact.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(fromContactDomain(contact))
	if result.Error != nil {
		return translateWriteError(result.Error, "failed to update contact")
	}

	if result.RowsAffected == 0 {
		return repository.ErrContactNotFound
	}

	return nil
}

// DetachAccount clears account_id on every contact of the account.
func (repo *contactRepository) DetachAccount(ctx context.Context, accountID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.ContactModel{}).
		Where("account_id = ?", accountID).
		Update("account_id", nil).Error; err != nil {
		return errors.Wrap(err, "failed to detach contacts from account")
	}

	return nil
}

func (repo *contactRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ContactModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete contact")
	}

	if result.RowsAffected == 0 {
		return repository.ErrContactNotFound
	}

	return nil
}
