package postgres

import (
	"context"
	"time"

	"funnel/internal/domain/entity"
	"funnel/internal/domain/repository"
	"funnel/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// leadRepository implements the repository.LeadRepository interface.
type leadRepository struct {
	db *gorm.DB
}

// NewLeadRepository is the constructor for leadRepository.
func NewLeadRepository(db *gorm.DB) repository.LeadRepository {
	return &leadRepository{
		db: db,
	}
}

func preloadAccounts(db *gorm.DB) *gorm.DB {
	return db.Preload("Accounts", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("accounts.company_name ASC")
	})
}

// Create persists a new lead without touching associations.
func (repo *leadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	leadM := fromLeadDomain(lead)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(leadM).Error; err != nil {
		return translateWriteError(err, "failed to create lead")
	}

	lead.ID = leadM.ID
	lead.CreatedAt = leadM.CreatedAt
	lead.UpdatedAt = leadM.UpdatedAt

	return nil
}

// FindByID retrieves a lead with its accounts.
func (repo *leadRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Lead, error) {
	var leadM model.LeadModel

	if err := preloadAccounts(repo.db.WithContext(ctx)).
		Where("leads.id = ?", id).
		First(&leadM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLeadNotFound
		}

		return nil, errors.Wrap(err, "failed to find lead by ID")
	}

	return toLeadDomain(&leadM), nil
}

// List returns all leads with their accounts, oldest first.
func (repo *leadRepository) List(ctx context.Context) ([]*entity.Lead, error) {
	return repo.find(preloadAccounts(repo.db.WithContext(ctx)))
}

// ListByAccount returns the leads associated with an account.
func (repo *leadRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.Lead, error) {
	query := preloadAccounts(repo.db.WithContext(ctx)).
		Joins("JOIN lead_accounts ON lead_accounts.lead_id = leads.id").
		Where("lead_accounts.account_id = ?", accountID)

	return repo.find(query)
}

func (repo *leadRepository) find(query *gorm.DB) ([]*entity.Lead, error) {
	var leadModels []*model.LeadModel

	if err := query.
		Order("leads.created_at ASC").
		Order("leads.id ASC").
		Find(&leadModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list leads")
	}

	leads := make([]*entity.Lead, 0, len(leadModels))
	for _, leadM := range leadModels {
		leads = append(leads, toLeadDomain(leadM))
	}

	return leads, nil
}

// Update replaces every mutable column of a lead.
func (repo *leadRepository) Update(ctx context.Context, lead *entity.Lead) error {
	result := repo.db.WithContext(ctx).
		Model(&model.LeadModel{}).
		Where("id = ?", lead.ID).
		Select("*").
		Omit("id", "created_at", clause.Associations).
		Updates(fromLeadDomain(lead))
	if result.Error != nil {
		return translateWriteError(result.Error, "failed to update lead")
	}

	if result.RowsAffected == 0 {
		return repository.ErrLeadNotFound
	}

	return nil
}

// Delete removes a lead and every row that depends on it.
func (repo *leadRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := repo.db.WithContext(ctx)

	dependents := []any{
		&model.LeadAccountModel{},
		&model.LeadDetailsModel{},
		&model.LeadNoteModel{},
		&model.LeadProductModel{},
	}
	for _, dependent := range dependents {
		if err := db.Where("lead_id = ?", id).Delete(dependent).Error; err != nil {
			return errors.Wrap(err, "failed to delete lead dependents")
		}
	}

	result := db.Where("id = ?", id).Delete(&model.LeadModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete lead")
	}

	if result.RowsAffected == 0 {
		return repository.ErrLeadNotFound
	}

	return nil
}

// ReplaceAccounts makes accountIDs the exact association set of the lead.
func (repo *leadRepository) ReplaceAccounts(ctx context.Context, leadID uuid.UUID, accountIDs []uuid.UUID) error {
	db := repo.db.WithContext(ctx)

	if err := db.Where("lead_id = ?", leadID).Delete(&model.LeadAccountModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to clear lead accounts")
	}

	if len(accountIDs) == 0 {
		return nil
	}

	now := time.Now()
	links := make([]model.LeadAccountModel, 0, len(accountIDs))
	for _, accountID := range accountIDs {
		links = append(links, model.LeadAccountModel{LeadID: leadID, AccountID: accountID, CreatedAt: now})
	}

	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&links).Error; err != nil {
		return translateWriteError(err, "failed to associate lead accounts")
	}

	return nil
}

// HasAccount reports whether the lead is associated with the account.
func (repo *leadRepository) HasAccount(ctx context.Context, leadID, accountID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.LeadAccountModel{}).
		Where("lead_id = ? AND account_id = ?", leadID, accountID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check lead account")
	}

	return count > 0, nil
}

// AddAccount associates the lead with the account. An existing pair is left untouched.
func (repo *leadRepository) AddAccount(ctx context.Context, leadID, accountID uuid.UUID) error {
	link := model.LeadAccountModel{LeadID: leadID, AccountID: accountID, CreatedAt: time.Now()}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&link).Error; err != nil {
		return translateWriteError(err, "failed to associate lead account")
	}

	return nil
}

// RemoveAccount dissociates the lead from the account.
func (repo *leadRepository) RemoveAccount(ctx context.Context, leadID, accountID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("lead_id = ? AND account_id = ?", leadID, accountID).
		Delete(&model.LeadAccountModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to dissociate lead account")
	}

	return nil
}

// DetachAccount removes every association that references the account.
func (repo *leadRepository) DetachAccount(ctx context.Context, accountID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Delete(&model.LeadAccountModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to detach account leads")
	}

	return nil
}

func (repo *leadRepository) FindDetails(ctx context.Context, leadID uuid.UUID) (*entity.LeadDetails, error) {
	var detailsM model.LeadDetailsModel

	if err := repo.db.WithContext(ctx).
		Where("lead_id = ?", leadID).
		First(&detailsM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLeadDetailsNotFound
		}

		return nil, errors.Wrap(err, "failed to find lead details")
	}

	return toLeadDetailsDomain(&detailsM), nil
}

// SaveDetails inserts the details row, or replaces the existing one for the lead.
func (repo *leadRepository) SaveDetails(ctx context.Context, details *entity.LeadDetails) error {
	db := repo.db.WithContext(ctx)
	detailsM := fromLeadDetailsDomain(details)

	var existing model.LeadDetailsModel
	err := db.Select("id", "created_at").Where("lead_id = ?", details.LeadID).First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		detailsM.ID = 0
		if err := db.Create(detailsM).Error; err != nil {
			return translateWriteError(err, "failed to create lead details")
		}
	case err != nil:
		return errors.Wrap(err, "failed to find lead details")
	default:
		detailsM.ID = existing.ID
		detailsM.CreatedAt = existing.CreatedAt
		if err := db.Model(&model.LeadDetailsModel{}).
			Where("id = ?", existing.ID).
			Select("*").
			Omit("id", "lead_id", "created_at").
			Updates(detailsM).Error; err != nil {
			return translateWriteError(err, "failed to update lead details")
		}
	}

	details.ID = detailsM.ID
	details.CreatedAt = detailsM.CreatedAt

	return nil
}

func (repo *leadRepository) DeleteDetails(ctx context.Context, leadID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("lead_id = ?", leadID).
		Delete(&model.LeadDetailsModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete lead details")
	}

	if result.RowsAffected == 0 {
		return repository.ErrLeadDetailsNotFound
	}

	return nil
}

func (repo *leadRepository) ListNotes(ctx context.Context, leadID uuid.UUID) ([]*entity.LeadNote, error) {
	var noteModels []*model.LeadNoteModel

	if err := repo.db.WithContext(ctx).
		Where("lead_id = ?", leadID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&noteModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list lead notes")
	}

	notes := make([]*entity.LeadNote, 0, len(noteModels))
	for _, noteM := range noteModels {
		notes = append(notes, toLeadNoteDomain(noteM))
	}

	return notes, nil
}

func (repo *leadRepository) CreateNote(ctx context.Context, note *entity.LeadNote) error {
	noteM := &model.LeadNoteModel{
		LeadID:    note.LeadID,
		Note:      note.Note,
		UserID:    note.UserID,
		CreatedAt: note.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(noteM).Error; err != nil {
		return translateWriteError(err, "failed to create lead note")
	}

	note.ID = noteM.ID
	note.CreatedAt = noteM.CreatedAt

	return nil
}

func (repo *leadRepository) DeleteNote(ctx context.Context, leadID uuid.UUID, noteID uint) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND lead_id = ?", noteID, leadID).
		Delete(&model.LeadNoteModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete lead note")
	}

	if result.RowsAffected == 0 {
		return repository.ErrLeadNoteNotFound
	}

	return nil
}

func (repo *leadRepository) ListProducts(ctx context.Context, leadID uuid.UUID) ([]*entity.LeadProduct, error) {
	var productModels []*model.LeadProductModel

	if err := repo.db.WithContext(ctx).
		Where("lead_id = ?", leadID).
		Order("id ASC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list lead products")
	}

	products := make([]*entity.LeadProduct, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toLeadProductDomain(productM))
	}

	return products, nil
}

func (repo *leadRepository) FindProduct(ctx context.Context, leadID uuid.UUID, productID uint) (*entity.LeadProduct, error) {
	var productM model.LeadProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND lead_id = ?", productID, leadID).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLeadProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find lead product")
	}

	return toLeadProductDomain(&productM), nil
}

func (repo *leadRepository) CreateProduct(ctx context.Context, product *entity.LeadProduct) error {
	productM := fromLeadProductDomain(product)
	productM.ID = 0

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		return translateWriteError(err, "failed to create lead product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

func (repo *leadRepository) UpdateProduct(ctx context.Context, product *entity.LeadProduct) error {
	result := repo.db.WithContext(ctx).
		Model(&model.LeadProductModel{}).
		Where("id = ? AND lead_id = ?", product.ID, product.LeadID).
		Select("product", "interest_level", "updated_at").
		Updates(fromLeadProductDomain(product))
	if result.Error != nil {
		return translateWriteError(result.Error, "failed to update lead product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrLeadProductNotFound
	}

	return nil
}

func (repo *leadRepository) DeleteProduct(ctx context.Context, leadID uuid.UUID, productID uint) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND lead_id = ?", productID, leadID).
		Delete(&model.LeadProductModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete lead product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrLeadProductNotFound
	}

	return nil
}
