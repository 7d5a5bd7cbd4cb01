package postgres

import (
	"funnel/internal/domain/entity"
	"funnel/internal/infra/persistence/model"

	"gorm.io/datatypes"
)

func toAccountDomain(m *model.AccountModel) *entity.Account {
	return &entity.Account{
		ID:              m.ID,
		CompanyName:     m.CompanyName,
		Industry:        m.Industry,
		Website:         m.Website,
		PhoneCode:       m.PhoneCode,
		PhoneNo:         m.PhoneNo,
		Email:           m.Email,
		Address:         fromJSONMap(m.Address),
		SocialLinks:     fromJSONMap(m.SocialLinks),
		LegalDetails:    fromJSONMap(m.LegalDetails),
		CreatedBy:       m.CreatedBy,
		ParentAccountID: m.ParentAccountID,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func fromAccountDomain(a *entity.Account) *model.AccountModel {
	return &model.AccountModel{
		ID:              a.ID,
		CompanyName:     a.CompanyName,
		Industry:        a.Industry,
		Website:         a.Website,
		PhoneCode:       a.PhoneCode,
		PhoneNo:         a.PhoneNo,
		Email:           a.Email,
		Address:         toJSONMap(a.Address),
		SocialLinks:     toJSONMap(a.SocialLinks),
		LegalDetails:    toJSONMap(a.LegalDetails),
		CreatedBy:       a.CreatedBy,
		ParentAccountID: a.ParentAccountID,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

func toContactDomain(m *model.ContactModel) *entity.Contact {
	return &entity.Contact{
		ID:          m.ID,
		FirstName:   m.FirstName,
		LastName:    m.LastName,
		Email:       m.Email,
		PhoneCode:   m.PhoneCode,
		PhoneNo:     m.PhoneNo,
		EntryPoint:  m.EntryPoint,
		SocialLinks: fromJSONMap(m.SocialLinks),
		Address:     fromJSONMap(m.Address),
		CreatedBy:   m.CreatedBy,
		AccountID:   m.AccountID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromContactDomain(c *entity.Contact) *model.ContactModel {
	return &model.ContactModel{
		ID:          c.ID,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Email:       c.Email,
		PhoneCode:   c.PhoneCode,
		PhoneNo:     c.PhoneNo,
		EntryPoint:  c.EntryPoint,
		SocialLinks: toJSONMap(c.SocialLinks),
		Address:     toJSONMap(c.Address),
		CreatedBy:   c.CreatedBy,
		AccountID:   c.AccountID,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toLeadDomain(m *model.LeadModel) *entity.Lead {
	accounts := make([]entity.AccountRef, 0, len(m.Accounts))
	for _, a := range m.Accounts {
		accounts = append(accounts, entity.AccountRef{ID: a.ID, CompanyName: a.CompanyName})
	}

	return &entity.Lead{
		ID:         m.ID,
		Title:      m.Title,
		FirstName:  m.FirstName,
		LastName:   m.LastName,
		Email:      m.Email,
		PhoneCode:  m.PhoneCode,
		PhoneNo:    m.PhoneNo,
		EntryPoint: m.EntryPoint,
		Platform:   m.Platform,
		LeadStage:  m.LeadStage,
		CreatedBy:  m.CreatedBy,
		Accounts:   accounts,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func fromLeadDomain(l *entity.Lead) *model.LeadModel {
	return &model.LeadModel{
		ID:         l.ID,
		Title:      l.Title,
		FirstName:  l.FirstName,
		LastName:   l.LastName,
		Email:      l.Email,
		PhoneCode:  l.PhoneCode,
		PhoneNo:    l.PhoneNo,
		EntryPoint: l.EntryPoint,
		Platform:   l.Platform,
		LeadStage:  l.LeadStage,
		CreatedBy:  l.CreatedBy,
		CreatedAt:  l.CreatedAt,
		UpdatedAt:  l.UpdatedAt,
	}
}

func toLeadDetailsDomain(m *model.LeadDetailsModel) *entity.LeadDetails {
	var addresses []map[string]any
	if len(m.Addresses) > 0 {
		addresses = []map[string]any(m.Addresses)
	}

	return &entity.LeadDetails{
		ID:            m.ID,
		LeadID:        m.LeadID,
		DOB:           m.DOB,
		Gender:        m.Gender,
		MaritalStatus: m.MaritalStatus,
		Children:      m.Children,
		Occupation:    m.Occupation,
		LegalDetails:  fromJSONMap(m.LegalDetails),
		SocialLinks:   fromJSONMap(m.SocialLinks),
		Addresses:     addresses,
		Notes:         m.Notes,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func fromLeadDetailsDomain(d *entity.LeadDetails) *model.LeadDetailsModel {
	// Always written as a JSON array; the column is NOT NULL.
	addresses := datatypes.JSONSlice[map[string]any]{}
	if d.Addresses != nil {
		addresses = datatypes.JSONSlice[map[string]any](d.Addresses)
	}

	return &model.LeadDetailsModel{
		ID:            d.ID,
		LeadID:        d.LeadID,
		DOB:           d.DOB,
		Gender:        d.Gender,
		MaritalStatus: d.MaritalStatus,
		Children:      d.Children,
		Occupation:    d.Occupation,
		LegalDetails:  toJSONMap(d.LegalDetails),
		SocialLinks:   toJSONMap(d.SocialLinks),
		Addresses:     addresses,
		Notes:         d.Notes,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func toLeadNoteDomain(m *model.LeadNoteModel) *entity.LeadNote {
	return &entity.LeadNote{
		ID:        m.ID,
		LeadID:    m.LeadID,
		Note:      m.Note,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
	}
}

func toLeadProductDomain(m *model.LeadProductModel) *entity.LeadProduct {
	return &entity.LeadProduct{
		ID:            m.ID,
		LeadID:        m.LeadID,
		Product:       m.Product,
		InterestLevel: m.InterestLevel,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func fromLeadProductDomain(p *entity.LeadProduct) *model.LeadProductModel {
	return &model.LeadProductModel{
		ID:            p.ID,
		LeadID:        p.LeadID,
		Product:       p.Product,
		InterestLevel: p.InterestLevel,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func toUserDomain(m *model.UserModel) *entity.User {
	return &entity.User{
		ID:             m.ID,
		Username:       m.Username,
		HashedPassword: m.HashedPassword,
		CreatedAt:      m.CreatedAt,
	}
}

func fromUserDomain(u *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:             u.ID,
		Username:       u.Username,
		HashedPassword: u.HashedPassword,
		CreatedAt:      u.CreatedAt,
	}
}

func toJSONMap(m map[string]any) datatypes.JSONMap {
	if m == nil {
		return nil
	}

	return datatypes.JSONMap(m)
}

// fromJSONMap reports NULL and empty objects alike as nil.
func fromJSONMap(m datatypes.JSONMap) map[string]any {
	if len(m) == 0 {
		return nil
	}

	return map[string]any(m)
}
