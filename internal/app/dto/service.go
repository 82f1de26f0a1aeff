package dto

import "marketplace-admin/internal/app/pricing"

// ============ Услуги (Services) ============

type ServiceResponse struct {
	ID          uint   `json:"id"`
	CategoryID  uint   `json:"categoryId"`
	Name        string `json:"name"`
	Emoji       string `json:"emoji"`
	Description string `json:"description"`
	IconURL     string `json:"iconUrl"`
	Active      bool   `json:"active"`
}

func NewServiceResponse(s pricing.Service) ServiceResponse {
	return ServiceResponse{
		ID:          s.ID,
		CategoryID:  s.CategoryID,
		Name:        s.Name,
		Emoji:       s.Emoji,
		Description: s.Description,
		IconURL:     s.IconURL,
		Active:      s.Active,
	}
}

type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
	Total    int               `json:"total"`
}

// ServiceRow - услуга в одиночном создании и в строке пакета
type ServiceRow struct {
	CategoryID  uint   `json:"categoryId"`
	Name        string `json:"name"`
	Emoji       string `json:"emoji"`
	Description string `json:"description"`
	Active      *bool  `json:"active,omitempty"`
}

func (r ServiceRow) Draft(defaults pricing.ServiceDraft) pricing.ServiceDraft {
	d := defaults
	d.CategoryID = r.CategoryID
	d.Name = r.Name
	d.Emoji = r.Emoji
	d.Description = r.Description
	if r.Active != nil {
		d.Active = *r.Active
	}
	return d
}

func NewServiceRow(d pricing.ServiceDraft) ServiceRow {
	active := d.Active
	return ServiceRow{
		CategoryID:  d.CategoryID,
		Name:        d.Name,
		Emoji:       d.Emoji,
		Description: d.Description,
		Active:      &active,
	}
}
