package dto

import (
	"marketplace-admin/internal/app/importer"
	"marketplace-admin/internal/app/pricing"
)

// ============ Пакетное создание (Batch) ============

type BatchServicesRequest struct {
	Rows []ServiceRow `json:"rows" binding:"required,min=1"`
}

func (r BatchServicesRequest) Drafts() []pricing.ServiceDraft {
	drafts := make([]pricing.ServiceDraft, len(r.Rows))
	for i, row := range r.Rows {
		drafts[i] = row.Draft(importer.DefaultServiceRow())
	}
	return drafts
}

type BatchPricingMethodsRequest struct {
	ServiceID uint        `json:"serviceId" binding:"required"`
	Rows      []MethodRow `json:"rows" binding:"required,min=1"`
}

func (r BatchPricingMethodsRequest) Drafts() []pricing.MethodDraft {
	drafts := make([]pricing.MethodDraft, len(r.Rows))
	for i, row := range r.Rows {
		drafts[i] = row.Draft(importer.DefaultMethodRow())
	}
	return drafts
}

type PreflightResponse struct {
	Valid  bool                 `json:"valid"`
	Issues []importer.RowIssues `json:"issues"`
}

type BatchDefaultsResponse struct {
	Service ServiceRow `json:"service"`
	Method  MethodRow  `json:"method"`
}

func NewBatchDefaultsResponse() BatchDefaultsResponse {
	return BatchDefaultsResponse{
		Service: NewServiceRow(importer.DefaultServiceRow()),
		Method:  NewMethodRow(importer.DefaultMethodRow()),
	}
}
