package resource

import (
	resourceRepo "careconnect/database/repository/resource"
	"careconnect/models"
)

// ResourceService manages the catalog of bookable care offerings.
type ResourceService interface {
	CreateResource(providerID string, req ResourceRequest) (*models.Resource, error)
	GetResourceByID(resourceID string) (*models.Resource, error)
	ListResources(category, city string) ([]models.Resource, error)
	ListProviderResources(providerID string) ([]models.Resource, error)
	UpdateResource(resourceID, providerID string, req ResourceRequest) (*models.Resource, error)
	DeleteResource(resourceID, providerID string) error
}

// DefaultResourceService is the production implementation.
type DefaultResourceService struct {
	Repo resourceRepo.ResourceRepository
}

// ResourceRequest carries the provider's input for a care offering.
type ResourceRequest struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	HourlyRate  float64 `json:"hourlyRate"`
	City        string  `json:"city"`
}
