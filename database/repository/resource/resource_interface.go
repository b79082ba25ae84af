package resourceRepo

import "careconnect/models"

// ResourceFilter narrows public resource listings.
// Empty fields match everything.
type ResourceFilter struct {
	Category string
	City     string
}

// ResourceRepository defines methods for care resource data access.
// Lookup methods return (nil, nil) when no document matches.
type ResourceRepository interface {
	// Create inserts a new resource record.
	Create(resource *models.Resource) error
	// GetByID retrieves a resource by its unique ID.
	GetByID(id string) (*models.Resource, error)
	// GetAll retrieves resources matching the filter.
	GetAll(filter ResourceFilter) ([]models.Resource, error)
	// GetByProvider retrieves all resources owned by a provider.
	GetByProvider(providerID string) ([]models.Resource, error)
	// Update modifies an existing resource record.
	Update(resource *models.Resource) error
	// Delete removes a resource record by its ID.
	Delete(id string) error
}
