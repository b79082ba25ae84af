package resource

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	resourceRepo "careconnect/database/repository/resource"
	"careconnect/models"
	"careconnect/services/booking"
	"careconnect/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateResource validates and persists a new care offering for the provider.
func (s *DefaultResourceService) CreateResource(providerID string, req ResourceRequest) (*models.Resource, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	res := &models.Resource{
		ID:          uuid.New().String(),
		ProviderID:  providerID,
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		HourlyRate:  req.HourlyRate,
		City:        req.City,
	}
	if err := s.Repo.Create(res); err != nil {
		return nil, err
	}

	invalidateListingCache()
	return res, nil
}

// GetResourceByID returns a single resource.
func (s *DefaultResourceService) GetResourceByID(resourceID string) (*models.Resource, error) {
	res, err := s.Repo.GetByID(resourceID)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, &booking.NotFoundError{Entity: "resource", ID: resourceID}
	}
	return res, nil
}

// ListResources returns the public catalog, optionally narrowed by category
// and city. Listings are cached briefly; writes invalidate the cache.
func (s *DefaultResourceService) ListResources(category, city string) ([]models.Resource, error) {
	if category != "" && !models.IsKnownCategory(category) {
		return nil, booking.NewValidationError("unknown category %q", category)
	}

	cacheKey := fmt.Sprintf("%s%s:%s", utils.ResourceCachePrefix, category, city)
	if cached := readListingCache(cacheKey); cached != nil {
		return cached, nil
	}

	resources, err := s.Repo.GetAll(resourceRepo.ResourceFilter{Category: category, City: city})
	if err != nil {
		return nil, err
	}

	writeListingCache(cacheKey, resources)
	return resources, nil
}

// ListProviderResources returns every resource owned by the provider.
func (s *DefaultResourceService) ListProviderResources(providerID string) ([]models.Resource, error) {
	return s.Repo.GetByProvider(providerID)
}

// UpdateResource applies changes to a resource the provider owns.
func (s *DefaultResourceService) UpdateResource(resourceID, providerID string, req ResourceRequest) (*models.Resource, error) {
	res, err := s.GetResourceByID(resourceID)
	if err != nil {
		return nil, err
	}
	if res.ProviderID != providerID {
		return nil, &booking.ForbiddenError{Message: "resource belongs to another provider"}
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	res.Name = req.Name
	res.Category = req.Category
	res.Description = req.Description
	res.HourlyRate = req.HourlyRate
	res.City = req.City

	if err := s.Repo.Update(res); err != nil {
		return nil, err
	}

	invalidateListingCache()
	return res, nil
}

// DeleteResource removes a resource the provider owns.
func (s *DefaultResourceService) DeleteResource(resourceID, providerID string) error {
	res, err := s.GetResourceByID(resourceID)
	if err != nil {
		return err
	}
	if res.ProviderID != providerID {
		return &booking.ForbiddenError{Message: "resource belongs to another provider"}
	}

	if err := s.Repo.Delete(resourceID); err != nil {
		return err
	}

	invalidateListingCache()
	return nil
}

func validateRequest(req ResourceRequest) error {
	if req.Name == "" {
		return booking.NewValidationError("name is required")
	}
	if !models.IsKnownCategory(req.Category) {
		return booking.NewValidationError("unknown category %q", req.Category)
	}
	if req.HourlyRate <= 0 {
		return booking.NewValidationError("hourlyRate must be positive")
	}
	return nil
}

// --- listing cache helpers (best effort; nil cache client is a no-op) ---

func readListingCache(key string) []models.Resource {
	client := utils.CacheClient
	if client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	data, err := client.Get(ctx, key).Result()
	if err != nil {
		return nil
	}
	var resources []models.Resource
	if err := json.Unmarshal([]byte(data), &resources); err != nil {
		return nil
	}
	return resources
}

func writeListingCache(key string, resources []models.Resource) {
	client := utils.CacheClient
	if client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	data, err := json.Marshal(resources)
	if err != nil {
		return
	}
	if err := client.Set(ctx, key, data, utils.ResourceCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache resource listing", zap.Error(err))
	}
}

func invalidateListingCache() {
	client := utils.CacheClient
	if client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	keys, err := client.Keys(ctx, utils.ResourceCachePrefix+"*").Result()
	if err != nil || len(keys) == 0 {
		return
	}
	if err := client.Del(ctx, keys...).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate resource listing cache", zap.Error(err))
	}
}
