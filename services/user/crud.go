package user

import (
	"fmt"

	"careconnect/models"
	"careconnect/utils"

	"go.mongodb.org/mongo-driver/bson"
)

// GetUserByID returns a sanitized user record.
func (s *DefaultUserService) GetUserByID(userID string) (*models.User, error) {
	userRec, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if userRec == nil {
		return nil, fmt.Errorf("user with id %s not found", userID)
	}
	userRec.Sanitize()
	return userRec, nil
}

// UpdateUser applies the mutable profile fields and returns the updated record.
func (s *DefaultUserService) UpdateUser(userID string, req UpdateRequest) (*models.User, error) {
	updateDoc := bson.M{}
	if req.Name != "" {
		updateDoc["name"] = req.Name
	}
	if req.PhoneNumber != "" {
		updateDoc["phoneNumber"] = req.PhoneNumber
	}
	if req.City != "" {
		updateDoc["city"] = req.City
	}
	if req.Bio != "" {
		updateDoc["bio"] = req.Bio
	}
	if len(updateDoc) == 0 {
		return nil, fmt.Errorf("no updatable fields provided")
	}

	if err := s.Repo.UpdateSetDocument(userID, updateDoc); err != nil {
		return nil, err
	}
	return s.GetUserByID(userID)
}

// DeleteUser removes the account and drops any cached credentials.
func (s *DefaultUserService) DeleteUser(userID string) error {
	if err := s.Repo.Delete(userID); err != nil {
		return err
	}
	utils.DropAuthToken(userID)
	return nil
}

// GetAllUsers returns every account with sensitive fields excluded.
func (s *DefaultUserService) GetAllUsers() ([]models.User, error) {
	users, err := s.Repo.GetAll()
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].Sanitize()
	}
	return users, nil
}
