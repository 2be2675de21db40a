package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/demohealth/privacy-governance-api/internal/dao"
	"github.com/demohealth/privacy-governance-api/internal/models"
	"github.com/demohealth/privacy-governance-api/pkg/utils"
)

// DirectoryService handles registration and listing of users and patients.
// Both record kinds are immutable once created.
type DirectoryService struct {
	users    UserStore
	patients PatientStore
	logger   *logrus.Logger
}

// NewDirectoryService creates a new directory service instance
func NewDirectoryService(users UserStore, patients PatientStore, logger *logrus.Logger) *DirectoryService {
	return &DirectoryService{
		users:    users,
		patients: patients,
		logger:   logger,
	}
}

// RegisterUser creates a new user
func (s *DirectoryService) RegisterUser(ctx context.Context, request *models.UserCreateRequest) (*models.User, error) {
	if err := utils.ValidateRequired("name", request.Name); err != nil {
		return nil, err
	}
	if err := utils.ValidateRequired("role", request.Role); err != nil {
		return nil, err
	}
	if err := utils.ValidateEmail(request.Email); err != nil {
		return nil, err
	}

	// Pre-check for a friendly conflict; the unique index on EMAIL still
	// backstops concurrent registrations.
	exists, err := s.users.ExistsByEmail(ctx, request.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check user email: %w", err)
	}
	if exists {
		return nil, dao.ErrDuplicateEmail
	}

	user := &models.User{
		Name:  request.Name,
		Role:  request.Role,
		Email: request.Email,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"user_id": user.ID,
		"role":    user.Role,
	}).Info("User registered")

	return user, nil
}

// ListUsers retrieves all users
func (s *DirectoryService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

// RegisterPatient creates a new patient
func (s *DirectoryService) RegisterPatient(ctx context.Context, request *models.PatientCreateRequest) (*models.Patient, error) {
	if err := utils.ValidateRequired("name", request.Name); err != nil {
		return nil, err
	}
	if err := utils.ValidateRequired("record_id", request.RecordID); err != nil {
		return nil, err
	}

	patient := &models.Patient{
		Name:     request.Name,
		DOB:      request.DOB,
		RecordID: request.RecordID,
	}

	if err := s.patients.Create(ctx, patient); err != nil {
		return nil, err
	}

	s.logger.WithField("patient_id", patient.ID).Info("Patient registered")

	return patient, nil
}

// ListPatients retrieves all patients
func (s *DirectoryService) ListPatients(ctx context.Context) ([]models.Patient, error) {
	patients, err := s.patients.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	if patients == nil {
		patients = []models.Patient{}
	}
	return patients, nil
}
