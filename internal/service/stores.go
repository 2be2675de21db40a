package service

import (
	"context"
	"time"

	"github.com/demohealth/privacy-governance-api/internal/models"
)

// Store interfaces describe the persistence operations the services depend
// on. The DAOs in internal/dao satisfy them; tests substitute testify mocks.

// UserStore persists and retrieves users
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context) ([]models.User, error)
}

// PatientStore persists and retrieves patients
type PatientStore interface {
	Create(ctx context.Context, patient *models.Patient) error
	GetByID(ctx context.Context, id int64) (*models.Patient, error)
	List(ctx context.Context) ([]models.Patient, error)
}

// ConsentStore persists and retrieves consent grants
type ConsentStore interface {
	Create(ctx context.Context, consent *models.Consent) error
	FindByUserAndPatient(ctx context.Context, userID, patientID int64) (*models.Consent, error)
	List(ctx context.Context) ([]models.Consent, error)
}

// AccessLogStore persists and queries the append-only audit trail
type AccessLogStore interface {
	Append(ctx context.Context, entry *models.AccessLog) error
	List(ctx context.Context, filter *models.AccessLogFilter) ([]models.AccessLog, error)
	ListSince(ctx context.Context, since time.Time) ([]models.AccessLog, error)
	FindLatestUnauthorizedBetween(ctx context.Context, from, to time.Time) (*models.AccessLog, error)
	CountSince(ctx context.Context, since time.Time, authorized *bool) (int, error)
	SeriesSince(ctx context.Context, since time.Time) ([]models.MetricsBucket, error)
}

// AlertStore persists and queries breach alerts
type AlertStore interface {
	Create(ctx context.Context, alert *models.Alert) error
	GetByID(ctx context.Context, id int64) (*models.Alert, error)
	MarkResolved(ctx context.Context, id int64) error
	List(ctx context.Context, limit int, unresolvedOnly bool) ([]models.Alert, error)
	CountOpen(ctx context.Context) (int, error)
}

// BreachNotifier delivers breach notifications. Fire-and-observe: no delivery
// guarantee, no retry, no error to handle.
type BreachNotifier interface {
	NotifyBreach(userName, patientName, reason string)
}
