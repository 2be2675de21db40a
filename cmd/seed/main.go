package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/demohealth/privacy-governance-api/internal/config"
	"github.com/demohealth/privacy-governance-api/internal/dao"
	"github.com/demohealth/privacy-governance-api/internal/database"
	"github.com/demohealth/privacy-governance-api/internal/models"
	pkgutils "github.com/demohealth/privacy-governance-api/pkg/utils"
)

// Seeds the database with a small demo dataset so the API has something to
// show immediately after startup. Safe to rerun; existing users are skipped
// by email.
func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	db, err := database.Initialize(&cfg.Database, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize database")
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	userDAO := dao.NewUserDAO(db)
	patientDAO := dao.NewPatientDAO(db)
	consentDAO := dao.NewConsentDAO(db)
	accessLogDAO := dao.NewAccessLogDAO(db)

	users := []*models.User{
		{Name: "Dr. Youssef", Role: "doctor", Email: "youssef@demohealth.example"},
		{Name: "Nurse Clara", Role: "nurse", Email: "clara@demohealth.example"},
		{Name: "Admin Omar", Role: "admin", Email: "omar@demohealth.example"},
	}
	for _, u := range users {
		if err := userDAO.Create(ctx, u); err != nil {
			if errors.Is(err, dao.ErrDuplicateEmail) {
				logger.WithField("email", u.Email).Info("User already seeded, skipping")
				continue
			}
			logger.WithError(err).Fatal("Failed to seed user")
		}
	}

	existing, err := patientDAO.List(ctx)
	if err != nil {
		logger.WithError(err).Fatal("Failed to list patients")
	}
	if len(existing) > 0 {
		logger.WithField("patients", len(existing)).Info("Patients already seeded, nothing to do")
		return
	}

	patients := []*models.Patient{
		{Name: "Ashraf Mo", DOB: "1990-05-20", RecordID: "REC1234"},
		{Name: "John Doe", DOB: "1985-07-10", RecordID: "REC5678"},
	}
	for _, p := range patients {
		if err := patientDAO.Create(ctx, p); err != nil {
			logger.WithError(err).Fatal("Failed to seed patient")
		}
	}

	now := pkgutils.NowUTC()
	consents := []*models.Consent{
		{UserID: users[0].ID, PatientID: patients[0].ID, CanView: true, CanEdit: true, CreatedAt: now},
		{UserID: users[1].ID, PatientID: patients[1].ID, CanView: true, CanEdit: false, CreatedAt: now},
	}
	for _, c := range consents {
		if err := consentDAO.Create(ctx, c); err != nil {
			logger.WithError(err).Fatal("Failed to seed consent")
		}
	}

	logs := []*models.AccessLog{
		{UserID: users[0].ID, PatientID: patients[0].ID, Action: models.ActionView, Timestamp: now, IsAuthorized: true},
		{UserID: users[1].ID, PatientID: patients[1].ID, Action: models.ActionView, Timestamp: now, IsAuthorized: true},
	}
	for _, l := range logs {
		if err := accessLogDAO.Append(ctx, l); err != nil {
			logger.WithError(err).Fatal("Failed to seed access log")
		}
	}

	logger.WithFields(logrus.Fields{
		"users":    len(users),
		"patients": len(patients),
		"consents": len(consents),
		"logs":     len(logs),
	}).Info("Demo data seeded")
}
