package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/demohealth/privacy-governance-api/internal/models"
	"github.com/demohealth/privacy-governance-api/pkg/anonymize"
	"github.com/demohealth/privacy-governance-api/pkg/utils"
)

// ExportService renders anonymized CSV exports. All identifiers are replaced
// with deterministic truncated-hash pseudonyms before leaving the system.
type ExportService struct {
	patients   PatientStore
	users      UserStore
	accessLogs AccessLogStore
}

// NewExportService creates a new export service instance
func NewExportService(patients PatientStore, users UserStore, accessLogs AccessLogStore) *ExportService {
	return &ExportService{
		patients:   patients,
		users:      users,
		accessLogs: accessLogs,
	}
}

// WritePatientsCSV writes the anonymized patient roster. Patients without a
// record id are hashed from their numeric id instead.
func (s *ExportService) WritePatientsCSV(ctx context.Context, w io.Writer) error {
	patients, err := s.patients.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list patients: %w", err)
	}

	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"patient_id", "pseudonym", "dob_year", "record_hash"}); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, p := range patients {
		recordID := p.RecordID
		if recordID == "" {
			recordID = strconv.FormatInt(p.ID, 10)
		}
		row := []string{
			strconv.FormatInt(p.ID, 10),
			anonymize.MaskName(p.Name),
			anonymize.GeneralizeDOB(p.DOB),
			anonymize.HashRecordID(recordID),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteAccessLogsCSV writes the anonymized audit trail for the trailing
// window. Entries referencing deleted or unknown users and patients are
// pseudonymized from placeholder identities so the export never fails on a
// dangling reference.
func (s *ExportService) WriteAccessLogsCSV(ctx context.Context, w io.Writer, sinceMinutes int) error {
	if sinceMinutes <= 0 {
		sinceMinutes = DefaultSinceMinutes
	}

	logs, err := s.accessLogs.ListSince(ctx, utils.SinceWindow(sinceMinutes))
	if err != nil {
		return fmt.Errorf("failed to list access logs: %w", err)
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}
	usersByID := make(map[int64]*models.User, len(users))
	for i := range users {
		usersByID[users[i].ID] = &users[i]
	}

	patients, err := s.patients.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list patients: %w", err)
	}
	patientsByID := make(map[int64]*models.Patient, len(patients))
	for i := range patients {
		patientsByID[patients[i].ID] = &patients[i]
	}

	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"timestamp_utc", "user_pseudonym", "patient_pseudonym", "action", "authorized"}); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, lg := range logs {
		userName := fmt.Sprintf("User%d", lg.UserID)
		userRole := "user"
		if u, ok := usersByID[lg.UserID]; ok {
			userName = u.Name
			userRole = u.Role
		}

		patientName := fmt.Sprintf("Patient%d", lg.PatientID)
		if p, ok := patientsByID[lg.PatientID]; ok {
			patientName = p.Name
		}

		authorized := "False"
		if lg.IsAuthorized {
			authorized = "True"
		}

		row := []string{
			utils.FormatTimestamp(lg.Timestamp),
			anonymize.MaskUser(userName, userRole),
			anonymize.MaskName(patientName),
			lg.Action,
			authorized,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
