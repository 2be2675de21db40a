// Package anonymize provides deterministic, one-way pseudonym generation for
// anonymized exports, plus the incident narrative renderer.
//
// Pseudonyms are truncated SHA-256 hex digests (6-8 chars). The truncation is
// a deliberate collision-accepting tradeoff for short human-readable handles;
// it is not cryptographically safe anonymization.
package anonymize

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
	"unicode"
)

func shortHash(value string, length int) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])[:length]
}

// MaskName converts a patient name to a consistent pseudonym
func MaskName(name string) string {
	return "Patient-" + shortHash(name, 6)
}

// MaskUser converts a user name and role to a consistent pseudonym
func MaskUser(name, role string) string {
	return TitleCase(role) + "-" + shortHash(name, 6)
}

// GeneralizeDOB accepts "YYYY-MM-DD", "YYYY-MM" or "YYYY" and returns the
// four-digit year. Unparseable input degrades to "Unknown" rather than
// propagating an error.
func GeneralizeDOB(dob string) string {
	for _, layout := range []string{"2006-01-02", "2006-01", "2006"} {
		if d, err := time.Parse(layout, dob); err == nil {
			return fmt.Sprintf("%04d", d.Year())
		}
	}
	return "Unknown"
}

// HashRecordID converts a medical record number to a stable pseudonym
func HashRecordID(recordID string) string {
	return "REC-" + shortHash(recordID, 8)
}

// TitleCase capitalizes the first letter of each space-separated word and
// lowercases the rest, matching how roles are displayed in narratives.
func TitleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// SummarizeIncident renders the human-readable narrative for a correlated
// breach incident.
func SummarizeIncident(userName, userRole, patientName, action, reason string, whenUTC time.Time) string {
	ts := whenUTC.UTC().Format("2006-01-02 15:04") + " UTC"
	return fmt.Sprintf(
		"At %s, %s '%s' attempted to %s the record of patient '%s' without sufficient consent. "+
			"System response: access denied. Reason: %s. "+
			"Notification: breach alert email sent to compliance officer.",
		ts, TitleCase(userRole), userName, action, patientName, reason,
	)
}
