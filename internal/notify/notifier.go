// Package notify implements the breach notification boundary. Delivery is
// simulated with a structured log line standing in for the compliance email;
// there is no delivery guarantee and no retry.
package notify

import (
	"github.com/sirupsen/logrus"
)

// EmailSimulator emits breach notifications as warning-level log entries
// addressed to the configured compliance recipient.
type EmailSimulator struct {
	logger    *logrus.Logger
	recipient string
}

// NewEmailSimulator creates a new simulated email notifier
func NewEmailSimulator(logger *logrus.Logger, recipient string) *EmailSimulator {
	return &EmailSimulator{
		logger:    logger,
		recipient: recipient,
	}
}

// NotifyBreach emits a breach notification. Fire-and-observe: failures are
// not possible and outcomes are not reported back to the caller.
func (n *EmailSimulator) NotifyBreach(userName, patientName, reason string) {
	n.logger.WithFields(logrus.Fields{
		"recipient": n.recipient,
		"user":      userName,
		"patient":   patientName,
		"reason":    reason,
	}).Warnf("[EMAIL SENT] Privacy breach: User '%s' attempted to access '%s'. Reason: %s",
		userName, patientName, reason)
}
