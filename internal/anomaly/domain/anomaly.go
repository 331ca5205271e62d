// Package domain holds anomaly records and remediation resolution.
package domain

import "time"

// Type categorizes a detected anomaly. Detection runs out of process; the
// server only classifies and suggests remediation.
type Type string

const (
	TypeExcessivePermissions  Type = "EXCESSIVE_PERMISSIONS"
	TypeUnusedAccount         Type = "UNUSED_ACCOUNT"
	TypeMissingMFA            Type = "MISSING_MFA"
	TypeSharedAccount         Type = "SHARED_ACCOUNT"
	TypeOutdatedAccess        Type = "OUTDATED_ACCESS"
	TypePolicyViolation       Type = "POLICY_VIOLATION"
	TypeSuspiciousLogin       Type = "SUSPICIOUS_LOGIN"
	TypeEquipmentMismatch     Type = "EQUIPMENT_MISMATCH"
	TypeUnauthorizedAccess    Type = "UNAUTHORIZED_ACCESS"
	TypeDormantPermissions    Type = "DORMANT_PERMISSIONS"
	TypePrivilegeEscalation   Type = "PRIVILEGE_ESCALATION"
	TypeCrossDepartmentAccess Type = "CROSS_DEPARTMENT_ACCESS"
)

// Severity orders anomalies for triage: LOW < MEDIUM < HIGH < URGENT.
type Severity string

const (
	SeverityLow    Severity = "LOW"
	SeverityMedium Severity = "MEDIUM"
	SeverityHigh   Severity = "HIGH"
	SeverityUrgent Severity = "URGENT"
)

// Status tracks the anomaly lifecycle. Records start OPEN and only move to
// RESOLVED or DISMISSED via explicit operator action.
type Status string

const (
	StatusOpen       Status = "OPEN"
	StatusInProgress Status = "IN_PROGRESS"
	StatusResolved   Status = "RESOLVED"
	StatusDismissed  Status = "DISMISSED"
)

// Record is one detected anomaly tied to a user. Suggestion, when set by an
// operator, overrides the canonical remedy for the type.
type Record struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Type        Type      `json:"type"`
	Description string    `json:"description"`
	Suggestion  string    `json:"suggestion,omitempty"`
	Severity    Severity  `json:"severity"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
