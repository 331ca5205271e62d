package domain

import "strings"

// remedyFallback is returned for anomaly types with no table entry. Detection
// producers may ship new types before this table learns about them, so unknown
// types degrade to the fallback instead of failing.
const remedyFallback = "Review the anomaly with the security team and document the resolution."

// remedies maps each known anomaly type to its canonical remediation guidance.
var remedies = map[Type]string{
	TypeExcessivePermissions:  "Review the user's role assignments and remove permissions beyond their current responsibilities.",
	TypeUnusedAccount:         "Confirm with the user's manager whether the account is still needed, then disable or remove it.",
	TypeMissingMFA:            "Require the user to enroll a second factor before their next sign-in.",
	TypeSharedAccount:         "Identify everyone using the account, issue individual accounts, and rotate the shared credentials.",
	TypeOutdatedAccess:        "Re-certify the user's access against their current role and revoke grants that no longer apply.",
	TypePolicyViolation:       "Escalate to the policy owner and suspend the offending access until the violation is resolved.",
	TypeSuspiciousLogin:       "Force a password reset, invalidate active sessions, and review the sign-in history with the user.",
	TypeEquipmentMismatch:     "Reconcile the asset register against the devices actually issued to the user.",
	TypeUnauthorizedAccess:    "Revoke the access immediately and open an incident to determine how it was obtained.",
	TypeDormantPermissions:    "Remove permissions that have not been exercised within the review window.",
	TypePrivilegeEscalation:   "Audit the grant history for the affected account and revert any self-granted elevation.",
	TypeCrossDepartmentAccess: "Verify the cross-department access has a documented business justification or revoke it.",
}

// Remedy resolves remediation guidance for an anomaly. An operator-entered
// override wins verbatim; otherwise the canonical entry for the type; unknown
// types get the generic fallback. Total: never errors.
func Remedy(t Type, override string) string {
	if strings.TrimSpace(override) != "" {
		return override
	}
	if r, ok := remedies[t]; ok {
		return r
	}
	return remedyFallback
}
