// Package domain holds the offboarding checklist template and the pure
// projection and progress logic computed over a case's event log.
package domain

// Category groups template items for the dashboard UI.
type Category string

const (
	CategorySecurity      Category = "security"
	CategoryAccess        Category = "access"
	CategoryData          Category = "data"
	CategoryCommunication Category = "communication"
	CategoryAssets        Category = "assets"
	CategoryDocumentation Category = "documentation"
)

// TemplateItem is a statically defined checklist entry. The full ordered list
// is a process-wide constant; it is never loaded from or written to the store.
type TemplateItem struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Category         Category `json:"category"`
	Required         bool     `json:"required"`
	EstimatedMinutes int      `json:"estimated_minutes"`
}

// template is the fixed offboarding checklist, in presentation order.
var template = []TemplateItem{
	{ID: "disable-directory-account", Title: "Disable directory account", Description: "Disable the user's directory account and terminate active sessions.", Category: CategorySecurity, Required: true, EstimatedMinutes: 15},
	{ID: "revoke-vpn-access", Title: "Revoke VPN access", Description: "Remove VPN profiles and revoke client certificates.", Category: CategorySecurity, Required: true, EstimatedMinutes: 10},
	{ID: "rotate-shared-credentials", Title: "Rotate shared credentials", Description: "Rotate passwords and API keys for shared systems the user could access.", Category: CategorySecurity, Required: true, EstimatedMinutes: 30},
	{ID: "revoke-application-access", Title: "Revoke application access", Description: "Remove the user from all SaaS and internal applications.", Category: CategoryAccess, Required: true, EstimatedMinutes: 45},
	{ID: "remove-group-memberships", Title: "Remove group memberships", Description: "Remove the user from distribution lists and security groups.", Category: CategoryAccess, Required: false, EstimatedMinutes: 20},
	{ID: "revoke-building-badge", Title: "Revoke building badge", Description: "Deactivate the door badge and collect the physical card.", Category: CategoryAccess, Required: true, EstimatedMinutes: 10},
	{ID: "transfer-file-ownership", Title: "Transfer file ownership", Description: "Reassign owned documents and shared drives to the manager.", Category: CategoryData, Required: true, EstimatedMinutes: 60},
	{ID: "archive-mailbox", Title: "Archive mailbox", Description: "Export and archive the mailbox per the retention policy.", Category: CategoryData, Required: false, EstimatedMinutes: 30},
	{ID: "backup-workstation", Title: "Back up workstation", Description: "Image the workstation before it is wiped for reuse.", Category: CategoryData, Required: false, EstimatedMinutes: 45},
	{ID: "notify-team", Title: "Notify team", Description: "Inform the team and external contacts of the departure.", Category: CategoryCommunication, Required: false, EstimatedMinutes: 10},
	{ID: "set-email-autoreply", Title: "Set email auto-reply", Description: "Configure a forwarding address or auto-reply on the mailbox.", Category: CategoryCommunication, Required: false, EstimatedMinutes: 10},
	{ID: "collect-laptop", Title: "Collect laptop", Description: "Collect the assigned laptop and check it against the asset register.", Category: CategoryAssets, Required: true, EstimatedMinutes: 20},
	{ID: "collect-peripherals", Title: "Collect peripherals", Description: "Collect monitors, docks, and other issued peripherals.", Category: CategoryAssets, Required: false, EstimatedMinutes: 15},
	{ID: "return-mobile-device", Title: "Return mobile device", Description: "Collect the company phone and remove it from MDM.", Category: CategoryAssets, Required: true, EstimatedMinutes: 15},
	{ID: "update-asset-register", Title: "Update asset register", Description: "Record returned equipment and its condition in the register.", Category: CategoryDocumentation, Required: false, EstimatedMinutes: 10},
	{ID: "complete-exit-record", Title: "Complete exit record", Description: "File the signed exit record with HR.", Category: CategoryDocumentation, Required: true, EstimatedMinutes: 20},
}

// Template returns the ordered offboarding checklist template.
// It returns a copy so callers cannot mutate the shared definition.
func Template() []TemplateItem {
	out := make([]TemplateItem, len(template))
	copy(out, template)
	return out
}

// TemplateItemByID reports whether id names a known template item.
func TemplateItemByID(id string) (TemplateItem, bool) {
	for _, item := range template {
		if item.ID == id {
			return item, true
		}
	}
	return TemplateItem{}, false
}
