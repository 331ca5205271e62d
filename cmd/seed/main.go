// seed inserts development sample data for local testing.
// Idempotent: skips inserts if the dev user (alice@example.com) already exists.
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"itam-control-plane/internal/config"
	"itam-control-plane/internal/db"
	eventdomain "itam-control-plane/internal/eventlog/domain"
)

const (
	devSiteID   = "site-hq"
	devCaseID   = "case-alice-offboarding"
	aliceEmail  = "alice@example.com"
	aliceUserID = "user-alice"
	bobUserID   = "user-bob"
	caraUserID  = "user-cara"
	danUserID   = "user-dan"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set; create a .env from .env.example or set DATABASE_URL")
	}

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer conn.Close()

	ctx := context.Background()

	var existing string
	err = conn.QueryRowContext(ctx, `SELECT id FROM users WHERE email = $1`, aliceEmail).Scan(&existing)
	if err == nil {
		log.Println("Seed already applied (alice@example.com exists). Skipping.")
		os.Exit(0)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		log.Fatalf("seed check: %v", err)
	}

	now := time.Now().UTC()

	exec := func(desc, query string, args ...any) {
		if _, err := conn.ExecContext(ctx, query, args...); err != nil {
			log.Fatalf("%s: %v", desc, err)
		}
	}

	exec("create site", `INSERT INTO sites (id, name) VALUES ($1, $2)`, devSiteID, "Headquarters")

	users := []struct {
		id, name, email, department string
		active                      bool
	}{
		{aliceUserID, "Alice Nguyen", aliceEmail, "engineering", false},
		{bobUserID, "Bob Okafor", "bob@example.com", "engineering", true},
		{caraUserID, "Cara Silva", "cara@example.com", "engineering", true},
		{danUserID, "Dan Petrov", "dan@example.com", "finance", true},
	}
	for _, u := range users {
		exec("create user "+u.id, `
			INSERT INTO users (id, name, email, department, site_id, active)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			u.id, u.name, u.email, u.department, devSiteID, u.active)
	}

	assets := []struct {
		id, tag, kind, userID, department, status string
	}{
		{"asset-laptop-alice", "IT-0001", "laptop", aliceUserID, "engineering", "pending_return"},
		{"asset-monitor-alice", "IT-0002", "monitor", aliceUserID, "engineering", "pending_return"},
		{"asset-laptop-bob", "IT-0003", "laptop", bobUserID, "engineering", "assigned"},
		{"asset-laptop-cara", "IT-0004", "laptop", caraUserID, "engineering", "assigned"},
		{"asset-laptop-dan", "IT-0005", "laptop", danUserID, "finance", "assigned"},
	}
	for _, a := range assets {
		exec("create asset "+a.id, `
			INSERT INTO assets (id, tag, kind, assigned_user_id, department, site_id, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			a.id, a.tag, a.kind, a.userID, a.department, devSiteID, a.status)
	}

	grants := []struct {
		id, userID, system, status string
	}{
		{"grant-alice-vpn", aliceUserID, "vpn", "pending_revocation"},
		{"grant-alice-erp", aliceUserID, "erp", "pending_revocation"},
		{"grant-alice-email", aliceUserID, "email", "revoked"},
		{"grant-bob-vpn", bobUserID, "vpn", "active"},
		{"grant-dan-erp", danUserID, "erp", "active"},
	}
	for _, g := range grants {
		exec("create grant "+g.id, `
			INSERT INTO access_grants (id, user_id, system_name, status)
			VALUES ($1, $2, $3, $4)`,
			g.id, g.userID, g.system, g.status)
	}

	exec("create case", `
		INSERT INTO offboarding_cases (id, user_id, department, site_id, status)
		VALUES ($1, $2, $3, $4, 'open')`,
		devCaseID, aliceUserID, "engineering", devSiteID)

	// Partially completed checklist: two marks and one later un-mark.
	marks := []struct {
		itemID    string
		completed bool
		notes     string
		at        time.Time
	}{
		{"disable-directory-account", true, "done via admin console", now.Add(-2 * time.Hour)},
		{"revoke-vpn-access", true, "", now.Add(-90 * time.Minute)},
		{"revoke-vpn-access", false, "", now.Add(-30 * time.Minute)},
	}
	for _, m := range marks {
		payload, err := json.Marshal(eventdomain.ChecklistMark{ItemID: m.itemID, Completed: m.completed, Notes: m.notes})
		if err != nil {
			log.Fatalf("encode mark payload: %v", err)
		}
		kind := eventdomain.KindChecklistMark
		if !m.completed {
			kind = eventdomain.KindChecklistUnmark
		}
		exec("append mark "+m.itemID, `
			INSERT INTO event_log (id, case_id, author_id, kind, payload, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			uuid.New().String(), devCaseID, "op-hr", kind, payload, m.at)
	}

	anomalies := []struct {
		userID, typ, description, suggestion, severity, status string
	}{
		{aliceUserID, "OUTDATED_ACCESS", "ERP access survived role change", "", "HIGH", "OPEN"},
		{bobUserID, "MISSING_MFA", "No second factor enrolled", "", "HIGH", "OPEN"},
		{caraUserID, "EXCESSIVE_PERMISSIONS", "Admin on three systems, uses one", "Drop admin on billing and CRM", "MEDIUM", "IN_PROGRESS"},
		{danUserID, "SUSPICIOUS_LOGIN", "Sign-in from new country", "", "URGENT", "RESOLVED"},
	}
	for _, a := range anomalies {
		exec("create anomaly for "+a.userID, `
			INSERT INTO anomalies (id, user_id, type, description, suggestion, severity, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			uuid.New().String(), a.userID, a.typ, a.description, a.suggestion, a.severity, a.status)
	}

	log.Println("Seed applied.")
}
