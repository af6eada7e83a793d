package main

import (
	"database/sql"
	"flag"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/crewbase/account-service/config"
	"github.com/crewbase/account-service/pkg/helpers"
)

// Seeds a company and its first admin so the service is usable right after
// the first migration run.
func main() {
	var (
		companyName = flag.String("company", "Acme Corporation", "company to create")
		companyDesc = flag.String("description", "", "company description")
		username    = flag.String("username", "admin", "admin username")
		password    = flag.String("password", "admin", "admin password")
		firstName   = flag.String("first-name", "Site", "admin first name")
		lastName    = flag.String("last-name", "Admin", "admin last name")
		email       = flag.String("email", "admin@example.com", "admin email")
	)
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	tx, err := db.Begin()
	if err != nil {
		log.Fatalf("begin: %v", err)
	}
	defer func() { _ = tx.Rollback() }()

	var companyID int64
	err = tx.QueryRow(`
		INSERT INTO companies (name, description)
		VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET description = EXCLUDED.description
		RETURNING id`,
		*companyName, *companyDesc,
	).Scan(&companyID)
	if err != nil {
		log.Fatalf("insert company: %v", err)
	}

	stored, err := helpers.MatcherFor(cfg.PasswordScheme).Store(*password)
	if err != nil {
		log.Fatalf("store password: %v", err)
	}

	var userID int64
	err = tx.QueryRow(`
		INSERT INTO users (username, password, first_name, last_name, email, active, status, is_admin)
		VALUES ($1, $2, $3, $4, $5, TRUE, 'JOINED', TRUE)
		ON CONFLICT (username) DO UPDATE SET password = EXCLUDED.password, active = TRUE
		RETURNING id`,
		*username, stored, *firstName, *lastName, *email,
	).Scan(&userID)
	if err != nil {
		log.Fatalf("insert admin: %v", err)
	}

	if _, err := tx.Exec(`
		INSERT INTO user_companies (user_id, company_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING`,
		userID, companyID,
	); err != nil {
		log.Fatalf("insert membership: %v", err)
	}

	if err := tx.Commit(); err != nil {
		log.Fatalf("commit: %v", err)
	}

	log.Printf("seeded company=%d admin=%d (%s)", companyID, userID, *username)
}
