package main

import (
	"fmt"
	"log"

	"github.com/interviewai-team/interviewai-backend/internal/domain/entities"
	"github.com/interviewai-team/interviewai-backend/internal/infrastructure/database"
	"github.com/interviewai-team/interviewai-backend/pkg/config"
	pkgjwt "github.com/interviewai-team/interviewai-backend/pkg/jwt"
)

func main() {
	log.Println("🚀 Starting test users creation...")

	// Load configuration from .env
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Initialize JWT manager
	jwtManager := pkgjwt.NewManager(cfg.JWT.AccessSecret, cfg.JWT.AccessExpiry)

	// Define test users
	testUsers := []struct {
		Email      string
		Name       string
		Tier       entities.UserTier
		TargetRole string
	}{
		{Email: "alice@test.local", Name: "Alice", Tier: entities.TierFree, TargetRole: "Backend Engineer"},
		{Email: "bob@test.local", Name: "Bob", Tier: entities.TierFree, TargetRole: "Product Manager"},
		{Email: "charlie@test.local", Name: "Charlie", Tier: entities.TierPro, TargetRole: "Data Scientist"},
		{Email: "diana@test.local", Name: "Diana", Tier: entities.TierPro, TargetRole: "Engineering Manager"},
	}

	log.Println("🗑️  Cleaning up existing test users...")
	// Interviews, analyses and jobs cascade from the user rows.
	db.Where("email LIKE ?", "%@test.local").Delete(&entities.User{})

	log.Println("🔑 Creating test users and tokens...")

	for i, testUser := range testUsers {
		user := entities.NewUser(testUser.Email, testUser.Name)
		user.Tier = testUser.Tier
		role := testUser.TargetRole
		user.TargetRole = &role

		if err := db.Create(user).Error; err != nil {
			log.Printf("❌ Failed to create user %s: %v", testUser.Email, err)
			continue
		}

		accessToken, err := jwtManager.GenerateAccessToken(user.ID, user.Email)
		if err != nil {
			log.Printf("❌ Failed to generate access token for %s: %v", testUser.Email, err)
			continue
		}

		fmt.Printf("═══════════════════════════════════════════════════════════════\n")
		fmt.Printf("🟢 User %d: %s\n", i+1, testUser.Name)
		fmt.Printf("═══════════════════════════════════════════════════════════════\n")
		fmt.Printf("Email:        %s\n", user.Email)
		fmt.Printf("User ID:      %s\n", user.ID)
		fmt.Printf("Tier:         %s\n", user.Tier)
		fmt.Printf("\n📋 Access Token (Copy to Postman):\n")
		fmt.Printf("%s\n", accessToken)
		fmt.Printf("───────────────────────────────────────────────────────────────\n\n")
	}

	log.Println("✅ All test users created successfully!")
	log.Println("\n💡 Usage:")
	log.Println("   1. Copy the Access Token above")
	log.Println("   2. In Postman, set header: Authorization: Bearer <access_token>")
	log.Println("   3. Token expiry:", cfg.JWT.AccessExpiry)
	log.Println("\n🧹 To clean up test users, run: DELETE FROM users WHERE email LIKE '%@test.local'")
}
