package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ProjectID      string
	Port           string
	AllowedOrigins []string

	// AdminDomain and TrainerDomain drive role derivation at signup.
	AdminDomain   string
	TrainerDomain string

	// RejectSlotConflicts enables the uniqueness check on
	// (trainer, day, time) at booking creation. Off by default:
	// group lessons may share a slot up to schedule capacity.
	RejectSlotConflicts bool
}

func Load() Config {
	// .env is optional; real deployments set env vars directly.
	_ = godotenv.Load()

	projectID := getenv("FIREBASE_PROJECT_ID", "")
	if projectID == "" {
		projectID = getenv("GOOGLE_CLOUD_PROJECT", "")
	}

	port := getenv("PORT", "8080")
	origins := getenv("ALLOWED_ORIGINS", "http://localhost:3000")

	allowed := []string{}
	for _, o := range strings.Split(origins, ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			allowed = append(allowed, o)
		}
	}

	rejectConflicts, _ := strconv.ParseBool(getenv("REJECT_SLOT_CONFLICTS", "false"))

	return Config{
		ProjectID:           projectID,
		Port:                port,
		AllowedOrigins:      allowed,
		AdminDomain:         getenv("ADMIN_EMAIL_DOMAIN", "gators.com"),
		TrainerDomain:       getenv("TRAINER_EMAIL_DOMAIN", "trainer.com"),
		RejectSlotConflicts: rejectConflicts,
	}
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
