package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	Port      string
	MongoURI  string
	MongoDB   string
	JWTSecret string
	JWTTTLHrs int
	ClientURL string
	Mailtrap  MailtrapConfig
	Env       string
}

// MailtrapConfig holds the outbound email credentials.
type MailtrapConfig struct {
	Endpoint    string
	Token       string
	SenderEmail string
	SenderName  string
}

func Load() *Config {
	_ = godotenv.Load()
	ttl, err := strconv.Atoi(getEnv("JWT_TTL_HOURS", "168"))
	if err != nil { ttl = 168 }

	c := &Config{
		Port:      getEnv("PORT", "7070"),
		MongoURI:  mustEnv("MONGO_URI"),
		MongoDB:   getEnv("MONGO_DB", "authflow"),
		JWTSecret: mustEnv("JWT_SECRET"),
		JWTTTLHrs: ttl,
		ClientURL: getEnv("CLIENT_URL", "http://localhost:5173"),
		Mailtrap: MailtrapConfig{
			Endpoint:    getEnv("MAILTRAP_ENDPOINT", "https://send.api.mailtrap.io"),
			Token:       mustEnv("MAILTRAP_TOKEN"),
			SenderEmail: getEnv("MAILTRAP_SENDER_EMAIL", "no-reply@authflow.dev"),
			SenderName:  getEnv("MAILTRAP_SENDER_NAME", "Authflow"),
		},
		Env: getEnv("ENV", "dev"),
	}
	log.Infof("config loaded: env=%s port=%s", c.Env, c.Port)
	return c
}

// IsProduction gates cookie Secure and similar toggles.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" { return v }
	return def
}
func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" { log.Fatalf("missing env: %s", k) }
	return v
}
