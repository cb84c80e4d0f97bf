package cmd

import "time"

// Config carries everything the process needs, loaded from the environment.
type Config struct {
	HTTPPort         string
	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBName           string
	DBSslMode        string
	MongoURI         string
	MongoDBName      string
	OpenRouteBaseURL string
	OpenRouteAPIKey  string
	JWTSecret        string
	JWTTTL           time.Duration
	QRCredentialTTL  time.Duration
}
