// Package config provides access-key configuration and hashing.
package config

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// AccessKeyConfig holds the bcrypt hash clients must match to obtain an API
// token, plus hashing parameters.
type AccessKeyConfig struct {
	KeyHash    string
	BcryptCost int
	Pepper     string // optional global secret mixed into the key
}

// NewAccessKeyConfig creates an access-key configuration from environment
// variables: ACCESS_KEY_HASH (required for token issuance), BCRYPT_COST
// (default: 12), and optionally ACCESS_KEY_PEPPER.
func NewAccessKeyConfig() (*AccessKeyConfig, error) {
	costStr := os.Getenv("BCRYPT_COST")
	if costStr == "" {
		costStr = "12"
	}

	cost, err := strconv.Atoi(costStr)
	if err != nil {
		return nil, fmt.Errorf("invalid BCRYPT_COST: %v", err)
	}

	config := &AccessKeyConfig{
		KeyHash:    os.Getenv("ACCESS_KEY_HASH"),
		BcryptCost: cost,
		Pepper:     os.Getenv("ACCESS_KEY_PEPPER"),
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *AccessKeyConfig) normalize() error {
	if c.BcryptCost < 10 || c.BcryptCost > 14 {
		return fmt.Errorf("bcrypt cost out of range: %d (must be 10-14)", c.BcryptCost)
	}
	return nil
}

// HashKey hashes an access key using bcrypt (with optional pepper).
func (c *AccessKeyConfig) HashKey(key string) (string, error) {
	if c.Pepper != "" {
		key = key + c.Pepper
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(key), c.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash access key: %w", err)
	}

	return string(hash), nil
}

// VerifyKey verifies an access key against the configured hash.
func (c *AccessKeyConfig) VerifyKey(key string) bool {
	if c.KeyHash == "" {
		return false
	}
	if c.Pepper != "" {
		key = key + c.Pepper
	}
	return bcrypt.CompareHashAndPassword([]byte(c.KeyHash), []byte(key)) == nil
}
