package database

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/WatthikonJ/Dreamable/auth"
	"github.com/WatthikonJ/Dreamable/database/models"
)

var rosterClient = &http.Client{Timeout: 10 * time.Second}

// FetchRoster reads the user roster from source: an http(s) URL or a local
// file path. A non-empty key means the source is AES-GCM encrypted with it
// (the roster carries plaintext demo passwords). Consumed exactly once, at
// startup.
func FetchRoster(ctx context.Context, source string, key []byte) ([]models.User, error) {
	var data []byte

	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
		if err != nil {
			return nil, err
		}
		resp, err := rosterClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("roster fetch: status %d", resp.StatusCode)
		}
		// read is split from parse so a file source shares the same path
		data, err = io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
	} else {
		var err error
		data, err = os.ReadFile(source)
		if err != nil {
			return nil, err
		}
	}

	if len(key) > 0 {
		plain, err := auth.Decrypt(key, strings.TrimSpace(string(data)))
		if err != nil {
			return nil, fmt.Errorf("roster decrypt: %w", err)
		}
		data = []byte(plain)
	}

	var users []models.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("roster parse: %w", err)
	}
	return users, nil
}

// LoadRoster fetches the roster and substitutes the built-in fallback on
// any failure, logging the reason. It always returns a usable roster.
func LoadRoster(ctx context.Context, source string, key []byte) []models.User {
	users, err := FetchRoster(ctx, source, key)
	if err != nil {
		log.Printf("fallback: roster %q not loaded: %v", source, err)
		return FallbackRoster()
	}
	return users
}

// FallbackRoster is the seed roster used when the static source is
// unreachable: one account per role, all with the demo password.
func FallbackRoster() []models.User {
	return []models.User{
		{Id: "admin-01", Role: models.RoleAdmin, Email: "admin@example.com", Password: "password", Name: "Admin User"},
		{Id: "mentor-01", Role: models.RoleMentor, Email: "mentor@example.com", Password: "password", Name: "Mentor User"},
		{Id: "student-01", Role: models.RoleStudent, Email: "student@example.com", Password: "password", Name: "Student User"},
	}
}
