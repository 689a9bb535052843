package auth

import (
	"os"
	"testing"

	"github.com/google/uuid"
)

func TestJWTFlow(t *testing.T) {
	// Set JWT_SECRET for testing
	os.Setenv("JWT_SECRET", "test-secret-key-12345")

	userID := uuid.New().String()
	email := "test@example.com"
	role := "OPERATOR"

	// Generate token
	token, err := GenerateToken(userID, email, role)
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	// Validate token
	extractedUserID, extractedEmail, extractedRole, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("Failed to validate token: %v", err)
	}

	if extractedUserID != userID {
		t.Fatalf("Expected userID %s, got %s", userID, extractedUserID)
	}

	if extractedEmail != email {
		t.Fatalf("Expected email %s, got %s", email, extractedEmail)
	}

	if extractedRole != role {
		t.Fatalf("Expected role %s, got %s", role, extractedRole)
	}
}

func TestGenerateTokenRequiresUserID(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret-key-12345")

	if _, err := GenerateToken("", "test@example.com", "OPERATOR"); err == nil {
		t.Fatalf("expected error for empty userID")
	}
}
