package utils

import (
	"testing"

	"auth/models"
)

func TestGenerateAndParseToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	user := models.User{
		ID:    42,
		Email: "admin@cueclub.local",
		Roles: models.Roles{models.RoleAdmin},
	}

	token, err := GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}

	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Email != "admin@cueclub.local" {
		t.Errorf("Email = %q", claims.Email)
	}
	if len(claims.Roles) != 1 || claims.Roles[0] != models.RoleAdmin {
		t.Errorf("Roles = %v", claims.Roles)
	}
}

func TestParseToken_Garbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	if _, err := ParseToken("not.a.token"); err == nil {
		t.Error("garbage token parsed without error")
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")

	user := models.User{ID: 1, Email: "a@b.c", Roles: models.Roles{models.RoleUser}}
	token, err := GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	t.Setenv("JWT_SECRET", "second-secret")
	if _, err := ParseToken(token); err == nil {
		t.Error("token signed with a different secret accepted")
	}
}
