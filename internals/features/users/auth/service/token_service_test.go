package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"sekolahku_backend/internals/configs"
	userModel "sekolahku_backend/internals/features/users/user/model"
)

func TestSignAndParseAccessToken(t *testing.T) {
	configs.JWTSecret = "test-secret-do-not-use"

	user := &userModel.UserModel{
		UserID:       uuid.New(),
		UserFullName: "Dewi Lestari",
		UserEmail:    "dewi@example.com",
		UserRole:     "teacher",
	}

	raw, err := SignAccessToken(user)
	if err != nil {
		t.Fatalf("SignAccessToken: %v", err)
	}
	if raw == "" {
		t.Fatal("SignAccessToken returned empty token")
	}

	claims, err := ParseAccessToken(raw)
	if err != nil {
		t.Fatalf("ParseAccessToken: %v", err)
	}

	if got := claims["typ"]; got != "access" {
		t.Errorf("typ = %v, want access", got)
	}
	if got := claims["id"]; got != user.UserID.String() {
		t.Errorf("id = %v, want %s", got, user.UserID)
	}
	if got := claims["sub"]; got != user.UserID.String() {
		t.Errorf("sub = %v, want %s", got, user.UserID)
	}
	if got := claims["role"]; got != "teacher" {
		t.Errorf("role = %v, want teacher", got)
	}
	if got := claims["full_name"]; got != "Dewi Lestari" {
		t.Errorf("full_name = %v, want Dewi Lestari", got)
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		t.Fatal("exp claim missing")
	}
	remaining := time.Until(time.Unix(int64(exp), 0))
	if remaining < AccessTTL-time.Minute || remaining > AccessTTL+time.Minute {
		t.Errorf("exp is %v away, want about %v", remaining, AccessTTL)
	}
}

func TestParseAccessTokenRejectsTampered(t *testing.T) {
	configs.JWTSecret = "test-secret-do-not-use"

	user := &userModel.UserModel{UserID: uuid.New(), UserRole: "admin"}
	raw, err := SignAccessToken(user)
	if err != nil {
		t.Fatalf("SignAccessToken: %v", err)
	}

	tampered := raw[:len(raw)-2] + "xx"
	if _, err := ParseAccessToken(tampered); err == nil {
		t.Error("ParseAccessToken accepted a tampered token")
	}
}

func TestSignAccessTokenMissingSecret(t *testing.T) {
	prev := configs.JWTSecret
	configs.JWTSecret = ""
	t.Setenv("JWT_SECRET", "")
	defer func() { configs.JWTSecret = prev }()

	user := &userModel.UserModel{UserID: uuid.New()}
	if _, err := SignAccessToken(user); err == nil {
		t.Error("SignAccessToken succeeded without a secret")
	}
}
