package service

import (
	"os"
	"testing"
)

const testJWTSecret = "hyratryggt_test_jwt_secret_key_1234567890"

func TestMain(m *testing.M) {
	_ = os.Setenv("JWT_SECRET", testJWTSecret)
	os.Exit(m.Run())
}
