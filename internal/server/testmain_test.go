package server

import (
	"testing"

	"github.com/joho/godotenv"
	"go.uber.org/goleak"
)

// TestMain loads .env if available and fails the package on leaked goroutines.
func TestMain(m *testing.M) {
	_ = godotenv.Load()

	goleak.VerifyTestMain(m)
}
