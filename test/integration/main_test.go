package integration_test

import (
	"os"
	"sync"
	"testing"

	"jobport_backend/test/helpers"
)

var (
	globalTestServer *helpers.TestServer
	serverOnce       sync.Once
)

// GetTestServer возвращает общий тестовый сервер (создает при первом вызове).
// Без DATABASE_URL интеграционные тесты пропускаются.
func GetTestServer(t *testing.T) *helpers.TestServer {
	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL не задан, интеграционные тесты пропущены")
	}

	serverOnce.Do(func() {
		os.Setenv("SERVER_ENV", "test")
		if os.Getenv("JWT_SECRET") == "" {
			os.Setenv("JWT_SECRET", "integration-test-secret")
		}
		// Режим equality проще для тестов: не нужно подписывать proof
		os.Setenv("AUTH_BINDING_MODE", "equality")

		globalTestServer = helpers.NewTestServer(t)
	})
	return globalTestServer
}

func TestMain(m *testing.M) {
	code := m.Run()
	if globalTestServer != nil {
		globalTestServer.Close()
	}
	os.Exit(code)
}
