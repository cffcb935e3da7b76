package helpers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"jobport_backend/database"
	"jobport_backend/internal/app"
	"jobport_backend/internal/config"
	"jobport_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// TestServer гоняет запросы через полный стек приложения in-process.
// Каждый тест работает в собственной транзакции: она кладется в контекст
// запроса, DBMiddleware подхватывает ее вместо пула, тест в конце
// откатывает - таблицы между тестами чистить не нужно.
type TestServer struct {
	Router *gin.Engine
	DB     *gorm.DB
}

// NewTestServer поднимает стек против тестовой БД из DATABASE_URL
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	gin.SetMode(gin.TestMode)
	config.LoadConfig()
	cfg := config.GetConfig()

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		t.Fatalf("Не удалось подключиться к тестовой БД (%s): %v", cfg.Database.DSN, err)
	}

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("AutoMigrate для тестовой БД: %v", err)
	}

	return &TestServer{
		Router: app.SetupRouter(cfg, db),
		DB:     db,
	}
}

func (ts *TestServer) Close() {
	sqlDB, err := ts.DB.DB()
	if err == nil {
		sqlDB.Close()
	}
}

func (ts *TestServer) BeginTransaction(t *testing.T) *gorm.DB {
	t.Helper()

	tx := ts.DB.Begin()
	if tx.Error != nil {
		t.Fatalf("Не удалось начать транзакцию: %v", tx.Error)
	}
	return tx
}

func (ts *TestServer) RollbackTransaction(t *testing.T, tx *gorm.DB) {
	t.Helper()
	tx.Rollback()
}

// SendRequest отправляет запрос через роутер в рамках транзакции tx
func (ts *TestServer) SendRequest(t *testing.T, tx *gorm.DB, method, path, token string, body any, headers map[string]string) (*httptest.ResponseRecorder, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Ошибка кодирования JSON для запроса: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if tx != nil {
		ctx := context.WithValue(req.Context(), contextkeys.DBContextKey, tx)
		req = req.WithContext(ctx)
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	ts.Router.ServeHTTP(w, req)

	resBody, err := io.ReadAll(w.Body)
	if err != nil {
		t.Fatalf("Ошибка чтения тела ответа: %v", err)
	}
	return w, string(resBody)
}
