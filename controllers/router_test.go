package controllers_test

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jerekarp/hyte-backend/config"
	"github.com/jerekarp/hyte-backend/models"
	"github.com/jerekarp/hyte-backend/routes"
	"github.com/jerekarp/hyte-backend/utils"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// setupServer wires the real router against a fresh in-memory database
// and seeds two regular users (ids 17 and 18) plus one admin (id 19).
func setupServer(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(&models.User{}, &models.DiaryEntry{}, &models.Activity{}, &models.Measurement{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	users := []models.User{
		{ID: 17, Username: "johndoe", Password: "x", Email: "johndoe@example.com", UserLevel: models.UserLevelRegular},
		{ID: 18, Username: "janedoe", Password: "x", Email: "janedoe@example.com", UserLevel: models.UserLevelRegular},
		{ID: 19, Username: "bobsmith", Password: "x", Email: "bobsmith@example.com", UserLevel: models.UserLevelAdmin},
	}
	for i := range users {
		if err := gdb.Create(&users[i]).Error; err != nil {
			t.Fatalf("failed to seed user: %v", err)
		}
	}

	config.DB = gdb

	t.Cleanup(func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return routes.SetupRouter()
}

func tokenFor(t *testing.T, userID uint, username, level string) string {
	t.Helper()
	token, err := utils.GenerateJWT(userID, username, level)
	if err != nil {
		t.Fatalf("failed to mint token: %v", err)
	}
	return token
}

func doJSON(r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodGet, path, token, "")
}
