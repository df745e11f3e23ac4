package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"reqtrack/internal/config"
	"reqtrack/internal/db"
	"reqtrack/internal/request"
	"reqtrack/internal/user"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dbConn, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := dbConn.AutoMigrate(&user.User{}, &request.Request{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	db.DB = dbConn
	resetTables(t)
	return dbConn
}

func resetTables(t *testing.T) {
	t.Helper()
	if err := db.DB.Exec("DELETE FROM requests").Error; err != nil {
		t.Fatalf("failed to reset requests table: %v", err)
	}
	if err := db.DB.Exec("DELETE FROM users").Error; err != nil {
		t.Fatalf("failed to reset users table: %v", err)
	}
}

func seedUser(t *testing.T, username, email, password string, role user.Role) user.User {
	t.Helper()
	hash, err := user.HashPassword(password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	u := user.User{Username: username, Email: email, PasswordHash: hash, Role: role}
	if err := db.DB.Create(&u).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return u
}

func seedRequest(t *testing.T, owner user.User, title, description string) request.Request {
	t.Helper()
	r := request.Request{Title: title, Description: description, Status: request.StatusPending, UserID: owner.ID}
	if err := db.DB.Create(&r).Error; err != nil {
		t.Fatalf("failed to seed request: %v", err)
	}
	return r
}

// withUser simulates the auth middleware having resolved a principal.
func withUser(u user.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("currentUser", u)
		c.Next()
	}
}

func testEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.SetHTMLTemplate(loadTemplates())
	return r
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Server.JWTSecret = "test-secret"
	return cfg
}

// deadRedis returns a client with nothing listening. Handlers that
// treat the session store as best-effort still work against it.
func deadRedis() *redis.Client {
	return redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
}

// liveRedis skips the test when no local redis answers.
func liveRedis(t *testing.T) *redis.Client {
	t.Helper()
	rdb := redis.NewClient(&redis.Options{Addr: "localhost:6379", DB: 15})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		t.Skipf("redis not available: %v", err)
	}
	return rdb
}

func formBody(values url.Values) (*strings.Reader, string) {
	return strings.NewReader(values.Encode()), "application/x-www-form-urlencoded"
}

func dbFirstByEmail(u *user.User, email string) error {
	return db.DB.Where("email = ?", email).First(u).Error
}

func dbPromote(userID uint) error {
	return db.DB.Model(&user.User{}).Where("id = ?", userID).Update("role", user.RoleAdmin).Error
}

func userCount(t *testing.T) int64 {
	t.Helper()
	var count int64
	if err := db.DB.Model(&user.User{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	return count
}

func contains(haystack, needle string) bool {
	return strings.Contains(haystack, needle)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func sessionCookieFrom(resp *http.Response) *http.Cookie {
	for _, ck := range resp.Cookies() {
		if ck.Name == sessionCookie {
			return ck
		}
	}
	return nil
}
