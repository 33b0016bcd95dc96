package controllers

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"tools-directory-api/config"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// lockBusyDriver answers every query with a single 0, which is what
// GET_LOCK returns when another session holds the lock.
type lockBusyDriver struct{}

func (lockBusyDriver) Open(string) (driver.Conn, error) {
	return lockBusyConn{}, nil
}

type lockBusyConn struct{}

func (lockBusyConn) Prepare(string) (driver.Stmt, error) {
	return nil, errors.New("prepare not supported")
}

func (lockBusyConn) Close() error { return nil }

func (lockBusyConn) Begin() (driver.Tx, error) {
	return nil, errors.New("transactions not supported")
}

func (lockBusyConn) QueryContext(context.Context, string, []driver.NamedValue) (driver.Rows, error) {
	return &lockBusyRows{}, nil
}

type lockBusyRows struct {
	done bool
}

func (r *lockBusyRows) Columns() []string { return []string{"GET_LOCK"} }

func (r *lockBusyRows) Close() error { return nil }

func (r *lockBusyRows) Next(dest []driver.Value) error {
	if r.done {
		return io.EOF
	}
	dest[0] = int64(0)
	r.done = true
	return nil
}

func TestSweepSuspensionsReportsConflictWhenLockHeld(t *testing.T) {
	gin.SetMode(gin.TestMode)

	sql.Register("lock_busy", lockBusyDriver{})
	sqlDB, err := sql.Open("lock_busy", "")
	if err != nil {
		t.Fatalf("failed to open sql db: %v", err)
	}
	defer sqlDB.Close()

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("failed to create gorm db: %v", err)
	}

	prev := config.DB
	config.DB = gormDB
	defer func() { config.DB = prev }()

	router := gin.New()
	router.POST("/moderation/sweep-suspensions", SweepSuspensions)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/moderation/sweep-suspensions", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusConflict)
	}
}
