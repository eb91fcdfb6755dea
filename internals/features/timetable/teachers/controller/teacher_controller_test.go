package controller

import (
	"database/sql"
	"database/sql/driver"
	"io"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

/* =======================================================
   RECORDING SQL DRIVER
   Captures every prepared statement so the test can assert
   which SQL a handler issued, without a Postgres instance.
   Statements succeed with one affected row and no result
   rows.
   ======================================================= */

var recorded struct {
	mu    sync.Mutex
	stmts []string
}

func resetRecorded() {
	recorded.mu.Lock()
	recorded.stmts = nil
	recorded.mu.Unlock()
}

func recordedIndex(sub string) int {
	recorded.mu.Lock()
	defer recorded.mu.Unlock()
	for i, s := range recorded.stmts {
		if strings.Contains(s, sub) {
			return i
		}
	}
	return -1
}

type recDriver struct{}

func (recDriver) Open(string) (driver.Conn, error) { return recConn{}, nil }

type recConn struct{}

func (recConn) Prepare(q string) (driver.Stmt, error) {
	recorded.mu.Lock()
	recorded.stmts = append(recorded.stmts, q)
	recorded.mu.Unlock()
	return recStmt{}, nil
}
func (recConn) Close() error              { return nil }
func (recConn) Begin() (driver.Tx, error) { return recTx{}, nil }

type recTx struct{}

func (recTx) Commit() error   { return nil }
func (recTx) Rollback() error { return nil }

type recStmt struct{}

func (recStmt) Close() error  { return nil }
func (recStmt) NumInput() int { return -1 }
func (recStmt) Exec([]driver.Value) (driver.Result, error) {
	return driver.RowsAffected(1), nil
}
func (recStmt) Query([]driver.Value) (driver.Rows, error) { return recRows{}, nil }

type recRows struct{}

func (recRows) Columns() []string         { return nil }
func (recRows) Close() error              { return nil }
func (recRows) Next([]driver.Value) error { return io.EOF }

var registerRec sync.Once

func recordingDB(t *testing.T) *gorm.DB {
	t.Helper()
	registerRec.Do(func() { sql.Register("teacherrec", recDriver{}) })
	sqlDB, err := sql.Open("teacherrec", "")
	require.NoError(t, err)
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)
	return db
}

/* =======================================================
   TESTS
   ======================================================= */

// Habitual-room and competency join rows have no cascade FK of
// their own, so Delete must clear them before the teacher row goes.
func TestDeleteClearsJoinRowsBeforeTeacher(t *testing.T) {
	resetRecorded()

	ctl := NewTeacherController(recordingDB(t), validator.New())
	app := fiber.New()
	app.Delete("/teachers/:id", ctl.Delete)

	req := httptest.NewRequest("DELETE", "/teachers/3c1f5a2b-7e4d-4b8a-9c6d-1e2f3a4b5c6d", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	rooms := recordedIndex("DELETE FROM teacher_rooms")
	subjects := recordedIndex("DELETE FROM teacher_subjects")
	teacher := recordedIndex(`DELETE FROM "teachers"`)
	require.GreaterOrEqual(t, rooms, 0, "teacher_rooms cleanup not issued")
	require.GreaterOrEqual(t, subjects, 0, "teacher_subjects cleanup not issued")
	require.GreaterOrEqual(t, teacher, 0, "teacher delete not issued")
	require.Less(t, rooms, teacher)
	require.Less(t, subjects, teacher)
}

func TestDeleteRejectsMalformedID(t *testing.T) {
	resetRecorded()

	ctl := NewTeacherController(recordingDB(t), validator.New())
	app := fiber.New()
	app.Delete("/teachers/:id", ctl.Delete)

	req := httptest.NewRequest("DELETE", "/teachers/not-a-uuid", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	require.Equal(t, -1, recordedIndex("DELETE"))
}
