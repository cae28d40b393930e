package service

import (
	"database/sql/driver"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a gorm handle backed by sqlmock so service queries can
// be asserted at the SQL level without a running MySQL
func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      conn,
		SkipInitializeWithVersion: true, // No VERSION() handshake against the mock
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return db, mock
}

// bcryptHashOf matches any SQL argument that is a bcrypt hash of the
// given plaintext. Used to prove plaintext passwords never reach the
// store.
type bcryptHashOf struct {
	plain string
}

func (m bcryptHashOf) Match(v driver.Value) bool {
	var hash []byte
	switch s := v.(type) {
	case string:
		hash = []byte(s)
	case []byte:
		hash = s
	default:
		return false
	}
	return bcrypt.CompareHashAndPassword(hash, []byte(m.plain)) == nil
}

// userRows builds a users result set with the standard columns
func userRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"username", "name", "password", "token"})
}

// contactRows builds a contacts result set with the standard columns
func contactRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "username", "first_name", "last_name", "email", "phone"})
}

// addressRows builds an addresses result set with the standard columns
func addressRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "contact_id", "street", "city", "province", "postal_code", "country"})
}

// mustHash generates a bcrypt hash for test fixtures
func mustHash(t *testing.T, plain string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	require.NoError(t, err)
	return string(hash)
}
