package service

import (
	"net/http"
	"testing"

	"contact_book/internal/apperr"
	"contact_book/internal/domain"
	"contact_book/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateContactInjectsOwner(t *testing.T) {
	db, mock := newTestDB(t)
	contacts := NewContactService(db)
	user := &domain.User{Username: "alice"}

	mock.ExpectBegin()
	// The owner column comes from the authenticated user, never the payload
	mock.ExpectExec("INSERT INTO `contacts`").
		WithArgs("alice", "Budi", nil, nil, nil).
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectCommit()

	response, err := contacts.Create(user, &model.CreateContactRequest{FirstName: "Budi"})
	require.NoError(t, err)
	assert.Equal(t, uint(7), response.ID)
	assert.Equal(t, "Budi", response.FirstName)
	assert.Nil(t, response.Email)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMustExistScopesByOwner(t *testing.T) {
	db, mock := newTestDB(t)
	contacts := NewContactService(db)

	// The lookup is a compound (id, username) filter, so a contact owned
	// by another user produces zero rows
	mock.ExpectQuery("SELECT \\* FROM `contacts` WHERE id = \\? AND username = \\?").
		WillReturnRows(contactRows())

	_, err := contacts.MustExist("mallory", 7)
	var respErr *apperr.ResponseError
	require.ErrorAs(t, err, &respErr)
	assert.Equal(t, http.StatusNotFound, respErr.Status)
	assert.Equal(t, "Contact not found", respErr.Message)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetReturnsOwnedContact(t *testing.T) {
	db, mock := newTestDB(t)
	contacts := NewContactService(db)
	user := &domain.User{Username: "alice"}

	mock.ExpectQuery("SELECT \\* FROM `contacts` WHERE id = \\? AND username = \\?").
		WillReturnRows(contactRows().AddRow(7, "alice", "Budi", "Santoso", "budi@example.com", "0812"))

	response, err := contacts.Get(user, 7)
	require.NoError(t, err)
	assert.Equal(t, uint(7), response.ID)
	assert.Equal(t, "Budi", response.FirstName)
	require.NotNil(t, response.Email)
	assert.Equal(t, "budi@example.com", *response.Email)
}

func TestUpdateRequiresOwnershipFirst(t *testing.T) {
	db, mock := newTestDB(t)
	contacts := NewContactService(db)
	user := &domain.User{Username: "alice"}

	mock.ExpectQuery("SELECT \\* FROM `contacts` WHERE id = \\? AND username = \\?").
		WillReturnRows(contactRows())

	// No UPDATE expectation: the write must never happen when the gate fails
	_, err := contacts.Update(user, 7, &model.UpdateContactRequest{FirstName: "Budi"})
	var respErr *apperr.ResponseError
	require.ErrorAs(t, err, &respErr)
	assert.Equal(t, http.StatusNotFound, respErr.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateWritesSuppliedFieldsScoped(t *testing.T) {
	db, mock := newTestDB(t)
	contacts := NewContactService(db)
	user := &domain.User{Username: "alice"}

	mock.ExpectQuery("SELECT \\* FROM `contacts` WHERE id = \\? AND username = \\?").
		WillReturnRows(contactRows().AddRow(7, "alice", "Budi", nil, nil, nil))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `contacts` SET .+ WHERE id = \\? AND username = \\?").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	email := "budi@example.com"
	response, err := contacts.Update(user, 7, &model.UpdateContactRequest{FirstName: "Budi", Email: &email})
	require.NoError(t, err)
	require.NotNil(t, response.Email)
	assert.Equal(t, "budi@example.com", *response.Email)
	// Fields absent from the request stay untouched in the view
	assert.Nil(t, response.LastName)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoveDeletesScopedByOwner(t *testing.T) {
	db, mock := newTestDB(t)
	contacts := NewContactService(db)
	user := &domain.User{Username: "alice"}

	mock.ExpectQuery("SELECT \\* FROM `contacts` WHERE id = \\? AND username = \\?").
		WillReturnRows(contactRows().AddRow(7, "alice", "Budi", nil, nil, nil))
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `contacts` WHERE id = \\? AND username = \\?").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, contacts.Remove(user, 7))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchWithoutFiltersReturnsOwnPage(t *testing.T) {
	db, mock := newTestDB(t)
	contacts := NewContactService(db)
	user := &domain.User{Username: "alice"}

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `contacts` WHERE username = ").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(25))
	mock.ExpectQuery("SELECT \\* FROM `contacts` WHERE username = \\? LIMIT").
		WillReturnRows(contactRows().
			AddRow(11, "alice", "Budi", nil, nil, nil).
			AddRow(12, "alice", "Citra", nil, nil, nil))

	page, err := contacts.Search(user, &model.SearchContactRequest{Page: 2, Size: 10})
	require.NoError(t, err)
	assert.Len(t, page.Data, 2)
	assert.Equal(t, 2, page.Paging.CurrentPage)
	assert.Equal(t, 10, page.Paging.Size)
	// total_page = ceil(25 / 10)
	assert.Equal(t, 3, page.Paging.TotalPage)
}

func TestSearchComposesConjunctiveFilters(t *testing.T) {
	db, mock := newTestDB(t)
	contacts := NewContactService(db)
	user := &domain.User{Username: "alice"}

	// The name filter matches either name column; email is ANDed on top,
	// both always scoped to the owner
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `contacts` WHERE username = \\? AND \\(first_name LIKE \\? OR last_name LIKE \\?\\) AND email LIKE \\?").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))
	mock.ExpectQuery("SELECT \\* FROM `contacts` WHERE username = \\? AND \\(first_name LIKE \\? OR last_name LIKE \\?\\) AND email LIKE \\?").
		WillReturnRows(contactRows().AddRow(11, "alice", "Budi", nil, "budi@example.com", nil))

	page, err := contacts.Search(user, &model.SearchContactRequest{Name: "udi", Email: "example", Page: 1, Size: 10})
	require.NoError(t, err)
	assert.Len(t, page.Data, 1)
	assert.Equal(t, 1, page.Paging.TotalPage)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchEmptyResult(t *testing.T) {
	db, mock := newTestDB(t)
	contacts := NewContactService(db)
	user := &domain.User{Username: "alice"}

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `contacts` WHERE username = ").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))
	mock.ExpectQuery("SELECT \\* FROM `contacts` WHERE username = \\? LIMIT").
		WillReturnRows(contactRows())

	page, err := contacts.Search(user, &model.SearchContactRequest{Page: 1, Size: 10})
	require.NoError(t, err)
	assert.NotNil(t, page.Data) // data must serialize as [], not null
	assert.Empty(t, page.Data)
	assert.Equal(t, 0, page.Paging.TotalPage)
}
