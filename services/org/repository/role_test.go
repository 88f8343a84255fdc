package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffloop/identity/internal/pkg/apperr"
	"github.com/staffloop/identity/internal/pkg/models"
)

func setupOrgRepo(t *testing.T) (*OrgRepo, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := NewOrgRepo(&models.Config{}, sqlx.NewDb(db, "pgx"))
	return repo, mock
}

func roleRows(ids ...string) *sqlmock.Rows {
	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "institute_id", "name", "parent_role_id", "created_at", "updated_at",
	})
	for _, id := range ids {
		rows.AddRow(id, "inst-1", id, nil, now, now)
	}
	return rows
}

func TestCreateRole(t *testing.T) {
	repo, mock := setupOrgRepo(t)

	mock.ExpectExec("INSERT INTO roles").
		WillReturnResult(sqlmock.NewResult(0, 1))

	now := time.Now()
	err := repo.CreateRole(context.Background(), &models.RoleNode{
		ID:          "role-1",
		InstituteID: "inst-1",
		Name:        "Principal",
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRole_NotFound(t *testing.T) {
	repo, mock := setupOrgRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM roles").
		WithArgs("ghost").
		WillReturnRows(roleRows())

	_, err := repo.GetRole(context.Background(), "ghost")
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))
}

func TestGetRolesByInstitute_InsertionOrder(t *testing.T) {
	repo, mock := setupOrgRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM roles").
		WithArgs("inst-1").
		WillReturnRows(roleRows("principal", "hod", "teacher"))

	roles, err := repo.GetRolesByInstitute(context.Background(), "inst-1")

	require.NoError(t, err)
	require.Len(t, roles, 3)
	assert.Equal(t, "principal", roles[0].ID)
	assert.Equal(t, "hod", roles[1].ID)
	assert.Equal(t, "teacher", roles[2].ID)
}

func TestUpdateParent_NotFound(t *testing.T) {
	repo, mock := setupOrgRepo(t)

	mock.ExpectExec("UPDATE roles").
		WillReturnResult(sqlmock.NewResult(0, 0))

	parent := "new-parent"
	err := repo.UpdateParent(context.Background(), "ghost", &parent)
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))
}

func TestDeleteRoles_ExpandsInClause(t *testing.T) {
	repo, mock := setupOrgRepo(t)

	mock.ExpectExec("DELETE FROM roles WHERE id IN").
		WithArgs("a", "b", "c").
		WillReturnResult(sqlmock.NewResult(0, 3))

	err := repo.DeleteRoles(context.Background(), []string{"a", "b", "c"})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteRoles_EmptyIsNoop(t *testing.T) {
	repo, mock := setupOrgRepo(t)

	err := repo.DeleteRoles(context.Background(), nil)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddGrant(t *testing.T) {
	repo, mock := setupOrgRepo(t)

	mock.ExpectExec("INSERT INTO role_grants").
		WithArgs("role-1", "users.view").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.AddGrant(context.Background(), "role-1", "users.view")
	assert.NoError(t, err)
}

func TestGetCapabilities(t *testing.T) {
	repo, mock := setupOrgRepo(t)

	rows := sqlmock.NewRows([]string{"capability"}).
		AddRow("users.view").
		AddRow("leave.approve")

	mock.ExpectQuery("SELECT DISTINCT capability").
		WithArgs("role-1", "role-2").
		WillReturnRows(rows)

	capabilities, err := repo.GetCapabilities(context.Background(), []string{"role-1", "role-2"})

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"users.view", "leave.approve"}, capabilities)
}

func TestGetCapabilities_EmptyInput(t *testing.T) {
	repo, mock := setupOrgRepo(t)

	capabilities, err := repo.GetCapabilities(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, capabilities)
	assert.NoError(t, mock.ExpectationsWereMet())
}
