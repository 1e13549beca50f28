package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"course_qa_backend/internal/model"
	"course_qa_backend/internal/util"
)

func TestAdminRequestLifecycle(t *testing.T) {
	db := setupTestDB(t)
	svc := newAdminRequestService(db)

	id, err := svc.Create("prof", "projector is broken")
	require.NoError(t, err)

	req, err := svc.Get(id)
	require.NoError(t, err)
	assert.Equal(t, model.AdminRequestOpen, req.Status)
	assert.Nil(t, req.ClosedAt)

	require.NoError(t, svc.Close(id, "admin"))
	req, err = svc.Get(id)
	require.NoError(t, err)
	assert.Equal(t, model.AdminRequestClosed, req.Status)
	assert.Equal(t, "admin", req.ClosedBy)
	require.NotNil(t, req.ClosedAt)

	// 重复关闭是 Conflict
	assert.ErrorIs(t, svc.Close(id, "admin"), util.ErrConflict)
}

func TestAdminRequestReopenCreatesNewRow(t *testing.T) {
	db := setupTestDB(t)
	svc := newAdminRequestService(db)

	origID, err := svc.Create("prof", "wifi flaky in lab 2")
	require.NoError(t, err)
	require.NoError(t, svc.Close(origID, "admin"))

	newID, err := svc.Reopen(origID, "wifi still flaky after router swap")
	require.NoError(t, err)
	require.NotEqual(t, origID, newID)

	// 原请求保持 CLOSED 不被改动
	orig, err := svc.Get(origID)
	require.NoError(t, err)
	assert.Equal(t, model.AdminRequestClosed, orig.Status)
	assert.Equal(t, "admin", orig.ClosedBy)

	reopened, err := svc.Get(newID)
	require.NoError(t, err)
	assert.Equal(t, model.AdminRequestReopened, reopened.Status)
	assert.Equal(t, "prof", reopened.InstructorID, "reopen copies the original instructor")
	assert.Equal(t, "wifi still flaky after router swap", reopened.Description)
	require.NotNil(t, reopened.OriginalRequestID)
	assert.Equal(t, origID, *reopened.OriginalRequestID)
}

func TestAdminRequestReopenPreconditions(t *testing.T) {
	db := setupTestDB(t)
	svc := newAdminRequestService(db)

	_, err := svc.Reopen(404, "nothing there")
	assert.ErrorIs(t, err, util.ErrNotFound)

	id, err := svc.Create("prof", "still open")
	require.NoError(t, err)
	_, err = svc.Reopen(id, "cannot reopen an open request")
	assert.ErrorIs(t, err, util.ErrConflict)

	assert.ErrorIs(t, svc.Close(404, "admin"), util.ErrNotFound)
}

func TestAdminRequestLineage(t *testing.T) {
	db := setupTestDB(t)
	svc := newAdminRequestService(db)

	first, err := svc.Create("prof", "gen 1")
	require.NoError(t, err)
	require.NoError(t, svc.Close(first, "admin"))
	second, err := svc.Reopen(first, "gen 2")
	require.NoError(t, err)
	require.NoError(t, svc.Close(second, "admin"))
	third, err := svc.Reopen(second, "gen 3")
	require.NoError(t, err)

	chain, err := svc.Lineage(third)
	require.NoError(t, err)
	require.Len(t, chain, 3)
	assert.Equal(t, third, chain[0].ID)
	assert.Equal(t, second, chain[1].ID)
	assert.Equal(t, first, chain[2].ID)
}
