package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"course_qa_backend/internal/model"
	"course_qa_backend/internal/util"
)

func TestRoleRequestSubmit(t *testing.T) {
	db := setupTestDB(t)
	svc := newRoleRequestService(db)
	createUser(t, db, "stu", "student")

	ok, err := svc.Submit("stu")
	require.NoError(t, err)
	assert.True(t, ok)

	// 已有 PENDING 时重复提交被拒绝，且只有一条 PENDING 行
	ok, err = svc.Submit("stu")
	assert.ErrorIs(t, err, util.ErrConflict)
	assert.False(t, ok)

	var count int64
	require.NoError(t, db.Model(&model.RoleRequest{}).
		Where("student_id = ? AND status = ?", "stu", model.RoleRequestPending).
		Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRoleRequestSubmitUnknownStudent(t *testing.T) {
	db := setupTestDB(t)
	svc := newRoleRequestService(db)

	_, err := svc.Submit("ghost")
	assert.ErrorIs(t, err, util.ErrNotFound)
}

func TestRoleRequestApproveGrantsReviewer(t *testing.T) {
	db := setupTestDB(t)
	svc := newRoleRequestService(db)
	createUser(t, db, "stu", "student")
	createUser(t, db, "prof", "instructor")

	_, err := svc.Submit("stu")
	require.NoError(t, err)

	pending, err := svc.ListPending()
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "User stu", pending[0].StudentName)

	require.NoError(t, svc.Decide(pending[0].ID, "prof", true))

	req, err := svc.Status(pending[0].ID)
	require.NoError(t, err)
	assert.Equal(t, model.RoleRequestApproved, req.Status)
	assert.Equal(t, "prof", req.ReviewedBy)
	require.NotNil(t, req.ReviewedAt)

	var stu model.User
	require.NoError(t, db.Where("username = ?", "stu").First(&stu).Error)
	assert.True(t, stu.HasRole(model.RoleReviewer))
	assert.True(t, stu.HasRole(model.RoleStudent))
	assert.Equal(t, "student,reviewer", stu.Roles, "approval appends exactly one reviewer tag")
}

func TestRoleRequestDecideIsTerminal(t *testing.T) {
	db := setupTestDB(t)
	svc := newRoleRequestService(db)
	createUser(t, db, "stu", "student")

	_, err := svc.Submit("stu")
	require.NoError(t, err)
	pending, err := svc.ListPending()
	require.NoError(t, err)
	require.Len(t, pending, 1)
	id := pending[0].ID

	require.NoError(t, svc.Decide(id, "prof", true))

	// 再次审批（无论方向）都是 Conflict，状态保持 APPROVED
	assert.ErrorIs(t, svc.Decide(id, "prof", false), util.ErrConflict)
	assert.ErrorIs(t, svc.Decide(id, "prof", true), util.ErrConflict)

	req, err := svc.Status(id)
	require.NoError(t, err)
	assert.Equal(t, model.RoleRequestApproved, req.Status)

	var stu model.User
	require.NoError(t, db.Where("username = ?", "stu").First(&stu).Error)
	assert.Equal(t, "student,reviewer", stu.Roles)
}

func TestRoleRequestReject(t *testing.T) {
	db := setupTestDB(t)
	svc := newRoleRequestService(db)
	createUser(t, db, "stu", "student")

	_, err := svc.Submit("stu")
	require.NoError(t, err)
	pending, err := svc.ListPending()
	require.NoError(t, err)
	id := pending[0].ID

	require.NoError(t, svc.Decide(id, "prof", false))

	req, err := svc.Status(id)
	require.NoError(t, err)
	assert.Equal(t, model.RoleRequestRejected, req.Status)

	var stu model.User
	require.NoError(t, db.Where("username = ?", "stu").First(&stu).Error)
	assert.False(t, stu.HasRole(model.RoleReviewer))

	// 被拒后可以再次申请
	ok, err := svc.Submit("stu")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRoleRequestStatusUnknown(t *testing.T) {
	db := setupTestDB(t)
	svc := newRoleRequestService(db)

	_, err := svc.Status("no-such-id")
	assert.ErrorIs(t, err, util.ErrNotFound)
	assert.ErrorIs(t, svc.Decide("no-such-id", "prof", true), util.ErrNotFound)
}
