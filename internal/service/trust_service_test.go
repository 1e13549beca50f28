package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"course_qa_backend/internal/model"
	"course_qa_backend/internal/util"
)

func TestTrustUpsertKeepsSingleEdge(t *testing.T) {
	db := setupTestDB(t)
	svc := newTrustService(db)
	createUser(t, db, "alice", "student")
	createUser(t, db, "rob", "student,reviewer")

	require.NoError(t, svc.Upsert("alice", "rob", 5))
	require.NoError(t, svc.Upsert("alice", "rob", 8))

	var count int64
	require.NoError(t, db.Model(&model.TrustedReviewer{}).
		Where("username = ? AND trusted_username = ?", "alice", "rob").
		Count(&count).Error)
	assert.EqualValues(t, 1, count, "repeated upsert must not duplicate the edge")

	w, err := svc.WeightOf("alice", "rob")
	require.NoError(t, err)
	assert.Equal(t, 8, w)
}

func TestTrustUpsertSameWeightIsNoop(t *testing.T) {
	db := setupTestDB(t)
	svc := newTrustService(db)
	createUser(t, db, "alice", "student")
	createUser(t, db, "rob", "reviewer")

	require.NoError(t, svc.Upsert("alice", "rob", 5))
	// 权重不变的重复 upsert 也只保留一条边
	require.NoError(t, svc.Upsert("alice", "rob", 5))

	var count int64
	require.NoError(t, db.Model(&model.TrustedReviewer{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestTrustWeightValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := newTrustService(db)
	createUser(t, db, "alice", "student")
	createUser(t, db, "rob", "reviewer")

	assert.ErrorIs(t, svc.Upsert("alice", "rob", 11), util.ErrValidation)
	assert.ErrorIs(t, svc.Upsert("alice", "rob", -1), util.ErrValidation)

	// 0 视为未指定，落库为默认权重
	require.NoError(t, svc.Upsert("alice", "rob", 0))
	w, err := svc.WeightOf("alice", "rob")
	require.NoError(t, err)
	assert.Equal(t, model.DefaultTrustWeight, w)
}

func TestTrustUpsertUnknownUsers(t *testing.T) {
	db := setupTestDB(t)
	svc := newTrustService(db)
	createUser(t, db, "alice", "student")

	assert.ErrorIs(t, svc.Upsert("alice", "ghost", 5), util.ErrNotFound)
	assert.ErrorIs(t, svc.Upsert("ghost", "alice", 5), util.ErrNotFound)
}

func TestTrustRemove(t *testing.T) {
	db := setupTestDB(t)
	svc := newTrustService(db)
	createUser(t, db, "alice", "student")
	createUser(t, db, "rob", "reviewer")

	require.NoError(t, svc.Upsert("alice", "rob", 5))
	require.NoError(t, svc.Remove("alice", "rob"))
	assert.ErrorIs(t, svc.Remove("alice", "rob"), util.ErrNotFound)

	_, err := svc.WeightOf("alice", "rob")
	assert.ErrorIs(t, err, util.ErrNotFound)
}

func TestTrustListOrdering(t *testing.T) {
	db := setupTestDB(t)
	svc := newTrustService(db)
	createUser(t, db, "alice", "student")
	createUser(t, db, "bob", "reviewer")
	createUser(t, db, "carol", "reviewer")
	createUser(t, db, "dave", "reviewer")

	require.NoError(t, svc.Upsert("alice", "carol", 7))
	require.NoError(t, svc.Upsert("alice", "bob", 7))
	require.NoError(t, svc.Upsert("alice", "dave", 9))

	edges, err := svc.List("alice")
	require.NoError(t, err)
	require.Len(t, edges, 3)
	// 权重降序，同权重按用户名升序
	assert.Equal(t, "dave", edges[0].TrustedUsername)
	assert.Equal(t, "bob", edges[1].TrustedUsername)
	assert.Equal(t, "carol", edges[2].TrustedUsername)
}

func TestTrustListEffectiveFiltersNonReviewers(t *testing.T) {
	db := setupTestDB(t)
	svc := newTrustService(db)
	createUser(t, db, "alice", "student")
	createUser(t, db, "rob", "student,reviewer")
	createUser(t, db, "nora", "student")

	require.NoError(t, svc.Upsert("alice", "rob", 6))
	require.NoError(t, svc.Upsert("alice", "nora", 9))

	effective, err := svc.ListEffective("alice")
	require.NoError(t, err)
	require.Len(t, effective, 1, "edges to non-reviewers stay stored but are filtered")
	assert.Equal(t, "rob", effective[0].Username)
	assert.Empty(t, effective[0].Password)

	// 底层边没有被删除
	edges, err := svc.List("alice")
	require.NoError(t, err)
	assert.Len(t, edges, 2)
}
