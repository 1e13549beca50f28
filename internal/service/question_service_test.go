package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"course_qa_backend/internal/util"
)

func TestAskAndGet(t *testing.T) {
	db := setupTestDB(t)
	svc := newQuestionService(db)
	createUser(t, db, "alice", "student")

	id, err := svc.Ask("alice", "指针怎么用", "请解释一下指针和地址")
	require.NoError(t, err)
	require.NotZero(t, id)

	q, err := svc.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "alice", q.Username)
	assert.Equal(t, "指针怎么用", q.Title)
	assert.False(t, q.Resolved)
	assert.Nil(t, q.ParentID)
	assert.Nil(t, q.Clarification)
}

func TestGetNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := newQuestionService(db)

	_, err := svc.Get(9999)
	assert.ErrorIs(t, err, util.ErrNotFound)
}

func TestClarifyRequiresParent(t *testing.T) {
	db := setupTestDB(t)
	svc := newQuestionService(db)

	_, err := svc.Clarify(42, "alice", "补充", "父问题不存在")
	assert.ErrorIs(t, err, util.ErrNotFound)
}

func TestClarificationChainFollowsLowestID(t *testing.T) {
	db := setupTestDB(t)
	svc := newQuestionService(db)
	createUser(t, db, "alice", "student")
	createUser(t, db, "bob", "student")

	rootID, err := svc.Ask("alice", "root", "root text")
	require.NoError(t, err)

	first, err := svc.Clarify(rootID, "bob", "first clarification", "more detail please")
	require.NoError(t, err)
	second, err := svc.Clarify(rootID, "bob", "second clarification", "even more detail")
	require.NoError(t, err)
	require.Greater(t, second, first)

	// 嵌套一层：第一条澄清自己也有澄清
	nested, err := svc.Clarify(first, "alice", "nested", "chain continues")
	require.NoError(t, err)

	q, err := svc.Get(rootID)
	require.NoError(t, err)
	require.NotNil(t, q.Clarification)
	assert.Equal(t, first, q.Clarification.ID, "traversal must surface the lowest-id child")
	require.NotNil(t, q.Clarification.Clarification)
	assert.Equal(t, nested, q.Clarification.Clarification.ID)

	// 完整邻接列表包含两条澄清
	children, err := svc.ListClarifications(rootID)
	require.NoError(t, err)
	require.Len(t, children, 2)
	assert.Equal(t, first, children[0].ID)
	assert.Equal(t, second, children[1].ID)
}

func TestGetLoadsAnswersWithReviews(t *testing.T) {
	db := setupTestDB(t)
	svc := newQuestionService(db)
	reviews := newReviewService(db)
	createUser(t, db, "alice", "student")
	createUser(t, db, "rob", "student,reviewer")

	qid, err := svc.Ask("alice", "q", "text")
	require.NoError(t, err)
	aid, err := svc.Answer(qid, "rob", "an answer")
	require.NoError(t, err)

	_, err = reviews.ReviewAnswer(aid, "rob", "clear and correct")
	require.NoError(t, err)
	_, err = reviews.ReviewQuestion(qid, "rob", "well posed")
	require.NoError(t, err)

	q, err := svc.Get(qid)
	require.NoError(t, err)
	require.Len(t, q.Answers, 1)
	require.Len(t, q.Answers[0].Reviews, 1)
	assert.Equal(t, "clear and correct", q.Answers[0].Reviews[0].Text)
	require.Len(t, q.Reviews, 1)
	assert.Equal(t, "well posed", q.Reviews[0].Text)
}

func TestAnswerRequiresQuestion(t *testing.T) {
	db := setupTestDB(t)
	svc := newQuestionService(db)

	_, err := svc.Answer(123, "bob", "answering nothing")
	assert.ErrorIs(t, err, util.ErrNotFound)
}

func TestListRoots(t *testing.T) {
	db := setupTestDB(t)
	svc := newQuestionService(db)
	createUser(t, db, "alice", "student")

	q1, err := svc.Ask("alice", "q1", "t1")
	require.NoError(t, err)
	q2, err := svc.Ask("alice", "q2", "t2")
	require.NoError(t, err)
	_, err = svc.Clarify(q1, "alice", "c", "clarifications are not roots")
	require.NoError(t, err)
	_, err = svc.Answer(q2, "alice", "a")
	require.NoError(t, err)

	roots, err := svc.ListRoots()
	require.NoError(t, err)
	require.Len(t, roots, 2)
	assert.Equal(t, q1, roots[0].ID)
	assert.Equal(t, q2, roots[1].ID)
	assert.Len(t, roots[1].Answers, 1)
	require.NotNil(t, roots[0].Clarification)
}

func TestUpdateQuestion(t *testing.T) {
	db := setupTestDB(t)
	svc := newQuestionService(db)
	createUser(t, db, "alice", "student")

	id, err := svc.Ask("alice", "old title", "old text")
	require.NoError(t, err)

	ok, err := svc.Update(id, "new title", "new text")
	require.NoError(t, err)
	assert.True(t, ok)

	q, err := svc.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "new title", q.Title)
	assert.Equal(t, "new text", q.Text)

	ok, err = svc.Update(999, "x", "y")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestResolutionFlagsAreIndependent(t *testing.T) {
	db := setupTestDB(t)
	svc := newQuestionService(db)
	createUser(t, db, "alice", "student")

	qid, err := svc.Ask("alice", "q", "t")
	require.NoError(t, err)
	a1, err := svc.Answer(qid, "alice", "answer one")
	require.NoError(t, err)
	a2, err := svc.Answer(qid, "alice", "answer two")
	require.NoError(t, err)

	// 两条答案可以同时标记 resolves
	require.NoError(t, svc.SetAnswerResolves(a1, true))
	require.NoError(t, svc.SetAnswerResolves(a2, true))

	q, err := svc.Get(qid)
	require.NoError(t, err)
	assert.True(t, q.Answers[0].Resolves)
	assert.True(t, q.Answers[1].Resolves)
	assert.False(t, q.Resolved, "answer resolves must not auto-resolve the question")

	// 问题状态完全可逆
	require.NoError(t, svc.SetResolved(qid, true))
	q, err = svc.Get(qid)
	require.NoError(t, err)
	assert.True(t, q.Resolved)

	require.NoError(t, svc.SetResolved(qid, false))
	q, err = svc.Get(qid)
	require.NoError(t, err)
	assert.False(t, q.Resolved)

	require.NoError(t, svc.SetAnswerResolves(a1, false))
	q, err = svc.Get(qid)
	require.NoError(t, err)
	assert.False(t, q.Answers[0].Resolves)
	assert.True(t, q.Answers[1].Resolves)

	assert.ErrorIs(t, svc.SetResolved(777, true), util.ErrNotFound)
	assert.ErrorIs(t, svc.SetAnswerResolves(777, true), util.ErrNotFound)
}
