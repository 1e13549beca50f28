package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"course_qa_backend/internal/model"
	"course_qa_backend/internal/util"
)

func TestReviewTargetExclusivity(t *testing.T) {
	db := setupTestDB(t)
	qsvc := newQuestionService(db)
	rsvc := newReviewService(db)
	createUser(t, db, "alice", "student")
	createUser(t, db, "rob", "reviewer")

	qid, err := qsvc.Ask("alice", "q", "t")
	require.NoError(t, err)
	aid, err := qsvc.Answer(qid, "alice", "a")
	require.NoError(t, err)

	// 两个目标都填
	err = rsvc.Create(&model.Review{
		Text:       "both targets",
		Reviewer:   "rob",
		QuestionID: &qid,
		AnswerID:   &aid,
	})
	assert.ErrorIs(t, err, util.ErrValidation)

	// 两个目标都不填
	err = rsvc.Create(&model.Review{Text: "no target", Reviewer: "rob"})
	assert.ErrorIs(t, err, util.ErrValidation)

	// 恰好一个目标
	id, err := rsvc.ReviewQuestion(qid, "rob", "valid")
	require.NoError(t, err)
	assert.NotZero(t, id)
}

func TestReviewMissingTarget(t *testing.T) {
	db := setupTestDB(t)
	rsvc := newReviewService(db)

	_, err := rsvc.ReviewQuestion(404, "rob", "text")
	assert.ErrorIs(t, err, util.ErrNotFound)

	_, err = rsvc.ReviewAnswer(404, "rob", "text")
	assert.ErrorIs(t, err, util.ErrNotFound)
}

func TestReviewListsOrderedByID(t *testing.T) {
	db := setupTestDB(t)
	qsvc := newQuestionService(db)
	rsvc := newReviewService(db)
	createUser(t, db, "alice", "student")
	createUser(t, db, "rob", "reviewer")
	createUser(t, db, "sam", "reviewer")

	qid, err := qsvc.Ask("alice", "q", "t")
	require.NoError(t, err)

	r1, err := rsvc.ReviewQuestion(qid, "sam", "first pass")
	require.NoError(t, err)
	r2, err := rsvc.ReviewQuestion(qid, "rob", "second pass")
	require.NoError(t, err)

	list, err := rsvc.ListForQuestion(qid)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, r1, list[0].ID)
	assert.Equal(t, r2, list[1].ID)

	byRob, err := rsvc.ListByReviewer("rob")
	require.NoError(t, err)
	require.Len(t, byRob, 1)
	assert.Equal(t, r2, byRob[0].ID)
}

func TestReviewUpdateAndDelete(t *testing.T) {
	db := setupTestDB(t)
	qsvc := newQuestionService(db)
	rsvc := newReviewService(db)
	createUser(t, db, "alice", "student")
	createUser(t, db, "rob", "reviewer")

	qid, err := qsvc.Ask("alice", "q", "t")
	require.NoError(t, err)
	rid, err := rsvc.ReviewQuestion(qid, "rob", "draft")
	require.NoError(t, err)

	require.NoError(t, rsvc.Update(rid, "final"))
	list, err := rsvc.ListForQuestion(qid)
	require.NoError(t, err)
	assert.Equal(t, "final", list[0].Text)

	require.NoError(t, rsvc.Delete(rid))
	list, err = rsvc.ListForQuestion(qid)
	require.NoError(t, err)
	assert.Empty(t, list)

	assert.ErrorIs(t, rsvc.Update(rid, "gone"), util.ErrNotFound)
	assert.ErrorIs(t, rsvc.Delete(rid), util.ErrNotFound)
}
