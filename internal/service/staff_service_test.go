package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"course_qa_backend/internal/model"
	"course_qa_backend/internal/util"
)

func TestStaffDiscussions(t *testing.T) {
	db := setupTestDB(t)
	svc := newStaffService(db)
	createUser(t, db, "staff1", "staff")

	id, err := svc.PostDiscussion("staff1", DiscussionRequest{Title: "grading sync", Content: "week 3 rubric"})
	require.NoError(t, err)
	require.NotZero(t, id)

	list, err := svc.ListDiscussions()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "staff1", list[0].StaffID)
}

func TestEscalationLifecycle(t *testing.T) {
	db := setupTestDB(t)
	svc := newStaffService(db)
	createUser(t, db, "staff1", "staff")

	id, err := svc.CreateEscalation("staff1", EscalationRequest{
		StudentID:   "alice",
		IssueType:   "plagiarism",
		Description: "two identical submissions",
	})
	require.NoError(t, err)

	open, err := svc.ListOpenEscalations()
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, model.EscalationOpen, open[0].Status)
	assert.Equal(t, "MEDIUM", open[0].Priority)

	require.NoError(t, svc.UpdateEscalationStatus(id, model.EscalationInProgress, ""))
	open, err = svc.ListOpenEscalations()
	require.NoError(t, err)
	require.Len(t, open, 1)

	require.NoError(t, svc.UpdateEscalationStatus(id, model.EscalationResolved, "prof"))
	open, err = svc.ListOpenEscalations()
	require.NoError(t, err)
	assert.Empty(t, open, "resolved escalations drop out of the open list")

	assert.ErrorIs(t, svc.UpdateEscalationStatus(999, model.EscalationResolved, "prof"), util.ErrNotFound)
}

func TestModerationHistory(t *testing.T) {
	db := setupTestDB(t)
	svc := newStaffService(db)
	qsvc := newQuestionService(db)
	createUser(t, db, "alice", "student")
	createUser(t, db, "staff1", "staff")

	qid, err := qsvc.Ask("alice", "q", "t")
	require.NoError(t, err)

	require.NoError(t, svc.RecordModeration("staff1", ModerationRequest{
		ContentType: "QUESTION",
		ContentID:   qid,
		Action:      "FLAG",
		Reason:      "off topic",
	}))
	require.NoError(t, svc.RecordModeration("staff1", ModerationRequest{
		ContentType: "QUESTION",
		ContentID:   qid,
		Action:      "UNFLAG",
		Reason:      "resolved after edit",
	}))

	history, err := svc.ModerationHistory("QUESTION", qid)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "FLAG", history[0].Action)
	assert.Equal(t, "UNFLAG", history[1].Action)
}

func TestContentDashboard(t *testing.T) {
	db := setupTestDB(t)
	svc := newStaffService(db)
	qsvc := newQuestionService(db)
	createUser(t, db, "alice", "student")
	createUser(t, db, "bob", "student")

	qid, err := qsvc.Ask("alice", "dashboard q", "body")
	require.NoError(t, err)
	_, err = qsvc.Answer(qid, "bob", "dashboard a")
	require.NoError(t, err)

	rows, err := svc.AllContent()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	mine, err := svc.StudentContentHistory("bob")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "ANSWER", mine[0].ContentType)

	_, err = svc.StudentContentHistory("ghost")
	assert.ErrorIs(t, err, util.ErrNotFound)
}

func TestStudentActivityMetrics(t *testing.T) {
	db := setupTestDB(t)
	svc := newStaffService(db)
	qsvc := newQuestionService(db)
	createUser(t, db, "alice", "student")
	createUser(t, db, "bob", "student")

	q1, err := qsvc.Ask("alice", "q1", "t")
	require.NoError(t, err)
	_, err = qsvc.Ask("alice", "q2", "t")
	require.NoError(t, err)
	_, err = qsvc.Answer(q1, "bob", "a")
	require.NoError(t, err)

	rows, err := svc.StudentActivityMetrics()
	require.NoError(t, err)
	byUser := map[string][2]int64{}
	for _, r := range rows {
		byUser[r.Username] = [2]int64{r.QuestionCount, r.AnswerCount}
	}
	assert.Equal(t, [2]int64{2, 0}, byUser["alice"])
	assert.Equal(t, [2]int64{0, 1}, byUser["bob"])
}
