package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"course_qa_backend/internal/util"
)

func TestTrustScoreFormula(t *testing.T) {
	// 快速响应：0.4*5 + 0.3*1 + 0.3*1.0 = 2.6
	assert.InDelta(t, 2.6, TrustScore(5, 1, 10), 1e-9)

	// 慢速响应：0.4*3 + 0.3*0.5 + 0.3*(48/96) = 1.5
	assert.InDelta(t, 1.5, TrustScore(3, 0.5, 96), 1e-9)

	// 48 小时响应：因子 48/48 = 1.0
	assert.InDelta(t, 2.5, TrustScore(4, 2, 48), 1e-9)

	// 24 小时边界属于慢速分支
	assert.InDelta(t, 0.3*2.0, TrustScore(0, 0, 24), 1e-9)
}

func TestScorecardUpsertAndRecompute(t *testing.T) {
	db := setupTestDB(t)
	svc := newScorecardService(db)

	card, err := svc.Upsert("rob", ScorecardRequest{
		ReviewCount:       12,
		AverageRating:     4.0,
		HelpfulnessScore:  2.0,
		ResponseTimeHours: 10,
	})
	require.NoError(t, err)
	assert.InDelta(t, 2.5, card.TrustScore, 1e-9)

	// 同键再次写入是整体替换并重算
	card, err = svc.Upsert("rob", ScorecardRequest{
		ReviewCount:       20,
		AverageRating:     3.0,
		HelpfulnessScore:  1.0,
		ResponseTimeHours: 96,
	})
	require.NoError(t, err)
	assert.Equal(t, 20, card.ReviewCount)
	assert.InDelta(t, 0.4*3.0+0.3*1.0+0.3*0.5, card.TrustScore, 1e-9)

	got, err := svc.Get("rob")
	require.NoError(t, err)
	assert.Equal(t, 20, got.ReviewCount)
}

func TestScorecardGetMissing(t *testing.T) {
	db := setupTestDB(t)
	svc := newScorecardService(db)

	_, err := svc.Get("nobody")
	assert.ErrorIs(t, err, util.ErrNotFound)
}

func TestScorecardListOrderedByTrustScore(t *testing.T) {
	db := setupTestDB(t)
	svc := newScorecardService(db)

	_, err := svc.Upsert("low", ScorecardRequest{AverageRating: 1, HelpfulnessScore: 1, ResponseTimeHours: 96})
	require.NoError(t, err)
	_, err = svc.Upsert("high", ScorecardRequest{AverageRating: 5, HelpfulnessScore: 5, ResponseTimeHours: 1})
	require.NoError(t, err)

	cards, err := svc.ListAll()
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, "high", cards[0].ReviewerID)
	assert.Equal(t, "low", cards[1].ReviewerID)
}
