package session

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/yungbote/chirp-backend/internal/data/repos/testutil"
	"github.com/yungbote/chirp-backend/internal/domain"
	"github.com/yungbote/chirp-backend/internal/pkg/dbctx"
)

func TestInteractionTurnSeqAndOrdering(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	dbc := dbctx.Context{Ctx: context.Background(), Tx: tx}
	repo := NewInteractionTurnRepo(db, testutil.Logger(t))

	sessionID := uuid.New()

	seq, err := repo.NextSeq(dbc, sessionID)
	if err != nil {
		t.Fatalf("NextSeq: %v", err)
	}
	if seq != 1 {
		t.Fatalf("first seq: got=%d want=1", seq)
	}

	now := time.Now().UTC()
	rows := []*domain.InteractionTurn{
		{SessionID: sessionID, Seq: seq, Speaker: "guide", Content: "hello", SpokenAt: now, Analysis: datatypes.JSON([]byte("[]"))},
		{SessionID: sessionID, Seq: seq + 1, Speaker: "child", Content: "hi", SpokenAt: now, Analysis: datatypes.JSON([]byte("[]"))},
	}
	if err := repo.CreateMany(dbc, rows); err != nil {
		t.Fatalf("CreateMany: %v", err)
	}

	seq, err = repo.NextSeq(dbc, sessionID)
	if err != nil {
		t.Fatalf("NextSeq: %v", err)
	}
	if seq != 3 {
		t.Fatalf("next seq after two rows: got=%d want=3", seq)
	}

	listed, err := repo.ListBySession(dbc, sessionID)
	if err != nil {
		t.Fatalf("ListBySession: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("listed rows: got=%d want=2", len(listed))
	}
	if listed[0].Seq != 1 || listed[1].Seq != 2 {
		t.Fatalf("rows should order by seq: %d, %d", listed[0].Seq, listed[1].Seq)
	}

	n, err := repo.CountBySession(dbc, sessionID)
	if err != nil {
		t.Fatalf("CountBySession: %v", err)
	}
	if n != 2 {
		t.Fatalf("count: got=%d want=2", n)
	}
}

func TestInteractionTurnCreateManyEmpty(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	dbc := dbctx.Context{Ctx: context.Background(), Tx: tx}
	repo := NewInteractionTurnRepo(db, testutil.Logger(t))

	if err := repo.CreateMany(dbc, nil); err != nil {
		t.Fatalf("empty CreateMany should be a no-op, got %v", err)
	}
}
