package session

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/chirp-backend/internal/data/repos/testutil"
	"github.com/yungbote/chirp-backend/internal/domain"
	"github.com/yungbote/chirp-backend/internal/pkg/dbctx"
)

func TestAdaptationEventListOrderedByOccurrence(t *testing.T) {
	db := testutil.DB(t)
	log := testutil.Logger(t)
	tx := testutil.Tx(t, db)
	dbc := dbctx.Context{Ctx: context.Background(), Tx: tx}
	repo := NewAdaptationEventRepo(db, log)

	sessionID := uuid.New()
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	// Inserted out of order; listing must sort by occurrence time.
	rows := []*domain.AdaptationEvent{
		{SessionID: sessionID, Trigger: "distraction", Effect: "re-engaged", OccurredAt: base.Add(2 * time.Minute)},
		{SessionID: sessionID, Trigger: "frustration", Effect: "slowed pace", OccurredAt: base},
		{SessionID: sessionID, Trigger: "fatigue", Effect: "shortened round", OccurredAt: base.Add(time.Minute)},
	}
	if err := repo.CreateMany(dbc, rows); err != nil {
		t.Fatalf("create many: %v", err)
	}

	got, err := repo.ListBySession(dbc, sessionID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len: got=%d want=3", len(got))
	}
	for i, trigger := range []string{"frustration", "fatigue", "distraction"} {
		if got[i].Trigger != trigger {
			t.Fatalf("order[%d]: got=%s want=%s", i, got[i].Trigger, trigger)
		}
	}
	for _, row := range got {
		if row.ID == uuid.Nil || row.CreatedAt.IsZero() {
			t.Fatalf("row not stamped: %+v", row)
		}
	}
}

func TestAdaptationEventEmptyInputs(t *testing.T) {
	db := testutil.DB(t)
	log := testutil.Logger(t)
	tx := testutil.Tx(t, db)
	dbc := dbctx.Context{Ctx: context.Background(), Tx: tx}
	repo := NewAdaptationEventRepo(db, log)

	if err := repo.CreateMany(dbc, nil); err != nil {
		t.Fatalf("empty create: %v", err)
	}
	got, err := repo.ListBySession(dbc, uuid.Nil)
	if err != nil {
		t.Fatalf("nil session list: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("nil session list should be empty: %d", len(got))
	}
}
