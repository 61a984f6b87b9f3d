package services

import (
	"context"
	"strings"
	"testing"

	"fintrack/internal/testutil"
)

func TestCreateCard(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCardService(db)
		userID := testutil.NewUserID()

		card, err := svc.CreateCard(ctx, userID, "  Everyday  ", "4242", 100000)
		testutil.AssertNoError(t, err)
		if card.ID == "" {
			t.Fatal("expected generated ID")
		}
		if card.Name != "Everyday" {
			t.Errorf("expected trimmed name, got %q", card.Name)
		}
		testutil.AssertCardBalance(t, db, card.ID, 100000)
	})

	t.Run("firebase_uid_owner", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCardService(db)
		const uid = "kY2eZpX1abcdEFGH1234567890ab"

		card, err := svc.CreateCard(ctx, uid, "Everyday", "4242", 100)
		testutil.AssertNoError(t, err)
		if card.UserID != uid {
			t.Errorf("expected owner %q, got %q", uid, card.UserID)
		}

		got, err := svc.GetCardByID(ctx, uid, card.ID)
		testutil.AssertNoError(t, err)
		if got.Balance != 100 {
			t.Errorf("expected balance 100, got %d", got.Balance)
		}
	})

	t.Run("validation", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCardService(db)
		userID := testutil.NewUserID()

		tests := []struct {
			name     string
			owner    string
			cardName string
			lastFour string
		}{
			{name: "empty_name", owner: userID, cardName: " ", lastFour: "4242"},
			{name: "empty_owner", owner: "  ", cardName: "Card", lastFour: "4242"},
			{name: "oversized_owner", owner: strings.Repeat("u", 129), cardName: "Card", lastFour: "4242"},
			{name: "short_last_four", owner: userID, cardName: "Card", lastFour: "424"},
			{name: "letters_last_four", owner: userID, cardName: "Card", lastFour: "42a2"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := svc.CreateCard(ctx, tt.owner, tt.cardName, tt.lastFour, 0)
				testutil.AssertAppError(t, err, "INVALID_INPUT")
			})
		}
		testutil.AssertRowCount(t, db, "cards", 0)
	})
}

func TestListCards(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewCardService(db)
	userID := testutil.NewUserID()

	empty, err := svc.ListCards(ctx, userID)
	testutil.AssertNoError(t, err)
	if empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", empty)
	}

	first := testutil.CreateTestCard(t, db, userID)
	second := testutil.CreateTestCard(t, db, userID)
	testutil.CreateTestCard(t, db, testutil.NewUserID())

	cards, err := svc.ListCards(ctx, userID)
	testutil.AssertNoError(t, err)
	if len(cards) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(cards))
	}
	if cards[0].ID != first.ID || cards[1].ID != second.ID {
		t.Error("expected cards in creation order")
	}
}

func TestGetCardByID(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewCardService(db)
	userID := testutil.NewUserID()
	card := testutil.CreateTestCard(t, db, userID)

	got, err := svc.GetCardByID(ctx, userID, card.ID)
	testutil.AssertNoError(t, err)
	if got.ID != card.ID {
		t.Errorf("expected card %s, got %s", card.ID, got.ID)
	}

	_, err = svc.GetCardByID(ctx, testutil.NewUserID(), card.ID)
	testutil.AssertAppError(t, err, "CARD_NOT_FOUND")

	_, err = svc.GetCardByID(ctx, userID, "not-a-uuid")
	testutil.AssertAppError(t, err, "CARD_NOT_FOUND")
}

func TestFirstCard(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewCardService(db)
	userID := testutil.NewUserID()

	none, err := svc.FirstCard(ctx, userID)
	testutil.AssertNoError(t, err)
	if none != nil {
		t.Fatalf("expected nil card, got %+v", none)
	}

	first := testutil.CreateTestCard(t, db, userID)
	testutil.CreateTestCard(t, db, userID)

	got, err := svc.FirstCard(ctx, userID)
	testutil.AssertNoError(t, err)
	if got == nil || got.ID != first.ID {
		t.Errorf("expected first card %s, got %+v", first.ID, got)
	}
}
