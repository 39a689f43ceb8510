package commutewise

import (
	"testing"

	"github.com/commutewise/commutewise/store"
)

func TestSubmitFeedback(t *testing.T) {
	s := store.New(store.NewMemKV())

	first, err := SubmitFeedback(s, "ana", store.FeedbackBug, "fare shows N/A on short trips")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.ID == "" || first.Status != store.FeedbackPending || first.Sender != "ana" {
		t.Errorf("unexpected item: %+v", first)
	}

	second, err := SubmitFeedback(s, "ben", store.FeedbackSuggestion, "add night fares")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	items := s.Feedbacks()
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].ID != second.ID {
		t.Errorf("newest feedback should be first, got %+v", items[0])
	}
}

func TestSubmitFeedbackValidation(t *testing.T) {
	s := store.New(store.NewMemKV())
	if _, err := SubmitFeedback(s, "ana", "rant", "text"); err == nil {
		t.Error("expected error for unknown type")
	}
	if _, err := SubmitFeedback(s, "ana", store.FeedbackBug, ""); err == nil {
		t.Error("expected error for empty description")
	}
}

func TestResolveFeedback(t *testing.T) {
	s := store.New(store.NewMemKV())
	item, err := SubmitFeedback(s, "ana", store.FeedbackBug, "broken stop marker")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := ResolveFeedback(s, item.ID, "Fixed in the latest update, thanks!"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := s.Feedbacks()[0]
	if got.Status != store.FeedbackResolved || got.AdminReply == "" {
		t.Errorf("expected resolved item with reply, got %+v", got)
	}

	if err := ResolveFeedback(s, "missing-id", ""); err == nil {
		t.Error("expected error for unknown feedback id")
	}
}
