package commutewise

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/commutewise/commutewise/store"
)

var nowFunc = time.Now

// SubmitFeedback records a bug report or suggestion from a rider, newest
// first.
func SubmitFeedback(s *store.Store, sender, feedbackType, description string) (store.FeedbackItem, error) {
	if feedbackType != store.FeedbackBug && feedbackType != store.FeedbackSuggestion {
		return store.FeedbackItem{}, fmt.Errorf("unknown feedback type %q", feedbackType)
	}
	if description == "" {
		return store.FeedbackItem{}, fmt.Errorf("feedback description is required")
	}
	item := store.FeedbackItem{
		ID:          uuid.NewString(),
		Type:        feedbackType,
		Description: description,
		Date:        nowFunc().Format("Jan 2, 03:04 PM"),
		Status:      store.FeedbackPending,
		Sender:      sender,
	}
	items := append([]store.FeedbackItem{item}, s.Feedbacks()...)
	if err := s.SaveFeedbacks(items); err != nil {
		return store.FeedbackItem{}, err
	}
	return item, nil
}

// ResolveFeedback marks a feedback item resolved, optionally attaching an
// admin reply.
func ResolveFeedback(s *store.Store, id, reply string) error {
	items := s.Feedbacks()
	for i, item := range items {
		if item.ID == id {
			items[i].Status = store.FeedbackResolved
			if reply != "" {
				items[i].AdminReply = reply
			}
			return s.SaveFeedbacks(items)
		}
	}
	return fmt.Errorf("feedback %s not found", id)
}
