package domain

import "time"

// EventType names a change applied to a user-data store.
type EventType string

const (
	EventCollectionAdded   EventType = "collection_added"
	EventCollectionRemoved EventType = "collection_removed"
	EventReviewAdded       EventType = "review_added"
	EventReviewUpdated     EventType = "review_updated"
	EventReviewDeleted     EventType = "review_deleted"
	EventReviewVoted       EventType = "review_voted"
)

// Event is emitted to subscribers after a mutation has been applied.
// OwnerID is the user whose collection changed, or the acting user for review events.
type Event struct {
	Type       EventType      `json:"type"`
	OwnerID    string         `json:"owner_id"`
	Collection CollectionName `json:"collection,omitempty"`
	MovieID    MovieID        `json:"movie_id,omitempty"`
	ReviewID   string         `json:"review_id,omitempty"`
	At         time.Time      `json:"at"`
}
