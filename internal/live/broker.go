package live

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
)

var ctx = context.Background()

const ratingChannel = "rating_updates"

// RatingUpdate carries a thumbnail's recomputed global rating. GlobalRating
// is nil when the thumbnail has no ratings yet.
type RatingUpdate struct {
	YoutubeVideoID string   `json:"youtube_video_id"`
	GlobalRating   *float64 `json:"global_rating"`
}

type Event struct {
	Type    string         `json:"type"`
	Payload []RatingUpdate `json:"payload"`
}

// Broker fans rating updates out across instances through redis pub/sub, so
// every instance can push them to its own websocket clients.
type Broker struct {
	db *redis.Client
}

func NewBroker(db *redis.Client) *Broker {
	return &Broker{db: db}
}

func (b *Broker) PublishRatingUpdates(updates []RatingUpdate) {
	if len(updates) == 0 {
		return
	}

	payload, err := json.Marshal(Event{Type: "RATING_UPDATE", Payload: updates})
	if err != nil {
		log.Println("Error encoding rating update:", err)
		return
	}

	if err := b.db.Publish(ctx, ratingChannel, payload).Err(); err != nil {
		log.Println("Error publishing rating update:", err)
	}
}

func (b *Broker) Subscribe(deliver func(Event)) error {
	sub := b.db.Subscribe(ctx, ratingChannel)
	if _, err := sub.Receive(ctx); err != nil {
		log.Println("error subscribing", err)
		return fmt.Errorf("error subscribing %w", err)
	}

	ch := sub.Channel()

	log.Printf("Subscribed to %s channel", ratingChannel)
	go func() {
		for msg := range ch {
			var event Event
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				log.Println("Error decoding rating update:", err)
				continue
			}
			deliver(event)
		}
	}()

	return nil
}
