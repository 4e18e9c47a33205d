package firestore

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/desertfarm/backend/internal/domain"
)

// DefaultCollection holds advice history documents
const DefaultCollection = "advice_history"

// Store implements domain.AdviceRepository on Firestore.
// Ids come from a counter document updated in the same transaction as the
// record, so ids are unique and increase with insertion order.
type Store struct {
	client     *firestore.Client
	collection string
}

// NewStore creates a Firestore store for projectID
func NewStore(ctx context.Context, projectID, collection string) (*Store, error) {
	if projectID == "" {
		return nil, fmt.Errorf("firestore: projectID is required")
	}
	if collection == "" {
		collection = DefaultCollection
	}

	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("firestore: creating client: %w", err)
	}

	return &Store{client: client, collection: collection}, nil
}

// Close releases the underlying client
func (s *Store) Close() error {
	return s.client.Close()
}

// ─────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────

func (s *Store) historyCol() *firestore.CollectionRef {
	return s.client.Collection(s.collection)
}

func (s *Store) counterDoc() *firestore.DocumentRef {
	return s.client.Collection(s.collection + "_meta").Doc("counter")
}

type counterDoc struct {
	LastID        int64     `firestore:"last_id"`
	LastTimestamp time.Time `firestore:"last_timestamp"`
}

type historyDoc struct {
	ID           int64     `firestore:"id"`
	Query        string    `firestore:"query"`
	Advice       string    `firestore:"advice"`
	Language     string    `firestore:"language"`
	Temperature  float64   `firestore:"temperature"`
	Humidity     float64   `firestore:"humidity"`
	Rainfall     float64   `firestore:"rainfall"`
	WindSpeed    float64   `firestore:"wind_speed"`
	LocationName *string   `firestore:"location_name"`
	Latitude     float64   `firestore:"latitude"`
	Longitude    float64   `firestore:"longitude"`
	Timestamp    time.Time `firestore:"timestamp"`
}

func (d historyDoc) record() domain.AdviceHistoryRecord {
	return domain.AdviceHistoryRecord{
		ID:           d.ID,
		Query:        d.Query,
		Advice:       d.Advice,
		Language:     domain.Language(d.Language),
		Temperature:  d.Temperature,
		Humidity:     d.Humidity,
		Rainfall:     d.Rainfall,
		WindSpeed:    d.WindSpeed,
		LocationName: d.LocationName,
		Latitude:     d.Latitude,
		Longitude:    d.Longitude,
		Timestamp:    d.Timestamp.UTC(),
	}
}

// ─────────────────────────────────────────
// AdviceRepository implementation
// ─────────────────────────────────────────

// SaveAdviceHistory allocates the next id and writes the record atomically
func (s *Store) SaveAdviceHistory(ctx context.Context, rec domain.NewAdviceHistory) (domain.AdviceHistoryRecord, error) {
	var stored domain.AdviceHistoryRecord

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		var counter counterDoc
		snap, err := tx.Get(s.counterDoc())
		switch {
		case err == nil:
			if err := snap.DataTo(&counter); err != nil {
				return fmt.Errorf("decode counter: %w", err)
			}
		case status.Code(err) == codes.NotFound:
		default:
			return err
		}

		ts := rec.Timestamp.UTC()
		if ts.Before(counter.LastTimestamp) {
			ts = counter.LastTimestamp
		}
		stored = rec.Stored(counter.LastID+1, ts)

		doc := historyDoc{
			ID:           stored.ID,
			Query:        stored.Query,
			Advice:       stored.Advice,
			Language:     string(stored.Language),
			Temperature:  stored.Temperature,
			Humidity:     stored.Humidity,
			Rainfall:     stored.Rainfall,
			WindSpeed:    stored.WindSpeed,
			LocationName: stored.LocationName,
			Latitude:     stored.Latitude,
			Longitude:    stored.Longitude,
			Timestamp:    stored.Timestamp,
		}
		if err := tx.Create(s.historyCol().Doc(strconv.FormatInt(stored.ID, 10)), doc); err != nil {
			return err
		}
		return tx.Set(s.counterDoc(), counterDoc{LastID: stored.ID, LastTimestamp: ts})
	})
	if err != nil {
		return domain.AdviceHistoryRecord{}, fmt.Errorf("firestore SaveAdviceHistory: %w", err)
	}
	return stored, nil
}

// GetAdviceHistory returns up to limit records, newest first. Ids follow
// insertion order and timestamps never decrease, so id order is recency order.
func (s *Store) GetAdviceHistory(ctx context.Context, limit int) ([]domain.AdviceHistoryRecord, error) {
	iter := s.historyCol().OrderBy("id", firestore.Desc).Limit(limit).Documents(ctx)
	defer iter.Stop()

	out := make([]domain.AdviceHistoryRecord, 0, limit)
	for {
		snap, err := iter.Next()
		if err != nil {
			if err == iterator.Done {
				break
			}
			return nil, fmt.Errorf("firestore GetAdviceHistory: %w", err)
		}

		var doc historyDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("decode historyDoc: %w", err)
		}
		out = append(out, doc.record())
	}
	return out, nil
}

// Health checks that the collection can be read
func (s *Store) Health(ctx context.Context) error {
	iter := s.historyCol().Limit(1).Documents(ctx)
	defer iter.Stop()

	if _, err := iter.Next(); err != nil && err != iterator.Done {
		return fmt.Errorf("firestore: health check failed: %w", err)
	}
	return nil
}
