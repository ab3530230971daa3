package schedule

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

type Repo struct {
	fs *firestore.Client
}

func NewRepo(fs *firestore.Client) *Repo {
	return &Repo{fs: fs}
}

func (r *Repo) col() *firestore.CollectionRef {
	return r.fs.Collection("schedules")
}

func (r *Repo) Create(ctx context.Context, s Schedule) (*Schedule, error) {
	ref := r.col().NewDoc()
	s.ID = ref.ID

	if _, err := ref.Set(ctx, r.toDoc(s)); err != nil {
		return nil, fmt.Errorf("failed to create schedule: %w", err)
	}
	return &s, nil
}

func (r *Repo) Get(ctx context.Context, id string) (*Schedule, error) {
	doc, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: schedule not found", ErrNotFound)
	}
	s := fromDoc(doc.Ref.ID, doc.Data())
	return &s, nil
}

func (r *Repo) Update(ctx context.Context, id string, updates map[string]interface{}) (*Schedule, error) {
	if _, err := r.col().Doc(id).Set(ctx, updates, firestore.MergeAll); err != nil {
		return nil, fmt.Errorf("failed to update schedule: %w", err)
	}
	return r.Get(ctx, id)
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	if _, err := r.col().Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}
	return nil
}

func (r *Repo) List(ctx context.Context, input ListSchedulesInput) ([]Schedule, error) {
	q := r.col().Query
	if input.TrainerID != "" {
		q = q.Where("trainer_id", "==", input.TrainerID)
	}
	if input.Date != "" {
		q = q.Where("date", "==", input.Date)
	}
	if input.Status != "" {
		q = q.Where("status", "==", string(input.Status))
	}

	iter := q.Documents(ctx)
	defer iter.Stop()

	var schedules []Schedule
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list schedules: %w", err)
		}
		schedules = append(schedules, fromDoc(doc.Ref.ID, doc.Data()))
	}

	if schedules == nil {
		schedules = []Schedule{}
	}
	return schedules, nil
}

func (r *Repo) toDoc(s Schedule) map[string]interface{} {
	return map[string]interface{}{
		"trainer_id": s.TrainerID,
		"date":       s.Date,
		"time_slot":  s.TimeSlots,
		"capacity":   s.Capacity,
		"status":     string(s.Status),
		"created_at": s.CreatedAt,
		"updated_at": s.UpdatedAt,
	}
}

// fromDoc decodes by hand because time_slot holds either a string or
// a list depending on which client wrote the document.
func fromDoc(id string, data map[string]interface{}) Schedule {
	s := Schedule{ID: id}
	s.TrainerID, _ = data["trainer_id"].(string)
	s.Date, _ = data["date"].(string)
	s.TimeSlots = FlattenTimeSlot(data["time_slot"])
	if c, ok := data["capacity"].(int64); ok {
		s.Capacity = int(c)
	}
	if st, ok := data["status"].(string); ok {
		s.Status = Status(st)
	}
	if t, ok := data["created_at"].(time.Time); ok {
		s.CreatedAt = t
	}
	if t, ok := data["updated_at"].(time.Time); ok {
		s.UpdatedAt = t
	}
	return s
}

// FlattenTimeSlot normalizes the stored time_slot value to a list.
// Duplicates propagate as-is.
func FlattenTimeSlot(v interface{}) []string {
	switch slot := v.(type) {
	case string:
		if slot == "" {
			return []string{}
		}
		return []string{slot}
	case []string:
		return slot
	case []interface{}:
		out := make([]string, 0, len(slot))
		for _, e := range slot {
			if s, ok := e.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		return []string{}
	}
}
