package booking

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
	return r.fs.Collection("bookings")
}

func (r *Repo) Create(ctx context.Context, b Booking) (*Booking, error) {
	ref := r.col().NewDoc()
	b.ID = ref.ID

	if _, err := ref.Set(ctx, toDoc(b)); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	return &b, nil
}

func (r *Repo) Get(ctx context.Context, id string) (*Booking, error) {
	doc, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: booking not found", ErrNotFound)
	}
	b := fromDoc(doc.Ref.ID, doc.Data())
	return &b, nil
}

func (r *Repo) Update(ctx context.Context, id string, updates map[string]interface{}) (*Booking, error) {
	if _, err := r.col().Doc(id).Set(ctx, updates, firestore.MergeAll); err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}
	return r.Get(ctx, id)
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	if _, err := r.col().Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	return nil
}

func (r *Repo) List(ctx context.Context, input ListBookingsInput) ([]Booking, error) {
	q := r.col().Query
	if input.TrainerID != "" {
		q = q.Where("trainer_id", "==", input.TrainerID)
	}
	if input.StudentID != "" {
		q = q.Where("student_id", "==", input.StudentID)
	}
	if input.Day != "" {
		q = q.Where("day", "==", input.Day)
	}
	if input.Time != "" {
		q = q.Where("time", "==", input.Time)
	}
	if input.Status != "" {
		q = q.Where("status", "==", string(input.Status))
	}

	iter := q.Documents(ctx)
	defer iter.Stop()

	var bookings []Booking
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list bookings: %w", err)
		}
		bookings = append(bookings, fromDoc(doc.Ref.ID, doc.Data()))
	}

	if bookings == nil {
		bookings = []Booking{}
	}
	return bookings, nil
}

func toDoc(b Booking) map[string]interface{} {
	return map[string]interface{}{
		"student_id":   b.StudentID,
		"trainer_id":   b.TrainerID,
		"day":          b.Day,
		"time":         b.Time,
		"status":       string(b.Status),
		"attendance":   string(b.Attendance),
		"level":        b.Level,
		"student_name": b.StudentName,
		"trainer_name": b.TrainerName,
		"created_at":   b.CreatedAt,
		"updated_at":   b.UpdatedAt,
	}
}

func fromDoc(id string, data map[string]interface{}) Booking {
	b := Booking{ID: id}
	b.StudentID, _ = data["student_id"].(string)
	b.TrainerID, _ = data["trainer_id"].(string)
	b.Day, _ = data["day"].(string)
	b.Time, _ = data["time"].(string)
	if s, ok := data["status"].(string); ok {
		b.Status = Status(s)
	}
	if a, ok := data["attendance"].(string); ok {
		b.Attendance = Attendance(a)
	}
	b.Level, _ = data["level"].(string)
	b.StudentName, _ = data["student_name"].(string)
	b.TrainerName, _ = data["trainer_name"].(string)
	if t, ok := data["created_at"].(time.Time); ok {
		b.CreatedAt = t
	}
	if t, ok := data["updated_at"].(time.Time); ok {
		b.UpdatedAt = t
	}
	return b
}
