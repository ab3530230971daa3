package profile

import (
	"context"
	"fmt"

	"gators-academy/backend/internal/authctx"

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
	return r.fs.Collection("profiles")
}

// Create writes a profile under the given id (the auth uid).
func (r *Repo) Create(ctx context.Context, p Profile) (*Profile, error) {
	if p.ID == "" {
		p.ID = r.col().NewDoc().ID
	}
	if _, err := r.col().Doc(p.ID).Set(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return &p, nil
}

func (r *Repo) Get(ctx context.Context, id string) (*Profile, error) {
	doc, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: profile not found", ErrNotFound)
	}

	var p Profile
	if err := doc.DataTo(&p); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}
	p.ID = doc.Ref.ID
	return &p, nil
}

func (r *Repo) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	if _, err := r.col().Doc(id).Set(ctx, updates, firestore.MergeAll); err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	if _, err := r.col().Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	return nil
}

// List lists profiles, optionally narrowed to a single role.
func (r *Repo) List(ctx context.Context, role authctx.Role) ([]Profile, error) {
	q := r.col().Query
	if role != "" {
		q = q.Where("role", "==", string(role))
	}

	iter := q.Documents(ctx)
	defer iter.Stop()

	var profiles []Profile
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list profiles: %w", err)
		}

		var p Profile
		if err := doc.DataTo(&p); err != nil {
			continue
		}
		p.ID = doc.Ref.ID
		profiles = append(profiles, p)
	}

	if profiles == nil {
		profiles = []Profile{}
	}
	return profiles, nil
}
