package profile

import (
	"context"
	"fmt"
	"log"
	"time"

	"gators-academy/backend/internal/authctx"

	"firebase.google.com/go/v4/auth"
)

// Store is the record-store surface the service needs. *Repo satisfies
// it; tests use an in-memory fake.
type Store interface {
	Create(ctx context.Context, p Profile) (*Profile, error)
	Get(ctx context.Context, id string) (*Profile, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, role authctx.Role) ([]Profile, error)
}

// Identity is the identity-provider surface the service needs.
// *auth.Client satisfies it.
type Identity interface {
	CreateUser(ctx context.Context, user *auth.UserToCreate) (*auth.UserRecord, error)
	SetCustomUserClaims(ctx context.Context, uid string, claims map[string]interface{}) error
	UpdateUser(ctx context.Context, uid string, user *auth.UserToUpdate) (*auth.UserRecord, error)
	DeleteUser(ctx context.Context, uid string) error
}

type Service struct {
	store    Store
	identity Identity
	resolver authctx.Resolver
}

func NewService(store Store, identity Identity, resolver authctx.Resolver) *Service {
	return &Service{store: store, identity: identity, resolver: resolver}
}

// SignUp creates the auth account, then the profile record with the
// role derived from the email domain. The role is assigned exactly
// once here; logins only read it back from claims.
func (s *Service) SignUp(ctx context.Context, in SignUpInput) (*Profile, error) {
	in.Trim()

	if in.Email == "" || in.Password == "" || in.FullName == "" {
		return nil, fmt.Errorf("%w: email, password and full_name are required", ErrBadRequest)
	}

	role := s.resolver.DeriveRole(in.Email)

	level := ""
	if role == authctx.RoleTrainee {
		level = in.Level
		if level == "" {
			level = DefaultLevel
		}
		if !IsValidLevel(level) {
			return nil, fmt.Errorf("%w: level must be one of: beginner, level1, level2, level3, advanced", ErrBadRequest)
		}
	}

	user := (&auth.UserToCreate{}).
		Email(in.Email).
		Password(in.Password).
		DisplayName(in.FullName)

	rec, err := s.identity.CreateUser(ctx, user)
	if err != nil {
		if auth.IsEmailAlreadyExists(err) {
			return nil, fmt.Errorf("%w: %s", ErrAlreadyRegistered, in.Email)
		}
		return nil, fmt.Errorf("failed to create auth account: %w", err)
	}

	if err := s.identity.SetCustomUserClaims(ctx, rec.UID, map[string]interface{}{"role": string(role)}); err != nil {
		// Without the claim the account is unusable; undo the signup.
		if delErr := s.identity.DeleteUser(ctx, rec.UID); delErr != nil {
			return nil, fmt.Errorf("%w: set claims failed (%v), cleanup failed (%v)", ErrPartialFailure, err, delErr)
		}
		return nil, fmt.Errorf("failed to set role claim: %w", err)
	}

	now := time.Now().UTC()
	p := Profile{
		ID:        rec.UID,
		FullName:  in.FullName,
		Email:     in.Email,
		Phone:     in.Phone,
		Role:      role,
		Level:     level,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.store.Create(ctx, p)
	if err != nil {
		if delErr := s.identity.DeleteUser(ctx, rec.UID); delErr != nil {
			return nil, fmt.Errorf("%w: profile insert failed (%v), auth cleanup failed (%v)", ErrPartialFailure, err, delErr)
		}
		return nil, err
	}

	return created, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Profile, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id is required", ErrBadRequest)
	}
	return s.store.Get(ctx, id)
}

// List lists profiles, optionally filtered by role.
func (s *Service) List(ctx context.Context, role string) ([]Profile, error) {
	if role != "" && !authctx.IsValidRole(role) {
		return nil, fmt.Errorf("%w: role must be one of: admin, trainer, trainee", ErrBadRequest)
	}
	return s.store.List(ctx, authctx.Role(role))
}

// Update edits a profile. Callers enforce that only the owner or an
// admin reaches this point.
func (s *Service) Update(ctx context.Context, id string, in UpdateProfileInput) (*Profile, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id is required", ErrBadRequest)
	}
	in.Trim()

	if _, err := s.store.Get(ctx, id); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"updated_at": time.Now().UTC(),
	}
	if in.FullName != nil {
		if *in.FullName == "" {
			return nil, fmt.Errorf("%w: full_name cannot be empty", ErrBadRequest)
		}
		updates["full_name"] = *in.FullName
	}
	if in.Phone != nil {
		updates["phone"] = *in.Phone
	}
	if in.Level != nil {
		if !IsValidLevel(*in.Level) {
			return nil, fmt.Errorf("%w: level must be one of: beginner, level1, level2, level3, advanced", ErrBadRequest)
		}
		updates["level"] = *in.Level
	}

	if err := s.store.Update(ctx, id, updates); err != nil {
		return nil, err
	}

	// Keep the auth display name in step with the profile.
	if in.FullName != nil {
		authUpdate := (&auth.UserToUpdate{}).DisplayName(*in.FullName)
		if _, err := s.identity.UpdateUser(ctx, id, authUpdate); err != nil {
			log.Printf("profile %s: auth display name update failed: %v", id, err)
		}
	}

	return s.store.Get(ctx, id)
}

// Delete removes a profile and its auth account as a compensating
// saga: delete the record, then the account; if the account delete
// fails, restore the record so the two stores never disagree.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: id is required", ErrBadRequest)
	}

	existing, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.identity.DeleteUser(ctx, id); err != nil {
		if _, restoreErr := s.store.Create(ctx, *existing); restoreErr != nil {
			return fmt.Errorf("%w: auth delete failed (%v), profile restore failed (%v)", ErrPartialFailure, err, restoreErr)
		}
		return fmt.Errorf("failed to delete auth account (profile restored): %w", err)
	}

	return nil
}

// UpdateEmail changes the login email on the identity provider and
// mirrors it onto the profile record.
func (s *Service) UpdateEmail(ctx context.Context, id, newEmail string) error {
	if id == "" || newEmail == "" {
		return fmt.Errorf("%w: id and email are required", ErrBadRequest)
	}

	if _, err := s.store.Get(ctx, id); err != nil {
		return err
	}

	authUpdate := (&auth.UserToUpdate{}).Email(newEmail)
	if _, err := s.identity.UpdateUser(ctx, id, authUpdate); err != nil {
		if auth.IsEmailAlreadyExists(err) {
			return fmt.Errorf("%w: %s", ErrAlreadyRegistered, newEmail)
		}
		return fmt.Errorf("failed to update auth email: %w", err)
	}

	return s.store.Update(ctx, id, map[string]interface{}{
		"email":      newEmail,
		"updated_at": time.Now().UTC(),
	})
}
