package firebase

import (
	"context"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
)

type Firestore struct {
	Client *firestore.Client
}

func NewFirestore(ctx context.Context, app *firebase.App) (*Firestore, error) {
	c, err := app.Firestore(ctx)
	if err != nil {
		return nil, err
	}
	return &Firestore{Client: c}, nil
}

func (f *Firestore) Close() {
	if f == nil || f.Client == nil {
		return
	}
	_ = f.Client.Close()
}
