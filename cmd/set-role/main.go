// Command set-role repairs the role claim on an existing account, for
// accounts created before the signup flow set claims or after a manual
// role change.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"gators-academy/backend/internal/authctx"

	firebase "firebase.google.com/go/v4"
)

func main() {
	uid := flag.String("uid", "", "target firebase uid")
	role := flag.String("role", "", "role to set: admin, trainer or trainee")
	flag.Parse()
	if *uid == "" {
		log.Fatal("uid is required: -uid=xxxxx")
	}
	if !authctx.IsValidRole(*role) {
		log.Fatal("role must be one of: admin, trainer, trainee")
	}

	ctx := context.Background()
	app, err := firebase.NewApp(ctx, nil)
	if err != nil {
		log.Fatalf("firebase.NewApp: %v", err)
	}
	authClient, err := app.Auth(ctx)
	if err != nil {
		log.Fatalf("app.Auth: %v", err)
	}

	claims := map[string]interface{}{
		"role": *role,
	}

	if err := authClient.SetCustomUserClaims(ctx, *uid, claims); err != nil {
		log.Fatalf("SetCustomUserClaims: %v", err)
	}

	fmt.Printf("ok: role %s set for %s\n", *role, *uid)
}
