// README: Firebase-backed ID token verification for the API auth middleware.
package infra

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// AuthClaims is the verified identity the API cares about: the caller's uid
// and the optional role custom claim ("provider" for service staff).
type AuthClaims struct {
	UID  string
	Role string
}

// TokenVerifier turns a raw bearer token into verified claims.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*AuthClaims, error)
}

type firebaseVerifier struct {
	client *auth.Client
}

// NewFirebaseVerifier builds a TokenVerifier on the Firebase Admin SDK.
// credentialsFile may be empty, in which case application-default
// credentials are used. projectID picks the token audience to verify
// against.
func NewFirebaseVerifier(ctx context.Context, projectID, credentialsFile string) (TokenVerifier, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("init firebase auth client: %w", err)
	}
	return &firebaseVerifier{client: client}, nil
}

func (v *firebaseVerifier) VerifyIDToken(ctx context.Context, idToken string) (*AuthClaims, error) {
	tok, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("verify id token: %w", err)
	}
	claims := &AuthClaims{UID: tok.UID}
	if role, ok := tok.Claims["role"].(string); ok {
		claims.Role = role
	}
	return claims, nil
}
