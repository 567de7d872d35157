package console

import (
	"context"
	"fmt"

	"github.com/cbodonnell/quoridor/pkg/auth"
	authproviders "github.com/cbodonnell/quoridor/pkg/auth/providers"
)

// AskFunc prints a prompt and returns the next line typed by the user.
type AskFunc func(prompt string) (string, error)

// Login identifies a player at the terminal.
type Login interface {
	Login(ctx context.Context, ask AskFunc) (*authproviders.Identity, error)
}

// NameLogin asks for a display name and hands it to the provider.
type NameLogin struct {
	Provider authproviders.AuthProvider
}

func (l *NameLogin) Login(ctx context.Context, ask AskFunc) (*authproviders.Identity, error) {
	name, err := ask("Enter your name: ")
	if err != nil {
		return nil, err
	}
	return l.Provider.Authenticate(ctx, name)
}

// PasswordSigner exchanges email/password credentials for an ID token.
type PasswordSigner interface {
	SignIn(ctx context.Context, email string, password string) (*auth.SignInResponseBody, error)
	SignUp(ctx context.Context, email string, password string) (*auth.SignInResponseBody, error)
}

var _ PasswordSigner = &auth.FirebaseClient{}

// PasswordLogin logs in or signs up with an email and password, then
// verifies the resulting ID token with the provider.
type PasswordLogin struct {
	Signer   PasswordSigner
	Provider authproviders.AuthProvider
}

func (l *PasswordLogin) Login(ctx context.Context, ask AskFunc) (*authproviders.Identity, error) {
	choice, err := ask("Enter 1 to log in or 2 to sign up: ")
	if err != nil {
		return nil, err
	}
	signIn := l.Signer.SignIn
	switch choice {
	case "1":
	case "2":
		signIn = l.Signer.SignUp
	default:
		return nil, fmt.Errorf("invalid option %q", choice)
	}

	email, err := ask("Enter email: ")
	if err != nil {
		return nil, err
	}
	password, err := ask("Enter password: ")
	if err != nil {
		return nil, err
	}

	resp, err := signIn(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return l.Provider.Authenticate(ctx, resp.IDToken)
}
