package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/cbodonnell/quoridor/pkg/log"
)

const DefaultIdentityToolkitURL = "https://identitytoolkit.googleapis.com/v1"

// FirebaseClient signs players in with the Firebase Auth REST API so that the
// terminal client can obtain ID tokens for email/password accounts.
// https://firebase.google.com/docs/reference/rest/auth
type FirebaseClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

type NewFirebaseClientOptions struct {
	APIKey string
	// BaseURL defaults to DefaultIdentityToolkitURL.
	BaseURL    string
	HTTPClient *http.Client
}

func NewFirebaseClient(opts NewFirebaseClientOptions) *FirebaseClient {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultIdentityToolkitURL
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &FirebaseClient{
		apiKey:     opts.APIKey,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
}

// ErrorResponseBody is the response body for an error
// https://firebase.google.com/docs/reference/rest/auth#section-error-format
type ErrorResponseBody struct {
	Error struct {
		Code    int                  `json:"code"`
		Message ErrorResponseMessage `json:"message"`
	} `json:"error"`
}

type ErrorResponseMessage string

const (
	ErrorEmailExists             ErrorResponseMessage = "EMAIL_EXISTS"
	ErrorOperationNotAllowed     ErrorResponseMessage = "OPERATION_NOT_ALLOWED"
	ErrorTooManyAttempts         ErrorResponseMessage = "TOO_MANY_ATTEMPTS_TRY_LATER"
	ErrorInvalidEmail            ErrorResponseMessage = "INVALID_EMAIL"
	ErrorInvalidLoginCredentials ErrorResponseMessage = "INVALID_LOGIN_CREDENTIALS"
	ErrorWeakPassword            ErrorResponseMessage = "WEAK_PASSWORD : Password should be at least 6 characters"
)

// FirebaseError is a rejection reported by the REST API.
type FirebaseError struct {
	Status  int
	Message ErrorResponseMessage
}

func (e *FirebaseError) Error() string {
	switch e.Message {
	case ErrorEmailExists:
		return "email already exists"
	case ErrorOperationNotAllowed:
		return "operation not allowed"
	case ErrorTooManyAttempts:
		return "too many attempts, try again later"
	case ErrorInvalidEmail:
		return "invalid email"
	case ErrorInvalidLoginCredentials:
		return "invalid credentials"
	case ErrorWeakPassword:
		return "password should be at least 6 characters"
	}
	return fmt.Sprintf("firebase auth error %d: %s", e.Status, e.Message)
}

// credentialsRequestBody is the request body of the sign up and sign in endpoints
type credentialsRequestBody struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

// SignInResponseBody is the response body of the sign up and sign in endpoints
type SignInResponseBody struct {
	IDToken      string `json:"idToken"`
	Email        string `json:"email"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
	LocalID      string `json:"localId"`
}

// SignUp creates an email/password account.
// https://firebase.google.com/docs/reference/rest/auth#section-create-email-password
func (c *FirebaseClient) SignUp(ctx context.Context, email string, password string) (*SignInResponseBody, error) {
	return c.postCredentials(ctx, "accounts:signUp", email, password)
}

// SignIn exchanges an email and password for an ID token.
// https://firebase.google.com/docs/reference/rest/auth#section-sign-in-email-password
func (c *FirebaseClient) SignIn(ctx context.Context, email string, password string) (*SignInResponseBody, error) {
	return c.postCredentials(ctx, "accounts:signInWithPassword", email, password)
}

func (c *FirebaseClient) postCredentials(ctx context.Context, endpoint string, email string, password string) (*SignInResponseBody, error) {
	if email == "" {
		return nil, fmt.Errorf("missing email")
	}
	if password == "" {
		return nil, fmt.Errorf("missing password")
	}

	body := bytes.NewBuffer(nil)
	if err := json.NewEncoder(body).Encode(&credentialsRequestBody{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}); err != nil {
		return nil, fmt.Errorf("failed to encode request body: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+endpoint+"?key="+c.apiKey, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errorResponse := &ErrorResponseBody{}
		if err := json.NewDecoder(resp.Body).Decode(errorResponse); err != nil {
			return nil, fmt.Errorf("failed to decode error response (%s): %v", resp.Status, err)
		}
		log.Debug("Firebase %s rejected: %s", endpoint, errorResponse.Error.Message)
		return nil, &FirebaseError{
			Status:  resp.StatusCode,
			Message: errorResponse.Error.Message,
		}
	}

	responsePayload := &SignInResponseBody{}
	if err := json.NewDecoder(resp.Body).Decode(responsePayload); err != nil {
		return nil, fmt.Errorf("failed to decode response: %v", err)
	}
	if responsePayload.IDToken == "" {
		return nil, fmt.Errorf("response did not include an ID token")
	}

	return responsePayload, nil
}
