package mal

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/kinometa/kinometa/constant"
	"github.com/kinometa/kinometa/network"
	"github.com/zalando/go-keyring"
)

const (
	keyringUser     = "mal-token"
	defaultClientID = "8cdf92d70fbd7228dab4098523f6be68"
	authEndpoint    = "https://myanimelist.net/v1/oauth2/authorize"
	redirectURI     = "http://localhost:8080/callback"
)

// TokenEndpoint is where authorization codes are exchanged.
var TokenEndpoint = "https://myanimelist.net/v1/oauth2/token"

// Token is an OAuth2 token pair.
type Token struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
}

// GenerateCodeVerifier returns a random PKCE verifier.
func GenerateCodeVerifier() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// GetAuthURL returns the authorization url of the PKCE flow.
// MyAnimeList only supports the plain challenge method, where the challenge is the verifier.
func GetAuthURL(codeVerifier string, clientID string) string {
	if clientID == "" {
		clientID = defaultClientID
	}

	v := url.Values{}
	v.Set("response_type", "code")
	v.Set("client_id", clientID)
	v.Set("code_challenge", codeVerifier)
	v.Set("code_challenge_method", "plain")
	v.Set("redirect_uri", redirectURI)

	return authEndpoint + "?" + v.Encode()
}

func requestToken(ctx context.Context, values url.Values) (*Token, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, TokenEndpoint, strings.NewReader(values.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", constant.UserAgent)

	resp, err := network.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &network.StatusError{URL: TokenEndpoint, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	var token Token
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return nil, err
	}
	return &token, nil
}

// ExchangeCode trades an authorization code for a token.
func ExchangeCode(ctx context.Context, code, codeVerifier, clientID string) (*Token, error) {
	if clientID == "" {
		clientID = defaultClientID
	}

	token, err := requestToken(ctx, url.Values{
		"client_id":     {clientID},
		"code":          {code},
		"code_verifier": {codeVerifier},
		"grant_type":    {"authorization_code"},
		"redirect_uri":  {redirectURI},
	})
	if err != nil {
		return nil, fmt.Errorf("mal authentication failed: %w", err)
	}
	return token, nil
}

// Refresh renews the stored token.
func Refresh(ctx context.Context, clientID string) error {
	token, err := LoadToken()
	if err != nil {
		return err
	}

	if clientID == "" {
		clientID = defaultClientID
	}

	fresh, err := requestToken(ctx, url.Values{
		"client_id":     {clientID},
		"grant_type":    {"refresh_token"},
		"refresh_token": {token.RefreshToken},
	})
	if err != nil {
		return fmt.Errorf("failed to refresh token: %w", err)
	}

	return SaveToken(fresh)
}

func SaveToken(token *Token) error {
	bytes, err := json.Marshal(token)
	if err != nil {
		return err
	}
	return keyring.Set(constant.Kinometa, keyringUser, string(bytes))
}

func LoadToken() (*Token, error) {
	str, err := keyring.Get(constant.Kinometa, keyringUser)
	if err != nil {
		return nil, err
	}

	var token Token
	if err := json.Unmarshal([]byte(str), &token); err != nil {
		return nil, err
	}
	return &token, nil
}

func DeleteToken() error {
	return keyring.Delete(constant.Kinometa, keyringUser)
}
