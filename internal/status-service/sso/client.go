package sso

import (
	apperrors "VCS_Status_Monitor/internal/status-service/errors"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const DefaultTokenTTL = 3600

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token,omitempty"`
	IDToken      string `json:"id_token,omitempty"`
}

// MaxAge is the cookie lifetime in seconds.
func (t TokenResponse) MaxAge() int {
	if t.ExpiresIn <= 0 {
		return DefaultTokenTTL
	}
	return t.ExpiresIn
}

type Config struct {
	Issuer       string
	ClientID     string
	ClientSecret string
	CallbackURL  string
	Timeout      time.Duration
}

// Client talks to the identity provider.
type Client interface {
	Verifier
	ExchangeCode(ctx context.Context, code string) (TokenResponse, error)
	LoginURL() string
	LogoutURL() string
}

type client struct {
	cfg  Config
	http *http.Client
}

func (c *client) Verify(ctx context.Context, token string) (User, error) {
	body, err := json.Marshal(map[string]string{"token": token})
	if err != nil {
		return User{}, fmt.Errorf("SSOClient.Verify: %w", err)
	}
	endpoint := c.cfg.Issuer + "/api/token/verify"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return User{}, fmt.Errorf("SSOClient.Verify: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var user User
	if err = c.do(req, &user); err != nil {
		return User{}, fmt.Errorf("SSOClient.Verify: %w: %w", apperrors.ErrInvalidToken, err)
	}
	return user, nil
}

func (c *client) ExchangeCode(ctx context.Context, code string) (TokenResponse, error) {
	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("redirect_uri", c.cfg.CallbackURL)
	form.Set("client_id", c.cfg.ClientID)
	form.Set("client_secret", c.cfg.ClientSecret)
	endpoint := c.cfg.Issuer + "/api/token"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return TokenResponse{}, fmt.Errorf("SSOClient.ExchangeCode: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var token TokenResponse
	if err = c.do(req, &token); err != nil {
		return TokenResponse{}, fmt.Errorf("SSOClient.ExchangeCode: %w: %w", apperrors.ErrCodeExchangeFailed, err)
	}
	if token.AccessToken == "" {
		return TokenResponse{}, fmt.Errorf("SSOClient.ExchangeCode: %w: no access token in response", apperrors.ErrCodeExchangeFailed)
	}
	return token, nil
}

func (c *client) do(req *http.Request, out interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return apperrors.NewSSOError(resp.StatusCode, req.URL.Path)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *client) LoginURL() string {
	q := url.Values{}
	q.Set("response_type", "code")
	q.Set("client_id", c.cfg.ClientID)
	q.Set("redirect_uri", c.cfg.CallbackURL)
	q.Set("scope", "openid profile email")
	return c.cfg.Issuer + "/authorize?" + q.Encode()
}

func (c *client) LogoutURL() string {
	return c.cfg.Issuer + "/logout?redirect_uri=" + url.QueryEscape(c.cfg.CallbackURL)
}

func NewClient(cfg Config) Client {
	cfg.Issuer = strings.TrimRight(cfg.Issuer, "/")
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}
}
