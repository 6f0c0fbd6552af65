package api

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/finlens/finlens/internal/model"
)

// Login exchanges credentials for a bearer token. The backend speaks the
// OAuth2 password flow, so the body is form-encoded rather than JSON. A 401
// here is a credential error, never session expiry, and reaches the caller
// with the server's detail message intact.
func (c *Client) Login(ctx context.Context, email, password string) (*model.Token, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	req, err := c.newRequest(ctx, http.MethodPost, pathLogin,
		strings.NewReader(form.Encode()), "application/x-www-form-urlencoded")
	if err != nil {
		return nil, err
	}

	var token model.Token
	if err := c.send(req, &token); err != nil {
		return nil, c.classify(pathLogin, err)
	}
	return &token, nil
}

// Register creates a new account. imagePath optionally attaches a profile
// image; the whole payload goes up as one multipart form.
func (c *Client) Register(ctx context.Context, fullName, email, password, imagePath string) (*model.User, error) {
	fields := map[string]string{
		"full_name": fullName,
		"email":     email,
		"password":  password,
	}

	body, contentType, err := multipartBody(fields, "profile_image", imagePath)
	if err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, http.MethodPost, pathRegister, body, contentType)
	if err != nil {
		return nil, err
	}

	var user model.User
	if err := c.send(req, &user); err != nil {
		return nil, c.classify(pathRegister, err)
	}
	return &user, nil
}

// GetUser fetches the authenticated user's profile.
func (c *Client) GetUser(ctx context.Context) (*model.User, error) {
	var user model.User
	if err := c.getJSON(ctx, pathGetUser, &user); err != nil {
		return nil, c.classify(pathGetUser, err)
	}
	return &user, nil
}

// UploadProfileImage replaces the authenticated user's profile image.
func (c *Client) UploadProfileImage(ctx context.Context, imagePath string) (*model.User, error) {
	body, contentType, err := multipartBody(nil, "file", imagePath)
	if err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, http.MethodPost, pathUploadImage, body, contentType)
	if err != nil {
		return nil, err
	}

	var user model.User
	if err := c.send(req, &user); err != nil {
		return nil, c.classify(pathUploadImage, err)
	}
	return &user, nil
}
