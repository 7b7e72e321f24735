package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"urban-people/internal/domain/users"
	"urban-people/internal/platform/httpclient"
)

// ErrPersonNotFound: el servicio respondió 404 a update/delete.
var ErrPersonNotFound = errors.New("person not found")

// Client habla con el servicio de usuarios.
type Client struct {
	http *httpclient.Client
}

func NewClient(baseURL string) (*Client, error) {
	c, err := httpclient.NewWithBaseURL(baseURL, 0)
	if err != nil {
		return nil, err
	}
	c.UserAgent = "peoplectl"
	return &Client{http: c}, nil
}

func (c *Client) List(ctx context.Context) ([]users.User, error) {
	var out []users.User
	if err := c.http.DoJSON(ctx, http.MethodGet, "/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Pets(ctx context.Context) ([]users.Pet, error) {
	var out []users.Pet
	if err := c.http.DoJSON(ctx, http.MethodGet, "/pets", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Kinds(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.http.DoJSON(ctx, http.MethodGet, "/available_pets", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Create(ctx context.Context, u users.User) (users.User, error) {
	var out users.User
	if err := c.http.DoJSON(ctx, http.MethodPost, "/create", u, &out); err != nil {
		return users.User{}, err
	}
	return out, nil
}

// Update devuelve el mensaje de confirmación del servicio.
func (c *Client) Update(ctx context.Context, name string, u users.User) (string, error) {
	var msg string
	err := c.http.DoJSON(ctx, http.MethodPut, "/update/"+url.PathEscape(name), u, &msg)
	if err != nil {
		return "", notFound(name, err)
	}
	return msg, nil
}

func (c *Client) Delete(ctx context.Context, name string) (users.User, error) {
	var out users.User
	err := c.http.DoJSON(ctx, http.MethodDelete, "/delete/"+url.PathEscape(name), nil, &out)
	if err != nil {
		return users.User{}, notFound(name, err)
	}
	return out, nil
}

func notFound(name string, err error) error {
	if httpclient.StatusCode(err) == http.StatusNotFound {
		return fmt.Errorf("%w: %s", ErrPersonNotFound, name)
	}
	return err
}
