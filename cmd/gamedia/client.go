package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client wraps HTTP calls to the gamedia server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new gamedia API client.
func NewClient(serverURL string) *Client {
	return &Client{
		baseURL: serverURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

func (c *Client) get(path string, result any) error {
	resp, err := c.httpClient.Get(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server error %d: %s", resp.StatusCode, string(body))
	}

	return json.NewDecoder(resp.Body).Decode(result)
}

// getRaw fetches a binary payload and returns the body with its content
// type.
func (c *Client) getRaw(path string) ([]byte, string, error) {
	resp, err := c.httpClient.Get(c.baseURL + path)
	if err != nil {
		return nil, "", fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("server error %d: %s", resp.StatusCode, string(body))
	}

	return body, resp.Header.Get("Content-Type"), nil
}

func (c *Client) post(path string, body any, result any) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	resp, err := c.httpClient.Post(c.baseURL+path, "application/json", bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server error %d: %s", resp.StatusCode, string(respBody))
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}
	return nil
}

// postRaw sends a JSON body and returns the binary response with its
// content type.
func (c *Client) postRaw(path string, body any) ([]byte, string, error) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, "", fmt.Errorf("marshal error: %w", err)
	}

	resp, err := c.httpClient.Post(c.baseURL+path, "application/json", bytes.NewReader(jsonBody))
	if err != nil {
		return nil, "", fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("server error %d: %s", resp.StatusCode, string(respBody))
	}

	return respBody, resp.Header.Get("Content-Type"), nil
}

// put uploads raw bytes.
func (c *Client) put(path string, data []byte, result any) error {
	req, err := http.NewRequest(http.MethodPut, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("request creation failed: %w", err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server error %d: %s", resp.StatusCode, string(body))
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}
	return nil
}

func (c *Client) delete(path string, result any) error {
	req, err := http.NewRequest(http.MethodDelete, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("request creation failed: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server error %d: %s", resp.StatusCode, string(body))
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}
	return nil
}

// API response types (mirror server types)

type GameResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Console      string   `json:"console"`
	HasCover     bool     `json:"has_cover"`
	HasLogo      bool     `json:"has_logo"`
	HasVideo     bool     `json:"has_video"`
	MediaFolders []string `json:"media_folders"`
	MediaCount   int      `json:"media_count"`
}

type ListGamesResponse struct {
	Items  []GameResponse `json:"items"`
	Total  int            `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

type ScanResponse struct {
	Games int `json:"games"`
}

type DeleteResponse struct {
	Deleted int `json:"deleted"`
}

type StatusResponse struct {
	Version  string `json:"version"`
	Root     string `json:"root"`
	Writable bool   `json:"writable"`
	Games    int    `json:"games"`
}

type ConsoleResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type CategoryResponse struct {
	Key         string `json:"key"`
	Folder      string `json:"folder"`
	Ext         string `json:"ext"`
	Accept      string `json:"accept"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

type ArchiveRequest struct {
	Console string        `json:"console"`
	Game    string        `json:"game"`
	Files   []ArchiveFile `json:"files"`
}

type ArchiveFile struct {
	Category    string `json:"category"`
	ContentType string `json:"content_type,omitempty"`
	Data        []byte `json:"data"`
}

type FetchImageRequest struct {
	ImageURL string `json:"image_url"`
	Accept   string `json:"accept,omitempty"`
}

// Typed calls

func (c *Client) ListGames(query url.Values) (*ListGamesResponse, error) {
	path := "/api/v1/games"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}
	var resp ListGamesResponse
	if err := c.get(path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) GetGame(id string) (*GameResponse, error) {
	var resp GameResponse
	if err := c.get("/api/v1/games/"+url.PathEscape(id), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) GetMedia(id, category string) ([]byte, string, error) {
	return c.getRaw("/api/v1/games/" + url.PathEscape(id) + "/media/" + url.PathEscape(category))
}

func (c *Client) Scan() (*ScanResponse, error) {
	var resp ScanResponse
	if err := c.post("/api/v1/scan", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) PutMedia(console, game, category string, data []byte) (*GameResponse, error) {
	path := fmt.Sprintf("/api/v1/media/%s/%s/%s",
		url.PathEscape(console), url.PathEscape(game), url.PathEscape(category))
	var resp GameResponse
	if err := c.put(path, data, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) DeleteGame(console, game string) (*DeleteResponse, error) {
	path := fmt.Sprintf("/api/v1/games/%s/%s", url.PathEscape(console), url.PathEscape(game))
	var resp DeleteResponse
	if err := c.delete(path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) BuildArchive(req ArchiveRequest) ([]byte, error) {
	data, _, err := c.postRaw("/api/v1/archive", req)
	return data, err
}

func (c *Client) FetchImage(imageURL, accept string) ([]byte, string, error) {
	return c.postRaw("/api/v1/fetch-image", FetchImageRequest{ImageURL: imageURL, Accept: accept})
}

func (c *Client) Status() (*StatusResponse, error) {
	var resp StatusResponse
	if err := c.get("/api/v1/status", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Consoles() ([]ConsoleResponse, error) {
	var resp []ConsoleResponse
	if err := c.get("/api/v1/consoles", &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) Categories() ([]CategoryResponse, error) {
	var resp []CategoryResponse
	if err := c.get("/api/v1/categories", &resp); err != nil {
		return nil, err
	}
	return resp, nil
}
