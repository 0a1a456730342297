// Package ollamafake ollamaclient.Provider в памяти для тестов
package ollamafake

import (
	"context"
	"sync"

	ollamaclient "devassist-backend/lib/ai/ollama"
	ollamamodels "devassist-backend/models/api/ollama"
)

type Client struct {
	mu       sync.Mutex
	Answer   string
	Err      error
	Requests []ollamaclient.GenerateRequest
	Models   []ollamamodels.ModelInfo
}

func New(answer string) *Client {
	return &Client{Answer: answer}
}

func (c *Client) Generate(ctx context.Context, req ollamaclient.GenerateRequest) (ollamaclient.GenerationResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Requests = append(c.Requests, req)
	if c.Err != nil {
		return ollamaclient.GenerationResult{}, c.Err
	}
	return ollamaclient.GenerationResult{Text: c.Answer, Model: req.Model}, nil
}

func (c *Client) Tags(ctx context.Context) (ollamamodels.TagsResponse, error) {
	if c.Err != nil {
		return ollamamodels.TagsResponse{}, c.Err
	}
	return ollamamodels.TagsResponse{Models: c.Models}, nil
}

func (c *Client) Show(ctx context.Context, name string) (ollamamodels.ShowResponse, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	return ollamamodels.ShowResponse{"name": name}, nil
}

func (c *Client) BaseURL() string {
	return "http://fake-ollama"
}

func (c *Client) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.Requests)
}

func (c *Client) LastRequest() ollamaclient.GenerateRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.Requests) == 0 {
		return ollamaclient.GenerateRequest{}
	}
	return c.Requests[len(c.Requests)-1]
}
