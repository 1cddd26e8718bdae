package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// apiClient is a thin wrapper over the Gambit REST API. Responses use the
// {"data": ...} envelope; failures are RFC 9457 Problem Details.
type apiClient struct {
	baseURL string
	token   string
	http    *http.Client
}

// dataEnvelope matches the API's success envelope
type dataEnvelope struct {
	Data       json.RawMessage `json:"data"`
	Pagination *paginationInfo `json:"pagination,omitempty"`
}

type paginationInfo struct {
	Cursor  string `json:"cursor,omitempty"`
	HasMore bool   `json:"has_more"`
}

// problemDetails matches the API's error body
type problemDetails struct {
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
	Errors []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"errors,omitempty"`
}

// newClient resolves the API base URL and token from flags, falling back to
// the config file for anything not overridden
func newClient(cmd *cobra.Command) (*apiClient, error) {
	baseURL, _ := cmd.Flags().GetString("api")
	token, _ := cmd.Flags().GetString("token")

	if baseURL == "" || token == "" {
		config, err := LoadConfig()
		if err != nil {
			return nil, err
		}
		if baseURL == "" {
			baseURL = config.APIURL
		}
		if token == "" {
			token = config.Token
		}
	}

	if baseURL == "" {
		return nil, fmt.Errorf("no API URL configured; set api_url in %s or pass --api", GetConfigFilePath())
	}

	return &apiClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// get performs a GET request and decodes the data envelope into out
func (c *apiClient) get(path string, out interface{}) error {
	_, err := c.do(http.MethodGet, path, nil, out)
	return err
}

// getPage performs a GET request and returns pagination info alongside the data
func (c *apiClient) getPage(path string, out interface{}) (*paginationInfo, error) {
	return c.do(http.MethodGet, path, nil, out)
}

// post performs a POST request with a JSON body and decodes the data envelope
// into out; body and out may each be nil
func (c *apiClient) post(path string, body, out interface{}) error {
	_, err := c.do(http.MethodPost, path, body, out)
	return err
}

func (c *apiClient) do(method, path string, body, out interface{}) (*paginationInfo, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("error encoding request: %v", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error calling API: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %v", err)
	}

	if resp.StatusCode >= 400 {
		return nil, decodeProblem(resp.StatusCode, respBody)
	}

	if out == nil || len(respBody) == 0 {
		return nil, nil
	}

	var envelope dataEnvelope
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return nil, fmt.Errorf("error decoding response: %v", err)
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return nil, fmt.Errorf("error decoding response data: %v", err)
	}

	return envelope.Pagination, nil
}

// decodeProblem turns a Problem Details body into a readable error
func decodeProblem(status int, body []byte) error {
	var problem problemDetails
	if err := json.Unmarshal(body, &problem); err != nil || problem.Title == "" {
		return fmt.Errorf("API error: %s", http.StatusText(status))
	}

	msg := problem.Title
	if problem.Detail != "" {
		msg = problem.Detail
	}
	if len(problem.Errors) > 0 {
		var fields []string
		for _, fe := range problem.Errors {
			fields = append(fields, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
		}
		return fmt.Errorf("%s (%s)", msg, strings.Join(fields, "; "))
	}

	return fmt.Errorf("%s", msg)
}
