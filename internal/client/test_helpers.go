package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/helpdesk-io/zdclient/internal/http"
	"github.com/helpdesk-io/zdclient/pkg/zendesk"
)

// NewTestClient creates a client without credentials for testing.
func NewTestClient(baseURL string) *Client {
	httpClient := internalhttp.NewClient(baseURL, "")

	client := &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
	}

	client.initializeResourceClients()

	return client
}

// TestListOperation represents a generic list operation test case.
type TestListOperation[T any] struct {
	Name          string
	Params        zendesk.Params
	ExpectedPath  string
	ExpectedQuery string
	PluralField   string
	Resources     []T
	StatusCode    int
	RawResponse   string
	WantErr       bool
	ErrMessage    string
}

// RunListTests runs a series of list operation tests.
func RunListTests[T any](
	t *testing.T,
	tests []TestListOperation[T],
	listFunc func(*Client) zendesk.OperationSet[T],
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.ExpectedPath, request.URL.Path)
				assert.Equal(t, "GET", request.Method)

				if testCase.ExpectedQuery != "" {
					assert.Equal(t, testCase.ExpectedQuery, request.URL.RawQuery)
				}

				writer.Header().Set("Content-Type", "application/json")

				if testCase.StatusCode != 0 {
					writer.WriteHeader(testCase.StatusCode)
				}

				if testCase.RawResponse != "" {
					_, _ = writer.Write([]byte(testCase.RawResponse))

					return
				}

				_ = json.NewEncoder(writer).Encode(map[string]interface{}{
					testCase.PluralField: testCase.Resources,
				})
			}))
			defer server.Close()

			client := NewTestClient(server.URL)

			result, err := listFunc(client).List(context.Background(), testCase.Params)

			if testCase.WantErr {
				require.Error(t, err)

				if testCase.ErrMessage != "" {
					assert.Contains(t, err.Error(), testCase.ErrMessage)
				}

				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				assert.Len(t, result, len(testCase.Resources))
			}
		})
	}
}

// TestShowOperation represents a generic show operation test case.
type TestShowOperation[T any] struct {
	Name         string
	ID           int64
	ExpectedPath string
	Response     string
	StatusCode   int
	WantErr      bool
	ErrMessage   string
}

// RunShowTests runs a series of show operation tests.
func RunShowTests[T any](
	t *testing.T,
	tests []TestShowOperation[T],
	showFunc func(*Client) zendesk.OperationSet[T],
	validate func(*testing.T, *T),
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.ExpectedPath, request.URL.Path)
				assert.Equal(t, "GET", request.Method)

				writer.Header().Set("Content-Type", "application/json")

				if testCase.StatusCode != 0 {
					writer.WriteHeader(testCase.StatusCode)
				}

				_, _ = writer.Write([]byte(testCase.Response))
			}))
			defer server.Close()

			client := NewTestClient(server.URL)

			result, err := showFunc(client).Show(context.Background(), testCase.ID, nil)

			if testCase.WantErr {
				require.Error(t, err)

				if testCase.ErrMessage != "" {
					assert.Contains(t, err.Error(), testCase.ErrMessage)
				}

				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				require.NotNil(t, result)

				if validate != nil {
					validate(t, result)
				}
			}
		})
	}
}

// TestMutateOperation represents a generic create or update operation test
// case.
type TestMutateOperation[T any] struct {
	Name          string
	ID            int64
	Attrs         *T
	SingularField string
	ExpectedPath  string
	StatusCode    int
	Response      string
	WantErr       bool
	ErrMessage    string
}

// RunCreateTests runs a series of create operation tests, asserting that the
// request body nests the attributes under the singular field.
func RunCreateTests[T any](
	t *testing.T,
	tests []TestMutateOperation[T],
	createFunc func(*Client) zendesk.OperationSet[T],
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.ExpectedPath, request.URL.Path)
				assert.Equal(t, "POST", request.Method)

				var body map[string]json.RawMessage

				err := json.NewDecoder(request.Body).Decode(&body)
				assert.NoError(t, err)
				assert.Contains(t, body, testCase.SingularField)

				writer.Header().Set("Content-Type", "application/json")

				if testCase.StatusCode != 0 {
					writer.WriteHeader(testCase.StatusCode)
				}

				_, _ = writer.Write([]byte(testCase.Response))
			}))
			defer server.Close()

			client := NewTestClient(server.URL)

			result, err := createFunc(client).Create(context.Background(), testCase.Attrs)

			if testCase.WantErr {
				require.Error(t, err)

				if testCase.ErrMessage != "" {
					assert.Contains(t, err.Error(), testCase.ErrMessage)
				}

				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				require.NotNil(t, result)
			}
		})
	}
}

// RunUpdateTests runs a series of update operation tests.
func RunUpdateTests[T any](
	t *testing.T,
	tests []TestMutateOperation[T],
	updateFunc func(*Client) zendesk.OperationSet[T],
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.ExpectedPath, request.URL.Path)
				assert.Equal(t, "PUT", request.Method)

				var body map[string]json.RawMessage

				err := json.NewDecoder(request.Body).Decode(&body)
				assert.NoError(t, err)
				assert.Contains(t, body, testCase.SingularField)

				writer.Header().Set("Content-Type", "application/json")

				if testCase.StatusCode != 0 {
					writer.WriteHeader(testCase.StatusCode)
				}

				_, _ = writer.Write([]byte(testCase.Response))
			}))
			defer server.Close()

			client := NewTestClient(server.URL)

			result, err := updateFunc(client).Update(context.Background(), testCase.ID, testCase.Attrs)

			if testCase.WantErr {
				require.Error(t, err)

				if testCase.ErrMessage != "" {
					assert.Contains(t, err.Error(), testCase.ErrMessage)
				}

				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				require.NotNil(t, result)
			}
		})
	}
}

// TestDeleteOperation represents a generic delete operation test case.
type TestDeleteOperation struct {
	Name         string
	ID           int64
	ExpectedPath string
	StatusCode   int
	Response     string
	WantErr      bool
	ErrMessage   string
}

// RunDeleteTests runs a series of delete operation tests.
func RunDeleteTests[T any](
	t *testing.T,
	tests []TestDeleteOperation,
	deleteFunc func(*Client) zendesk.OperationSet[T],
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.ExpectedPath, request.URL.Path)
				assert.Equal(t, "DELETE", request.Method)

				if testCase.StatusCode != 0 {
					writer.WriteHeader(testCase.StatusCode)
				}

				if testCase.Response != "" {
					_, _ = writer.Write([]byte(testCase.Response))
				}
			}))
			defer server.Close()

			client := NewTestClient(server.URL)

			envelope, err := deleteFunc(client).Delete(context.Background(), testCase.ID)

			if testCase.WantErr {
				require.Error(t, err)

				if testCase.ErrMessage != "" {
					assert.Contains(t, err.Error(), testCase.ErrMessage)
				}
			} else {
				require.NoError(t, err)
				assert.NotNil(t, envelope)
			}
		})
	}
}
