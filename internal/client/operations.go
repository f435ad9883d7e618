package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/helpdesk-io/zdclient/internal/http"
	"github.com/helpdesk-io/zdclient/pkg/zendesk"
)

// Operations provides the six uniform operations for one resource type bound
// to one URL prefix. The same type backs every resource; only the descriptor
// and prefix differ. It is stateless beyond its bindings and safe for
// concurrent use.
type Operations[T any] struct {
	httpClient *http.Client
	desc       zendesk.Descriptor
	prefix     string
}

// NewOperations creates an operation set for a top-level resource.
func NewOperations[T any](httpClient *http.Client, desc zendesk.Descriptor) *Operations[T] {
	return &Operations[T]{
		httpClient: httpClient,
		desc:       desc,
	}
}

// NewNestedOperations creates an operation set for a resource scoped under
// one parent instance, e.g. the comments of ticket 7 at /tickets/7/comments.
func NewNestedOperations[T any](httpClient *http.Client, desc zendesk.Descriptor, parentPath string, parentID int64) *Operations[T] {
	return &Operations[T]{
		httpClient: httpClient,
		desc:       desc,
		prefix:     "/" + parentPath + "/" + strconv.FormatInt(parentID, 10),
	}
}

func (o *Operations[T]) collectionPath() string {
	return o.prefix + "/" + o.desc.Path + ".json"
}

func (o *Operations[T]) memberPath(id int64) string {
	return o.prefix + "/" + o.desc.Path + "/" + strconv.FormatInt(id, 10) + ".json"
}

func (o *Operations[T]) showManyPath() string {
	return o.prefix + "/" + o.desc.Path + "/show_many.json"
}

// List retrieves one page of the collection.
func (o *Operations[T]) List(ctx context.Context, params zendesk.Params) ([]T, error) {
	resp, err := o.httpClient.Get(ctx, o.collectionPath(), params.Values())
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", o.desc.Plural, err)
	}

	return o.unwrapCollection(resp.Body)
}

// Show retrieves a single resource by identifier.
func (o *Operations[T]) Show(ctx context.Context, id int64, params zendesk.Params) (*T, error) {
	resp, err := o.httpClient.Get(ctx, o.memberPath(id), params.Values())
	if err != nil {
		return nil, fmt.Errorf("getting %s %d: %w", o.desc.Singular, id, err)
	}

	return o.unwrapMember(resp.Body)
}

// ShowMany retrieves the named resources in a single request. The ids are
// serialized comma-joined under "ids", overriding any caller-supplied value
// for that key.
func (o *Operations[T]) ShowMany(ctx context.Context, ids []int64, params zendesk.Params) ([]T, error) {
	query := params.Clone().With("ids", zendesk.JoinIDs(ids))

	resp, err := o.httpClient.Get(ctx, o.showManyPath(), query.Values())
	if err != nil {
		return nil, fmt.Errorf("getting %s by ids: %w", o.desc.Plural, err)
	}

	return o.unwrapCollection(resp.Body)
}

// Create posts the attributes wrapped under the singular envelope field.
func (o *Operations[T]) Create(ctx context.Context, attrs *T) (*T, error) {
	resp, err := o.httpClient.Post(ctx, o.collectionPath(), o.wrap(attrs))
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", o.desc.Singular, err)
	}

	return o.unwrapMember(resp.Body)
}

// Update puts the attributes wrapped under the singular envelope field.
func (o *Operations[T]) Update(ctx context.Context, id int64, attrs *T) (*T, error) {
	resp, err := o.httpClient.Put(ctx, o.memberPath(id), o.wrap(attrs))
	if err != nil {
		return nil, fmt.Errorf("updating %s %d: %w", o.desc.Singular, id, err)
	}

	return o.unwrapMember(resp.Body)
}

// Delete removes a resource. Delete responses carry no named envelope field,
// so the raw (typically empty) envelope is returned unwrapped.
func (o *Operations[T]) Delete(ctx context.Context, id int64) (zendesk.Envelope, error) {
	resp, err := o.httpClient.Delete(ctx, o.memberPath(id))
	if err != nil {
		return nil, fmt.Errorf("deleting %s %d: %w", o.desc.Singular, id, err)
	}

	return o.decodeEnvelope(resp.Body)
}

func (o *Operations[T]) wrap(attrs *T) map[string]interface{} {
	return map[string]interface{}{o.desc.Singular: attrs}
}

// decodeEnvelope parses the response body into the raw envelope. An empty
// body (a 204 delete) decodes to the empty envelope.
func (o *Operations[T]) decodeEnvelope(body []byte) (zendesk.Envelope, error) {
	if len(body) == 0 {
		return zendesk.Envelope{}, nil
	}

	var envelope zendesk.Envelope

	err := json.Unmarshal(body, &envelope)
	if err != nil {
		return nil, &zendesk.MalformedResponseError{Err: err}
	}

	return envelope, nil
}

func (o *Operations[T]) unwrapMember(body []byte) (*T, error) {
	envelope, err := o.decodeEnvelope(body)
	if err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", o.desc.Singular, err)
	}

	raw, ok := envelope[o.desc.Singular]
	if !ok {
		return nil, &zendesk.ShapeError{Field: o.desc.Singular}
	}

	var resource T

	err = json.Unmarshal(raw, &resource)
	if err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", o.desc.Singular, &zendesk.MalformedResponseError{Err: err})
	}

	return &resource, nil
}

func (o *Operations[T]) unwrapCollection(body []byte) ([]T, error) {
	envelope, err := o.decodeEnvelope(body)
	if err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", o.desc.Plural, err)
	}

	raw, ok := envelope[o.desc.Plural]
	if !ok {
		return nil, &zendesk.ShapeError{Field: o.desc.Plural}
	}

	var resources []T

	err = json.Unmarshal(raw, &resources)
	if err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", o.desc.Plural, &zendesk.MalformedResponseError{Err: err})
	}

	return resources, nil
}
