package proto

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/savebank/internal/store"
	"google.golang.org/protobuf/types/known/structpb"
)

// Field names of the request and response structs.
const (
	FieldPath    = "path"
	FieldValue   = "value"
	FieldOrderBy = "order_by"
	FieldKey     = "key"
)

var ErrMalformed = errors.New("malformed message")

// NewPushRequest encodes a Push call.
func NewPushRequest(path string, fields store.Fields) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		FieldPath:  path,
		FieldValue: map[string]any(fields),
	})
}

// ParsePushRequest decodes a Push call.
func ParsePushRequest(s *structpb.Struct) (string, store.Fields, error) {
	m := s.AsMap()
	path, ok := m[FieldPath].(string)
	if !ok {
		return "", nil, fmt.Errorf("%w: %s must be a string", ErrMalformed, FieldPath)
	}
	value, ok := m[FieldValue].(map[string]any)
	if !ok {
		return "", nil, fmt.Errorf("%w: %s must be an object", ErrMalformed, FieldValue)
	}
	return path, store.Fields(value), nil
}

// NewGetRequest encodes a Get call.
func NewGetRequest(q store.Query) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		FieldPath:    q.Path,
		FieldOrderBy: q.OrderBy,
	})
}

// ParseGetRequest decodes a Get call. A missing order_by means key order.
func ParseGetRequest(s *structpb.Struct) (store.Query, error) {
	m := s.AsMap()
	path, ok := m[FieldPath].(string)
	if !ok {
		return store.Query{}, fmt.Errorf("%w: %s must be a string", ErrMalformed, FieldPath)
	}
	q := store.NewQuery(path)
	if ob, ok := m[FieldOrderBy].(string); ok {
		q = q.OrderByChild(ob)
	}
	return q, nil
}

// NewGetResponse encodes the children of snap in snapshot order.
func NewGetResponse(snap *store.Snapshot) (*structpb.ListValue, error) {
	items := make([]any, 0, snap.Len())
	snap.ForEach(func(c store.Child) bool {
		items = append(items, map[string]any{
			FieldKey:   c.Key,
			FieldValue: map[string]any(c.Value),
		})
		return false
	})
	return structpb.NewList(items)
}

// ParseGetResponse decodes a Get reply into a snapshot ordered by q.
func ParseGetResponse(l *structpb.ListValue, q store.Query) (*store.Snapshot, error) {
	children := make([]store.Child, 0, len(l.GetValues()))
	for i, v := range l.GetValues() {
		sv := v.GetStructValue()
		if sv == nil {
			return nil, fmt.Errorf("%w: item %d is not an object", ErrMalformed, i)
		}
		m := sv.AsMap()
		key, ok := m[FieldKey].(string)
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: item %d has no key", ErrMalformed, i)
		}
		value, _ := m[FieldValue].(map[string]any)
		children = append(children, store.Child{Key: key, Value: store.Fields(value)})
	}
	return store.NewSnapshot(q, children), nil
}
