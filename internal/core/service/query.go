package service

import (
	"fmt"

	"github.com/itchyny/gojq"

	"github.com/olusolaa/aws-config-snapshot/internal/core/domain"
)

// query is a compiled jq program evaluated against response documents.
type query struct {
	src  string
	code *gojq.Code
}

func mustCompile(src string) *query {
	parsed, err := gojq.Parse(src)
	if err != nil {
		panic(fmt.Sprintf("invalid query %q: %v", src, err))
	}
	code, err := gojq.Compile(parsed)
	if err != nil {
		panic(fmt.Sprintf("invalid query %q: %v", src, err))
	}
	return &query{src: src, code: code}
}

// all returns every value the program emits for doc.
func (q *query) all(doc domain.Document) ([]any, error) {
	var out []any
	iter := q.code.Run(map[string]any(doc))
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, isErr := v.(error); isErr {
			return nil, fmt.Errorf("query %s: %w", q.src, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// strings is all restricted to non-empty string results.
func (q *query) strings(doc domain.Document) ([]string, error) {
	values, err := q.all(doc)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out, nil
}
