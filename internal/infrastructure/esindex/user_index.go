package esindex

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/oksasatya/go-users-tasks-api/internal/domain/entity"
)

const requestTimeout = 3 * time.Second

// UserIndex keeps a full-text copy of user projections in Elasticsearch.
// It is never the system of record.
type UserIndex struct {
	es    *elasticsearch.Client
	index string
}

func NewUserIndex(es *elasticsearch.Client, index string) *UserIndex {
	return &UserIndex{es: es, index: index}
}

const usersMapping = `{
  "mappings": {
    "properties": {
      "id":         {"type": "keyword"},
      "name":       {"type": "text"},
      "email":      {"type": "text", "fields": {"raw": {"type": "keyword"}}},
      "avatar_url": {"type": "keyword", "index": false},
      "created_at": {"type": "date"},
      "updated_at": {"type": "date"}
    }
  }
}`

// EnsureIndex creates the index with its mapping when it does not exist yet.
func (x *UserIndex) EnsureIndex(ctx context.Context) error {
	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	res, err := esapi.IndicesExistsRequest{Index: []string{x.index}}.Do(c, x.es)
	if err != nil {
		return err
	}
	_ = res.Body.Close()
	switch {
	case res.StatusCode == http.StatusOK:
		return nil
	case res.StatusCode != http.StatusNotFound:
		return fmt.Errorf("es exists %s: %s", x.index, res.Status())
	}

	res, err = esapi.IndicesCreateRequest{Index: x.index, Body: strings.NewReader(usersMapping)}.Do(c, x.es)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return fmt.Errorf("es create %s: %s", x.index, res.Status())
	}
	return nil
}

func (x *UserIndex) Index(ctx context.Context, v entity.UserView) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req := esapi.IndexRequest{Index: x.index, DocumentID: v.ID, Body: bytes.NewReader(b), Refresh: "false"}
	res, err := req.Do(c, x.es)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return fmt.Errorf("es index %s: %s", v.ID, res.Status())
	}
	return nil
}

func (x *UserIndex) Remove(ctx context.Context, id string) error {
	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req := esapi.DeleteRequest{Index: x.index, DocumentID: id}
	res, err := req.Do(c, x.es)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && res.StatusCode != http.StatusNotFound {
		return fmt.Errorf("es delete %s: %s", id, res.Status())
	}
	return nil
}

// Search runs a multi_match on email and name.
func (x *UserIndex) Search(ctx context.Context, q string, size int) ([]entity.UserView, error) {
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"email^2", "name"},
			},
		},
		"size": size,
	}
	b, err := json.Marshal(query)
	if err != nil {
		return nil, err
	}

	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	res, err := x.es.Search(
		x.es.Search.WithContext(c),
		x.es.Search.WithIndex(x.index),
		x.es.Search.WithBody(bytes.NewReader(b)),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return nil, fmt.Errorf("es search: %s", res.Status())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				Source entity.UserView `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]entity.UserView, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
