package application

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/crewbase/account-service/internal/domain/entity"
)

// DirectoryService mirrors users into Elasticsearch for the employee
// directory. Indexing is best effort: a failure is logged and never blocks
// the lifecycle operation that triggered it.
type DirectoryService struct {
	ES     *elasticsearch.Client
	Index  string
	Logger *logrus.Logger
}

func NewDirectoryService(es *elasticsearch.Client, index string, logger *logrus.Logger) *DirectoryService {
	return &DirectoryService{ES: es, Index: index, Logger: logger}
}

// IndexUser upserts the user's directory document. Passwords are never
// indexed.
func (d *DirectoryService) IndexUser(ctx context.Context, u *entity.User) error {
	if d == nil || d.ES == nil || d.Index == "" {
		return nil
	}
	doc := map[string]any{
		"id":          u.ID,
		"username":    u.Credentials.Username,
		"first_name":  u.Profile.FirstName,
		"last_name":   u.Profile.LastName,
		"email":       u.Profile.Email,
		"active":      u.Active,
		"status":      string(u.Status),
		"is_admin":    u.IsAdmin,
		"company_ids": u.CompanyIDs,
		"updated_at":  time.Now().UTC().Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{
		Index:      d.Index,
		DocumentID: strconv.FormatInt(u.ID, 10),
		Body:       strings.NewReader(string(b)),
		Refresh:    "false",
	}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, d.ES)
	if err != nil {
		if d.Logger != nil {
			d.Logger.WithError(err).WithField("user_id", u.ID).Warn("directory index failed")
		}
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && d.Logger != nil {
		d.Logger.WithField("status", res.Status()).WithField("user_id", u.ID).Warn("directory index response error")
	}
	return nil
}

// Search runs a multi_match query over username, name, and email fields.
func (d *DirectoryService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if d == nil || d.ES == nil || d.Index == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"username^2", "email^2", "first_name", "last_name"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := d.ES.Search(
		d.ES.Search.WithContext(c),
		d.ES.Search.WithIndex(d.Index),
		d.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
