package highscore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/fadedpez/wildcatblackjack/pkg/entities"
)

const (
	DefaultElasticsearchIndex = "wildcat_highscore"
	highScoreDocumentID       = "current"
)

// ElasticsearchConfig holds configuration options for the Elasticsearch repository
type ElasticsearchConfig struct {
	URL      string
	Username string
	Password string
	Index    string
}

// ElasticsearchRepository keeps the record as a single document
type ElasticsearchRepository struct {
	client *elasticsearch.Client
	index  string
}

type highScoreDocument struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

type getResponse struct {
	Found  bool              `json:"found"`
	Source highScoreDocument `json:"_source"`
}

// NewElasticsearchRepository creates the client and the index if needed
func NewElasticsearchRepository(ctx context.Context, config ElasticsearchConfig) (*ElasticsearchRepository, error) {
	cfg := elasticsearch.Config{
		Addresses: []string{config.URL},
	}

	// Add authentication if provided
	if config.Username != "" && config.Password != "" {
		cfg.Username = config.Username
		cfg.Password = config.Password
	}

	client, err := elasticsearch.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("error creating Elasticsearch client: %w", err)
	}

	if config.Index == "" {
		config.Index = DefaultElasticsearchIndex
	}

	repo := &ElasticsearchRepository{
		client: client,
		index:  config.Index,
	}

	if err := repo.initIndex(ctx); err != nil {
		return nil, fmt.Errorf("error initializing index: %w", err)
	}

	return repo, nil
}

// initIndex creates the index if it doesn't exist
func (r *ElasticsearchRepository) initIndex(ctx context.Context) error {
	res, err := r.client.Indices.Exists([]string{r.index}, r.client.Indices.Exists.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("error checking if index exists: %w", err)
	}
	res.Body.Close()

	if res.StatusCode != http.StatusNotFound {
		return nil
	}

	mapping := `{
		"mappings": {
			"properties": {
				"name": { "type": "keyword" },
				"score": { "type": "integer" }
			}
		}
	}`

	req := esapi.IndicesCreateRequest{
		Index: r.index,
		Body:  bytes.NewReader([]byte(mapping)),
	}

	res, err = req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("error creating index: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error creating index: %s", res.String())
	}
	return nil
}

// Load implements Repository
func (r *ElasticsearchRepository) Load(ctx context.Context) (*entities.HighScore, error) {
	res, err := r.client.Get(r.index, highScoreDocumentID, r.client.Get.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("error loading high score: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return &entities.HighScore{}, nil
	}
	if res.IsError() {
		return nil, fmt.Errorf("error loading high score: %s", res.String())
	}

	var doc getResponse
	if err := json.NewDecoder(res.Body).Decode(&doc); err != nil || !doc.Found {
		return &entities.HighScore{}, nil
	}
	return &entities.HighScore{Name: doc.Source.Name, Score: doc.Source.Score}, nil
}

// Save implements Repository
func (r *ElasticsearchRepository) Save(ctx context.Context, score *entities.HighScore) error {
	body, err := json.Marshal(highScoreDocument{Name: score.Name, Score: score.Score})
	if err != nil {
		return fmt.Errorf("error encoding high score: %w", err)
	}

	res, err := r.client.Index(
		r.index,
		bytes.NewReader(body),
		r.client.Index.WithDocumentID(highScoreDocumentID),
		r.client.Index.WithContext(ctx),
		r.client.Index.WithRefresh("true"),
	)
	if err != nil {
		return fmt.Errorf("error saving high score: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error saving high score: %s", res.String())
	}
	return nil
}

// Close implements Repository
func (r *ElasticsearchRepository) Close() error {
	return nil
}
