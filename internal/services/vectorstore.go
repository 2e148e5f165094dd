package services

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strconv"

	"github.com/qdrant/go-client/qdrant"
)

// VectorStoreService keeps resume embeddings in Qdrant so repeated analyses
// and "similar resumes" lookups don't re-embed unchanged documents. Ranking
// itself never reads from here; it always embeds fresh via the provider.
type VectorStoreService interface {
	InitCollection() error
	UpsertResume(ctx context.Context, resumeID, ownerEmail, filename string, embedding []float32) error
	SearchSimilar(ctx context.Context, queryEmbedding []float32, ownerEmail string, limit int) ([]ResumeMatch, error)
	DeleteResume(ctx context.Context, resumeID string) error
}

type ResumeMatch struct {
	ResumeID string
	Filename string
	Score    float32
}

type vectorStoreService struct {
	client         *qdrant.Client
	collectionName string
	vectorSize     uint64
}

func NewVectorStoreService(urlStr, apiKey, collectionName string) (VectorStoreService, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}

	host := parsed.Hostname()
	useTLS := parsed.Scheme == "https"

	// gRPC client defaults to 6334
	port := 6334
	if p := parsed.Port(); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: apiKey,
		UseTLS: useTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}

	return &vectorStoreService{
		client:         client,
		collectionName: collectionName,
		vectorSize:     768, // text-embedding-004 output size
	}, nil
}

// InitCollection implements VectorStoreService.
func (v *vectorStoreService) InitCollection() error {
	ctx := context.Background()

	exists, err := v.client.CollectionExists(ctx, v.collectionName)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}

	if exists {
		log.Println("✅ Qdrant collection already exists")
		return nil
	}

	err = v.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: v.collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     v.vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	log.Printf("✅ Qdrant collection '%s' created successfully\n", v.collectionName)
	return nil
}

// UpsertResume implements VectorStoreService. The resume UUID doubles as the
// point ID so re-uploads overwrite instead of duplicating.
func (v *vectorStoreService) UpsertResume(ctx context.Context, resumeID, ownerEmail, filename string, embedding []float32) error {
	point := &qdrant.PointStruct{
		Id:      qdrant.NewID(resumeID),
		Vectors: qdrant.NewVectors(embedding...),
		Payload: qdrant.NewValueMap(map[string]interface{}{
			"resume_id": resumeID,
			"owner":     ownerEmail,
			"filename":  filename,
		}),
	}

	_, err := v.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: v.collectionName,
		Points:         []*qdrant.PointStruct{point},
	})
	if err != nil {
		return fmt.Errorf("failed to upsert resume embedding: %w", err)
	}

	return nil
}

// SearchSimilar implements VectorStoreService.
func (v *vectorStoreService) SearchSimilar(ctx context.Context, queryEmbedding []float32, ownerEmail string, limit int) ([]ResumeMatch, error) {
	var filter *qdrant.Filter
	if ownerEmail != "" {
		filter = &qdrant.Filter{
			Must: []*qdrant.Condition{
				qdrant.NewMatch("owner", ownerEmail),
			},
		}
	}

	searchResult, err := v.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: v.collectionName,
		Query:          qdrant.NewQuery(queryEmbedding...),
		Filter:         filter,
		Limit:          qdrant.PtrOf(uint64(limit)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search: %w", err)
	}

	var matches []ResumeMatch
	for _, point := range searchResult {
		match := ResumeMatch{Score: point.Score}

		if id, ok := point.Payload["resume_id"]; ok {
			if val, ok := id.GetKind().(*qdrant.Value_StringValue); ok {
				match.ResumeID = val.StringValue
			}
		}
		if name, ok := point.Payload["filename"]; ok {
			if val, ok := name.GetKind().(*qdrant.Value_StringValue); ok {
				match.Filename = val.StringValue
			}
		}

		matches = append(matches, match)
	}

	return matches, nil
}

// DeleteResume implements VectorStoreService.
func (v *vectorStoreService) DeleteResume(ctx context.Context, resumeID string) error {
	filter := &qdrant.Filter{
		Must: []*qdrant.Condition{
			qdrant.NewMatch("resume_id", resumeID),
		},
	}

	_, err := v.client.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: v.collectionName,
		Points: &qdrant.PointsSelector{
			PointsSelectorOneOf: &qdrant.PointsSelector_Filter{
				Filter: filter,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to delete resume embedding: %w", err)
	}

	return nil
}
