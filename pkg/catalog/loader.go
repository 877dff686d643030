package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"time"

	"dispensa-backend/domain"
	"dispensa-backend/internal/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	gocache "github.com/patrickmn/go-cache"
)

// Recipe is one catalog entry as published in the static catalog file.
type Recipe struct {
	Title                  string                    `json:"title"`
	Description            string                    `json:"description,omitempty"`
	ImageURL               string                    `json:"image_url,omitempty"`
	Servings               int                       `json:"servings"`
	CookingTimeMinutes     int                       `json:"cooking_time_minutes"`
	Difficulty             string                    `json:"difficulty,omitempty"`
	Ingredients            []domain.RecipeIngredient `json:"ingredients,omitempty"`
	NutritionFacts         domain.NutritionFacts     `json:"nutrition_facts,omitempty"`
	IngredientAvailability *int                      `json:"ingredient_availability,omitempty"`
}

type (
	// Loader fetches the published recipe catalog. Load is best effort:
	// a fetch failure falls back to the bundled seed catalog rather than
	// erroring, and the parsed result is cached for a short TTL.
	Loader interface {
		Load(ctx context.Context) ([]Recipe, string, error)
	}

	s3Loader struct {
		client *s3.Client
		bucket string
		key    string
		cache  *gocache.Cache
	}
)

const (
	cacheKey = "catalog"
	cacheTTL = 10 * time.Minute

	SourceRemote = "s3"
	SourceSeed   = "seed"
)

func NewLoader() Loader {
	cfg, err := awsconfig.LoadDefaultConfig(
		context.Background(),
		awsconfig.WithRegion(utils.GetConfig("AWS_S3_REGION")),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			utils.GetConfig("AWS_ACCESS_KEY"),
			utils.GetConfig("AWS_SECRET_KEY"),
			"",
		)),
	)
	var client *s3.Client
	if err != nil {
		log.Printf("catalog: AWS config unavailable, using seed catalog only: %v", err)
	} else {
		client = s3.NewFromConfig(cfg)
	}

	return &s3Loader{
		client: client,
		bucket: utils.GetConfig("CATALOG_BUCKET"),
		key:    utils.GetConfig("CATALOG_OBJECT_KEY"),
		cache:  gocache.New(cacheTTL, 2*cacheTTL),
	}
}

func (l *s3Loader) Load(ctx context.Context) ([]Recipe, string, error) {
	if cached, ok := l.cache.Get(cacheKey); ok {
		if recipes, ok := cached.([]Recipe); ok {
			return recipes, SourceRemote, nil
		}
	}

	if recipes, err := l.fetchRemote(ctx); err == nil {
		l.cache.Set(cacheKey, recipes, gocache.DefaultExpiration)
		return recipes, SourceRemote, nil
	} else {
		log.Printf("catalog: remote fetch failed, falling back to seed: %v", err)
	}

	recipes, err := seedCatalog()
	if err != nil {
		return nil, "", err
	}
	return recipes, SourceSeed, nil
}

func (l *s3Loader) fetchRemote(ctx context.Context) ([]Recipe, error) {
	if l.client == nil || l.bucket == "" || l.key == "" {
		return nil, fmt.Errorf("catalog bucket not configured")
	}

	out, err := l.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(l.bucket),
		Key:    aws.String(l.key),
	})
	if err != nil {
		return nil, err
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, err
	}

	var recipes []Recipe
	if err := json.Unmarshal(data, &recipes); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return recipes, nil
}
