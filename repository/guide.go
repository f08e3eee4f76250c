package repository

import (
	"context"
	"os"

	"github.com/Lasya-02/Mama-Sync/model"
	"github.com/Lasya-02/Mama-Sync/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type GuideRepo struct {
	MongoCollection *mongo.Collection
}

func GetGuideRepo(client *mongo.Client) *GuideRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := utils.GetEnvAsString("GUIDE_COLLECTION", "guide")
	return &GuideRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// ListGuides returns id and title of every guide document.
func (r *GuideRepo) ListGuides(ctx context.Context) ([]*model.GuideSummary, error) {
	timer := utils.TrackDBOperation("find", "guide")
	defer timer.ObserveDuration()

	opts := options.Find().SetProjection(bson.M{"_id": 1, "title": 1})

	cursor, err := r.MongoCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		utils.TrackError("database", "guide_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var guides []*model.GuideSummary
	if err = cursor.All(ctx, &guides); err != nil {
		utils.TrackError("database", "guide_decode_failed")
		return nil, err
	}
	return guides, nil
}

// FindGuide returns one guide document with its full body.
func (r *GuideRepo) FindGuide(ctx context.Context, guideID string) (*model.Guide, error) {
	timer := utils.TrackDBOperation("find", "guide")
	defer timer.ObserveDuration()

	var guide model.Guide
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": guideID}).Decode(&guide)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		utils.TrackError("database", "guide_fetch_failed")
		return nil, err
	}
	return &guide, nil
}
