package repository

import (
	"context"
	"os"
	"time"

	"github.com/Lasya-02/Mama-Sync/model"
	"github.com/Lasya-02/Mama-Sync/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ForumRepo struct {
	MongoCollection *mongo.Collection
}

func GetForumRepo(client *mongo.Client) *ForumRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := utils.GetEnvAsString("FORUM_COLLECTION", "forum_posts")
	return &ForumRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// CreatePost inserts a new post with an empty reply list and returns the
// generated id.
func (r *ForumRepo) CreatePost(ctx context.Context, post *model.ForumPost) (string, error) {
	timer := utils.TrackDBOperation("insert", "forum_posts")
	defer timer.ObserveDuration()

	post.CreatedAt = time.Now().UTC()
	if post.Replies == nil {
		post.Replies = []model.Reply{}
	}

	result, err := r.MongoCollection.InsertOne(ctx, post)
	if err != nil {
		utils.TrackError("database", "post_creation_failed")
		return "", err
	}

	oid := result.InsertedID.(primitive.ObjectID)
	post.ID = oid
	return oid.Hex(), nil
}

// FindPosts lists posts, optionally filtered by author.
func (r *ForumRepo) FindPosts(ctx context.Context, userID string) ([]*model.ForumPost, error) {
	timer := utils.TrackDBOperation("find", "forum_posts")
	defer timer.ObserveDuration()

	filter := bson.M{}
	if userID != "" {
		filter["userId"] = userID
	}

	cursor, err := r.MongoCollection.Find(ctx, filter)
	if err != nil {
		utils.TrackError("database", "post_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []*model.ForumPost
	if err = cursor.All(ctx, &posts); err != nil {
		utils.TrackError("database", "post_decode_failed")
		return nil, err
	}
	return posts, nil
}

// FindPost returns one post by id. A malformed id is treated the same as
// a missing post.
func (r *ForumRepo) FindPost(ctx context.Context, postID string) (*model.ForumPost, error) {
	timer := utils.TrackDBOperation("find", "forum_posts")
	defer timer.ObserveDuration()

	oid, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return nil, ErrNotFound
	}

	var post model.ForumPost
	err = r.MongoCollection.FindOne(ctx, bson.M{"_id": oid}).Decode(&post)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		utils.TrackError("database", "post_fetch_failed")
		return nil, err
	}
	return &post, nil
}

// AddReply appends a reply to the post's embedded list. Replies are
// never edited or removed afterwards.
func (r *ForumRepo) AddReply(ctx context.Context, postID string, reply model.Reply) error {
	timer := utils.TrackDBOperation("update", "forum_posts")
	defer timer.ObserveDuration()

	oid, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return ErrNotFound
	}

	result, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$push": bson.M{"replies": reply}})
	if err != nil {
		utils.TrackError("database", "reply_creation_failed")
		return err
	}
	if result.MatchedCount == 0 {
		utils.TrackError("database", "post_not_found")
		return ErrNotFound
	}
	return nil
}
