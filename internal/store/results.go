package store

import "go.mongodb.org/mongo-driver/mongo"

// InsertResult mirrors the wire shape returned for insert operations.
type InsertResult struct {
	Acknowledged bool `json:"acknowledged"`
	InsertedID   any  `json:"insertedId"`
}

// UpdateResult mirrors the wire shape returned for update operations.
type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
	UpsertedCount int64 `json:"upsertedCount"`
	UpsertedID    any   `json:"upsertedId,omitempty"`
}

// DeleteResult mirrors the wire shape returned for delete operations.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

func newInsertResult(res *mongo.InsertOneResult) *InsertResult {
	return &InsertResult{
		Acknowledged: true,
		InsertedID:   res.InsertedID,
	}
}

func newUpdateResult(res *mongo.UpdateResult) *UpdateResult {
	return &UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}
}

func newDeleteResult(res *mongo.DeleteResult) *DeleteResult {
	return &DeleteResult{
		Acknowledged: true,
		DeletedCount: res.DeletedCount,
	}
}
