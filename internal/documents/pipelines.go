// Academic World - Research Publications Dashboard API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/academicworld

package documents

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// topPublicationsPipeline matches twice: once to use the keywords.name index
// before the unwind, once to keep only the unwound element for keyword.
func topPublicationsPipeline(keyword string, limit int) mongo.Pipeline {
	match := bson.D{{Key: "$match", Value: bson.D{{Key: "keywords.name", Value: keyword}}}}
	return mongo.Pipeline{
		match,
		{{Key: "$unwind", Value: "$keywords"}},
		match,
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "title", Value: 1},
			{Key: "numCitations", Value: 1},
			{Key: "score", Value: "$keywords.score"},
		}}},
		{{Key: "$sort", Value: bson.D{
			{Key: "numCitations", Value: -1},
			{Key: "title", Value: 1},
		}}},
		{{Key: "$limit", Value: limit}},
	}
}

func facultyTopicsPipeline(university string, limit int) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "affiliation.name", Value: university}}}},
		{{Key: "$unwind", Value: "$keywords"}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$keywords.name"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{
			{Key: "count", Value: -1},
			{Key: "_id", Value: 1},
		}}},
		{{Key: "$limit", Value: limit}},
	}
}
