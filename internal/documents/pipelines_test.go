// Academic World - Research Publications Dashboard API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/academicworld

package documents

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func stageNames(p mongo.Pipeline) []string {
	names := make([]string, len(p))
	for i, stage := range p {
		names[i] = stage[0].Key
	}
	return names
}

func TestPipelineStages(t *testing.T) {
	tests := []struct {
		name     string
		pipeline mongo.Pipeline
		want     []string
	}{
		{
			name:     "top publications",
			pipeline: topPublicationsPipeline("data mining", 10),
			want:     []string{"$match", "$unwind", "$match", "$project", "$sort", "$limit"},
		},
		{
			name:     "faculty topics",
			pipeline: facultyTopicsPipeline("Stanford University", 10),
			want:     []string{"$match", "$unwind", "$group", "$sort", "$limit"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stageNames(tt.pipeline)
			if len(got) != len(tt.want) {
				t.Fatalf("stages = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("stage %d = %s, want %s", i, got[i], tt.want[i])
				}
			}
			if limit := tt.pipeline[len(tt.pipeline)-1][0].Value; limit != 10 {
				t.Errorf("$limit = %v, want 10", limit)
			}
		})
	}
}

func TestTopPublicationsPipeline_Parameters(t *testing.T) {
	p := topPublicationsPipeline("genetic algorithm", 10)

	for _, idx := range []int{0, 2} {
		filter, ok := p[idx][0].Value.(bson.D)
		if !ok || len(filter) != 1 {
			t.Fatalf("stage %d filter = %#v", idx, p[idx][0].Value)
		}
		if filter[0].Key != "keywords.name" || filter[0].Value != "genetic algorithm" {
			t.Errorf("stage %d filter = %v, want keywords.name = genetic algorithm", idx, filter)
		}
	}

	project := p[3][0].Value.(bson.D)
	if last := project[len(project)-1]; last.Key != "score" || last.Value != "$keywords.score" {
		t.Errorf("projected score = %v, want $keywords.score", last)
	}

	sort := p[4][0].Value.(bson.D)
	if sort[0].Key != "numCitations" || sort[0].Value != -1 {
		t.Errorf("primary sort = %v, want numCitations desc", sort[0])
	}
}

func TestFacultyTopicsPipeline_Parameters(t *testing.T) {
	p := facultyTopicsPipeline("Carnegie Mellon University", 10)

	filter := p[0][0].Value.(bson.D)
	if filter[0].Key != "affiliation.name" || filter[0].Value != "Carnegie Mellon University" {
		t.Errorf("match = %v, want affiliation.name filter", filter)
	}

	group := p[2][0].Value.(bson.D)
	if group[0].Key != "_id" || group[0].Value != "$keywords.name" {
		t.Errorf("group key = %v, want $keywords.name", group[0])
	}
}
