package ai

import (
	"testing"

	"suretydesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRankResults(t *testing.T) {
	raw := `{"results":[
		{"type":"client","id":"c1","title":"J.M.","description":"Client file","relevanceScore":0.92},
		{"type":"bond","id":"b1","title":"BND-1","description":"active bond","relevanceScore":0.4}
	]}`

	results := decodeRankResults(raw)

	require.Len(t, results, 2)
	assert.Equal(t, models.RecordTypeClient, results[0].RecordType)
	assert.Equal(t, 0.92, results[0].RelevanceScore)
}

func TestDecodeRankResultsStripsCodeFences(t *testing.T) {
	raw := "```json\n{\"results\":[{\"type\":\"case\",\"id\":\"k1\",\"relevanceScore\":0.5}]}\n```"

	results := decodeRankResults(raw)

	require.Len(t, results, 1)
	assert.Equal(t, "k1", results[0].RecordID)
}

func TestDecodeRankResultsGarbage(t *testing.T) {
	assert.Nil(t, decodeRankResults("I could not rank these records, sorry!"))
	assert.Nil(t, decodeRankResults(""))
	assert.Nil(t, decodeRankResults("{\"answer\": 42}"))
}

func TestDecodeRankResultsDropsUnknownTypesAndEmptyIDs(t *testing.T) {
	raw := `{"results":[
		{"type":"client","id":"","relevanceScore":0.9},
		{"type":"invoice","id":"x1","relevanceScore":0.8},
		{"type":"payment","id":"p1","relevanceScore":0.7}
	]}`

	results := decodeRankResults(raw)

	require.Len(t, results, 1)
	assert.Equal(t, "p1", results[0].RecordID)
}

func TestDecodeRankResultsClampsScores(t *testing.T) {
	raw := `{"results":[
		{"type":"client","id":"c1","relevanceScore":3.5},
		{"type":"client","id":"c2","relevanceScore":-1}
	]}`

	results := decodeRankResults(raw)

	require.Len(t, results, 2)
	assert.Equal(t, float64(1), results[0].RelevanceScore)
	assert.Equal(t, float64(0), results[1].RelevanceScore)
}

func TestDecodePhotoVerdict(t *testing.T) {
	verdict := decodePhotoVerdict(`{"acceptable":true,"label":"selfie"}`)
	assert.True(t, verdict.Acceptable)
	assert.Equal(t, "selfie", verdict.Label)
}

func TestDecodePhotoVerdictGarbage(t *testing.T) {
	verdict := decodePhotoVerdict("this photo looks fine to me")
	assert.False(t, verdict.Acceptable)
	assert.Equal(t, "unreadable classification", verdict.Label)
}
