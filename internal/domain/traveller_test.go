package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TravelService/internal/domain"
)

func TestTraveller_UnmarshalKeepsExtraFields(t *testing.T) {
	payload := []byte(`{"title":"Mr","first_name":"Arjun","last_name":"Mehta","passport_no":"Z1234567","meal":"veg"}`)

	var traveller domain.Traveller
	require.NoError(t, json.Unmarshal(payload, &traveller))

	assert.Equal(t, "Mr", traveller.Title)
	assert.Equal(t, "Arjun", traveller.FirstName)
	assert.Equal(t, "Mehta", traveller.LastName)
	assert.Equal(t, "Z1234567", traveller.Extra["passport_no"])
	assert.Equal(t, "veg", traveller.Extra["meal"])
}

func TestTraveller_MarshalMergesExtraFields(t *testing.T) {
	traveller := domain.Traveller{
		Title:     "Ms",
		FirstName: "Priya",
		LastName:  "Mehta",
		Extra:     map[string]any{"passport_no": "Z7654321"},
	}

	data, err := json.Marshal(traveller)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, "Ms", m["title"])
	assert.Equal(t, "Priya", m["first_name"])
	assert.Equal(t, "Z7654321", m["passport_no"])
}

func TestTraveller_RoundTrip(t *testing.T) {
	original := domain.Traveller{
		Title:     "Mr",
		FirstName: "Arjun",
		LastName:  "Mehta",
		Extra:     map[string]any{"meal": "veg"},
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded domain.Traveller
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded)
}

func TestTraveller_NoExtraStaysNil(t *testing.T) {
	var traveller domain.Traveller
	require.NoError(t, json.Unmarshal([]byte(`{"title":"Mr","first_name":"A","last_name":"B"}`), &traveller))

	assert.Nil(t, traveller.Extra)
}

func TestTraveller_IsComplete(t *testing.T) {
	assert.True(t, domain.Traveller{Title: "Mr", FirstName: "A", LastName: "B"}.IsComplete())
	assert.False(t, domain.Traveller{FirstName: "A", LastName: "B"}.IsComplete())
	assert.False(t, domain.Traveller{Title: "Mr", FirstName: "A"}.IsComplete())
}

func TestTraveller_NonStringFieldTreatedAsMissing(t *testing.T) {
	var traveller domain.Traveller
	require.NoError(t, json.Unmarshal([]byte(`{"title":1,"first_name":"A","last_name":"B"}`), &traveller))

	assert.Empty(t, traveller.Title)
	assert.False(t, traveller.IsComplete())
}
