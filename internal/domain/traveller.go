package domain

import "encoding/json"

// Traveller is a named adult traveller on a confirmed booking. Title, first
// and last name are required; any additional free-form fields supplied by the
// client are carried through in Extra.
type Traveller struct {
	Title     string
	FirstName string
	LastName  string
	Extra     map[string]any
}

// IsComplete reports whether all required traveller fields are present
func (t Traveller) IsComplete() bool {
	return t.Title != "" && t.FirstName != "" && t.LastName != ""
}

// MarshalJSON merges the free-form fields back into the traveller object
func (t Traveller) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(t.Extra)+3)
	for k, v := range t.Extra {
		m[k] = v
	}
	m["title"] = t.Title
	m["first_name"] = t.FirstName
	m["last_name"] = t.LastName
	return json.Marshal(m)
}

// UnmarshalJSON extracts the required fields and keeps the rest in Extra
func (t *Traveller) UnmarshalJSON(data []byte) error {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}

	t.Title = stringField(m, "title")
	t.FirstName = stringField(m, "first_name")
	t.LastName = stringField(m, "last_name")
	delete(m, "title")
	delete(m, "first_name")
	delete(m, "last_name")

	if len(m) > 0 {
		t.Extra = m
	} else {
		t.Extra = nil
	}
	return nil
}

func stringField(m map[string]any, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}
