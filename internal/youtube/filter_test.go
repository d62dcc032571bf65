package youtube

import (
	"reflect"
	"testing"

	"focustube-backend/internal/models"
)

func TestFilterByPreferences(t *testing.T) {
	records := []models.VideoRecord{
		{ID: "a", Duration: "0:45"},    // short
		{ID: "b", Duration: "5:09"},    // long
		{ID: "c", Duration: "1:02:03"}, // long (nonzero hours)
		{ID: "d", Duration: "0:15:00"}, // short under the three-field rule
	}

	t.Run("both enabled is identity", func(t *testing.T) {
		got := FilterByPreferences(records, true, true)
		if !reflect.DeepEqual(got, records) {
			t.Errorf("Expected identical slice back, got %+v", got)
		}
	})

	t.Run("both disabled is empty", func(t *testing.T) {
		got := FilterByPreferences(records, false, false)
		if len(got) != 0 {
			t.Errorf("Expected empty result, got %d records", len(got))
		}
	})

	t.Run("short only", func(t *testing.T) {
		got := FilterByPreferences(records, true, false)
		want := []string{"a", "d"}
		if ids := recordIDs(got); !reflect.DeepEqual(ids, want) {
			t.Errorf("Expected %v, got %v", want, ids)
		}
	})

	t.Run("long only", func(t *testing.T) {
		got := FilterByPreferences(records, false, true)
		want := []string{"b", "c"}
		if ids := recordIDs(got); !reflect.DeepEqual(ids, want) {
			t.Errorf("Expected %v, got %v", want, ids)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if got := FilterByPreferences(nil, true, false); len(got) != 0 {
			t.Errorf("Expected empty result for nil input, got %d", len(got))
		}
	})
}

func recordIDs(records []models.VideoRecord) []string {
	ids := make([]string, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.ID)
	}
	return ids
}
