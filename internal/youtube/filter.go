package youtube

import "focustube-backend/internal/models"

// FilterByPreferences trims records to the content-length buckets the
// user has enabled. Both toggles on returns the input unchanged; both
// off returns an empty result. Order is preserved.
func FilterByPreferences(records []models.VideoRecord, showShortForm, showLongForm bool) []models.VideoRecord {
	if showShortForm && showLongForm {
		return records
	}

	filtered := make([]models.VideoRecord, 0, len(records))
	for _, record := range records {
		isShort := IsShortForm(record.Duration)

		if isShort && showShortForm {
			filtered = append(filtered, record)
			continue
		}
		if !isShort && showLongForm {
			filtered = append(filtered, record)
		}
	}

	return filtered
}
