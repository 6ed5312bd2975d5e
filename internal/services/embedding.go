package services

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// Embedding vectors persist as JSON arrays so the same column works on
// postgres and the sqlite test database.

func encodeEmbedding(vec []float32) (datatypes.JSON, error) {
	if vec == nil {
		return nil, nil
	}
	raw, err := json.Marshal(vec)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

func decodeEmbedding(data datatypes.JSON) []float32 {
	if len(data) == 0 {
		return nil
	}
	var vec []float32
	if err := json.Unmarshal(data, &vec); err != nil {
		return nil
	}
	return vec
}
