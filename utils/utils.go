package utils

import (
	"encoding/json"

	log "github.com/sirupsen/logrus"
)

func ToJson(value any) []byte {
	jsonResp, err := json.Marshal(value)
	if err != nil {
		log.Errorf("Error happened in JSON marshal. Err: %s", err)
	}
	return jsonResp
}
