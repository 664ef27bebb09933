package service

import (
	"encoding/json"
	"log"
	"time"
)

// logEvent writes a one-line JSON log entry. Used for best-effort actions
// (blob cleanup, counters) whose failures must be recorded but never returned,
// so they cannot mask the error that triggered them.
func logEvent(level, event string, fields map[string]any) {
	entry := map[string]any{
		"ts":    time.Now().Format(time.RFC3339Nano),
		"level": level,
		"event": event,
	}
	for k, v := range fields {
		entry[k] = v
	}
	b, err := json.Marshal(entry)
	if err != nil {
		log.Printf("failed to marshal log entry: %v", err)
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}
