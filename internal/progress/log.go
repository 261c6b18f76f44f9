package progress

import "encoding/json"

// StorageKey is the fixed backend key the event log lives under. Every
// counter in the app (tasbih, adhkar collections) writes into this one log.
const StorageKey = "tmanina_progress"

// EventLog is the persisted record of devotional activity: a count of actions
// per local calendar day. Counts only ever increase; there is no delete or
// reset operation.
type EventLog struct {
	History  map[DayKey]int `json:"history"`
	LastDate DayKey         `json:"lastDate,omitempty"`
}

// emptyLog returns a usable zero-state log.
func emptyLog() EventLog {
	return EventLog{History: make(map[DayKey]int)}
}

// Count returns the recorded count for key, zero if absent.
func (l EventLog) Count(key DayKey) int {
	return l.History[key]
}

// decodeLog parses a persisted blob. Anything unreadable, of the wrong shape,
// or carrying invalid entries degrades to an empty log: corrupt state must
// never block the UI.
func decodeLog(data []byte) EventLog {
	if len(data) == 0 {
		return emptyLog()
	}

	var raw struct {
		History  map[string]int `json:"history"`
		LastDate string         `json:"lastDate"`
	}
	if err := json.Unmarshal(data, &raw); err != nil || raw.History == nil {
		return emptyLog()
	}

	log := emptyLog()
	for k, v := range raw.History {
		key := DayKey(k)
		if !key.Valid() || v < 0 {
			continue
		}
		log.History[key] = v
	}
	if last := DayKey(raw.LastDate); last.Valid() {
		log.LastDate = last
	}
	return log
}

// encodeLog serializes the log for storage. The whole structure is written on
// every update; there is no partial-update format.
func encodeLog(log EventLog) ([]byte, error) {
	return json.Marshal(log)
}
