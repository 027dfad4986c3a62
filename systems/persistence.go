package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/quasilyte/gdata"
)

// SavedRecords is the arena record stored on disk.
type SavedRecords struct {
	BestWave   int `json:"bestWave"`
	Wins       int `json:"wins"`
	TotalKills int `json:"totalKills"`
	Sessions   int `json:"sessions"`
}

const recordsKey = "records"

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for record storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Game.AppName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadRecords loads records from disk. It returns zero records when
// persistence is unavailable or nothing was saved yet.
func LoadRecords() (*SavedRecords, error) {
	if !gdataInitialized || gdataManager == nil {
		return &SavedRecords{}, nil
	}

	data, err := gdataManager.LoadItem(recordsKey)
	if err != nil {
		log.Printf("Warning: Could not load records: %v", err)
		return &SavedRecords{}, nil
	}
	if len(data) == 0 {
		return &SavedRecords{}, nil
	}

	var r SavedRecords
	if err := json.Unmarshal(data, &r); err != nil {
		log.Printf("Warning: Could not parse saved records: %v", err)
		return &SavedRecords{}, err
	}
	return &r, nil
}

// SaveRecords saves records to disk
func SaveRecords(r *SavedRecords) error {
	if !gdataInitialized || gdataManager == nil || r == nil {
		return nil
	}

	data, err := json.Marshal(r)
	if err != nil {
		log.Printf("Warning: Could not serialize records: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(recordsKey, data); err != nil {
		log.Printf("Warning: Could not save records: %v", err)
		return err
	}
	return nil
}

// MergeRecords folds one finished session into prev.
func MergeRecords(prev *SavedRecords, wave int, won bool, kills int) *SavedRecords {
	out := SavedRecords{}
	if prev != nil {
		out = *prev
	}
	if wave > out.BestWave {
		out.BestWave = wave
	}
	if won {
		out.Wins++
	}
	out.TotalKills += kills
	out.Sessions++
	return &out
}

// ClearRecords removes the saved records
func ClearRecords() error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}
	if err := gdataManager.SaveItem(recordsKey, nil); err != nil {
		log.Printf("Warning: Could not clear records: %v", err)
		return err
	}
	return nil
}
