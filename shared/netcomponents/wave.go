package netcomponents

import "github.com/yohamta/donburi"

type WaveState int

const (
	WaveStateNone WaveState = iota
	WaveStateActive
	WaveStateCleared
)

type NetWaveData struct {
	Wave       int // 1-based, 0 before the first
	Waves      int
	EnemyCount int
	Live       int
	Kills      int
	State      WaveState
	Resets     int
	Elapsed    float64
}

var NetWave = donburi.NewComponentType[NetWaveData]()
