package network

import (
	"math"

	"github.com/automoto/doomerang-arena/shared/netcomponents"
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi"
)

// Replica is the client's copy of the server's network world. Only
// entities present in the latest snapshot survive it.
type Replica struct {
	world   donburi.World
	present map[esync.NetworkId]bool
}

func NewReplica() *Replica {
	return &Replica{
		world:   donburi.NewWorld(),
		present: make(map[esync.NetworkId]bool),
	}
}

func (r *Replica) World() donburi.World { return r.world }

// Apply replaces the replica's state with snapshot. Components that fail
// to decode are skipped.
func (r *Replica) Apply(snapshot esync.WorldSnapshot) {
	clear(r.present)
	for _, ent := range snapshot {
		var state []any
		for _, componentBytes := range ent.State {
			instance, err := esync.Mapper.Deserialize(componentBytes)
			if err != nil {
				continue
			}
			state = append(state, instance)
		}
		r.update(ent.Id, state)
	}
	r.prune()
}

// update creates or refreshes the entity with the given network id.
func (r *Replica) update(id esync.NetworkId, state []any) {
	r.present[id] = true

	entity := esync.FindByNetworkId(r.world, id)
	if !r.world.Valid(entity) {
		entity = r.world.Create(componentTypesFromInstances(state)...)
		entry := r.world.Entry(entity)
		entry.AddComponent(esync.NetworkIdComponent)
		esync.NetworkIdComponent.SetValue(entry, id)
	}

	entry := r.world.Entry(entity)
	for _, data := range state {
		applyComponentToEntry(entry, data)
	}
}

// prune removes entities missing from the last snapshot.
func (r *Replica) prune() {
	var gone []*donburi.Entry
	esync.NetworkEntityQuery.Each(r.world, func(entry *donburi.Entry) {
		id := esync.GetNetworkId(entry)
		if id == nil || !r.present[*id] {
			gone = append(gone, entry)
		}
	})
	for _, entry := range gone {
		entry.Remove()
	}
}

func componentTypesFromInstances(state []any) []donburi.IComponentType {
	var ctypes []donburi.IComponentType
	for _, data := range state {
		switch data.(type) {
		case netcomponents.NetPlayerData:
			ctypes = append(ctypes, netcomponents.NetPlayer)
		case netcomponents.NetEnemyData:
			ctypes = append(ctypes, netcomponents.NetEnemy)
		case netcomponents.NetWaveData:
			ctypes = append(ctypes, netcomponents.NetWave)
		}
	}
	return ctypes
}

func applyComponentToEntry(entry *donburi.Entry, data any) {
	switch v := data.(type) {
	case netcomponents.NetPlayerData:
		if !entry.HasComponent(netcomponents.NetPlayer) {
			entry.AddComponent(netcomponents.NetPlayer)
		}
		netcomponents.NetPlayer.SetValue(entry, v)
	case netcomponents.NetEnemyData:
		if !entry.HasComponent(netcomponents.NetEnemy) {
			entry.AddComponent(netcomponents.NetEnemy)
		}
		netcomponents.NetEnemy.SetValue(entry, v)
	case netcomponents.NetWaveData:
		if !entry.HasComponent(netcomponents.NetWave) {
			entry.AddComponent(netcomponents.NetWave)
		}
		netcomponents.NetWave.SetValue(entry, v)
	}
}

// Player returns the replicated player state.
func (r *Replica) Player() (netcomponents.NetPlayerData, bool) {
	e, ok := netcomponents.NetPlayer.First(r.world)
	if !ok {
		return netcomponents.NetPlayerData{}, false
	}
	return *netcomponents.NetPlayer.Get(e), true
}

// Wave returns the replicated wave progress.
func (r *Replica) Wave() (netcomponents.NetWaveData, bool) {
	e, ok := netcomponents.NetWave.First(r.world)
	if !ok {
		return netcomponents.NetWaveData{}, false
	}
	return *netcomponents.NetWave.Get(e), true
}

func (r *Replica) Enemies() []netcomponents.NetEnemyData {
	var out []netcomponents.NetEnemyData
	netcomponents.NetEnemy.Each(r.world, func(e *donburi.Entry) {
		out = append(out, *netcomponents.NetEnemy.Get(e))
	})
	return out
}

// NearestEnemy returns the living enemy closest to (x, z).
func (r *Replica) NearestEnemy(x, z float64) (netcomponents.NetEnemyData, bool) {
	var best netcomponents.NetEnemyData
	found := false
	bestDist := math.Inf(1)
	for _, e := range r.Enemies() {
		if e.Health <= 0 {
			continue
		}
		if d := math.Hypot(e.X-x, e.Z-z); d < bestDist {
			best, bestDist, found = e, d, true
		}
	}
	return best, found
}
