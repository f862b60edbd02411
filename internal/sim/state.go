package sim

import (
	"sync"

	"github.com/dotslashsimran/ai-love-island/internal/models"
)

// cycleState is the scope of one simulation cycle: the mutable character
// map plus the records accumulated for persistence. Concurrent conversation
// goroutines mutate disjoint character entries; the record slices are
// guarded by the mutex.
type cycleState struct {
	mu sync.Mutex

	// characters maps id to the cycle's working copy. Populated once at
	// cycle start; entries are never added or removed afterwards.
	characters map[string]*models.Character

	// order preserves the load order of character ids so the relationship
	// resolver walks pairs deterministically.
	order []string

	interactions  []models.Interaction
	events        []models.TimelineEvent
	confessionals []models.Confessional
	conversations []models.Conversation
}

func newCycleState(chars []models.Character) *cycleState {
	st := &cycleState{
		characters: make(map[string]*models.Character, len(chars)),
		order:      make([]string, 0, len(chars)),
	}
	for i := range chars {
		c := chars[i].Clone()
		st.characters[c.ID] = c
		st.order = append(st.order, c.ID)
	}
	return st
}

func (st *cycleState) character(id string) *models.Character {
	return st.characters[id]
}

// all returns the working copies in load order.
func (st *cycleState) all() []*models.Character {
	out := make([]*models.Character, 0, len(st.order))
	for _, id := range st.order {
		out = append(out, st.characters[id])
	}
	return out
}

func (st *cycleState) addInteraction(in models.Interaction) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.interactions = append(st.interactions, in)
}

func (st *cycleState) addEvents(evs ...models.TimelineEvent) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.events = append(st.events, evs...)
}

func (st *cycleState) addConfessional(conf models.Confessional) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.confessionals = append(st.confessionals, conf)
}

func (st *cycleState) addConversation(conv models.Conversation) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.conversations = append(st.conversations, conv)
}
