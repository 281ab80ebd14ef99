package prophecy

// Cause is one entry in the fate pool. Spoiler entries reference the New
// Lands arc and are excluded when spoilers are off.
type Cause struct {
	Text    string `json:"text"`
	Spoiler bool   `json:"spoiler,omitempty"`
}

var causes = []Cause{
	{Text: "Refuses to retire; accountant raises Named‑Rank premiums until even fate gives up."},
	{Text: "Duelist of Strings challenges a literal fate‑thread; becomes a metaphor and wanders off."},
	{Text: "Scrying crash mid‑aria; error code: 'Destiny Not Found'."},
	{Text: "Door duel. The Door wins. Eventually."},
	{Text: "Commissioned to play for a city—accidentally inspires three revolutions and leaves before taxes arrive."},

	{Text: "Barnethei schedules ‘just one’ retirement concert at the Haven; paperwork crit fails (permanent vacation).", Spoiler: true},
	{Text: "Colthei convinces him to solo during a storm on the New Lands. The storm solos back.", Spoiler: true},
	{Text: "Kraken‑Eater encore, strings vs. tentacles II. This time the audience brings towels.", Spoiler: true},
	{Text: "Valeterisa attempts to mathematically optimize a solo; a planar entity applauds and takes him to a seminar.", Spoiler: true},
	{Text: "Mihaela, Viecel, Eldertuin, Val—er—friends throw a 'please retire' party; he narrowly survives the speeches.", Spoiler: true},
	{Text: "Explorer’s Haven serves 'retire already' cake. It’s a trap: forms in triplicate.", Spoiler: true},
	{Text: "New Lands mana‑drain makes the violin sullen; Deniusth declares a tactical nap measured in decades.", Spoiler: true},
	{Text: "He out‑stares a Named rank, a Door, and destiny—only to trip over a dramatic entrance.", Spoiler: true},
}

// CausePool returns the drawable causes for the given spoiler setting.
// Pool order is fixed; reordering would change which cause a seed lands on.
func CausePool(allowSpoilers bool) []Cause {
	if allowSpoilers {
		return causes
	}
	pool := make([]Cause, 0, len(causes))
	for _, c := range causes {
		if !c.Spoiler {
			pool = append(pool, c)
		}
	}
	return pool
}
