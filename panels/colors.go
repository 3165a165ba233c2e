package panels

// ContextColor returns the accent slot assigned to a context. The first
// access for a key assigns the next slot; the assignment is stable for the
// lifetime of the coordinator, so every panel in a context renders with the
// same accent even after its sibling panels close. Callers map the slot onto
// their palette (slot modulo palette size).
func (c *Coordinator) ContextColor(contextKey string) int {
	slot, ok := c.colorSlots[contextKey]
	if !ok {
		slot = c.nextColor
		c.colorSlots[contextKey] = slot
		c.nextColor++
	}
	return slot
}

func (c *Coordinator) touchColor(contextKey string) {
	c.ContextColor(contextKey)
}
