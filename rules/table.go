package rules

// Rule maps one neighborhood pattern to the next state of its center cell.
type Rule struct {
	Key   PatternKey
	Alive bool
}

/*
Table is an ordered rule list.

Lookup is first-match-wins: if the same key appears more than once, the
earliest entry applies. A key that matches no entry yields dead. That
default is the automaton's implicit "else" rule, not an error.
*/
type Table []Rule

// Next returns the next state for the given pattern key.
func (t Table) Next(key PatternKey) bool {
	for _, r := range t {
		if r.Key == key {
			return r.Alive
		}
	}
	return false
}

// Reference returns the rule set the simulation ships with.
func Reference() Table {
	return Table{
		{Key: PatternKey{Re: 12}, Alive: false},
		{Key: PatternKey{Re: 1}, Alive: true},
		{Key: PatternKey{Re: 4}, Alive: false},
		{Key: PatternKey{Re: 1, Im: 2}, Alive: true},
		{Key: PatternKey{Im: 2}, Alive: true},
		{Key: PatternKey{Re: 1, Im: 1}, Alive: false},
		{Key: PatternKey{Im: 4}, Alive: false},
		{Key: PatternKey{Re: 2, Im: 2}, Alive: true},
		{Key: PatternKey{Re: 10, Im: 1}, Alive: false},
	}
}
