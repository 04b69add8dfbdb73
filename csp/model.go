package csp

// Model is a complete boolean assignment produced by Solve: every variable
// allocated before the call is resolved to True or False.
type Model struct {
	values []Tri
}

// Value reports v's value in the model.
func (m Model) Value(v BoolVar) Tri {
	return m.values[v]
}
