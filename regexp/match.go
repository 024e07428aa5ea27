package regexp

// Match is the result of a successful Exec. Offsets are byte offsets into the
// searched string.
type Match struct {
	input string
	loc   []int
	names []string
}

// Index returns the byte offset at which the match starts.
func (m *Match) Index() int {
	return m.loc[0]
}

// End returns the byte offset just past the match.
func (m *Match) End() int {
	return m.loc[1]
}

// String returns the matched text.
func (m *Match) String() string {
	return m.input[m.loc[0]:m.loc[1]]
}

// Len returns the number of groups, including group 0 (the whole match).
func (m *Match) Len() int {
	return len(m.loc) / 2
}

// Group returns the text captured by the i-th group and whether that group
// took part in the match. Group 0 is the whole match.
func (m *Match) Group(i int) (string, bool) {
	if i < 0 || 2*i+1 >= len(m.loc) || m.loc[2*i] < 0 {
		return "", false
	}

	return m.input[m.loc[2*i]:m.loc[2*i+1]], true
}

// Groups returns the text of every group; groups that did not participate
// are empty strings.
func (m *Match) Groups() []string {
	out := make([]string, m.Len())
	for i := range out {
		out[i], _ = m.Group(i)
	}

	return out
}

// Named returns the text captured by the group called name.
func (m *Match) Named(name string) (string, bool) {
	if name == "" {
		return "", false
	}

	for i, n := range m.names {
		if n == name {
			return m.Group(i)
		}
	}

	return "", false
}

// NamedGroups maps every named group that took part in the match to its text.
func (m *Match) NamedGroups() map[string]string {
	out := make(map[string]string)
	for i, n := range m.names {
		if n == "" {
			continue
		}
		if v, ok := m.Group(i); ok {
			out[n] = v
		}
	}

	return out
}
